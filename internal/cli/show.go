package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/zietsense/zietsense/internal/dashboard"
	"github.com/zietsense/zietsense/internal/errors"
	"github.com/zietsense/zietsense/internal/registry"
)

// defaultShowWidth is used when --width is unset and stdout is not a terminal.
const defaultShowWidth = 120

var showWidth int

var showCmd = &cobra.Command{
	Use:   "show [machine]",
	Short: "Print one dashboard frame for a machine",
	Long: `Render the dashboard for a single machine once and exit, without the
entry transition. With no machine on a terminal, a picker lists the registry.

Examples:
  zietsense show carding
  zietsense show --width 100 ringFrame
  zietsense show                 # pick interactively`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeMachines,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showCommand(cmd.OutOrStdout(), args, showWidth)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVar(&showWidth, "width", 0, "render width in columns (default: terminal width)")
}

// pickMachine asks the user to choose a machine. Replaced in tests.
var pickMachine = func(reg *registry.Registry, current string) (string, error) {
	options := make([]huh.Option[string], 0, reg.Len())
	for _, m := range reg.Entries() {
		options = append(options, huh.NewOption(dashboard.MachineLabel(m), m.ID))
	}

	selected := current
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which machine?").
				Options(options...).
				Value(&selected),
		),
	)
	if err := form.Run(); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrUI,
			"No machine selected",
			"Pass a machine id, e.g. 'zietsense show "+current+"'.")
	}
	return selected, nil
}

// showCommand implements the show command logic.
func showCommand(w io.Writer, args []string, width int) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	id := a.defaultMachine()
	switch {
	case len(args) == 1:
		id = args[0]
	case stdinIsTerminal() && stdoutIsTerminal():
		id, err = pickMachine(a.reg, id)
		if err != nil {
			return err
		}
	}
	if !a.reg.Contains(id) {
		return unknownMachine(a.reg, id)
	}

	if width <= 0 {
		width = terminalWidth(defaultShowWidth)
	}

	m, err := dashboard.NewModel(a.reg, dashboard.Options{DefaultMachine: id})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, m.WithSize(width, 0).Settle().Frame())
	return nil
}
