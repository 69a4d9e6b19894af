package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Global flags
var (
	cfgFile      string
	machineFlag  string
	registryFlag string
	noColor      bool
)

// rootCmd runs the interactive dashboard when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "zietsense",
	Short: "Industrial machine intelligence for the spinning line",
	Long: `ZietSense shows the health of the textile machines on a spinning line.

Pick a machine to see its temperature, vibration, power and operational hours
against their optimal ranges, five months of history per metric, and the
maintenance schedule.

Examples:
  zietsense                       # interactive dashboard
  zietsense --machine carding     # start on a specific machine
  zietsense machines              # status table for every machine
  zietsense show ringFrame        # print one dashboard frame`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .zietsense.yaml, searched upward)")
	rootCmd.PersistentFlags().StringVar(&machineFlag, "machine", "", "machine to select first")
	rootCmd.PersistentFlags().StringVar(&registryFlag, "registry", "", "machine table to load instead of the built-in one")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	_ = rootCmd.RegisterFlagCompletionFunc("machine", completeMachines)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// terminalWidth returns the stdout width, or fallback when stdout is not a
// terminal.
func terminalWidth(fallback int) int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallback
}
