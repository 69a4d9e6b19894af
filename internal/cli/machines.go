package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zietsense/zietsense/internal/dashboard"
	"github.com/zietsense/zietsense/internal/registry"
	"github.com/zietsense/zietsense/internal/status"
	"github.com/zietsense/zietsense/internal/ui"
	"github.com/zietsense/zietsense/internal/util"
)

var machinesJSON bool

var machinesCmd = &cobra.Command{
	Use:   "machines",
	Short: "List machines with the status of each metric",
	Long: `Print every machine in the registry with its current readings and whether
each one sits inside its optimal range.

Examples:
  zietsense machines
  zietsense machines --json
  zietsense machines --registry ./line2.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return machinesCommand(cmd.OutOrStdout(), machinesJSON)
	},
}

func init() {
	rootCmd.AddCommand(machinesCmd)
	machinesCmd.Flags().BoolVar(&machinesJSON, "json", false, "output in JSON format")
}

// MachinesOutput is the --json payload of the machines command.
type MachinesOutput struct {
	Default  string          `json:"default"`
	Machines []MachineOutput `json:"machines"`
}

// MachineOutput describes one machine.
type MachineOutput struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Default     bool                 `json:"default"`
	Alerts      int                  `json:"alerts"`
	Metrics     []MetricOutput       `json:"metrics"`
	Maintenance registry.Maintenance `json:"maintenance"`
}

// MetricOutput is one metric reading with its classification.
type MetricOutput struct {
	Metric  registry.Metric `json:"metric"`
	Value   string          `json:"value"`
	Current float64         `json:"current"`
	Optimal string          `json:"optimal"`
	Status  status.Status   `json:"status"`
}

// machinesCommand implements the machines command logic.
func machinesCommand(w io.Writer, jsonOut bool) error {
	a, err := loadApp()
	if err != nil {
		if jsonOut {
			_ = WriteJSONFromError(w, err)
		}
		return err
	}

	out := buildMachinesOutput(a.reg, a.defaultMachine())
	if jsonOut {
		return WriteJSONSuccess(w, out)
	}

	fmt.Fprintln(w, renderMachinesTable(a.reg, out))
	fmt.Fprintln(w, summaryLine(out))
	fmt.Fprintln(w, legendLine())
	return nil
}

func buildMachinesOutput(reg *registry.Registry, defaultID string) MachinesOutput {
	out := MachinesOutput{Default: defaultID}
	for _, m := range reg.Entries() {
		snap := dashboard.Derive(m)
		mo := MachineOutput{
			ID:          m.ID,
			Name:        m.Name,
			Default:     m.ID == defaultID,
			Maintenance: snap.Maintenance,
		}
		for _, c := range snap.Cards {
			if c.Status.Alerting() {
				mo.Alerts++
			}
			mo.Metrics = append(mo.Metrics, MetricOutput{
				Metric:  c.Metric,
				Value:   c.Display,
				Current: c.Current,
				Optimal: status.FormatRange(c.Optimal),
				Status:  c.Status,
			})
		}
		out.Machines = append(out.Machines, mo)
	}
	return out
}

var machineColumns = []ui.TableColumn{
	{Title: " ", Width: 1},
	{Title: "ID", Width: 10},
	{Title: "Name", Width: 12},
	{Title: "Temperature", Width: 11},
	{Title: "Vibration", Width: 12},
	{Title: "Power", Width: 9},
	{Title: "Hours", Width: 10},
	{Title: "Temp trend", Width: 10},
}

func renderMachinesTable(reg *registry.Registry, out MachinesOutput) string {
	rows := make([][]string, 0, len(out.Machines))
	for _, mo := range out.Machines {
		marker := ""
		if mo.Default {
			marker = ui.SymbolDefault
		}
		row := []string{marker, mo.ID, mo.Name}
		for _, metric := range mo.Metrics {
			row = append(row, metric.Value+" "+statusSymbol(metric.Status))
		}
		row = append(row, ui.Sparkline(reg.MustLookup(mo.ID).History.Temperature))
		rows = append(rows, row)
	}
	return ui.RenderSimpleTable(machineColumns, rows)
}

// legendLine explains the status symbols used in the table.
func legendLine() string {
	muted := ui.MutedStyle()
	return strings.Join([]string{
		ui.OKStyle().Render(ui.SymbolOK) + muted.Render(" optimal"),
		ui.AlertStyle().Render(ui.SymbolAlert) + muted.Render(" high/low"),
		ui.AlertStyle().Render(ui.SymbolUnavailable) + muted.Render(" no limit"),
		muted.Render(ui.SymbolDefault + " default"),
	}, "  ")
}

// summaryLine counts the machines running outside any optimal range.
func summaryLine(out MachinesOutput) string {
	alerting := 0
	for _, mo := range out.Machines {
		if mo.Alerts > 0 {
			alerting++
		}
	}
	n := len(out.Machines)
	return fmt.Sprintf("%d %s, %d outside optimal range",
		n, util.Pluralize(n, "machine", "machines"), alerting)
}

func statusSymbol(s status.Status) string {
	switch {
	case s == status.Unavailable:
		return ui.SymbolUnavailable
	case s.Alerting():
		return ui.SymbolAlert
	default:
		return ui.SymbolOK
	}
}
