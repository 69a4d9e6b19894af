package cli

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zietsense/zietsense/internal/dashboard"
	"github.com/zietsense/zietsense/internal/errors"
	"github.com/zietsense/zietsense/internal/logger"
)

// debugLogFile receives log output while the dashboard owns the terminal.
var debugLogFile = filepath.Join(os.TempDir(), "zietsense-debug.log")

// dashboardCommand runs the interactive dashboard until the user quits.
func dashboardCommand() error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	log := logger.Noop()
	if logger.DebugEnabled() {
		f, err := tea.LogToFile(debugLogFile, "zietsense")
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrUI,
				"Can't open the debug log",
				"Unset "+logger.DebugEnv+" or make "+filepath.Dir(debugLogFile)+" writable.")
		}
		defer f.Close()
		log = logger.NewEnvLogger("[dashboard]")
		log.Debug("config %q, %d machines", a.cfgPath, a.reg.Len())
	}

	zones := zone.New()
	defer zones.Close()

	model, err := dashboard.NewModel(a.reg, a.dashboardOptions(log, zones))
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "Dashboard exited unexpectedly")
	}
	return nil
}
