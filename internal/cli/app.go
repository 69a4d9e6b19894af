package cli

import (
	"fmt"
	"strings"

	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/zietsense/zietsense/internal/config"
	"github.com/zietsense/zietsense/internal/dashboard"
	"github.com/zietsense/zietsense/internal/errors"
	"github.com/zietsense/zietsense/internal/logger"
	"github.com/zietsense/zietsense/internal/profile"
	"github.com/zietsense/zietsense/internal/registry"
	"github.com/zietsense/zietsense/internal/ui"
	"github.com/zietsense/zietsense/internal/util"
)

// app is the loaded state every command starts from.
type app struct {
	cfg     *config.Config
	cfgPath string
	reg     *registry.Registry
}

// loadApp resolves config, applies flags on top of it, loads the machine
// table, and sets the color mode.
func loadApp() (*app, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}

	if registryFlag != "" {
		cfg.Registry = registryFlag
	}
	if machineFlag != "" {
		cfg.DefaultMachine = machineFlag
	}
	if noColor {
		cfg.Output.Color = ui.ColorModeNever
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if err := ui.ApplyColorMode(cfg.Output.Color, stdoutIsTerminal()); err != nil {
		return nil, err
	}

	reg := registry.Builtin()
	if cfg.Registry != "" {
		reg, err = registry.Load(cfg.Registry)
		if err != nil {
			return nil, err
		}
	}

	if cfg.DefaultMachine != "" && !reg.Contains(cfg.DefaultMachine) {
		return nil, unknownMachine(reg, cfg.DefaultMachine)
	}

	return &app{cfg: cfg, cfgPath: path, reg: reg}, nil
}

// defaultMachine is the configured default, or the table's own default.
func (a *app) defaultMachine() string {
	if a.cfg.DefaultMachine != "" {
		return a.cfg.DefaultMachine
	}
	return a.reg.Default()
}

// manager returns the configured manager profile, or nil when none is set.
func (a *app) manager() *profile.Manager {
	m := a.cfg.Manager
	if m.IsZero() {
		return nil
	}
	return &profile.Manager{
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Experience: m.Experience,
	}
}

func (a *app) dashboardOptions(log logger.Logger, zones *zone.Manager) dashboard.Options {
	return dashboard.Options{
		DefaultMachine:    a.defaultMachine(),
		AnimationDelay:    a.cfg.Animation.Delay,
		AnimationInterval: a.cfg.Animation.Interval,
		Manager:           a.manager(),
		Zones:             zones,
		Logger:            log,
	}
}

func unknownMachine(reg *registry.Registry, id string) error {
	suggestion := "Available machines: " + util.JoinOrNone(reg.IDs())
	if similar := util.SuggestSimilar(id, reg.IDs(), 3); len(similar) > 0 {
		suggestion = fmt.Sprintf("Did you mean '%s'? %s", similar[0], suggestion)
	}
	return errors.New(errors.ErrConfig, fmt.Sprintf("Unknown machine '%s'", id), suggestion)
}

// completeMachines offers machine IDs for shell completion.
func completeMachines(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	a, err := loadApp()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, m := range a.reg.Entries() {
		if strings.HasPrefix(m.ID, toComplete) {
			out = append(out, m.ID+"\t"+m.Name)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
