package config

import (
	"fmt"

	"github.com/zietsense/zietsense/internal/errors"
)

// ValidColorModes are the accepted values for output.color.
var ValidColorModes = map[string]bool{
	"auto":   true,
	"always": true,
	"never":  true,
}

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but zietsense only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade zietsense or lower the version field.")
	}

	if err := validateAnimation(cfg.Animation); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'animation' section in your "+ConfigFileName+".")
	}

	if !ValidColorModes[cfg.Output.Color] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown color mode '%s'", cfg.Output.Color),
			"Use one of: auto, always, never.")
	}

	return nil
}

func validateAnimation(a AnimationConfig) error {
	if a.Delay < 0 {
		return fmt.Errorf("animation delay can't be negative (got %s)", a.Delay)
	}
	if a.Interval <= 0 {
		return fmt.Errorf("animation interval must be positive (got %s)", a.Interval)
	}
	if a.Delay > 0 && a.Interval > a.Delay {
		return fmt.Errorf("animation interval %s is longer than the delay %s", a.Interval, a.Delay)
	}
	return nil
}
