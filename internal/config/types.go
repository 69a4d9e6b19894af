package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .zietsense.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Registry is an optional path to a machine table (YAML). Relative paths
	// resolve against the directory holding the config file. Empty means the
	// built-in table.
	Registry string `yaml:"registry" mapstructure:"registry"`

	// DefaultMachine overrides the table's default selection.
	DefaultMachine string `yaml:"default_machine" mapstructure:"default_machine"`

	Animation AnimationConfig `yaml:"animation" mapstructure:"animation"`
	Manager   ManagerConfig   `yaml:"manager" mapstructure:"manager"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
}

// AnimationConfig controls the entry transition after a selection.
type AnimationConfig struct {
	// Delay is how long the entry transition lasts after each selection.
	Delay time.Duration `yaml:"delay" mapstructure:"delay"`

	// Interval is the timer resolution used to count the delay down.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// ManagerConfig is the contact shown in the profile popup.
type ManagerConfig struct {
	Name       string `yaml:"name" mapstructure:"name"`
	Email      string `yaml:"email" mapstructure:"email"`
	Phone      string `yaml:"phone" mapstructure:"phone"`
	Experience string `yaml:"experience" mapstructure:"experience"`
}

// IsZero reports whether no manager fields are set.
func (m ManagerConfig) IsZero() bool {
	return m == ManagerConfig{}
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// Defaults for animation timing.
const (
	DefaultAnimationDelay    = 2 * time.Second
	DefaultAnimationInterval = 100 * time.Millisecond
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Animation: AnimationConfig{
			Delay:    DefaultAnimationDelay,
			Interval: DefaultAnimationInterval,
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
