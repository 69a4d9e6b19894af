package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/zietsense/zietsense/internal/errors"
)

// Color modes accepted by --no-color and output.color.
const (
	ColorModeAuto   = "auto"
	ColorModeAlways = "always"
	ColorModeNever  = "never"
)

// OKStyle is used for values inside their optimal band.
func OKStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorHealthy)
}

// AlertStyle is used for anything outside its optimal band.
func AlertStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorCritical)
}

// MutedStyle is used for secondary text.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorTextMuted)
}

// DisableColors switches lipgloss to monochrome output.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ApplyColorMode sets the lipgloss color profile for mode. "auto" keeps the
// detected profile unless output is not a terminal.
func ApplyColorMode(mode string, isTTY bool) error {
	switch mode {
	case "", ColorModeAuto:
		if !isTTY {
			DisableColors()
		}
	case ColorModeAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	case ColorModeNever:
		DisableColors()
	default:
		return errors.New(errors.ErrConfig,
			"Unknown color mode '"+mode+"'",
			"Use one of: auto, always, never.")
	}
	return nil
}
