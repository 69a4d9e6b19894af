package ui

import "github.com/charmbracelet/lipgloss"

// Dashboard palette. Dark glass surfaces with neon accents.
const (
	ColorDarkBg    = lipgloss.Color("#0A0A0F")
	ColorSurfaceBg = lipgloss.Color("#12121A")
	ColorBorder    = lipgloss.Color("#2A2A4A")

	ColorHealthy  = lipgloss.Color("#39FF14")
	ColorCritical = lipgloss.Color("#FF0055")
	ColorAmber    = lipgloss.Color("#FFAA00")

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")

	ColorAccent    = lipgloss.Color("#FF2E97")
	ColorAccentDim = lipgloss.Color("#BF40FF")
	ColorCyan      = lipgloss.Color("#00FFFF")
	ColorSelected  = lipgloss.Color("#2563EB")
)
