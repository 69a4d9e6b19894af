package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zietsense/zietsense/internal/status"
	"github.com/zietsense/zietsense/internal/ui"
)

// LayoutMode represents the responsive layout mode based on terminal size.
type LayoutMode int

const (
	// LayoutMinimal is for terminals < 80 columns: one card per row, stacked charts
	LayoutMinimal LayoutMode = iota
	// LayoutCompact is for terminals 80-120 columns: two cards per row, stacked charts
	LayoutCompact
	// LayoutStandard is for terminals 120-160 columns: one row of cards, 2x2 charts
	LayoutStandard
	// LayoutWide is for terminals 160+ columns: like standard with taller charts
	LayoutWide
)

// Width breakpoints for layout modes
const (
	BreakpointCompact  = 80
	BreakpointStandard = 120
	BreakpointWide     = 160
)

// Size assumed before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 120
	defaultHeight = 40
)

// String returns the layout name.
func (l LayoutMode) String() string {
	switch l {
	case LayoutMinimal:
		return "minimal"
	case LayoutCompact:
		return "compact"
	case LayoutStandard:
		return "standard"
	case LayoutWide:
		return "wide"
	default:
		return "unknown"
	}
}

// layoutFor picks the layout mode for a terminal width.
func layoutFor(width int) LayoutMode {
	switch {
	case width >= BreakpointWide:
		return LayoutWide
	case width >= BreakpointStandard:
		return LayoutStandard
	case width >= BreakpointCompact:
		return LayoutCompact
	default:
		return LayoutMinimal
	}
}

// cardsPerRow and chartsPerRow describe the grid for a layout.
func (l LayoutMode) cardsPerRow() int {
	switch l {
	case LayoutMinimal:
		return 1
	case LayoutCompact:
		return 2
	default:
		return 4
	}
}

func (l LayoutMode) chartsPerRow() int {
	if l >= LayoutStandard {
		return 2
	}
	return 1
}

func (l LayoutMode) chartHeight() int {
	switch l {
	case LayoutMinimal:
		return 4
	case LayoutWide:
		return 8
	default:
		return 6
	}
}

var (
	// Title uses the accent gradient endpoints; the header centers it.
	TitleStyle = lipgloss.NewStyle().
			Foreground(ui.ColorAccentDim).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Padding(0, 1).
			MarginBottom(1)

	// Selector buttons
	ButtonStyle = lipgloss.NewStyle().
			Foreground(ui.ColorTextSecondary).
			Background(ui.ColorSurfaceBg).
			Padding(0, 1)

	ButtonSelectedStyle = lipgloss.NewStyle().
				Foreground(ui.ColorTextPrimary).
				Background(ui.ColorSelected).
				Bold(true).
				Padding(0, 1)

	// Card styles - border carries the focus, content carries the status
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorBorder).
			Padding(0, 1)

	SectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorBorder).
			Padding(0, 1)

	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(ui.ColorTextPrimary).
				Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ui.ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ui.ColorTextPrimary).
			Bold(true)

	RangeStyle = lipgloss.NewStyle().
			Foreground(ui.ColorTextMuted)

	HoursStyle = lipgloss.NewStyle().
			Foreground(ui.ColorAmber).
			Bold(true)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(ui.ColorHealthy).
			Bold(true)

	StatusAlertStyle = lipgloss.NewStyle().
				Foreground(ui.ColorCritical).
				Bold(true)

	// FadedStyle replaces every foreground while the entry transition runs.
	FadedStyle = lipgloss.NewStyle().
			Foreground(ui.ColorTextMuted)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ui.ColorTextMuted).
			Padding(0, 1)
)

// statusStyle returns the style for a status label. Anything other than
// Optimal is drawn in the alert color.
func statusStyle(s status.Status) lipgloss.Style {
	if s.Alerting() {
		return StatusAlertStyle
	}
	return StatusOKStyle
}

// fade swaps style for FadedStyle when faded is set.
func fade(style lipgloss.Style, faded bool) lipgloss.Style {
	if faded {
		return FadedStyle
	}
	return style
}
