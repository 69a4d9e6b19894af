package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zietsense/zietsense/internal/registry"
)

// Glyph is the terminal rendition of an icon identifier.
type Glyph struct {
	Symbol string
	Color  lipgloss.Color
}

// Render draws the glyph in its color.
func (g Glyph) Render() string {
	return lipgloss.NewStyle().Foreground(g.Color).Render(g.Symbol)
}

// machineIcons maps the icon identifiers used by registry records.
var machineIcons = map[string]Glyph{
	"flame":    {Symbol: "♨", Color: lipgloss.Color("#60A5FA")},
	"cpu":      {Symbol: "▣", Color: lipgloss.Color("#FB923C")},
	"monitor":  {Symbol: "▭", Color: lipgloss.Color("#4ADE80")},
	"wrench":   {Symbol: "⚒", Color: lipgloss.Color("#C084FC")},
	"settings": {Symbol: "⚙", Color: lipgloss.Color("#2DD4BF")},
}

var unknownIcon = Glyph{Symbol: "•", Color: lipgloss.Color("#9CA3AF")}

// MachineIcon returns the glyph for an icon identifier. Unknown identifiers
// get a neutral bullet.
func MachineIcon(id string) Glyph {
	if g, ok := machineIcons[id]; ok {
		return g
	}
	return unknownIcon
}

// metricIcons decorate the metric cards.
var metricIcons = map[registry.Metric]Glyph{
	registry.Temperature:      {Symbol: "♨", Color: lipgloss.Color("#F87171")},
	registry.Vibration:        {Symbol: "∿", Color: lipgloss.Color("#60A5FA")},
	registry.Power:            {Symbol: "ϟ", Color: lipgloss.Color("#FACC15")},
	registry.OperationalHours: {Symbol: "◷", Color: lipgloss.Color("#4ADE80")},
}

// MetricIcon returns the card glyph for a metric.
func MetricIcon(m registry.Metric) Glyph {
	if g, ok := metricIcons[m]; ok {
		return g
	}
	return unknownIcon
}
