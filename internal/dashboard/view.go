package dashboard

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zietsense/zietsense/internal/chart"
	"github.com/zietsense/zietsense/internal/registry"
)

// Title is the dashboard heading.
const Title = "ZietSense - Industrial Machine Intelligence"

// renderHeader renders the title and the machine selector.
func (m Model) renderHeader() string {
	w := m.viewWidth() - HeaderStyle.GetHorizontalFrameSize()
	title := lipgloss.PlaceHorizontal(w, lipgloss.Center, TitleStyle.Render(Title))
	selector := lipgloss.PlaceHorizontal(w, lipgloss.Center, m.renderSelector())
	return HeaderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", selector))
}

// renderSelector renders one button per registry entry, in registry order.
func (m Model) renderSelector() string {
	var buttons []string
	for _, machine := range m.reg.Entries() {
		style := ButtonStyle
		if machine.ID == m.selected {
			style = ButtonSelectedStyle
		}
		btn := style.Render(MachineLabel(machine))
		if m.zones != nil {
			btn = m.zones.Mark(selectorZonePrefix+machine.ID, btn)
		}
		buttons = append(buttons, btn)
	}

	if m.Layout() == LayoutMinimal {
		return lipgloss.JoinVertical(lipgloss.Center, buttons...)
	}
	return strings.Join(buttons, " ")
}

// renderBody renders cards, charts and maintenance. While animating it is
// faded and pushed down by the spring offset.
func (m Model) renderBody() string {
	sections := []string{
		m.renderCards(),
		m.renderCharts(),
		m.renderMaintenance(),
	}
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.animating {
		if rows := int(math.Round(m.offset)); rows > 0 {
			body = strings.Repeat("\n", rows) + body
		}
	}
	return body
}

func (m Model) renderCards() string {
	layout := m.Layout()
	width := cellWidth(m.viewWidth(), layout.cardsPerRow())

	cards := make([]string, 0, len(m.snapshot.Cards))
	for _, c := range m.snapshot.Cards {
		cards = append(cards, m.renderCard(c, width))
	}
	return grid(cards, layout.cardsPerRow())
}

// renderCard draws one metric tile:
//
//	Temperature         ♨
//	45°C          Optimal
//	Optimal: 25 - 45
func (m Model) renderCard(c Card, width int) string {
	faded := m.animating
	inner := width - CardStyle.GetHorizontalFrameSize()

	icon := MetricIcon(c.Metric)
	iconText := icon.Render()
	if faded {
		iconText = FadedStyle.Render(icon.Symbol)
	}

	lines := []string{
		spread(fade(LabelStyle, faded).Render(c.Title), iconText, inner),
		spread(fade(ValueStyle, faded).Render(c.Display), fade(statusStyle(c.Status), faded).Render(c.Status.String()), inner),
		fade(RangeStyle, faded).Render(c.RangeText()),
	}
	return CardStyle.Width(width - CardStyle.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

func (m Model) renderCharts() string {
	layout := m.Layout()
	width := cellWidth(m.viewWidth(), layout.chartsPerRow())
	inner := width - SectionStyle.GetHorizontalFrameSize()

	opts := chart.DefaultOptions()
	charts := make([]string, 0, len(m.snapshot.Charts))
	for _, d := range m.snapshot.Charts {
		content := chart.Render(d, opts, inner, layout.chartHeight(), m.animating)
		charts = append(charts, SectionStyle.Width(width-SectionStyle.GetHorizontalBorderSize()).Render(content))
	}
	return grid(charts, layout.chartsPerRow())
}

// maintenanceFields are the overview columns in display order.
var maintenanceFields = []string{"Last Maintenance", "Next Maintenance", "Hours Until Maintenance"}

func (m Model) renderMaintenance() string {
	faded := m.animating
	width := m.viewWidth()
	inner := width - SectionStyle.GetHorizontalFrameSize()

	mt := m.snapshot.Maintenance
	values := []string{
		fade(ValueStyle, faded).Render(mt.LastMaintenance),
		fade(ValueStyle, faded).Render(mt.NextMaintenance),
		fade(HoursStyle, faded).Render(number(mt.HoursUntilMaintenance)),
	}

	cols := make([]string, len(maintenanceFields))
	colWidth := inner / len(maintenanceFields)
	for i, label := range maintenanceFields {
		cell := fade(LabelStyle, faded).Render(label) + "\n" + values[i]
		if m.Layout() != LayoutMinimal {
			cell = lipgloss.NewStyle().Width(colWidth).Render(cell)
		}
		cols[i] = cell
	}

	var fields string
	if m.Layout() == LayoutMinimal {
		fields = strings.Join(cols, "\n")
	} else {
		fields = lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	}

	content := fade(SectionTitleStyle, faded).Render("Maintenance Overview") + "\n\n" + fields
	return SectionStyle.Width(width - SectionStyle.GetHorizontalBorderSize()).Render(content)
}

// renderFooter renders the key help, cut to the view width. help.Model
// can overshoot its Width when even the ellipsis does not fit.
func (m Model) renderFooter() string {
	return FooterStyle.MaxWidth(m.viewWidth()).Render(m.help.View(m.keys))
}

// cellWidth splits total into n columns separated by one space.
func cellWidth(total, n int) int {
	if n <= 1 {
		return total
	}
	return (total - (n - 1)) / n
}

// grid lays items out n per row, one space between columns.
func grid(items []string, n int) string {
	if n <= 1 {
		return lipgloss.JoinVertical(lipgloss.Left, items...)
	}
	var rows []string
	for i := 0; i < len(items); i += n {
		end := min(i+n, len(items))
		var row []string
		for j, item := range items[i:end] {
			if j > 0 {
				row = append(row, " ")
			}
			row = append(row, item)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// spread places left and right at the edges of a width-wide line.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// MachineLabel is the selector text for a machine: its glyph and name.
func MachineLabel(m registry.Machine) string {
	return MachineIcon(m.Icon).Symbol + " " + m.Name
}
