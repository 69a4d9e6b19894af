package chart

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/zietsense/zietsense/internal/ui"
)

// Braille patterns use a 2x4 dot matrix per character:
//
//	  Col 0  Col 1
//	Row 0:   ⠁      ⠈     (dots 1, 4)
//	Row 1:   ⠂      ⠐     (dots 2, 5)
//	Row 2:   ⠄      ⠠     (dots 3, 6)
//	Row 3:   ⡀      ⢀     (dots 7, 8)
const brailleBase = '⠀'

// brailleDots maps [row][col] within a cell to the pattern bit.
var brailleDots = [4][2]uint8{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

// fillStrength is how far the fill shade moves from the surface toward the
// stroke color. A literal 0.1 alpha disappears on dark terminals.
const fillStrength = 0.35

var surface = mustHex(string(ui.ColorSurfaceBg))

// Render draws the first dataset of d as a filled line chart that is
// width cells wide. The plot is height rows tall with the bucket labels
// beneath it; opts adds a title line and a legend row above or below. When
// faded is set everything is drawn in the muted color, which is how entry
// transitions look.
func Render(d Data, opts Options, width, height int, faded bool) string {
	if len(d.Datasets) == 0 || height <= 0 {
		return ""
	}
	ds := d.Datasets[0]
	if len(ds.Data) == 0 {
		return ""
	}

	yMax := niceCeil(maxOf(ds.Data))
	yMin := 0.0
	if !opts.BeginAtZero {
		yMin = niceFloor(minOf(ds.Data))
		if yMin >= yMax {
			yMin = 0
		}
	}
	top, bottom := formatTick(yMax), formatTick(yMin)
	gutter := max(len(top), len(bottom))
	plotWidth := width - gutter - 1
	if plotWidth < 2 {
		return ""
	}

	strokeStyle, fillStyle := seriesStyles(ds.BorderColor, faded)
	axisStyle := lipgloss.NewStyle().Foreground(ui.ColorBorder)
	tickStyle := lipgloss.NewStyle().Foreground(ui.ColorTextMuted)

	grid, isTop := plot(interpolate(ds.Data, plotWidth*2), yMin, yMax, plotWidth, height)

	var lines []string
	if opts.Title != "" {
		lines = append(lines, titleStyle(faded).Render(truncate(opts.Title, width)))
	}
	legend := legendRow(ds, strokeStyle, faded, width)
	if opts.Legend == LegendTop {
		lines = append(lines, legend)
	}

	for row := 0; row < height; row++ {
		var b strings.Builder

		label := ""
		switch row {
		case 0:
			label = top
		case height - 1:
			label = bottom
		}
		b.WriteString(tickStyle.Render(padLeft(label, gutter)))
		b.WriteString(axisStyle.Render("│"))

		for col := 0; col < plotWidth; col++ {
			cell := grid[row][col]
			switch {
			case cell == brailleBase:
				b.WriteString(" ")
			case isTop[row][col]:
				b.WriteString(strokeStyle.Render(string(cell)))
			default:
				b.WriteString(fillStyle.Render(string(cell)))
			}
		}
		lines = append(lines, b.String())
	}

	lines = append(lines, strings.Repeat(" ", gutter+1)+tickStyle.Render(labelRow(d.Labels, plotWidth)))
	if opts.Legend == LegendBottom {
		lines = append(lines, legend)
	}
	return strings.Join(lines, "\n")
}

func titleStyle(faded bool) lipgloss.Style {
	if faded {
		return lipgloss.NewStyle().Foreground(ui.ColorTextMuted)
	}
	return lipgloss.NewStyle().Foreground(ui.ColorTextPrimary).Bold(true)
}

// legendRow is a color swatch followed by the dataset label.
func legendRow(ds Dataset, stroke lipgloss.Style, faded bool, width int) string {
	labelStyle := lipgloss.NewStyle().Foreground(ui.ColorTextSecondary)
	if faded {
		labelStyle = lipgloss.NewStyle().Foreground(ui.ColorTextMuted)
	}
	return stroke.Render("■") + " " + labelStyle.Render(truncate(ds.Label, width-2))
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 {
		return ""
	}
	if len(r) > width {
		return string(r[:width])
	}
	return s
}

// seriesStyles returns the styles for the line itself and the area below it.
func seriesStyles(color string, faded bool) (stroke, fill lipgloss.Style) {
	if faded {
		muted := lipgloss.NewStyle().Foreground(ui.ColorTextMuted)
		return muted, muted
	}

	c, err := ParseColor(color)
	if err != nil {
		c = mustHex(string(ui.ColorCyan))
	}
	shade := surface.BlendRgb(c, fillStrength).Clamped()
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())),
		lipgloss.NewStyle().Foreground(lipgloss.Color(shade.Hex()))
}

// plot fills dots from the bottom of each dot column up to its value and
// records which cells hold the topmost dot of some column.
func plot(values []float64, yMin, yMax float64, width, height int) ([][]rune, [][]bool) {
	grid := make([][]rune, height)
	isTop := make([][]bool, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		isTop[i] = make([]bool, width)
		for j := range grid[i] {
			grid[i][j] = brailleBase
		}
	}

	totalDots := height * 4
	for x, v := range values {
		level := int(math.Round((v - yMin) / (yMax - yMin) * float64(totalDots)))
		if level < 0 {
			level = 0
		}
		if level > totalDots {
			level = totalDots
		}

		charCol := x / 2
		subCol := x % 2
		for dot := 0; dot < level; dot++ {
			row := height - 1 - dot/4
			subRow := 3 - dot%4
			grid[row][charCol] |= rune(1) << brailleDots[subRow][subCol]
			if dot == level-1 {
				isTop[row][charCol] = true
			}
		}
	}
	return grid, isTop
}

// interpolate stretches samples across n points with straight segments
// between neighbouring samples.
func interpolate(samples []float64, n int) []float64 {
	out := make([]float64, n)
	if len(samples) == 1 || n == 1 {
		for i := range out {
			out[i] = samples[0]
		}
		return out
	}

	last := len(samples) - 1
	for i := range out {
		pos := float64(i) * float64(last) / float64(n-1)
		lo := int(pos)
		if lo >= last {
			out[i] = samples[last]
			continue
		}
		frac := pos - float64(lo)
		out[i] = samples[lo] + (samples[lo+1]-samples[lo])*frac
	}
	return out
}

// labelRow spreads labels evenly across width, centring each on its
// sample position and dropping any label that would overlap its neighbour.
func labelRow(labels []string, width int) string {
	row := []rune(strings.Repeat(" ", width))
	if len(labels) == 0 {
		return string(row)
	}

	nextFree := 0
	for i, label := range labels {
		pos := 0
		if len(labels) > 1 {
			pos = int(math.Round(float64(i) * float64(width-1) / float64(len(labels)-1)))
		}
		runes := []rune(label)
		if len(runes) > width {
			continue
		}
		start := pos - len(runes)/2
		if start < 0 {
			start = 0
		}
		if start+len(runes) > width {
			start = width - len(runes)
		}
		if start < nextFree {
			continue
		}
		copy(row[start:], runes)
		nextFree = start + len(runes) + 1
	}
	return string(row)
}

// niceSteps are the mantissas an axis bound may take.
var niceSteps = []float64{1, 1.5, 2, 2.5, 3, 4, 5, 6, 8, 10}

// niceCeil rounds v up to a readable axis maximum.
func niceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	exp := math.Floor(math.Log10(v))
	for _, step := range niceSteps {
		if candidate := scaleStep(step, exp); candidate >= v {
			return candidate
		}
	}
	return scaleStep(10, exp)
}

// niceFloor rounds v down to a readable axis minimum.
func niceFloor(v float64) float64 {
	if v <= 0 {
		return 0
	}
	exp := math.Floor(math.Log10(v))
	for i := len(niceSteps) - 1; i >= 0; i-- {
		if candidate := scaleStep(niceSteps[i], exp); candidate <= v {
			return candidate
		}
	}
	return 0
}

// scaleStep returns step * 10^exp. Negative exponents divide by an exact
// power of ten so 3e-1 comes out as 0.3 rather than 0.30000000000000004.
func scaleStep(step, exp float64) float64 {
	if exp < 0 {
		return step / math.Pow(10, -exp)
	}
	return step * math.Pow(10, exp)
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
