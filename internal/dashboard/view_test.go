package dashboard

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zietsense/zietsense/internal/profile"
	"github.com/zietsense/zietsense/internal/registry"
)

func TestView_Header(t *testing.T) {
	m := newTestModel(t, Options{}).WithSize(140, 50)
	view := m.View()

	assert.Contains(t, view, Title)
	for _, machine := range registry.Builtin().Entries() {
		assert.Contains(t, view, machine.Name)
	}
}

func TestFrame_SettledBlowRoom(t *testing.T) {
	m := newTestModel(t, Options{}).WithSize(140, 50).Settle()
	frame := m.Frame()

	for _, want := range []string{
		"Temperature", "Vibration", "Power", "Operational Hours",
		"45°C", "2.5 m/s²", "160 W", "110/500",
		"Optimal: 25 - 45", "Optimal: 0 - 2", "Optimal: 0 - 150", "Optimal: 0 - 500",
		"Optimal", "High",
		"Maintenance Overview",
		"Last Maintenance", "2024-01-15",
		"Next Maintenance", "2024-04-15",
		"Hours Until Maintenance", "390",
		"Jan", "May",
	} {
		assert.Contains(t, frame, want)
	}
}

func TestFrame_FollowsSelection(t *testing.T) {
	m := newTestModel(t, Options{}).WithSize(140, 50)
	m, _ = update(t, m, runes("3"))
	frame := m.Settle().Frame()

	assert.Contains(t, frame, "48°C")
	assert.Contains(t, frame, "3 m/s²")
	assert.Contains(t, frame, "170 W")
	assert.Contains(t, frame, "300/700")
	assert.Contains(t, frame, "2024-08-10")
	assert.NotContains(t, frame, "110/500")
}

func TestBody_EntryOffset(t *testing.T) {
	m := newTestModel(t, Options{}).WithSize(140, 50)

	animating := lipgloss.Height(m.renderBody())
	resting := lipgloss.Height(m.Settle().renderBody())

	assert.Equal(t, resting+int(entryOffset), animating)
}

func TestBody_FadedWhileAnimating(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	m := newTestModel(t, Options{DefaultMachine: "carding"}).WithSize(140, 50)
	m.offset = 0

	faded := m.renderBody()
	normal := m.Settle().renderBody()

	assert.NotEqual(t, faded, normal)
	// Status colors only appear once settled.
	okColor := termenv.TrueColor.Color("#39FF14").Sequence(false)
	assert.Contains(t, normal, okColor)
	assert.NotContains(t, faded, okColor)
}

func TestView_FitsWidth(t *testing.T) {
	for _, width := range []int{60, 100, 140, 200} {
		m := newTestModel(t, Options{}).WithSize(width, 60).Settle()
		for i, line := range strings.Split(m.View(), "\n") {
			assert.LessOrEqual(t, lipgloss.Width(line), width, "width %d line %d: %q", width, i, line)
		}
	}
}

func TestView_FooterFitsNarrowWidths(t *testing.T) {
	for _, width := range []int{30, 45, 60, 79} {
		m := newTestModel(t, Options{}).WithSize(width, 60)
		assert.LessOrEqual(t, lipgloss.Width(m.renderFooter()), width, "width %d", width)

		m, _ = update(t, m, runes("?"))
		assert.LessOrEqual(t, lipgloss.Width(m.renderFooter()), width, "full help at width %d", width)
	}
}

func TestView_ChartsCarryTitleAndLegend(t *testing.T) {
	frame := newTestModel(t, Options{}).WithSize(140, 60).Settle().Frame()

	assert.Equal(t, 4, strings.Count(frame, "Machine Metrics"))
	for _, metric := range []string{"Temperature", "Vibration", "Power", "Operational Hours"} {
		assert.Contains(t, frame, "■ "+metric)
	}
}

func TestView_FullHelpListsCloseWithManager(t *testing.T) {
	m := newTestModel(t, Options{}).WithSize(200, 60)
	m, _ = update(t, m, runes("?"))
	assert.NotContains(t, m.renderFooter(), "close")

	m = newTestModel(t, Options{Manager: &profile.Manager{Name: "Priya Raman"}}).WithSize(200, 60)
	m, _ = update(t, m, runes("?"))
	assert.Contains(t, m.renderFooter(), "close")
}

func TestView_MinimalStacksSelector(t *testing.T) {
	m := newTestModel(t, Options{}).WithSize(60, 60)
	assert.Equal(t, registry.Builtin().Len(), lipgloss.Height(m.renderSelector()))

	m = m.WithSize(140, 60)
	assert.Equal(t, 1, lipgloss.Height(m.renderSelector()))
}

func TestMouse_ClickSelectsMachine(t *testing.T) {
	zones := zone.New()
	defer zones.Close()

	m := newTestModel(t, Options{Zones: zones}).WithSize(140, 50)
	_ = m.View()

	var z *zone.ZoneInfo
	require.Eventually(t, func() bool {
		z = zones.Get(selectorZonePrefix + "ringFrame")
		return z != nil && !z.IsZero()
	}, time.Second, 10*time.Millisecond)

	m, cmd := update(t, m, tea.MouseMsg{
		X:      z.StartX,
		Y:      z.StartY,
		Action: tea.MouseActionRelease,
		Button: tea.MouseButtonLeft,
	})
	assert.Equal(t, "ringFrame", m.Selected())
	assert.True(t, m.Animating())
	assert.NotNil(t, cmd)
}
