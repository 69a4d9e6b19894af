package profile

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func escKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEsc}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testManager() *Manager {
	return &Manager{
		Name:       "Priya Raman",
		Email:      "priya@mill.example",
		Phone:      "+91 98450 00000",
		Experience: "12 years",
	}
}

func TestPopup_NilManagerRendersNothing(t *testing.T) {
	p := New(nil, nil)

	assert.False(t, p.Visible())
	assert.Empty(t, p.Box())
	assert.Empty(t, p.View(80, 24))

	_, cmd := p.Update(escKey())
	assert.Nil(t, cmd, "a hidden popup never signals close")
}

func TestPopup_ZeroValueRendersNothing(t *testing.T) {
	var p Popup
	assert.Empty(t, p.View(80, 24))
}

func TestPopup_RendersAllFields(t *testing.T) {
	p := New(testManager(), nil)
	out := p.View(80, 24)

	assert.True(t, p.Visible())
	assert.Contains(t, out, "Priya Raman")
	assert.Contains(t, out, "Close")
	assert.Contains(t, out, "Email: ")
	assert.Contains(t, out, "priya@mill.example")
	assert.Contains(t, out, "Phone: ")
	assert.Contains(t, out, "+91 98450 00000")
	assert.Contains(t, out, "Experience: ")
	assert.Contains(t, out, "12 years")
}

func TestPopup_PartialProfileRendersBlanks(t *testing.T) {
	p := New(&Manager{Name: "Night Shift"}, nil)
	out := p.Box()

	assert.Contains(t, out, "Night Shift")
	assert.Contains(t, out, "Email: ")
	assert.Contains(t, out, "Phone: ")
	assert.Contains(t, out, "Experience: ")
}

func TestPopup_ViewCentersInArea(t *testing.T) {
	p := New(testManager(), nil)

	placed := p.View(100, 30)
	assert.Equal(t, 100, lipgloss.Width(placed))
	assert.Equal(t, 30, lipgloss.Height(placed))

	assert.Equal(t, p.Box(), p.View(0, 0), "no area means no placement")
}

func TestPopup_CloseEmitsOncePerActivation(t *testing.T) {
	p := New(testManager(), nil)

	for _, k := range []tea.KeyMsg{escKey(), runeKey('c')} {
		t.Run(k.String(), func(t *testing.T) {
			_, cmd := p.Update(k)
			require.NotNil(t, cmd)
			assert.Equal(t, ClosedMsg{}, cmd())
		})
	}

	closes := 0
	for i := 0; i < 3; i++ {
		var cmd tea.Cmd
		p, cmd = p.Update(escKey())
		if cmd != nil {
			if _, ok := cmd().(ClosedMsg); ok {
				closes++
			}
		}
	}
	assert.Equal(t, 3, closes)
}

func TestPopup_IgnoresOtherInput(t *testing.T) {
	p := New(testManager(), nil)

	_, cmd := p.Update(runeKey('x'))
	assert.Nil(t, cmd)

	_, cmd = p.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)

	// Without a zone manager clicks can't land on Close
	_, cmd = p.Update(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd)
}

func TestCloseBinding(t *testing.T) {
	b := CloseBinding()
	assert.Equal(t, []string{"esc", "c"}, b.Keys())
	assert.Equal(t, "close", b.Help().Desc)
}
