// Package profile renders the manager contact popup.
//
// The popup is purely presentational. Given no manager it renders nothing
// and ignores input; given one it shows the contact fields with a close
// affordance and reports activation with a ClosedMsg. Hiding the popup is
// the caller's decision.
package profile

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zietsense/zietsense/internal/ui"
)

// Manager holds the contact fields shown in the popup.
type Manager struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Experience string `json:"experience"`
}

// ClosedMsg is sent once each time the close affordance is activated.
type ClosedMsg struct{}

// closeZone is the bubblezone id of the Close button.
const closeZone = "profile-close"

var closeKeys = key.NewBinding(
	key.WithKeys("esc", "c"),
	key.WithHelp("esc/c", "close"),
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorAccent).
			Background(ui.ColorDarkBg).
			Foreground(ui.ColorTextPrimary).
			Padding(1, 2).
			Width(44)

	nameStyle = lipgloss.NewStyle().
			Foreground(ui.ColorTextPrimary).
			Bold(true)

	closeStyle = lipgloss.NewStyle().
			Foreground(ui.ColorCritical)

	fieldStyle = lipgloss.NewStyle().
			Foreground(ui.ColorTextSecondary)
)

// Popup is the overlay model. The zero value renders nothing.
type Popup struct {
	manager *Manager
	zones   *zone.Manager
}

// New creates a popup for manager, which may be nil. zones enables mouse
// clicks on the Close button and may also be nil.
func New(manager *Manager, zones *zone.Manager) Popup {
	return Popup{manager: manager, zones: zones}
}

// Visible reports whether the popup has anything to show.
func (p Popup) Visible() bool {
	return p.manager != nil
}

// CloseBinding is the key binding that activates the close affordance.
func CloseBinding() key.Binding {
	return closeKeys
}

// Update handles the close affordance. Each activation yields exactly one
// command producing ClosedMsg.
func (p Popup) Update(msg tea.Msg) (Popup, tea.Cmd) {
	if !p.Visible() {
		return p, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, closeKeys) {
			return p, closed
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft && p.closeClicked(msg) {
			return p, closed
		}
	}
	return p, nil
}

func closed() tea.Msg {
	return ClosedMsg{}
}

func (p Popup) closeClicked(msg tea.MouseMsg) bool {
	if p.zones == nil {
		return false
	}
	z := p.zones.Get(closeZone)
	return z != nil && z.InBounds(msg)
}

// Box renders the popup box without placement, or "" when hidden.
func (p Popup) Box() string {
	if !p.Visible() {
		return ""
	}

	inner := boxStyle.GetWidth() - boxStyle.GetHorizontalPadding()
	closeBtn := closeStyle.Render("Close")
	if p.zones != nil {
		closeBtn = p.zones.Mark(closeZone, closeBtn)
	}

	name := nameStyle.Render(p.manager.Name)
	gap := inner - lipgloss.Width(name) - lipgloss.Width(closeBtn)
	if gap < 1 {
		gap = 1
	}

	lines := []string{
		name + strings.Repeat(" ", gap) + closeBtn,
		"",
		fieldStyle.Render("Email: ") + p.manager.Email,
		fieldStyle.Render("Phone: ") + p.manager.Phone,
		fieldStyle.Render("Experience: ") + p.manager.Experience,
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

// View renders the popup centered in a width x height area, or "" when
// there is no manager.
func (p Popup) View(width, height int) string {
	box := p.Box()
	if box == "" {
		return ""
	}
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(ui.ColorDarkBg),
	)
}
