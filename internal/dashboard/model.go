package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/timer"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zietsense/zietsense/internal/errors"
	"github.com/zietsense/zietsense/internal/logger"
	"github.com/zietsense/zietsense/internal/profile"
	"github.com/zietsense/zietsense/internal/registry"
)

// Default animation timing, matching the config defaults.
const (
	DefaultAnimationDelay    = 2 * time.Second
	DefaultAnimationInterval = 100 * time.Millisecond
)

// entryOffset is how many rows the body starts below its resting place
// when a selection is made. A spring pulls it back up while animating.
const entryOffset = 3.0

// selectorZonePrefix prefixes the bubblezone id of each selector button.
const selectorZonePrefix = "machine-"

// Options configures a Model. The zero value is usable.
type Options struct {
	// DefaultMachine overrides the registry's default selection.
	DefaultMachine string

	// AnimationDelay is how long the entry transition lasts. Zero disables
	// the transition entirely.
	AnimationDelay time.Duration

	// AnimationInterval is the timer resolution.
	AnimationInterval time.Duration

	// Manager enables the profile popup when set.
	Manager *profile.Manager

	// Zones enables mouse clicks. The caller owns it and must have called
	// zone.NewGlobal or zone.New.
	Zones *zone.Manager

	Logger logger.Logger
}

// Model is the Bubble Tea model for the machine dashboard.
type Model struct {
	reg      *registry.Registry
	selected string
	snapshot Snapshot

	// Entry transition. anim is replaced on every selection; only messages
	// carrying its current ID are acted on.
	animating bool
	anim      timer.Model
	delay     time.Duration
	interval  time.Duration
	spring    harmonica.Spring
	offset    float64
	velocity  float64

	keys keyMap
	help help.Model
	body viewport.Model

	manager   *profile.Manager
	popup     profile.Popup
	popupOpen bool

	zones *zone.Manager
	log   logger.Logger

	width    int
	height   int
	quitting bool
}

// NewModel creates a dashboard over reg. The initial selection is
// opts.DefaultMachine when set, otherwise the registry default. The entry
// transition is armed and starts running once Init's command executes.
func NewModel(reg *registry.Registry, opts Options) (Model, error) {
	if reg == nil || reg.Len() == 0 {
		return Model{}, errors.New(errors.ErrUI,
			"No machines to show",
			"Check the registry file has at least one machine.")
	}

	initial := reg.Default()
	if opts.DefaultMachine != "" {
		if !reg.Contains(opts.DefaultMachine) {
			return Model{}, errors.New(errors.ErrConfig,
				fmt.Sprintf("Unknown machine '%s'", opts.DefaultMachine),
				"Available machines: "+strings.Join(reg.IDs(), ", "))
		}
		initial = opts.DefaultMachine
	}

	if opts.AnimationDelay < 0 {
		opts.AnimationDelay = 0
	}
	if opts.AnimationInterval <= 0 {
		opts.AnimationInterval = DefaultAnimationInterval
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}

	fps := int(time.Second / opts.AnimationInterval)
	if fps < 1 {
		fps = 1
	}

	keys := newKeyMap()
	keys.Profile.SetEnabled(opts.Manager != nil)
	keys.Close.SetEnabled(opts.Manager != nil)

	m := Model{
		reg:      reg,
		delay:    opts.AnimationDelay,
		interval: opts.AnimationInterval,
		spring:   harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
		keys:     keys,
		help:     help.New(),
		body:     viewport.New(defaultWidth, defaultHeight),
		manager:  opts.Manager,
		popup:    profile.New(opts.Manager, opts.Zones),
		zones:    opts.Zones,
		log:      opts.Logger,
	}
	m.arm(initial)
	m.resizeBody()
	return m, nil
}

// Init starts the entry transition timer for the initial selection.
func (m Model) Init() tea.Cmd {
	if !m.animating {
		return nil
	}
	return m.anim.Init()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width - FooterStyle.GetHorizontalFrameSize()
		m.resizeBody()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case timer.TickMsg:
		current := msg.ID == m.anim.ID()
		var cmd tea.Cmd
		m.anim, cmd = m.anim.Update(msg)
		if current && m.animating {
			m.offset, m.velocity = m.spring.Update(m.offset, m.velocity, 0)
			m.refreshBody()
		}
		return m, cmd

	case timer.StartStopMsg:
		var cmd tea.Cmd
		m.anim, cmd = m.anim.Update(msg)
		return m, cmd

	case timer.TimeoutMsg:
		if msg.ID != m.anim.ID() {
			m.log.Debug("ignoring timeout from replaced animation timer %d", msg.ID)
			return m, nil
		}
		m.settle()
		return m, nil

	case profile.ClosedMsg:
		m.popupOpen = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.popupOpen {
		var cmd tea.Cmd
		m.popup, cmd = m.popup.Update(msg)
		if cmd == nil && key.Matches(msg, m.keys.Quit) {
			return m.quit()
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Next):
		return m, m.selectMachine(m.reg.At(m.reg.IndexOf(m.selected) + 1))

	case key.Matches(msg, m.keys.Prev):
		return m, m.selectMachine(m.reg.At(m.reg.IndexOf(m.selected) - 1))

	case key.Matches(msg, m.keys.Jump):
		idx := int(msg.String()[0] - '1')
		if idx < m.reg.Len() {
			return m, m.selectMachine(m.reg.At(idx))
		}
		return m, nil

	case key.Matches(msg, m.keys.Profile):
		m.popupOpen = true
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeBody()
		return m, nil

	case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.PageUp, m.keys.PageDown):
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.popupOpen {
		var cmd tea.Cmd
		m.popup, cmd = m.popup.Update(msg)
		return m, cmd
	}

	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
		if id, ok := m.clickedMachine(msg); ok {
			return m, m.selectMachine(id)
		}
		return m, nil
	}

	if tea.MouseEvent(msg).IsWheel() {
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return m, cmd
	}
	return m, nil
}

// clickedMachine returns the selector button under the mouse, if any.
func (m Model) clickedMachine(msg tea.MouseMsg) (string, bool) {
	if m.zones == nil {
		return "", false
	}
	for _, id := range m.reg.IDs() {
		if z := m.zones.Get(selectorZonePrefix + id); z != nil && z.InBounds(msg) {
			return id, true
		}
	}
	return "", false
}

// selectMachine makes id current and restarts the entry transition, even
// when id is already selected. The previous timer is dropped; its pending
// ticks and timeout no longer match m.anim and are ignored.
func (m *Model) selectMachine(id string) tea.Cmd {
	m.arm(id)
	m.refreshBody()
	if !m.animating {
		return nil
	}
	return m.anim.Init()
}

// arm sets the selection and a fresh timer without starting it.
func (m *Model) arm(id string) {
	m.selected = id
	m.snapshot = Derive(m.reg.MustLookup(id))
	m.anim = timer.NewWithInterval(m.delay, m.interval)

	if m.delay <= 0 {
		m.settle()
		return
	}
	m.animating = true
	m.offset = entryOffset
	m.velocity = 0
	m.log.Debug("selected %s, animation timer %d", id, m.anim.ID())
}

// settle ends the entry transition.
func (m *Model) settle() {
	m.animating = false
	m.offset = 0
	m.velocity = 0
	m.refreshBody()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.animating = false
	return m, tea.Batch(m.anim.Stop(), tea.Quit)
}

// resizeBody fits the scrollable body between the header and the footer.
func (m *Model) resizeBody() {
	chrome := lipgloss.Height(m.renderHeader()) + lipgloss.Height(m.renderFooter())
	h := m.viewHeight() - chrome
	if h < 1 {
		h = 1
	}
	m.body.Width = m.viewWidth()
	m.body.Height = h
	m.refreshBody()
}

func (m *Model) refreshBody() {
	m.body.SetContent(m.renderBody())
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var view string
	if m.popupOpen {
		view = m.popup.View(m.viewWidth(), m.viewHeight())
	} else {
		view = lipgloss.JoinVertical(lipgloss.Left,
			m.renderHeader(),
			m.body.View(),
			m.renderFooter(),
		)
	}

	if m.zones != nil {
		return m.zones.Scan(view)
	}
	return view
}

// Frame renders the header and the whole body without scrolling or footer.
func (m Model) Frame() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), m.renderBody())
}

// WithSize returns the model laid out for a width x height terminal.
func (m Model) WithSize(width, height int) Model {
	next, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return next.(Model)
}

// Settle returns the model with the entry transition finished.
func (m Model) Settle() Model {
	m.settle()
	return m
}

// Selected returns the ID of the selected machine.
func (m Model) Selected() string {
	return m.selected
}

// Animating reports whether the entry transition is running.
func (m Model) Animating() bool {
	return m.animating
}

// AnimationID returns the ID of the current animation timer.
func (m Model) AnimationID() int {
	return m.anim.ID()
}

// Snapshot returns the data derived from the selected machine.
func (m Model) Snapshot() Snapshot {
	return m.snapshot
}

// PopupOpen reports whether the manager profile is showing.
func (m Model) PopupOpen() bool {
	return m.popupOpen
}

// Layout returns the layout mode for the current width.
func (m Model) Layout() LayoutMode {
	return layoutFor(m.viewWidth())
}

func (m Model) viewWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func (m Model) viewHeight() int {
	if m.height <= 0 {
		return defaultHeight
	}
	return m.height
}
