package autocomplete

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mailfill/suggest"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Model is a Bubble Tea component that suggests email domain completions for
// a host-owned text field and renders them below it.
type Model struct {
	cfg   Config
	id    int
	index *suggest.Index
	state suggest.State

	// Screen position and size of the host children the popup hangs under.
	x, y          int
	width, height int

	hub *PointerHub
}

func New(cfg Config) Model {
	cfg.KeyMap = normalizeKeyMap(cfg.KeyMap)
	cfg.Style = normalizeStyle(cfg.Style)
	if cfg.MaxWidth < 0 {
		cfg.MaxWidth = 0
	}
	m := Model{
		cfg: cfg,
		id:  nextID(),
	}
	return m.SetDomains(cfg.Domains)
}

// ID identifies this instance in SubmitMsg and pointer subscriptions.
func (m Model) ID() int { return m.id }

func (m Model) Init() tea.Cmd { return nil }

// State returns the current interaction state.
func (m Model) State() suggest.State { return m.state }

// KeyMap returns the effective key bindings, e.g. for a help view.
func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }

// Domains returns the effective domain list.
func (m Model) Domains() []string { return m.index.Domains() }

// SetDomains replaces the domain list. Nil or empty restores the defaults;
// the previous list is discarded, never merged. Current matches are left
// alone until the next ordinary key.
func (m Model) SetDomains(domains []string) Model {
	m.cfg.Domains = append([]string(nil), domains...)
	m.index = suggest.NewIndex(suggest.Resolve(domains))
	m.debug("domains set", "count", m.index.Len())
	return m
}

// SetOrigin places the component's top-left cell on screen.
func (m Model) SetOrigin(x, y int) Model {
	m.x, m.y = x, y
	return m
}

// SetSize records the size of the host children. The popup starts on the row
// right below them.
func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width, m.height = width, height
	return m
}

// Mount subscribes the component to pointer events from hub. Mounting an
// already mounted instance is a no-op; mounting onto a different hub releases
// the previous subscription first.
func (m Model) Mount(hub *PointerHub) (Model, tea.Cmd) {
	if hub == nil {
		return m, nil
	}
	var cmds []tea.Cmd
	if m.hub != nil && m.hub != hub {
		cmds = append(cmds, m.hub.Unsubscribe(m.id))
	}
	m.hub = hub
	cmd, ok := hub.Subscribe(m.id)
	if ok {
		m.debug("mounted", "subscribers", hub.Len())
	}
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// Unmount releases the pointer subscription taken by Mount.
func (m Model) Unmount() (Model, tea.Cmd) {
	if m.hub == nil {
		return m, nil
	}
	cmd := m.hub.Unsubscribe(m.id)
	m.debug("unmounted", "subscribers", m.hub.Len())
	m.hub = nil
	return m, cmd
}

// Mounted reports whether the component holds a live pointer subscription.
func (m Model) Mounted() bool { return m.hub.Subscribed(m.id) }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SubmitMsg:
		if msg.ID != m.id {
			return m, nil
		}
		m.debug("submit")
		if m.cfg.OnSubmit != nil {
			m.cfg.OnSubmit()
		}
		return m, nil
	case tea.MouseMsg:
		return m.updateMouse(msg)
	default:
		return m, nil
	}
}

func (m Model) complete(text string) {
	m.debug("completion accepted", "text", text)
	if m.cfg.OnCompletion != nil {
		m.cfg.OnCompletion(text)
	}
}

func (m Model) debug(msg string, keyvals ...any) {
	if m.cfg.Logger == nil {
		return
	}
	m.cfg.Logger.Debug(msg, append(keyvals, "id", m.id, "phase", m.state.Phase())...)
}
