package autocomplete

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyEvent is one key press on the host field.
//
// Value is the field's content after the host applied the key. It is ignored
// for action keys, which the host must not apply.
type KeyEvent struct {
	Key   tea.KeyMsg
	Value string
}

// SubmitMsg is produced by the command Check returns when enter is pressed
// with nothing highlighted. Route it back through Update to run OnSubmit.
type SubmitMsg struct {
	ID int
}

// IsActionKey reports whether msg is claimed by the component. Hosts must
// suppress their own handling (cursor movement, newline, form submission) for
// such keys.
func (m Model) IsActionKey(msg tea.KeyMsg) bool {
	km := m.cfg.KeyMap
	return key.Matches(msg, km.Up, km.Down, km.Accept, km.Dismiss, km.Reserved)
}

// Check is the entry point for every key the host field receives.
//
// Action keys navigate, accept or dismiss. Any other key mirrors ev.Value and
// recomputes the suggestions from scratch.
func (m Model) Check(ev KeyEvent) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(ev.Key, km.Down):
		m.state = m.state.Next()
		m.debug("down", "highlight", m.state.Highlight)
	case key.Matches(ev.Key, km.Up):
		m.state = m.state.Prev()
		m.debug("up", "highlight", m.state.Highlight)
	case key.Matches(ev.Key, km.Accept):
		return m.accept()
	case key.Matches(ev.Key, km.Dismiss):
		m.state = m.state.Dismiss()
		m.debug("dismiss")
	case key.Matches(ev.Key, km.Reserved):
	default:
		m.state = m.state.Type(ev.Value, m.index)
		m.debug("input", "matches", len(m.state.Matches))
	}
	return m, nil
}

func (m Model) accept() (Model, tea.Cmd) {
	next, text, ok := m.state.Accept()
	if !ok {
		id := m.id
		return m, func() tea.Msg { return SubmitMsg{ID: id} }
	}
	m.state = next
	m.complete(text)
	return m, nil
}
