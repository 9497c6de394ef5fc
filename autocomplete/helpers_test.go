package autocomplete

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func plainStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return Style{
		Container:  r.NewStyle(),
		Overlay:    r.NewStyle().Border(lipgloss.NormalBorder()),
		Suggestion: r.NewStyle(),
		Selected:   r.NewStyle(),
		Typed:      r.NewStyle(),
		Completion: r.NewStyle(),
	}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

// typeValue simulates the host field receiving the last rune of value.
func typeValue(t *testing.T, m Model, value string) Model {
	t.Helper()
	last := value
	if r := []rune(value); len(r) > 0 {
		last = string(r[len(r)-1])
	}
	m, cmd := m.Check(KeyEvent{Key: runeKey(last), Value: value})
	if cmd != nil {
		t.Fatalf("typing %q should not return a command", value)
	}
	return m
}

func press(t *testing.T, m Model, k tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	if !m.IsActionKey(k) {
		t.Fatalf("%q should be an action key", k.String())
	}
	return m.Check(KeyEvent{Key: k})
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}
