package autocomplete

import (
	tea "github.com/charmbracelet/bubbletea"
)

// updateMouse handles left presses: a press on a suggestion row accepts it, a
// press outside the component hides the popup and keeps its matches.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.Mounted() {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if row, ok := m.rowAt(msg.X, msg.Y); ok {
		if next, text, ok := m.state.Pick(row); ok {
			m.state = next
			m.complete(text)
		}
		return m, nil
	}

	if !m.contains(msg.X, msg.Y) && m.state.Visible {
		m.state = m.state.Hide()
		m.debug("outside click", "x", msg.X, "y", msg.Y)
	}
	return m, nil
}

// contains reports whether the screen cell (x, y) belongs to the component:
// either the host children area or the visible popup.
func (m Model) contains(x, y int) bool {
	if inRect(x, y, m.x, m.y, m.width, m.height) {
		return true
	}
	p, ok := m.popupLayout()
	if !ok {
		return false
	}
	return inRect(x, y, p.x, p.y, p.width, p.height)
}

// rowAt maps a screen cell to the index of the suggestion row under it.
func (m Model) rowAt(x, y int) (int, bool) {
	p, ok := m.popupLayout()
	if !ok {
		return 0, false
	}
	if !inRect(x, y, p.rowX, p.rowY, p.rowWidth, p.rows) {
		return 0, false
	}
	return y - p.rowY, true
}

func inRect(x, y, left, top, width, height int) bool {
	return width > 0 && height > 0 &&
		x >= left && x < left+width &&
		y >= top && y < top+height
}
