package autocomplete

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/mailfill/internal/grapheme"
	"github.com/iw2rmb/mailfill/suggest"
)

// popupLayout is the screen geometry of the rendered popup.
type popupLayout struct {
	view string

	// Outer block, container frame included.
	x, y, width, height int

	// First suggestion row and the row extent.
	rowX, rowY, rowWidth, rows int
}

// View renders the wrapper: the host children followed by the suggestion
// popup when it is showing.
func (m Model) View(children string) string {
	p, ok := m.popupLayout()
	if !ok {
		return children
	}
	if children == "" {
		return p.view
	}
	return lipgloss.JoinVertical(lipgloss.Left, children, p.view)
}

// Overlay draws the popup on top of a full host screen, below the children
// area set with SetOrigin and SetSize.
func (m Model) Overlay(screen string) string {
	p, ok := m.popupLayout()
	if !ok {
		return screen
	}
	return overlay.Composite(p.view, screen, overlay.Left, overlay.Top, p.x, p.y)
}

func (m Model) popupLayout() (popupLayout, bool) {
	if !m.state.Showing() {
		return popupLayout{}, false
	}
	rs := resolveStyles(m.cfg.Style, m.cfg.CSS)

	width := m.rowWidth()
	if width <= 0 {
		return popupLayout{}, false
	}
	rows := make([]string, 0, len(m.state.Matches))
	for i, s := range m.state.Matches {
		selected := m.state.Highlighted && i == m.state.Highlight
		rows = append(rows, m.renderRow(rs, s, selected, width))
	}

	view := rs.container.Render(rs.overlay.Render(strings.Join(rows, "\n")))
	top := m.y + m.height
	return popupLayout{
		view:     view,
		x:        m.x,
		y:        top,
		width:    lipgloss.Width(view),
		height:   lipgloss.Height(view),
		rowX:     m.x + frameLeft(rs.container) + frameLeft(rs.overlay),
		rowY:     top + frameTop(rs.container) + frameTop(rs.overlay),
		rowWidth: width,
		rows:     len(rows),
	}, true
}

func (m Model) rowWidth() int {
	typed := grapheme.Width(m.state.Input)
	width := 0
	for _, s := range m.state.Matches {
		if w := typed + grapheme.Width(s.Completion); w > width {
			width = w
		}
	}
	if m.cfg.MaxWidth > 0 && width > m.cfg.MaxWidth {
		width = m.cfg.MaxWidth
	}
	return width
}

// renderRow draws the typed text and the completion as two segments, padded to
// width.
func (m Model) renderRow(rs resolvedStyle, s suggest.Suggestion, selected bool, width int) string {
	base := rs.row
	if selected {
		base = rs.selected
	}
	base = inline(base)

	typed := grapheme.Truncate(m.state.Input, width)
	used := grapheme.Width(typed)
	completion := grapheme.Truncate(s.Completion, width-used)
	used += grapheme.Width(completion)

	var sb strings.Builder
	if typed != "" {
		sb.WriteString(inline(rs.typed).Inherit(base).Render(typed))
	}
	if completion != "" {
		sb.WriteString(inline(rs.completion).Inherit(base).Render(completion))
	}
	if used < width {
		sb.WriteString(base.Render(strings.Repeat(" ", width-used)))
	}
	return sb.String()
}
