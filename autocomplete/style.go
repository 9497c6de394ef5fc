package autocomplete

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"
)

// Style controls rendering. CSS entries, when present, take precedence.
type Style struct {
	Container lipgloss.Style
	Overlay   lipgloss.Style

	// Suggestion is the row base; Selected is layered on top of it for the
	// highlighted row.
	Suggestion lipgloss.Style
	Selected   lipgloss.Style

	// Typed and Completion style the two segments of a row.
	Typed      lipgloss.Style
	Completion lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Container: lipgloss.NewStyle(),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")),
		Suggestion: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected:   lipgloss.NewStyle().Reverse(true),
		Typed:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Completion: lipgloss.NewStyle().Bold(true),
	}
}

func normalizeStyle(st Style) Style {
	if reflect.DeepEqual(st, Style{}) {
		return DefaultStyle()
	}
	return st
}

// resolvedStyle is Style with CSS applied.
type resolvedStyle struct {
	container, overlay lipgloss.Style
	row, selected      lipgloss.Style
	typed, completion  lipgloss.Style
}

func resolveStyles(st Style, css CSS) resolvedStyle {
	rs := resolvedStyle{
		container:  st.Container,
		overlay:    st.Overlay,
		row:        st.Suggestion,
		typed:      st.Typed,
		completion: st.Completion,
	}
	if s, ok := css.Style("container"); ok {
		rs.container = s.Inherit(st.Container)
	}
	if s, ok := css.Style("overlay"); ok {
		rs.overlay = s.Inherit(st.Overlay)
	}
	if s, ok := css.Style("text.suggestion"); ok {
		rs.row = s.Inherit(st.Suggestion)
	}
	rs.selected = st.Selected.Inherit(rs.row)
	return rs
}

// inline drops block properties so a style can wrap a single row segment.
func inline(s lipgloss.Style) lipgloss.Style {
	return s.Inline(true).UnsetWidth()
}

func frameLeft(s lipgloss.Style) int {
	return s.GetMarginLeft() + s.GetBorderLeftSize() + s.GetPaddingLeft()
}

func frameTop(s lipgloss.Style) int {
	return s.GetMarginTop() + s.GetBorderTopSize() + s.GetPaddingTop()
}
