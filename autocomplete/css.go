package autocomplete

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CSS is a nested style configuration, typically decoded from TOML tables.
//
// Leaves are style objects: maps with keys color, background, bold, italic,
// underline, faint, reverse, padding, margin, border, border-color and width.
// Unknown keys and values of the wrong type are ignored.
type CSS map[string]any

// Lookup walks a dot-separated path and returns the style object found there.
// A nil CSS, a missing segment or a non-object along the way yields nothing.
func (c CSS) Lookup(path string) (map[string]any, bool) {
	if c == nil {
		return nil, false
	}
	var cur any = map[string]any(c)
	for _, seg := range strings.Split(path, ".") {
		obj, ok := asObject(cur)
		if !ok {
			return nil, false
		}
		if cur, ok = obj[seg]; !ok || cur == nil {
			return nil, false
		}
	}
	return asObject(cur)
}

// Style converts the object at path into a lipgloss style.
func (c CSS) Style(path string) (lipgloss.Style, bool) {
	props, ok := c.Lookup(path)
	if !ok {
		return lipgloss.Style{}, false
	}
	return styleFromProps(props), true
}

func asObject(v any) (map[string]any, bool) {
	switch o := v.(type) {
	case map[string]any:
		return o, true
	case CSS:
		return o, true
	default:
		return nil, false
	}
}

func styleFromProps(props map[string]any) lipgloss.Style {
	s := lipgloss.NewStyle()
	for k, v := range props {
		switch k {
		case "color", "foreground":
			if c, ok := asColor(v); ok {
				s = s.Foreground(c)
			}
		case "background", "background-color":
			if c, ok := asColor(v); ok {
				s = s.Background(c)
			}
		case "border-color":
			if c, ok := asColor(v); ok {
				s = s.BorderForeground(c)
			}
		case "bold":
			if b, ok := v.(bool); ok {
				s = s.Bold(b)
			}
		case "italic":
			if b, ok := v.(bool); ok {
				s = s.Italic(b)
			}
		case "underline":
			if b, ok := v.(bool); ok {
				s = s.Underline(b)
			}
		case "faint":
			if b, ok := v.(bool); ok {
				s = s.Faint(b)
			}
		case "reverse":
			if b, ok := v.(bool); ok {
				s = s.Reverse(b)
			}
		case "padding":
			if sides, ok := asSides(v); ok {
				s = s.Padding(sides...)
			}
		case "margin":
			if sides, ok := asSides(v); ok {
				s = s.Margin(sides...)
			}
		case "width":
			if n, ok := asInt(v); ok && n > 0 {
				s = s.Width(n)
			}
		case "border":
			if v == "none" {
				s = s.BorderTop(false).BorderRight(false).BorderBottom(false).BorderLeft(false)
				continue
			}
			if b, ok := borderByName(v); ok {
				s = s.Border(b)
			}
		}
	}
	return s
}

func asColor(v any) (lipgloss.Color, bool) {
	switch c := v.(type) {
	case string:
		if c == "" {
			return "", false
		}
		return lipgloss.Color(c), true
	default:
		if n, ok := asInt(v); ok && n >= 0 {
			return lipgloss.Color(strconv.Itoa(n)), true
		}
		return "", false
	}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// asSides accepts a single number or a list of one to four numbers, in the
// same order lipgloss.Padding takes them.
func asSides(v any) ([]int, bool) {
	if n, ok := asInt(v); ok {
		return []int{n}, true
	}
	var items []any
	switch l := v.(type) {
	case []any:
		items = l
	case []int:
		for _, n := range l {
			items = append(items, n)
		}
	case []int64:
		for _, n := range l {
			items = append(items, n)
		}
	default:
		return nil, false
	}
	if len(items) == 0 || len(items) > 4 {
		return nil, false
	}
	out := make([]int, 0, len(items))
	for _, it := range items {
		n, ok := asInt(it)
		if !ok || n < 0 {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

func borderByName(v any) (lipgloss.Border, bool) {
	name, _ := v.(string)
	switch name {
	case "normal":
		return lipgloss.NormalBorder(), true
	case "rounded":
		return lipgloss.RoundedBorder(), true
	case "thick":
		return lipgloss.ThickBorder(), true
	case "double":
		return lipgloss.DoubleBorder(), true
	case "block":
		return lipgloss.BlockBorder(), true
	case "hidden":
		return lipgloss.HiddenBorder(), true
	default:
		return lipgloss.Border{}, false
	}
}
