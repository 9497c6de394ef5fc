package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// ClusterWidth returns the terminal cell width of one grapheme cluster.
// Visible clusters are at least one cell wide.
func ClusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Width returns the terminal cell width of text.
func Width(text string) int {
	w := 0
	for _, c := range Split(text) {
		w += ClusterWidth(c)
	}
	return w
}

// Truncate cuts text to at most width cells without splitting a cluster.
// A wide cluster that does not fit is replaced by spaces.
func Truncate(text string, width int) string {
	if width <= 0 || text == "" {
		return ""
	}
	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		w := ClusterWidth(c)
		if used+w > width {
			sb.WriteString(strings.Repeat(" ", width-used))
			break
		}
		sb.WriteString(c)
		used += w
		if used == width {
			break
		}
	}
	return sb.String()
}
