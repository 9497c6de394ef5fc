package autocomplete

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestView_HiddenReturnsChildren(t *testing.T) {
	m := New(Config{Style: plainStyle()})
	if got, want := m.View("> alice"), "> alice"; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
	m = typeValue(t, m, "a@zz")
	if got, want := m.View("> a@zz"), "> a@zz"; got != want {
		t.Fatalf("view without matches: got %q, want %q", got, want)
	}
}

func TestView_RendersRowsBelowChildren(t *testing.T) {
	m := typeValue(t, New(Config{Style: plainStyle()}), "a@yahoo.")
	lines := strings.Split(m.View("> a@yahoo."), "\n")

	want := []string{
		"> a@yahoo.     ",
		"┌─────────────┐",
		"│a@yahoo.co.uk│",
		"│a@yahoo.com  │",
		"└─────────────┘",
	}
	if len(lines) != len(want) {
		t.Fatalf("view lines: got %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestView_HighlightUsesSelectedStyle(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	st := Style{
		Container:  r.NewStyle(),
		Overlay:    r.NewStyle().Border(lipgloss.NormalBorder()),
		Suggestion: r.NewStyle(),
		Selected:   r.NewStyle().Reverse(true),
		Typed:      r.NewStyle(),
		Completion: r.NewStyle(),
	}

	m := typeValue(t, New(Config{Style: st}), "a@yahoo.")
	if strings.Contains(m.View(""), "\x1b[7m") {
		t.Fatalf("no row should be reversed before navigation")
	}

	m, _ = press(t, m, keyDown)
	lines := strings.Split(m.View(""), "\n")
	if !strings.Contains(lines[1], "\x1b[7m") {
		t.Fatalf("highlighted row should be reversed: %q", lines[1])
	}
	if strings.Contains(lines[2], "\x1b[7m") {
		t.Fatalf("other rows should not be reversed: %q", lines[2])
	}
}

func TestView_MaxWidthTruncatesRows(t *testing.T) {
	m := typeValue(t, New(Config{Style: plainStyle(), MaxWidth: 10}), "a@yahoo.")
	lines := strings.Split(m.View(""), "\n")
	if got, want := lines[1], "│a@yahoo.co│"; got != want {
		t.Fatalf("truncated row: got %q, want %q", got, want)
	}
	if got, want := lines[2], "│a@yahoo.co│"; got != want {
		t.Fatalf("truncated row: got %q, want %q", got, want)
	}
}

func TestView_CSSOverridesOverlay(t *testing.T) {
	css := CSS{"overlay": map[string]any{"border": "none", "padding": []any{int64(0), int64(1)}}}
	m := typeValue(t, New(Config{Style: plainStyle(), CSS: css}), "a@gmail.c")

	if got, want := m.View(""), " a@gmail.com "; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}

func TestOverlay_CompositesAtOrigin(t *testing.T) {
	m := New(Config{Style: plainStyle()}).SetOrigin(2, 0).SetSize(10, 1)
	m = typeValue(t, m, "a@gmail.c")

	screen := strings.Join([]string{
		"..........................",
		"..........................",
		"..........................",
		"..........................",
	}, "\n")
	lines := strings.Split(m.Overlay(screen), "\n")
	if got, want := len(lines), 4; got != want {
		t.Fatalf("overlay lines: got %d, want %d", got, want)
	}
	if got, want := lines[0], ".........................."; got != want {
		t.Fatalf("row above popup changed: %q", got)
	}
	if got, want := lines[2], "..│a@gmail.com│..........."; got != want {
		t.Fatalf("popup row: got %q, want %q", got, want)
	}
}

func TestOverlay_HiddenLeavesScreen(t *testing.T) {
	m := New(Config{Style: plainStyle()})
	if got, want := m.Overlay("abc\ndef"), "abc\ndef"; got != want {
		t.Fatalf("overlay: got %q, want %q", got, want)
	}
}
