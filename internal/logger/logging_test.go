package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		name string
		want log.Level
	}{
		{name: "", want: log.WarnLevel},
		{name: "debug", want: log.DebugLevel},
		{name: " INFO ", want: log.InfoLevel},
		{name: "error", want: log.ErrorLevel},
		{name: "chatty", want: log.WarnLevel},
	}
	for _, tc := range cases {
		if got := ParseLevel(tc.name); got != tc.want {
			t.Fatalf("ParseLevel(%q): got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestNew_RespectsLevelAndPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "mailfill", log.InfoLevel)
	l.Debug("hidden")
	l.Info("shown", "phase", "idle")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered: %q", out)
	}
	if !strings.Contains(out, "mailfill") || !strings.Contains(out, "shown") || !strings.Contains(out, "phase=idle") {
		t.Fatalf("unexpected output: %q", out)
	}
}
