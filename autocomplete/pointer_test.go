package autocomplete

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func msgType(cmd tea.Cmd) string {
	if cmd == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", cmd())
}

func TestPointerHub_EnablesForFirstAndDisablesAfterLast(t *testing.T) {
	hub := NewPointerHub()
	enable := msgType(tea.EnableMouseCellMotion)
	disable := msgType(tea.DisableMouse)

	cmd, ok := hub.Subscribe(1)
	if !ok || msgType(cmd) != enable {
		t.Fatalf("first subscribe: got (%s, %v), want (%s, true)", msgType(cmd), ok, enable)
	}
	cmd, ok = hub.Subscribe(2)
	if !ok || cmd != nil {
		t.Fatalf("second subscribe should not toggle mouse mode")
	}
	if _, ok := hub.Subscribe(2); ok {
		t.Fatalf("duplicate subscribe should be rejected")
	}
	if got, want := hub.Len(), 2; got != want {
		t.Fatalf("subscribers: got %d, want %d", got, want)
	}

	if cmd := hub.Unsubscribe(1); cmd != nil {
		t.Fatalf("unsubscribe with others left should not toggle mouse mode")
	}
	if cmd := hub.Unsubscribe(1); cmd != nil {
		t.Fatalf("repeated unsubscribe should be a no-op")
	}
	if got := msgType(hub.Unsubscribe(2)); got != disable {
		t.Fatalf("last unsubscribe: got %s, want %s", got, disable)
	}
	if hub.Len() != 0 || hub.Subscribed(2) {
		t.Fatalf("hub should be empty")
	}
}

func TestModel_MountIsIdempotent(t *testing.T) {
	hub := NewPointerHub()
	m := New(Config{})

	m, cmd := m.Mount(hub)
	if got, want := msgType(cmd), msgType(tea.EnableMouseCellMotion); got != want {
		t.Fatalf("mount command: got %s, want %s", got, want)
	}
	for i := 0; i < 3; i++ {
		m, cmd = m.Mount(hub)
		if cmd != nil {
			t.Fatalf("re-mount should not return a command")
		}
	}
	if got, want := hub.Len(), 1; got != want {
		t.Fatalf("subscriptions after re-mount: got %d, want %d", got, want)
	}
	if !m.Mounted() {
		t.Fatalf("model should be mounted")
	}

	m, cmd = m.Unmount()
	if got, want := msgType(cmd), msgType(tea.DisableMouse); got != want {
		t.Fatalf("unmount command: got %s, want %s", got, want)
	}
	if m.Mounted() || hub.Len() != 0 {
		t.Fatalf("unmount should release the subscription")
	}
	if _, cmd := m.Unmount(); cmd != nil {
		t.Fatalf("second unmount should be a no-op")
	}
}

func TestModel_MountOnNewHubReleasesOld(t *testing.T) {
	a, b := NewPointerHub(), NewPointerHub()
	m, _ := New(Config{}).Mount(a)
	m, _ = m.Mount(b)
	if a.Len() != 0 || b.Len() != 1 {
		t.Fatalf("subscriptions: got a=%d b=%d, want a=0 b=1", a.Len(), b.Len())
	}
	if !m.Mounted() {
		t.Fatalf("model should be mounted on the new hub")
	}
}

func TestModel_StaleCopyLosesSubscription(t *testing.T) {
	hub := NewPointerHub()
	m, _ := New(Config{}).Mount(hub)
	stale := m
	_, _ = m.Unmount()
	if stale.Mounted() {
		t.Fatalf("copies share one subscription per instance")
	}
}
