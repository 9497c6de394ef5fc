package autocomplete

import tea "github.com/charmbracelet/bubbletea"

// PointerHub is the program-wide pointer subscription registry.
//
// Terminal mouse reporting is a process-wide resource: the hub turns it on for
// the first mounted component and off again after the last one unmounts. A
// component instance holds at most one subscription no matter how many times
// it is mounted. Like the rest of a Bubble Tea program it is used from Update
// only and is not safe for concurrent use.
type PointerHub struct {
	subs map[int]struct{}
}

func NewPointerHub() *PointerHub {
	return &PointerHub{subs: make(map[int]struct{})}
}

// Subscribe registers id. The returned command enables mouse reporting when id
// is the first subscriber. ok is false when id was already subscribed.
func (h *PointerHub) Subscribe(id int) (cmd tea.Cmd, ok bool) {
	if h.subs == nil {
		h.subs = make(map[int]struct{})
	}
	if _, exists := h.subs[id]; exists {
		return nil, false
	}
	h.subs[id] = struct{}{}
	if len(h.subs) == 1 {
		return tea.EnableMouseCellMotion, true
	}
	return nil, true
}

// Unsubscribe releases id. The returned command disables mouse reporting when
// the last subscriber leaves.
func (h *PointerHub) Unsubscribe(id int) tea.Cmd {
	if _, exists := h.subs[id]; !exists {
		return nil
	}
	delete(h.subs, id)
	if len(h.subs) == 0 {
		return tea.DisableMouse
	}
	return nil
}

// Subscribed reports whether id holds a live subscription.
func (h *PointerHub) Subscribed(id int) bool {
	if h == nil {
		return false
	}
	_, ok := h.subs[id]
	return ok
}

// Len returns the number of live subscriptions.
func (h *PointerHub) Len() int {
	if h == nil {
		return 0
	}
	return len(h.subs)
}
