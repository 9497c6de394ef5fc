package suggest

import "fmt"

// Phase names the interaction state derived from State.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseSuggesting
	PhaseHighlighted
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSuggesting:
		return "suggesting"
	case PhaseHighlighted:
		return "highlighted"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// State is the keyboard/mouse interaction state of one input.
//
// The zero value is idle. Transitions are value methods returning the next
// state; none of them mutate the receiver's Matches slice.
type State struct {
	// Input mirrors the host field value as of the last ordinary key.
	Input string

	Matches []Suggestion

	// Highlight is meaningful only when Highlighted is true.
	Highlight   int
	Highlighted bool

	Visible bool
}

// Phase reports the state machine phase.
func (s State) Phase() Phase {
	switch {
	case !s.Showing():
		return PhaseIdle
	case s.Highlighted:
		return PhaseHighlighted
	default:
		return PhaseSuggesting
	}
}

// Showing reports whether the suggestion overlay should be drawn.
func (s State) Showing() bool { return s.Visible && len(s.Matches) > 0 }

// Current returns the highlighted suggestion, if any.
func (s State) Current() (Suggestion, bool) {
	if !s.Highlighted || s.Highlight < 0 || s.Highlight >= len(s.Matches) {
		return Suggestion{}, false
	}
	return s.Matches[s.Highlight], true
}

// Type records value as the input, clears the previous matches and highlight,
// then recomputes suggestions with m.
func (s State) Type(value string, m Matcher) State {
	s.Input = value
	s = s.reset()
	s.Visible = false

	local, ok := SplitLocalPart(value)
	if !ok || m == nil {
		return s
	}
	if matches := m.Match(local); len(matches) > 0 {
		s.Matches = matches
		s.Visible = true
	}
	return s
}

// Next moves the highlight down, starting at the first suggestion. It stops at
// the last suggestion.
func (s State) Next() State {
	if len(s.Matches) == 0 {
		return s
	}
	if !s.Highlighted {
		s.Highlighted = true
		s.Highlight = 0
		return s
	}
	if s.Highlight+1 < len(s.Matches) {
		s.Highlight++
	}
	return s
}

// Prev moves the highlight up. It never clears the highlight and never wraps.
func (s State) Prev() State {
	if len(s.Matches) == 0 {
		return s
	}
	if s.Highlighted && s.Highlight > 0 {
		s.Highlight--
	}
	return s
}

// Accept completes the input with the highlighted suggestion.
//
// When nothing is highlighted ok is false and the state is returned unchanged.
func (s State) Accept() (next State, text string, ok bool) {
	if !s.Highlighted {
		return s, "", false
	}
	return s.Pick(s.Highlight)
}

// Pick completes the input with the suggestion at index i.
func (s State) Pick(i int) (next State, text string, ok bool) {
	if i < 0 || i >= len(s.Matches) {
		return s, "", false
	}
	text = s.Input + s.Matches[i].Completion
	return s.Dismiss(), text, true
}

// Dismiss hides the overlay and drops the matches and highlight.
func (s State) Dismiss() State {
	s = s.reset()
	s.Visible = false
	return s
}

// Hide hides the overlay and keeps matches and highlight in place. The next
// ordinary key recomputes them anyway.
func (s State) Hide() State {
	s.Visible = false
	return s
}

func (s State) reset() State {
	s.Matches = nil
	s.Highlight = 0
	s.Highlighted = false
	return s
}
