package autocomplete

import "github.com/charmbracelet/log"

// Config configures the autocomplete Model.
type Config struct {
	// Domains replaces the built-in provider list. Nil or empty keeps the
	// defaults.
	Domains []string

	// OnCompletion receives the full completed text once per accepted
	// suggestion. Hosts use it to update their own field value.
	OnCompletion func(text string)

	// OnSubmit runs when enter is pressed with no suggestion highlighted. It is
	// invoked from Update when the SubmitMsg returned by Check comes back, never
	// from Check itself.
	OnSubmit func()

	// CSS overrides Style for the container, overlay and text.suggestion paths.
	CSS CSS

	KeyMap KeyMap
	Style  Style

	// MaxWidth caps suggestion rows in terminal cells. Zero means unbounded.
	MaxWidth int

	// Logger receives debug transitions. Nil disables logging.
	Logger *log.Logger
}
