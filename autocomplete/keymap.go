package autocomplete

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the action keys. Every other key is treated as text input.
type KeyMap struct {
	Up, Down key.Binding
	Accept   key.Binding
	Dismiss  key.Binding

	// Reserved keys are claimed by the component but do nothing. Disabled by
	// default.
	Reserved key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous suggestion")),
		Down:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next suggestion")),
		Accept:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept / submit")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Accept, km.Dismiss}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}

func normalizeKeyMap(km KeyMap) KeyMap {
	if reflect.DeepEqual(km, KeyMap{}) {
		return DefaultKeyMap()
	}
	return km
}
