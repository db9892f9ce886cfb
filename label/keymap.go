package label

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the label key bindings.
type KeyMap struct {
	// Cancel aborts a press in progress so the release does not tap.
	Cancel key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel tap")),
	}
}
