package question

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/lovequiz/internal/ui/layout"
)

type keyMap struct {
	Yes   key.Binding
	No    key.Binding
	Focus key.Binding
	Press key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "No"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("←→", "Focus"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("Enter", "Choose"),
		),
	}
}

func (k keyMap) hints() []layout.KeyHint {
	bindings := []key.Binding{k.Yes, k.No, k.Focus, k.Press}
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}
