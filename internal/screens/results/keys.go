package results

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/lovequiz/internal/ui/layout"
)

type keyMap struct {
	Screenshot key.Binding
	Share      key.Binding
	Restart    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Screenshot: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Screenshot"),
		),
		Share: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Copy"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "Try Again"),
		),
	}
}

func (k keyMap) hints() []layout.KeyHint {
	var hints []layout.KeyHint
	for _, b := range []key.Binding{k.Screenshot, k.Share, k.Restart} {
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}
