package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/faizmokh/daftar/internal/locale"
)

type homeKeyMap struct {
	Submit   key.Binding
	Navigate key.Binding
	Quit     key.Binding
}

func (k homeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Navigate, k.Quit}
}

func (k homeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type resultKeyMap struct {
	Back key.Binding
	Quit key.Binding
}

func (k resultKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}

func (k resultKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newHomeKeys(s *locale.Strings) homeKeyMap {
	return homeKeyMap{
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", s.Get(locale.ButtonSubmit))),
		Navigate: key.NewBinding(key.WithKeys("tab", "ctrl+n"), key.WithHelp("tab", s.Get(locale.ButtonNavigate))),
		// Letters belong to the text input on home.
		Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", s.Get(locale.HelpQuit))),
	}
}

func newResultKeys(s *locale.Strings) resultKeyMap {
	return resultKeyMap{
		Back: key.NewBinding(key.WithKeys("esc", "backspace", "left", "h"), key.WithHelp("esc", s.Get(locale.HelpBack))),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", s.Get(locale.HelpQuit))),
	}
}
