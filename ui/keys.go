package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap определяет клавиши навигации
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Prev     key.Binding
	Next     key.Binding
	Details  key.Binding
	Live     key.Binding
	Repo     key.Binding
	Theme    key.Binding
	Contact  key.Binding
	NextFld  key.Binding
	PrevFld  key.Binding
	Send     key.Binding
	Quit     key.Binding
	Back     key.Binding
}

// DefaultKeys возвращает стандартные клавиши
func DefaultKeys() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " "),
			key.WithHelp("pgdn", "page down"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "p"),
			key.WithHelp("←/p", "prev project"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "n"),
			key.WithHelp("→/n", "next project"),
		),
		Details: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Live: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "live demo"),
		),
		Repo: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "view repo"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		Contact: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "contact"),
		),
		NextFld: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevFld: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Send: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "send"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("ctrl+c/q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

// PageHelp подсказка для режима просмотра страницы
func (k KeyMap) PageHelp() []key.Binding {
	return []key.Binding{k.Down, k.Next, k.Details, k.Repo, k.Live, k.Theme, k.Contact, k.Quit}
}

// FormHelp подсказка для режима заполнения формы
func (k KeyMap) FormHelp() []key.Binding {
	return []key.Binding{k.NextFld, k.Send, k.Back}
}

// OverlayHelp подсказка для окна с подробностями
func (k KeyMap) OverlayHelp() []key.Binding {
	return []key.Binding{k.Repo, k.Live, k.Back}
}
