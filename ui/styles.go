package ui

import (
	"github.com/KharpukhaevV/folio/theme"
	"github.com/KharpukhaevV/folio/utils"
	"github.com/charmbracelet/lipgloss"
)

// Styles стили приложения, построенные по палитре активной темы
type Styles struct {
	Palette theme.Palette

	App          lipgloss.Style
	Title        lipgloss.Style
	Toggle       lipgloss.Style
	Section      lipgloss.Style
	Text         lipgloss.Style
	Muted        lipgloss.Style
	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	CardTitle    lipgloss.Style
	Action       lipgloss.Style
	Input        lipgloss.Style
	FocusedInput lipgloss.Style
	InvalidInput lipgloss.Style
	Overlay      lipgloss.Style
	Success      lipgloss.Style
	Error        lipgloss.Style
	Warning      lipgloss.Style
	Info         lipgloss.Style
}

// NewStyles строит стили для палитры
func NewStyles(p theme.Palette) Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	input := lipgloss.NewStyle().
		Width(utils.DefaultInputWidth).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, utils.DefaultPadding)

	return Styles{
		Palette: p,

		App: lipgloss.NewStyle().Padding(0, 2),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(p.Primary).
			Bold(true).
			Padding(0, 1),

		Toggle: lipgloss.NewStyle().
			Foreground(p.Accent).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),

		Section: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true).
			Underline(true),

		Text:  lipgloss.NewStyle().Foreground(p.Foreground),
		Muted: lipgloss.NewStyle().Foreground(p.Muted),

		Card: card,
		SelectedCard: card.
			BorderForeground(p.Primary).
			BorderStyle(lipgloss.ThickBorder()),
		CardTitle: lipgloss.NewStyle().Foreground(p.Foreground).Bold(true),
		Action:    lipgloss.NewStyle().Foreground(p.Accent),

		Input:        input,
		FocusedInput: input.BorderForeground(p.Primary),
		InvalidInput: input.BorderForeground(p.Error),

		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(1, 2).
			Width(utils.OverlayWidth),

		Success: lipgloss.NewStyle().Foreground(p.Success),
		Error:   lipgloss.NewStyle().Foreground(p.Error),
		Warning: lipgloss.NewStyle().Foreground(p.Warning),
		Info:    lipgloss.NewStyle().Foreground(p.Info),
	}
}

// Message выбирает стиль для сообщения по его типу
func (s Styles) Message(messageType string) lipgloss.Style {
	switch messageType {
	case "success":
		return s.Success
	case "info":
		return s.Info
	case "warning":
		return s.Warning
	default:
		return s.Error
	}
}
