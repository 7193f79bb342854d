package theme

import (
	"github.com/KharpukhaevV/folio/models"
	"github.com/charmbracelet/lipgloss"
)

// Palette цвета интерфейса для одного режима
type Palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	Success    lipgloss.Color
	Error      lipgloss.Color
	Warning    lipgloss.Color
	Info       lipgloss.Color
	// GlamourStyle стандартный стиль glamour для блока «обо мне»
	GlamourStyle string
}

// LightPalette цвета светлой темы
func LightPalette() Palette {
	return Palette{
		Background:   lipgloss.Color("#f4f5f6"),
		Foreground:   lipgloss.Color("#101F38"),
		Primary:      lipgloss.Color("#25A065"),
		Accent:       lipgloss.Color("#0d6efd"),
		Muted:        lipgloss.Color("240"),
		Border:       lipgloss.Color("#c8ccd2"),
		Card:         lipgloss.Color("#ffffff"),
		Success:      lipgloss.Color("#25A065"),
		Error:        lipgloss.Color("#d32f2f"),
		Warning:      lipgloss.Color("#b58900"),
		Info:         lipgloss.Color("#0b7285"),
		GlamourStyle: "light",
	}
}

// DarkPalette цвета тёмной темы
func DarkPalette() Palette {
	return Palette{
		Background:   lipgloss.Color("#0d1117"),
		Foreground:   lipgloss.Color("#c9d1d9"),
		Primary:      lipgloss.Color("#3fb950"),
		Accent:       lipgloss.Color("#58a6ff"),
		Muted:        lipgloss.Color("245"),
		Border:       lipgloss.Color("#30363d"),
		Card:         lipgloss.Color("#161b22"),
		Success:      lipgloss.Color("#3fb950"),
		Error:        lipgloss.Color("#f85149"),
		Warning:      lipgloss.Color("#FFC107"),
		Info:         lipgloss.Color("#2196F3"),
		GlamourStyle: "dark",
	}
}

// PaletteFor возвращает палитру режима
func PaletteFor(t models.Theme) Palette {
	if t.IsDark() {
		return DarkPalette()
	}
	return LightPalette()
}
