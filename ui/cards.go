package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KharpukhaevV/folio/render"
	"github.com/KharpukhaevV/folio/utils"
	"github.com/charmbracelet/lipgloss"
)

const cardGap = 2

// cardColumns число колонок сетки: одна на узком экране, до трёх на широком
func cardColumns(width int) int {
	switch {
	case width >= 3*utils.CardWidth+2*cardGap:
		return 3
	case width >= 2*utils.CardWidth+cardGap:
		return 2
	default:
		return 1
	}
}

// cardWidth ширина одной карточки с рамкой
func cardWidth(width, cols int) int {
	w := (width - (cols-1)*cardGap) / cols
	return max(w, utils.MinInputWidth)
}

// cardID идентификатор карточки для наблюдения за прокруткой
func cardID(i int) string {
	return "card-" + strconv.Itoa(i)
}

// renderCard рендерит карточку репозитория. Текст из внешней записи
// очищается от управляющих последовательностей терминала.
func renderCard(card render.CardView, s Styles, width int, selected bool) string {
	style := s.Card
	if selected {
		style = s.SelectedCard
	}
	inner := width - style.GetHorizontalFrameSize()
	style = style.Width(width - style.GetHorizontalBorderSize())

	doc := strings.Builder{}
	doc.WriteString(s.CardTitle.Render(render.SanitizeText(card.Name)) + "\n")
	doc.WriteString(s.Muted.Render(render.SanitizeText(card.Description)) + "\n\n")

	lang := "</> " + render.SanitizeText(card.Language)
	stars := fmt.Sprintf("★ %d", card.Stars)
	gap := max(inner-lipgloss.Width(lang)-lipgloss.Width(stars), 1)
	doc.WriteString(s.Text.Render(lang) + strings.Repeat(" ", gap) + s.Warning.Render(stars) + "\n")

	actions := s.Action.Render("[o] View Repo") + "  "
	if card.Action == render.ActionLive {
		actions += s.Action.Render("[l] Live")
	} else {
		actions += s.Action.Render("[enter] Details")
	}
	doc.WriteString(actions)

	return style.Render(doc.String())
}

// blank пустой блок того же размера, что и скрытое содержимое
func blank(width, height int) string {
	if height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", max(width, 0))
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
