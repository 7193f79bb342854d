package ui

import (
	"strconv"
	"strings"

	"github.com/KharpukhaevV/folio/models"
	"github.com/KharpukhaevV/folio/render"
)

const (
	// overlayNoDescription подпись в окне для репозитория без описания
	overlayNoDescription = "No description."
	// noopLink ссылка-заглушка для скрытого демо
	noopLink = "#"
)

// DetailOverlay окно с подробностями о репозитории.
// Поля хранятся как обычный текст, без HTML-экранирования.
type DetailOverlay struct {
	Visible     bool
	Title       string
	Description string
	Language    string
	Stars       string
	RepoURL     string
	DemoURL     string
	DemoVisible bool
}

// Open заполняет все поля по записи и показывает окно.
// Повторный вызов перезаписывает поля целиком.
func (o *DetailOverlay) Open(repo models.Repository) {
	o.Title = repo.Name
	o.Description = repo.Description
	if o.Description == "" {
		o.Description = overlayNoDescription
	}
	o.Language = repo.Language
	if o.Language == "" {
		o.Language = render.NoLanguage
	}
	o.Stars = "0"
	if repo.Stars > 0 {
		o.Stars = strconv.Itoa(repo.Stars)
	}
	o.RepoURL = repo.HTMLURL

	if repo.HasHomepage() {
		o.DemoURL = repo.Homepage
		o.DemoVisible = true
	} else {
		o.DemoURL = noopLink
		o.DemoVisible = false
	}
	o.Visible = true
}

// Close скрывает окно
func (o *DetailOverlay) Close() {
	o.Visible = false
}

// View рендерит содержимое окна
func (o DetailOverlay) View(s Styles) string {
	doc := strings.Builder{}

	doc.WriteString(s.CardTitle.Render(render.SanitizeText(o.Title)) + "\n\n")
	doc.WriteString(s.Text.Render(render.SanitizeText(o.Description)) + "\n\n")
	doc.WriteString(s.Muted.Render("Language: ") + render.SanitizeText(o.Language) + "\n")
	doc.WriteString(s.Muted.Render("Stars:    ") + o.Stars + "\n\n")

	doc.WriteString(s.Action.Render("[o] View repository") + "  " + s.Muted.Render(render.SanitizeText(o.RepoURL)) + "\n")
	if o.DemoVisible {
		doc.WriteString(s.Action.Render("[l] Live demo") + "  " + s.Muted.Render(render.SanitizeText(o.DemoURL)) + "\n")
	}

	return s.Overlay.Render(strings.TrimRight(doc.String(), "\n"))
}
