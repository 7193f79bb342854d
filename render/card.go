package render

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/KharpukhaevV/folio/models"
)

const (
	// NoDescription подпись карточки без описания
	NoDescription = "No description provided."
	// NoLanguage заглушка для репозитория без языка
	NoLanguage = "—"
	// EmptyNotice сообщение вместо пустой сетки
	EmptyNotice = "No repositories to show."
)

// CardAction вторичное действие карточки
type CardAction int

const (
	// ActionDetails кнопка открытия окна с подробностями
	ActionDetails CardAction = iota
	// ActionLive ссылка на живое демо
	ActionLive
)

// CardView данные одной карточки с подставленными значениями по умолчанию
type CardView struct {
	Name        string
	Description string
	Language    string
	Stars       int
	RepoURL     string
	HomepageURL string
	Action      CardAction
	Repo        models.Repository
}

// NewCardView строит карточку по записи о репозитории
func NewCardView(repo models.Repository) CardView {
	card := CardView{
		Name:        repo.Name,
		Description: repo.Description,
		Language:    repo.Language,
		Stars:       repo.Stars,
		RepoURL:     repo.HTMLURL,
		HomepageURL: repo.Homepage,
		Action:      ActionDetails,
		Repo:        repo,
	}
	if card.Description == "" {
		card.Description = NoDescription
	}
	if card.Language == "" {
		card.Language = NoLanguage
	}
	if card.Stars < 0 {
		card.Stars = 0
	}
	if repo.HasHomepage() {
		card.Action = ActionLive
	}
	return card
}

// NewCardViews строит карточки в порядке списка
func NewCardViews(repos []models.Repository) []CardView {
	cards := make([]CardView, 0, len(repos))
	for _, repo := range repos {
		cards = append(cards, NewCardView(repo))
	}
	return cards
}

// markup шаблоны разметки. text/template вместо html/template: сущности
// для кавычек должны быть ровно &quot; и &#039;
var markup = template.Must(template.New("markup").Funcs(template.FuncMap{
	"esc":   EscapeHTML,
	"empty": func() string { return EmptyNotice },
}).Parse(cardTemplate + gridTemplate + errorTemplate))

// IsLive сообщает, ведёт ли вторичное действие на живое демо
func (c CardView) IsLive() bool {
	return c.Action == ActionLive
}

// CardHTML возвращает разметку карточки; все поля из внешней записи экранируются
func CardHTML(card CardView) string {
	return execute("card", card)
}

// GridHTML возвращает содержимое сетки проектов: по колонке на карточку
// либо уведомление, если показывать нечего
func GridHTML(repos []models.Repository) string {
	return execute("grid", NewCardViews(repos))
}

// ErrorHTML баннер об ошибке загрузки
func ErrorHTML(err error) string {
	return execute("error", err.Error())
}

// execute выполняет шаблон; данные всегда одного из известных типов,
// поэтому ошибка означает сломанный шаблон
func execute(name string, data any) string {
	var b strings.Builder
	if err := markup.ExecuteTemplate(&b, name, data); err != nil {
		panic(fmt.Sprintf("render %s: %v", name, err))
	}
	return b.String()
}
