package ui

import (
	"fmt"
	"strings"

	"github.com/KharpukhaevV/folio/reveal"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// block часть страницы; наблюдаемые блоки остаются пустыми, пока не появятся
type block struct {
	id      string
	content string
	observe bool
}

// row строка страницы из одного или нескольких блоков
type row struct {
	blocks []block
	top    int
	height int
}

// page разметка страницы с координатами строк
type page struct {
	rows []row
	next int
}

// add добавляет строку; между строками одна пустая строка
func (p *page) add(blocks ...block) {
	h := 0
	for _, b := range blocks {
		h = max(h, lipgloss.Height(b.content))
	}
	p.rows = append(p.rows, row{blocks: blocks, top: p.next, height: h})
	p.next += h + 1
}

// observe регистрирует наблюдаемые блоки
func (p page) observe(o *reveal.Observer) {
	for _, r := range p.rows {
		for _, b := range r.blocks {
			if b.observe {
				o.Observe(b.id, r.top, lipgloss.Height(b.content))
			}
		}
	}
}

// positions верхняя строка и высота каждого блока
func (p page) positions() map[string][2]int {
	pos := map[string][2]int{}
	for _, r := range p.rows {
		for _, b := range r.blocks {
			pos[b.id] = [2]int{r.top, lipgloss.Height(b.content)}
		}
	}
	return pos
}

// assemble собирает страницу с учётом видимости блоков
func (p page) assemble(o *reveal.Observer) string {
	lines := make([]string, 0, len(p.rows))
	for _, r := range p.rows {
		parts := make([]string, 0, 2*len(r.blocks))
		for i, b := range r.blocks {
			if i > 0 {
				parts = append(parts, strings.Repeat(" ", cardGap))
			}
			content := b.content
			if b.observe && !o.Visible(b.id) {
				content = blank(lipgloss.Width(b.content), lipgloss.Height(b.content))
			}
			parts = append(parts, content)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return strings.Join(lines, "\n\n")
}

// layoutPage раскладывает все разделы страницы
func (m *AppModel) layoutPage() page {
	width := m.Viewport.Width
	p := page{}

	p.add(block{id: "header", content: m.renderHeader(width)})
	p.add(block{id: "about", content: m.renderAbout(width), observe: true})
	p.add(block{id: "projects", content: m.renderProjectsStatus(width), observe: true})

	if len(m.Cards) > 0 {
		cols := cardColumns(width)
		cw := cardWidth(width, cols)
		for start := 0; start < len(m.Cards); start += cols {
			end := min(start+cols, len(m.Cards))
			blocks := make([]block, 0, cols)
			for i := start; i < end; i++ {
				blocks = append(blocks, block{
					id:      cardID(i),
					content: renderCard(m.Cards[i], m.Styles, cw, i == m.Selected),
					observe: true,
				})
			}
			p.add(blocks...)
		}
	}

	p.add(block{id: "contact", content: m.renderContact(width), observe: true})
	p.add(block{id: "footer", content: m.Styles.Muted.Render(fmt.Sprintf("© %d %s", m.app.Now().Year(), m.app.Config.Owner))})
	return p
}

// renderHeader заголовок и переключатель темы
func (m *AppModel) renderHeader(width int) string {
	title := m.Styles.Title.Render(m.app.Config.Owner + " · Portfolio")

	state := "○"
	if m.Theme.Pressed() {
		state = "◉"
	}
	toggle := m.Styles.Toggle.Render(fmt.Sprintf("[t] %s Dark mode", state))

	gap := max(width-lipgloss.Width(title)-lipgloss.Width(toggle), 1)
	return lipgloss.JoinHorizontal(lipgloss.Center, title, strings.Repeat(" ", gap), toggle)
}

// renderAbout раздел «обо мне» из Markdown
func (m *AppModel) renderAbout(width int) string {
	key := fmt.Sprintf("%s/%d", m.Styles.Palette.GlamourStyle, width)
	if m.aboutKey != key {
		m.aboutKey = key
		m.aboutView = m.app.Config.About

		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(m.Styles.Palette.GlamourStyle),
			glamour.WithWordWrap(width),
		)
		if err == nil {
			if out, err := r.Render(m.app.Config.About); err == nil {
				m.aboutView = strings.Trim(out, "\n")
			}
		}
	}
	return m.Styles.Section.Render("About") + "\n" + m.aboutView
}

// renderProjectsStatus заголовок раздела проектов и его состояние
func (m *AppModel) renderProjectsStatus(width int) string {
	doc := strings.Builder{}
	doc.WriteString(m.Styles.Section.Render("Projects") + "\n")

	switch {
	case m.Loading:
		doc.WriteString(fmt.Sprintf("%s Loading repositories...", m.Spinner.View()))
	case m.ProjectsError != "":
		doc.WriteString(m.Styles.Warning.Width(width).Render(m.ProjectsError))
	case m.ProjectsNotice != "":
		doc.WriteString(m.Styles.Info.Render(m.ProjectsNotice))
	default:
		doc.WriteString(m.Styles.Muted.Render(fmt.Sprintf("%d repositories, most recently updated first", len(m.Cards))))
	}
	return doc.String()
}

// renderContact раздел с контактной формой
func (m *AppModel) renderContact(width int) string {
	hint := "Press c to write a message"
	if m.Focus == focusForm {
		hint = "tab to switch fields, ctrl+s to send, esc to leave"
	}
	return m.Styles.Section.Render("Contact") + "\n" +
		m.Styles.Muted.Render(hint) + "\n\n" +
		m.Form.View(m.Styles)
}

// renderFooter сообщение и подсказка по клавишам под страницей
func (m *AppModel) renderFooter() string {
	doc := strings.Builder{}
	if m.Message != "" {
		doc.WriteString(m.Styles.Message(m.MessageType).Render(m.Message))
	}
	doc.WriteString("\n")

	bindings := m.Keys.PageHelp()
	if m.Focus == focusForm {
		bindings = m.Keys.FormHelp()
	}
	doc.WriteString(m.Help.ShortHelpView(bindings))
	return doc.String()
}

// renderOverlay окно с подробностями по центру экрана
func (m *AppModel) renderOverlay() string {
	content := m.Overlay.View(m.Styles) + "\n" + m.Help.ShortHelpView(m.Keys.OverlayHelp())
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, content)
}
