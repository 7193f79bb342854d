package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/KharpukhaevV/folio/models"
	"github.com/KharpukhaevV/folio/render"
	"github.com/KharpukhaevV/folio/reveal"
	"github.com/KharpukhaevV/folio/theme"
	"github.com/KharpukhaevV/folio/utils"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Области фокуса
const (
	focusPage = iota
	focusForm
)

// Размер экрана до первого WindowSizeMsg
const (
	defaultWidth  = 100
	defaultHeight = 30
	footerHeight  = 2
)

// AppModel основная модель приложения
type AppModel struct {
	app    AppContext
	ctx    context.Context
	cancel context.CancelFunc

	Keys     KeyMap
	Help     help.Model
	Width    int
	Height   int
	ready    bool
	Viewport viewport.Model
	Spinner  spinner.Model

	Theme   *theme.Controller
	Styles  Styles
	Reveal  *reveal.Observer
	Overlay DetailOverlay
	Form    ContactForm
	Focus   int

	Loading        bool
	Cards          []render.CardView
	Selected       int
	ProjectsError  string
	ProjectsNotice string

	Message     string
	MessageType string // "success" or "error"

	content   string
	positions map[string][2]int
	aboutKey  string
	aboutView string
}

// NewAppModel создает модель; тема, наблюдение за прокруткой и форма
// готовы сразу, репозитории загружаются после Init
func NewAppModel(app AppContext) *AppModel {
	app = app.withDefaults()
	ctx, cancel := context.WithCancel(context.Background())

	m := &AppModel{
		app:     app,
		ctx:     ctx,
		cancel:  cancel,
		Keys:    DefaultKeys(),
		Help:    help.New(),
		Reveal:  reveal.NewObserver(app.Config.Reveal.Threshold),
		Form:    NewContactForm(app.Config.Contact.Recipient, app.Config.Contact.ResetDelay, app.Opener),
		Loading: app.Repos != nil,
	}

	themeCtl, err := theme.NewController(app.Prefs)
	if err != nil {
		app.Logger.Warn("failed to read theme preference", zap.Error(err))
	}
	m.Theme = themeCtl
	m.Styles = NewStyles(m.Theme.Palette())

	// Инициализация спиннера
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	m.Spinner = s

	m.Viewport = viewport.New(0, 0)
	m.resize(defaultWidth, defaultHeight)
	return m
}

// Init запускает загрузку репозиториев, не дожидаясь её
func (m *AppModel) Init() tea.Cmd {
	if m.app.Repos == nil {
		return nil
	}
	return tea.Batch(m.Spinner.Tick, m.app.Repos.LoadRepos(m.ctx))
}

// Content текущее содержимое страницы целиком
func (m *AppModel) Content() string {
	return m.content
}

// Update обновление состояния
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, m.quit()
		}
		var cmd tea.Cmd
		switch {
		case m.Overlay.Visible:
			cmd = m.updateOverlayState(msg)
		case m.Focus == focusForm:
			cmd = m.updateFormState(msg)
		default:
			cmd = m.updatePageState(msg)
		}
		cmds = append(cmds, cmd)

	case models.ReposLoadedMsg:
		cmds = append(cmds, m.reposLoaded(msg))

	case models.RevealCardsMsg:
		ids := make([]string, len(m.Cards))
		for i := range m.Cards {
			ids[i] = cardID(i)
		}
		m.Reveal.RevealAll(ids...)

	case models.ContactResetMsg:
		m.Form.Reset()

	case models.HandoffMsg:
		if msg.Err != nil {
			m.app.Logger.Warn("handoff failed", zap.String("uri", msg.URI), zap.Error(msg.Err))
			m.Message = fmt.Sprintf("Could not open %s: %v", msg.URI, msg.Err)
			m.MessageType = "error"
		}

	case spinner.TickMsg:
		if m.Loading {
			var cmd tea.Cmd
			m.Spinner, cmd = m.Spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	default:
		if m.Focus == focusForm {
			cmds = append(cmds, m.Form.Update(msg))
		}
	}

	m.refresh()
	return m, tea.Batch(cmds...)
}

// View отображение интерфейса
func (m *AppModel) View() string {
	if m.Overlay.Visible {
		return m.renderOverlay()
	}
	return m.Styles.App.Render(m.Viewport.View() + "\n" + m.renderFooter())
}

// reposLoaded убирает индикатор загрузки и показывает либо карточки,
// либо ошибку, либо уведомление о пустом списке
func (m *AppModel) reposLoaded(msg models.ReposLoadedMsg) tea.Cmd {
	m.Loading = false
	m.Cards = nil
	m.Selected = 0

	if msg.Err != nil {
		m.ProjectsError = fmt.Sprintf("Unable to load GitHub projects right now. (%v)", msg.Err)
		return nil
	}
	if len(msg.Repos) == 0 {
		m.ProjectsNotice = render.EmptyNotice
		return nil
	}

	m.Cards = render.NewCardViews(msg.Repos)
	return tea.Tick(m.app.Config.Reveal.CardDelay, func(time.Time) tea.Msg {
		return models.RevealCardsMsg{}
	})
}

// updatePageState обработка клавиш при просмотре страницы
func (m *AppModel) updatePageState(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m.quit()
	case key.Matches(msg, m.Keys.Up):
		m.Viewport.ScrollUp(1)
	case key.Matches(msg, m.Keys.Down):
		m.Viewport.ScrollDown(1)
	case key.Matches(msg, m.Keys.PageUp):
		m.Viewport.PageUp()
	case key.Matches(msg, m.Keys.PageDown):
		m.Viewport.PageDown()
	case key.Matches(msg, m.Keys.Prev):
		m.selectCard(m.Selected - 1)
	case key.Matches(msg, m.Keys.Next):
		m.selectCard(m.Selected + 1)
	case key.Matches(msg, m.Keys.Details):
		if card, ok := m.selectedCard(); ok {
			if card.Action == render.ActionDetails {
				m.Overlay.Open(card.Repo)
				return nil
			}
			return openURI(m.app.Opener, card.HomepageURL)
		}
	case key.Matches(msg, m.Keys.Live):
		if card, ok := m.selectedCard(); ok && card.Action == render.ActionLive {
			return openURI(m.app.Opener, card.HomepageURL)
		}
	case key.Matches(msg, m.Keys.Repo):
		if card, ok := m.selectedCard(); ok && card.RepoURL != "" {
			return openURI(m.app.Opener, card.RepoURL)
		}
	case key.Matches(msg, m.Keys.Theme):
		m.toggleTheme()
	case key.Matches(msg, m.Keys.Contact):
		m.Focus = focusForm
		m.scrollTo("contact")
		return m.Form.Focus()
	}
	return nil
}

// updateFormState обработка клавиш в контактной форме
func (m *AppModel) updateFormState(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.Keys.Back):
		m.Focus = focusPage
		m.Form.Blur()
	case key.Matches(msg, m.Keys.NextFld):
		return m.Form.Move(1)
	case key.Matches(msg, m.Keys.PrevFld):
		return m.Form.Move(-1)
	case key.Matches(msg, m.Keys.Send):
		return m.Form.Submit()
	default:
		// Обновляем активное поле ввода
		return m.Form.Update(msg)
	}
	return nil
}

// updateOverlayState обработка клавиш в окне с подробностями
func (m *AppModel) updateOverlayState(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.Keys.Back), key.Matches(msg, m.Keys.Quit):
		m.Overlay.Close()
	case key.Matches(msg, m.Keys.Repo):
		return openURI(m.app.Opener, m.Overlay.RepoURL)
	case key.Matches(msg, m.Keys.Live):
		if m.Overlay.DemoVisible {
			return openURI(m.app.Opener, m.Overlay.DemoURL)
		}
	}
	return nil
}

// toggleTheme переключает тему и перестраивает стили
func (m *AppModel) toggleTheme() {
	mode, err := m.Theme.Toggle()
	m.Styles = NewStyles(m.Theme.Palette())
	if err != nil {
		m.app.Logger.Warn("failed to save theme preference", zap.Error(err))
		m.Message = fmt.Sprintf("Theme switched to %s but could not be saved: %v", mode, err)
		m.MessageType = "error"
		return
	}
	m.app.Logger.Debug("theme toggled", zap.String("theme", string(mode)))
}

func (m *AppModel) selectedCard() (render.CardView, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Cards) {
		return render.CardView{}, false
	}
	return m.Cards[m.Selected], true
}

func (m *AppModel) selectCard(i int) {
	if len(m.Cards) == 0 {
		return
	}
	m.Selected = min(max(i, 0), len(m.Cards)-1)
	m.scrollTo(cardID(m.Selected))
}

// scrollTo прокручивает страницу так, чтобы блок был виден
func (m *AppModel) scrollTo(id string) {
	pos, ok := m.positions[id]
	if !ok {
		return
	}
	top, height := pos[0], pos[1]
	if top < m.Viewport.YOffset || top+height > m.Viewport.YOffset+m.Viewport.Height {
		m.Viewport.SetYOffset(top)
	}
}

// resize подгоняет область просмотра под размер экрана
func (m *AppModel) resize(width, height int) {
	m.Width = width
	m.Height = height
	m.Viewport.Width = max(width-m.Styles.App.GetHorizontalFrameSize(), utils.MinInputWidth)
	m.Viewport.Height = max(height-footerHeight, 1)
	m.Help.Width = m.Viewport.Width
	m.Form.SetWidth(min(utils.DefaultInputWidth, m.Viewport.Width) - 4)
	m.refresh()
}

// refresh перестраивает страницу и показывает блоки, попавшие в область просмотра.
// До первого WindowSizeMsg размер экрана неизвестен, и блоки не показываются.
func (m *AppModel) refresh() {
	p := m.layoutPage()
	p.observe(m.Reveal)
	m.positions = p.positions()

	m.content = p.assemble(m.Reveal)
	m.Viewport.SetContent(m.content)
	if !m.ready {
		return
	}
	if revealed := m.Reveal.Update(m.Viewport.YOffset, m.Viewport.Height); len(revealed) > 0 {
		m.content = p.assemble(m.Reveal)
		m.Viewport.SetContent(m.content)
	}
}

// quit отменяет незавершённую загрузку и завершает программу
func (m *AppModel) quit() tea.Cmd {
	m.cancel()
	return tea.Quit
}
