package ui

import (
	"strings"
	"time"

	"github.com/KharpukhaevV/folio/contact"
	"github.com/KharpukhaevV/folio/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Поля контактной формы
const (
	nameField = iota
	emailField
	messageField
	fieldCount
)

// ContactForm контактная форма: проверка полей и передача письма почтовому клиенту
type ContactForm struct {
	NameInput    textinput.Model
	EmailInput   textinput.Model
	MessageInput textarea.Model

	FormState  int
	Invalid    *contact.ValidationError
	Result     string
	ResultType string // "success" or "error"

	recipient  string
	resetDelay time.Duration
	opener     contact.Opener
}

// NewContactForm создает форму; recipient адрес, на который пишется письмо
func NewContactForm(recipient string, resetDelay time.Duration, opener contact.Opener) ContactForm {
	nameInput := textinput.New()
	nameInput.Placeholder = "Your name"

	emailInput := textinput.New()
	emailInput.Placeholder = "you@domain.com"

	messageInput := textarea.New()
	messageInput.Placeholder = "Your message"
	messageInput.ShowLineNumbers = false
	messageInput.SetHeight(4)

	return ContactForm{
		NameInput:    nameInput,
		EmailInput:   emailInput,
		MessageInput: messageInput,
		recipient:    recipient,
		resetDelay:   resetDelay,
		opener:       opener,
	}
}

// Focus активирует текущее поле
func (f *ContactForm) Focus() tea.Cmd {
	f.NameInput.Blur()
	f.EmailInput.Blur()
	f.MessageInput.Blur()

	switch f.FormState {
	case emailField:
		return f.EmailInput.Focus()
	case messageField:
		return f.MessageInput.Focus()
	default:
		return f.NameInput.Focus()
	}
}

// Blur снимает фокус со всех полей
func (f *ContactForm) Blur() {
	f.NameInput.Blur()
	f.EmailInput.Blur()
	f.MessageInput.Blur()
}

// Focused сообщает, находится ли какое-либо поле в фокусе
func (f ContactForm) Focused() bool {
	return f.NameInput.Focused() || f.EmailInput.Focused() || f.MessageInput.Focused()
}

// Move переводит фокус на соседнее поле
func (f *ContactForm) Move(delta int) tea.Cmd {
	f.FormState = (f.FormState + delta + fieldCount) % fieldCount
	return f.Focus()
}

// SetWidth подгоняет ширину полей под экран
func (f *ContactForm) SetWidth(w int) {
	f.NameInput.Width = w
	f.EmailInput.Width = w
	f.MessageInput.SetWidth(w)
}

// Submission текущие значения полей
func (f ContactForm) Submission() models.Submission {
	return models.Submission{
		Name:    f.NameInput.Value(),
		Email:   f.EmailInput.Value(),
		Message: f.MessageInput.Value(),
	}
}

// Submit проверяет поля и при успехе передаёт письмо почтовому клиенту.
// Поля очищаются после задержки, когда придёт ContactResetMsg.
func (f *ContactForm) Submit() tea.Cmd {
	sub := f.Submission()

	f.Invalid = contact.Validate(sub)
	if f.Invalid != nil {
		f.Result = contact.RequiredMessage
		f.ResultType = "error"
		return nil
	}

	uri := contact.BuildMailto(f.recipient, sub)
	f.Result = contact.OpeningMessage
	f.ResultType = "success"

	return tea.Batch(
		openURI(f.opener, uri),
		tea.Tick(f.resetDelay, func(time.Time) tea.Msg {
			return models.ContactResetMsg{}
		}),
	)
}

// Reset очищает значения полей
func (f *ContactForm) Reset() {
	f.NameInput.Reset()
	f.EmailInput.Reset()
	f.MessageInput.Reset()
}

// Update передаёт сообщение активному полю
func (f *ContactForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.FormState {
	case nameField:
		f.NameInput, cmd = f.NameInput.Update(msg)
	case emailField:
		f.EmailInput, cmd = f.EmailInput.Update(msg)
	case messageField:
		f.MessageInput, cmd = f.MessageInput.Update(msg)
	}
	return cmd
}

// View рендерит форму
func (f ContactForm) View(s Styles) string {
	doc := strings.Builder{}

	fields := []struct {
		label string
		field contact.Field
		state int
		view  string
	}{
		{"Name", contact.FieldName, nameField, f.NameInput.View()},
		{"Email", contact.FieldEmail, emailField, f.EmailInput.View()},
		{"Message", contact.FieldMessage, messageField, f.MessageInput.View()},
	}

	for _, fld := range fields {
		style := s.Input
		label := fld.label + ":"
		switch {
		case f.Invalid.Invalid(fld.field):
			style = s.InvalidInput
			label += " " + s.Error.Render("(invalid)")
		case f.Focused() && f.FormState == fld.state:
			style = s.FocusedInput
		}
		doc.WriteString(s.Text.Render(label) + "\n")
		doc.WriteString(style.Render(fld.view) + "\n")
	}

	if f.Result != "" {
		doc.WriteString("\n" + s.Message(f.ResultType).Render(f.Result) + "\n")
	}

	return strings.TrimRight(doc.String(), "\n")
}

// openURI передаёт ссылку внешнему приложению
func openURI(opener contact.Opener, uri string) tea.Cmd {
	return func() tea.Msg {
		return models.HandoffMsg{URI: uri, Err: opener.Open(uri)}
	}
}
