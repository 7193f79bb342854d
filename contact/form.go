// Package contact проверяет контактную форму и передаёт письмо почтовому
// клиенту пользователя. Сама программа ничего не отправляет по сети.
package contact

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/KharpukhaevV/folio/models"
	"github.com/go-playground/validator/v10"
)

const (
	// RequiredMessage текст при непрошедшей проверке
	RequiredMessage = "Please fill all required fields."
	// OpeningMessage текст после передачи письма почтовому клиенту
	OpeningMessage = "Opening your email client…"
)

// Field поле контактной формы
type Field string

const (
	FieldName    Field = "Name"
	FieldEmail   Field = "Email"
	FieldMessage Field = "Message"
)

// Fields поля формы в порядке отображения
var Fields = []Field{FieldName, FieldEmail, FieldMessage}

// ValidationError перечисляет поля, не прошедшие проверку
type ValidationError struct {
	Fields map[Field]bool
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range Fields {
		if e.Fields[f] {
			names = append(names, strings.ToLower(string(f)))
		}
	}
	return fmt.Sprintf("invalid fields: %s", strings.Join(names, ", "))
}

// Invalid сообщает, помечено ли поле как некорректное
func (e *ValidationError) Invalid(f Field) bool {
	if e == nil {
		return false
	}
	return e.Fields[f]
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Normalize обрезает пробелы по краям всех полей
func Normalize(sub models.Submission) models.Submission {
	return models.Submission{
		Name:    strings.TrimSpace(sub.Name),
		Email:   strings.TrimSpace(sub.Email),
		Message: strings.TrimSpace(sub.Message),
	}
}

// Validate проверяет обязательные поля и формат адреса.
// Возвращает nil, если форма заполнена корректно.
func Validate(sub models.Submission) *ValidationError {
	err := validate.Struct(Normalize(sub))
	if err == nil {
		return nil
	}

	result := &ValidationError{Fields: map[Field]bool{}}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			result.Fields[Field(fe.Field())] = true
		}
	}
	if len(result.Fields) == 0 {
		for _, f := range Fields {
			result.Fields[f] = true
		}
	}
	return result
}

// Subject тема письма
func Subject(sub models.Submission) string {
	return "Portfolio contact from " + sub.Name
}

// Body текст письма с подписью отправителя
func Body(sub models.Submission) string {
	return sub.Message + "\n\n— " + sub.Name + "\n" + sub.Email
}

// BuildMailto собирает ссылку mailto: с закодированными темой и текстом.
// Поля берутся как есть, без обрезки пробелов.
func BuildMailto(recipient string, sub models.Submission) string {
	return "mailto:" + recipient +
		"?subject=" + EncodeComponent(Subject(sub)) +
		"&body=" + EncodeComponent(Body(sub))
}

// EncodeComponent кодирует строку для query-параметра так же, как
// encodeURIComponent: пробел превращается в %20, а не в '+'
func EncodeComponent(s string) string {
	encoded := url.QueryEscape(s)
	encoded = strings.ReplaceAll(encoded, "+", "%20")
	for _, keep := range []string{"!", "'", "(", ")", "*"} {
		encoded = strings.ReplaceAll(encoded, url.QueryEscape(keep), keep)
	}
	return encoded
}
