package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// htmlReplacer заменяет символы разметки на ссылки на символы.
// strings.Replacer делает один проход, поэтому амперсанд из уже
// подставленных ссылок повторно не экранируется.
var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML экранирует текст, пришедший из внешнего источника
func EscapeHTML(s string) string {
	return htmlReplacer.Replace(s)
}

// SanitizeText убирает из внешнего текста escape-последовательности и
// управляющие символы, чтобы он не мог управлять терминалом
func SanitizeText(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}
