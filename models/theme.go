package models

// Theme визуальный режим интерфейса
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme разбирает сохранённое значение; всё, кроме "dark", считается светлой темой
func ParseTheme(s string) Theme {
	if s == string(ThemeDark) {
		return ThemeDark
	}
	return ThemeLight
}

// Toggled возвращает противоположный режим
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IsDark сообщает, включена ли тёмная тема
func (t Theme) IsDark() bool {
	return t == ThemeDark
}
