// Package theme управляет светлой и тёмной темой и хранит выбор пользователя.
package theme

import (
	"github.com/KharpukhaevV/folio/config"
	"github.com/KharpukhaevV/folio/models"
)

// Controller текущая тема и её сохранение
type Controller struct {
	store   config.PreferenceStore
	current models.Theme
}

// NewController читает сохранённую тему; без записи включается светлая.
// Ошибка чтения не мешает работе: возвращается светлая тема и сама ошибка.
func NewController(store config.PreferenceStore) (*Controller, error) {
	c := &Controller{store: store, current: models.ThemeLight}
	value, ok, err := store.Get(config.ThemeKey)
	if err != nil {
		return c, err
	}
	if ok {
		c.current = models.ParseTheme(value)
	}
	return c, nil
}

// Current возвращает активную тему
func (c *Controller) Current() models.Theme {
	return c.current
}

// Pressed состояние переключателя: нажат, когда включена тёмная тема
func (c *Controller) Pressed() bool {
	return c.current.IsDark()
}

// Palette цвета активной темы
func (c *Controller) Palette() Palette {
	return PaletteFor(c.current)
}

// Toggle переключает тему и сразу сохраняет выбор. Тема меняется даже
// если запись не удалась; ошибка возвращается вызывающему.
func (c *Controller) Toggle() (models.Theme, error) {
	c.current = c.current.Toggled()
	return c.current, c.store.Set(config.ThemeKey, string(c.current))
}
