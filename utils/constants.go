package utils

import "time"

const (
	// DefaultInputWidth стандартная ширина поля ввода
	DefaultInputWidth = 40

	// MinInputWidth минимальная ширина поля ввода
	MinInputWidth = 20

	// DefaultPadding стандартный отступ
	DefaultPadding = 1

	// CardWidth ширина карточки репозитория в сетке
	CardWidth = 36

	// OverlayWidth ширина окна с подробностями
	OverlayWidth = 60

	// DefaultFileMode права доступа к файлу
	DefaultFileMode = 0644

	// DefaultDirMode права доступа к директории
	DefaultDirMode = 0755

	// DefaultCardRevealDelay задержка перед показом отрисованных карточек
	DefaultCardRevealDelay = 150 * time.Millisecond

	// DefaultFormResetDelay задержка перед очисткой формы после отправки
	DefaultFormResetDelay = 900 * time.Millisecond
)
