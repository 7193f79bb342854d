package models

// ReposLoadedMsg сообщение о загрузке репозиториев
type ReposLoadedMsg struct {
	Repos []Repository
	Err   error
}

// RevealCardsMsg отложенный показ уже отрисованных карточек
type RevealCardsMsg struct{}

// ContactResetMsg очистка формы после передачи письма почтовому клиенту
type ContactResetMsg struct{}

// HandoffMsg результат передачи ссылки внешнему приложению
type HandoffMsg struct {
	URI string
	Err error
}
