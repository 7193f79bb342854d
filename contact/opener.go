package contact

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Opener передаёт ссылку внешнему приложению (браузеру, почтовому клиенту)
type Opener interface {
	Open(uri string) error
}

// SystemOpener открывает ссылки штатными средствами ОС
type SystemOpener struct{}

// Open запускает обработчик ссылки и не ждёт его завершения
func (SystemOpener) Open(uri string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", uri)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", uri)
	default:
		cmd = exec.Command("xdg-open", uri)
	}
	cmd.Stdout, cmd.Stderr, cmd.Stdin = nil, nil, nil
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening %s: %w", uri, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// OpenerFunc адаптер для обычной функции
type OpenerFunc func(uri string) error

// Open вызывает функцию
func (f OpenerFunc) Open(uri string) error {
	return f(uri)
}
