package utils

import (
	"os"
	"path/filepath"
)

// AppName имя каталога приложения в пользовательском конфиге
const AppName = "folio"

// GetConfigDir возвращает путь к каталогу конфигурации приложения
func GetConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", err
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, AppName), nil
}

// ConfigPath возвращает путь к файлу в каталоге конфигурации;
// если каталог определить не удалось, файл ищется в текущей директории
func ConfigPath(name string) string {
	dir, err := GetConfigDir()
	if err != nil {
		return name
	}
	return filepath.Join(dir, name)
}

// EnsureDir создаёт родительский каталог для файла
func EnsureDir(file string) error {
	return os.MkdirAll(filepath.Dir(file), DefaultDirMode)
}
