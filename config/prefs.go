package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/KharpukhaevV/folio/utils"
)

// ThemeKey ключ, под которым хранится выбранная тема
const ThemeKey = "theme"

// PreferenceStore узкий интерфейс к сохраняемым между запусками настройкам
type PreferenceStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// FileStore хранит настройки в JSON-файле
type FileStore struct {
	path string
}

// NewFileStore создает хранилище настроек в указанном файле
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path возвращает путь к файлу настроек
func (s *FileStore) Path() string {
	return s.path
}

// load читает все настройки; отсутствующий файл означает пустой набор
func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	values := map[string]string{}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parsing preferences %s: %w", s.path, err)
	}
	return values, nil
}

// Get возвращает значение настройки
func (s *FileStore) Get(key string) (string, bool, error) {
	values, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set записывает значение сразу на диск; побеждает последняя запись
func (s *FileStore) Set(key, value string) error {
	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	if err := utils.EnsureDir(s.path); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, utils.DefaultFileMode)
}

// MemoryStore хранилище настроек в памяти
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore создает пустое хранилище в памяти
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

// Get возвращает значение настройки
func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set сохраняет значение настройки
func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
