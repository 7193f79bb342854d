package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/KharpukhaevV/folio/utils"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix префикс переменных окружения, переопределяющих конфиг
const EnvPrefix = "FOLIO_"

// Config конфигурация приложения
type Config struct {
	Owner       string      `yaml:"owner" koanf:"owner"`
	About       string      `yaml:"about" koanf:"about"`
	GitHub      GitHub      `yaml:"github" koanf:"github"`
	Contact     Contact     `yaml:"contact" koanf:"contact"`
	Reveal      Reveal      `yaml:"reveal" koanf:"reveal"`
	Preferences Preferences `yaml:"preferences" koanf:"preferences"`
	Log         Log         `yaml:"log" koanf:"log"`
}

// GitHub параметры запроса списка репозиториев
type GitHub struct {
	User    string `yaml:"user" koanf:"user"`
	PerPage int    `yaml:"per_page" koanf:"per_page"`
	Token   string `yaml:"token,omitempty" koanf:"token"`
	BaseURL string `yaml:"base_url,omitempty" koanf:"base_url"`
}

// Contact параметры контактной формы
type Contact struct {
	Recipient  string        `yaml:"recipient" koanf:"recipient"`
	ResetDelay time.Duration `yaml:"reset_delay" koanf:"reset_delay"`
}

// Reveal параметры появления блоков при прокрутке
type Reveal struct {
	Threshold float64       `yaml:"threshold" koanf:"threshold"`
	CardDelay time.Duration `yaml:"card_delay" koanf:"card_delay"`
}

// Preferences расположение файла с пользовательскими настройками
type Preferences struct {
	Path string `yaml:"path" koanf:"path"`
}

// Log куда писать журнал; пустой путь отключает журнал
type Log struct {
	File string `yaml:"file" koanf:"file"`
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *Config {
	return &Config{
		Owner: "Kundan",
		About: "## About me\n\nI build things for the web and the terminal. " +
			"Below are my most recently updated public repositories.",
		GitHub: GitHub{
			User:    "Kundan16082001",
			PerPage: 12,
		},
		Contact: Contact{
			Recipient:  "you@example.com",
			ResetDelay: utils.DefaultFormResetDelay,
		},
		Reveal: Reveal{
			Threshold: 0.1,
			CardDelay: utils.DefaultCardRevealDelay,
		},
		Preferences: Preferences{
			Path: utils.ConfigPath("preferences.json"),
		},
	}
}

// DefaultPath путь к файлу конфигурации по умолчанию
func DefaultPath() string {
	return utils.ConfigPath("config.yml")
}

// sections ключи верхнего уровня, у которых есть вложенные поля
var sections = map[string]bool{
	"github":      true,
	"contact":     true,
	"reveal":      true,
	"preferences": true,
	"log":         true,
}

// envKey превращает FOLIO_GITHUB_PER_PAGE в github.per_page
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if section, rest, ok := strings.Cut(key, "_"); ok && sections[section] {
		return section + "." + rest
	}
	return key
}

// Load читает YAML-файл поверх значений по умолчанию и применяет
// переопределения из окружения (FOLIO_*)
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save сохраняет конфигурацию в YAML-файл
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := utils.EnsureDir(path); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, utils.DefaultFileMode); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.GitHub.User == "" {
		return fmt.Errorf("github.user is required")
	}
	if c.GitHub.PerPage < 1 || c.GitHub.PerPage > 100 {
		return fmt.Errorf("github.per_page must be between 1 and 100, got %d", c.GitHub.PerPage)
	}
	if c.Contact.Recipient == "" {
		return fmt.Errorf("contact.recipient is required")
	}
	if c.Contact.ResetDelay < 0 || c.Reveal.CardDelay < 0 {
		return fmt.Errorf("delays must be non-negative")
	}
	if c.Reveal.Threshold <= 0 || c.Reveal.Threshold > 1 {
		return fmt.Errorf("reveal.threshold must be in (0, 1], got %g", c.Reveal.Threshold)
	}
	if c.Preferences.Path == "" {
		return fmt.Errorf("preferences.path is required")
	}
	return nil
}
