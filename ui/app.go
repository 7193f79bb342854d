package ui

import (
	"context"
	"time"

	"github.com/KharpukhaevV/folio/config"
	"github.com/KharpukhaevV/folio/contact"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// RepoLoader асинхронная загрузка списка репозиториев
type RepoLoader interface {
	LoadRepos(ctx context.Context) tea.Cmd
}

// AppContext зависимости приложения, передаваемые при создании модели
type AppContext struct {
	Config *config.Config
	Prefs  config.PreferenceStore
	Repos  RepoLoader
	Opener contact.Opener
	Logger *zap.Logger
	Now    func() time.Time
}

// withDefaults заполняет необязательные зависимости
func (a AppContext) withDefaults() AppContext {
	if a.Config == nil {
		a.Config = config.DefaultConfig()
	}
	if a.Prefs == nil {
		a.Prefs = config.NewMemoryStore()
	}
	if a.Opener == nil {
		a.Opener = contact.SystemOpener{}
	}
	if a.Logger == nil {
		a.Logger = zap.NewNop()
	}
	if a.Now == nil {
		a.Now = time.Now
	}
	return a
}
