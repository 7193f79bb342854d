package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/KharpukhaevV/folio/config"
	"github.com/KharpukhaevV/folio/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-github/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// FetchError ошибка получения списка репозиториев: либо ответ не 2xx,
// либо сбой транспорта
type FetchError struct {
	StatusCode int
	Status     string
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("GitHub API error: %s", e.Status)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "GitHub API error"
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher загружает публичные репозитории одного аккаунта
type Fetcher struct {
	client  *github.Client
	user    string
	perPage int
	logger  *zap.Logger
}

// NewFetcher создает загрузчик по настройкам GitHub
func NewFetcher(cfg config.GitHub, logger *zap.Logger) (*Fetcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var httpClient *http.Client
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: cfg.Token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	if cfg.BaseURL != "" {
		base := cfg.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("parsing github.base_url: %w", err)
		}
		client.BaseURL = u
	}

	return &Fetcher{
		client:  client,
		user:    cfg.User,
		perPage: cfg.PerPage,
		logger:  logger,
	}, nil
}

// Fetch выполняет ровно один запрос последних обновлённых репозиториев.
// Повторов и кэша нет.
func (f *Fetcher) Fetch(ctx context.Context) ([]models.Repository, error) {
	opt := &github.RepositoryListOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: f.perPage},
	}

	repos, resp, err := f.client.Repositories.List(ctx, f.user, opt)
	if err != nil {
		fetchErr := toFetchError(resp, err)
		f.logger.Error("failed to fetch repositories",
			zap.String("user", f.user),
			zap.Int("status", fetchErr.StatusCode),
			zap.Error(err))
		return nil, fetchErr
	}

	result := make([]models.Repository, 0, len(repos))
	for _, repo := range repos {
		result = append(result, models.Repository{
			Name:        repo.GetName(),
			Description: repo.GetDescription(),
			Language:    repo.GetLanguage(),
			Stars:       repo.GetStargazersCount(),
			Homepage:    repo.GetHomepage(),
			HTMLURL:     repo.GetHTMLURL(),
			Fork:        repo.GetFork(),
		})
	}

	f.logger.Debug("fetched repositories",
		zap.String("user", f.user),
		zap.Int("count", len(result)))
	return result, nil
}

// LoadRepos загружает репозитории и отбрасывает форки
func (f *Fetcher) LoadRepos(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		repos, err := f.Fetch(ctx)
		if err != nil {
			return models.ReposLoadedMsg{Err: err}
		}
		return models.ReposLoadedMsg{Repos: FilterForks(repos)}
	}
}

// FilterForks оставляет только собственные репозитории, сохраняя порядок
func FilterForks(repos []models.Repository) []models.Repository {
	owned := make([]models.Repository, 0, len(repos))
	for _, repo := range repos {
		if !repo.Fork {
			owned = append(owned, repo)
		}
	}
	return owned
}

// toFetchError приводит ошибку go-github к FetchError
func toFetchError(resp *github.Response, err error) *FetchError {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return statusError(rateErr.Response, err)
	}
	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		return statusError(respErr.Response, err)
	}
	if resp != nil && resp.Response != nil && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return statusError(resp.Response, err)
	}
	return &FetchError{Err: err}
}

func statusError(resp *http.Response, err error) *FetchError {
	status := resp.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return &FetchError{StatusCode: resp.StatusCode, Status: status, Err: err}
}
