package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 12, cfg.GitHub.PerPage)
	assert.Equal(t, "you@example.com", cfg.Contact.Recipient)
	assert.Equal(t, 0.1, cfg.Reveal.Threshold)
	assert.Equal(t, 150*time.Millisecond, cfg.Reveal.CardDelay)
	assert.Equal(t, 900*time.Millisecond, cfg.Contact.ResetDelay)
	require.NoError(t, cfg.Validate())
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yml")

	original := DefaultConfig()
	original.GitHub.User = "octocat"
	original.GitHub.PerPage = 30
	original.Contact.Recipient = "me@example.org"
	original.Reveal.CardDelay = 250 * time.Millisecond
	original.Preferences.Path = filepath.Join(dir, "prefs.json")

	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "octocat", loaded.GitHub.User)
	assert.Equal(t, 30, loaded.GitHub.PerPage)
	assert.Equal(t, "me@example.org", loaded.Contact.Recipient)
	assert.Equal(t, 250*time.Millisecond, loaded.Reveal.CardDelay)
	assert.Equal(t, original.Preferences.Path, loaded.Preferences.Path)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().GitHub.User, cfg.GitHub.User)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("github:\n  user: someone\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "someone", cfg.GitHub.User)
	assert.Equal(t, 12, cfg.GitHub.PerPage)
	assert.Equal(t, "you@example.com", cfg.Contact.Recipient)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FOLIO_GITHUB_USER", "from-env")
	t.Setenv("FOLIO_GITHUB_PER_PAGE", "5")
	t.Setenv("FOLIO_CONTACT_RECIPIENT", "env@example.com")
	t.Setenv("FOLIO_OWNER", "Env Owner")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.GitHub.User)
	assert.Equal(t, 5, cfg.GitHub.PerPage)
	assert.Equal(t, "env@example.com", cfg.Contact.Recipient)
	assert.Equal(t, "Env Owner", cfg.Owner)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "github.per_page", envKey("FOLIO_GITHUB_PER_PAGE"))
	assert.Equal(t, "log.file", envKey("FOLIO_LOG_FILE"))
	assert.Equal(t, "owner", envKey("FOLIO_OWNER"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty user", func(c *Config) { c.GitHub.User = "" }},
		{"zero per page", func(c *Config) { c.GitHub.PerPage = 0 }},
		{"per page too large", func(c *Config) { c.GitHub.PerPage = 101 }},
		{"empty recipient", func(c *Config) { c.Contact.Recipient = "" }},
		{"zero threshold", func(c *Config) { c.Reveal.Threshold = 0 }},
		{"threshold above one", func(c *Config) { c.Reveal.Threshold = 1.5 }},
		{"negative delay", func(c *Config) { c.Contact.ResetDelay = -time.Second }},
		{"no preferences path", func(c *Config) { c.Preferences.Path = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
