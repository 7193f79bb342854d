package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KharpukhaevV/folio/config"
	"github.com/KharpukhaevV/folio/contact"
	"github.com/KharpukhaevV/folio/github"
	"github.com/KharpukhaevV/folio/models"
	"github.com/KharpukhaevV/folio/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	repos []models.Repository
	err   error
}

func (s stubFetcher) Fetch(context.Context) ([]models.Repository, error) {
	return s.repos, s.err
}

func TestRunExportWritesNonForkCards(t *testing.T) {
	var buf bytes.Buffer
	err := runExport(context.Background(), stubFetcher{repos: []models.Repository{
		{Name: "<alpha>", HTMLURL: "https://github.com/me/alpha"},
		{Name: "forked", Fork: true},
		{Name: "beta", Homepage: "https://beta.example.com"},
	}}, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, `class="col-md-6 col-lg-4 fade-in"`))
	assert.Contains(t, out, "&lt;alpha&gt;")
	assert.NotContains(t, out, "forked")
	assert.Contains(t, out, `href="https://beta.example.com"`)
}

func TestRunExportEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runExport(context.Background(), stubFetcher{}, &buf))
	assert.Contains(t, buf.String(), render.EmptyNotice)
}

func TestRunExportFailureWritesBanner(t *testing.T) {
	var buf bytes.Buffer
	fetchErr := &github.FetchError{StatusCode: 403, Status: "403 Forbidden"}

	err := runExport(context.Background(), stubFetcher{err: fetchErr}, &buf)
	require.Error(t, err)

	var target *github.FetchError
	assert.True(t, errors.As(err, &target))
	assert.Contains(t, buf.String(), "GitHub API error: 403 Forbidden")
	assert.Contains(t, buf.String(), "alert-warning")
}

func TestExportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "cards.html")

	err := exportToFile(context.Background(), stubFetcher{repos: []models.Repository{{Name: "alpha"}}}, path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, render.GridHTML([]models.Repository{{Name: "alpha"}}), string(data))

	err = exportToFile(context.Background(), stubFetcher{err: errors.New("offline")}, path)
	require.Error(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "(offline)")

	err = exportToFile(context.Background(), stubFetcher{}, t.TempDir())
	assert.Error(t, err, "a directory cannot be opened for writing")
}

func TestRunContact(t *testing.T) {
	var opened []string
	o := contact.OpenerFunc(func(uri string) error {
		opened = append(opened, uri)
		return nil
	})

	t.Run("invalid", func(t *testing.T) {
		var buf bytes.Buffer
		err := runContact("me@example.org", models.Submission{Name: "Ann", Email: "bad", Message: "Hi"}, o, &buf)
		require.Error(t, err)

		var verr *contact.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.True(t, verr.Invalid(contact.FieldEmail))
		assert.Contains(t, err.Error(), contact.RequiredMessage)
		assert.Empty(t, opened)
		assert.Empty(t, buf.String())
	})

	t.Run("valid", func(t *testing.T) {
		var buf bytes.Buffer
		err := runContact("me@example.org", models.Submission{Name: "Ann", Email: "ann@x.io", Message: "Hi"}, o, &buf)
		require.NoError(t, err)
		require.Len(t, opened, 1)
		assert.True(t, strings.HasPrefix(opened[0], "mailto:me@example.org?subject=Portfolio%20contact%20from%20Ann&body="))
		assert.Contains(t, buf.String(), contact.OpeningMessage)
	})

	t.Run("opener failure", func(t *testing.T) {
		failing := contact.OpenerFunc(func(string) error { return errors.New("no handler") })
		err := runContact("me@example.org", models.Submission{Name: "Ann", Email: "ann@x.io", Message: "Hi"}, failing, &bytes.Buffer{})
		assert.EqualError(t, err, "no handler")
	})
}

func TestRunInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio", "config.yml")

	var out bytes.Buffer
	require.NoError(t, runInit(path, false, &out))
	assert.Equal(t, "Config written to "+path+"\n", out.String())
	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().GitHub.User, loaded.GitHub.User)

	assert.Error(t, runInit(path, false, &bytes.Buffer{}))

	require.NoError(t, os.WriteFile(path, []byte("owner: Someone\n"), 0o644))
	require.NoError(t, runInit(path, true, &bytes.Buffer{}))
	loaded, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Owner, loaded.Owner)
}

func TestFileLoggerDisabledWithoutPath(t *testing.T) {
	l, err := newFileLogger("")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(0))
}
