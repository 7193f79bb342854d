package ui

import (
	"testing"

	"github.com/KharpukhaevV/folio/models"
	"github.com/KharpukhaevV/folio/theme"
	"github.com/stretchr/testify/assert"
)

func TestOverlayOpenWithHomepage(t *testing.T) {
	var o DetailOverlay
	o.Open(models.Repository{
		Name: "a", Description: "demo app", Language: "Go", Stars: 7,
		Homepage: "https://a.dev", HTMLURL: "https://github.com/me/a",
	})

	assert.True(t, o.Visible)
	assert.True(t, o.DemoVisible)
	assert.Equal(t, "https://a.dev", o.DemoURL)
	assert.Equal(t, "https://github.com/me/a", o.RepoURL)
	assert.Equal(t, "7", o.Stars)
	assert.Contains(t, o.View(NewStyles(theme.LightPalette())), "[l] Live demo")
}

func TestOverlayReopenOverwritesAllFields(t *testing.T) {
	var o DetailOverlay
	o.Open(models.Repository{
		Name: "a", Description: "demo app", Language: "Go", Stars: 7,
		Homepage: "https://a.dev", HTMLURL: "https://github.com/me/a",
	})
	o.Close()
	assert.False(t, o.Visible)

	o.Open(models.Repository{Name: "b", HTMLURL: "https://github.com/me/b"})

	want := DetailOverlay{
		Visible:     true,
		Title:       "b",
		Description: "No description.",
		Language:    "—",
		Stars:       "0",
		RepoURL:     "https://github.com/me/b",
		DemoURL:     "#",
		DemoVisible: false,
	}
	assert.Equal(t, want, o)
}

func TestOverlayViewStripsEscapeSequences(t *testing.T) {
	var o DetailOverlay
	o.Open(models.Repository{
		Name:     "x\x1b[31m",
		HTMLURL:  "https://github.com/me/x\x1b]0;pwned\x07",
		Homepage: "https://demo\x1b[2J",
	})

	view := o.View(NewStyles(theme.LightPalette()))
	assert.NotContains(t, view, "\x1b]0;")
	assert.NotContains(t, view, "pwned\x07")
	assert.NotContains(t, view, "\x1b[2J")
	assert.Contains(t, view, "https://demo")
	assert.Contains(t, view, "https://github.com/me/x")
}
