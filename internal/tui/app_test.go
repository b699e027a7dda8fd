package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/internal/profile"
)

func newTestApp(t *testing.T, opts Options) AppModel {
	t.Helper()
	app, err := NewApp(profile.Default(), opts)
	require.NoError(t, err)

	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return model.(AppModel)
}

func TestNewAppRejectsRolelessProfile(t *testing.T) {
	p := profile.Default()
	p.Roles = nil
	_, err := NewApp(p, Options{})
	require.Error(t, err)
}

func TestLayoutAssignsDisjointRegions(t *testing.T) {
	app := newTestApp(t, Options{})

	top := -1
	for _, s := range app.sections {
		assert.Greater(t, s.height, 0, "section %d has no height", s.id)
		assert.Greater(t, s.top, top, "section %d overlaps its predecessor", s.id)
		top = s.top
	}
}

func TestHeroRevealsOnFirstLayout(t *testing.T) {
	app := newTestApp(t, Options{})

	require.True(t, app.sections[0].reveal.Visible(),
		"the hero starts inside the viewport and must latch immediately")
}

func TestBelowFoldSectionsStayHidden(t *testing.T) {
	app := newTestApp(t, Options{})

	last := app.sections[len(app.sections)-1]
	assert.False(t, last.reveal.Visible(),
		"contact sits below the fold of a 30-row terminal")
}

func TestJumpLatchesTargetSection(t *testing.T) {
	app := newTestApp(t, Options{})

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'5'}})
	app = model.(AppModel)

	for _, s := range app.sections {
		if s.id == SectionExperience {
			assert.True(t, s.reveal.Visible())
		}
	}
}

func TestNoAnimForcesEverythingVisible(t *testing.T) {
	app := newTestApp(t, Options{NoAnim: true})

	now := time.Now()
	for _, s := range app.sections {
		assert.True(t, s.reveal.Visible())
		assert.True(t, s.reveal.Settled(now))
	}
	assert.True(t, app.projects.Settled(now))
}

func TestThemeToggleKey(t *testing.T) {
	app := newTestApp(t, Options{Theme: "dark"})

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	app = model.(AppModel)
	assert.Equal(t, "light", app.theme.Name)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	app = model.(AppModel)
	assert.Equal(t, "dark", app.theme.Name)
}

func TestQuitKey(t *testing.T) {
	app := newTestApp(t, Options{})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestContactFocusRoutesKeysToForm(t *testing.T) {
	app := newTestApp(t, Options{})

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	app = model.(AppModel)
	require.True(t, app.formActive)

	// 'q' is typed into the field rather than quitting.
	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	app = model.(AppModel)
	if cmd != nil {
		assert.NotEqual(t, tea.Quit(), cmd())
	}
	assert.Equal(t, "q", app.contact.inputs[contactFieldName].Value())

	// Esc hands the keyboard back to the page.
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(AppModel)
	assert.False(t, app.formActive)
}

func TestHelpOverlayClosesOnAnyKey(t *testing.T) {
	app := newTestApp(t, Options{})

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	app = model.(AppModel)
	require.True(t, app.showHelp)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	app = model.(AppModel)
	assert.False(t, app.showHelp)
}

func TestStaleFrameIsIgnored(t *testing.T) {
	app := newTestApp(t, Options{})
	gen := app.frameGen

	model, cmd := app.Update(frameMsg{gen: gen - 1})
	app = model.(AppModel)
	assert.Nil(t, cmd)
	assert.Equal(t, gen, app.frameGen)
}
