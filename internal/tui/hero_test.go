package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/internal/profile"
)

func heroProfile() *profile.Profile {
	return &profile.Profile{
		Name:  "Test Person",
		Roles: []string{"Go Developer", "Tester"},
	}
}

func TestNewHeroRejectsProfileWithoutRoles(t *testing.T) {
	p := heroProfile()
	p.Roles = nil
	_, err := NewHero(p, false)
	require.Error(t, err)
}

func TestHeroTickAdvancesTypewriter(t *testing.T) {
	hero, err := NewHero(heroProfile(), false)
	require.NoError(t, err)
	require.Equal(t, "", hero.tw.Text())

	hero, cmd := hero.Update(heroTickMsg{gen: hero.gen})
	assert.Equal(t, "G", hero.tw.Text())
	assert.NotNil(t, cmd, "next tick must be scheduled")
}

func TestHeroDropsStaleTicks(t *testing.T) {
	hero, err := NewHero(heroProfile(), false)
	require.NoError(t, err)

	hero, _ = hero.Update(heroTickMsg{gen: hero.gen})
	before := hero.tw.State()

	// A timer from a previous generation must not move the state machine.
	hero, cmd := hero.Update(heroTickMsg{gen: hero.gen - 1})
	assert.Equal(t, before, hero.tw.State())
	assert.Nil(t, cmd)
}

func TestFrozenHeroIgnoresTicks(t *testing.T) {
	hero, err := NewHero(heroProfile(), true)
	require.NoError(t, err)

	assert.Nil(t, hero.Start())

	hero, cmd := hero.Update(heroTickMsg{gen: hero.gen})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, hero.tw.State().CharIndex)

	// The role line shows the complete first role instead of animating.
	line := hero.roleLine(NewStyles(ThemeDark))
	assert.Contains(t, line, "Go Developer")
}

func TestHeroRoleLineIsSingleLine(t *testing.T) {
	hero, err := NewHero(heroProfile(), false)
	require.NoError(t, err)
	st := NewStyles(ThemeDark)

	for i := 0; i < 50; i++ {
		hero, _ = hero.Update(heroTickMsg{gen: hero.gen})
		assert.NotContains(t, hero.roleLine(st), "\n")
	}
}
