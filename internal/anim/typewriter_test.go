package anim

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTypewriterRejectsEmptyList(t *testing.T) {
	tw, err := NewTypewriter(nil)
	require.ErrorIs(t, err, ErrNoRoles)
	assert.Nil(t, tw)
}

func TestTextIsAlwaysPrefixOfActiveRole(t *testing.T) {
	roles := []string{"Go Developer", "CLI Enthusiast", "Café Regular"}
	tw, err := NewTypewriter(roles)
	require.NoError(t, err)

	for i := 0; i < 500; i++ {
		tw.Step()
		st := tw.State()
		role := roles[st.RoleIndex]
		assert.True(t, strings.HasPrefix(role, tw.Text()),
			"step %d: %q is not a prefix of %q", i, tw.Text(), role)
		assert.Equal(t, string([]rune(role)[:st.CharIndex]), tw.Text())
	}
}

func TestFullCycleAdvancesRoleByOne(t *testing.T) {
	tw, err := NewTypewriter([]string{"Go", "TUI", "Vim"})
	require.NoError(t, err)

	// Type both runes, hold, switch direction, delete back down.
	for tw.State().RoleIndex == 0 {
		tw.Step()
	}

	st := tw.State()
	assert.Equal(t, 1, st.RoleIndex)
	assert.Equal(t, 0, st.CharIndex)
	assert.False(t, st.Deleting)
}

func TestTwoRoleTrace(t *testing.T) {
	tw, err := NewTypewriter([]string{"A", "BB"})
	require.NoError(t, err)

	steps := []struct {
		text  string
		role  int
		delay time.Duration
	}{
		{"A", 0, HoldFull},        // typed the single rune, hold at full text
		{"A", 0, DeleteInterval},  // hold elapsed, direction flip only
		{"", 1, TypeInterval},     // last rune removed, role advances
		{"B", 1, TypeInterval},    // typing the next role
		{"BB", 1, HoldFull},       // full again
	}
	for i, want := range steps {
		delay := tw.Step()
		assert.Equal(t, want.text, tw.Text(), "step %d text", i)
		assert.Equal(t, want.role, tw.State().RoleIndex, "step %d role", i)
		assert.Equal(t, want.delay, delay, "step %d delay", i)
	}
}

func TestSingleRoleListStillCycles(t *testing.T) {
	tw, err := NewTypewriter([]string{"dev"})
	require.NoError(t, err)

	sawFull, sawEmptyAgain := false, false
	for i := 0; i < 20; i++ {
		tw.Step()
		if tw.Text() == "dev" {
			sawFull = true
		}
		if sawFull && tw.Text() == "" && !tw.State().Deleting {
			sawEmptyAgain = true
			break
		}
	}
	assert.True(t, sawFull, "never typed the full role")
	assert.True(t, sawEmptyAgain, "never came back around to retype")
	assert.Equal(t, 0, tw.State().RoleIndex)
}

func TestEmptyRoleDoesNotStall(t *testing.T) {
	tw, err := NewTypewriter([]string{""})
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		delay := tw.Step()
		assert.Equal(t, TypeInterval, delay)
		assert.Equal(t, "", tw.Text())
		assert.Equal(t, 0, tw.State().CharIndex)
	}
}

func TestEmptyRoleAmongOthersIsSkipped(t *testing.T) {
	tw, err := NewTypewriter([]string{"Go", "", "TUI"})
	require.NoError(t, err)

	// Run until role 2 becomes active; the empty role in between must be
	// passed within a single tick.
	emptyTicks := 0
	for i := 0; i < 100 && tw.State().RoleIndex != 2; i++ {
		before := tw.State().RoleIndex
		tw.Step()
		if before == 1 {
			emptyTicks++
		}
	}
	assert.Equal(t, 2, tw.State().RoleIndex)
	assert.LessOrEqual(t, emptyTicks, 1)
}

func TestDeletingIsFasterThanTyping(t *testing.T) {
	assert.Less(t, DeleteInterval, TypeInterval)
}
