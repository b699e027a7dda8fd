// Package anim implements the two animation primitives behind the portfolio
// page: the hero typewriter cycle and the one-shot reveal latch. Both are
// pure state machines; scheduling belongs to the caller (the TUI runtime),
// so everything here is testable without timers.
package anim

import (
	"errors"
	"time"
)

// Typewriter pacing. Deleting runs faster than typing, and a fully typed
// role holds on screen before the deletion pass starts.
const (
	TypeInterval   = 100 * time.Millisecond
	DeleteInterval = 60 * time.Millisecond
	HoldFull       = 1800 * time.Millisecond
)

// ErrNoRoles is returned when a typewriter is constructed without any roles.
var ErrNoRoles = errors.New("typewriter: role list is empty")

// TypewriterState is one snapshot of the cycle. The displayed text is always
// the CharIndex-rune prefix of the role at RoleIndex.
type TypewriterState struct {
	RoleIndex int
	CharIndex int
	Deleting  bool
}

// Typewriter cycles through a fixed list of role labels, typing and deleting
// them one rune at a time, forever. A single-role list still cycles.
type Typewriter struct {
	roles [][]rune
	state TypewriterState
}

// NewTypewriter builds a typewriter over the given roles. The list must not
// be empty; individual roles may be (they are skipped within one tick).
func NewTypewriter(roles []string) (*Typewriter, error) {
	if len(roles) == 0 {
		return nil, ErrNoRoles
	}
	rs := make([][]rune, len(roles))
	for i, r := range roles {
		rs[i] = []rune(r)
	}
	return &Typewriter{roles: rs}, nil
}

// State returns the current snapshot.
func (t *Typewriter) State() TypewriterState { return t.state }

// Text returns the currently displayed prefix of the active role.
func (t *Typewriter) Text() string {
	return string(t.roles[t.state.RoleIndex][:t.state.CharIndex])
}

// Role returns the full text of the active role.
func (t *Typewriter) Role() string {
	return string(t.roles[t.state.RoleIndex])
}

// Step advances the cycle by one tick and returns the delay until the next
// tick is due. Step never blocks.
func (t *Typewriter) Step() time.Duration {
	role := t.roles[t.state.RoleIndex]
	switch {
	case !t.state.Deleting && len(role) == 0:
		// Empty role: nothing to type or hold, move straight on.
		t.advanceRole()
		return TypeInterval
	case !t.state.Deleting && t.state.CharIndex < len(role):
		t.state.CharIndex++
		if t.state.CharIndex == len(role) {
			return HoldFull
		}
		return TypeInterval
	case !t.state.Deleting:
		// Hold elapsed. Switch direction; no rune changes on this tick.
		t.state.Deleting = true
		return DeleteInterval
	case t.state.CharIndex > 1:
		t.state.CharIndex--
		return DeleteInterval
	default:
		// Last rune removed: next role, back to typing.
		t.advanceRole()
		return TypeInterval
	}
}

func (t *Typewriter) advanceRole() {
	t.state.RoleIndex = (t.state.RoleIndex + 1) % len(t.roles)
	t.state.CharIndex = 0
	t.state.Deleting = false
}
