package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestContactTypingGoesToFocusedField(t *testing.T) {
	form, _ := NewContact().Activate()

	form, _ = form.Update(keyMsg("sam"))
	assert.Equal(t, "sam", form.inputs[contactFieldName].Value())
	assert.Empty(t, form.inputs[contactFieldEmail].Value())
}

func TestContactEnterAdvancesThenSubmits(t *testing.T) {
	form, _ := NewContact().Activate()

	form, _ = form.Update(keyMsg("enter")) // name -> email
	assert.False(t, form.Sent())
	form, _ = form.Update(keyMsg("enter")) // email -> message
	assert.False(t, form.Sent())

	form, cmd := form.Update(keyMsg("enter")) // message -> submit
	assert.True(t, form.Sent())
	require.NotNil(t, cmd, "submit must schedule the reset")
}

func TestContactSubmitIsIdempotentWhileSent(t *testing.T) {
	form, _ := NewContact().Activate()

	form, _ = form.Update(keyMsg("ctrl+s"))
	require.True(t, form.Sent())
	gen := form.gen

	form, cmd := form.Update(keyMsg("ctrl+s"))
	assert.Equal(t, gen, form.gen)
	assert.Nil(t, cmd)
}

func TestContactResetClearsFormOnce(t *testing.T) {
	form, _ := NewContact().Activate()
	form, _ = form.Update(keyMsg("hello"))
	form, _ = form.Update(keyMsg("ctrl+s"))
	require.True(t, form.Sent())

	// A reset from an older submission is ignored.
	form, _ = form.Update(contactResetMsg{gen: form.gen - 1})
	assert.True(t, form.Sent())
	assert.Equal(t, "hello", form.inputs[contactFieldName].Value())

	// The matching reset clears everything.
	form, _ = form.Update(contactResetMsg{gen: form.gen})
	assert.False(t, form.Sent())
	for i := range form.inputs {
		assert.Empty(t, form.inputs[i].Value())
	}
}

func TestContactViewHeightConstantAcrossStates(t *testing.T) {
	st := NewStyles(ThemeDark)
	form, _ := NewContact().Activate()

	idle := form.View(st, true)
	form, _ = form.Update(keyMsg("ctrl+s"))
	sent := form.View(st, true)

	assert.Equal(t, countLines(idle), countLines(sent))
}

func countLines(s string) int {
	n := 1
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}
