package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// contactResetDelay is how long the confirmation stays up before the form
// clears itself. Nothing is ever transmitted; the reset is the whole story.
const contactResetDelay = 2500 * time.Millisecond

// contactResetMsg clears the form after a submit. Generation-tagged so a
// reset scheduled before the form was re-submitted cannot clobber the newer
// confirmation.
type contactResetMsg struct {
	gen int
}

func contactResetAfter(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return contactResetMsg{gen: gen}
	})
}

const (
	contactFieldName = iota
	contactFieldEmail
	contactFieldMessage
	contactFieldCount
)

// ContactModel is the contact form: three inputs, a fake submit and a timed
// reset.
type ContactModel struct {
	inputs [contactFieldCount]textinput.Model
	focus  int
	sent   bool
	gen    int
	width  int
}

// NewContact builds the form.
func NewContact() ContactModel {
	var m ContactModel

	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 64
	name.Width = 36

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 128
	email.Width = 36

	message := textinput.New()
	message.Placeholder = "Say hello..."
	message.CharLimit = 280
	message.Width = 36

	m.inputs[contactFieldName] = name
	m.inputs[contactFieldEmail] = email
	m.inputs[contactFieldMessage] = message
	return m
}

// SetWidth updates the rendering width.
func (m *ContactModel) SetWidth(width int) {
	m.width = width
	fieldWidth := width - 16
	if fieldWidth < 20 {
		fieldWidth = 20
	}
	if fieldWidth > 48 {
		fieldWidth = 48
	}
	for i := range m.inputs {
		m.inputs[i].Width = fieldWidth
	}
}

// Activate gives the form keyboard focus.
func (m ContactModel) Activate() (ContactModel, tea.Cmd) {
	m.focus = contactFieldName
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.inputs[m.focus].Focus()
	return m, textinput.Blink
}

// Deactivate blurs every field.
func (m ContactModel) Deactivate() ContactModel {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m
}

// Update handles keys while the form is focused, plus the timed reset.
func (m ContactModel) Update(msg tea.Msg) (ContactModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return m.cycleFocus(1), nil
		case "shift+tab", "up":
			return m.cycleFocus(-1), nil
		case "enter":
			if m.focus < contactFieldMessage {
				return m.cycleFocus(1), nil
			}
			return m.submit()
		case "ctrl+s":
			return m.submit()
		}

	case contactResetMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
		m.sent = false
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m ContactModel) cycleFocus(dir int) ContactModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + dir + contactFieldCount) % contactFieldCount
	m.inputs[m.focus].Focus()
	return m
}

// submit flips to the confirmation state and schedules the reset. There is
// no transport behind the form.
func (m ContactModel) submit() (ContactModel, tea.Cmd) {
	if m.sent {
		return m, nil
	}
	m.sent = true
	m.gen++
	return m, contactResetAfter(m.gen, contactResetDelay)
}

// Sent reports whether the confirmation is currently showing.
func (m ContactModel) Sent() bool { return m.sent }

// View renders the form. Height is constant across states so the page
// layout never shifts under the animations.
func (m ContactModel) View(st Styles, focused bool) string {
	var b strings.Builder

	b.WriteString(st.Subtitle.Render("Drop me a line"))
	b.WriteString("\n\n")

	labels := [contactFieldCount]string{"Name", "Email", "Message"}
	for i := range m.inputs {
		b.WriteString(st.Label.Render(padRight(labels[i], 9)))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.sent:
		b.WriteString(st.Success.Render("Message sent, thanks! (demo form, nothing was transmitted)"))
	case focused:
		b.WriteString(st.Help.Render("enter: next field • ctrl+s: send • esc: leave form"))
	default:
		b.WriteString(st.Help.Render("press enter here (or c anywhere) to fill in the form"))
	}
	b.WriteString("\n")

	return st.Box.Render(b.String())
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
