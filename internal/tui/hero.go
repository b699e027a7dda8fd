package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"termfolio/internal/anim"
	"termfolio/internal/profile"
	"termfolio/internal/tui/banner"
)

// heroTickMsg advances the typewriter. The generation tag lets the model
// drop ticks scheduled before a restart or freeze, so a stale timer can
// never mutate state.
type heroTickMsg struct {
	gen int
}

func heroTick(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return heroTickMsg{gen: gen}
	})
}

// HeroModel renders the banner, tagline and the animated role line.
type HeroModel struct {
	prof     *profile.Profile
	tw       *anim.Typewriter
	gen      int
	frozen   bool
	cursorOn bool
	width    int
}

// NewHero builds the hero. With frozen set the typewriter is pinned at the
// first role's full text and no ticks are consumed.
func NewHero(p *profile.Profile, frozen bool) (HeroModel, error) {
	tw, err := anim.NewTypewriter(p.Roles)
	if err != nil {
		return HeroModel{}, err
	}
	return HeroModel{
		prof:     p,
		tw:       tw,
		frozen:   frozen,
		cursorOn: true,
	}, nil
}

// Start returns the command that begins the typewriter cycle.
func (m HeroModel) Start() tea.Cmd {
	if m.frozen {
		return nil
	}
	return heroTick(m.gen, anim.TypeInterval)
}

// SetWidth updates the rendering width.
func (m *HeroModel) SetWidth(width int) {
	m.width = width
}

// Update consumes typewriter ticks and schedules the next one.
func (m HeroModel) Update(msg tea.Msg) (HeroModel, tea.Cmd) {
	tick, ok := msg.(heroTickMsg)
	if !ok || m.frozen {
		return m, nil
	}
	if tick.gen != m.gen {
		// Stale timer from before a freeze or restart.
		return m, nil
	}

	next := m.tw.Step()
	m.cursorOn = !m.cursorOn
	return m, heroTick(m.gen, next)
}

// roleLine is the animated "I am a ..." line. Always exactly one line high
// so the page layout stays stable across ticks.
func (m HeroModel) roleLine(st Styles) string {
	text := m.tw.Text()
	if m.frozen {
		text = m.tw.Role()
	}

	cursor := " "
	if m.frozen || m.cursorOn {
		cursor = "▌"
	}
	return st.Muted.Render("I am a ") +
		st.HeroRole.Render(text) +
		st.Cursor.Render(cursor)
}

// View renders the hero block.
func (m HeroModel) View(st Styles) string {
	var b strings.Builder

	name := m.renderName(st)
	b.WriteString(name)
	b.WriteString("\n\n")

	if m.prof.Tagline != "" {
		b.WriteString(st.Subtitle.Render(m.prof.Tagline))
		b.WriteString("\n\n")
	}

	b.WriteString(m.roleLine(st))
	b.WriteString("\n")

	var meta []string
	if m.prof.Location != "" {
		meta = append(meta, m.prof.Location)
	}
	if m.prof.Email != "" {
		meta = append(meta, m.prof.Email)
	}
	if len(meta) > 0 {
		b.WriteString("\n")
		b.WriteString(st.Muted.Render(strings.Join(meta, "  •  ")))
		b.WriteString("\n")
	}

	if len(m.prof.Links) > 0 {
		var links []string
		for _, l := range m.prof.Links {
			links = append(links, st.Label.Render(l.Label)+st.Muted.Render(" "+l.URL))
		}
		b.WriteString(strings.Join(links, st.Muted.Render("   ")))
		b.WriteString("\n")
	}

	return b.String()
}

// renderName draws the owner's name as half-block art when a system font is
// available, and as a plain styled line otherwise.
func (m HeroModel) renderName(st Styles) string {
	cols := m.width - 4
	if cols > 64 {
		cols = 64
	}

	if banner.Available() && cols >= 32 {
		if art := banner.Cached(m.prof.Name, cols, 4); art != "" {
			return st.HeroName.Render(art)
		}
	}

	return st.HeroName.Render(strings.ToUpper(m.prof.Name))
}
