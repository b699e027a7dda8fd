package tui

import (
	"strings"
	"time"

	"termfolio/internal/anim"
	"termfolio/internal/profile"
)

// ProjectsModel owns one reveal latch per project card so siblings enter
// with a stagger instead of as a single slab.
type ProjectsModel struct {
	projects []profile.Project
	cards    []*anim.Reveal
}

// NewProjects builds the card latches, each delayed one StaggerStep more
// than the previous.
func NewProjects(projects []profile.Project) ProjectsModel {
	cards := make([]*anim.Reveal, len(projects))
	for i := range projects {
		cards[i] = anim.NewReveal(anim.DefaultThreshold).
			WithDelay(time.Duration(i) * anim.StaggerStep)
	}
	return ProjectsModel{projects: projects, cards: cards}
}

// Observe feeds the section's visible fraction to every card latch and
// reports whether any card newly latched.
func (m ProjectsModel) Observe(fraction float64, now time.Time) bool {
	latched := false
	for _, c := range m.cards {
		if c.Observe(fraction, now) {
			latched = true
		}
	}
	return latched
}

// ForceVisible latches every card with no transition.
func (m ProjectsModel) ForceVisible() {
	for _, c := range m.cards {
		c.ForceVisible()
	}
}

// Settled reports whether all card transitions have finished.
func (m ProjectsModel) Settled(now time.Time) bool {
	for _, c := range m.cards {
		if !c.Settled(now) {
			return false
		}
	}
	return true
}

// View renders the stacked project cards at their current entrance
// progress.
func (m ProjectsModel) View(st Styles, width int, now time.Time) string {
	if len(m.projects) == 0 {
		return st.Muted.Render("Nothing here yet.")
	}

	cardWidth := width - 4
	if cardWidth < 30 {
		cardWidth = 30
	}

	blocks := make([]string, 0, len(m.projects))
	for i, p := range m.projects {
		card := m.renderCard(p, st, cardWidth)
		blocks = append(blocks, entranceBlock(card, m.cards[i].Progress(now)))
	}
	return strings.Join(blocks, "\n")
}

func (m ProjectsModel) renderCard(p profile.Project, st Styles, width int) string {
	var b strings.Builder

	b.WriteString(st.Accent.Render(p.Name))
	b.WriteString("\n")
	b.WriteString(st.Value.Render(wordWrap(p.Description, width-6)))
	b.WriteString("\n")

	if len(p.Tech) > 0 {
		chips := make([]string, len(p.Tech))
		for i, t := range p.Tech {
			chips[i] = st.TagChip.Render(t)
		}
		b.WriteString(strings.Join(chips, ""))
		b.WriteString("\n")
	}

	link := p.Repo
	if link == "" {
		link = p.URL
	}
	if link != "" {
		b.WriteString(st.Muted.Render(link))
	}

	return st.Card.Width(width).Render(b.String())
}
