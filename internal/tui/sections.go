package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"termfolio/internal/profile"
)

// sectionHeader renders a section title with a rule out to the right edge,
// the page's equivalent of the site's section headings.
func sectionHeader(title string, st Styles, width int) string {
	label := st.SectionTitle.Render(title)
	ruleWidth := width - lipgloss.Width(label) - 1
	if ruleWidth < 0 {
		ruleWidth = 0
	}
	return label + " " + st.Muted.Render(strings.Repeat("─", ruleWidth))
}

func renderAbout(p *profile.Profile, st Styles, width int) string {
	if len(p.About) == 0 {
		return st.Muted.Render("...")
	}

	paras := make([]string, len(p.About))
	for i, para := range p.About {
		paras[i] = st.Value.Render(wordWrap(para, width-2))
	}
	return strings.Join(paras, "\n\n")
}

func renderSkills(p *profile.Profile, st Styles, width int) string {
	if len(p.SkillGroups) == 0 {
		return st.Muted.Render("...")
	}

	nameWidth := 0
	for _, g := range p.SkillGroups {
		for _, s := range g.Skills {
			if len(s.Name) > nameWidth {
				nameWidth = len(s.Name)
			}
		}
	}

	barWidth := width - nameWidth - 10
	if barWidth > 30 {
		barWidth = 30
	}
	if barWidth < 8 {
		barWidth = 8
	}

	var groups []string
	for _, g := range p.SkillGroups {
		var b strings.Builder
		b.WriteString(st.Subtitle.Render(g.Title))
		b.WriteString("\n")
		for _, s := range g.Skills {
			b.WriteString(st.Label.Render(padRight(s.Name, nameWidth+2)))
			b.WriteString(ratioBar(s.Level, barWidth, st))
			b.WriteString("\n")
		}
		groups = append(groups, b.String())
	}
	return strings.Join(groups, "\n")
}

func renderExperience(p *profile.Profile, st Styles, width int) string {
	if len(p.Experience) == 0 {
		return st.Muted.Render("...")
	}

	var entries []string
	for i, e := range p.Experience {
		last := i == len(p.Experience)-1

		marker, indent := "├─", "│  "
		if last {
			marker, indent = "└─", "   "
		}

		var b strings.Builder
		b.WriteString(st.Muted.Render(marker) + " ")
		b.WriteString(st.Accent.Render(e.Role))
		b.WriteString(st.Muted.Render(" @ "))
		b.WriteString(st.Subtitle.Render(e.Company))
		b.WriteString("\n")
		b.WriteString(st.Muted.Render(indent + e.Period))
		b.WriteString("\n")

		for _, note := range e.Notes {
			for j, line := range strings.Split(wordWrap(note, width-8), "\n") {
				bullet := "• "
				if j > 0 {
					bullet = "  "
				}
				b.WriteString(st.Muted.Render(indent))
				b.WriteString(st.Value.Render(bullet + line))
				b.WriteString("\n")
			}
		}
		entries = append(entries, strings.TrimRight(b.String(), "\n"))
	}
	return strings.Join(entries, "\n")
}

func renderFooter(p *profile.Profile, st Styles, width int) string {
	line := st.Muted.Render(strings.Repeat("─", max(0, width-2)))
	return line + "\n" +
		st.Muted.Render("© "+p.Name+" · rendered entirely in your terminal")
}
