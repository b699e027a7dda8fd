// Package resume renders a profile as a Markdown résumé. The output is a
// pure function of the profile, so the export command stays trivially
// testable.
package resume

import (
	"fmt"
	"strings"

	"termfolio/internal/profile"
)

// Markdown renders the profile as a Markdown document.
func Markdown(p *profile.Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", p.Name)
	if p.Tagline != "" {
		fmt.Fprintf(&b, "*%s*\n\n", p.Tagline)
	}

	var meta []string
	if p.Location != "" {
		meta = append(meta, p.Location)
	}
	if p.Email != "" {
		meta = append(meta, p.Email)
	}
	for _, l := range p.Links {
		meta = append(meta, fmt.Sprintf("[%s](%s)", l.Label, l.URL))
	}
	if len(meta) > 0 {
		fmt.Fprintf(&b, "%s\n\n", strings.Join(meta, " · "))
	}

	if len(p.About) > 0 {
		b.WriteString("## About\n\n")
		for _, para := range p.About {
			fmt.Fprintf(&b, "%s\n\n", para)
		}
	}

	if len(p.SkillGroups) > 0 {
		b.WriteString("## Skills\n\n")
		for _, g := range p.SkillGroups {
			names := make([]string, len(g.Skills))
			for i, s := range g.Skills {
				names[i] = s.Name
			}
			fmt.Fprintf(&b, "- **%s:** %s\n", g.Title, strings.Join(names, ", "))
		}
		b.WriteString("\n")
	}

	if len(p.Projects) > 0 {
		b.WriteString("## Projects\n\n")
		for _, pr := range p.Projects {
			title := pr.Name
			if pr.Repo != "" {
				title = fmt.Sprintf("[%s](%s)", pr.Name, pr.Repo)
			} else if pr.URL != "" {
				title = fmt.Sprintf("[%s](%s)", pr.Name, pr.URL)
			}
			fmt.Fprintf(&b, "### %s\n\n%s\n\n", title, pr.Description)
			if len(pr.Tech) > 0 {
				fmt.Fprintf(&b, "`%s`\n\n", strings.Join(pr.Tech, "` `"))
			}
		}
	}

	if len(p.Experience) > 0 {
		b.WriteString("## Experience\n\n")
		for _, e := range p.Experience {
			fmt.Fprintf(&b, "### %s — %s\n\n*%s*\n\n", e.Role, e.Company, e.Period)
			for _, note := range e.Notes {
				fmt.Fprintf(&b, "- %s\n", note)
			}
			if len(e.Notes) > 0 {
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
