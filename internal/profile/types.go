// Package profile holds the portfolio content: who the site is about and
// what it shows. Content is plain data; presentation lives in the TUI.
package profile

// Link is a labelled external reference (GitHub, LinkedIn, ...).
type Link struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// Skill is a single named skill with a rough self-assessed level from 0-100,
// rendered as a ratio bar.
type Skill struct {
	Name  string `yaml:"name" json:"name"`
	Level int    `yaml:"level" json:"level"`
}

// SkillGroup clusters related skills under one heading.
type SkillGroup struct {
	Title  string  `yaml:"title" json:"title"`
	Skills []Skill `yaml:"skills" json:"skills"`
}

// Project is one portfolio project card.
type Project struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Tech        []string `yaml:"tech,omitempty" json:"tech,omitempty"`
	Repo        string   `yaml:"repo,omitempty" json:"repo,omitempty"`
	URL         string   `yaml:"url,omitempty" json:"url,omitempty"`
}

// Experience is one entry of the work timeline.
type Experience struct {
	Role    string   `yaml:"role" json:"role"`
	Company string   `yaml:"company" json:"company"`
	Period  string   `yaml:"period" json:"period"` // free-form, e.g. "2021 – present"
	Notes   []string `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// Profile is the complete portfolio content.
type Profile struct {
	Name     string `yaml:"name" json:"name"`
	Tagline  string `yaml:"tagline,omitempty" json:"tagline,omitempty"`
	Location string `yaml:"location,omitempty" json:"location,omitempty"`
	Email    string `yaml:"email,omitempty" json:"email,omitempty"`

	// Roles feed the hero typewriter. Must not be empty.
	Roles []string `yaml:"roles" json:"roles"`

	About       []string     `yaml:"about,omitempty" json:"about,omitempty"` // paragraphs
	Links       []Link       `yaml:"links,omitempty" json:"links,omitempty"`
	SkillGroups []SkillGroup `yaml:"skill_groups,omitempty" json:"skill_groups,omitempty"`
	Projects    []Project    `yaml:"projects,omitempty" json:"projects,omitempty"`
	Experience  []Experience `yaml:"experience,omitempty" json:"experience,omitempty"`
}
