package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the profile file looked up inside the config directory.
const FileName = "profile.yaml"

// Load reads and validates a profile from a YAML file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadDir loads the profile from its conventional place in a config
// directory.
func LoadDir(dir string) (*Profile, error) {
	return Load(filepath.Join(dir, FileName))
}

// Save writes the profile as YAML.
func Save(path string, p *Profile) error {
	out, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	return nil
}

// Validate checks the preconditions the TUI relies on. Malformed content
// fails here, at load time, rather than stalling an animation at runtime.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile: name must not be empty")
	}
	if len(p.Roles) == 0 {
		return fmt.Errorf("profile: at least one role is required")
	}
	for _, g := range p.SkillGroups {
		for _, s := range g.Skills {
			if s.Level < 0 || s.Level > 100 {
				return fmt.Errorf("profile: skill %q level %d out of range 0-100", s.Name, s.Level)
			}
		}
	}
	return nil
}

// Default returns the built-in demo profile shown when no profile.yaml
// exists yet. `termfolio init` writes an editable copy of it.
func Default() *Profile {
	return &Profile{
		Name:     "Sam Doe",
		Tagline:  "I build things for the terminal.",
		Location: "Lisbon, Portugal",
		Email:    "sam@example.dev",
		Roles: []string{
			"Go Developer",
			"Open Source Contributor",
			"CLI Tooling Enthusiast",
		},
		About: []string{
			"Backend developer with a soft spot for text interfaces. " +
				"I spend most of my time writing Go services and the " +
				"tooling around them.",
			"When not at a keyboard I am usually hiking or roasting " +
				"coffee badly.",
		},
		Links: []Link{
			{Label: "GitHub", URL: "https://github.com/samdoe"},
			{Label: "LinkedIn", URL: "https://linkedin.com/in/samdoe"},
		},
		SkillGroups: []SkillGroup{
			{
				Title: "Languages",
				Skills: []Skill{
					{Name: "Go", Level: 90},
					{Name: "SQL", Level: 75},
					{Name: "Shell", Level: 70},
					{Name: "Rust", Level: 40},
				},
			},
			{
				Title: "Infrastructure",
				Skills: []Skill{
					{Name: "Kubernetes", Level: 70},
					{Name: "Postgres", Level: 80},
					{Name: "Terraform", Level: 60},
				},
			},
		},
		Projects: []Project{
			{
				Name:        "termfolio",
				Description: "This very portfolio. A single-page site that never left the terminal.",
				Tech:        []string{"Go", "bubbletea", "lipgloss"},
				Repo:        "https://github.com/samdoe/termfolio",
			},
			{
				Name:        "queuelight",
				Description: "Tiny message queue with an opinionated CLI and zero config.",
				Tech:        []string{"Go", "NATS"},
				Repo:        "https://github.com/samdoe/queuelight",
			},
			{
				Name:        "pgpeek",
				Description: "Postgres activity viewer for people who live in tmux.",
				Tech:        []string{"Go", "Postgres"},
				Repo:        "https://github.com/samdoe/pgpeek",
			},
		},
		Experience: []Experience{
			{
				Role:    "Senior Backend Engineer",
				Company: "Ferrous Systems Ltd",
				Period:  "2022 – present",
				Notes: []string{
					"Own the ingestion pipeline (Go, Kafka, Postgres).",
					"Cut p99 ingest latency from 900ms to 120ms.",
				},
			},
			{
				Role:    "Backend Engineer",
				Company: "Harbourline",
				Period:  "2019 – 2022",
				Notes: []string{
					"Built internal CLI tooling used by 40+ engineers.",
				},
			},
			{
				Role:    "Junior Developer",
				Company: "Studio Norte",
				Period:  "2017 – 2019",
			},
		},
	}
}
