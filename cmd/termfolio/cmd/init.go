package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"termfolio/internal/profile"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an editable profile.yaml",
	Long: `Initialize the termfolio configuration directory with a profile.yaml
template. Edit it to replace the demo content with your own name, roles,
projects and experience.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite an existing profile")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := filepath.Join(configDir, profile.FileName)

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("profile already exists: %s\nUse --force to overwrite", path)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(profileTemplate), 0644); err != nil {
		return fmt.Errorf("writing profile template: %w", err)
	}

	fmt.Printf("Created %s\n\n", path)
	fmt.Println("Next steps:")
	fmt.Println("  1. Edit profile.yaml and make it yours")
	fmt.Println("  2. Run 'termfolio' to see the page")
	fmt.Println("  3. Run 'termfolio export' for a Markdown résumé")

	return nil
}

// profileTemplate is the starter profile written by 'termfolio init'. It
// mirrors the built-in demo profile so the file documents every field.
const profileTemplate = `# termfolio profile
#
# name and roles are required; everything else may be removed.
# roles feed the typewriter animation in the hero section.

name: Sam Doe
tagline: I build things for the terminal.
location: Lisbon, Portugal
email: sam@example.dev

roles:
  - Go Developer
  - Open Source Contributor
  - CLI Tooling Enthusiast

about:
  - >-
    Backend developer with a soft spot for text interfaces. I spend most of
    my time writing Go services and the tooling around them.
  - >-
    When not at a keyboard I am usually hiking or roasting coffee badly.

links:
  - label: GitHub
    url: https://github.com/samdoe
  - label: LinkedIn
    url: https://linkedin.com/in/samdoe

skill_groups:
  - title: Languages
    skills:
      - name: Go
        level: 90       # 0-100, rendered as a bar
      - name: SQL
        level: 75
  - title: Infrastructure
    skills:
      - name: Kubernetes
        level: 70
      - name: Postgres
        level: 80

projects:
  - name: termfolio
    description: This very portfolio. A single-page site that never left the terminal.
    tech: [Go, bubbletea, lipgloss]
    repo: https://github.com/samdoe/termfolio

experience:
  - role: Senior Backend Engineer
    company: Ferrous Systems Ltd
    period: 2022 – present
    notes:
      - Own the ingestion pipeline (Go, Kafka, Postgres).
  - role: Backend Engineer
    company: Harbourline
    period: 2019 – 2022
`
