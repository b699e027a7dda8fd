package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"termfolio/internal/profile"
)

func TestMarkdownSections(t *testing.T) {
	md := Markdown(profile.Default())

	assert.True(t, strings.HasPrefix(md, "# Sam Doe\n"))
	for _, heading := range []string{"## About", "## Skills", "## Projects", "## Experience"} {
		assert.Contains(t, md, heading)
	}
	assert.Contains(t, md, "[GitHub](https://github.com/samdoe)")
	assert.Contains(t, md, "- **Languages:** Go, SQL, Shell, Rust")
	assert.Contains(t, md, "### Senior Backend Engineer — Ferrous Systems Ltd")
}

func TestMarkdownSparseProfile(t *testing.T) {
	p := &profile.Profile{Name: "Ada", Roles: []string{"Engineer"}}
	md := Markdown(p)

	assert.Equal(t, "# Ada\n\n", md)
	assert.NotContains(t, md, "## Skills")
}

func TestMarkdownProjectLinkFallsBackToURL(t *testing.T) {
	p := &profile.Profile{
		Name:  "Ada",
		Roles: []string{"Engineer"},
		Projects: []profile.Project{
			{Name: "demo", Description: "d", URL: "https://demo.dev"},
		},
	}
	assert.Contains(t, Markdown(p), "[demo](https://demo.dev)")
}
