package tui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"termfolio/internal/anim"
)

// SectionID identifies one section of the page, in page order.
type SectionID int

const (
	SectionHero SectionID = iota
	SectionAbout
	SectionSkills
	SectionProjects
	SectionExperience
	SectionContact
)

// riseLines is the vertical travel of the entrance transition, the terminal
// equivalent of the page's 32px rise (two rows at ~16px per row).
const riseLines = 2

// frameInterval paces the entrance transition frames.
const frameInterval = 80 * time.Millisecond

// section is one region of the scrolling page. Top and Height are line
// coordinates within the assembled page, refreshed on every layout pass.
type section struct {
	id     SectionID
	title  string
	reveal *anim.Reveal
	top    int
	height int
}

func newSections() []*section {
	return []*section{
		{id: SectionHero, title: "Home", reveal: anim.NewReveal(anim.DefaultThreshold)},
		{id: SectionAbout, title: "About", reveal: anim.NewReveal(anim.DefaultThreshold)},
		{id: SectionSkills, title: "Skills", reveal: anim.NewReveal(anim.DefaultThreshold)},
		{id: SectionProjects, title: "Projects", reveal: anim.NewReveal(anim.DefaultThreshold)},
		{id: SectionExperience, title: "Experience", reveal: anim.NewReveal(anim.DefaultThreshold)},
		{id: SectionContact, title: "Contact", reveal: anim.NewReveal(anim.DefaultThreshold)},
	}
}

// entranceBlock places content inside a fixed-height block according to the
// transition progress: hidden while p is ~0, then sliding up from a small
// inset until it settles. The block height never depends on p, so section
// offsets stay stable while animations run.
func entranceBlock(content string, p float64) string {
	height := lipgloss.Height(content) + riseLines

	if p < 0.15 {
		// Terminal cells have no opacity; the first slice of the ramp
		// renders as empty space instead.
		return blankLines(height)
	}
	if p >= 1 {
		return content + strings.Repeat("\n", riseLines)
	}

	inset := int(math.Round((1 - p) * riseLines))
	if inset > riseLines {
		inset = riseLines
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", inset))
	b.WriteString(content)
	b.WriteString(strings.Repeat("\n", riseLines-inset))
	return b.String()
}

// blankLines returns a block of n empty lines.
func blankLines(n int) string {
	if n <= 1 {
		return ""
	}
	return strings.Repeat("\n", n-1)
}

// wordWrap breaks text into lines no wider than width terminal cells.
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0

	for _, word := range words {
		wordWidth := runewidth.StringWidth(word)
		if lineWidth > 0 && lineWidth+1+wordWidth > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteString(" ")
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += wordWidth
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n")
}

// ratioBar renders a level from 0-100 as a filled bar of the given width.
func ratioBar(level, width int, st Styles) string {
	if width < 1 {
		width = 1
	}
	filled := level * width / 100
	if filled > width {
		filled = width
	}
	return st.BarFill.Render(strings.Repeat("█", filled)) +
		st.BarEmpty.Render(strings.Repeat("░", width-filled))
}
