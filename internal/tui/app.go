package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"termfolio/internal/anim"
	"termfolio/internal/profile"
)

// Options configure the TUI at startup.
type Options struct {
	// Theme selects the starting palette ("dark" or "light").
	Theme string
	// NoAnim renders everything fully visible with the typewriter pinned.
	NoAnim bool
}

// frameMsg paces entrance transitions. Generation-tagged so frames from an
// abandoned animation burst are dropped instead of mutating newer state.
type frameMsg struct {
	gen int
}

func frameTick(gen int) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

// clearCopiedMsg hides the clipboard notice again.
type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// MenuItem is one sidebar anchor.
type MenuItem struct {
	Label    string
	Shortcut string
	Section  SectionID
}

// AppModel is the root bubbletea model: a sidebar of anchors next to the
// scrolling page.
type AppModel struct {
	prof   *profile.Profile
	theme  Theme
	styles Styles
	noAnim bool

	width        int
	height       int
	sidebarWidth int
	ready        bool

	vp viewport.Model

	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool
	showHelp      bool

	hero       HeroModel
	projects   ProjectsModel
	contact    ContactModel
	formActive bool

	sections  []*section
	frameGen  int
	animating bool

	copied bool
}

// NewApp assembles the TUI for a validated profile.
func NewApp(prof *profile.Profile, opts Options) (AppModel, error) {
	hero, err := NewHero(prof, opts.NoAnim)
	if err != nil {
		return AppModel{}, err
	}

	theme := GetTheme(opts.Theme)
	sections := newSections()

	menuItems := make([]MenuItem, len(sections))
	for i, s := range sections {
		menuItems[i] = MenuItem{
			Label:    s.title,
			Shortcut: string(rune('1' + i)),
			Section:  s.id,
		}
	}

	app := AppModel{
		prof:         prof,
		theme:        theme,
		styles:       NewStyles(theme),
		noAnim:       opts.NoAnim,
		sidebarWidth: 18,
		menuItems:    menuItems,
		hero:         hero,
		projects:     NewProjects(prof.Projects),
		contact:      NewContact(),
		sections:     sections,
	}

	if opts.NoAnim {
		// Fail open: the whole page is visible from the first frame.
		for _, s := range app.sections {
			s.reveal.ForceVisible()
		}
		app.projects.ForceVisible()
	}

	return app, nil
}

// Init starts the cursor blink and the typewriter cycle.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.hero.Start())
}

// Update handles messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	now := time.Now()

	switch msg := msg.(type) {
	case heroTickMsg:
		var cmd tea.Cmd
		m.hero, cmd = m.hero.Update(msg)
		m.syncContent(now)
		return m, cmd

	case frameMsg:
		if msg.gen != m.frameGen {
			return m, nil
		}
		m.syncContent(now)
		if m.transitioning(now) {
			return m, frameTick(m.frameGen)
		}
		m.animating = false
		return m, nil

	case contactResetMsg:
		var cmd tea.Cmd
		m.contact, cmd = m.contact.Update(msg)
		m.syncContent(now)
		return m, cmd

	case clearCopiedMsg:
		m.copied = false
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2

		if !m.ready {
			m.vp = viewport.New(contentWidth, contentHeight)
			m.ready = true
		} else {
			m.vp.Width = contentWidth
			m.vp.Height = contentHeight
		}

		m.hero.SetWidth(contentWidth)
		m.contact.SetWidth(contentWidth)
		m.syncContent(now)
		return m, m.observeReveals(now)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, tea.Batch(cmd, m.observeReveals(now))

	case tea.KeyMsg:
		return m.handleKey(msg, now)
	}

	// Cursor blink and friends reach the focused input here.
	if m.formActive {
		var cmd tea.Cmd
		m.contact, cmd = m.contact.Update(msg)
		m.syncContent(now)
		return m, cmd
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	// Help overlay swallows everything.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// While the form is focused it owns the keyboard, esc excepted.
	if m.formActive {
		switch msg.String() {
		case "esc":
			m.formActive = false
			m.contact = m.contact.Deactivate()
			m.syncContent(now)
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.contact, cmd = m.contact.Update(msg)
		m.syncContent(now)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "esc":
		if m.sidebarActive {
			return m, tea.Quit
		}
		m.sidebarActive = true
		return m, nil

	case "tab":
		m.sidebarActive = !m.sidebarActive
		return m, nil

	case "t":
		m.theme = m.theme.Toggle()
		m.styles = NewStyles(m.theme)
		m.syncContent(now)
		return m, nil

	case "y":
		if m.prof.Email == "" {
			return m, nil
		}
		if err := clipboard.WriteAll(m.prof.Email); err == nil {
			m.copied = true
			return m, clearCopiedAfter(2 * time.Second)
		}
		return m, nil

	case "c":
		return m.focusContact(now)

	case "1", "2", "3", "4", "5", "6":
		idx := int(msg.String()[0] - '1')
		if idx < len(m.menuItems) {
			m.selectedMenu = idx
			m.sidebarActive = false
			return m, m.jumpTo(m.menuItems[idx].Section, now)
		}
		return m, nil
	}

	if m.sidebarActive {
		switch msg.String() {
		case "j", "down":
			if m.selectedMenu < len(m.menuItems)-1 {
				m.selectedMenu++
			}
			return m, nil
		case "k", "up":
			if m.selectedMenu > 0 {
				m.selectedMenu--
			}
			return m, nil
		case "enter", "l", "right":
			m.sidebarActive = false
			target := m.menuItems[m.selectedMenu].Section
			if target == SectionContact {
				return m.focusContact(now)
			}
			return m, m.jumpTo(target, now)
		}
		return m, nil
	}

	// Everything else scrolls the page.
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, tea.Batch(cmd, m.observeReveals(now))
}

// focusContact jumps to the contact section and gives the form the
// keyboard.
func (m AppModel) focusContact(now time.Time) (tea.Model, tea.Cmd) {
	jump := m.jumpTo(SectionContact, now)
	var blink tea.Cmd
	m.contact, blink = m.contact.Activate()
	m.formActive = true
	m.sidebarActive = false
	m.selectedMenu = len(m.menuItems) - 1
	m.syncContent(now)
	return m, tea.Batch(jump, blink)
}

// jumpTo scrolls the viewport to a section anchor.
func (m *AppModel) jumpTo(id SectionID, now time.Time) tea.Cmd {
	for _, s := range m.sections {
		if s.id == id {
			m.vp.SetYOffset(s.top)
			break
		}
	}
	return m.observeReveals(now)
}

// observeReveals feeds current intersection fractions to every latch and
// kicks off the frame loop when something new starts its entrance.
func (m *AppModel) observeReveals(now time.Time) tea.Cmd {
	if !m.ready || m.noAnim {
		return nil
	}

	view := anim.Viewport{Top: m.vp.YOffset, Height: m.vp.Height}

	latched := false
	for _, s := range m.sections {
		fraction := anim.VisibleFraction(anim.Region{Top: s.top, Height: s.height}, view)
		if s.reveal.Observe(fraction, now) {
			latched = true
		}
		if s.id == SectionProjects && m.projects.Observe(fraction, now) {
			latched = true
		}
	}

	if latched {
		m.syncContent(now)
	}
	if latched && !m.animating {
		m.animating = true
		m.frameGen++
		return frameTick(m.frameGen)
	}
	return nil
}

// transitioning reports whether any entrance is still mid-ramp.
func (m AppModel) transitioning(now time.Time) bool {
	for _, s := range m.sections {
		if s.reveal.Visible() && !s.reveal.Settled(now) {
			return true
		}
	}
	return !m.projects.Settled(now) && m.sectionVisible(SectionProjects)
}

func (m AppModel) sectionVisible(id SectionID) bool {
	for _, s := range m.sections {
		if s.id == id {
			return s.reveal.Visible()
		}
	}
	return false
}

// syncContent rebuilds the page and refreshes every section's line region.
func (m *AppModel) syncContent(now time.Time) {
	if !m.ready {
		return
	}

	width := m.vp.Width

	var b strings.Builder
	top := 0
	for i, s := range m.sections {
		if i > 0 {
			b.WriteString("\n")
		}

		content := m.sectionContent(s, width, now)
		var block string
		if m.noAnim {
			block = content + strings.Repeat("\n", riseLines)
		} else {
			block = entranceBlock(content, s.reveal.Progress(now))
		}

		s.top = top
		s.height = lipgloss.Height(block)
		top += s.height

		b.WriteString(block)
	}

	b.WriteString("\n")
	b.WriteString(renderFooter(m.prof, m.styles, width))

	m.vp.SetContent(b.String())
}

func (m *AppModel) sectionContent(s *section, width int, now time.Time) string {
	st := m.styles

	switch s.id {
	case SectionHero:
		return m.hero.View(st)
	case SectionAbout:
		return sectionHeader("About", st, width) + "\n\n" + renderAbout(m.prof, st, width)
	case SectionSkills:
		return sectionHeader("Skills", st, width) + "\n\n" + renderSkills(m.prof, st, width)
	case SectionProjects:
		return sectionHeader("Projects", st, width) + "\n\n" + m.projects.View(st, width, now)
	case SectionExperience:
		return sectionHeader("Experience", st, width) + "\n\n" + renderExperience(m.prof, st, width)
	case SectionContact:
		return sectionHeader("Contact", st, width) + "\n\n" + m.contact.View(st, m.formActive)
	}
	return ""
}

// View renders the UI.
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()
	main := m.styles.Content.
		Width(m.vp.Width + 4).
		Height(m.height - 2).
		Render(m.vp.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)
}

// currentSection is the anchor the viewport is currently parked at.
func (m AppModel) currentSection() SectionID {
	current := SectionHero
	for _, s := range m.sections {
		if s.top <= m.vp.YOffset {
			current = s.id
		}
	}
	return current
}

func (m AppModel) renderSidebar() string {
	st := m.styles
	var items []string

	items = append(items, st.SidebarTitle.Render(" ~/"+strings.ToLower(firstName(m.prof.Name))+" "))
	items = append(items, "")

	current := m.currentSection()
	for i, item := range m.menuItems {
		label := item.Shortcut + ". " + item.Label

		var style lipgloss.Style
		switch {
		case m.sidebarActive && i == m.selectedMenu:
			style = st.SidebarItemActive
		case item.Section == current:
			style = st.SidebarItemCurrent
		default:
			style = st.SidebarItem
		}
		items = append(items, style.Render(label))
	}

	items = append(items, "")
	items = append(items, st.SidebarItem.Render(scrollPercent(m.vp.ScrollPercent())))
	if m.copied {
		items = append(items, st.Success.Render(" Copied!"))
	}

	usedHeight := len(items) + 4
	for i := 0; i < m.height-usedHeight-2; i++ {
		items = append(items, "")
	}

	items = append(items, st.SidebarHelp.Render("? Help  q Quit"))

	content := lipgloss.JoinVertical(lipgloss.Left, items...)
	return st.Sidebar.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(content)
}

func firstName(full string) string {
	if i := strings.IndexByte(full, ' '); i > 0 {
		return full[:i]
	}
	return full
}

func scrollPercent(p float64) string {
	pct := int(p * 100)
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return fmt.Sprintf("· %d%%", pct)
}

// renderHelp renders the help overlay.
func (m AppModel) renderHelp() string {
	st := m.styles

	var b strings.Builder
	b.WriteString(st.SectionTitle.Render(m.prof.Name) + "\n\n")

	section := func(title string) {
		b.WriteString(st.Subtitle.Render(title) + "\n")
	}
	key := func(k, desc string) {
		b.WriteString(st.Accent.Render(padRight(k, 12)))
		b.WriteString(st.Value.Render(desc))
		b.WriteString("\n")
	}

	section("Navigation")
	key("1-6", "Jump to section")
	key("j/k ↑/↓", "Scroll the page")
	key("pgup/pgdn", "Scroll faster")
	key("tab", "Toggle sidebar focus")

	b.WriteString("\n")
	section("Page")
	key("t", "Toggle dark/light theme")
	key("y", "Copy email address")
	key("c", "Open the contact form")
	key("?", "Show this help")
	key("q", "Quit")

	b.WriteString("\n")
	section("Contact form")
	key("enter", "Next field / send")
	key("ctrl+s", "Send")
	key("esc", "Leave the form")

	b.WriteString("\n")
	b.WriteString(st.Help.Render("Press any key to close"))

	box := st.Box.Width(46).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
