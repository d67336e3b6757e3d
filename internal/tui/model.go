package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/keyflow/keyflow/internal/theme"
)

// TabType identifies a game-mode tab.
type TabType int

const (
	// TabSolo is the solo practice tab.
	TabSolo TabType = iota
	// TabFriend is the friend duel tab.
	TabFriend
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Type TabType
}

// Model is the main bubbletea model for the keyflow shell.
type Model struct {
	// Layout
	layout Layout

	// Tabs
	tabs      []Tab
	activeTab int

	// Theme
	state       theme.State
	setTheme    func(theme.Preference)
	toggleTheme func()

	// Styles
	styles Styles

	// State
	ready bool
}

// NewModel creates the shell model wired to the given theme store. A
// nil store leaves the theme keybindings inert, which the tests use.
func NewModel(store *theme.Store) Model {
	m := Model{
		tabs: []Tab{
			{Name: "Solo", Type: TabSolo},
			{Name: "Friend", Type: TabFriend},
		},
		setTheme:    func(theme.Preference) {},
		toggleTheme: func() {},
	}

	if store != nil {
		m.state = store.Snapshot()
		m.setTheme = store.SetTheme
		m.toggleTheme = store.Toggle
	} else {
		m.state = theme.State{
			Theme:    theme.PreferenceSystem,
			System:   theme.SchemeLight,
			Resolved: theme.SchemeLight,
			Themes:   []theme.Preference{theme.PreferenceLight, theme.PreferenceDark, theme.PreferenceSystem},
		}
	}
	m.styles = StylesFor(m.state.Resolved)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = CalculateLayout(msg.Width, msg.Height)
		m.ready = true
		return m, nil

	case ThemeMsg:
		m.state = theme.State(msg)
		m.styles = StylesFor(m.state.Resolved)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h", "shift+tab":
			return m.prevTab()
		case "right", "l", "tab":
			return m.nextTab()
		case "1", "2":
			idx := int(msg.String()[0] - '1')
			if idx < len(m.tabs) {
				m.activeTab = idx
			}
			return m, nil
		case "t":
			return m, m.themeCmd(m.toggleTheme)
		case "s":
			if m.systemSelectable() {
				set := m.setTheme
				return m, m.themeCmd(func() { set(theme.PreferenceSystem) })
			}
			return m, nil
		}
	}

	return m, nil
}

// themeCmd runs a store mutation off the event loop; the store's
// subscriber bridge delivers the resulting ThemeMsg.
func (m Model) themeCmd(fn func()) tea.Cmd {
	return func() tea.Msg {
		fn()
		return nil
	}
}

func (m Model) prevTab() (tea.Model, tea.Cmd) {
	m.activeTab--
	if m.activeTab < 0 {
		m.activeTab = len(m.tabs) - 1
	}
	return m, nil
}

func (m Model) nextTab() (tea.Model, tea.Cmd) {
	m.activeTab++
	if m.activeTab >= len(m.tabs) {
		m.activeTab = 0
	}
	return m, nil
}

// systemSelectable reports whether the system preference is offered.
func (m Model) systemSelectable() bool {
	for _, p := range m.state.Themes {
		if p == theme.PreferenceSystem {
			return true
		}
	}
	return false
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.layout.TooSmall {
		return m.styles.TooSmallMessage.Render(m.layout.TooSmallMessage)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabBar())
	b.WriteString("\n")
	b.WriteString(m.styles.BorderDim.Render(strings.Repeat("─", m.layout.Width)))
	b.WriteString("\n")
	b.WriteString(m.renderBody())
	b.WriteString(m.styles.BorderDim.Render(strings.Repeat("─", m.layout.Width)))
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())
	return b.String()
}

// renderHeader renders the brand on the left and the theme state on the
// right.
func (m Model) renderHeader() string {
	brand := m.styles.Brand.Render(IconBrand + " keyflow")

	status := string(m.state.Resolved)
	if m.state.Theme == theme.PreferenceSystem {
		status += " (system)"
	}
	themeInfo := m.styles.Label.Render(IconTheme+" theme: ") + m.styles.Value.Render(status)

	gap := m.layout.Width - lipgloss.Width(brand) - lipgloss.Width(themeInfo)
	if gap < 1 {
		return ansi.Truncate(brand, m.layout.Width, "…")
	}
	return brand + strings.Repeat(" ", gap) + themeInfo
}

// renderTabBar renders the Solo/Friend tab bar.
func (m Model) renderTabBar() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, m.styles.TabActive.Render(tab.Name))
		} else {
			parts = append(parts, m.styles.TabInactive.Render(tab.Name))
		}
	}
	bar := strings.Join(parts, m.styles.TabBar.Render("│"))
	return ansi.Truncate(bar, m.layout.Width, "…")
}

// renderBody renders the active tab's pane, padded to the body height.
func (m Model) renderBody() string {
	var title, blurb string
	switch m.tabs[m.activeTab].Type {
	case TabFriend:
		title = "Friend"
		blurb = "Invite a friend and race head to head."
	default:
		title = "Solo"
		blurb = "Practice typing on your own, at your own pace."
	}

	lines := []string{
		"",
		"  " + m.styles.Accent.Render(title),
		"  " + m.styles.Body.Render(blurb),
	}

	var b strings.Builder
	for i := 0; i < m.layout.BodyHeight; i++ {
		if i < len(lines) {
			b.WriteString(ansi.Truncate(lines[i], m.layout.Width, "…"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderHelpBar renders the keybinding hints.
func (m Model) renderHelpBar() string {
	sep := m.styles.HelpBar.Render(" · ")
	hints := []string{
		m.styles.HelpKey.Render("←/→") + m.styles.HelpBar.Render(" tabs"),
		m.styles.HelpKey.Render("t") + m.styles.HelpBar.Render(" toggle theme"),
	}
	if m.systemSelectable() {
		hints = append(hints, m.styles.HelpKey.Render("s")+m.styles.HelpBar.Render(" follow system"))
	}
	hints = append(hints, m.styles.HelpKey.Render("q")+m.styles.HelpBar.Render(" quit"))
	return ansi.Truncate(strings.Join(hints, sep), m.layout.Width, "…")
}
