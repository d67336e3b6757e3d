package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/keyflow/keyflow/internal/theme"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func readyModel(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func TestNewModel(t *testing.T) {
	m := NewModel(nil)

	if len(m.tabs) != 2 {
		t.Errorf("expected 2 tabs, got %d", len(m.tabs))
	}
	if m.tabs[0].Name != "Solo" || m.tabs[1].Name != "Friend" {
		t.Errorf("unexpected tab names: %s, %s", m.tabs[0].Name, m.tabs[1].Name)
	}
	if m.ready {
		t.Error("expected model not to be ready initially")
	}
}

func TestModelInit(t *testing.T) {
	m := NewModel(nil)

	if cmd := m.Init(); cmd != nil {
		t.Error("expected Init() to return nil")
	}
}

func TestModelUpdateWindowSize(t *testing.T) {
	m := readyModel(t, NewModel(nil))

	if !m.ready {
		t.Error("expected model to be ready after window size message")
	}
	if m.layout.Width != 80 || m.layout.Height != 24 {
		t.Errorf("expected 80x24 layout, got %dx%d", m.layout.Width, m.layout.Height)
	}
}

func TestModelUpdateQuit(t *testing.T) {
	m := NewModel(nil)

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Error("expected quit command from 'q' key")
	}
}

func TestModelTabSwitching(t *testing.T) {
	m := readyModel(t, NewModel(nil))

	tests := []struct {
		key  string
		want int
	}{
		{"tab", 1},
		{"tab", 0},
		{"right", 1},
		{"right", 0}, // wraps
		{"left", 1},  // wraps backwards
		{"1", 0},
		{"2", 1},
		{"shift+tab", 0},
	}

	for _, tt := range tests {
		var msg tea.Msg
		switch tt.key {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = keyMsg(tt.key)
		}
		updated, _ := m.Update(msg)
		m = updated.(Model)
		if m.activeTab != tt.want {
			t.Errorf("after %q: activeTab = %d, want %d", tt.key, m.activeTab, tt.want)
		}
	}
}

func TestModelViewNotReady(t *testing.T) {
	m := NewModel(nil)

	if view := m.View(); view != "Initializing..." {
		t.Errorf("expected 'Initializing...' when not ready, got %q", view)
	}
}

func TestModelViewTooSmall(t *testing.T) {
	m := NewModel(nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 24})
	m = updated.(Model)

	if view := m.View(); !strings.Contains(view, "too narrow") {
		t.Errorf("expected 'too narrow' message, got %q", view)
	}
}

func TestModelViewFull(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	m := readyModel(t, NewModel(nil))

	view := m.View()

	for _, want := range []string{"keyflow", "Solo", "Friend", "theme:", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestModelViewFriendTab(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	m := readyModel(t, NewModel(nil))

	updated, _ := m.Update(keyMsg("2"))
	m = updated.(Model)

	if view := m.View(); !strings.Contains(view, "race head to head") {
		t.Error("expected friend pane content in view")
	}
}

func TestModelThemeMsgSwapsState(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	m := readyModel(t, NewModel(nil))

	updated, _ := m.Update(ThemeMsg(theme.State{
		Theme:    theme.PreferenceDark,
		System:   theme.SchemeLight,
		Resolved: theme.SchemeDark,
		Themes:   []theme.Preference{theme.PreferenceLight, theme.PreferenceDark},
	}))
	m = updated.(Model)

	if m.state.Resolved != theme.SchemeDark {
		t.Errorf("expected dark resolved state, got %s", m.state.Resolved)
	}
	if !strings.Contains(m.View(), "dark") {
		t.Error("expected resolved scheme in header")
	}
	// System selection dropped from the snapshot, so the hint goes away.
	if strings.Contains(m.View(), "follow system") {
		t.Error("expected system hint to disappear")
	}
}

func TestModelToggleKeyDrivesStore(t *testing.T) {
	store := theme.New(theme.Options{}, nil, nil, nil)
	store.Activate()
	defer store.Deactivate()

	m := readyModel(t, NewModel(store))

	_, cmd := m.Update(keyMsg("t"))
	if cmd == nil {
		t.Fatal("expected a command from 't' key")
	}
	cmd() // runs the toggle

	if got := store.Snapshot().Theme; got != theme.PreferenceDark {
		t.Errorf("expected dark after toggling system-resolved light, got %s", got)
	}
}

func TestModelSystemKeyDrivesStore(t *testing.T) {
	store := theme.New(theme.Options{}, nil, nil, nil)
	store.Activate()
	defer store.Deactivate()
	store.SetTheme(theme.PreferenceDark)

	m := readyModel(t, NewModel(store))

	_, cmd := m.Update(keyMsg("s"))
	if cmd == nil {
		t.Fatal("expected a command from 's' key")
	}
	cmd()

	if got := store.Snapshot().Theme; got != theme.PreferenceSystem {
		t.Errorf("expected system preference, got %s", got)
	}
}

func TestModelSystemKeyInertWhenDisabled(t *testing.T) {
	store := theme.New(theme.Options{DisableSystem: true}, nil, nil, nil)
	store.Activate()
	defer store.Deactivate()

	m := readyModel(t, NewModel(store))

	if _, cmd := m.Update(keyMsg("s")); cmd != nil {
		t.Error("expected no command when system selection is disabled")
	}
}
