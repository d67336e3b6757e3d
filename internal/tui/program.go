package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/keyflow/keyflow/internal/theme"
)

// Program wraps the tea.Program and the theme store subscription for
// lifecycle management.
type Program struct {
	program     *tea.Program
	unsubscribe func()
}

// New creates a new TUI program for the given theme store. The store's
// notifications are bridged into the event loop as ThemeMsg values; the
// subscription is released when the program finishes.
func New(store *theme.Store) *Program {
	// Handle NO_COLOR environment variable
	if os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	model := NewModel(store)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	unsubscribe := store.Subscribe(func(state theme.State) {
		program.Send(ThemeMsg(state))
	})

	return &Program{
		program:     program,
		unsubscribe: unsubscribe,
	}
}

// Run starts the TUI program. This blocks until the program exits; the
// store subscription is released on every exit path.
func (p *Program) Run() error {
	defer p.unsubscribe()
	_, err := p.program.Run()
	return err
}

// Send sends a message to the program.
func (p *Program) Send(msg tea.Msg) {
	p.program.Send(msg)
}

// Quit sends a quit message to the program.
func (p *Program) Quit() {
	p.program.Quit()
}

// Kill forcefully terminates the program.
func (p *Program) Kill() {
	p.program.Kill()
}

// Wait waits for the program to finish.
func (p *Program) Wait() {
	p.program.Wait()
}
