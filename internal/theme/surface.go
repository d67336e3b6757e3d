package theme

import (
	"io"
	"sync"

	"github.com/muesli/termenv"
)

// Surface is the render target the store writes the resolved theme to.
// Apply replaces any previously applied marker: slot names the attribute
// the marker occupies (AttributeClass means the class slot) and value is
// the configured light/dark label. Clear removes the marker and must
// tolerate an already-cleared target.
type Surface interface {
	Apply(slot, value string, scheme Scheme)
	Clear()
}

// TransitionSuppressor is an optional Surface capability. Suppress
// disables visual transition effects and returns a release func. The
// store releases on the next rendering frame; suppressions overlapping
// within one frame each release only their own hold, and releasing
// after the surface owner is gone must not panic.
type TransitionSuppressor interface {
	Suppress() (release func())
}

// Chrome colours recommended for the terminal while a theme is active.
const (
	chromeLight = "#ffffff"
	chromeDark  = "#000000"
)

// TermSurface applies the theme to the terminal: it records the active
// marker, pushes the matching chrome colour as the terminal background,
// and hides the cursor while a transition suppression is held.
type TermSurface struct {
	output *termenv.Output

	mu          sync.Mutex
	marker      string
	suppressors int
}

// NewTermSurface creates a TermSurface writing to w.
func NewTermSurface(w io.Writer) *TermSurface {
	return &TermSurface{output: termenv.NewOutput(w)}
}

// Apply replaces the current marker and sets the terminal background to
// the scheme's chrome colour. The slot is recorded but has no terminal
// rendition.
func (t *TermSurface) Apply(slot, value string, scheme Scheme) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.marker = value
	if scheme == SchemeDark {
		t.output.SetBackgroundColor(termenv.RGBColor(chromeDark))
	} else {
		t.output.SetBackgroundColor(termenv.RGBColor(chromeLight))
	}
}

// Clear drops the marker. The terminal keeps its last chrome colour;
// there is no portable way to restore the original.
func (t *TermSurface) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.marker = ""
}

// Marker returns the currently applied marker.
func (t *TermSurface) Marker() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.marker
}

// Suppress hides the cursor until the returned release func runs. Holds
// are counted so overlapping suppressions only show the cursor again
// when the last one releases.
func (t *TermSurface) Suppress() func() {
	t.mu.Lock()
	t.suppressors++
	if t.suppressors == 1 {
		t.output.HideCursor()
	}
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			t.suppressors--
			if t.suppressors == 0 {
				t.output.ShowCursor()
			}
		})
	}
}

// MemSurface records every mutation without touching a terminal. It is
// the stub for headless contexts and the double for tests.
type MemSurface struct {
	mu sync.Mutex

	slot    string
	marker  string
	scheme  Scheme
	applied []string
	cleared int

	nextToken    int
	suppressions map[int]bool
}

// NewMemSurface creates an empty MemSurface.
func NewMemSurface() *MemSurface {
	return &MemSurface{suppressions: map[int]bool{}}
}

// Apply records the marker slot, value, and scheme.
func (m *MemSurface) Apply(slot, value string, scheme Scheme) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slot = slot
	m.marker = value
	m.scheme = scheme
	m.applied = append(m.applied, value)
}

// Clear drops the marker.
func (m *MemSurface) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slot = ""
	m.marker = ""
	m.cleared++
}

// Slot returns the slot of the last Apply.
func (m *MemSurface) Slot() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slot
}

// Marker returns the currently applied marker.
func (m *MemSurface) Marker() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.marker
}

// Scheme returns the scheme of the last Apply.
func (m *MemSurface) Scheme() Scheme {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scheme
}

// Applied returns every marker passed to Apply, in order.
func (m *MemSurface) Applied() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.applied))
	copy(out, m.applied)
	return out
}

// Suppress records a token-keyed suppression hold. The release func
// removes only its own token and is safe to call more than once.
func (m *MemSurface) Suppress() func() {
	m.mu.Lock()
	m.nextToken++
	token := m.nextToken
	m.suppressions[token] = true
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.suppressions, token)
	}
}

// ActiveSuppressions returns the number of unreleased suppression holds.
func (m *MemSurface) ActiveSuppressions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.suppressions)
}
