package theme

import (
	"sort"
	"sync"
	"time"
)

// DefaultStorageKey is the persistence key used when none is configured.
const DefaultStorageKey = "ui-theme"

// DefaultAttribute is the marker slot used when none is configured.
const DefaultAttribute = "data-theme"

// AttributeClass selects class-based marker application instead of a
// named attribute.
const AttributeClass = "class"

// frameInterval approximates one rendering frame. Transition
// suppressions are released this long after the marker flips.
const frameInterval = 16 * time.Millisecond

// Labels maps the two schemes to the marker values written to the
// surface.
type Labels struct {
	Light string
	Dark  string
}

// Options configures a Store. The zero value gives the defaults:
// system preference, the "ui-theme" storage key, system selection
// enabled, transition suppression enabled, the data-theme attribute,
// and "light"/"dark" marker labels.
type Options struct {
	// DefaultTheme is used when nothing valid is persisted.
	DefaultTheme Preference

	// StorageKey is the persistence key for the preference.
	StorageKey string

	// DisableSystem removes "system" from the selectable preferences.
	DisableSystem bool

	// KeepTransitions skips the one-frame transition suppression when
	// the marker flips.
	KeepTransitions bool

	// Attribute names the marker slot. AttributeClass applies the
	// marker as a class instead.
	Attribute string

	// Values overrides the marker labels written for each scheme.
	Values Labels
}

// normalize fills in defaults for unset options.
func (o Options) normalize() Options {
	if o.StorageKey == "" {
		o.StorageKey = DefaultStorageKey
	}
	if o.Attribute == "" {
		o.Attribute = DefaultAttribute
	}
	if o.Values.Light == "" {
		o.Values.Light = string(SchemeLight)
	}
	if o.Values.Dark == "" {
		o.Values.Dark = string(SchemeDark)
	}
	if o.DefaultTheme == "" {
		o.DefaultTheme = PreferenceSystem
	}
	if o.DisableSystem && o.DefaultTheme == PreferenceSystem {
		o.DefaultTheme = PreferenceLight
	}
	return o
}

// State is a consistent snapshot of the store: the preference, the
// OS-reported scheme, the resolved scheme, and the selectable
// preferences.
type State struct {
	Theme    Preference
	System   Scheme
	Resolved Scheme
	Themes   []Preference
}

// Store owns the theme state. It is the only writer of the preference
// and the system scheme; consumers hold read-only snapshots plus the
// SetTheme and Toggle capabilities.
type Store struct {
	opts    Options
	storage Storage
	source  SystemSource
	surface Surface

	mu          sync.Mutex
	pref        Preference
	system      Scheme
	active      bool
	done        chan struct{}
	wg          sync.WaitGroup
	subscribers map[int]func(State)
	nextSub     int
}

// New creates a Store with the given capabilities. Nil capabilities
// get headless stubs: in-memory storage, a static light source, and a
// recording surface.
func New(opts Options, storage Storage, source SystemSource, surface Surface) *Store {
	if storage == nil {
		storage = NewMemStorage()
	}
	if source == nil {
		source = NewStaticSource(SchemeLight, false)
	}
	if surface == nil {
		surface = NewMemSurface()
	}
	return &Store{
		opts:        opts.normalize(),
		storage:     storage,
		source:      source,
		surface:     surface,
		subscribers: map[int]func(State){},
	}
}

// Activate initialises the store: it loads the persisted preference
// (falling back to the configured default on absence, corruption, or a
// storage failure), seeds the system scheme from the source (defaulting
// to light when unqueryable), applies the resolved scheme to the
// surface, and starts consuming system change events. Activating an
// active store is a no-op.
func (s *Store) Activate() {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}

	s.pref = s.opts.DefaultTheme
	if value, err := s.storage.Get(s.opts.StorageKey); err == nil {
		if p := Preference(value); s.selectable(p) {
			s.pref = p
		}
	}

	s.system = SchemeLight
	if scheme, ok := s.source.Current(); ok {
		s.system = scheme
	}

	s.active = true
	s.done = make(chan struct{})
	s.applyLocked()
	done := s.done
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run(done)
}

// Deactivate stops the system change consumer, releases the source,
// and clears the surface marker. Safe to call more than once and on
// every exit path.
func (s *Store) Deactivate() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	close(s.done)
	s.mu.Unlock()

	s.wg.Wait()
	_ = s.source.Close()
	s.surface.Clear()
}

// run consumes system scheme changes until deactivation.
func (s *Store) run(done <-chan struct{}) {
	defer s.wg.Done()
	changes := s.source.Changes()
	for {
		select {
		case scheme, ok := <-changes:
			if !ok {
				return
			}
			s.systemChanged(scheme)
		case <-done:
			return
		}
	}
}

// systemChanged records the OS scheme. The surface is only touched when
// the resolved theme actually moved, but subscribers always hear about
// the new system scheme.
func (s *Store) systemChanged(scheme Scheme) {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	before := Resolve(s.pref, s.system)
	s.system = scheme
	if Resolve(s.pref, s.system) != before {
		s.applyLocked()
	}
	state, subs := s.snapshotLocked()
	s.mu.Unlock()

	notify(subs, state)
}

// SetTheme persists and applies a new preference. Persistence failures
// are swallowed: the in-memory preference still updates and subscribers
// are notified synchronously before SetTheme returns. Unknown values
// and "system" while system selection is disabled are ignored.
func (s *Store) SetTheme(pref Preference) {
	if !s.selectable(pref) {
		return
	}

	s.mu.Lock()
	state, subs := s.setThemeLocked(pref)
	s.mu.Unlock()

	notify(subs, state)
}

// Toggle sets the explicit opposite of the current resolved scheme. A
// system preference resolving dark toggles to explicit light, and vice
// versa; toggle never targets system. The target is computed and applied
// under one critical section, so a system change cannot slip in between
// the read and the write.
func (s *Store) Toggle() {
	s.mu.Lock()
	target := Resolve(s.pref, s.system).Opposite().Preference()
	state, subs := s.setThemeLocked(target)
	s.mu.Unlock()

	notify(subs, state)
}

// setThemeLocked persists and applies pref. Callers must hold s.mu.
func (s *Store) setThemeLocked(pref Preference) (State, []func(State)) {
	// Best effort; a full or read-only storage must not break the flow.
	_ = s.storage.Set(s.opts.StorageKey, string(pref))
	s.pref = pref
	if s.active {
		s.applyLocked()
	}
	return s.snapshotLocked()
}

// Snapshot returns a consistent view of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, _ := s.snapshotLocked()
	return state
}

// Subscribe registers fn for synchronous notification after every state
// change. The returned func unsubscribes.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	s.nextSub++
	id := s.nextSub
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Themes returns the selectable preferences.
func (s *Store) Themes() []Preference {
	if s.opts.DisableSystem {
		return []Preference{PreferenceLight, PreferenceDark}
	}
	return []Preference{PreferenceLight, PreferenceDark, PreferenceSystem}
}

// selectable reports whether pref is a valid target for SetTheme.
func (s *Store) selectable(pref Preference) bool {
	switch pref {
	case PreferenceLight, PreferenceDark:
		return true
	case PreferenceSystem:
		return !s.opts.DisableSystem
	default:
		return false
	}
}

// applyLocked writes the resolved scheme to the surface. Callers must
// hold s.mu.
func (s *Store) applyLocked() {
	resolved := Resolve(s.pref, s.system)
	label := s.opts.Values.Light
	if resolved == SchemeDark {
		label = s.opts.Values.Dark
	}

	if !s.opts.KeepTransitions {
		if sup, ok := s.surface.(TransitionSuppressor); ok {
			release := sup.Suppress()
			// Released on the next frame. Each change holds its own
			// token, so overlapping flips within a frame cannot strip
			// each other's suppression.
			time.AfterFunc(frameInterval, release)
		}
	}

	s.surface.Apply(s.opts.Attribute, label, resolved)
}

// snapshotLocked builds the current State and a stable subscriber list.
// Callers must hold s.mu.
func (s *Store) snapshotLocked() (State, []func(State)) {
	state := State{
		Theme:    s.pref,
		System:   s.system,
		Resolved: Resolve(s.pref, s.system),
		Themes:   s.Themes(),
	}

	ids := make([]int, 0, len(s.subscribers))
	for id := range s.subscribers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	subs := make([]func(State), 0, len(ids))
	for _, id := range ids {
		subs = append(subs, s.subscribers[id])
	}
	return state, subs
}

// notify delivers state to subscribers outside the store lock so a
// subscriber may call back into the store.
func notify(subs []func(State), state State) {
	for _, fn := range subs {
		fn(state)
	}
}
