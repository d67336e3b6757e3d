package theme

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
)

// SystemSource delivers the OS-reported colour scheme to the store.
// Change events are pushed, never polled.
type SystemSource interface {
	// Current returns the scheme the OS currently reports. ok is false
	// when nothing can be queried (headless or non-interactive context).
	Current() (scheme Scheme, ok bool)

	// Changes returns the channel on which scheme changes are delivered.
	Changes() <-chan Scheme

	// Close releases the source. Changes delivers nothing afterwards.
	Close() error
}

// DetectScheme queries the operating system for its colour-scheme
// preference. On macOS it reads AppleInterfaceStyle, on Linux the
// GNOME color-scheme setting, and otherwise falls back to the terminal
// background heuristic. ok is false when no mechanism is available.
func DetectScheme() (Scheme, bool) {
	switch runtime.GOOS {
	case "darwin":
		return detectDarwinScheme()
	case "linux":
		if scheme, ok := detectGnomeScheme(); ok {
			return scheme, true
		}
	}
	return detectTerminalScheme()
}

// detectDarwinScheme checks AppleInterfaceStyle. The key is absent in
// light mode, so a failed read means light.
func detectDarwinScheme() (Scheme, bool) {
	out, err := exec.Command("defaults", "read", "-g", "AppleInterfaceStyle").Output()
	if err != nil {
		return SchemeLight, true
	}
	if strings.TrimSpace(string(out)) == "Dark" {
		return SchemeDark, true
	}
	return SchemeLight, true
}

// detectGnomeScheme checks the GNOME color-scheme setting (GNOME 42+).
func detectGnomeScheme() (Scheme, bool) {
	out, err := exec.Command("gsettings", "get", "org.gnome.desktop.interface", "color-scheme").Output()
	if err != nil {
		return SchemeLight, false
	}
	lower := strings.ToLower(string(out))
	switch {
	case strings.Contains(lower, "dark"):
		return SchemeDark, true
	case strings.Contains(lower, "light"):
		return SchemeLight, true
	default:
		return SchemeLight, false
	}
}

// detectTerminalScheme asks the terminal whether its background is dark.
func detectTerminalScheme() (Scheme, bool) {
	if !isatty() {
		return SchemeLight, false
	}
	output := termenv.NewOutput(os.Stdout)
	if output.HasDarkBackground() {
		return SchemeDark, true
	}
	return SchemeLight, true
}

func isatty() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// StaticSource is a SystemSource that reports a fixed scheme and never
// delivers change events. It is the stub for headless contexts.
type StaticSource struct {
	scheme Scheme
	ok     bool
	ch     chan Scheme
}

// NewStaticSource creates a StaticSource reporting the given scheme.
func NewStaticSource(scheme Scheme, ok bool) *StaticSource {
	return &StaticSource{scheme: scheme, ok: ok, ch: make(chan Scheme)}
}

// Current returns the fixed scheme.
func (s *StaticSource) Current() (Scheme, bool) {
	return s.scheme, s.ok
}

// Changes returns a channel that never delivers.
func (s *StaticSource) Changes() <-chan Scheme {
	return s.ch
}

// Close is a no-op.
func (s *StaticSource) Close() error {
	return nil
}

// FileSource watches a scheme file whose content is "light" or "dark"
// and delivers a change event whenever the file is rewritten. Desktop
// environments that expose their theme as a file (or hooks that write
// one) drive the store through this source.
type FileSource struct {
	path    string
	watcher *fsnotify.Watcher
	ch      chan Scheme

	closeOnce sync.Once
	done      chan struct{}
}

// NewFileSource creates a FileSource watching the given path. The file
// does not need to exist yet; its directory is watched so creation is
// picked up.
func NewFileSource(path string) (*FileSource, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory as well: editors and atomic writers replace
	// the file rather than writing in place.
	_ = watcher.Add(filepath.Dir(path))
	_ = watcher.Add(path)

	s := &FileSource{
		path:    path,
		watcher: watcher,
		ch:      make(chan Scheme, 1),
		done:    make(chan struct{}),
	}
	go s.run()
	return s, nil
}

// Current reads the scheme file. ok is false when the file is missing
// or holds anything other than a scheme name.
func (s *FileSource) Current() (Scheme, bool) {
	return readSchemeFile(s.path)
}

// Changes returns the channel on which scheme changes are delivered.
func (s *FileSource) Changes() <-chan Scheme {
	return s.ch
}

// Close stops the watcher.
func (s *FileSource) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.watcher.Close()
	})
	return err
}

func (s *FileSource) run() {
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if !eventTouches(event, s.path) {
				continue
			}
			scheme, ok := readSchemeFile(s.path)
			if !ok {
				continue
			}
			// Replace a buffered value the consumer has not picked up
			// yet, so the latest scheme is always what gets delivered.
			select {
			case <-s.ch:
			default:
			}
			s.ch <- scheme
		case _, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			// Ignored; the next event retriggers a read.
		case <-s.done:
			return
		}
	}
}

func eventTouches(event fsnotify.Event, path string) bool {
	return event.Name == path || filepath.Base(event.Name) == filepath.Base(path)
}

func readSchemeFile(path string) (Scheme, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SchemeLight, false
	}
	switch Scheme(strings.TrimSpace(string(data))) {
	case SchemeDark:
		return SchemeDark, true
	case SchemeLight:
		return SchemeLight, true
	default:
		return SchemeLight, false
	}
}
