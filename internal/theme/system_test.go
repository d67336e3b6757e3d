package theme

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStaticSource(t *testing.T) {
	src := NewStaticSource(SchemeDark, true)

	scheme, ok := src.Current()
	if !ok || scheme != SchemeDark {
		t.Errorf("expected (dark, true), got (%s, %v)", scheme, ok)
	}

	select {
	case <-src.Changes():
		t.Error("static source must never deliver changes")
	default:
	}

	if err := src.Close(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}
}

func TestFileSourceCurrent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scheme")

	src, err := NewFileSource(path)
	if err != nil {
		t.Fatalf("NewFileSource failed: %v", err)
	}
	defer func() { _ = src.Close() }()

	// Missing file is unqueryable.
	if _, ok := src.Current(); ok {
		t.Error("expected ok=false for missing scheme file")
	}

	if err := os.WriteFile(path, []byte("dark\n"), 0644); err != nil {
		t.Fatal(err)
	}
	scheme, ok := src.Current()
	if !ok || scheme != SchemeDark {
		t.Errorf("expected (dark, true), got (%s, %v)", scheme, ok)
	}

	// Garbage content is unqueryable.
	if err := os.WriteFile(path, []byte("mauve"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, ok := src.Current(); ok {
		t.Error("expected ok=false for garbage scheme file")
	}
}

func TestFileSourceDeliversChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scheme")
	if err := os.WriteFile(path, []byte("light"), 0644); err != nil {
		t.Fatal(err)
	}

	src, err := NewFileSource(path)
	if err != nil {
		t.Fatalf("NewFileSource failed: %v", err)
	}
	defer func() { _ = src.Close() }()

	if err := os.WriteFile(path, []byte("dark"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case scheme := <-src.Changes():
		if scheme != SchemeDark {
			t.Errorf("expected dark change event, got %s", scheme)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestFileSourceLaggingConsumerGetsLatestScheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scheme")
	if err := os.WriteFile(path, []byte("dark"), 0644); err != nil {
		t.Fatal(err)
	}

	src, err := NewFileSource(path)
	if err != nil {
		t.Fatalf("NewFileSource failed: %v", err)
	}
	defer func() { _ = src.Close() }()

	// Consumer is behind: an older value already sits in the buffer.
	src.ch <- SchemeDark

	if err := os.WriteFile(path, []byte("light"), 0644); err != nil {
		t.Fatal(err)
	}

	// The stale buffered dark must be replaced, never delivered instead
	// of the rewritten scheme.
	deadline := time.After(3 * time.Second)
	for {
		select {
		case scheme := <-src.Changes():
			if scheme == SchemeLight {
				return
			}
		case <-deadline:
			t.Fatal("latest scheme never delivered; consumer stuck with a stale value")
		}
	}
}

func TestFileSourceCloseIdempotent(t *testing.T) {
	src, err := NewFileSource(filepath.Join(t.TempDir(), "scheme"))
	if err != nil {
		t.Fatalf("NewFileSource failed: %v", err)
	}

	if err := src.Close(); err != nil {
		t.Errorf("first close failed: %v", err)
	}
	if err := src.Close(); err != nil {
		t.Errorf("second close failed: %v", err)
	}
}

func TestReadSchemeFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		content string
		want    Scheme
		wantOK  bool
	}{
		{"light", SchemeLight, true},
		{"dark", SchemeDark, true},
		{"  dark \n", SchemeDark, true},
		{"", SchemeLight, false},
		{"blue", SchemeLight, false},
	}

	for i, tt := range tests {
		path := filepath.Join(dir, "scheme")
		if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
			t.Fatal(err)
		}
		scheme, ok := readSchemeFile(path)
		if scheme != tt.want || ok != tt.wantOK {
			t.Errorf("case %d: readSchemeFile(%q) = (%s, %v), want (%s, %v)",
				i, tt.content, scheme, ok, tt.want, tt.wantOK)
		}
	}
}
