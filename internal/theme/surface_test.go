package theme

import (
	"bytes"
	"testing"
)

func TestMemSurfaceApplyReplacesMarker(t *testing.T) {
	surface := NewMemSurface()

	surface.Apply(DefaultAttribute, "dark", SchemeDark)
	surface.Apply(DefaultAttribute, "light", SchemeLight)

	if surface.Marker() != "light" {
		t.Errorf("expected light marker, got %q", surface.Marker())
	}
	if surface.Scheme() != SchemeLight {
		t.Errorf("expected light scheme, got %s", surface.Scheme())
	}
	applied := surface.Applied()
	if len(applied) != 2 || applied[0] != "dark" || applied[1] != "light" {
		t.Errorf("unexpected apply history: %v", applied)
	}
}

func TestMemSurfaceClearTolerant(t *testing.T) {
	surface := NewMemSurface()

	// Clearing an empty surface must not panic.
	surface.Clear()

	surface.Apply(DefaultAttribute, "dark", SchemeDark)
	surface.Clear()
	surface.Clear()

	if surface.Marker() != "" {
		t.Errorf("expected empty marker after clear, got %q", surface.Marker())
	}
}

func TestMemSurfaceSuppressionTokens(t *testing.T) {
	surface := NewMemSurface()

	releaseA := surface.Suppress()
	releaseB := surface.Suppress()
	if got := surface.ActiveSuppressions(); got != 2 {
		t.Fatalf("expected 2 active suppressions, got %d", got)
	}

	// Releasing A must not strip B's newer hold.
	releaseA()
	if got := surface.ActiveSuppressions(); got != 1 {
		t.Errorf("expected 1 active suppression, got %d", got)
	}

	// Double release is a no-op.
	releaseA()
	if got := surface.ActiveSuppressions(); got != 1 {
		t.Errorf("expected double release to be a no-op, got %d", got)
	}

	releaseB()
	if got := surface.ActiveSuppressions(); got != 0 {
		t.Errorf("expected 0 active suppressions, got %d", got)
	}
}

func TestTermSurfaceMarker(t *testing.T) {
	var buf bytes.Buffer
	surface := NewTermSurface(&buf)

	surface.Apply(DefaultAttribute, "dark", SchemeDark)
	if surface.Marker() != "dark" {
		t.Errorf("expected dark marker, got %q", surface.Marker())
	}

	surface.Clear()
	if surface.Marker() != "" {
		t.Errorf("expected empty marker after clear, got %q", surface.Marker())
	}
}

func TestTermSurfaceSuppressCounts(t *testing.T) {
	var buf bytes.Buffer
	surface := NewTermSurface(&buf)

	releaseA := surface.Suppress()
	releaseB := surface.Suppress()

	releaseA()
	releaseA() // idempotent
	releaseB()

	// A fresh suppress after full release must still work.
	release := surface.Suppress()
	release()
}
