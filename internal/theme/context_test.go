package theme

import (
	"context"
	"testing"
)

func TestFromContextRoundTrip(t *testing.T) {
	store := New(Options{}, nil, nil, nil)
	ctx := NewContext(context.Background(), store)

	if got := FromContext(ctx); got != store {
		t.Error("expected FromContext to return the store in scope")
	}
}

func TestFromContextPanicsOutsideScope(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected FromContext to panic outside a store scope")
		}
	}()

	FromContext(context.Background())
}

func TestStoreFromContext(t *testing.T) {
	if _, ok := StoreFromContext(context.Background()); ok {
		t.Error("expected ok=false outside a store scope")
	}

	store := New(Options{}, nil, nil, nil)
	ctx := NewContext(context.Background(), store)
	got, ok := StoreFromContext(ctx)
	if !ok || got != store {
		t.Error("expected the store in scope")
	}
}
