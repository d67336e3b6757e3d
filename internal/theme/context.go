package theme

import "context"

// ctxKey is the private context key for the store.
type ctxKey struct{}

// NewContext returns a context carrying the store. The UI tree that
// consumes theme state is built under this context.
func NewContext(ctx context.Context, store *Store) context.Context {
	return context.WithValue(ctx, ctxKey{}, store)
}

// FromContext returns the store in scope. It panics when called outside
// a NewContext scope: that is a programming error caught during
// development, not a recoverable runtime condition.
func FromContext(ctx context.Context) *Store {
	store, ok := ctx.Value(ctxKey{}).(*Store)
	if !ok {
		panic("theme: FromContext called outside a theme store scope; wrap the context with theme.NewContext")
	}
	return store
}

// StoreFromContext returns the store in scope and whether one exists,
// for callers that want to degrade instead of crash.
func StoreFromContext(ctx context.Context) (*Store, bool) {
	store, ok := ctx.Value(ctxKey{}).(*Store)
	return store, ok
}
