package board

import "context"

type contextKey struct{}

// NewContext returns a copy of ctx carrying s
func NewContext(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the Store carried by ctx. It panics when there is none,
// since every caller runs inside a scope set up by NewContext.
func FromContext(ctx context.Context) *Store {
	s, ok := ctx.Value(contextKey{}).(*Store)
	if !ok || s == nil {
		panic("board: FromContext called outside a board scope")
	}
	return s
}
