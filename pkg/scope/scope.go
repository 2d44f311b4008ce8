package scope

import "context"

// Scope is the per-request identity: the acting user and the correlation id.
type Scope struct {
	UserID        string
	CorrelationID string
}

// Anonymous reports whether no actor was resolved for the request.
func (s Scope) Anonymous() bool {
	return s.UserID == ""
}

type scopeCtxKey struct{}

// SetScopeToContext stores sc in ctx.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the scope stored in ctx, or the zero Scope.
func GetScopeFromContext(ctx context.Context) Scope {
	sc, _ := ctx.Value(scopeCtxKey{}).(Scope)
	return sc
}
