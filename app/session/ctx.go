package session

import "context"

type ctxKey int

const sessionKey ctxKey = 1

func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// FromContext returns the request session. Handlers always run behind the
// session middleware, but an empty anonymous session comes back as a safe
// fallback anyway.
func FromContext(ctx context.Context) *Session {
	if v := ctx.Value(sessionKey); v != nil {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	return &Session{}
}
