package service

import "context"

type ctxKey string

const sessionKey ctxKey = "notes.session"

// WithSession stores the interaction's session in context.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromCtx fetches the session stored by WithSession.
func SessionFromCtx(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey).(*Session)
	return s, ok && s != nil
}
