package http

import (
	"context"

	"github.com/MKhiriev/go-gate-keeper/internal/session"
)

type ctxKey int

const (
	sessionCtxKey ctxKey = iota
	jarCtxKey
	userIDCtxKey
)

// sessionFromContext returns the session opened by the session middleware.
// Handlers below that middleware may assume it is present.
func sessionFromContext(ctx context.Context) session.Store {
	sess, _ := ctx.Value(sessionCtxKey).(session.Store)
	return sess
}

func jarFromContext(ctx context.Context) session.Jar {
	jar, _ := ctx.Value(jarCtxKey).(session.Jar)
	return jar
}

// userIDFromContext returns the authenticated user id placed into the context
// by the auth middleware.
func userIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDCtxKey).(int64)
	return userID, ok
}
