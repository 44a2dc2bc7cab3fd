package service

import (
	"context"

	"github.com/MKhiriev/go-gate-keeper/internal/session"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// TokenService issues and consumes selector:secret bearer tokens. The
// cleartext secret exists only in the return value of Issue; storage holds
// its digest.
type TokenService interface {
	// Issue creates a token of the kind for the user and returns the
	// selector and the raw secret. Issuing an activation token first
	// invalidates any prior activation tokens of the user.
	Issue(ctx context.Context, userID int64, kind models.TokenKind) (selector string, tokenSecret []byte, err error)

	// Consume verifies and atomically spends a token. Unknown selector,
	// expired row, digest mismatch, and a lost deletion race all surface as
	// store.ErrTokenNotFound.
	Consume(ctx context.Context, kind models.TokenKind, selector string, tokenSecret []byte) (int64, error)

	// Invalidate removes a single token by selector without verifying its
	// secret. Used for logout of the presenting device.
	Invalidate(ctx context.Context, kind models.TokenKind, selector string) error

	// InvalidateAllForUser removes every token of the kind owned by the
	// user.
	InvalidateAllForUser(ctx context.Context, userID int64, kind models.TokenKind) error

	// SweepExpired deletes expired rows of both kinds and returns how many
	// went away.
	SweepExpired(ctx context.Context) (int64, error)
}

// BanGuard tracks authentication failures per client IP and escalates
// repeated failures into temporary bans.
type BanGuard interface {
	// IsThrottled reports whether the IP currently sits under an active
	// ban. Storage errors propagate so that callers fail closed.
	IsThrottled(ctx context.Context, ip string) (bool, error)

	// RecordFailure logs one failed attempt for the IP and inserts a ban
	// event when the windowed failure count reaches the configured
	// threshold.
	RecordFailure(ctx context.Context, ip string) error
}

// LoginService drives the authentication state machine over a per-request
// session and cookie jar. It never renders responses; handlers translate
// its outcomes.
type LoginService interface {
	// DoLogin attempts an interactive login.
	DoLogin(ctx context.Context, sess session.Store, jar session.Jar, ip, login, password string, rememberMe bool) (int64, Outcome, error)

	// DoAutoLogin attempts to establish trust from the autologin cookie.
	// It reports whether the session is trusted afterwards.
	DoAutoLogin(ctx context.Context, sess session.Store, jar session.Jar) (bool, error)

	// DoLogout revokes the presenting device's autologin token, clears its
	// cookie, and drops session trust.
	DoLogout(ctx context.Context, sess session.Store, jar session.Jar) error

	// LoggedIn reports whether the session carries an established identity.
	LoggedIn(ctx context.Context, sess session.Store) (bool, error)

	// CheckBan reports whether the IP is currently banned.
	CheckBan(ctx context.Context, ip string) (bool, error)
}

// UserService manages the account lifecycle around the authentication core.
type UserService interface {
	// CreateUser registers an account. When activation is required the
	// returned activation key is the one-time selector:secret value to be
	// delivered to the user; otherwise it is empty.
	CreateUser(ctx context.Context, login, password string) (models.User, string, error)

	// ActivateUser consumes an activation key and transitions the account
	// to active.
	ActivateUser(ctx context.Context, key string) error

	// DenyActivation consumes an activation key and deletes the
	// still-pending account.
	DenyActivation(ctx context.Context, key string) error

	// ChangePassword replaces the stored hash and invalidates every
	// autologin token of the user.
	ChangePassword(ctx context.Context, userID int64, newPassword string) error

	// DeleteUser removes the account and all of its tokens.
	DeleteUser(ctx context.Context, userID int64) error
}
