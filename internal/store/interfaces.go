package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-gate-keeper/models"
)

// UserRepository is the data-access layer for credential records.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields (UserID, CreatedAt) populated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin retrieves a user by its unique login.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)

	// FindUserByID retrieves a user by its identifier.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdatePasswordHash replaces the stored password hash.
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error

	// MarkActive transitions a user from pending_activation to active.
	// Returns ErrUserNotPending when the user is missing or already active;
	// the state never moves backwards.
	MarkActive(ctx context.Context, userID int64) error

	// DeleteUser removes the user row. Token rows reference users with
	// ON DELETE CASCADE, so dependent tokens disappear with it.
	DeleteUser(ctx context.Context, userID int64) error
}

// TokenRepository is the data-access layer for bearer-token rows of both
// kinds. The kind selects the backing table.
type TokenRepository interface {
	// Insert persists a freshly issued token row.
	Insert(ctx context.Context, kind models.TokenKind, token models.BearerToken) error

	// FindBySelector retrieves a token row by its public selector.
	// Returns ErrTokenNotFound when no row exists.
	FindBySelector(ctx context.Context, kind models.TokenKind, selector string) (models.BearerToken, error)

	// DeleteIfHashMatches deletes the row identified by selector only when
	// its stored digest equals tokenHash, and reports whether a row was
	// deleted. This is the atomic consume step: of two racing requests
	// bearing the same token, exactly one observes true.
	DeleteIfHashMatches(ctx context.Context, kind models.TokenKind, selector, tokenHash string) (bool, error)

	// DeleteBySelector removes a single token row unconditionally.
	DeleteBySelector(ctx context.Context, kind models.TokenKind, selector string) error

	// DeleteAllForUser removes every token of the kind owned by the user.
	DeleteAllForUser(ctx context.Context, kind models.TokenKind, userID int64) error

	// DeleteExpired removes rows whose expires_at is not after now and
	// returns how many were deleted. Best-effort hygiene: consume rejects
	// expired rows regardless.
	DeleteExpired(ctx context.Context, kind models.TokenKind, now time.Time) (int64, error)
}

// FailureEventRepository is the data-access layer for the failure/ban event
// log.
type FailureEventRepository interface {
	// Insert appends one event row.
	Insert(ctx context.Context, event models.FailureEvent) error

	// CountSince returns the number of events of the given kind recorded
	// for ip at or after since. Events outside the window are simply not
	// counted; no sweep is needed for correctness.
	CountSince(ctx context.Context, ip string, kind models.EventKind, since time.Time) (int, error)

	// DeleteOlderThan removes events recorded before the given instant and
	// returns how many were deleted. Storage hygiene only.
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}
