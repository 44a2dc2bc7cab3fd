package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrUserNotPending is returned when an activation targets a user that is
	// not in the pending_activation state (already activated, or deleted).
	ErrUserNotPending = errors.New("user is not pending activation")

	// ErrTokenNotFound is returned when a token lookup by selector matches no
	// live row. Repositories never distinguish "unknown selector" from
	// "expired" or "already consumed" through this error.
	ErrTokenNotFound = errors.New("token not found")
)
