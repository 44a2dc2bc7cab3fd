package models

import "time"

// UserState describes the lifecycle state of an account.
//
// The only transition performed by normal flow is
// [UserStatePendingActivation] -> [UserStateActive]; accounts never move
// backwards.
type UserState string

const (
	// UserStatePendingActivation marks an account that has been registered
	// but whose activation token has not been consumed yet. Such accounts
	// cannot log in.
	UserStatePendingActivation UserState = "pending_activation"

	// UserStateActive marks a fully usable account.
	UserStateActive UserState = "active"
)

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier, case-sensitive per the
	// storage collation.
	Login string `json:"login"`

	// PasswordHash stores the peppered bcrypt hash of the user's password.
	// This value MUST be a hash output, never plaintext, and is never
	// serialized.
	PasswordHash string `json:"-"`

	// State is the account lifecycle state.
	State UserState `json:"state"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Active reports whether the account may authenticate.
func (u User) Active() bool {
	return u.State == UserStateActive
}
