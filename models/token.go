package models

import "time"

// TokenKind distinguishes the two bearer-token families stored by the
// system. Both share the same row shape but live in separate tables and
// have different TTLs and consumption semantics.
type TokenKind string

const (
	// TokenKindActivation is a one-time token proving control over a newly
	// registered identity. At most one live activation token exists per
	// user.
	TokenKindActivation TokenKind = "activation"

	// TokenKindAutologin is a long-lived "remember me" token. Successful
	// use rotates it: the consumed row is deleted and a replacement is
	// issued. Multiple autologin tokens may coexist across devices.
	TokenKindAutologin TokenKind = "autologin"
)

// TableName returns the database table holding tokens of this kind.
func (k TokenKind) TableName() string {
	if k == TokenKindActivation {
		return "activation_tokens"
	}
	return "autologin_tokens"
}

// BearerToken is the persisted half of a selector:secret bearer pair.
//
// Only the digest of the secret is ever stored; the cleartext secret exists
// exactly once, in the return value of the issuing call.
type BearerToken struct {
	// Selector is the public lookup key, fixed-length lowercase hex.
	// Globally unique among live tokens of its kind.
	Selector string `json:"-"`

	// TokenHash is the hex-encoded SHA-256 digest of the secret half.
	TokenHash string `json:"-"`

	// UserID is the owner of the token.
	UserID int64 `json:"-"`

	// ExpiresAt is the instant after which the token must be rejected,
	// whether or not the row has been swept yet.
	ExpiresAt time.Time `json:"-"`
}

// Expired reports whether the token is past its TTL at the given instant.
func (t BearerToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
