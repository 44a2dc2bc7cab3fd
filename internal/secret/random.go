package secret

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

const (
	// SelectorBytes is the raw length of a token selector before hex
	// encoding. 12 bytes render as 24 lowercase hex characters.
	SelectorBytes = 12

	// SecretBytes is the raw length of a token secret. The secret stays
	// raw until digested for storage.
	SecretBytes = 32

	// SessionIDBytes is the raw length of a session identifier.
	SessionIDBytes = 32
)

// ErrEntropyUnavailable is returned when the operating system's CSPRNG
// cannot be read. This is a hard infrastructure failure: the caller must
// abort, never substitute a weaker randomness source.
var ErrEntropyUnavailable = errors.New("entropy source unavailable")

// TokenSource produces the random material for selectors, token secrets,
// and session identifiers.
type TokenSource interface {
	// RandomBytes returns n cryptographically secure random bytes, or
	// ErrEntropyUnavailable (wrapped) when the CSPRNG fails.
	RandomBytes(n int) ([]byte, error)

	// Selector returns a fresh public lookup key as lowercase hex.
	Selector() (string, error)

	// Secret returns a fresh raw token secret.
	Secret() ([]byte, error)

	// SessionID returns a fresh session identifier as lowercase hex.
	SessionID() (string, error)
}

// csprngSource reads from crypto/rand. It is the only TokenSource used
// outside of tests.
type csprngSource struct {
	reader io.Reader
}

// NewTokenSource returns the production [TokenSource] backed by
// crypto/rand.
func NewTokenSource() TokenSource {
	return &csprngSource{reader: rand.Reader}
}

// RandomBytes implements [TokenSource].
func (s *csprngSource) RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(s.reader, b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
	}

	return b, nil
}

// Selector implements [TokenSource].
func (s *csprngSource) Selector() (string, error) {
	b, err := s.RandomBytes(SelectorBytes)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// Secret implements [TokenSource].
func (s *csprngSource) Secret() ([]byte, error) {
	return s.RandomBytes(SecretBytes)
}

// SessionID implements [TokenSource].
func (s *csprngSource) SessionID() (string, error) {
	b, err := s.RandomBytes(SessionIDBytes)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// Digest returns the hex-encoded SHA-256 digest of a raw token secret.
// Only the digest is ever persisted; token secrets carry enough entropy
// that no memory-hard KDF is required for them.
func Digest(tokenSecret []byte) string {
	sum := sha256.Sum256(tokenSecret)
	return hex.EncodeToString(sum[:])
}

// DigestEqual compares two digest strings in constant time.
func DigestEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
