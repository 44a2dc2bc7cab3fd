// Package secret holds the cryptographic primitives of the authentication
// subsystem: peppered password hashing, CSPRNG-backed token generation, and
// constant-time digest comparison.
package secret

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes and verifies user passwords.
//
// Implementations must never expose timing differences that depend on the
// secret content beyond what the underlying primitive guarantees, and must
// never emit or accept cleartext passwords at the storage boundary.
type Hasher interface {
	// Hash returns the stored representation of password. The result
	// embeds the algorithm and cost metadata needed by Verify and
	// NeedsRehash.
	Hash(password string) (string, error)

	// Verify reports whether password matches the stored hash.
	Verify(password string, encodedHash string) bool

	// NeedsRehash reports whether the stored hash was created with cost
	// parameters weaker than the current policy. Rehashing is the caller's
	// responsibility and must only happen after a successful Verify.
	NeedsRehash(encodedHash string) bool
}

// bcryptHasher is the bcrypt-backed implementation of [Hasher].
//
// The deployment pepper is mixed in as an HMAC-SHA256 pre-hash keyed by the
// pepper, so the value fed to bcrypt is always 64 hex characters. This also
// keeps long passwords clear of bcrypt's 72-byte input truncation.
type bcryptHasher struct {
	pepper []byte
	cost   int
}

// NewHasher constructs a [Hasher] from the application configuration.
//
// Returns [config.ErrPepperNotConfigured] when the pepper is empty; a
// missing pepper is a startup error, never a silent fallback. A zero cost
// selects bcrypt.DefaultCost.
func NewHasher(cfg config.App) (Hasher, error) {
	if cfg.Pepper == "" {
		return nil, config.ErrPepperNotConfigured
	}

	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: bcrypt cost %d out of range", config.ErrInvalidAppConfigs, cost)
	}

	return &bcryptHasher{
		pepper: []byte(cfg.Pepper),
		cost:   cost,
	}, nil
}

// Hash implements [Hasher].
func (h *bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(h.pepperize(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// Verify implements [Hasher]. The comparison is constant-time inside
// bcrypt; any error (mismatch, malformed hash) reads as "no match".
func (h *bcryptHasher) Verify(password string, encodedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), h.pepperize(password)) == nil
}

// NeedsRehash implements [Hasher]. A hash whose cost cannot be read is
// reported as needing a rehash so that a successful verification upgrades it.
func (h *bcryptHasher) NeedsRehash(encodedHash string) bool {
	cost, err := bcrypt.Cost([]byte(encodedHash))
	if err != nil {
		return true
	}

	return cost < h.cost
}

// pepperize mixes the deployment pepper into the password via HMAC-SHA256
// and hex-encodes the digest.
func (h *bcryptHasher) pepperize(password string) []byte {
	mac := hmac.New(sha256.New, h.pepper)
	mac.Write([]byte(password))

	out := make([]byte, hex.EncodedLen(sha256.Size))
	hex.Encode(out, mac.Sum(nil))

	return out
}
