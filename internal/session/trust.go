package session

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
)

// Session keys owned by the trust manager. No other component may write
// them.
const (
	keyLoggedIn = "logged_in"
	keyUserID   = "user_id"

	flagPrefix = "flag:"
)

// One-shot flags surfaced to the UI on the next session read.
const (
	// FlagLoginFailed marks that the last interactive login attempt was
	// rejected.
	FlagLoginFailed = "login_failed"

	// FlagAutologinFailed marks that a presented autologin cookie was
	// invalid and has been cleared.
	FlagAutologinFailed = "autologin_failed"

	// FlagDisplayActivationNotice marks that registration succeeded and the
	// account awaits activation.
	FlagDisplayActivationNotice = "display_activation_notice"
)

// TrustManager owns the authenticated-identity keys of a session. Trust is
// only ever established through it, and establishing trust always changes
// the session identifier first so a pre-login identifier can never become
// an authenticated one.
type TrustManager interface {
	// Establish regenerates the session identifier and marks the session as
	// belonging to userID.
	Establish(ctx context.Context, sess Store, userID int64) error

	// Revoke removes the identity keys and regenerates the session
	// identifier, keeping any remaining non-identity state.
	Revoke(ctx context.Context, sess Store) error

	// IsTrusted reports whether the session carries an established identity.
	// Errors from the backing store leave the session untrusted.
	IsTrusted(ctx context.Context, sess Store) (bool, error)

	// UserID returns the authenticated user id and whether the session is
	// trusted.
	UserID(ctx context.Context, sess Store) (int64, bool, error)

	// SetFlag raises a one-shot UI flag on the session.
	SetFlag(ctx context.Context, sess Store, flag string) error

	// HasFlag reports whether the flag is raised without consuming it.
	HasFlag(ctx context.Context, sess Store, flag string) (bool, error)

	// PopFlag reports whether the flag was raised and lowers it.
	PopFlag(ctx context.Context, sess Store, flag string) (bool, error)
}

type trustManager struct {
	logger *logger.Logger
}

// NewTrustManager constructs the production [TrustManager].
func NewTrustManager(log *logger.Logger) TrustManager {
	log.Debug().Msg("creating trust manager")
	return &trustManager{logger: log}
}

// Establish implements [TrustManager]. The identifier is regenerated before
// any identity key is written.
func (t *trustManager) Establish(ctx context.Context, sess Store, userID int64) error {
	if err := sess.RegenerateID(ctx); err != nil {
		return fmt.Errorf("error regenerating session id: %w", err)
	}

	if err := sess.Set(ctx, keyLoggedIn, "1"); err != nil {
		return fmt.Errorf("error marking session trusted: %w", err)
	}
	if err := sess.Set(ctx, keyUserID, strconv.FormatInt(userID, 10)); err != nil {
		return fmt.Errorf("error storing session user id: %w", err)
	}

	return nil
}

// Revoke implements [TrustManager].
func (t *trustManager) Revoke(ctx context.Context, sess Store) error {
	if err := sess.Delete(ctx, keyLoggedIn); err != nil {
		return fmt.Errorf("error revoking session trust: %w", err)
	}
	if err := sess.Delete(ctx, keyUserID); err != nil {
		return fmt.Errorf("error clearing session user id: %w", err)
	}

	if err := sess.RegenerateID(ctx); err != nil {
		return fmt.Errorf("error regenerating session id: %w", err)
	}

	return nil
}

// IsTrusted implements [TrustManager].
func (t *trustManager) IsTrusted(ctx context.Context, sess Store) (bool, error) {
	value, ok, err := sess.Get(ctx, keyLoggedIn)
	if err != nil {
		return false, fmt.Errorf("error reading session trust: %w", err)
	}

	return ok && value == "1", nil
}

// UserID implements [TrustManager].
func (t *trustManager) UserID(ctx context.Context, sess Store) (int64, bool, error) {
	trusted, err := t.IsTrusted(ctx, sess)
	if err != nil || !trusted {
		return 0, false, err
	}

	value, ok, err := sess.Get(ctx, keyUserID)
	if err != nil {
		return 0, false, fmt.Errorf("error reading session user id: %w", err)
	}
	if !ok {
		return 0, false, nil
	}

	userID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("error parsing session user id: %w", err)
	}

	return userID, true, nil
}

// SetFlag implements [TrustManager].
func (t *trustManager) SetFlag(ctx context.Context, sess Store, flag string) error {
	if err := sess.Set(ctx, flagPrefix+flag, "1"); err != nil {
		return fmt.Errorf("error raising session flag: %w", err)
	}

	return nil
}

// HasFlag implements [TrustManager].
func (t *trustManager) HasFlag(ctx context.Context, sess Store, flag string) (bool, error) {
	value, ok, err := sess.Get(ctx, flagPrefix+flag)
	if err != nil {
		return false, fmt.Errorf("error reading session flag: %w", err)
	}

	return ok && value == "1", nil
}

// PopFlag implements [TrustManager].
func (t *trustManager) PopFlag(ctx context.Context, sess Store, flag string) (bool, error) {
	raised, err := t.HasFlag(ctx, sess, flag)
	if err != nil {
		return false, err
	}
	if !raised {
		return false, nil
	}

	if err := sess.Delete(ctx, flagPrefix+flag); err != nil {
		return false, fmt.Errorf("error lowering session flag: %w", err)
	}

	return true, nil
}
