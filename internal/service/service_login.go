package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/secret"
	"github.com/MKhiriev/go-gate-keeper/internal/session"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// dummyPassword feeds the burned verification for unknown usernames so the
// response time does not reveal whether a login exists.
const dummyPassword = "correct horse battery staple"

// loginService is the concrete implementation of LoginService.
//
// All state is read-only after construction; per-request state (session,
// cookie jar, client IP) is passed into every call.
type loginService struct {
	users  store.UserRepository
	hasher secret.Hasher
	tokens TokenService
	bans   BanGuard
	trust  session.TrustManager

	autologinEnabled    bool
	autologinTTL        time.Duration
	autologinCookieName string

	// dummyHash is a real bcrypt hash verified against when the username is
	// unknown, equalising the work done on both lookup outcomes.
	dummyHash string

	logger *logger.Logger
}

// NewLoginService constructs a LoginService. It pre-computes the dummy
// verification hash, so construction shares the failure modes of Hash.
func NewLoginService(
	users store.UserRepository,
	hasher secret.Hasher,
	tokens TokenService,
	bans BanGuard,
	trust session.TrustManager,
	appCfg config.App,
	sessionCfg config.Session,
	logger *logger.Logger,
) (LoginService, error) {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("error preparing dummy hash: %w", err)
	}

	return &loginService{
		users:               users,
		hasher:              hasher,
		tokens:              tokens,
		bans:                bans,
		trust:               trust,
		autologinEnabled:    appCfg.AutologinEnabled,
		autologinTTL:        appCfg.AutologinTTL,
		autologinCookieName: sessionCfg.AutologinCookieName,
		dummyHash:           dummyHash,
		logger:              logger,
	}, nil
}

// DoLogin implements [LoginService].
//
// An error return always means an infrastructure failure and the caller
// must refuse the login; rejection for credential or policy reasons comes
// back as an Outcome with a nil error.
func (l *loginService) DoLogin(ctx context.Context, sess session.Store, jar session.Jar, ip, login, password string, rememberMe bool) (int64, Outcome, error) {
	log := logger.FromContext(ctx)

	throttled, err := l.bans.IsThrottled(ctx, ip)
	if err != nil {
		return 0, OutcomeThrottled, err
	}
	if throttled {
		return 0, OutcomeThrottled, nil
	}

	if login == "" || password == "" {
		return l.rejectCredentials(ctx, sess, ip)
	}

	user, err := l.users.FindUserByLogin(ctx, login)
	if errors.Is(err, store.ErrNoUserWasFound) {
		// burn the same verification work as for a known user
		l.hasher.Verify(password, l.dummyHash)
		return l.rejectCredentials(ctx, sess, ip)
	}
	if err != nil {
		return 0, OutcomeBadCredentials, err
	}

	if !l.hasher.Verify(password, user.PasswordHash) {
		return l.rejectCredentials(ctx, sess, ip)
	}

	// correct password, but only the account owner learns the state
	if !user.Active() {
		if err := l.trust.SetFlag(ctx, sess, session.FlagDisplayActivationNotice); err != nil {
			log.Warn().Err(err).Str("func", "*loginService.DoLogin").Msg("raising activation notice flag failed")
		}
		return 0, OutcomePendingActivation, nil
	}

	if l.hasher.NeedsRehash(user.PasswordHash) {
		l.rehash(ctx, user, password)
	}

	if err := l.trust.Establish(ctx, sess, user.UserID); err != nil {
		return 0, OutcomeBadCredentials, fmt.Errorf("error establishing session trust: %w", err)
	}

	if rememberMe && l.autologinEnabled {
		l.issueAutologin(ctx, jar, user.UserID)
	}

	return user.UserID, OutcomeOK, nil
}

// rejectCredentials records the failure and raises the UI flag. Recording
// errors are logged and never change the already-made decision.
func (l *loginService) rejectCredentials(ctx context.Context, sess session.Store, ip string) (int64, Outcome, error) {
	log := logger.FromContext(ctx)

	if err := l.bans.RecordFailure(ctx, ip); err != nil {
		log.Warn().Err(err).Str("func", "*loginService.rejectCredentials").Str("ip", ip).Msg("recording authentication failure failed")
	}
	if err := l.trust.SetFlag(ctx, sess, session.FlagLoginFailed); err != nil {
		log.Warn().Err(err).Str("func", "*loginService.rejectCredentials").Msg("raising login failed flag failed")
	}

	return 0, OutcomeBadCredentials, nil
}

// rehash upgrades the stored hash after a successful verification. Failure
// leaves the old hash in place; the login still succeeds.
func (l *loginService) rehash(ctx context.Context, user models.User, password string) {
	log := logger.FromContext(ctx)

	newHash, err := l.hasher.Hash(password)
	if err != nil {
		log.Warn().Err(err).Str("func", "*loginService.rehash").Int64("user_id", user.UserID).Msg("password rehash failed")
		return
	}
	if err := l.users.UpdatePasswordHash(ctx, user.UserID, newHash); err != nil {
		log.Warn().Err(err).Str("func", "*loginService.rehash").Int64("user_id", user.UserID).Msg("storing rehashed password failed")
	}
}

// issueAutologin creates a "remember me" token and sets its cookie. The
// login has already succeeded, so failures here only cost convenience.
func (l *loginService) issueAutologin(ctx context.Context, jar session.Jar, userID int64) {
	log := logger.FromContext(ctx)

	selector, tokenSecret, err := l.tokens.Issue(ctx, userID, models.TokenKindAutologin)
	if err != nil {
		log.Warn().Err(err).Str("func", "*loginService.issueAutologin").Int64("user_id", userID).Msg("issuing autologin token failed")
		return
	}

	jar.Set(l.autologinCookieName, secret.EncodeBearerKey(selector, tokenSecret), l.autologinTTL)
}

// DoAutoLogin implements [LoginService].
func (l *loginService) DoAutoLogin(ctx context.Context, sess session.Store, jar session.Jar) (bool, error) {
	log := logger.FromContext(ctx)

	trusted, err := l.trust.IsTrusted(ctx, sess)
	if err != nil {
		return false, err
	}
	if trusted {
		return true, nil
	}

	if !l.autologinEnabled {
		return false, nil
	}

	// a failed attempt earlier in this session is not retried
	failedBefore, err := l.trust.HasFlag(ctx, sess, session.FlagAutologinFailed)
	if err != nil {
		return false, err
	}
	if failedBefore {
		return false, nil
	}

	key, ok := jar.Get(l.autologinCookieName)
	if !ok {
		return false, nil
	}

	selector, tokenSecret, err := secret.ParseBearerKey(key)
	if err != nil {
		jar.Clear(l.autologinCookieName)
		return false, nil
	}

	userID, err := l.tokens.Consume(ctx, models.TokenKindAutologin, selector, tokenSecret)
	if errors.Is(err, store.ErrTokenNotFound) {
		jar.Clear(l.autologinCookieName)
		if err := l.trust.SetFlag(ctx, sess, session.FlagAutologinFailed); err != nil {
			log.Warn().Err(err).Str("func", "*loginService.DoAutoLogin").Msg("raising autologin failed flag failed")
		}
		return false, nil
	}
	if err != nil {
		return false, err
	}

	user, err := l.users.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) || (err == nil && !user.Active()) {
		jar.Clear(l.autologinCookieName)
		if err := l.trust.SetFlag(ctx, sess, session.FlagAutologinFailed); err != nil {
			log.Warn().Err(err).Str("func", "*loginService.DoAutoLogin").Msg("raising autologin failed flag failed")
		}
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := l.trust.Establish(ctx, sess, userID); err != nil {
		return false, fmt.Errorf("error establishing session trust: %w", err)
	}

	// rotation: the consumed token is gone, hand the device a fresh one
	l.issueAutologin(ctx, jar, userID)

	return true, nil
}

// DoLogout implements [LoginService]. Only the presenting device's
// autologin token is revoked; tokens on other devices stay valid.
func (l *loginService) DoLogout(ctx context.Context, sess session.Store, jar session.Jar) error {
	log := logger.FromContext(ctx)

	if key, ok := jar.Get(l.autologinCookieName); ok {
		if selector, _, err := secret.ParseBearerKey(key); err == nil {
			if err := l.tokens.Invalidate(ctx, models.TokenKindAutologin, selector); err != nil {
				log.Warn().Err(err).Str("func", "*loginService.DoLogout").Msg("revoking autologin token failed")
			}
		}
		jar.Clear(l.autologinCookieName)
	}

	if err := l.trust.Revoke(ctx, sess); err != nil {
		return fmt.Errorf("error revoking session trust: %w", err)
	}

	return nil
}

// LoggedIn implements [LoginService].
func (l *loginService) LoggedIn(ctx context.Context, sess session.Store) (bool, error) {
	return l.trust.IsTrusted(ctx, sess)
}

// CheckBan implements [LoginService].
func (l *loginService) CheckBan(ctx context.Context, ip string) (bool, error) {
	return l.bans.IsThrottled(ctx, ip)
}
