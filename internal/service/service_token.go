package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/secret"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// tokenService is the concrete implementation of TokenService. It owns the
// digest discipline: secrets are digested before storage and compared in
// constant time on consumption.
type tokenService struct {
	tokens store.TokenRepository
	source secret.TokenSource
	clock  Clock

	activationTTL time.Duration
	autologinTTL  time.Duration

	logger *logger.Logger
}

// NewTokenService constructs a TokenService with TTLs taken from the
// application configuration.
func NewTokenService(tokens store.TokenRepository, source secret.TokenSource, clock Clock, cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		tokens:        tokens,
		source:        source,
		clock:         clock,
		activationTTL: cfg.ActivationTTL,
		autologinTTL:  cfg.AutologinTTL,
		logger:        logger,
	}
}

func (t *tokenService) ttl(kind models.TokenKind) time.Duration {
	if kind == models.TokenKindActivation {
		return t.activationTTL
	}
	return t.autologinTTL
}

// Issue implements [TokenService]. Entropy failures abort the operation;
// there is no weaker fallback.
func (t *tokenService) Issue(ctx context.Context, userID int64, kind models.TokenKind) (string, []byte, error) {
	log := logger.FromContext(ctx)

	// an account holds at most one live activation token
	if kind == models.TokenKindActivation {
		if err := t.tokens.DeleteAllForUser(ctx, kind, userID); err != nil {
			return "", nil, fmt.Errorf("error invalidating prior activation tokens: %w", err)
		}
	}

	selector, err := t.source.Selector()
	if err != nil {
		return "", nil, fmt.Errorf("error generating token selector: %w", err)
	}

	tokenSecret, err := t.source.Secret()
	if err != nil {
		return "", nil, fmt.Errorf("error generating token secret: %w", err)
	}

	token := models.BearerToken{
		Selector:  selector,
		TokenHash: secret.Digest(tokenSecret),
		UserID:    userID,
		ExpiresAt: t.clock.Now().Add(t.ttl(kind)),
	}

	if err := t.tokens.Insert(ctx, kind, token); err != nil {
		log.Err(err).Str("func", "*tokenService.Issue").Str("kind", string(kind)).Msg("token insert failed")
		return "", nil, fmt.Errorf("error storing token: %w", err)
	}

	return selector, tokenSecret, nil
}

// Consume implements [TokenService].
//
// The guarded delete is the point of atomicity: when two requests present
// the same token concurrently, exactly one delete affects a row and only
// that caller gets the user id.
func (t *tokenService) Consume(ctx context.Context, kind models.TokenKind, selector string, tokenSecret []byte) (int64, error) {
	log := logger.FromContext(ctx)

	token, err := t.tokens.FindBySelector(ctx, kind, selector)
	if err != nil {
		return 0, err
	}

	if token.Expired(t.clock.Now()) {
		// lazy cleanup; the sweep worker catches what this misses
		if err := t.tokens.DeleteBySelector(ctx, kind, selector); err != nil {
			log.Warn().Err(err).Str("func", "*tokenService.Consume").Msg("expired token cleanup failed")
		}
		return 0, store.ErrTokenNotFound
	}

	digest := secret.Digest(tokenSecret)
	if !secret.DigestEqual(token.TokenHash, digest) {
		return 0, store.ErrTokenNotFound
	}

	deleted, err := t.tokens.DeleteIfHashMatches(ctx, kind, selector, digest)
	if err != nil {
		return 0, err
	}
	if !deleted {
		// another request spent the token first
		return 0, store.ErrTokenNotFound
	}

	return token.UserID, nil
}

// Invalidate implements [TokenService].
func (t *tokenService) Invalidate(ctx context.Context, kind models.TokenKind, selector string) error {
	return t.tokens.DeleteBySelector(ctx, kind, selector)
}

// InvalidateAllForUser implements [TokenService].
func (t *tokenService) InvalidateAllForUser(ctx context.Context, userID int64, kind models.TokenKind) error {
	return t.tokens.DeleteAllForUser(ctx, kind, userID)
}

// SweepExpired implements [TokenService]. Both kinds are swept; a failure
// on one kind does not stop the other.
func (t *tokenService) SweepExpired(ctx context.Context) (int64, error) {
	now := t.clock.Now()

	var (
		total int64
		errs  []error
	)
	for _, kind := range []models.TokenKind{models.TokenKindActivation, models.TokenKindAutologin} {
		swept, err := t.tokens.DeleteExpired(ctx, kind, now)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		total += swept
	}

	return total, errors.Join(errs...)
}
