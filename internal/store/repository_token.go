package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// tokenRepository is the SQL-backed implementation of [TokenRepository].
//
// Queries are built with squirrel because the backing table depends on the
// token kind; numbered placeholders keep them portable across both drivers.
type tokenRepository struct {
	logger  *logger.Logger
	db      *DB
	builder sq.StatementBuilderType
}

// NewTokenRepository constructs a [TokenRepository] backed by the provided
// database connection and logger.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Insert persists a freshly issued token row.
//
// A unique-constraint violation on the selector indicates a CSPRNG
// collision, which at the configured selector length should never be
// observable; it is surfaced as an unexpected DB error rather than being
// retried silently.
func (r *tokenRepository) Insert(ctx context.Context, kind models.TokenKind, token models.BearerToken) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(kind.TableName()).
		Columns("selector", "token_hash", "user_id", "expires_at").
		Values(token.Selector, token.TokenHash, token.UserID, token.ExpiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building sql query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*tokenRepository.Insert").Str("kind", string(kind)).Msg("error: inserting token failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// FindBySelector retrieves a token row by its public selector.
func (r *tokenRepository) FindBySelector(ctx context.Context, kind models.TokenKind, selector string) (models.BearerToken, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("selector", "token_hash", "user_id", "expires_at").
		From(kind.TableName()).
		Where(sq.Eq{"selector": selector}).
		ToSql()
	if err != nil {
		return models.BearerToken{}, fmt.Errorf("error building sql query: %w", err)
	}

	var token models.BearerToken
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&token.Selector, &token.TokenHash, &token.UserID, &token.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BearerToken{}, ErrTokenNotFound
		}

		log.Err(err).Str("func", "*tokenRepository.FindBySelector").Str("kind", string(kind)).Msg("error: scanning token failed")
		return models.BearerToken{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return token, nil
}

// DeleteIfHashMatches deletes the row only when both selector and digest
// match, reporting whether a row was deleted. Concurrent consumers of the
// same token race on this statement and exactly one of them wins.
func (r *tokenRepository) DeleteIfHashMatches(ctx context.Context, kind models.TokenKind, selector, tokenHash string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete(kind.TableName()).
		Where(sq.Eq{"selector": selector, "token_hash": tokenHash}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("error building sql query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.DeleteIfHashMatches").Str("kind", string(kind)).Msg("error: deleting token failed")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return affected > 0, nil
}

// DeleteBySelector removes a single token row unconditionally.
func (r *tokenRepository) DeleteBySelector(ctx context.Context, kind models.TokenKind, selector string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete(kind.TableName()).
		Where(sq.Eq{"selector": selector}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building sql query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*tokenRepository.DeleteBySelector").Str("kind", string(kind)).Msg("error: deleting token failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// DeleteAllForUser removes every token of the kind owned by the user.
func (r *tokenRepository) DeleteAllForUser(ctx context.Context, kind models.TokenKind, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete(kind.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building sql query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*tokenRepository.DeleteAllForUser").Str("kind", string(kind)).Msg("error: deleting tokens failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// DeleteExpired removes rows past their TTL and returns how many went away.
func (r *tokenRepository) DeleteExpired(ctx context.Context, kind models.TokenKind, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete(kind.TableName()).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building sql query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.DeleteExpired").Str("kind", string(kind)).Msg("error: sweeping tokens failed")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return affected, nil
}
