package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// failureEventRepository is the SQL-backed implementation of
// [FailureEventRepository]. The windowed count underpins the throttling
// decision, so its predicates are built with squirrel instead of hand-rolled
// placeholder arithmetic.
type failureEventRepository struct {
	logger  *logger.Logger
	db      *DB
	builder sq.StatementBuilderType
}

// NewFailureEventRepository constructs a [FailureEventRepository] backed by
// the provided database connection and logger.
func NewFailureEventRepository(db *DB, logger *logger.Logger) FailureEventRepository {
	logger.Debug().Msg("creating failure event repository")
	return &failureEventRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Insert appends a failure or ban event to the audit trail.
func (r *failureEventRepository) Insert(ctx context.Context, event models.FailureEvent) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(event.TableName()).
		Columns("ip", "kind", "occurred_at").
		Values(event.IP, event.Kind, event.OccurredAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building sql query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*failureEventRepository.Insert").Str("kind", string(event.Kind)).Msg("error: inserting failure event failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// CountSince counts events of the kind recorded for the IP at or after the
// window boundary.
func (r *failureEventRepository) CountSince(ctx context.Context, ip string, kind models.EventKind, since time.Time) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("COUNT(*)").
		From(models.FailureEvent{}.TableName()).
		Where(sq.Eq{"ip": ip, "kind": kind}).
		Where(sq.GtOrEq{"occurred_at": since}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building sql query: %w", err)
	}

	var count int
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&count); err != nil {
		log.Err(err).Str("func", "*failureEventRepository.CountSince").Str("kind", string(kind)).Msg("error: counting failure events failed")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}

// DeleteOlderThan drops events that fell out of every relevance window and
// returns how many rows went away.
func (r *failureEventRepository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete(models.FailureEvent{}.TableName()).
		Where(sq.Lt{"occurred_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building sql query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*failureEventRepository.DeleteOlderThan").Msg("error: sweeping failure events failed")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return affected, nil
}
