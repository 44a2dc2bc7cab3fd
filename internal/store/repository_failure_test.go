package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/models"
)

func newTestFailureRepo(t *testing.T) (*failureEventRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &failureEventRepository{
		db:      &DB{DB: db, logger: l},
		logger:  l,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
	return repo, mock, db
}

func TestFailureInsert_Success(t *testing.T) {
	repo, mock, db := newTestFailureRepo(t)
	defer db.Close()

	ctx := context.Background()
	event := models.FailureEvent{
		IP:         "203.0.113.7",
		Kind:       models.EventKindFailure,
		OccurredAt: time.Now(),
	}

	mock.ExpectExec("INSERT INTO failure_events").
		WithArgs(event.IP, event.Kind, event.OccurredAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Insert(ctx, event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFailureInsert_DBError(t *testing.T) {
	repo, mock, db := newTestFailureRepo(t)
	defer db.Close()

	ctx := context.Background()
	event := models.FailureEvent{IP: "203.0.113.7", Kind: models.EventKindBan, OccurredAt: time.Now()}

	mock.ExpectExec("INSERT INTO failure_events").
		WithArgs(event.IP, event.Kind, event.OccurredAt).
		WillReturnError(errors.New("db network error"))

	err := repo.Insert(ctx, event)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFailureCountSince_Success(t *testing.T) {
	repo, mock, db := newTestFailureRepo(t)
	defer db.Close()

	ctx := context.Background()
	since := time.Now().Add(-time.Hour)

	rows := sqlmock.NewRows([]string{"count"}).AddRow(4)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM failure_events`).
		WithArgs("203.0.113.7", models.EventKindFailure, since).
		WillReturnRows(rows)

	count, err := repo.CountSince(ctx, "203.0.113.7", models.EventKindFailure, since)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 4 {
		t.Errorf("expected count=4, got %d", count)
	}
}

func TestFailureCountSince_DBError(t *testing.T) {
	repo, mock, db := newTestFailureRepo(t)
	defer db.Close()

	ctx := context.Background()
	since := time.Now().Add(-time.Hour)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM failure_events`).
		WithArgs("203.0.113.7", models.EventKindBan, since).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CountSince(ctx, "203.0.113.7", models.EventKindBan, since)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFailureDeleteOlderThan(t *testing.T) {
	repo, mock, db := newTestFailureRepo(t)
	defer db.Close()

	ctx := context.Background()
	before := time.Now().Add(-24 * time.Hour)

	mock.ExpectExec("DELETE FROM failure_events").
		WithArgs(before).
		WillReturnResult(sqlmock.NewResult(0, 12))

	swept, err := repo.DeleteOlderThan(ctx, before)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if swept != 12 {
		t.Errorf("expected 12 swept rows, got %d", swept)
	}
}
