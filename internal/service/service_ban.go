package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// banGuard is the concrete implementation of BanGuard. Throttling state is
// derived from windowed counts over the failure event log; there is no
// separately maintained counter to drift out of sync.
type banGuard struct {
	failures store.FailureEventRepository
	clock    Clock

	maxTries        int
	relevanceWindow time.Duration
	banDuration     time.Duration

	logger *logger.Logger
}

// NewBanGuard constructs a BanGuard with thresholds from the application
// configuration. MaxTries zero disables escalation, BanDuration zero
// disables throttling.
func NewBanGuard(failures store.FailureEventRepository, clock Clock, cfg config.App, logger *logger.Logger) BanGuard {
	return &banGuard{
		failures:        failures,
		clock:           clock,
		maxTries:        cfg.MaxTries,
		relevanceWindow: cfg.RelevanceWindow,
		banDuration:     cfg.BanDuration,
		logger:          logger,
	}
}

// IsThrottled implements [BanGuard]. Errors propagate to the caller, which
// must treat them as a refusal, never as "not banned".
func (b *banGuard) IsThrottled(ctx context.Context, ip string) (bool, error) {
	if b.banDuration == 0 {
		return false, nil
	}

	since := b.clock.Now().Add(-b.banDuration)
	bans, err := b.failures.CountSince(ctx, ip, models.EventKindBan, since)
	if err != nil {
		return false, fmt.Errorf("error checking ban state: %w", err)
	}

	return bans > 0, nil
}

// RecordFailure implements [BanGuard].
func (b *banGuard) RecordFailure(ctx context.Context, ip string) error {
	log := logger.FromContext(ctx)
	now := b.clock.Now()

	event := models.FailureEvent{
		IP:         ip,
		Kind:       models.EventKindFailure,
		OccurredAt: now,
	}
	if err := b.failures.Insert(ctx, event); err != nil {
		return fmt.Errorf("error recording authentication failure: %w", err)
	}

	if b.maxTries == 0 || b.banDuration == 0 {
		return nil
	}

	since := now.Add(-b.relevanceWindow)
	count, err := b.failures.CountSince(ctx, ip, models.EventKindFailure, since)
	if err != nil {
		return fmt.Errorf("error counting authentication failures: %w", err)
	}
	if count < b.maxTries {
		return nil
	}

	ban := models.FailureEvent{
		IP:         ip,
		Kind:       models.EventKindBan,
		OccurredAt: now,
	}
	if err := b.failures.Insert(ctx, ban); err != nil {
		return fmt.Errorf("error recording ban: %w", err)
	}
	log.Warn().Str("func", "*banGuard.RecordFailure").Str("ip", ip).Int("failures", count).Msg("ip banned after repeated authentication failures")

	return nil
}
