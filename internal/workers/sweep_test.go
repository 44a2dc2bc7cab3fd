package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSweepWorker_SweepsTokensAndFailureEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := mock.NewMockTokenService(ctrl)
	failures := mock.NewMockFailureEventRepository(ctrl)

	cfg := &config.StructuredConfig{
		App: config.App{
			RelevanceWindow: time.Minute,
			BanDuration:     10 * time.Minute,
		},
		Workers: config.Workers{SweepInterval: time.Hour},
	}

	worker := newSweepWorker(context.Background(), tokens, failures, cfg, logger.NewLogger("test"))
	assert.Equal(t, 10*time.Minute, worker.retention, "retention follows the longest of window and ban")

	start := time.Now()
	tokens.EXPECT().SweepExpired(gomock.Any()).Return(int64(4), nil)
	failures.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, before time.Time) (int64, error) {
			assert.WithinDuration(t, start.Add(-10*time.Minute), before, time.Minute)
			return int64(2), nil
		},
	)

	worker.sweep()
}

func TestSweepWorker_TokenErrorDoesNotStopFailureSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := mock.NewMockTokenService(ctrl)
	failures := mock.NewMockFailureEventRepository(ctrl)

	cfg := &config.StructuredConfig{
		App:     config.App{RelevanceWindow: time.Minute},
		Workers: config.Workers{SweepInterval: time.Hour},
	}

	worker := newSweepWorker(context.Background(), tokens, failures, cfg, logger.NewLogger("test"))

	tokens.EXPECT().SweepExpired(gomock.Any()).Return(int64(0), assert.AnError)
	failures.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	worker.sweep()
}

func TestSweepWorker_LoopStopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := mock.NewMockTokenService(ctrl)
	failures := mock.NewMockFailureEventRepository(ctrl)

	ctx, cancel := context.WithCancel(context.Background())

	cfg := &config.StructuredConfig{
		App:     config.App{RelevanceWindow: time.Minute},
		Workers: config.Workers{SweepInterval: 5 * time.Millisecond},
	}

	swept := make(chan struct{}, 1)
	tokens.EXPECT().SweepExpired(gomock.Any()).DoAndReturn(
		func(_ context.Context) (int64, error) {
			select {
			case swept <- struct{}{}:
			default:
			}
			return int64(0), nil
		},
	).AnyTimes()
	failures.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()

	worker := newSweepWorker(ctx, tokens, failures, cfg, logger.NewLogger("test"))

	done := make(chan struct{})
	go func() {
		worker.loop()
		close(done)
	}()

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("sweep pass never ran")
	}

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop on context cancellation")
	}
}

func TestNewWorkers_ZeroIntervalDisablesSweep(t *testing.T) {
	cfg := &config.StructuredConfig{}

	ws := NewWorkers(context.Background(), nil, nil, cfg, logger.NewLogger("test"))

	assert.Empty(t, ws.workers)
	ws.Run()
}
