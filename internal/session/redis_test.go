package session

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/secret"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisServer(t *testing.T) (Server, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	server, err := NewRedisServer(
		context.Background(),
		config.Redis{Addr: mr.Addr()},
		secret.NewTokenSource(),
		time.Hour,
		logger.NewLogger("test"),
	)
	require.NoError(t, err)

	return server, mr
}

func TestRedisServer_RoundTrip(t *testing.T) {
	server, _ := newTestRedisServer(t)
	ctx := context.Background()

	sess, err := server.Open(ctx, "")
	require.NoError(t, err)
	require.NoError(t, sess.Set(ctx, "greeting", "hello"))

	reopened, err := server.Open(ctx, sess.ID())
	require.NoError(t, err)
	assert.Equal(t, sess.ID(), reopened.ID())

	value, ok, err := reopened.Get(ctx, "greeting")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hello", value)
}

func TestRedisServer_EmptySessionLeavesNoKeys(t *testing.T) {
	server, mr := newTestRedisServer(t)
	ctx := context.Background()

	_, err := server.Open(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, mr.Keys())
}

func TestRedisServer_SetAppliesTTL(t *testing.T) {
	server, mr := newTestRedisServer(t)
	ctx := context.Background()

	sess, err := server.Open(ctx, "")
	require.NoError(t, err)
	require.NoError(t, sess.Set(ctx, "greeting", "hello"))

	ttl := mr.TTL(sessionKeyPrefix + sess.ID())
	assert.Equal(t, time.Hour, ttl)
}

func TestRedisServer_SessionExpires(t *testing.T) {
	server, mr := newTestRedisServer(t)
	ctx := context.Background()

	sess, err := server.Open(ctx, "")
	require.NoError(t, err)
	require.NoError(t, sess.Set(ctx, "greeting", "hello"))

	mr.FastForward(2 * time.Hour)

	reopened, err := server.Open(ctx, sess.ID())
	require.NoError(t, err)
	assert.NotEqual(t, sess.ID(), reopened.ID())
}

func TestRedisServer_RegenerateIDKeepsContents(t *testing.T) {
	server, _ := newTestRedisServer(t)
	ctx := context.Background()

	sess, err := server.Open(ctx, "")
	require.NoError(t, err)
	require.NoError(t, sess.Set(ctx, "greeting", "hello"))

	oldID := sess.ID()
	require.NoError(t, sess.RegenerateID(ctx))
	assert.NotEqual(t, oldID, sess.ID())

	value, ok, err := sess.Get(ctx, "greeting")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hello", value)

	stale, err := server.Open(ctx, oldID)
	require.NoError(t, err)
	assert.NotEqual(t, oldID, stale.ID())
}

func TestRedisServer_RegenerateIDOnEmptySession(t *testing.T) {
	server, _ := newTestRedisServer(t)
	ctx := context.Background()

	sess, err := server.Open(ctx, "")
	require.NoError(t, err)

	oldID := sess.ID()
	require.NoError(t, sess.RegenerateID(ctx))
	assert.NotEqual(t, oldID, sess.ID())
}

func TestRedisServer_Destroy(t *testing.T) {
	server, mr := newTestRedisServer(t)
	ctx := context.Background()

	sess, err := server.Open(ctx, "")
	require.NoError(t, err)
	require.NoError(t, sess.Set(ctx, "greeting", "hello"))
	require.NoError(t, sess.Destroy(ctx))

	assert.False(t, mr.Exists(sessionKeyPrefix+sess.ID()))
}
