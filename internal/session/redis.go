package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/secret"
	"github.com/redis/go-redis/v9"
)

// sessionKeyPrefix namespaces session hashes inside the Redis keyspace.
const sessionKeyPrefix = "sess:"

// redisServer stores each session as a Redis hash under "sess:<id>" with a
// TTL refreshed on every open and write. This is the backend for
// multi-instance deployments where sessions must survive process restarts.
type redisServer struct {
	client *redis.Client
	source secret.TokenSource
	ttl    time.Duration
}

// NewRedisServer connects to Redis and returns a [Server] backed by it.
func NewRedisServer(ctx context.Context, cfg config.Redis, source secret.TokenSource, ttl time.Duration, log *logger.Logger) (Server, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisServer").Msg("error connecting to redis")
		return nil, fmt.Errorf("error connecting to redis: %w", err)
	}
	log.Info().Str("func", "NewRedisServer").Msg("connected to redis successfully")

	return &redisServer{client: client, source: source, ttl: ttl}, nil
}

// Open implements [Server].
func (s *redisServer) Open(ctx context.Context, id string) (Store, error) {
	if id != "" {
		exists, err := s.client.Exists(ctx, sessionKeyPrefix+id).Result()
		if err != nil {
			return nil, fmt.Errorf("error opening session: %w", err)
		}
		if exists > 0 {
			if err := s.client.Expire(ctx, sessionKeyPrefix+id, s.ttl).Err(); err != nil {
				return nil, fmt.Errorf("error refreshing session ttl: %w", err)
			}
			return &redisStore{server: s, id: id}, nil
		}
	}

	fresh, err := s.source.SessionID()
	if err != nil {
		return nil, fmt.Errorf("error generating session id: %w", err)
	}

	return &redisStore{server: s, id: fresh}, nil
}

// redisStore is a handle to one session hash. The record is created lazily
// on the first Set, so sessions that never store anything leave no keys
// behind.
type redisStore struct {
	server *redisServer
	id     string
}

func (r *redisStore) key() string {
	return sessionKeyPrefix + r.id
}

func (r *redisStore) ID() string {
	return r.id
}

func (r *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.server.client.HGet(ctx, r.key(), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("error reading session key: %w", err)
	}

	return value, true, nil
}

func (r *redisStore) Set(ctx context.Context, key, value string) error {
	pipe := r.server.client.TxPipeline()
	pipe.HSet(ctx, r.key(), key, value)
	pipe.Expire(ctx, r.key(), r.server.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("error writing session key: %w", err)
	}

	return nil
}

func (r *redisStore) Delete(ctx context.Context, key string) error {
	if err := r.server.client.HDel(ctx, r.key(), key).Err(); err != nil {
		return fmt.Errorf("error deleting session key: %w", err)
	}

	return nil
}

func (r *redisStore) RegenerateID(ctx context.Context) error {
	fresh, err := r.server.source.SessionID()
	if err != nil {
		return fmt.Errorf("error generating session id: %w", err)
	}

	// RENAME fails on a missing source key, which just means the session
	// has no stored values yet; switching the identifier is enough then.
	err = r.server.client.Rename(ctx, r.key(), sessionKeyPrefix+fresh).Err()
	if err != nil && !strings.Contains(err.Error(), "no such key") {
		return fmt.Errorf("error renaming session: %w", err)
	}

	r.id = fresh
	return nil
}

func (r *redisStore) Destroy(ctx context.Context) error {
	if err := r.server.client.Del(ctx, r.key()).Err(); err != nil {
		return fmt.Errorf("error destroying session: %w", err)
	}

	return nil
}
