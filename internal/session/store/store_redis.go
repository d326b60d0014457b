package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	"ftts-booking/internal/session"
	"ftts-booking/pkg/domain"
	"ftts-booking/pkg/platform/sentinel"
)

var sessionGetDurationMs = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "ftts_session_get_duration_ms",
	Help:    "Latency of session reads in milliseconds",
	Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
})

const sessionKeyPrefix = "ftts:session:"

// RedisStore is the production session store, shared between instances.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore constructs a redis-backed session store. Sessions expire ttl
// after their last write.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(id domain.SessionID) string {
	return sessionKeyPrefix + id.String()
}

func (s *RedisStore) Get(ctx context.Context, id domain.SessionID) (session.State, error) {
	start := time.Now()
	defer func() {
		sessionGetDurationMs.Observe(float64(time.Since(start).Microseconds()) / 1000.0)
	}()

	raw, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return session.State{}, sentinel.ErrNotFound
	}
	if err != nil {
		return session.State{}, err
	}

	var state session.State
	if err := json.Unmarshal(raw, &state); err != nil {
		return session.State{}, err
	}
	return state, nil
}

func (s *RedisStore) Put(ctx context.Context, state session.State) error {
	if state.SessionID.IsZero() {
		return sentinel.ErrInvalidState
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(state.SessionID), raw, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, id domain.SessionID) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}
