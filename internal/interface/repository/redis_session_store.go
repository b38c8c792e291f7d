package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tripgenie-service/internal/domain/entity"
	"tripgenie-service/internal/domain/repository"
)

const sessionKeyPrefix = "session:"

// updateRetries bounds the optimistic retry loop when concurrent writers
// race on the same session key.
const updateRetries = 5

// RedisSessionStore keeps planning sessions as JSON blobs with a TTL, for
// deployments that run more than one instance behind a load balancer.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore creates a redis-backed session store. A ttl of zero
// keeps sessions until explicitly deleted.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{
		client: client,
		ttl:    ttl,
	}
}

// Put stores a session snapshot, replacing any existing one.
func (s *RedisSessionStore) Put(ctx context.Context, session *entity.PlanningSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", session.ID, err)
	}
	return s.client.Set(ctx, sessionKey(session.ID), raw, s.ttl).Err()
}

// Get returns a session snapshot.
func (s *RedisSessionStore) Get(ctx context.Context, id string) (*entity.PlanningSession, error) {
	raw, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}

	var session entity.PlanningSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return &session, nil
}

// Update applies mutate under an optimistic WATCH transaction. When another
// writer touches the key mid-transaction the whole read-mutate-write cycle
// retries on the fresh state.
func (s *RedisSessionStore) Update(ctx context.Context, id string, mutate func(*entity.PlanningSession) error) (*entity.PlanningSession, error) {
	key := sessionKey(id)
	var updated *entity.PlanningSession

	txn := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return repository.ErrSessionNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to load session %s: %w", id, err)
		}

		var session entity.PlanningSession
		if err := json.Unmarshal(raw, &session); err != nil {
			return fmt.Errorf("failed to decode session %s: %w", id, err)
		}
		if err := mutate(&session); err != nil {
			return err
		}

		encoded, err := json.Marshal(&session)
		if err != nil {
			return fmt.Errorf("failed to encode session %s: %w", id, err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, s.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		updated = &session
		return nil
	}

	for attempt := 0; attempt < updateRetries; attempt++ {
		err := s.client.Watch(ctx, txn, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}
	return nil, fmt.Errorf("failed to update session %s: too many concurrent writers", id)
}

// Delete removes a session. Unknown ids are a no-op.
func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}
