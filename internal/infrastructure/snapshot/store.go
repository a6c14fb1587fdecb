// Package snapshot stores computed engine passes. The memory layer serves
// every read; redis, when configured, survives process restarts so the
// dashboard does not cold-start empty after a deploy.
package snapshot

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"tarkov_market/internal/domain"
	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/value"
	"tarkov_market/pkg/errcodes"
	"tarkov_market/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const defaultTTL = time.Hour

type Store struct {
	memory *cache.Cache
	redis  *redis.Client
	ttl    time.Duration
}

func NewStore() *Store {
	return &Store{
		memory: cache.New(defaultTTL, 10*time.Minute),
		ttl:    defaultTTL,
	}
}

func (s *Store) WithRedis(client *redis.Client) *Store {
	s.redis = client
	return s
}

func (s *Store) WithTTL(ttl time.Duration) *Store {
	s.ttl = ttl
	return s
}

func redisKey(mode value.GameMode) string {
	return "snapshot:" + string(mode)
}

// Put stores a snapshot for its game mode, replacing the previous one.
func (s *Store) Put(ctx context.Context, snap entity.Snapshot) error {
	s.memory.Set(string(snap.Mode), snap, s.ttl)

	if s.redis == nil {
		return nil
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := s.redis.Set(ctx, redisKey(snap.Mode), payload, s.ttl).Err(); err != nil {
		// Memory already holds the snapshot, reads keep working.
		logger(ctx).Warn("snapshot redis write failed", logx.Error(err))
	}

	return nil
}

// Get returns the latest snapshot for the mode. A miss in both layers
// means no refresh has completed yet.
func (s *Store) Get(ctx context.Context, mode value.GameMode) (entity.Snapshot, error) {
	if cached, ok := s.memory.Get(string(mode)); ok {
		if snap, ok := cached.(entity.Snapshot); ok {
			return snap, nil
		}
	}

	if s.redis != nil {
		payload, err := s.redis.Get(ctx, redisKey(mode)).Bytes()
		if err == nil {
			var snap entity.Snapshot
			if err := json.Unmarshal(payload, &snap); err != nil {
				return entity.Snapshot{}, fmt.Errorf("json.Unmarshal: %w", err)
			}

			s.memory.Set(string(mode), snap, s.ttl)

			return snap, nil
		}

		if err != redis.Nil {
			logger(ctx).Warn("snapshot redis read failed", logx.Error(err))
		}
	}

	return entity.Snapshot{}, domain.NewError(errcodes.SnapshotNotReady,
		fmt.Sprintf("no %s snapshot computed yet", mode))
}
