package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"chessmm/internal/engine"
	ownErrors "chessmm/internal/errors"
)

const DefaultSearchTTL = 24 * time.Hour

type RedisSearchCache struct {
	client *redis.Client
	log    *zap.SugaredLogger
	ttl    time.Duration
}

func NewRedisSearchCache(client *redis.Client, log *zap.SugaredLogger, ttl time.Duration) *RedisSearchCache {
	if ttl <= 0 {
		ttl = DefaultSearchTTL
	}
	return &RedisSearchCache{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func (r *RedisSearchCache) Get(ctx context.Context, key SearchKey) (engine.SearchResult, error) {
	raw, err := r.client.Get(ctx, key.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return engine.SearchResult{}, ownErrors.ErrCacheMiss
		}
		return engine.SearchResult{}, fmt.Errorf("redis get %s: %w", key, err)
	}
	var res engine.SearchResult
	if err := json.Unmarshal(raw, &res); err != nil {
		r.log.Warnw("dropping undecodable cache entry", "key", key.String(), "error", err)
		r.client.Del(ctx, key.String())
		return engine.SearchResult{}, ownErrors.ErrCacheMiss
	}
	return res, nil
}

func (r *RedisSearchCache) Put(ctx context.Context, key SearchKey, res engine.SearchResult) error {
	raw, err := json.Marshal(res)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key.String(), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
