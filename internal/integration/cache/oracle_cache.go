// Package cache implements the optional Redis-backed oracle cache.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/personal-dashboard/backend/internal/application/adapter"
	"github.com/personal-dashboard/backend/internal/application/usecase/analysis"
)

const (
	matchKeyPrefix    = "oracle:matches:"
	analysisKeyPrefix = "oracle:analysis:"
)

// RedisOracleCache caches oracle answers in Redis with a TTL. Cache
// failures degrade to misses; the oracle is always the source of truth.
type RedisOracleCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisOracleCache connects to Redis using a redis:// URL.
func NewRedisOracleCache(url string, ttl time.Duration) (*RedisOracleCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	slog.Info("Redis oracle cache connected", "ttl", ttl.String())
	return &RedisOracleCache{
		client: client,
		ttl:    ttl,
	}, nil
}

// Close closes the Redis connection.
func (c *RedisOracleCache) Close() error {
	return c.client.Close()
}

// GetMatches returns the cached fixture list for the date.
func (c *RedisOracleCache) GetMatches(ctx context.Context, date string) ([]adapter.UpcomingMatch, bool) {
	var matches []adapter.UpcomingMatch
	if !c.get(ctx, matchKeyPrefix+date, &matches) {
		return nil, false
	}
	return matches, true
}

// SetMatches caches the fixture list for the date.
func (c *RedisOracleCache) SetMatches(ctx context.Context, date string, matches []adapter.UpcomingMatch) {
	c.set(ctx, matchKeyPrefix+date, matches)
}

// GetAnalysis returns the cached analysis for the match.
func (c *RedisOracleCache) GetAnalysis(ctx context.Context, match string) (*adapter.GameAnalysisPayload, bool) {
	var payload adapter.GameAnalysisPayload
	if !c.get(ctx, analysisKeyPrefix+match, &payload) {
		return nil, false
	}
	return &payload, true
}

// SetAnalysis caches the analysis for the match.
func (c *RedisOracleCache) SetAnalysis(ctx context.Context, match string, payload *adapter.GameAnalysisPayload) {
	c.set(ctx, analysisKeyPrefix+match, payload)
}

func (c *RedisOracleCache) get(ctx context.Context, key string, out any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("oracle cache read failed", "key", key, "error", err.Error())
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		slog.Warn("oracle cache entry is unparsable", "key", key, "error", err.Error())
		return false
	}
	return true
}

func (c *RedisOracleCache) set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		slog.Warn("oracle cache serialization failed", "key", key, "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.Warn("oracle cache write failed", "key", key, "error", err.Error())
	}
}

// Ensure implementation satisfies the interface.
var _ analysis.OracleCache = (*RedisOracleCache)(nil)
