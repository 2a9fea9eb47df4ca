package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"mood-movie-discovery/internal/config"
)

const redisPingTimeout = 3 * time.Second

// NewRedis connects to Redis. Redis backs the query result cache and the
// per-user collection mirrors, both of which are optional tiers: when Redis
// is unreachable a nil client is returned and the caller runs without them.
func NewRedis(cfg config.RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis unavailable, cache and mirror disabled", "addr", cfg.Addr, "error", err)
		_ = client.Close()
		return nil
	}

	slog.Info("connected to Redis", "addr", cfg.Addr)
	return client
}
