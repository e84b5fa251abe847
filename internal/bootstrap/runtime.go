// Package bootstrap wires the runtime dependencies shared by the commands.
package bootstrap

import (
	"context"
	"fmt"

	"tickertalk/internal/cache"
	"tickertalk/internal/config"
	"tickertalk/internal/database"
	"tickertalk/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedReferenceData bool
}

// InitRuntime connects to DB and Redis and optionally seeds reference data.
// The Redis client is nil when Redis is unreachable.
func InitRuntime(ctx context.Context, cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedReferenceData {
		if err := seed.Reference(ctx, db); err != nil {
			return nil, nil, fmt.Errorf("failed to seed reference data: %w", err)
		}
	}

	return db, r, nil
}
