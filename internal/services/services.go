package services

import (
	"log/slog"

	"github.com/lk16/flippy/minimax/internal/config"
	"github.com/redis/go-redis/v9"
)

// Services contains the connections to the external services.
// Redis is nil when no Redis URL is configured.
type Services struct {
	Redis *redis.Client
}

func InitServices(cfg *config.ServerConfig) (*Services, error) {
	if cfg.RedisURL == "" {
		slog.Warn("FLIPPY_REDIS_URL is not set, search statistics are disabled")
		return &Services{}, nil
	}

	// Initialize Redis
	redis, err := InitRedis(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	return &Services{
		Redis: redis,
	}, nil
}

// Close closes all connections.
func (s *Services) Close() error {
	if s.Redis == nil {
		return nil
	}
	return s.Redis.Close()
}
