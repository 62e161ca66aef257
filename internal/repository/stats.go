package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy/minimax/internal/models"
	"github.com/lk16/flippy/minimax/internal/services"
)

const (
	searchStatsKey      = "search_stats"
	searchStatsSearches = "searches"
	searchStatsNodes    = "nodes"
)

// StatsRepository keeps counters of the searches done by the server.
// Without a Redis connection, nothing is recorded and all counters are zero.
type StatsRepository struct {
	services *services.Services
}

// NewStatsRepository creates a new StatsRepository.
func NewStatsRepository(c *fiber.Ctx) *StatsRepository {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	return &StatsRepository{
		services: services,
	}
}

func NewStatsRepositoryFromServices(services *services.Services) *StatsRepository {
	return &StatsRepository{
		services: services,
	}
}

// RecordSearch adds a finished search that visited nodes nodes.
func (repo *StatsRepository) RecordSearch(ctx context.Context, nodes uint64) error {
	redisConn := repo.services.Redis
	if redisConn == nil {
		return nil
	}

	// Update both counters in a single pipeline
	pipe := redisConn.Pipeline()
	pipe.HIncrBy(ctx, searchStatsKey, searchStatsSearches, 1)
	pipe.HIncrBy(ctx, searchStatsKey, searchStatsNodes, int64(nodes)) //nolint:gosec
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("error updating search stats: %w", err)
	}

	return nil
}

// GetStats returns the current counters.
func (repo *StatsRepository) GetStats(ctx context.Context) (models.SearchStats, error) {
	redisConn := repo.services.Redis
	if redisConn == nil {
		return models.SearchStats{}, nil
	}

	values, err := redisConn.HGetAll(ctx, searchStatsKey).Result()
	if err != nil {
		return models.SearchStats{}, fmt.Errorf("error getting search stats from Redis: %w", err)
	}

	var stats models.SearchStats

	if stats.Searches, err = parseCounter(values, searchStatsSearches); err != nil {
		return models.SearchStats{}, err
	}

	if stats.Nodes, err = parseCounter(values, searchStatsNodes); err != nil {
		return models.SearchStats{}, err
	}

	return stats, nil
}

func parseCounter(values map[string]string, field string) (int64, error) {
	value, ok := values[field]
	if !ok {
		return 0, nil
	}

	counter, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s counter %q: %w", field, value, err)
	}

	return counter, nil
}
