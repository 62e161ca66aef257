package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy/minimax/internal/repository"
)

// GetSearchStats returns counters over all searches done by the server.
func GetSearchStats(c *fiber.Ctx) error {
	repo := repository.NewStatsRepository(c)
	stats, err := repo.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
