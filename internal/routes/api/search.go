package api

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy/minimax/internal/config"
	"github.com/lk16/flippy/minimax/internal/models"
	"github.com/lk16/flippy/minimax/internal/repository"
	"github.com/lk16/flippy/minimax/internal/search"
)

// GetBestMove runs a search and returns the best move for the player.
func GetBestMove(c *fiber.Ctx) error {
	var payload models.BestMoveRequest
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := models.Validate(&payload); err != nil {
		return badRequest(c, err.Error())
	}

	cfg := c.Locals("config").(*config.ServerConfig) //nolint: errcheck
	if payload.Depth > cfg.MaxDepth {
		return badRequest(c, fmt.Sprintf("depth must be at most %d", cfg.MaxDepth))
	}

	board, player, err := payload.ParseBoard()
	if err != nil {
		return badRequest(c, err.Error())
	}

	searcher := search.New(search.Config{
		Depth:   payload.Depth,
		Pruning: payload.PruningEnabled(),
	})

	result, ok := searcher.BestMove(board, player)
	if !ok {
		return c.Status(fiber.StatusOK).JSON(models.BestMoveResponse{
			Move:  nil,
			Score: board.Evaluation(player),
		})
	}

	repo := repository.NewStatsRepository(c)
	if err := repo.RecordSearch(c.Context(), result.Nodes); err != nil {
		// Statistics are best effort, the search result is still valid.
		slog.Warn("Failed to record search", "error", err)
	}

	move := models.NewMoveResponse(result.Move)

	return c.Status(fiber.StatusOK).JSON(models.BestMoveResponse{
		Move:      &move,
		Score:     result.Score,
		Nodes:     result.Nodes,
		ElapsedMs: float64(result.Elapsed) / float64(time.Millisecond),
	})
}
