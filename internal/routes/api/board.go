package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy/minimax/internal/models"
)

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}

// GetMoves lists the valid moves of a player on a board.
func GetMoves(c *fiber.Ctx) error {
	var payload models.BoardRequest
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := models.Validate(&payload); err != nil {
		return badRequest(c, err.Error())
	}

	board, player, err := payload.ParseBoard()
	if err != nil {
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(models.MovesResponse{
		Moves:      models.NewMoveResponses(board.Moves(player)),
		IsTerminal: board.IsTerminal(),
	})
}

// ApplyMove plays a move and returns the resulting board.
func ApplyMove(c *fiber.Ctx) error {
	var payload models.ApplyMoveRequest
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := models.Validate(&payload); err != nil {
		return badRequest(c, err.Error())
	}

	board, player, err := payload.ParseBoard()
	if err != nil {
		return badRequest(c, err.Error())
	}

	flipped := board.Flipped(player, payload.Move)

	child, err := board.DoMove(player, payload.Move)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(models.ApplyMoveResponse{
		Board:   child.String(),
		Flipped: models.NewMoveResponses(flipped),
		Scores:  models.NewScores(child),
	})
}
