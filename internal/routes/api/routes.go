package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy/minimax/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api", middleware.AuthOrToken())

	// Board routes
	apiGroup.Post("/moves", GetMoves)
	apiGroup.Post("/apply", ApplyMove)

	// Search routes
	apiGroup.Post("/best-move", GetBestMove)
	apiGroup.Get("/stats", GetSearchStats)
}
