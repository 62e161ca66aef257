package internal

import (
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy/minimax/internal/config"
	"github.com/lk16/flippy/minimax/internal/middleware"
	"github.com/lk16/flippy/minimax/internal/routes"
	"github.com/lk16/flippy/minimax/internal/services"
)

const (
	defaultConcurrency  = 256 * 1024 // Maximum number of concurrent connections per worker
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 30 * time.Second // Deep searches take a while
	defaultIdleTimeout  = 5 * time.Second
	defaultBodyLimit    = 64 * 1024
)

// SetupApp loads the configuration, connects to external services and builds the app.
func SetupApp() (*fiber.App, *config.ServerConfig, *services.Services) {
	// Load configuration
	cfg := config.LoadServerConfig()

	// Initialize services
	services, err := services.InitServices(cfg)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	return BuildApp(cfg, services), cfg, services
}

// BuildApp creates the Fiber app with all middleware and routes.
func BuildApp(cfg *config.ServerConfig, services *services.Services) *fiber.App {
	app := fiber.New(fiber.Config{
		Prefork:      cfg.Prefork,
		Concurrency:  defaultConcurrency,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
		BodyLimit:    defaultBodyLimit,
	})

	// Setup connections to external services and config in Fiber app
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("services", services)
		c.Locals("config", cfg)
		return c.Next()
	})

	// Add request ID and logging middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logging())

	// Setup all routes
	routes.SetupRoutes(app)

	return app
}
