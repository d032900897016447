package handlers

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/amigotrunfo/trunfo/backend/middleware"
	"github.com/amigotrunfo/trunfo/backend/utils"
	"github.com/amigotrunfo/trunfo/trunfo/config"
)

type AppConfig struct {
	CORSOrigins  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewApp builds the Fiber app with global middleware and all routes.
// Rate limiter cleanup stops when ctx is done.
func NewApp(ctx context.Context, webApp *WebApp, cfg AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Trunfo API",
		ServerHeader: "Trunfo",
		ErrorHandler: middleware.CustomErrorHandler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	app.Use(recover.New())
	app.Use(middleware.SecurityHeaders())
	if origins := strings.TrimSpace(cfg.CORSOrigins); origins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: origins,
			AllowMethods: "GET,POST,OPTIONS",
			AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		}))
	}
	app.Use(middleware.LoggingMiddleware())

	generation := middleware.NewRateLimiter(config.GenerationRateLimit, config.RateLimitWindow)
	game := middleware.NewRateLimiter(config.GameRateLimit, config.RateLimitWindow)
	generation.StartCleanupRoutine(ctx, config.RateLimitWindow)
	game.StartCleanupRoutine(ctx, config.RateLimitWindow)

	SetupRoutes(app, webApp, generation, game)
	return app
}

// SetupRoutes registers the API. Card generation calls an external model
// so it gets a tighter budget than the rest of the game routes.
func SetupRoutes(app *fiber.App, webApp *WebApp, generation, game *middleware.RateLimiter) {
	app.Get("/healthz", HealthCheck(webApp))

	genLimit := middleware.RateLimit(generation, middleware.KeyByIP)
	gameLimit := middleware.RateLimit(game, middleware.KeyByIP)

	api := app.Group("/api")
	api.Post("/cards/preview", genLimit, PreviewCard(webApp))

	profiles := api.Group("/profiles")
	profiles.Get("/:id", GetProfile(webApp))
	profiles.Post("/:id/onboarding", genLimit, Onboard(webApp))
	profiles.Post("/:id/packs/open", gameLimit, OpenPack(webApp))
	profiles.Post("/:id/battles", gameLimit, StartBattle(webApp))

	battles := api.Group("/battles")
	battles.Get("/:id", GetBattle(webApp))
	battles.Post("/:id/attribute", gameLimit, ChooseAttribute(webApp))

	app.Use(func(c *fiber.Ctx) error {
		slog.Warn("No route matched for request",
			slog.String("type", "http"),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("ip", c.IP()))
		return utils.SendNotFound(c, "The requested endpoint does not exist")
	})
}
