package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/renoverde/recolhe-plus/internal/config"
	"github.com/renoverde/recolhe-plus/internal/handlers"
	"github.com/renoverde/recolhe-plus/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	pickupHandler *handlers.PickupHandler,
	rewardHandler *handlers.RewardHandler,
	chatHandler *handlers.ChatHandler,
	healthHandler *handlers.HealthHandler,
	adminHandler *handlers.AdminHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth is public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Chat proxy is public so the assistant stays usable on the login
	// screens.
	api.Post("/chat", chatHandler.Chat)

	// Protected routes (JWT required)
	api.Post("/pickups", middleware.JWTProtected(cfg), pickupHandler.Create)
	api.Get("/pickups", middleware.JWTProtected(cfg), pickupHandler.List)
	api.Post("/rewards/redeem", middleware.JWTProtected(cfg), rewardHandler.Redeem)
	api.Get("/transactions", middleware.JWTProtected(cfg), rewardHandler.Transactions)

	// Admin panel
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/stats", adminHandler.Stats)
}
