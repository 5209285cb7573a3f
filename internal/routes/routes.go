package routes

import (
	"time"

	"github.com/bemnascer/bemnascer-backend/internal/apps"
	"github.com/bemnascer/bemnascer-backend/internal/config"
	"github.com/bemnascer/bemnascer-backend/internal/handlers"
	"github.com/bemnascer/bemnascer-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	accountHandler *handlers.AccountHandler,
	healthHandler *handlers.HealthHandler,
	plugins []apps.Plugin,
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

	// Public auth routes, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", accountHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/forgot-password", authHandler.ForgotPassword)
	auth.Post("/reset-password", authHandler.ResetPassword)

	// Protected routes (JWT required) - apply middleware to individual routes
	// so the public routes above stay public
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), accountHandler.DeleteMe)

	// Client profile
	api.Get("/me", middleware.JWTProtected(cfg), accountHandler.GetMe)
	api.Put("/me", middleware.JWTProtected(cfg), accountHandler.UpdateMe)
	api.Get("/home", middleware.JWTProtected(cfg), accountHandler.GetHome)

	// Admin panel (protected + master required)
	master := api.Group("/master", middleware.JWTProtected(cfg), middleware.MasterRequired(db, cfg))
	master.Get("/clients", accountHandler.ListClients)
	master.Delete("/clients/:id", accountHandler.DeleteClient)
	master.Put("/users/:id/blocked", accountHandler.SetBlocked)
	master.Post("/masters", accountHandler.CreateMaster)
	master.Get("/masters", accountHandler.ListMasters)
	master.Delete("/masters/:id", accountHandler.DeleteMaster)

	// Plugin routes - a protected group for plugins only
	protected := api.Group("/p", middleware.JWTProtected(cfg))
	for _, p := range plugins {
		p.RegisterRoutes(protected, db, cfg)
		if mp, ok := p.(apps.MasterPlugin); ok {
			mp.RegisterMasterRoutes(master, db, cfg)
		}
	}
}
