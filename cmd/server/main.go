// Package main is the entry point for the admin wallet service.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"context"
	"time"

	"github.com/Jajanan-pasar/web/internal/config"
	"github.com/Jajanan-pasar/web/internal/repositories"
	"github.com/Jajanan-pasar/web/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	config.LoadEnv()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if config.IsProduction() {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(logrus.DebugLevel)
	}

	if err := repositories.InitDB(); err != nil {
		logger.WithError(err).Fatal("failed to initialize database")
	}

	sqlDB, err := repositories.DB.DB()
	if err != nil {
		logger.WithError(err).Fatal("failed to get database instance")
	}
	if err := sqlDB.Ping(); err != nil {
		logger.WithError(err).Fatal("failed to ping database")
	}
	logger.Info("connected to database")

	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.WithError(err).Warn("failed to close database connection")
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				logger.WithError(err).Warn("failed to close redis connection")
			}
		}
	}()

	if repositories.CacheService != nil {
		if err := repositories.CacheService.FlushAll(context.Background()); err != nil {
			logger.WithError(err).Warn("failed to flush redis cache")
		}
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetEnv("ADMIN_ORIGIN", "http://localhost:5173"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))

	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Manual wallet credits are rare; a burst of them is a mistake or abuse.
	app.Use("/api/admin/customers/wallet/add-fund", limiter.New(limiter.Config{
		Max:        30,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	routes.SetupRoutes(app, repositories.DB, logger)

	logger.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
