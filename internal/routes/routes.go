// Package routes defines the API routing configuration.
// It wires repositories, services and handlers, and groups the admin
// endpoints behind the auth middleware.
package routes

import (
	"github.com/Jajanan-pasar/web/internal/config"
	"github.com/Jajanan-pasar/web/internal/handlers"
	"github.com/Jajanan-pasar/web/internal/mailer"
	"github.com/Jajanan-pasar/web/internal/middleware"
	"github.com/Jajanan-pasar/web/internal/models"
	"github.com/Jajanan-pasar/web/internal/repositories"
	"github.com/Jajanan-pasar/web/internal/services/bonus"
	"github.com/Jajanan-pasar/web/internal/services/notification"
	"github.com/Jajanan-pasar/web/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB, logger *logrus.Logger) {
	// Repositories
	ledgerRepo := repositories.NewWalletTransactionRepository(db)
	userRepo := repositories.NewUserRepository(db)
	bonusRepo := repositories.NewBonusCategoryRepository(db)
	settingRepo := repositories.NewBusinessSettingRepository(db, repositories.CacheService)

	// Outbound email
	sender := mailer.NewSender(mailer.Config{
		Host:     config.GetEnv("SMTP_HOST", ""),
		Port:     config.GetEnv("SMTP_PORT", "587"),
		User:     config.GetEnv("SMTP_USER", ""),
		Password: config.GetEnv("SMTP_PASSWORD", ""),
		From:     config.GetEnv("MAIL_FROM", ""),
		FromName: config.GetEnv("MAIL_FROM_NAME", "Jajanan Pasar"),
	})
	notifier := notification.NewService(sender, logger)

	// Services
	walletService := wallet.NewService(
		ledgerRepo,
		userRepo,
		bonusRepo,
		settingRepo,
		notifier,
		&wallet.NoopMetricsCollector{},
		logger,
	)
	bonusService := bonus.NewService(bonusRepo, logger)

	// Handlers
	pages := config.EnvPagination{}
	walletHandler := handlers.NewWalletHandler(walletService, pages)
	bonusHandler := handlers.NewBonusHandler(bonusService, pages)

	auth := middleware.NewAuthMiddleware(config.GetEnv("JWT_SECRET", "jajanan-admin"))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Jajanan Pasar Admin API",
			"version": "1.0.0",
		})
	})

	admin := app.Group("/api/admin", auth.Handler)

	customerWallet := admin.Group("/customers/wallet")
	customerWallet.Post("/add-fund", auth.RequirePermission(models.PermissionWalletWrite), walletHandler.AddFund)
	customerWallet.Get("/report", auth.RequirePermission(models.PermissionWalletRead), walletHandler.Report)

	bonusGroup := customerWallet.Group("/bonus")
	bonusGroup.Get("/", auth.RequirePermission(models.PermissionBonusRead), bonusHandler.List)
	bonusGroup.Post("/", auth.RequirePermission(models.PermissionBonusWrite), bonusHandler.Store)
	bonusGroup.Get("/:id/edit", auth.RequirePermission(models.PermissionBonusRead), bonusHandler.Edit)
	// Literal segments before the :id route so they are not swallowed by it.
	bonusGroup.Post("/status", auth.RequirePermission(models.PermissionBonusWrite), bonusHandler.UpdateStatus)
	bonusGroup.Post("/delete", auth.RequirePermission(models.PermissionBonusWrite), bonusHandler.Delete)
	bonusGroup.Post("/:id", auth.RequirePermission(models.PermissionBonusWrite), bonusHandler.Update)
}
