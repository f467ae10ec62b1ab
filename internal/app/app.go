package app

import (
	"context"

	"github.com/FurowKick/phone-directory/internal/auth"
	"github.com/FurowKick/phone-directory/internal/config"
	"github.com/FurowKick/phone-directory/internal/employee"
	"github.com/FurowKick/phone-directory/internal/middleware"
	"github.com/FurowKick/phone-directory/internal/shared/audit"
	"github.com/FurowKick/phone-directory/internal/shared/connection"
	"github.com/FurowKick/phone-directory/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp wires infrastructure, runs migrations and seeding, and
// registers every route on the router.
func BuildApp(router *gin.Engine, cfg config.Config, auditLogger audit.Logger) error {
	db, err := connection.ConnectGORM(cfg.DB, 5)
	if err != nil {
		return err
	}

	if err := Migrate(db); err != nil {
		return err
	}

	userRepo := auth.NewRepository(db)
	if err := auth.EnsureAdmin(context.Background(), userRepo, cfg.Admin, auditLogger); err != nil {
		return err
	}

	registerModules(router, db, userRepo, cfg, auditLogger)
	return nil
}

// Migrate creates or updates the users and employees tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&auth.User{}, &employee.Employee{})
}

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	userRepo auth.Repository,
	cfg config.Config,
	auditLogger audit.Logger,
) {
	logger := zap.L()

	// --- Repositories ---
	employeeRepo := employee.NewRepository(db)

	// --- Services ---
	authService := auth.NewService(
		db,
		userRepo,
		employee.NewRegistrationProfiles(employeeRepo),
		cfg.JWT,
		auditLogger,
	)
	employeeService := employee.NewService(db, employeeRepo, userRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)

	// --- Routes ---
	router.Use(middleware.RequestID())

	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, cfg.JWT, logger)
	}

	web.RegisterRoutes(router)
}
