package router

import (
	"time"

	"github.com/glimpse-app/backend/internal/handlers"
	"github.com/glimpse-app/backend/internal/middleware"
	"github.com/glimpse-app/backend/internal/models"
	"github.com/glimpse-app/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo, logger *zap.Logger) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.RequestLoggerWithConfig(eMiddleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v eMiddleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			logger.Info("request", fields...)
			return nil
		},
	}))
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, sessionTTL time.Duration, logger *zap.Logger) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Friendship{},
		&models.Snap{},
		&models.Story{},
		&models.StoryView{},
		&models.Chat{},
		&models.Session{},
	)
	if err != nil {
		return err
	}
	logger.Info("auto-migrations completed for all models")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	friendshipRepo := repositories.NewPostgresFriendshipRepository(db)
	snapRepo := repositories.NewPostgresSnapRepository(db)
	storyRepo := repositories.NewPostgresStoryRepository(db)
	chatRepo := repositories.NewPostgresChatRepository(db)
	sessionRepo := repositories.NewPostgresSessionRepository(db)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, sessionRepo, sessionTTL)
	authHandler.RegisterAuthRoutes(authGroup)
	logger.Info("auth routes configured")

	// --- Protected routes (require a resolved session) ---
	api := e.Group("/api/v1")
	api.Use(middleware.SessionAuthMiddleware(sessionRepo, userRepo))
	authHandler.RegisterSessionRoutes(api)
	logger.Info("session middleware applied to /api/v1 group")

	// User routes
	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterUserRoutes(api)

	// Friendship routes
	friendshipHandler := handlers.NewFriendshipHandler(friendshipRepo, userRepo)
	friendshipHandler.RegisterFriendshipRoutes(api)

	// Snap routes
	snapHandler := handlers.NewSnapHandler(snapRepo, userRepo)
	snapHandler.RegisterSnapRoutes(api)

	// Story routes
	storyHandler := handlers.NewStoryHandler(storyRepo, friendshipRepo)
	storyHandler.RegisterStoryRoutes(api)

	// Chat routes
	chatHandler := handlers.NewChatHandler(chatRepo, userRepo)
	chatHandler.RegisterChatRoutes(api)

	// Combined inbox
	inboxHandler := handlers.NewInboxHandler(snapRepo, chatRepo, userRepo)
	inboxHandler.RegisterInboxRoutes(api)

	logger.Info("all routes configured")
	return nil
}
