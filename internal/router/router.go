package router

import (
	"log"

	"github.com/bondbuddies/backend/internal/handlers"
	"github.com/bondbuddies/backend/internal/middleware"
	"github.com/bondbuddies/backend/internal/models"
	"github.com/bondbuddies/backend/internal/repositories"
	"github.com/bondbuddies/backend/internal/services"
	"github.com/bondbuddies/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, cfg *config.Config, pgdb *gorm.DB, mgClient *mongo.Client) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.UserAction{},
		&models.Badge{},
		&models.UserBadge{},
		&models.FollowRequest{},
		&models.Following{},
		&models.Notification{},
		&models.Event{},
		&models.EventParticipant{},
		&models.Comment{},
		&models.Like{},
		&models.PostPrompt{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Seed default badges and prompts
	if err := repositories.SeedDefaultBadges(pgdb); err != nil {
		log.Fatalf("Failed to seed default badges: %v", err)
	}
	if err := repositories.SeedDefaultPrompts(pgdb); err != nil {
		log.Fatalf("Failed to seed default prompts: %v", err)
	}
	log.Println("Default badges and prompts seeded.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	postRepo := repositories.NewMongoPostRepository(mgClient.Database(cfg.MongoDBName))
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	eventRepo := repositories.NewPostgresEventRepository(pgdb)
	promptRepo := repositories.NewPostgresPromptRepository(pgdb)

	// --- Initialize Services ---
	recorder := services.NewActionRecorder(pgdb)
	badgeService := services.NewBadgeService(pgdb)
	followService := services.NewFollowService(pgdb, badgeService)
	notificationService := services.NewNotificationService(pgdb)
	engagementService := services.NewEngagementService(pgdb, postRepo, badgeService)
	statsService := services.NewStatsService(pgdb, postRepo)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	// User profile, stats and prompt routes
	userHandler := handlers.NewUserHandler(userRepo, promptRepo, statsService, recorder)
	userHandler.RegisterUserRoutes(api)
	log.Println("User routes configured.")

	// Post, like, share and comment routes
	postHandler := handlers.NewPostHandler(postRepo, commentRepo, likeRepo, engagementService)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	// Follow workflow routes
	followHandler := handlers.NewFollowHandler(followService)
	followHandler.RegisterFollowRoutes(api)
	log.Println("Follow routes configured.")

	// Event routes
	eventHandler := handlers.NewEventHandler(eventRepo, engagementService)
	eventHandler.RegisterEventRoutes(api)
	log.Println("Event routes configured.")

	// Badge routes
	badgeHandler := handlers.NewBadgeHandler(badgeService)
	badgeHandler.RegisterBadgeRoutes(api)
	log.Println("Badge routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	log.Println("All routes configured.")
}
