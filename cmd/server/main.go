package main

import (
	"log"
	"net/http"

	"github.com/HenokhIS/You-Do/internal/config"
	"github.com/HenokhIS/You-Do/internal/database"
	"github.com/HenokhIS/You-Do/internal/handlers"
	"github.com/HenokhIS/You-Do/internal/middleware"
	"github.com/HenokhIS/You-Do/internal/repository"
	"github.com/HenokhIS/You-Do/internal/services"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	// Services
	authService := services.NewAuthService(userRepo)
	tokenService := services.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, tokenService)
	userHandler := handlers.NewUserHandler(userRepo, authService)
	eventHandler := handlers.NewEventHandler(eventRepo)
	taskHandler := handlers.NewTaskHandler(taskRepo)
	reviewHandler := handlers.NewReviewHandler(reviewRepo)
	noteHandler := handlers.NewNoteHandler(noteRepo)

	// Initialize Gin router
	r := gin.Default()

	// Public routes
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "hello")
	})
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// Everything else requires a valid bearer token
	authorized := r.Group("/")
	authorized.Use(middleware.RequireAuth(tokenService))
	{
		authorized.GET("/protected", authHandler.Protected)

		users := authorized.Group("/users")
		{
			users.POST("", userHandler.Create)
			users.GET("", userHandler.List)
			users.GET("/:id", userHandler.Get)
			users.PUT("/:id", userHandler.Update)
			users.DELETE("/:id", userHandler.Delete)
		}

		events := authorized.Group("/events")
		{
			events.POST("", eventHandler.Create)
			events.GET("", eventHandler.List)
			events.GET("/:id", eventHandler.Get)
			events.PUT("/:id", eventHandler.Update)
			events.DELETE("/:id", eventHandler.Delete)
		}

		tasks := authorized.Group("/tasks")
		{
			tasks.POST("", taskHandler.Create)
			tasks.GET("", taskHandler.List)
			tasks.GET("/:id", taskHandler.Get)
			tasks.PUT("/:id", taskHandler.Update)
			tasks.DELETE("/:id", taskHandler.Delete)
		}

		reviews := authorized.Group("/reviews")
		{
			reviews.POST("", reviewHandler.Create)
			reviews.GET("", reviewHandler.List)
			reviews.GET("/:id", reviewHandler.Get)
			reviews.PUT("/:id", reviewHandler.Update)
			reviews.DELETE("/:id", reviewHandler.Delete)
		}

		notes := authorized.Group("/notes")
		{
			notes.POST("", noteHandler.Create)
			notes.GET("", noteHandler.List)
			notes.GET("/:id", noteHandler.Get)
			notes.PUT("/:id", noteHandler.Update)
			notes.DELETE("/:id", noteHandler.Delete)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
