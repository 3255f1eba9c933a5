package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moviebuzz/internal/cache"
	"moviebuzz/internal/config"
	"moviebuzz/internal/database"
	"moviebuzz/internal/handler"
	"moviebuzz/internal/metadata"
	"moviebuzz/internal/repository"
	"moviebuzz/internal/router"
	"moviebuzz/internal/service"
	"moviebuzz/internal/storage"
	"moviebuzz/internal/validator"
	"moviebuzz/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           MovieBuzz API
// @version         1.0
// @description     A REST API for tracking movies, reviews, likes, and a viewing diary.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	// External metadata API
	metadataClient := metadata.NewHTTPClient(cfg.MetadataBaseURL, cfg.MetadataAPIKey)

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	movieRepo := repository.NewMovieRepository(mongoDB.Database)
	reviewRepo := repository.NewReviewRepository(mongoDB.Database)
	diaryRepo := repository.NewDiaryRepository(mongoDB.Database)
	interactionRepo := repository.NewInteractionRepository(mongoDB.Database)

	// Service layer
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo, redisCache, s3Client)
	movieService := service.NewMovieService(movieRepo, reviewRepo, redisCache)
	reviewService := service.NewReviewService(reviewRepo, movieRepo, metadataClient, redisCache)
	interactionService := service.NewInteractionService(interactionRepo)
	diaryService := service.NewDiaryService(diaryRepo)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	movieHandler := handler.NewMovieHandler(movieService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	interactionHandler := handler.NewInteractionHandler(interactionService)
	diaryHandler := handler.NewDiaryHandler(diaryService)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:        authHandler,
		UserHandler:        userHandler,
		MovieHandler:       movieHandler,
		ReviewHandler:      reviewHandler,
		InteractionHandler: interactionHandler,
		DiaryHandler:       diaryHandler,
		JWTManager:         jwtManager,
		Prefix:             cfg.APIPrefix,
	})

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
