// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	"moviebuzz/internal/handler"
	"moviebuzz/internal/middleware"
	"moviebuzz/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	MovieHandler       *handler.MovieHandler
	ReviewHandler      *handler.ReviewHandler
	InteractionHandler *handler.InteractionHandler
	DiaryHandler       *handler.DiaryHandler
	JWTManager         *auth.JWTManager
	// Prefix is the API route prefix, "/api" by default. The upstream
	// service shipped with divergent prefixes, so it stays configurable.
	Prefix string
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "/api"
	}

	api := r.Group(prefix)
	{
		// Auth routes (public)
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", cfg.AuthHandler.Register)
			authRoutes.POST("/login", cfg.AuthHandler.Login)
		}

		// Catalog routes
		movies := api.Group("/movies")
		{
			movies.GET("", cfg.MovieHandler.ListMovies)
			movies.POST("", cfg.MovieHandler.CreateMovie)
			movies.GET("/:id", cfg.MovieHandler.GetMovie)
			movies.GET("/:id/reviews", cfg.ReviewHandler.ListMovieReviews)
			movies.POST("/:id/reviews", cfg.ReviewHandler.CreateReview)
		}

		// Legacy review routes kept as aliases of the movie-scoped ones
		reviews := api.Group("/reviews")
		{
			reviews.POST("", cfg.ReviewHandler.CreateReview)
			reviews.GET("/movie/:id", cfg.ReviewHandler.ListMovieReviews)
		}

		// User routes
		users := api.Group("/users")
		{
			users.GET("/:id", cfg.UserHandler.GetUser)
			users.GET("/:id/reviews", cfg.ReviewHandler.ListUserReviews)

			// Interactions & diary
			users.GET("/:id/interactions", cfg.InteractionHandler.GetInteractions)
			users.POST("/:id/likes/toggle", cfg.InteractionHandler.ToggleLike)
			users.GET("/:id/watchlist", cfg.InteractionHandler.GetWatchlist)
			users.POST("/:id/watchlist/toggle", cfg.InteractionHandler.ToggleWatchlist)
			users.DELETE("/:id/watchlist/:movieId", cfg.InteractionHandler.RemoveFromWatchlist)
			users.GET("/:id/diary", cfg.DiaryHandler.ListDiary)
			users.POST("/:id/diary", cfg.DiaryHandler.AddDiaryEntry)
		}

		// Account routes (protected)
		account := api.Group("/users")
		account.Use(middleware.Auth(cfg.JWTManager))
		{
			account.PUT("/:id", cfg.UserHandler.UpdateUser)
			account.POST("/:id/avatar", cfg.UserHandler.RequestAvatarUpload)
		}
	}

	return r
}
