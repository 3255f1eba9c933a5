//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"moviebuzz/internal/cache"
	"moviebuzz/internal/handler"
	"moviebuzz/internal/metadata"
	"moviebuzz/internal/repository"
	"moviebuzz/internal/router"
	"moviebuzz/internal/service"
	"moviebuzz/internal/storage"
	"moviebuzz/pkg/auth"
	"moviebuzz/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestJWTSecret is the JWT secret used in tests.
	TestJWTSecret = "test-secret-key-for-api-tests"
	// TestJWTExpiry is the token expiry used in tests.
	TestJWTExpiry = time.Hour
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	UserRepo        repository.UserRepository
	MovieRepo       repository.MovieRepository
	ReviewRepo      repository.ReviewRepository
	DiaryRepo       repository.DiaryRepository
	InteractionRepo repository.InteractionRepository

	// Services (for direct service access in tests)
	AuthService        *service.AuthService
	UserService        *service.UserService
	MovieService       *service.MovieService
	ReviewService      *service.ReviewService
	InteractionService *service.InteractionService
	DiaryService       *service.DiaryService

	// Auth
	JWTManager *auth.JWTManager

	// Metadata is the stubbed metadata client. Tests mutate Info and Err
	// to exercise enrichment and its fallback path.
	Metadata *metadata.StaticClient
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	// Cache (real Redis)
	redisCache := cache.NewRedis(redisContainer.URI)

	// Storage (real MinIO)
	s3Client := storage.NewS3Client(
		minioContainer.Endpoint,
		minioContainer.AccessKey,
		minioContainer.SecretKey,
		minioContainer.Bucket,
		false, // useSSL
	)

	// Metadata lookups default to a miss so enrichment falls back to
	// placeholders unless a test configures a result.
	metadataClient := &metadata.StaticClient{Err: context.DeadlineExceeded}

	// JWT Manager
	jwtManager := auth.NewJWTManager(TestJWTSecret, TestJWTExpiry)

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
	})

	return &TestServer{
		Router:             r,
		MongoDB:            mongoDB,
		Redis:              redisContainer,
		MinIO:              minioContainer,
		UserRepo:           userRepo,
		MovieRepo:          movieRepo,
		ReviewRepo:         reviewRepo,
		DiaryRepo:          diaryRepo,
		InteractionRepo:    interactionRepo,
		AuthService:        authService,
		UserService:        userService,
		MovieService:       movieService,
		ReviewService:      reviewService,
		InteractionService: interactionService,
		DiaryService:       diaryService,
		JWTManager:         jwtManager,
		Metadata:           metadataClient,
	}, nil
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}
