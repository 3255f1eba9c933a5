// Package service contains business logic for the application.
package service

import (
	"context"

	"moviebuzz/internal/models"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

// UserServicer defines the interface for user profile operations.
type UserServicer interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error)
	RequestAvatarUpload(ctx context.Context, id string, req *models.AvatarUploadRequest) (*models.AvatarUploadResponse, error)
}

// MovieServicer defines the interface for catalog operations.
type MovieServicer interface {
	ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error)
	GetMovie(ctx context.Context, id string) (*models.MovieDetailResponse, error)
	CreateMovie(ctx context.Context, req *models.CreateMovieRequest) (*models.Movie, error)
}

// ReviewServicer defines the interface for review operations.
type ReviewServicer interface {
	CreateReview(ctx context.Context, movieID string, req *models.CreateReviewRequest) (*models.Review, error)
	ListReviewsForMovie(ctx context.Context, movieID string) ([]models.Review, error)
	ListReviewsForUser(ctx context.Context, userID string) ([]models.UserReview, error)
}

// InteractionServicer defines the interface for like/watchlist operations.
type InteractionServicer interface {
	GetInteractions(ctx context.Context, userID string) (*models.Interaction, error)
	ToggleLike(ctx context.Context, userID, movieID string) (*models.Interaction, error)
	ToggleWatchlist(ctx context.Context, userID, movieID string) (*models.Interaction, error)
	RemoveFromWatchlist(ctx context.Context, userID, movieID string) (*models.Interaction, error)
}

// DiaryServicer defines the interface for viewing-diary operations.
type DiaryServicer interface {
	ListDiary(ctx context.Context, userID string) ([]models.DiaryEntry, error)
	AddDiaryEntry(ctx context.Context, userID string, req *models.AddDiaryEntryRequest) (*models.DiaryEntry, error)
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer        = (*AuthService)(nil)
	_ UserServicer        = (*UserService)(nil)
	_ MovieServicer       = (*MovieService)(nil)
	_ ReviewServicer      = (*ReviewService)(nil)
	_ InteractionServicer = (*InteractionService)(nil)
	_ DiaryServicer       = (*DiaryService)(nil)
)
