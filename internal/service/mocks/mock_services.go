// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"moviebuzz/internal/models"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	LoginFunc    func(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	GetUserFunc             func(ctx context.Context, id string) (*models.User, error)
	UpdateUserFunc          func(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error)
	RequestAvatarUploadFunc func(ctx context.Context, id string, req *models.AvatarUploadRequest) (*models.AvatarUploadResponse, error)
}

func (m *MockUserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockUserService) RequestAvatarUpload(ctx context.Context, id string, req *models.AvatarUploadRequest) (*models.AvatarUploadResponse, error) {
	if m.RequestAvatarUploadFunc != nil {
		return m.RequestAvatarUploadFunc(ctx, id, req)
	}
	return nil, nil
}

// MockMovieService is a mock implementation of MovieServicer.
type MockMovieService struct {
	ListMoviesFunc  func(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error)
	GetMovieFunc    func(ctx context.Context, id string) (*models.MovieDetailResponse, error)
	CreateMovieFunc func(ctx context.Context, req *models.CreateMovieRequest) (*models.Movie, error)
}

func (m *MockMovieService) ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error) {
	if m.ListMoviesFunc != nil {
		return m.ListMoviesFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockMovieService) GetMovie(ctx context.Context, id string) (*models.MovieDetailResponse, error) {
	if m.GetMovieFunc != nil {
		return m.GetMovieFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMovieService) CreateMovie(ctx context.Context, req *models.CreateMovieRequest) (*models.Movie, error) {
	if m.CreateMovieFunc != nil {
		return m.CreateMovieFunc(ctx, req)
	}
	return nil, nil
}

// MockReviewService is a mock implementation of ReviewServicer.
type MockReviewService struct {
	CreateReviewFunc        func(ctx context.Context, movieID string, req *models.CreateReviewRequest) (*models.Review, error)
	ListReviewsForMovieFunc func(ctx context.Context, movieID string) ([]models.Review, error)
	ListReviewsForUserFunc  func(ctx context.Context, userID string) ([]models.UserReview, error)
}

func (m *MockReviewService) CreateReview(ctx context.Context, movieID string, req *models.CreateReviewRequest) (*models.Review, error) {
	if m.CreateReviewFunc != nil {
		return m.CreateReviewFunc(ctx, movieID, req)
	}
	return nil, nil
}

func (m *MockReviewService) ListReviewsForMovie(ctx context.Context, movieID string) ([]models.Review, error) {
	if m.ListReviewsForMovieFunc != nil {
		return m.ListReviewsForMovieFunc(ctx, movieID)
	}
	return nil, nil
}

func (m *MockReviewService) ListReviewsForUser(ctx context.Context, userID string) ([]models.UserReview, error) {
	if m.ListReviewsForUserFunc != nil {
		return m.ListReviewsForUserFunc(ctx, userID)
	}
	return nil, nil
}

// MockInteractionService is a mock implementation of InteractionServicer.
type MockInteractionService struct {
	GetInteractionsFunc     func(ctx context.Context, userID string) (*models.Interaction, error)
	ToggleLikeFunc          func(ctx context.Context, userID, movieID string) (*models.Interaction, error)
	ToggleWatchlistFunc     func(ctx context.Context, userID, movieID string) (*models.Interaction, error)
	RemoveFromWatchlistFunc func(ctx context.Context, userID, movieID string) (*models.Interaction, error)
}

func (m *MockInteractionService) GetInteractions(ctx context.Context, userID string) (*models.Interaction, error) {
	if m.GetInteractionsFunc != nil {
		return m.GetInteractionsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockInteractionService) ToggleLike(ctx context.Context, userID, movieID string) (*models.Interaction, error) {
	if m.ToggleLikeFunc != nil {
		return m.ToggleLikeFunc(ctx, userID, movieID)
	}
	return nil, nil
}

func (m *MockInteractionService) ToggleWatchlist(ctx context.Context, userID, movieID string) (*models.Interaction, error) {
	if m.ToggleWatchlistFunc != nil {
		return m.ToggleWatchlistFunc(ctx, userID, movieID)
	}
	return nil, nil
}

func (m *MockInteractionService) RemoveFromWatchlist(ctx context.Context, userID, movieID string) (*models.Interaction, error) {
	if m.RemoveFromWatchlistFunc != nil {
		return m.RemoveFromWatchlistFunc(ctx, userID, movieID)
	}
	return nil, nil
}

// MockDiaryService is a mock implementation of DiaryServicer.
type MockDiaryService struct {
	ListDiaryFunc     func(ctx context.Context, userID string) ([]models.DiaryEntry, error)
	AddDiaryEntryFunc func(ctx context.Context, userID string, req *models.AddDiaryEntryRequest) (*models.DiaryEntry, error)
}

func (m *MockDiaryService) ListDiary(ctx context.Context, userID string) ([]models.DiaryEntry, error) {
	if m.ListDiaryFunc != nil {
		return m.ListDiaryFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockDiaryService) AddDiaryEntry(ctx context.Context, userID string, req *models.AddDiaryEntryRequest) (*models.DiaryEntry, error) {
	if m.AddDiaryEntryFunc != nil {
		return m.AddDiaryEntryFunc(ctx, userID, req)
	}
	return nil, nil
}
