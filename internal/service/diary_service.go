package service

import (
	"context"
	"time"

	apperrors "moviebuzz/internal/errors"
	"moviebuzz/internal/models"
	"moviebuzz/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const watchedDateLayout = "2006-01-02"

// DiaryService handles the append-only viewing diary.
type DiaryService struct {
	repo repository.DiaryRepository
}

// NewDiaryService creates a new DiaryService.
func NewDiaryService(repo repository.DiaryRepository) *DiaryService {
	return &DiaryService{repo: repo}
}

// ListDiary returns a user's diary entries, most recently watched first.
func (s *DiaryService) ListDiary(ctx context.Context, userID string) ([]models.DiaryEntry, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	return s.repo.FindByUserID(ctx, objectID)
}

// AddDiaryEntry appends an entry to a user's diary. Repeated entries
// for the same movie and date are allowed.
func (s *DiaryService) AddDiaryEntry(ctx context.Context, userID string, req *models.AddDiaryEntryRequest) (*models.DiaryEntry, error) {
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	movieObjectID, err := primitive.ObjectIDFromHex(req.MovieID)
	if err != nil {
		return nil, apperrors.ErrMovieNotFound
	}

	watchedDate, err := time.Parse(watchedDateLayout, req.WatchedDate)
	if err != nil {
		return nil, err
	}

	entry := &models.DiaryEntry{
		UserID:      userObjectID,
		MovieID:     movieObjectID,
		WatchedDate: watchedDate,
		Rating:      req.Rating,
		ReviewText:  req.ReviewText,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}
