package service

import (
	"context"

	"moviebuzz/internal/cache"
	apperrors "moviebuzz/internal/errors"
	"moviebuzz/internal/metadata"
	"moviebuzz/internal/models"
	"moviebuzz/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// placeholderMovie is substituted when metadata enrichment fails.
// Enrichment is the one best-effort call in the system: its failure
// never fails the listing that triggered it.
var placeholderMovie = models.ReviewedMovie{Title: "Unknown"}

// ReviewService handles business logic for review operations.
type ReviewService struct {
	reviewRepo repository.ReviewRepository
	movieRepo  repository.MovieRepository
	metadata   metadata.Client
	cache      cache.Cache
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repository.ReviewRepository, movieRepo repository.MovieRepository, metadataClient metadata.Client, cache cache.Cache) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		movieRepo:  movieRepo,
		metadata:   metadataClient,
		cache:      cache,
	}
}

// CreateReview stores a review and folds its rating into the movie's
// averageRating. The recompute happens in a single document update, so
// concurrent submissions for the same movie both count.
func (s *ReviewService) CreateReview(ctx context.Context, movieID string, req *models.CreateReviewRequest) (*models.Review, error) {
	if movieID == "" {
		movieID = req.MovieID
	}
	if movieID == "" {
		return nil, apperrors.ErrMissingMovieID
	}

	movieObjectID, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, apperrors.ErrMovieNotFound
	}

	userObjectID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.ErrInvalidRating
	}

	// Reject reviews for movies that don't exist
	if _, err := s.movieRepo.FindByID(ctx, movieObjectID); err != nil {
		return nil, err
	}

	review := &models.Review{
		MovieID:  movieObjectID,
		UserID:   userObjectID,
		Username: req.Username,
		Rating:   req.Rating,
		Text:     req.Text,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	if _, err := s.movieRepo.ApplyRating(ctx, movieObjectID, req.Rating); err != nil {
		return nil, err
	}

	// Movie document changed, drop the cached copy
	_ = s.cache.Delete(ctx, cache.MovieCacheKey(movieID))

	return review, nil
}

// ListReviewsForMovie returns all reviews for a movie, newest first.
func (s *ReviewService) ListReviewsForMovie(ctx context.Context, movieID string) ([]models.Review, error) {
	objectID, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, apperrors.ErrMovieNotFound
	}

	return s.reviewRepo.FindByMovieID(ctx, objectID)
}

// ListReviewsForUser returns all reviews by a user newest first, each
// enriched with movie metadata from the external API. Lookups that fail
// fall back to placeholder fields.
func (s *ReviewService) ListReviewsForUser(ctx context.Context, userID string) ([]models.UserReview, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	reviews, err := s.reviewRepo.FindByUserID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.UserReview, 0, len(reviews))
	for _, review := range reviews {
		enriched = append(enriched, models.UserReview{
			Review: review,
			Movie:  s.enrich(ctx, review.MovieID.Hex()),
		})
	}

	return enriched, nil
}

func (s *ReviewService) enrich(ctx context.Context, movieID string) models.ReviewedMovie {
	info, err := s.metadata.Lookup(ctx, movieID)
	if err != nil || info == nil {
		return placeholderMovie
	}

	return models.ReviewedMovie{
		Title:       info.Title,
		Poster:      info.Poster,
		ReleaseDate: info.ReleaseDate,
	}
}
