package service

import (
	"context"
	"time"

	"moviebuzz/internal/cache"
	apperrors "moviebuzz/internal/errors"
	"moviebuzz/internal/models"
	"moviebuzz/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	movieCacheTTL = 10 * time.Minute

	defaultPage  = 1
	defaultLimit = 10
)

// MovieService handles business logic for catalog operations.
type MovieService struct {
	movieRepo  repository.MovieRepository
	reviewRepo repository.ReviewRepository
	cache      cache.Cache
}

// NewMovieService creates a new MovieService.
func NewMovieService(movieRepo repository.MovieRepository, reviewRepo repository.ReviewRepository, cache cache.Cache) *MovieService {
	return &MovieService{
		movieRepo:  movieRepo,
		reviewRepo: reviewRepo,
		cache:      cache,
	}
}

// ListMovies returns a page of the catalog matching the filter.
func (s *MovieService) ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error) {
	if filter.Page == 0 {
		filter.Page = defaultPage
	}
	if filter.Limit == 0 {
		filter.Limit = defaultLimit
	}

	return s.movieRepo.Find(ctx, filter)
}

// GetMovie returns a movie along with its reviews, newest first.
func (s *MovieService) GetMovie(ctx context.Context, id string) (*models.MovieDetailResponse, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrMovieNotFound
	}

	movie, err := s.getCachedMovie(ctx, id, objectID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByMovieID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	return &models.MovieDetailResponse{
		Movie:   *movie,
		Reviews: reviews,
	}, nil
}

// CreateMovie inserts a new catalog entry.
func (s *MovieService) CreateMovie(ctx context.Context, req *models.CreateMovieRequest) (*models.Movie, error) {
	movie := &models.Movie{
		Title:       req.Title,
		Genres:      req.Genres,
		ReleaseYear: req.ReleaseYear,
		Director:    req.Director,
		Cast:        req.Cast,
		Synopsis:    req.Synopsis,
		PosterURL:   req.PosterURL,
	}

	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return nil, err
	}

	return movie, nil
}

func (s *MovieService) getCachedMovie(ctx context.Context, id string, objectID primitive.ObjectID) (*models.Movie, error) {
	cacheKey := cache.MovieCacheKey(id)

	var movie models.Movie
	found, err := s.cache.Get(ctx, cacheKey, &movie)
	if err == nil && found {
		return &movie, nil
	}

	dbMovie, err := s.movieRepo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, cacheKey, dbMovie, movieCacheTTL)

	return dbMovie, nil
}
