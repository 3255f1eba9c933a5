package service

import (
	"context"

	apperrors "moviebuzz/internal/errors"
	"moviebuzz/internal/models"
	"moviebuzz/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InteractionService handles like and watchlist state for users.
type InteractionService struct {
	repo repository.InteractionRepository
}

// NewInteractionService creates a new InteractionService.
func NewInteractionService(repo repository.InteractionRepository) *InteractionService {
	return &InteractionService{repo: repo}
}

// GetInteractions returns the user's like/watchlist state, creating an
// empty record on first access.
func (s *InteractionService) GetInteractions(ctx context.Context, userID string) (*models.Interaction, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	return s.repo.GetOrCreate(ctx, objectID)
}

// ToggleLike adds the movie to the user's likes if absent, removes it
// if present. Two toggles with the same movie cancel out.
func (s *InteractionService) ToggleLike(ctx context.Context, userID, movieID string) (*models.Interaction, error) {
	return s.toggle(ctx, userID, movieID, repository.FieldLikes)
}

// ToggleWatchlist adds the movie to the user's watchlist if absent,
// removes it if present.
func (s *InteractionService) ToggleWatchlist(ctx context.Context, userID, movieID string) (*models.Interaction, error) {
	return s.toggle(ctx, userID, movieID, repository.FieldWatchlist)
}

// RemoveFromWatchlist removes a movie from the user's watchlist.
func (s *InteractionService) RemoveFromWatchlist(ctx context.Context, userID, movieID string) (*models.Interaction, error) {
	userObjectID, movieObjectID, err := parseIDs(userID, movieID)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetOrCreate(ctx, userObjectID); err != nil {
		return nil, err
	}

	return s.repo.RemoveFromList(ctx, userObjectID, repository.FieldWatchlist, movieObjectID)
}

func (s *InteractionService) toggle(ctx context.Context, userID, movieID, field string) (*models.Interaction, error) {
	userObjectID, movieObjectID, err := parseIDs(userID, movieID)
	if err != nil {
		return nil, err
	}

	interaction, err := s.repo.GetOrCreate(ctx, userObjectID)
	if err != nil {
		return nil, err
	}

	if contains(listField(interaction, field), movieObjectID) {
		return s.repo.RemoveFromList(ctx, userObjectID, field, movieObjectID)
	}
	return s.repo.AddToList(ctx, userObjectID, field, movieObjectID)
}

func listField(interaction *models.Interaction, field string) []primitive.ObjectID {
	if field == repository.FieldLikes {
		return interaction.Likes
	}
	return interaction.Watchlist
}

func contains(list []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, item := range list {
		if item == id {
			return true
		}
	}
	return false
}

func parseIDs(userID, movieID string) (primitive.ObjectID, primitive.ObjectID, error) {
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, apperrors.ErrUserNotFound
	}

	movieObjectID, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, apperrors.ErrMovieNotFound
	}

	return userObjectID, movieObjectID, nil
}
