package service

import (
	"context"
	"time"

	"moviebuzz/internal/cache"
	apperrors "moviebuzz/internal/errors"
	"moviebuzz/internal/models"
	"moviebuzz/internal/repository"
	"moviebuzz/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	userCacheTTL    = 15 * time.Minute
	avatarURLExpiry = 24 * time.Hour
	uploadURLExpiry = 15 * time.Minute
)

// UserService handles business logic for user profile operations.
type UserService struct {
	repo    repository.UserRepository
	cache   cache.Cache
	storage storage.Storage
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, cache cache.Cache, storage storage.Storage) *UserService {
	return &UserService{
		repo:    repo,
		cache:   cache,
		storage: storage,
	}
}

// GetUser retrieves a user by ID (with caching).
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	// Try cache first
	cacheKey := cache.UserCacheKey(id)
	var user models.User
	found, err := s.cache.Get(ctx, cacheKey, &user)
	if err == nil && found {
		return &user, nil // Cache hit
	}

	dbUser, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	s.resolveAvatar(ctx, dbUser)

	// Store in cache (ignore errors - cache is best effort)
	_ = s.cache.Set(ctx, cacheKey, dbUser, userCacheTTL)

	return dbUser, nil
}

// UpdateUser updates a user's profile.
func (s *UserService) UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	user, err := s.repo.Update(ctx, objectID, req)
	if err != nil {
		return nil, err
	}

	s.resolveAvatar(ctx, user)

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.UserCacheKey(id))

	return user, nil
}

// RequestAvatarUpload generates a pre-signed upload URL for a user's
// avatar and records the object key on the user document.
func (s *UserService) RequestAvatarUpload(ctx context.Context, id string, req *models.AvatarUploadRequest) (*models.AvatarUploadResponse, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	key := storage.AvatarKey(id, req.ContentType)

	uploadURL, err := s.storage.GetPresignedPutURL(ctx, key, req.ContentType, uploadURLExpiry)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetAvatarKey(ctx, objectID, key); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, cache.UserCacheKey(id))

	return &models.AvatarUploadResponse{
		UploadURL: uploadURL,
		Key:       key,
	}, nil
}

// resolveAvatar fills ProfilePicture with a pre-signed URL when the user
// has an uploaded avatar and no external picture URL set. Best effort.
func (s *UserService) resolveAvatar(ctx context.Context, user *models.User) {
	if user.AvatarKey == "" || user.ProfilePicture != "" {
		return
	}
	url, err := s.storage.GetPresignedURL(ctx, user.AvatarKey, avatarURLExpiry)
	if err != nil {
		return
	}
	user.ProfilePicture = url
}
