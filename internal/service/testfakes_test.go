package service

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"moviebuzz/internal/models"
	"moviebuzz/pkg/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Hand-written func-field fakes for the repositories and infrastructure
// the services depend on. Each method delegates to the corresponding
// field when set and returns zero values otherwise.

type fakeUserRepo struct {
	CreateFunc         func(ctx context.Context, user *models.User) error
	FindByIDFunc       func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmailFunc    func(ctx context.Context, email string) (*models.User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*models.User, error)
	UpdateFunc         func(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest) (*models.User, error)
	SetAvatarKeyFunc   func(ctx context.Context, id primitive.ObjectID, key string) error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, user)
	}
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if f.FindByIDFunc != nil {
		return f.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.FindByEmailFunc != nil {
		return f.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.FindByUsernameFunc != nil {
		return f.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest) (*models.User, error) {
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, id, update)
	}
	return nil, nil
}

func (f *fakeUserRepo) SetAvatarKey(ctx context.Context, id primitive.ObjectID, key string) error {
	if f.SetAvatarKeyFunc != nil {
		return f.SetAvatarKeyFunc(ctx, id, key)
	}
	return nil
}

type fakeMovieRepo struct {
	CreateFunc      func(ctx context.Context, movie *models.Movie) error
	FindByIDFunc    func(ctx context.Context, id primitive.ObjectID) (*models.Movie, error)
	FindFunc        func(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error)
	ApplyRatingFunc func(ctx context.Context, id primitive.ObjectID, rating int) (*models.Movie, error)
}

func (f *fakeMovieRepo) Create(ctx context.Context, movie *models.Movie) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, movie)
	}
	return nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error) {
	if f.FindByIDFunc != nil {
		return f.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (f *fakeMovieRepo) Find(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error) {
	if f.FindFunc != nil {
		return f.FindFunc(ctx, filter)
	}
	return nil, nil
}

func (f *fakeMovieRepo) ApplyRating(ctx context.Context, id primitive.ObjectID, rating int) (*models.Movie, error) {
	if f.ApplyRatingFunc != nil {
		return f.ApplyRatingFunc(ctx, id, rating)
	}
	return nil, nil
}

type fakeReviewRepo struct {
	CreateFunc        func(ctx context.Context, review *models.Review) error
	FindByMovieIDFunc func(ctx context.Context, movieID primitive.ObjectID) ([]models.Review, error)
	FindByUserIDFunc  func(ctx context.Context, userID primitive.ObjectID) ([]models.Review, error)
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *models.Review) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, review)
	}
	return nil
}

func (f *fakeReviewRepo) FindByMovieID(ctx context.Context, movieID primitive.ObjectID) ([]models.Review, error) {
	if f.FindByMovieIDFunc != nil {
		return f.FindByMovieIDFunc(ctx, movieID)
	}
	return []models.Review{}, nil
}

func (f *fakeReviewRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Review, error) {
	if f.FindByUserIDFunc != nil {
		return f.FindByUserIDFunc(ctx, userID)
	}
	return []models.Review{}, nil
}

type fakeDiaryRepo struct {
	CreateFunc       func(ctx context.Context, entry *models.DiaryEntry) error
	FindByUserIDFunc func(ctx context.Context, userID primitive.ObjectID) ([]models.DiaryEntry, error)
}

func (f *fakeDiaryRepo) Create(ctx context.Context, entry *models.DiaryEntry) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, entry)
	}
	return nil
}

func (f *fakeDiaryRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.DiaryEntry, error) {
	if f.FindByUserIDFunc != nil {
		return f.FindByUserIDFunc(ctx, userID)
	}
	return []models.DiaryEntry{}, nil
}

type fakeInteractionRepo struct {
	GetOrCreateFunc    func(ctx context.Context, userID primitive.ObjectID) (*models.Interaction, error)
	AddToListFunc      func(ctx context.Context, userID primitive.ObjectID, field string, movieID primitive.ObjectID) (*models.Interaction, error)
	RemoveFromListFunc func(ctx context.Context, userID primitive.ObjectID, field string, movieID primitive.ObjectID) (*models.Interaction, error)
}

func (f *fakeInteractionRepo) GetOrCreate(ctx context.Context, userID primitive.ObjectID) (*models.Interaction, error) {
	if f.GetOrCreateFunc != nil {
		return f.GetOrCreateFunc(ctx, userID)
	}
	return nil, nil
}

func (f *fakeInteractionRepo) AddToList(ctx context.Context, userID primitive.ObjectID, field string, movieID primitive.ObjectID) (*models.Interaction, error) {
	if f.AddToListFunc != nil {
		return f.AddToListFunc(ctx, userID, field, movieID)
	}
	return nil, nil
}

func (f *fakeInteractionRepo) RemoveFromList(ctx context.Context, userID primitive.ObjectID, field string, movieID primitive.ObjectID) (*models.Interaction, error) {
	if f.RemoveFromListFunc != nil {
		return f.RemoveFromListFunc(ctx, userID, field, movieID)
	}
	return nil, nil
}

// fakeCache is an in-memory Cache that round-trips values through JSON
// the way the Redis implementation does.
type fakeCache struct {
	store   map[string][]byte
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string][]byte{}}
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = data
	return nil
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, ok := f.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.store, key)
	f.deleted = append(f.deleted, key)
	return nil
}

type fakeStorage struct {
	GetPresignedURLFunc    func(ctx context.Context, key string, expiry time.Duration) (string, error)
	GetPresignedPutURLFunc func(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)
	PutObjectFunc          func(ctx context.Context, key string, body io.Reader, contentType string) error
}

func (f *fakeStorage) GetPresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if f.GetPresignedURLFunc != nil {
		return f.GetPresignedURLFunc(ctx, key, expiry)
	}
	return "https://storage.test/" + key, nil
}

func (f *fakeStorage) GetPresignedPutURL(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	if f.GetPresignedPutURLFunc != nil {
		return f.GetPresignedPutURLFunc(ctx, key, contentType, expiry)
	}
	return "https://storage.test/upload/" + key, nil
}

func (f *fakeStorage) PutObject(ctx context.Context, key string, body io.Reader, contentType string) error {
	if f.PutObjectFunc != nil {
		return f.PutObjectFunc(ctx, key, body, contentType)
	}
	return nil
}

type fakeTokenManager struct {
	GenerateTokenFunc func(userID, email string) (string, error)
	ValidateTokenFunc func(tokenString string) (*auth.Claims, error)
}

func (f *fakeTokenManager) GenerateToken(userID, email string) (string, error) {
	if f.GenerateTokenFunc != nil {
		return f.GenerateTokenFunc(userID, email)
	}
	return "test.jwt.token", nil
}

func (f *fakeTokenManager) ValidateToken(tokenString string) (*auth.Claims, error) {
	if f.ValidateTokenFunc != nil {
		return f.ValidateTokenFunc(tokenString)
	}
	return nil, nil
}
