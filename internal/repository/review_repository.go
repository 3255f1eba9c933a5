package repository

import (
	"context"
	"time"

	"moviebuzz/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReviewRepository defines the interface for review data operations
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	FindByMovieID(ctx context.Context, movieID primitive.ObjectID) ([]models.Review, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Review, error)
}

// reviewRepository implements ReviewRepository using MongoDB
type reviewRepository struct {
	collection *mongo.Collection
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db *mongo.Database) ReviewRepository {
	return &reviewRepository{
		collection: db.Collection("reviews"),
	}
}

// Create inserts a new review
func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	review.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		return err
	}

	review.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByMovieID returns all reviews for a movie, newest first
func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID primitive.ObjectID) ([]models.Review, error) {
	return r.find(ctx, bson.M{"movieId": movieID})
}

// FindByUserID returns all reviews by a user, newest first
func (r *reviewRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Review, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

func (r *reviewRepository) find(ctx context.Context, filter bson.M) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}

	// Return empty slice instead of nil
	if reviews == nil {
		reviews = []models.Review{}
	}

	return reviews, nil
}
