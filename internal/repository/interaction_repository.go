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

// Interaction list field names
const (
	FieldLikes     = "likes"
	FieldWatchlist = "watchlist"
)

// InteractionRepository defines the interface for like/watchlist data operations
type InteractionRepository interface {
	// GetOrCreate returns the user's interaction document, inserting an
	// empty one if none exists. The write side effect is explicit here
	// rather than hidden behind a read.
	GetOrCreate(ctx context.Context, userID primitive.ObjectID) (*models.Interaction, error)
	// AddToList appends a movie id to the named list if absent.
	AddToList(ctx context.Context, userID primitive.ObjectID, field string, movieID primitive.ObjectID) (*models.Interaction, error)
	// RemoveFromList removes a movie id from the named list.
	RemoveFromList(ctx context.Context, userID primitive.ObjectID, field string, movieID primitive.ObjectID) (*models.Interaction, error)
}

// interactionRepository implements InteractionRepository using MongoDB
type interactionRepository struct {
	collection *mongo.Collection
}

// NewInteractionRepository creates a new InteractionRepository
func NewInteractionRepository(db *mongo.Database) InteractionRepository {
	return &interactionRepository{
		collection: db.Collection("interactions"),
	}
}

// GetOrCreate upserts and returns the interaction document for a user
func (r *interactionRepository) GetOrCreate(ctx context.Context, userID primitive.ObjectID) (*models.Interaction, error) {
	now := time.Now()

	update := bson.M{
		"$setOnInsert": bson.M{
			"userId":    userID,
			"likes":     []primitive.ObjectID{},
			"watchlist": []primitive.ObjectID{},
			"createdAt": now,
			"updatedAt": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var interaction models.Interaction
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"userId": userID}, update, opts).Decode(&interaction)
	if err != nil {
		return nil, err
	}

	return &interaction, nil
}

// AddToList appends a movie id to the named list if absent
func (r *interactionRepository) AddToList(ctx context.Context, userID primitive.ObjectID, field string, movieID primitive.ObjectID) (*models.Interaction, error) {
	update := bson.M{
		"$addToSet": bson.M{field: movieID},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	return r.update(ctx, userID, update)
}

// RemoveFromList removes a movie id from the named list
func (r *interactionRepository) RemoveFromList(ctx context.Context, userID primitive.ObjectID, field string, movieID primitive.ObjectID) (*models.Interaction, error) {
	update := bson.M{
		"$pull": bson.M{field: movieID},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	return r.update(ctx, userID, update)
}

func (r *interactionRepository) update(ctx context.Context, userID primitive.ObjectID, update bson.M) (*models.Interaction, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var interaction models.Interaction
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"userId": userID}, update, opts).Decode(&interaction)
	if err != nil {
		return nil, err
	}

	return &interaction, nil
}
