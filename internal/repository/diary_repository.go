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

// DiaryRepository defines the interface for diary data operations.
// The diary is append-only; there are no update or delete operations.
type DiaryRepository interface {
	Create(ctx context.Context, entry *models.DiaryEntry) error
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.DiaryEntry, error)
}

// diaryRepository implements DiaryRepository using MongoDB
type diaryRepository struct {
	collection *mongo.Collection
}

// NewDiaryRepository creates a new DiaryRepository
func NewDiaryRepository(db *mongo.Database) DiaryRepository {
	return &diaryRepository{
		collection: db.Collection("diary_entries"),
	}
}

// Create appends a new diary entry
func (r *diaryRepository) Create(ctx context.Context, entry *models.DiaryEntry) error {
	entry.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return err
	}

	entry.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByUserID returns a user's diary entries, most recently watched first
func (r *diaryRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.DiaryEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "watchedDate", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.DiaryEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	// Return empty slice instead of nil
	if entries == nil {
		entries = []models.DiaryEntry{}
	}

	return entries, nil
}
