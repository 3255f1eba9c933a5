package repository

import (
	"context"
	"errors"
	"time"

	apperrors "moviebuzz/internal/errors"
	"moviebuzz/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MovieRepository defines the interface for movie data operations
type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error)
	Find(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error)
	ApplyRating(ctx context.Context, id primitive.ObjectID, rating int) (*models.Movie, error)
}

// movieRepository implements MovieRepository using MongoDB
type movieRepository struct {
	collection *mongo.Collection
}

// NewMovieRepository creates a new MovieRepository
func NewMovieRepository(db *mongo.Database) MovieRepository {
	return &movieRepository{
		collection: db.Collection("movies"),
	}
}

// Create inserts a new movie into the catalog
func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	now := time.Now()
	movie.CreatedAt = now
	movie.UpdatedAt = now

	if movie.Genres == nil {
		movie.Genres = []string{}
	}
	if movie.Cast == nil {
		movie.Cast = []string{}
	}

	result, err := r.collection.InsertOne(ctx, movie)
	if err != nil {
		return err
	}

	movie.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a movie by its ID
func (r *movieRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error) {
	var movie models.Movie

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrMovieNotFound
		}
		return nil, err
	}

	return &movie, nil
}

// Find returns movies matching the filter with skip/limit pagination.
// Page is 1-indexed. Results follow the store's natural order.
func (r *movieRepository) Find(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error) {
	query := bson.M{}

	if filter.Genre != "" {
		query["genres"] = filter.Genre
	}
	if filter.Year != 0 {
		query["releaseYear"] = filter.Year
	}
	if filter.MinRating != 0 {
		query["averageRating"] = bson.M{"$gte": filter.MinRating}
	}

	skip := (filter.Page - 1) * filter.Limit

	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var movies []models.Movie
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, err
	}

	// Return empty slice instead of nil
	if movies == nil {
		movies = []models.Movie{}
	}

	return movies, nil
}

// ApplyRating folds a new rating into the movie's stored average in a
// single pipeline update. Count, sum, and average change atomically at
// the document level, so concurrent review submissions cannot lose each
// other's ratings.
func (r *movieRepository) ApplyRating(ctx context.Context, id primitive.ObjectID, rating int) (*models.Movie, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.M{
			"ratingCount": bson.M{"$add": bson.A{bson.M{"$ifNull": bson.A{"$ratingCount", 0}}, 1}},
			"ratingSum":   bson.M{"$add": bson.A{bson.M{"$ifNull": bson.A{"$ratingSum", 0}}, rating}},
			"updatedAt":   time.Now(),
		}}},
		bson.D{{Key: "$set", Value: bson.M{
			"averageRating": bson.M{"$divide": bson.A{"$ratingSum", "$ratingCount"}},
		}}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var movie models.Movie
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, pipeline, opts).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrMovieNotFound
		}
		return nil, err
	}

	return &movie, nil
}
