package main

import (
	"context"
	"log"
	"time"

	"moviebuzz/internal/config"
	"moviebuzz/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log.Println("Starting migration...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	createIndexes(ctx, mongoDB.Database)

	log.Println("Migration completed successfully!")
}

func createIndexes(ctx context.Context, db *mongo.Database) {
	// Users indexes
	createIndex(ctx, db, "users", bson.D{{Key: "email", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "users", bson.D{{Key: "username", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})

	// Movies indexes
	createIndex(ctx, db, "movies", bson.D{{Key: "genres", Value: 1}}, nil)
	createIndex(ctx, db, "movies", bson.D{{Key: "releaseYear", Value: 1}}, nil)
	createIndex(ctx, db, "movies", bson.D{{Key: "averageRating", Value: -1}}, nil)

	// Reviews indexes
	createIndex(ctx, db, "reviews", bson.D{
		{Key: "movieId", Value: 1},
		{Key: "createdAt", Value: -1},
	}, nil)
	createIndex(ctx, db, "reviews", bson.D{
		{Key: "userId", Value: 1},
		{Key: "createdAt", Value: -1},
	}, nil)

	// Diary indexes
	createIndex(ctx, db, "diary_entries", bson.D{
		{Key: "userId", Value: 1},
		{Key: "watchedDate", Value: -1},
	}, nil)

	// Interactions indexes
	createIndex(ctx, db, "interactions", bson.D{{Key: "userId", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
}

func createIndex(ctx context.Context, db *mongo.Database, collection string, keys bson.D, opts *options.IndexOptions) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}

	name, err := db.Collection(collection).Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		log.Printf("Warning: Failed to create index on %s: %v", collection, err)
		return
	}

	log.Printf("Created index %s on %s", name, collection)
}

func ptrBool(b bool) *bool {
	return &b
}
