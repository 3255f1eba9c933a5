package main

import (
	"bytes"
	"context"
	"log"
	"time"

	"moviebuzz/internal/config"
	"moviebuzz/internal/database"
	"moviebuzz/internal/models"
	"moviebuzz/internal/storage"
	"moviebuzz/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// placeholderPoster is a 1x1 transparent PNG used for seeded movies
// until real artwork is uploaded.
var placeholderPoster = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4, 0x89, 0x00, 0x00, 0x00,
	0x0D, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9C, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0D, 0x0A, 0x2D, 0xB4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4E, 0x44, 0xAE, 0x42, 0x60, 0x82,
}

func main() {
	log.Println("Starting seed...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	seedUsers(ctx, mongoDB)
	seedMovies(ctx, mongoDB, s3Client)

	log.Println("Seed completed successfully!")
}

func seedUsers(ctx context.Context, db *database.MongoDB) {
	users := db.Collection("users")

	seeds := []struct {
		email    string
		username string
	}{
		{"alice@example.com", "alice"},
		{"bob@example.com", "bob"},
	}

	for _, s := range seeds {
		count, err := users.CountDocuments(ctx, bson.M{"email": s.email})
		if err != nil {
			log.Printf("Warning: failed to check user %s: %v", s.email, err)
			continue
		}
		if count > 0 {
			continue
		}

		hashed, err := auth.HashPassword("password123")
		if err != nil {
			log.Fatalf("Failed to hash seed password: %v", err)
		}

		now := time.Now()
		_, err = users.InsertOne(ctx, models.User{
			Email:     s.email,
			Password:  hashed,
			Username:  s.username,
			JoinedAt:  now,
			UpdatedAt: now,
		})
		if err != nil {
			log.Printf("Warning: failed to seed user %s: %v", s.email, err)
			continue
		}
		log.Printf("Seeded user %s", s.email)
	}
}

func seedMovies(ctx context.Context, db *database.MongoDB, s3Client *storage.S3Client) {
	movies := db.Collection("movies")

	seeds := []models.Movie{
		{
			Title:       "The Thin Red Line",
			Genres:      []string{"drama", "war"},
			ReleaseYear: 1998,
			Director:    "Terrence Malick",
			Cast:        []string{"Jim Caviezel", "Sean Penn", "Nick Nolte"},
			Synopsis:    "Soldiers struggle through the battle for Guadalcanal.",
		},
		{
			Title:       "Paris, Texas",
			Genres:      []string{"drama"},
			ReleaseYear: 1984,
			Director:    "Wim Wenders",
			Cast:        []string{"Harry Dean Stanton", "Nastassja Kinski"},
			Synopsis:    "A drifter reconnects with the family he abandoned.",
		},
		{
			Title:       "Chungking Express",
			Genres:      []string{"romance", "drama"},
			ReleaseYear: 1994,
			Director:    "Wong Kar-wai",
			Cast:        []string{"Tony Leung", "Faye Wong", "Brigitte Lin"},
			Synopsis:    "Two Hong Kong policemen drift through love and loss.",
		},
	}

	for _, movie := range seeds {
		count, err := movies.CountDocuments(ctx, bson.M{"title": movie.Title})
		if err != nil {
			log.Printf("Warning: failed to check movie %q: %v", movie.Title, err)
			continue
		}
		if count > 0 {
			continue
		}

		now := time.Now()
		movie.CreatedAt = now
		movie.UpdatedAt = now

		result, err := movies.InsertOne(ctx, movie)
		if err != nil {
			log.Printf("Warning: failed to seed movie %q: %v", movie.Title, err)
			continue
		}

		// Upload a placeholder poster alongside the document
		key := storage.PosterKey(result.InsertedID.(primitive.ObjectID).Hex())
		if err := s3Client.PutObject(ctx, key, bytes.NewReader(placeholderPoster), "image/png"); err != nil {
			log.Printf("Warning: failed to upload poster for %q: %v", movie.Title, err)
		}

		log.Printf("Seeded movie %q", movie.Title)
	}
}
