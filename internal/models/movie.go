package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movie represents a catalog entry.
type Movie struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Title         string             `json:"title" bson:"title" example:"The Thin Red Line"`
	Genres        []string           `json:"genres" bson:"genres" example:"drama,war"`
	ReleaseYear   int                `json:"releaseYear" bson:"releaseYear" example:"1998"`
	Director      string             `json:"director" bson:"director" example:"Terrence Malick"`
	Cast          []string           `json:"cast" bson:"cast" example:"Jim Caviezel,Sean Penn"`
	Synopsis      string             `json:"synopsis" bson:"synopsis" example:"A group of men fight for Guadalcanal."`
	PosterURL     string             `json:"posterUrl" bson:"posterUrl" example:"https://image.example.org/w500/thin-red-line.jpg"`
	AverageRating float64            `json:"averageRating" bson:"averageRating" example:"4.2"`
	RatingCount   int64              `json:"ratingCount" bson:"ratingCount" example:"17"`
	RatingSum     int64              `json:"-" bson:"ratingSum"` // running total backing averageRating
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// CreateMovieRequest is the payload for adding a movie to the catalog.
type CreateMovieRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=300" example:"The Thin Red Line"`
	Genres      []string `json:"genres" binding:"max=10,dive,min=1,max=40" example:"drama,war"`
	ReleaseYear int      `json:"releaseYear" binding:"omitempty,gte=1878,lte=2100" example:"1998"`
	Director    string   `json:"director" binding:"max=120" example:"Terrence Malick"`
	Cast        []string `json:"cast" binding:"max=50,dive,min=1,max=120" example:"Jim Caviezel,Sean Penn"`
	Synopsis    string   `json:"synopsis" binding:"max=5000"`
	PosterURL   string   `json:"posterUrl" binding:"omitempty,url" example:"https://image.example.org/w500/thin-red-line.jpg"`
}

// MovieFilter holds the catalog listing filters parsed from query params.
type MovieFilter struct {
	Page      int     `form:"page" binding:"omitempty,gte=1"`
	Limit     int     `form:"limit" binding:"omitempty,gte=1,lte=100"`
	Genre     string  `form:"genre"`
	Year      int     `form:"year" binding:"omitempty,gte=1878,lte=2100"`
	MinRating float64 `form:"rating" binding:"omitempty,gte=0,lte=5"`
}

// MovieDetailResponse is the response for a single movie lookup.
type MovieDetailResponse struct {
	Movie   Movie    `json:"movie"`
	Reviews []Review `json:"reviews"`
}
