package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review represents a user's review of a movie. Reviews are immutable
// after creation.
type Review struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	MovieID   primitive.ObjectID `json:"movieId" bson:"movieId" example:"507f1f77bcf86cd799439012"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439013"`
	Username  string             `json:"username" bson:"username" example:"moviefan42"` // denormalized at write time
	Rating    int                `json:"rating" bson:"rating" example:"4"`
	Text      string             `json:"text" bson:"text" example:"A slow burn, but worth it."`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// CreateReviewRequest is the payload for submitting a review.
// MovieID is optional in the body because the canonical route carries it
// in the path; the legacy alias route supplies it here instead.
type CreateReviewRequest struct {
	MovieID  string `json:"movieId" binding:"omitempty,objectid" example:"507f1f77bcf86cd799439012"`
	UserID   string `json:"userId" binding:"required,objectid" example:"507f1f77bcf86cd799439013"`
	Username string `json:"username" binding:"required,min=1,max=30" example:"moviefan42"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5" example:"4"`
	Text     string `json:"text" binding:"max=5000" example:"A slow burn, but worth it."`
}

// ReviewedMovie is the metadata block attached to each review in a
// per-user listing. Fields are filled from the external metadata API,
// falling back to placeholders when the lookup fails.
type ReviewedMovie struct {
	Title       string  `json:"title" example:"The Thin Red Line"`
	Poster      *string `json:"poster" example:"https://image.example.org/w500/thin-red-line.jpg"`
	ReleaseDate *string `json:"releaseDate" example:"1998-12-25"`
}

// UserReview is a review paired with its movie metadata for per-user
// review listings.
type UserReview struct {
	Review
	Movie ReviewedMovie `json:"movie"`
}
