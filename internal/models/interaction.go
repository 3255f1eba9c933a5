package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Interaction holds a user's like and watchlist state. One document per
// user, created by upsert on first access.
type Interaction struct {
	ID        primitive.ObjectID   `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	UserID    primitive.ObjectID   `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439013"`
	Likes     []primitive.ObjectID `json:"likes" bson:"likes"`
	Watchlist []primitive.ObjectID `json:"watchlist" bson:"watchlist"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt time.Time            `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// ToggleRequest is the payload for like/watchlist toggle routes.
type ToggleRequest struct {
	MovieID string `json:"movieId" binding:"required,objectid" example:"507f1f77bcf86cd799439012"`
}
