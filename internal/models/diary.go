package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DiaryEntry records that a user watched a movie on a given date.
// Entries are append-only; there is no update or delete route.
type DiaryEntry struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	UserID      primitive.ObjectID `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439013"`
	MovieID     primitive.ObjectID `json:"movieId" bson:"movieId" example:"507f1f77bcf86cd799439012"`
	WatchedDate time.Time          `json:"watchedDate" bson:"watchedDate" example:"2024-01-15T00:00:00Z"`
	Rating      *int               `json:"rating,omitempty" bson:"rating,omitempty" example:"4"`
	ReviewText  string             `json:"reviewText,omitempty" bson:"reviewText,omitempty" example:"Rewatch, still great."`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// AddDiaryEntryRequest is the payload for appending a diary entry.
type AddDiaryEntryRequest struct {
	MovieID     string `json:"movieId" binding:"required,objectid" example:"507f1f77bcf86cd799439012"`
	WatchedDate string `json:"watchedDate" binding:"required,datetime=2006-01-02" example:"2024-01-15"`
	Rating      *int   `json:"rating" binding:"omitempty,min=1,max=5" example:"4"`
	ReviewText  string `json:"reviewText" binding:"max=5000" example:"Rewatch, still great."`
}
