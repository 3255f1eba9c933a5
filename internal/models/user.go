// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account.
type User struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Email          string             `json:"email" bson:"email" example:"user@example.com"`
	Password       string             `json:"-" bson:"password"` // "-" = never include in JSON response
	Username       string             `json:"username" bson:"username" example:"moviefan42"`
	ProfilePicture string             `json:"profilePicture,omitempty" bson:"profilePicture,omitempty" example:"https://cdn.example.com/avatars/507f.jpg"`
	AvatarKey      string             `json:"-" bson:"avatarKey,omitempty"` // S3 object key, not exposed in JSON
	JoinedAt       time.Time          `json:"joinedAt" bson:"joinedAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// RegisterRequest is the payload for account registration.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// UserSummary is the minimal user shape returned from login.
type UserSummary struct {
	ID       primitive.ObjectID `json:"id" example:"507f1f77bcf86cd799439011"`
	Email    string             `json:"email" example:"user@example.com"`
	Username string             `json:"username" example:"moviefan42"`
}

// LoginResponse is the response after successful login.
type LoginResponse struct {
	Result UserSummary `json:"result"`
	Token  string      `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
}

// UpdateUserRequest is the payload for updating a user profile.
type UpdateUserRequest struct {
	Username       *string `json:"username" binding:"omitempty,min=2,max=30" example:"newname"`
	ProfilePicture *string `json:"profilePicture" binding:"omitempty,url" example:"https://cdn.example.com/avatars/me.jpg"`
}

// AvatarUploadRequest is the payload for requesting an avatar upload URL.
type AvatarUploadRequest struct {
	ContentType string `json:"contentType" binding:"required,oneof=image/jpeg image/png image/webp" example:"image/jpeg"`
}

// AvatarUploadResponse carries the pre-signed upload URL for an avatar.
type AvatarUploadResponse struct {
	UploadURL string `json:"uploadUrl" example:"https://s3.amazonaws.com/bucket/avatars/...?X-Amz-Algorithm=..."`
	Key       string `json:"key" example:"avatars/507f1f77bcf86cd799439011.jpg"`
}
