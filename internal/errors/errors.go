// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Auth errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
)

// Catalog errors
var (
	ErrMovieNotFound = errors.New("movie not found")
)

// Review errors
var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrMissingMovieID = errors.New("movieId is required")
)
