// Package service contains business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "moviebuzz/internal/errors"
	"moviebuzz/internal/models"
	"moviebuzz/internal/repository"
	"moviebuzz/pkg/auth"
)

// AuthService handles authentication business logic.
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, jwtManager auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// Register creates a new user account. The username defaults to the
// email's local part; a numeric suffix is appended if that is taken.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	username, err := s.deriveUsername(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashedPassword,
		Username: username,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and issues a signed, time-limited token
// binding the user's id and email.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(user.ID.Hex(), user.Email)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Result: models.UserSummary{
			ID:       user.ID,
			Email:    user.Email,
			Username: user.Username,
		},
		Token: token,
	}, nil
}

// deriveUsername picks the email local part, falling back to suffixed
// variants when the name is taken.
func (s *AuthService) deriveUsername(ctx context.Context, email string) (string, error) {
	local := email[:strings.Index(email, "@")]

	candidate := local
	for i := 1; ; i++ {
		existing, err := s.userRepo.FindByUsername(ctx, candidate)
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		if existing == nil {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", local, i)
	}
}
