package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rajank18/prograde/internal/app/models"
	"github.com/rajank18/prograde/internal/app/models/dto"
	"github.com/rajank18/prograde/internal/app/repositories"
	"github.com/rajank18/prograde/internal/pkg/apperrors"
	"github.com/rajank18/prograde/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// AuthService handles registration and login
type AuthService struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new user account with a hashed password
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, apperrors.ErrInvalidRole
	}

	email := strings.TrimSpace(req.Email)

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Password:     hashed,
		Role:         role,
		DepartmentID: req.DepartmentID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Str("role", string(user.Role)).Msg("User registered")
	return user, nil
}

// Login verifies credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		User: dto.UserSummary{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  string(user.Role),
		},
	}, nil
}
