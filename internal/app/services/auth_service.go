package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/oguzk/learnhub/internal/app/models"
	"github.com/oguzk/learnhub/internal/app/models/dto"
	"github.com/oguzk/learnhub/internal/app/repositories"
	"github.com/oguzk/learnhub/internal/pkg/apperrors"
	pkgAuth "github.com/oguzk/learnhub/internal/pkg/auth"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo   *repositories.UserRepository
	jwtService *pkgAuth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repositories.UserRepository, jwtService *pkgAuth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new user account. The email must not already be taken;
// the password is stored bcrypt-hashed, never in plaintext.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if _, err := s.userRepo.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, fmt.Errorf("error checking existing user: %w", err)
	}

	hashed, err := pkgAuth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.userRepo.CreateUser(ctx, models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		JoinDate: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info().Str("userID", user.ID).Str("email", user.Email).Msg("User registered")
	return s.authResponse(&user)
}

// Login authenticates a user by email and password.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !pkgAuth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Info().Str("userID", user.ID).Msg("User logged in")
	return s.authResponse(user)
}

// GetUser retrieves a user by id.
func (s *authServiceImpl) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

func (s *authServiceImpl) authResponse(user *models.User) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}
	return &dto.AuthResponse{
		User: user,
		Token: &dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
	}, nil
}
