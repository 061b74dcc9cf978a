package services

import (
	"context"
	"fmt"
	"time"

	"github.com/artfeed/backend/internal/apperrors"
	"github.com/artfeed/backend/internal/core/domain"
	portsrepo "github.com/artfeed/backend/internal/core/ports/repositories"
	portssvc "github.com/artfeed/backend/internal/core/ports/services"
	"github.com/artfeed/backend/internal/dto"
	"github.com/artfeed/backend/internal/utils"
	"github.com/google/uuid"
)

// authService orchestrates registration, login and token refresh.
type authService struct {
	userRepo     portsrepo.UserRepositoryFacade
	tokenService portssvc.TokenSvcFacade
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, tokenService portssvc.TokenSvcFacade) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Register checks email uniqueness, hashes the password and persists the new
// user. The returned user carries the stored hash only internally; handlers
// serialize it through dto.UserResponse which strips it.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicate
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:          uuid.NewString(),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		PhoneNumber:     req.Phone,
		DOB:             req.DOB,
		PasswordHash:    hash,
		Preferences:     req.ArticlePreferences,
		BlockedArticles: []string{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return &user, nil
}

// Login looks the identifier up as email or phone and verifies the password.
// Both failure paths collapse into ErrInvalidCredentials so a caller cannot
// probe which emails are registered.
func (s *authService) Login(ctx context.Context, identifier, password string) (*portssvc.LoginResult, error) {
	user, err := s.userRepo.FindUserByIdentifier(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.tokenService.SignAccessToken(user.UserID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refreshToken, err := s.tokenService.SignRefreshToken(user.UserID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &portssvc.LoginResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh mints a new access token from a valid refresh token. The refresh
// token itself is stateless; there is no server-side session to consult.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokenService.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", apperrors.ErrUnauthorized
	}
	accessToken, err := s.tokenService.SignAccessToken(claims.UserID, claims.UserEmail)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return accessToken, nil
}
