package services

import (
	"context"

	"github.com/artfeed/backend/internal/core/domain"
	"github.com/artfeed/backend/internal/dto"
)

// TokenSvcFacade defines the interface for token issuance and verification.
// Access and refresh tokens are signed with distinct secrets so possession
// of one class never allows forging the other.
type TokenSvcFacade interface {
	// SignAccessToken mints a short-lived access token for the user.
	SignAccessToken(userID, userEmail string) (string, error)
	// SignRefreshToken mints a long-lived refresh token for the user.
	SignRefreshToken(userID, userEmail string) (string, error)
	// VerifyAccessToken validates signature and expiry against the access
	// secret. Fails with apperrors.ErrTokenExpired or ErrTokenInvalid.
	VerifyAccessToken(token string) (*domain.TokenClaims, error)
	// VerifyRefreshToken validates signature and expiry against the refresh
	// secret, with the same error semantics.
	VerifyRefreshToken(token string) (*domain.TokenClaims, error)
}

// LoginResult bundles what a successful login produces. The refresh token is
// delivered to clients only via the HTTP-only cookie.
type LoginResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

// AuthSvcFacade defines the interface for registration and session issuance.
type AuthSvcFacade interface {
	// Register validates uniqueness of the email, hashes the password and
	// persists the new user. Fails with apperrors.ErrDuplicate when the
	// email is already registered.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// Login authenticates by email or phone identifier. Unknown identifier
	// and wrong password both fail with apperrors.ErrInvalidCredentials.
	Login(ctx context.Context, identifier, password string) (*LoginResult, error)
	// Refresh verifies a refresh token and mints a fresh access token from
	// its claims. Fails with apperrors.ErrUnauthorized.
	Refresh(ctx context.Context, refreshToken string) (string, error)
}
