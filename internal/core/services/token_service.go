package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/artfeed/backend/internal/apperrors"
	"github.com/artfeed/backend/internal/core/domain"
	portssvc "github.com/artfeed/backend/internal/core/ports/services"
	"github.com/artfeed/backend/internal/platform/config"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService signs and verifies the two token classes. The secrets are
// injected at construction and immutable for the process lifetime.
type tokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	issuer        string
}

// NewTokenService creates a new instance of tokenService from configuration.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{
		accessSecret:  []byte(cfg.AccessTokenSecret),
		refreshSecret: []byte(cfg.RefreshTokenSecret),
		accessExpiry:  cfg.AccessTokenExpiryDuration,
		refreshExpiry: cfg.RefreshTokenExpiryDuration,
		issuer:        cfg.JWTIssuer,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// SignAccessToken mints a short-lived access token for the user.
func (s *tokenService) SignAccessToken(userID, userEmail string) (string, error) {
	return s.sign(userID, userEmail, s.accessSecret, s.accessExpiry)
}

// SignRefreshToken mints a long-lived refresh token for the user.
func (s *tokenService) SignRefreshToken(userID, userEmail string) (string, error) {
	return s.sign(userID, userEmail, s.refreshSecret, s.refreshExpiry)
}

// VerifyAccessToken validates a token against the access secret.
func (s *tokenService) VerifyAccessToken(token string) (*domain.TokenClaims, error) {
	return s.verify(token, s.accessSecret)
}

// VerifyRefreshToken validates a token against the refresh secret.
func (s *tokenService) VerifyRefreshToken(token string) (*domain.TokenClaims, error) {
	return s.verify(token, s.refreshSecret)
}

func (s *tokenService) sign(userID, userEmail string, secret []byte, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := domain.TokenClaims{
		UserID:    userID,
		UserEmail: userEmail,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *tokenService) verify(tokenString string, secret []byte) (*domain.TokenClaims, error) {
	claims := &domain.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Don't forget to validate the alg is what you expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, apperrors.ErrTokenInvalid
	}
	return claims, nil
}
