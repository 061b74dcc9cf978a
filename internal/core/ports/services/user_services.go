package services

import (
	"context"

	"github.com/artfeed/backend/internal/core/domain"
	"github.com/artfeed/backend/internal/dto"
)

// UserSvcFacade defines the interface for user profile operations.
type UserSvcFacade interface {
	// GetUser retrieves a user by id. Fails with apperrors.ErrNotFound.
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	// UpdateProfile applies a partial profile update.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)
	// ChangePassword verifies the current password before storing the new
	// hash. Fails with apperrors.ErrInvalidCredentials on mismatch.
	ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error
	// UpdatePreferences replaces the user's topic preference set.
	UpdatePreferences(ctx context.Context, userID string, preferences []string) (*domain.User, error)
	// BlockArticle adds the article to the user's block list after checking
	// the article exists.
	BlockArticle(ctx context.Context, userID string, articleID string) (*domain.User, error)
}
