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
)

// userService implements profile, password, preference and block-list
// operations. These are single-record reads and writes; the repository's
// document-level atomicity is all the consistency they need.
type userService struct {
	userRepo    portsrepo.UserRepositoryFacade
	articleRepo portsrepo.ArticleReader
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, articleRepo portsrepo.ArticleReader) portssvc.UserSvcFacade {
	return &userService{
		userRepo:    userRepo,
		articleRepo: articleRepo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.PhoneNumber = *req.Phone
	}
	if req.DOB != nil {
		user.DOB = *req.DOB
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateUserProfile(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// ChangePassword re-verifies the current password before hashing and storing
// the new one.
func (s *userService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdateUserPassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (s *userService) UpdatePreferences(ctx context.Context, userID string, preferences []string) (*domain.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, category := range preferences {
		if !domain.IsValidCategory(category) {
			return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, category)
		}
	}
	if err := s.userRepo.UpdateUserPreferences(ctx, userID, preferences); err != nil {
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}
	user.Preferences = preferences
	user.UpdatedAt = time.Now()
	return user, nil
}

// BlockArticle adds an article id to the user's block list. Blocking is
// permanent in scope; there is no unblock operation.
func (s *userService) BlockArticle(ctx context.Context, userID string, articleID string) (*domain.User, error) {
	article, err := s.articleRepo.FindArticleByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up article: %w", err)
	}
	if article == nil {
		return nil, apperrors.ErrNotFound
	}

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.AddBlockedArticle(ctx, userID, articleID); err != nil {
		return nil, fmt.Errorf("failed to block article: %w", err)
	}
	if !containsID(user.BlockedArticles, articleID) {
		user.BlockedArticles = append(user.BlockedArticles, articleID)
	}
	return user, nil
}

func containsID(set []string, id string) bool {
	for _, v := range set {
		if v == id {
			return true
		}
	}
	return false
}
