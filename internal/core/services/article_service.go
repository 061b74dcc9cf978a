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
	"github.com/google/uuid"
)

// articleService implements article CRUD, the preference feed and the
// like/dislike toggles.
type articleService struct {
	articleRepo portsrepo.ArticleRepositoryFacade
	userRepo    portsrepo.UserReader
}

// NewArticleService creates a new instance of articleService.
func NewArticleService(articleRepo portsrepo.ArticleRepositoryFacade, userRepo portsrepo.UserReader) portssvc.ArticleSvcFacade {
	return &articleService{
		articleRepo: articleRepo,
		userRepo:    userRepo,
	}
}

var _ portssvc.ArticleSvcFacade = (*articleService)(nil)

func (s *articleService) CreateArticle(ctx context.Context, authorID string, req dto.CreateArticleRequest) (*domain.Article, error) {
	author, err := s.userRepo.FindUserByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up author: %w", err)
	}
	if author == nil {
		return nil, apperrors.ErrNotFound
	}
	if !domain.IsValidCategory(req.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, req.Category)
	}

	now := time.Now()
	article := domain.Article{
		ArticleID:   uuid.NewString(),
		AuthorID:    authorID,
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		CoverImage:  req.CoverImage,
		Likes:       []string{},
		Dislikes:    []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.articleRepo.SaveArticle(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to save article: %w", err)
	}
	return &article, nil
}

// GetFeed returns articles matching the given categories, never including
// the caller's own articles or anything on their block list.
func (s *articleService) GetFeed(ctx context.Context, userID string, categories []string) ([]domain.Article, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}
	if len(categories) == 0 {
		categories = user.Preferences
	}

	articles, err := s.articleRepo.FindArticlesByPreference(ctx, categories, userID, user.BlockedArticles)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	return articles, nil
}

func (s *articleService) ListByAuthor(ctx context.Context, authorID string) ([]domain.Article, error) {
	articles, err := s.articleRepo.FindArticlesByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch author articles: %w", err)
	}
	return articles, nil
}

func (s *articleService) EditArticle(ctx context.Context, articleID, callerID string, req dto.UpdateArticleRequest) (*domain.Article, error) {
	article, err := s.getOwned(ctx, articleID, callerID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Description != nil {
		article.Description = *req.Description
	}
	if req.Category != nil {
		if !domain.IsValidCategory(*req.Category) {
			return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, *req.Category)
		}
		article.Category = *req.Category
	}
	if req.Tags != nil {
		article.Tags = *req.Tags
	}
	if req.CoverImage != nil {
		article.CoverImage = *req.CoverImage
	}
	article.UpdatedAt = time.Now()

	if err := s.articleRepo.UpdateArticle(ctx, *article); err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}
	return article, nil
}

func (s *articleService) DeleteArticle(ctx context.Context, articleID, callerID string) error {
	if _, err := s.getOwned(ctx, articleID, callerID); err != nil {
		return err
	}
	if err := s.articleRepo.DeleteArticle(ctx, articleID); err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	return nil
}

// ToggleLike applies the like transition and persists both reaction sets in
// one write so the mutual-exclusivity invariant holds in storage too.
func (s *articleService) ToggleLike(ctx context.Context, articleID, userID string) (*domain.Article, bool, error) {
	article, err := s.getArticle(ctx, articleID)
	if err != nil {
		return nil, false, err
	}
	alreadyLiked := article.ToggleLike(userID)
	article.UpdatedAt = time.Now()
	if err := s.articleRepo.UpdateArticleReactions(ctx, *article); err != nil {
		return nil, false, fmt.Errorf("failed to update reactions: %w", err)
	}
	return article, alreadyLiked, nil
}

func (s *articleService) ToggleDislike(ctx context.Context, articleID, userID string) (*domain.Article, bool, error) {
	article, err := s.getArticle(ctx, articleID)
	if err != nil {
		return nil, false, err
	}
	alreadyDisliked := article.ToggleDislike(userID)
	article.UpdatedAt = time.Now()
	if err := s.articleRepo.UpdateArticleReactions(ctx, *article); err != nil {
		return nil, false, fmt.Errorf("failed to update reactions: %w", err)
	}
	return article, alreadyDisliked, nil
}

func (s *articleService) getArticle(ctx context.Context, articleID string) (*domain.Article, error) {
	article, err := s.articleRepo.FindArticleByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up article: %w", err)
	}
	if article == nil {
		return nil, apperrors.ErrNotFound
	}
	return article, nil
}

func (s *articleService) getOwned(ctx context.Context, articleID, callerID string) (*domain.Article, error) {
	article, err := s.getArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article.AuthorID != callerID {
		return nil, apperrors.ErrForbidden
	}
	return article, nil
}
