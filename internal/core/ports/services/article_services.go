package services

import (
	"context"

	"github.com/artfeed/backend/internal/core/domain"
	"github.com/artfeed/backend/internal/dto"
)

// ArticleSvcFacade defines the interface for article operations.
type ArticleSvcFacade interface {
	// CreateArticle persists a new article authored by authorID. The author
	// must resolve to an existing user.
	CreateArticle(ctx context.Context, authorID string, req dto.CreateArticleRequest) (*domain.Article, error)
	// GetFeed returns articles in the given categories, excluding the
	// caller's own articles and their blocked set.
	GetFeed(ctx context.Context, userID string, categories []string) ([]domain.Article, error)
	// ListByAuthor returns all articles authored by authorID.
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Article, error)
	// EditArticle applies a partial update. Only the author may edit; other
	// callers fail with apperrors.ErrForbidden.
	EditArticle(ctx context.Context, articleID, callerID string, req dto.UpdateArticleRequest) (*domain.Article, error)
	// DeleteArticle removes an article. Only the author may delete.
	DeleteArticle(ctx context.Context, articleID, callerID string) error
	// ToggleLike applies the like toggle for userID and returns the updated
	// article plus whether the user had already liked it.
	ToggleLike(ctx context.Context, articleID, userID string) (*domain.Article, bool, error)
	// ToggleDislike is symmetric to ToggleLike for the dislikes set.
	ToggleDislike(ctx context.Context, articleID, userID string) (*domain.Article, bool, error)
}
