package repositories

import (
	"context"

	"github.com/artfeed/backend/internal/core/domain"
)

// ArticleReader defines read operations for article data.
type ArticleReader interface {
	// FindArticleByID retrieves a specific article by its unique identifier.
	FindArticleByID(ctx context.Context, articleID string) (*domain.Article, error)

	// FindArticlesByPreference retrieves articles in any of the given
	// categories, excluding articles authored by excludeAuthorID and
	// articles whose ids appear in excludeArticleIDs.
	FindArticlesByPreference(ctx context.Context, categories []string, excludeAuthorID string, excludeArticleIDs []string) ([]domain.Article, error)

	// FindArticlesByAuthor retrieves all articles authored by authorID,
	// newest first.
	FindArticlesByAuthor(ctx context.Context, authorID string) ([]domain.Article, error)
}

// ArticleWriter defines write operations for article data.
type ArticleWriter interface {
	// SaveArticle persists a new article.
	SaveArticle(ctx context.Context, article domain.Article) error

	// UpdateArticle updates title, category, description, tags and cover image.
	UpdateArticle(ctx context.Context, article domain.Article) error

	// UpdateArticleReactions replaces the likes and dislikes sets.
	UpdateArticleReactions(ctx context.Context, article domain.Article) error

	// DeleteArticle removes an article.
	DeleteArticle(ctx context.Context, articleID string) error
}

// ArticleRepositoryFacade combines all article-related repository interfaces.
type ArticleRepositoryFacade interface {
	ArticleReader
	ArticleWriter
}
