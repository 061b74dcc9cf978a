package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/artfeed/backend/internal/core/domain"
	portsrepo "github.com/artfeed/backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ArticleRepository struct {
	db *pgxpool.Pool
}

func NewArticleRepository(db *pgxpool.Pool) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// Ensure ArticleRepository implements the ports facade
var _ portsrepo.ArticleRepositoryFacade = (*ArticleRepository)(nil)

const articleColumns = `article_id, author_id, category, title, description, tags, cover_image, likes, dislikes, created_at, updated_at`

func (r *ArticleRepository) SaveArticle(ctx context.Context, article domain.Article) error {
	query := `
        INSERT INTO articles (article_id, author_id, category, title, description, tags, cover_image, likes, dislikes, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		article.ArticleID,
		article.AuthorID,
		article.Category,
		article.Title,
		article.Description,
		article.Tags,
		article.CoverImage,
		article.Likes,
		article.Dislikes,
		article.CreatedAt,
		article.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save article: %w", err)
	}
	return nil
}

func (r *ArticleRepository) FindArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE article_id = $1;`
	var article domain.Article
	err := r.db.QueryRow(ctx, query, articleID).Scan(
		&article.ArticleID,
		&article.AuthorID,
		&article.Category,
		&article.Title,
		&article.Description,
		&article.Tags,
		&article.CoverImage,
		&article.Likes,
		&article.Dislikes,
		&article.CreatedAt,
		&article.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Indicate not found explicitly
		}
		return nil, fmt.Errorf("failed to find article by ID: %w", err)
	}
	return &article, nil
}

// FindArticlesByPreference fetches the personalized feed: any of the given
// categories, never the caller's own articles, never blocked ids.
func (r *ArticleRepository) FindArticlesByPreference(ctx context.Context, categories []string, excludeAuthorID string, excludeArticleIDs []string) ([]domain.Article, error) {
	if excludeArticleIDs == nil {
		excludeArticleIDs = []string{}
	}
	query := `
        SELECT ` + articleColumns + `
        FROM articles
        WHERE category = ANY($1)
          AND author_id <> $2
          AND NOT (article_id = ANY($3))
        ORDER BY created_at DESC;
    `
	rows, err := r.db.Query(ctx, query, categories, excludeAuthorID, excludeArticleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query feed articles: %w", err)
	}
	defer rows.Close()
	return scanArticles(rows)
}

func (r *ArticleRepository) FindArticlesByAuthor(ctx context.Context, authorID string) ([]domain.Article, error) {
	query := `
        SELECT ` + articleColumns + `
        FROM articles
        WHERE author_id = $1
        ORDER BY created_at DESC;
    `
	rows, err := r.db.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query author articles: %w", err)
	}
	defer rows.Close()
	return scanArticles(rows)
}

func (r *ArticleRepository) UpdateArticle(ctx context.Context, article domain.Article) error {
	query := `
        UPDATE articles
        SET category = $1, title = $2, description = $3, tags = $4, cover_image = $5, updated_at = $6
        WHERE article_id = $7;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		article.Category,
		article.Title,
		article.Description,
		article.Tags,
		article.CoverImage,
		article.UpdatedAt,
		article.ArticleID,
	)
	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("article not found: %w", pgx.ErrNoRows)
	}
	return nil
}

// UpdateArticleReactions writes both reaction sets in one statement so a
// user id can never be observed in likes and dislikes at once.
func (r *ArticleRepository) UpdateArticleReactions(ctx context.Context, article domain.Article) error {
	query := `
        UPDATE articles
        SET likes = $1, dislikes = $2, updated_at = $3
        WHERE article_id = $4;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		article.Likes,
		article.Dislikes,
		article.UpdatedAt,
		article.ArticleID,
	)
	if err != nil {
		return fmt.Errorf("failed to update article reactions: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("article not found: %w", pgx.ErrNoRows)
	}
	return nil
}

func (r *ArticleRepository) DeleteArticle(ctx context.Context, articleID string) error {
	query := `DELETE FROM articles WHERE article_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, articleID)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("article not found: %w", pgx.ErrNoRows)
	}
	return nil
}

func scanArticles(rows pgx.Rows) ([]domain.Article, error) {
	articles := []domain.Article{}
	for rows.Next() {
		var article domain.Article
		err := rows.Scan(
			&article.ArticleID,
			&article.AuthorID,
			&article.Category,
			&article.Title,
			&article.Description,
			&article.Tags,
			&article.CoverImage,
			&article.Likes,
			&article.Dislikes,
			&article.CreatedAt,
			&article.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		articles = append(articles, article)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating article rows: %w", rows.Err())
	}
	return articles, nil
}
