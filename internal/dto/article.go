package dto

import (
	"time"

	"github.com/artfeed/backend/internal/core/domain"
)

// CreateArticleRequest carries a new article. The author is taken from the
// authenticated caller, not from the body.
type CreateArticleRequest struct {
	Title       string   `json:"title" binding:"required,min=3,max=120"`
	Description string   `json:"description" binding:"required,min=10"`
	Category    string   `json:"category" binding:"required"`
	Tags        []string `json:"tags" binding:"required,min=1"`
	CoverImage  string   `json:"coverImage" binding:"required,url"`
}

// UpdateArticleRequest defines the fields an author may edit.
// Pointers differentiate omitted fields from zero values.
type UpdateArticleRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=3,max=120"`
	Description *string   `json:"description" binding:"omitempty,min=10"`
	Category    *string   `json:"category"`
	Tags        *[]string `json:"tags"`
	CoverImage  *string   `json:"coverImage" binding:"omitempty,url"`
}

// ArticleResponse is the API representation of an article.
type ArticleResponse struct {
	ArticleID   string    `json:"articleID"`
	AuthorID    string    `json:"authorID"`
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	CoverImage  string    `json:"coverImage"`
	Likes       []string  `json:"likes"`
	Dislikes    []string  `json:"dislikes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToArticleResponse converts a domain.Article to its API representation.
func ToArticleResponse(article *domain.Article) ArticleResponse {
	return ArticleResponse{
		ArticleID:   article.ArticleID,
		AuthorID:    article.AuthorID,
		Category:    article.Category,
		Title:       article.Title,
		Description: article.Description,
		Tags:        article.Tags,
		CoverImage:  article.CoverImage,
		Likes:       article.Likes,
		Dislikes:    article.Dislikes,
		CreatedAt:   article.CreatedAt,
		UpdatedAt:   article.UpdatedAt,
	}
}

// ToArticleListResponse converts a slice of domain articles.
func ToArticleListResponse(articles []domain.Article) []ArticleResponse {
	out := make([]ArticleResponse, len(articles))
	for i := range articles {
		out[i] = ToArticleResponse(&articles[i])
	}
	return out
}

// ReactionResponse is returned by the like/dislike endpoints.
type ReactionResponse struct {
	Message string          `json:"message"`
	Data    ArticleResponse `json:"data"`
}
