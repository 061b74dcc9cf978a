package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/artfeed/backend/internal/apperrors"
	portssvc "github.com/artfeed/backend/internal/core/ports/services"
	"github.com/artfeed/backend/internal/dto"
	"github.com/artfeed/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// articleHandler handles HTTP requests related to articles.
type articleHandler struct {
	articleService portssvc.ArticleSvcFacade
}

// newArticleHandler creates a new articleHandler.
func newArticleHandler(as portssvc.ArticleSvcFacade) *articleHandler {
	return &articleHandler{
		articleService: as,
	}
}

// registerArticleRoutes registers all article-related routes.
func registerArticleRoutes(rg *gin.RouterGroup, articleService portssvc.ArticleSvcFacade) {
	h := newArticleHandler(articleService)

	articles := rg.Group("/articles")
	{
		articles.GET("", h.getFeed)
		articles.GET("/user/:userId", h.getUserArticles)
		articles.POST("", h.createArticle)
		articles.PUT("/:articleId", h.editArticle)
		articles.PATCH("/:articleId/like", h.likeArticle)
		articles.PATCH("/:articleId/dislike", h.dislikeArticle)
		articles.DELETE("/:articleId", h.deleteArticle)
	}
}

// getFeed godoc
// @Summary Personalized article feed
// @Description Articles in the requested categories, excluding the caller's own and blocked articles.
// @Tags articles
// @Produce json
// @Param category query []string false "Categories to include (defaults to stored preferences)"
// @Success 200 {array} dto.ArticleResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /articles [get]
func (h *articleHandler) getFeed(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	categories := c.QueryArray("category")
	articles, err := h.articleService.GetFeed(c.Request.Context(), userID, categories)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to fetch feed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch articles"})
		return
	}
	c.JSON(http.StatusOK, dto.ToArticleListResponse(articles))
}

// getUserArticles godoc
// @Summary List a user's own articles
// @Tags articles
// @Produce json
// @Param userId path string true "Author User ID"
// @Success 200 {array} dto.ArticleResponse
// @Security BearerAuth
// @Router /articles/user/{userId} [get]
func (h *articleHandler) getUserArticles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	authorID := c.Param("userId")

	articles, err := h.articleService.ListByAuthor(c.Request.Context(), authorID)
	if err != nil {
		logger.Error("Failed to fetch user articles", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch articles"})
		return
	}
	c.JSON(http.StatusOK, dto.ToArticleListResponse(articles))
}

// createArticle godoc
// @Summary Create an article
// @Description Persists a new article authored by the caller.
// @Tags articles
// @Accept json
// @Produce json
// @Param article body dto.CreateArticleRequest true "Article"
// @Success 200 {object} dto.ArticleResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Security BearerAuth
// @Router /articles [post]
func (h *articleHandler) createArticle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, toValidationResponse(err))
		return
	}

	article, err := h.articleService.CreateArticle(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Author not found"})
			return
		}
		logger.Error("Failed to create article", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create article"})
		return
	}
	c.JSON(http.StatusOK, dto.ToArticleResponse(article))
}

// editArticle godoc
// @Summary Edit an article
// @Description Partial update; only the author may edit.
// @Tags articles
// @Accept json
// @Produce json
// @Param articleId path string true "Article ID"
// @Param article body dto.UpdateArticleRequest true "Fields to update"
// @Success 200 {object} dto.ArticleResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /articles/{articleId} [put]
func (h *articleHandler) editArticle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, toValidationResponse(err))
		return
	}

	article, err := h.articleService.EditArticle(c.Request.Context(), c.Param("articleId"), userID, req)
	if err != nil {
		h.writeArticleError(c, logger, err, "Failed to update article")
		return
	}
	c.JSON(http.StatusOK, dto.ToArticleResponse(article))
}

// deleteArticle godoc
// @Summary Delete an article
// @Description Only the author may delete.
// @Tags articles
// @Produce json
// @Param articleId path string true "Article ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /articles/{articleId} [delete]
func (h *articleHandler) deleteArticle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.articleService.DeleteArticle(c.Request.Context(), c.Param("articleId"), userID); err != nil {
		h.writeArticleError(c, logger, err, "Failed to delete article")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Article deleted successfully"})
}

// likeArticle godoc
// @Summary Toggle like
// @Description Liking twice reverts to neutral; a like clears a standing dislike.
// @Tags articles
// @Produce json
// @Param articleId path string true "Article ID"
// @Success 200 {object} dto.ReactionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /articles/{articleId}/like [patch]
func (h *articleHandler) likeArticle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	article, alreadyLiked, err := h.articleService.ToggleLike(c.Request.Context(), c.Param("articleId"), userID)
	if err != nil {
		h.writeArticleError(c, logger, err, "Failed to like article")
		return
	}

	msg := "Article liked"
	if alreadyLiked {
		msg = "Article unliked"
	}
	c.JSON(http.StatusOK, dto.ReactionResponse{Message: msg, Data: dto.ToArticleResponse(article)})
}

// dislikeArticle godoc
// @Summary Toggle dislike
// @Description Symmetric to the like toggle for the dislikes set.
// @Tags articles
// @Produce json
// @Param articleId path string true "Article ID"
// @Success 200 {object} dto.ReactionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /articles/{articleId}/dislike [patch]
func (h *articleHandler) dislikeArticle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	article, alreadyDisliked, err := h.articleService.ToggleDislike(c.Request.Context(), c.Param("articleId"), userID)
	if err != nil {
		h.writeArticleError(c, logger, err, "Failed to dislike article")
		return
	}

	msg := "Article disliked"
	if alreadyDisliked {
		msg = "Article undisliked"
	}
	c.JSON(http.StatusOK, dto.ReactionResponse{Message: msg, Data: dto.ToArticleResponse(article)})
}

func (h *articleHandler) writeArticleError(c *gin.Context, logger *slog.Logger, err error, genericMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Article not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Only the author may do this"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		logger.Error(genericMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: genericMsg})
	}
}
