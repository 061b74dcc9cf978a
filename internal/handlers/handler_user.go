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

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{
		userService: us,
	}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("/:userId", h.getUser)
		users.POST("/:userId/block-article", h.blockArticle)
		users.PATCH("/:userId/profile", h.updateProfile)
		users.PATCH("/:userId/password", h.updatePassword)
		users.PATCH("/:userId/preference", h.updatePreferences)
	}
}

// requireSelf ensures the caller acts on their own user record. Returns the
// user id or aborts with 401/403.
func requireSelf(c *gin.Context) (string, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userId")

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Caller user ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	if callerID != userID {
		logger.Warn("User forbidden to act on another user's record",
			slog.String("caller_id", callerID), slog.String("target_id", userID))
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Forbidden"})
		return "", false
	}
	return userID, true
}

// getUser godoc
// @Summary Get a user by ID
// @Description Retrieves the caller's own user record, password hash stripped.
// @Tags users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/{userId} [get]
func (h *userHandler) getUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireSelf(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to get user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve user"})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// blockArticle godoc
// @Summary Block an article
// @Description Adds an article to the caller's block list; it never appears in their feed again.
// @Tags users
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param block body dto.BlockArticleRequest true "Article to block"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/{userId}/block-article [post]
func (h *userHandler) blockArticle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireSelf(c)
	if !ok {
		return
	}

	var req dto.BlockArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, toValidationResponse(err))
		return
	}

	user, err := h.userService.BlockArticle(c.Request.Context(), userID, req.ArticleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Article not found"})
			return
		}
		logger.Error("Failed to block article", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to block article"})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updateProfile godoc
// @Summary Update profile
// @Description Applies a partial update to name, phone and dob.
// @Tags users
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param profile body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Security BearerAuth
// @Router /users/{userId}/profile [patch]
func (h *userHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireSelf(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, toValidationResponse(err))
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to update profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updatePassword godoc
// @Summary Change password
// @Description Verifies the current password before storing the new hash.
// @Tags users
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param password body dto.ChangePasswordRequest true "Password change"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/{userId}/password [patch]
func (h *userHandler) updatePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireSelf(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, toValidationResponse(err))
		return
	}

	err := h.userService.ChangePassword(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Current password is incorrect"})
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to change password", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to change password"})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password updated successfully"})
}

// updatePreferences godoc
// @Summary Replace topic preferences
// @Description Replaces the caller's topic preference set.
// @Tags users
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param preferences body dto.UpdatePreferencesRequest true "New preference set"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Security BearerAuth
// @Router /users/{userId}/preference [patch]
func (h *userHandler) updatePreferences(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireSelf(c)
	if !ok {
		return
	}

	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, toValidationResponse(err))
		return
	}

	user, err := h.userService.UpdatePreferences(c.Request.Context(), userID, req.Preferences)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to update preferences", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update preferences"})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
