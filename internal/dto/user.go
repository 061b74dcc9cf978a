package dto

import (
	"time"

	"github.com/artfeed/backend/internal/core/domain"
)

// UserResponse is the sanitized user representation returned by the API.
// The password hash never leaves the service layer.
type UserResponse struct {
	UserID          string    `json:"userID"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	DOB             string    `json:"dob"`
	Preferences     []string  `json:"preferences"`
	BlockedArticles []string  `json:"blockedArticles"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ToUserResponse converts a domain.User to its API representation.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:          user.UserID,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Email:           user.Email,
		Phone:           user.PhoneNumber,
		DOB:             user.DOB,
		Preferences:     user.Preferences,
		BlockedArticles: user.BlockedArticles,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

// UpdateProfileRequest defines the data allowed for updating a user profile.
// Pointers differentiate omitted fields from zero values.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,min=2,max=20"`
	LastName  *string `json:"lastName" binding:"omitempty,min=2,max=20"`
	Phone     *string `json:"phone" binding:"omitempty,phone10"`
	DOB       *string `json:"dob"`
}

// ChangePasswordRequest carries a password change. The current password is
// re-verified before the new one is stored.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,passwd"`
}

// UpdatePreferencesRequest replaces the user's preference set.
type UpdatePreferencesRequest struct {
	Preferences []string `json:"preferences" binding:"required,min=1"`
}

// BlockArticleRequest adds an article to the user's block list.
type BlockArticleRequest struct {
	ArticleID string `json:"articleId" binding:"required"`
}
