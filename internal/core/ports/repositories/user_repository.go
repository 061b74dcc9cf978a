package repositories

import (
	"context"

	"github.com/artfeed/backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a specific user by its unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email. Returns nil without error
	// when no user matches.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByIdentifier retrieves a user by email or phone number.
	// Returns nil without error when no user matches.
	FindUserByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUserProfile updates name, phone and dob fields.
	UpdateUserProfile(ctx context.Context, user domain.User) error

	// UpdateUserPassword replaces the stored password hash.
	UpdateUserPassword(ctx context.Context, userID string, passwordHash string) error

	// UpdateUserPreferences replaces the preference set.
	UpdateUserPreferences(ctx context.Context, userID string, preferences []string) error

	// AddBlockedArticle adds an article id to the user's block list.
	AddBlockedArticle(ctx context.Context, userID string, articleID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
