package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/artfeed/backend/internal/apperrors"
	"github.com/artfeed/backend/internal/core/domain"
	portsrepo "github.com/artfeed/backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure UserRepository implements the ports facade
var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

const userColumns = `user_id, first_name, last_name, email, phone_number, dob, password_hash, preferences, blocked_articles, created_at, updated_at`

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
        INSERT INTO users (user_id, first_name, last_name, email, phone_number, dob, password_hash, preferences, blocked_articles, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		user.UserID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PhoneNumber,
		user.DOB,
		user.PasswordHash,
		user.Preferences,
		user.BlockedArticles,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			// The unique index on email backs the uniqueness invariant even
			// under concurrent registrations.
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	return r.scanOne(ctx, query, userID)
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	return r.scanOne(ctx, query, email)
}

// FindUserByIdentifier matches either the email or the phone number column,
// mirroring the login contract where both identify an account.
func (r *UserRepository) FindUserByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 OR phone_number = $1;`
	return r.scanOne(ctx, query, identifier)
}

func (r *UserRepository) scanOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.UserID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PhoneNumber,
		&user.DOB,
		&user.PasswordHash,
		&user.Preferences,
		&user.BlockedArticles,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Indicate not found explicitly
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) UpdateUserProfile(ctx context.Context, user domain.User) error {
	query := `
        UPDATE users
        SET first_name = $1, last_name = $2, phone_number = $3, dob = $4, updated_at = $5
        WHERE user_id = $6;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		user.FirstName,
		user.LastName,
		user.PhoneNumber,
		user.DOB,
		user.UpdatedAt,
		user.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdateUserPassword(ctx context.Context, userID string, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1, updated_at = now() WHERE user_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdateUserPreferences(ctx context.Context, userID string, preferences []string) error {
	query := `UPDATE users SET preferences = $1, updated_at = now() WHERE user_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, preferences, userID)
	if err != nil {
		return fmt.Errorf("failed to update preferences: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AddBlockedArticle appends to the block list unless the id is already in
// it, keeping the set semantics of the column.
func (r *UserRepository) AddBlockedArticle(ctx context.Context, userID string, articleID string) error {
	query := `
        UPDATE users
        SET blocked_articles = array_append(blocked_articles, $1), updated_at = now()
        WHERE user_id = $2 AND NOT ($1 = ANY(blocked_articles));
    `
	_, err := r.db.Exec(ctx, query, articleID, userID)
	if err != nil {
		return fmt.Errorf("failed to add blocked article: %w", err)
	}
	return nil
}
