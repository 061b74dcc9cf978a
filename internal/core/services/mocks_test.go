package services_test

import (
	"context"

	"github.com/artfeed/backend/internal/core/domain"
	portsrepo "github.com/artfeed/backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// Ensure the mocks satisfy the repository facades.
var (
	_ portsrepo.UserRepositoryFacade    = (*MockUserRepository)(nil)
	_ portsrepo.ArticleRepositoryFacade = (*MockArticleRepository)(nil)
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	args := m.Called(ctx, identifier)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserProfile(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserPassword(ctx context.Context, userID string, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserPreferences(ctx context.Context, userID string, preferences []string) error {
	args := m.Called(ctx, userID, preferences)
	return args.Error(0)
}

func (m *MockUserRepository) AddBlockedArticle(ctx context.Context, userID string, articleID string) error {
	args := m.Called(ctx, userID, articleID)
	return args.Error(0)
}

// --- Mock ArticleRepository ---
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) FindArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	args := m.Called(ctx, articleID)
	var article *domain.Article
	if args.Get(0) != nil {
		article = args.Get(0).(*domain.Article)
	}
	return article, args.Error(1)
}

func (m *MockArticleRepository) FindArticlesByPreference(ctx context.Context, categories []string, excludeAuthorID string, excludeArticleIDs []string) ([]domain.Article, error) {
	args := m.Called(ctx, categories, excludeAuthorID, excludeArticleIDs)
	var articles []domain.Article
	if args.Get(0) != nil {
		articles = args.Get(0).([]domain.Article)
	}
	return articles, args.Error(1)
}

func (m *MockArticleRepository) FindArticlesByAuthor(ctx context.Context, authorID string) ([]domain.Article, error) {
	args := m.Called(ctx, authorID)
	var articles []domain.Article
	if args.Get(0) != nil {
		articles = args.Get(0).([]domain.Article)
	}
	return articles, args.Error(1)
}

func (m *MockArticleRepository) SaveArticle(ctx context.Context, article domain.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) UpdateArticle(ctx context.Context, article domain.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) UpdateArticleReactions(ctx context.Context, article domain.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) DeleteArticle(ctx context.Context, articleID string) error {
	args := m.Called(ctx, articleID)
	return args.Error(0)
}
