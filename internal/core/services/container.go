package services

import (
	portsrepo "github.com/artfeed/backend/internal/core/ports/repositories"
	portssvc "github.com/artfeed/backend/internal/core/ports/services"
	"github.com/artfeed/backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Token = NewTokenService(cfg)
	container.Auth = NewAuthService(repos.UserRepo, container.Token)
	container.User = NewUserService(repos.UserRepo, repos.ArticleRepo)
	container.Article = NewArticleService(repos.ArticleRepo, repos.UserRepo)

	return container
}
