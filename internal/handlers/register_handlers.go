package handlers

import (
	"github.com/artfeed/backend/cmd/docs"
	portssvc "github.com/artfeed/backend/internal/core/ports/services"
	"github.com/artfeed/backend/internal/middleware"
	"github.com/artfeed/backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Protected routes guarded by the access-token middleware
	setupProtectedRoutes(r, services)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupProtectedRoutes guards the article and user route groups with the
// session middleware. The middleware trusts the signed claims; the handlers
// do their own ownership checks.
func setupProtectedRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	protected := r.Group("/", middleware.AuthMiddleware(services.Token))

	registerUserRoutes(protected, services.User)
	registerArticleRoutes(protected, services.Article)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
