package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/pledgerhq/pledger_backend/cmd/docs"
	portssvc "github.com/pledgerhq/pledger_backend/internal/core/ports/services"
	"github.com/pledgerhq/pledger_backend/internal/middleware"
	"github.com/pledgerhq/pledger_backend/internal/platform/config"
	"github.com/pledgerhq/pledger_backend/internal/platform/dedup"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces. Read endpoints share the dedup registry so identical concurrent
// requests collapse into one execution.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	registry *dedup.Registry,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, cfg, registry)
	setupAPIV1Routes(r, cfg, services, registry)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the
// entity-specific route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	registry *dedup.Registry,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerLogoutRoute(v1, cfg, registry)
	registerAccountRoutes(v1, services.Account, registry)
	registerTransactionRoutes(v1, services.Transaction, registry)
	registerCategoryRoutes(v1, services.Category, registry)
	registerObligationRoutes(v1, services.Obligation, registry)
	registerSettingsRoutes(v1, services.Settings, registry)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
