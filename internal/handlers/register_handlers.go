package handlers

import (
	"fmt"

	"github.com/pennypilot-app/pennypilot_backend/cmd/docs"
	portssvc "github.com/pennypilot-app/pennypilot_backend/internal/core/ports/services"
	"github.com/pennypilot-app/pennypilot_backend/internal/middleware"
	"github.com/pennypilot-app/pennypilot_backend/pkg/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	// Health check stays outside auth and rate limiting
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	if err := setupAPIRoutes(r, cfg, services); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIRoutes configures the protected /api group.
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("invalid RATE_LIMIT value %q: %w", cfg.RateLimit, err)
	}
	limiterInstance := limiter.New(memory.NewStore(), rate)

	api := r.Group("/api",
		middleware.RateLimit(limiterInstance),
		middleware.AuthMiddleware(services.TokenVerifier),
	)

	RegisterTransactionRoutes(api, services.Transaction)
	RegisterRateRoutes(api, services.Rates)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
