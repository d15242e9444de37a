package handlers

import (
	"github.com/SscSPs/exchange_rate_board/cmd/docs"
	portssvc "github.com/SscSPs/exchange_rate_board/internal/core/ports/services"
	"github.com/SscSPs/exchange_rate_board/internal/platform/config"
	"github.com/SscSPs/exchange_rate_board/internal/platform/metrics"
	"github.com/SscSPs/exchange_rate_board/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouteDeps bundles what RegisterRoutes needs besides the engine.
type RouteDeps struct {
	Config    *config.Config
	Services  *portssvc.ServiceContainer
	Formatter utils.RateFormatter
	Metrics   *metrics.Metrics
	// CreateMiddleware guards POST /api/rates (rate limiting).
	CreateMiddleware []gin.HandlerFunc
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(r *gin.Engine, deps RouteDeps) {
	r.GET("/health", getHealth(deps.Services.Health))

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	api := r.Group("/api")
	RegisterExchangeRateRoutes(api, deps.Services.ExchangeRate, deps.Formatter, deps.CreateMiddleware...)

	setupSwaggerRoutes(r, deps.Config)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg == nil || cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
