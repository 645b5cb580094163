package handlers

import (
	portssvc "github.com/fmpay/fmpay_backend/internal/core/ports/services"
	"github.com/fmpay/fmpay_backend/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/fmpay/fmpay_backend/cmd/docs"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Prometheus exposition endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Registration and payment forms
	if cfg.StaticDir != "" {
		r.Static("/app", cfg.StaticDir)
	}

	// The payment-records API lives at the root, where its clients have
	// always called it.
	root := r.Group("")
	registerLedgerRoutes(root, services.Ledger)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
