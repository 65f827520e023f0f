package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/promowheel/spinwheel-backend/internal/config"
	"github.com/promowheel/spinwheel-backend/internal/handlers"
	"github.com/promowheel/spinwheel-backend/internal/middleware"
)

// HandlerDependencies holds the handlers wired into the router
type HandlerDependencies struct {
	SpinHandler *handlers.SpinHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Add middleware
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes
	public := router.Group("/api/public")
	{
		public.GET("/campaign/:slug", deps.SpinHandler.GetPublicCampaign)
		public.POST("/spin", deps.SpinHandler.Spin)
	}

	return router
}
