package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"petroserve/internal/handler"
	"petroserve/internal/middleware"
	internalRedis "petroserve/internal/redis"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	AuthHandler      *handler.AuthHandler
	OrderHandler     *handler.OrderHandler
	DeliveryHandler  *handler.DeliveryHandler
	HistoryHandler   *handler.HistoryHandler
	CatalogHandler   *handler.CatalogHandler
	SessionStore     internalRedis.SessionStoreInterface
	IdempotencyStore middleware.IdempotencyStore
	NewRelicApp      *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered. Routes
// under the guarded group require a valid session; requests without one
// are rejected with a redirect hint to /login before any handler runs.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Public routes.
		auth := v1.Group("/auth")
		{
			auth.POST("/login", deps.AuthHandler.Login)
			auth.POST("/signup", deps.AuthHandler.Signup)
			auth.POST("/logout", deps.AuthHandler.Logout)
			auth.GET("/session", deps.AuthHandler.Session)
		}

		v1.GET("/why-choose", deps.CatalogHandler.WhyChoose)

		// Protected routes.
		protected := v1.Group("")
		protected.Use(middleware.SessionGuard(deps.SessionStore))
		{
			protected.GET("/dashboard", deps.CatalogHandler.Dashboard)

			catalog := protected.Group("/catalog")
			{
				catalog.GET("/services", deps.CatalogHandler.Services)
				catalog.GET("/mechanic-services", deps.CatalogHandler.MechanicServices)
				catalog.GET("/time-slots", deps.CatalogHandler.TimeSlots)
				catalog.GET("/faqs", deps.CatalogHandler.FAQs)
				catalog.GET("/testimonials", deps.CatalogHandler.Testimonials)
			}

			orders := protected.Group("/orders")
			if deps.IdempotencyStore != nil {
				orders.Use(middleware.Idempotency(deps.IdempotencyStore))
			}
			{
				orders.POST("/fuel/quote", deps.OrderHandler.QuoteFuel)
				orders.POST("/fuel", deps.OrderHandler.PlaceFuelOrder)
				orders.POST("/mechanic/estimate", deps.OrderHandler.EstimateMechanic)
				orders.POST("/mechanic", deps.OrderHandler.BookMechanic)
			}

			deliveries := protected.Group("/deliveries")
			{
				deliveries.GET("/:id", deps.DeliveryHandler.Track)
				deliveries.GET("/:id/eta", deps.DeliveryHandler.ETA)
				deliveries.POST("/:id/cancel", deps.DeliveryHandler.Cancel)
				deliveries.POST("/:id/advance", deps.DeliveryHandler.Advance)
			}

			history := protected.Group("/history")
			{
				history.GET("", deps.HistoryHandler.List)
				history.GET("/summary", deps.HistoryHandler.Summary)
			}

			protected.POST("/location/detect", deps.OrderHandler.DetectLocation)
		}
	}

	return router
}
