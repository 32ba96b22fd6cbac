package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	consumerRepo "bookwell/database/repository/consumer"
	providerRepo "bookwell/database/repository/provider"
	"bookwell/handlers"
	"bookwell/middleware"
)

// Handlers groups the endpoint handlers and the repositories the auth
// middleware verifies tokens against.
type Handlers struct {
	ConsumerRepo consumerRepo.ConsumerRepository
	ProviderRepo providerRepo.ProviderRepository

	Consumer   *handlers.ConsumerHandler
	Provider   *handlers.ProviderHandler
	Catalog    *handlers.CatalogHandler
	Suggestion *handlers.SuggestionHandler
	Commitment *handlers.CommitmentHandler
	Admin      *handlers.AdminHandler
	Storage    *handlers.StorageHandler
}

// RegisterConsumerRoutes registers consumer account endpoints.
func RegisterConsumerRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/consumers")
	{
		api.POST("/register", h.Consumer.Register)
		api.POST("/login", h.Consumer.Authenticate)

		protected := api.Group("")
		protected.Use(middleware.ConsumerAuth(h.ConsumerRepo))
		protected.GET("/me", h.Consumer.GetProfile)
		protected.PATCH("/me", h.Consumer.UpdateProfile)
		protected.DELETE("/me", h.Consumer.DeleteAccount)
		protected.GET("/me/availability", h.Consumer.GetAvailability)
		protected.PUT("/me/availability", h.Consumer.SetAvailability)
	}
}

// RegisterProviderRoutes registers provider account and schedule endpoints.
func RegisterProviderRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/providers")
	{
		api.POST("/register", h.Provider.Register)
		api.POST("/login", h.Provider.Authenticate)

		protected := api.Group("")
		protected.Use(middleware.ProviderAuth(h.ProviderRepo))
		protected.GET("/me", h.Provider.GetProfile)
		protected.PATCH("/me", h.Provider.UpdateProfile)
		protected.DELETE("/me", h.Provider.DeleteAccount)
		protected.GET("/me/schedule", h.Provider.GetSchedule)
		protected.PUT("/me/schedule", h.Provider.SetSchedule)

		protected.POST("/me/services", h.Catalog.CreateService)
		protected.PATCH("/me/services/:id", h.Catalog.UpdateService)
		protected.DELETE("/me/services/:id", h.Catalog.DeactivateService)
		protected.GET("/me/commitments", h.Commitment.ListForProvider)
		protected.POST("/me/commitments/:id/cancel", h.Commitment.CancelAsProvider)
	}
}

// RegisterCatalogRoutes registers public browsing endpoints. Category
// management sits behind the admin key.
func RegisterCatalogRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/catalog")
	{
		api.GET("/categories", h.Catalog.ListCategories)
		api.GET("/categories/:id/services", h.Catalog.ListByCategory)
		api.GET("/providers/:providerId/services", h.Catalog.ListByProvider)
		api.GET("/services/:id", h.Catalog.GetService)

		admin := api.Group("")
		admin.Use(middleware.AdminAuth())
		admin.POST("/categories", h.Catalog.CreateCategory)
		admin.DELETE("/categories/:id", h.Catalog.DeleteCategory)
	}
}

// RegisterSuggestionRoutes registers the slot-suggestion endpoints.
func RegisterSuggestionRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/suggestions")
	{
		api.Use(middleware.ConsumerAuth(h.ConsumerRepo))
		api.POST("", h.Suggestion.GenerateSuggestions)
		api.GET("/:sessionID", h.Suggestion.GetSession)
	}
}

// RegisterCommitmentRoutes registers the consumer-side commitment
// endpoints.
func RegisterCommitmentRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/commitments")
	{
		api.Use(middleware.ConsumerAuth(h.ConsumerRepo))
		api.POST("", h.Commitment.Create)
		api.GET("", h.Commitment.ListForConsumer)
		api.POST("/:id/confirm", h.Commitment.Confirm)
		api.POST("/:id/cancel", h.Commitment.CancelAsConsumer)
	}
}

// RegisterAdminRoutes registers the analytics endpoints.
func RegisterAdminRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.AdminAuth())
		api.GET("/stats/commitments", h.Admin.CommitmentStats)
		api.GET("/stats/top-services", h.Admin.TopServices)
	}
}

// RegisterStorageRoutes registers the image upload endpoint for providers.
func RegisterStorageRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.ProviderAuth(h.ProviderRepo))
		api.POST("/images", h.Storage.UploadImage)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// Register wires global middleware and every route group onto the router.
func Register(r *gin.Engine, h *Handlers) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterConsumerRoutes(r, h)
	RegisterProviderRoutes(r, h)
	RegisterCatalogRoutes(r, h)
	RegisterSuggestionRoutes(r, h)
	RegisterCommitmentRoutes(r, h)
	RegisterAdminRoutes(r, h)
	RegisterStorageRoutes(r, h)
}
