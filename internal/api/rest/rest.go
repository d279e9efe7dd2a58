package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes. mutating guards every POST route; it may be nil.
func SetupRoutes(router *gin.Engine, handler Handler, mutating gin.HandlerFunc) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	api := router.Group("/api")
	if mutating != nil {
		api.Use(mutating)
	}
	{
		// Onboarding
		api.POST("/auth-sync", handler.AuthSync)
		api.POST("/update-user-wallet", handler.UpdateUserWallet)
		api.POST("/refresh-user-data", handler.RefreshUserData)

		// Purchase
		api.POST("/purchase-track", handler.PurchaseItem)

		// Issuance
		api.POST("/v1/items/mint", handler.MintItem)
	}

	// Fetched by the mint provider and wallets; not rate limited
	router.GET("/api/v1/metadata/:id", handler.GetMetadata)
}
