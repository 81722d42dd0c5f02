package routes

import (
	"portfolioledger/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupPortfolioRoutes sets up all routes related to portfolio management
func SetupPortfolioRoutes(r *gin.Engine) {
	portfolios := r.Group("/portfolios")
	{
		// Registry operations
		portfolios.POST("", handlers.CreatePortfolio)
		portfolios.PUT("/:id", handlers.UpdatePortfolio)
		portfolios.POST("/:id/deactivate", handlers.DeactivatePortfolio)
		portfolios.POST("/:id/reactivate", handlers.ReactivatePortfolio)
		portfolios.GET("/user/:address", handlers.ListUserPortfolios)

		// Manager set
		portfolios.GET("/:id/managers", handlers.ListPortfolioManagers)
		portfolios.POST("/:id/managers", handlers.AddManager)
		portfolios.DELETE("/:id/managers/:address", handlers.RemoveManager)

		// Asset allocations
		portfolios.GET("/:id/assets", handlers.ListPortfolioAssets)
		portfolios.POST("/:id/assets", handlers.AddAsset)
		portfolios.DELETE("/:id/assets/:asset_id", handlers.RemoveAsset)
		portfolios.PATCH("/:id/assets/:asset_id", handlers.UpdateAllocation)
		portfolios.PUT("/:id/assets/current", handlers.UpdateCurrentAllocations)

		// Audit trail
		portfolios.GET("/:id/transactions", handlers.ListPortfolioTransactions)
		portfolios.GET("/:id/transactions/count", handlers.GetPortfolioTransactionCount)
		portfolios.POST("/:id/transactions", handlers.RecordTransaction)
		portfolios.POST("/:id/rebalance", handlers.RecordRebalance)
	}
}
