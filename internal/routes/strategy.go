package routes

import (
	"portfolioledger/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupStrategyRoutes sets up all routes related to the strategy catalog
func SetupStrategyRoutes(r *gin.Engine) {
	strategies := r.Group("/strategies")
	{
		strategies.GET("/active", handlers.ListActiveStrategies)
		strategies.POST("", handlers.CreateStrategy)
		strategies.PUT("/:id", handlers.UpdateStrategy)
		strategies.POST("/:id/deactivate", handlers.DeactivateStrategy)
	}
}
