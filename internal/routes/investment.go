package routes

import (
	"portfolioledger/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupInvestmentRoutes sets up all routes related to investments and yield claims
func SetupInvestmentRoutes(r *gin.Engine) {
	investments := r.Group("/investments")
	{
		investments.POST("", handlers.CreateInvestment)
		investments.PATCH("/:id/value", handlers.UpdateInvestmentValue)
		investments.POST("/:id/close", handlers.CloseInvestment)
		investments.POST("/:id/claims", handlers.ClaimYield)
		investments.GET("/user/:address", handlers.ListActiveInvestmentsForUser)
		investments.GET("/user/:address/claims", handlers.ListUserYieldClaims)
	}
}
