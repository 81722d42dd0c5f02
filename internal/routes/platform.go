package routes

import (
	"portfolioledger/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupPlatformRoutes sets up all routes related to platform-wide settings
func SetupPlatformRoutes(r *gin.Engine) {
	platform := r.Group("/platform")
	{
		platform.PUT("/fee", handlers.SetPlatformFee)
		platform.PUT("/fee-collector", handlers.SetFeeCollector)
		platform.PUT("/investments-enabled", handlers.SetInvestmentsEnabled)
	}
}
