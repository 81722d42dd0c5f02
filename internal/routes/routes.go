package routes

import (
	"os"
	"strconv"
	"strings"

	"portfolioledger/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes configured
func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Add health check endpoint
	r.Any("/health", func(c *gin.Context) {
		c.String(200, "ok")
	})

	// Configure CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Allowed origins come from the environment as a comma-separated list
		allowedOriginsStr := os.Getenv("ALLOWED_ORIGINS")
		var allowedOrigins []string

		if allowedOriginsStr != "" {
			origins := strings.Split(allowedOriginsStr, ",")
			for _, o := range origins {
				trimmed := strings.TrimSpace(o)
				if trimmed != "" {
					allowedOrigins = append(allowedOrigins, trimmed)
				}
			}
		}

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, Origin, Cache-Control, X-Requested-With, X-Caller-Address")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

		// Handle preflight requests
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Optional per-IP rate limiting
	if rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64); err == nil && rps > 0 {
		burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
		if err != nil || burst <= 0 {
			burst = int(rps)
			if burst < 1 {
				burst = 1
			}
		}
		r.Use(middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RequestsPerSecond: rps,
			Burst:             burst,
		}))
	}

	// Caller identity is supplied by the upstream authentication layer
	r.Use(middleware.CallerExtractor())

	// Setup routes for each module
	SetupPortfolioRoutes(r)
	SetupStrategyRoutes(r)
	SetupInvestmentRoutes(r)
	SetupPlatformRoutes(r)

	return r
}
