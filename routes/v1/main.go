package v1

import (
	"github.com/Ayush5112006/dduhack-sub002/config"
	"github.com/Ayush5112006/dduhack-sub002/handlers/auth"
	"github.com/Ayush5112006/dduhack-sub002/handlers/hackathons"
	"github.com/Ayush5112006/dduhack-sub002/handlers/registrations"
	"github.com/Ayush5112006/dduhack-sub002/handlers/scores"
	"github.com/Ayush5112006/dduhack-sub002/handlers/submissions"
	"github.com/Ayush5112006/dduhack-sub002/handlers/teams"
	"github.com/Ayush5112006/dduhack-sub002/handlers/winners"
	"github.com/Ayush5112006/dduhack-sub002/middleware"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(config.DefaultRateLimit)
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	auth.RegisterRoutes(v1)
	hackathons.RegisterRoutes(v1)
	registrations.RegisterRoutes(v1)
	teams.RegisterRoutes(v1)
	submissions.RegisterRoutes(v1)
	scores.RegisterRoutes(v1)
	winners.RegisterRoutes(v1)

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)
}
