package registrations

import (
	"github.com/Ayush5112006/dduhack-sub002/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to registrations
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	authed := r.Group("/")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("/hackathons/:id/register", Register)
		authed.GET("/hackathons/:id/registrations", ListForHackathon)
		authed.GET("/registrations/user", ListForUser)
		authed.PUT("/registrations/:id/status", SetStatus)
	}
}
