package teams

import (
	"github.com/Ayush5112006/dduhack-sub002/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to teams
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	teams := r.Group("/teams")
	teams.Use(middleware.AuthMiddleware())
	{
		teams.POST("/", CreateTeam)
		teams.GET("/:id", GetTeam)
		teams.POST("/join", JoinByCode)

		// Membership routes
		teams.POST("/:id/invite", InviteMember)
		teams.PUT("/:id/members/:user_id", RespondToInvite)
		teams.PUT("/:id/members/:user_id/role", ChangeMemberRole)
	}
}
