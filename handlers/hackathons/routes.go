package hackathons

import (
	"github.com/Ayush5112006/dduhack-sub002/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the hackathon management routes
func RegisterRoutes(r *gin.RouterGroup) {
	hackathons := r.Group("/hackathons")
	{
		hackathons.GET("/", ListHackathons)
		hackathons.GET("/:id", GetHackathon)
		hackathons.GET("/:id/leaderboard", GetLeaderboard)
		hackathons.GET("/:id/ws", HackathonWebSocket)

		protected := hackathons.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/", CreateHackathon)
			protected.PUT("/:id", UpdateHackathon)
			protected.GET("/:id/export", ExportHackathon)
		}
	}
}
