package winners

import (
	"github.com/Ayush5112006/dduhack-sub002/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the winner announcement routes
func RegisterRoutes(r *gin.RouterGroup) {
	hackathons := r.Group("/hackathons")
	{
		hackathons.GET("/:id/winners", GetWinners)

		protected := hackathons.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/:id/winners", Announce)
		}
	}
}
