package scores

import (
	"github.com/Ayush5112006/dduhack-sub002/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the judging routes
func RegisterRoutes(r *gin.RouterGroup) {
	scores := r.Group("/scores")
	scores.Use(middleware.AuthMiddleware())
	{
		scores.POST("/", SubmitScore)
	}

	submissions := r.Group("/submissions")
	submissions.Use(middleware.AuthMiddleware())
	{
		submissions.GET("/:id/scores", ListScores)
		submissions.GET("/:id/aggregate", GetAggregate)
	}

	hackathons := r.Group("/hackathons")
	hackathons.Use(middleware.AuthMiddleware())
	{
		hackathons.POST("/:id/judges", AssignJudge)
	}
}
