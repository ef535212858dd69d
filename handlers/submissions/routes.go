package submissions

import (
	"github.com/Ayush5112006/dduhack-sub002/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to submissions
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	submissions := r.Group("/submissions")
	submissions.Use(middleware.AuthMiddleware())
	{
		submissions.POST("/", CreateDraft)
		submissions.GET("/:id", GetSubmission)
		submissions.PATCH("/:id", UpdateDraft)
		submissions.PUT("/:id", Finalize)
		submissions.PUT("/:id/lock", SetLock)
	}
}
