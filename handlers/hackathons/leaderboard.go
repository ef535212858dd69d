package hackathons

import (
	"net/http"

	"github.com/Ayush5112006/dduhack-sub002/database"
	"github.com/Ayush5112006/dduhack-sub002/services"
	"github.com/Ayush5112006/dduhack-sub002/utils/response"

	"github.com/gin-gonic/gin"
)

// GetLeaderboard returns the hackathon standings ordered by average score
// @Summary Get the leaderboard
// @Description Finalized submissions ranked by the mean of their rubric totals
// @Tags Hackathons
// @Produce json
// @Param id path string true "Hackathon ID"
// @Success 200 {array} services.LeaderboardEntry
// @Failure 404 {object} map[string]string
// @Router /hackathons/{id}/leaderboard [get]
func GetLeaderboard(c *gin.Context) {
	if _, err := services.NewHackathonService(database.DB).Get(c.Param("id")); err != nil {
		response.DomainError(c, err)
		return
	}

	entries, err := services.NewScoringService(database.DB).Leaderboard(c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
