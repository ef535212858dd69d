package winners

import (
	"net/http"

	"github.com/Ayush5112006/dduhack-sub002/database"
	"github.com/Ayush5112006/dduhack-sub002/middleware"
	"github.com/Ayush5112006/dduhack-sub002/services"
	"github.com/Ayush5112006/dduhack-sub002/utils/response"

	"github.com/gin-gonic/gin"
)

// Announce publishes the ranked winner set for a hackathon
// @Summary Announce winners
// @Description Organizer-only; validates every entry and replaces any previous announcement atomically
// @Tags Winners
// @Accept json
// @Produce json
// @Param id path string true "Hackathon ID"
// @Param request body AnnounceRequest true "Ranked entries"
// @Success 201 {array} models.Winner
// @Failure 400,401,403,404 {object} map[string]string
// @Router /hackathons/{id}/winners [post]
// @Security Bearer
func Announce(c *gin.Context) {
	// Step 1: Authenticate the user
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	// Step 2: Parse the request body
	var req AnnounceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	entries := make([]services.AnnounceEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, services.AnnounceEntry{
			SubmissionID: e.SubmissionID,
			Rank:         e.Rank,
			Prize:        e.Prize,
		})
	}

	// Step 3: Publish the announcement
	result, err := services.NewWinnerService(database.DB).
		Announce(c.Param("id"), user, entries)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetWinners returns the announced winners ordered by rank
// @Summary Get winners
// @Tags Winners
// @Produce json
// @Param id path string true "Hackathon ID"
// @Success 200 {array} models.Winner
// @Failure 404 {object} map[string]string
// @Router /hackathons/{id}/winners [get]
func GetWinners(c *gin.Context) {
	winners, err := services.NewWinnerService(database.DB).GetWinners(c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, winners)
}
