package teams

import (
	"net/http"

	"github.com/Ayush5112006/dduhack-sub002/database"
	"github.com/Ayush5112006/dduhack-sub002/middleware"
	"github.com/Ayush5112006/dduhack-sub002/services"
	"github.com/Ayush5112006/dduhack-sub002/utils/response"

	"github.com/gin-gonic/gin"
)

// CreateTeam creates a team led by the caller
// @Summary Create a team
// @Description Create a team for a hackathon; the caller becomes its leader
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body CreateTeamRequest true "Team details"
// @Success 201 {object} models.Team
// @Failure 400,401,404 {object} map[string]string
// @Router /teams [post]
// @Security Bearer
func CreateTeam(c *gin.Context) {
	// Step 1: Authenticate the user
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	// Step 2: Parse the request body
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	// Step 3: Create the team with the leader member row
	team, err := services.NewTeamService(database.DB).CreateTeam(req.HackathonID, user.ID, req.Name)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetTeam returns a team with its members
// @Summary Get a team
// @Description Get a team with its member rows
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} models.Team
// @Failure 401,404 {object} map[string]string
// @Router /teams/{id} [get]
// @Security Bearer
func GetTeam(c *gin.Context) {
	if _, err := middleware.GetUserFromRequest(c); err != nil {
		return
	}

	team, err := services.NewTeamService(database.DB).GetTeam(c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}
