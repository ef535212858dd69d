package hackathons

import (
	"net/http"

	"github.com/Ayush5112006/dduhack-sub002/database"
	"github.com/Ayush5112006/dduhack-sub002/middleware"
	"github.com/Ayush5112006/dduhack-sub002/services"
	"github.com/Ayush5112006/dduhack-sub002/utils/response"

	"github.com/gin-gonic/gin"
)

// CreateHackathon creates a new hackathon owned by the caller
// @Summary Create a hackathon
// @Description Organizer-only; the time window and registration deadline are validated
// @Tags Hackathons
// @Accept json
// @Produce json
// @Param request body HackathonRequest true "Hackathon"
// @Success 201 {object} models.Hackathon
// @Failure 400,401,403 {object} map[string]string
// @Router /hackathons [post]
// @Security Bearer
func CreateHackathon(c *gin.Context) {
	// Step 1: Authenticate the user
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	// Step 2: Parse the request body
	var req HackathonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	// Step 3: Create the hackathon
	hackathon, err := services.NewHackathonService(database.DB).Create(user, services.HackathonInput{
		Title:                req.Title,
		Description:          req.Description,
		StartAt:              req.StartAt,
		EndAt:                req.EndAt,
		RegistrationDeadline: req.RegistrationDeadline,
		MaxTeamSize:          req.MaxTeamSize,
		AllowTeams:           req.AllowTeams,
	})
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, hackathon)
}

// UpdateHackathon edits an upcoming hackathon
// @Summary Update a hackathon
// @Description Organizer-only; refused once the event is live or past
// @Tags Hackathons
// @Accept json
// @Produce json
// @Param id path string true "Hackathon ID"
// @Param request body HackathonRequest true "Hackathon"
// @Success 200 {object} models.Hackathon
// @Failure 400,401,403,404 {object} map[string]string
// @Router /hackathons/{id} [put]
// @Security Bearer
func UpdateHackathon(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req HackathonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	hackathon, err := services.NewHackathonService(database.DB).Update(c.Param("id"), user, services.HackathonInput{
		Title:                req.Title,
		Description:          req.Description,
		StartAt:              req.StartAt,
		EndAt:                req.EndAt,
		RegistrationDeadline: req.RegistrationDeadline,
		MaxTeamSize:          req.MaxTeamSize,
		AllowTeams:           req.AllowTeams,
	})
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, hackathon)
}

// GetHackathon returns a single hackathon with its derived phase
// @Summary Get a hackathon
// @Tags Hackathons
// @Produce json
// @Param id path string true "Hackathon ID"
// @Success 200 {object} models.Hackathon
// @Failure 404 {object} map[string]string
// @Router /hackathons/{id} [get]
func GetHackathon(c *gin.Context) {
	hackathon, err := services.NewHackathonService(database.DB).Get(c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, hackathon)
}

// ListHackathons returns all hackathons, newest first
// @Summary List hackathons
// @Tags Hackathons
// @Produce json
// @Success 200 {array} models.Hackathon
// @Router /hackathons [get]
func ListHackathons(c *gin.Context) {
	hackathons, err := services.NewHackathonService(database.DB).List()
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, hackathons)
}
