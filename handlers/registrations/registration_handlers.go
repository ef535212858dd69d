package registrations

import (
	"net/http"

	"github.com/Ayush5112006/dduhack-sub002/database"
	"github.com/Ayush5112006/dduhack-sub002/middleware"
	"github.com/Ayush5112006/dduhack-sub002/models"
	"github.com/Ayush5112006/dduhack-sub002/services"
	"github.com/Ayush5112006/dduhack-sub002/utils/response"

	"github.com/gin-gonic/gin"
)

// Register admits the caller into a hackathon
// @Summary Register for a hackathon
// @Description Register solo or create a team and invite members
// @Tags Registrations
// @Accept json
// @Produce json
// @Param id path string true "Hackathon ID"
// @Param request body RegisterRequest true "Registration details"
// @Success 200 {object} RegisterResponse
// @Failure 400,401,404 {object} map[string]string
// @Router /hackathons/{id}/register [post]
// @Security Bearer
func Register(c *gin.Context) {
	// Step 1: Authenticate the user
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	// Step 2: Parse the request body
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	// Step 3: Create the registration
	registration, err := services.NewRegistrationService(database.DB).
		Register(c.Param("id"), user.ID, services.RegisterInput{
			Mode:         req.Mode,
			TeamName:     req.TeamName,
			MemberEmails: req.MemberEmails,
			Consent:      req.Consent,
		})
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, RegisterResponse{
		RegistrationID: registration.ID,
		TeamID:         registration.TeamID,
		Status:         registration.Status,
	})
}

// ListForUser returns the caller's registrations
// @Summary List own registrations
// @Description List the caller's registrations with hackathon and team joins
// @Tags Registrations
// @Produce json
// @Success 200 {array} models.Registration
// @Failure 401 {object} map[string]string
// @Router /registrations/user [get]
// @Security Bearer
func ListForUser(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	registrations, err := services.NewRegistrationService(database.DB).ListForUser(user.ID)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, registrations)
}

// ListForHackathon returns all registrations of a hackathon
// @Summary List hackathon registrations
// @Description List all registrations for a hackathon; organizer or admin only
// @Tags Registrations
// @Produce json
// @Param id path string true "Hackathon ID"
// @Success 200 {array} models.Registration
// @Failure 401,403,404 {object} map[string]string
// @Router /hackathons/{id}/registrations [get]
// @Security Bearer
func ListForHackathon(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	hackathon, err := services.NewHackathonService(database.DB).Get(c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}
	if user.Role != models.RoleAdmin && hackathon.OrganizerID != user.ID {
		response.DomainError(c, services.ErrForbidden)
		return
	}

	registrations, err := services.NewRegistrationService(database.DB).ListForHackathon(hackathon.ID)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, registrations)
}

// SetStatus approves or rejects a pending registration
// @Summary Moderate a registration
// @Description Approve or reject a registration; organizer or admin only
// @Tags Registrations
// @Accept json
// @Produce json
// @Param id path string true "Registration ID"
// @Param request body SetStatusRequest true "New status"
// @Success 200 {object} models.Registration
// @Failure 400,401,403,404 {object} map[string]string
// @Router /registrations/{id}/status [put]
// @Security Bearer
func SetStatus(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	registration, err := services.NewRegistrationService(database.DB).
		SetStatus(c.Param("id"), user, req.Status)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, registration)
}
