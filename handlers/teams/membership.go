package teams

import (
	"net/http"

	"github.com/Ayush5112006/dduhack-sub002/database"
	"github.com/Ayush5112006/dduhack-sub002/middleware"
	"github.com/Ayush5112006/dduhack-sub002/services"
	"github.com/Ayush5112006/dduhack-sub002/utils/response"

	"github.com/gin-gonic/gin"
)

// InviteMember invites an email address to the team
// @Summary Invite a member
// @Description Invite a user by email; only the team leader may invite
// @Tags Teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body InviteMemberRequest true "Invitee email"
// @Success 200 {object} models.TeamMember
// @Failure 400,401,403,404 {object} map[string]string
// @Router /teams/{id}/invite [post]
// @Security Bearer
func InviteMember(c *gin.Context) {
	// Step 1: Authenticate the user
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	// Step 2: Parse the request body
	var req InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	// Step 3: Create the invite
	member, err := services.NewTeamService(database.DB).InviteMember(c.Param("id"), user.ID, req.Email)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// RespondToInvite accepts or declines the caller's own invite
// @Summary Respond to an invite
// @Description Accept or decline a pending team invite
// @Tags Teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param user_id path string true "Invited user ID"
// @Param request body RespondToInviteRequest true "Response"
// @Success 200 {object} models.TeamMember
// @Failure 400,401,403,404 {object} map[string]string
// @Router /teams/{id}/members/{user_id} [put]
// @Security Bearer
func RespondToInvite(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req RespondToInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	member, err := services.NewTeamService(database.DB).
		RespondToInvite(c.Param("id"), user.ID, c.Param("user_id"), *req.Accept)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": member.Status})
}

// ChangeMemberRole promotes, demotes or removes a member
// @Summary Change a member's role
// @Description Leadership and removal actions; only the current leader may act
// @Tags Teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param user_id path string true "Target user ID"
// @Param request body ChangeMemberRoleRequest true "Action"
// @Success 204 "No Content"
// @Failure 400,401,403,404 {object} map[string]string
// @Router /teams/{id}/members/{user_id}/role [put]
// @Security Bearer
func ChangeMemberRole(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req ChangeMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	err = services.NewTeamService(database.DB).
		ChangeMemberRole(c.Param("id"), user.ID, c.Param("user_id"), req.Action)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// JoinByCode joins a team directly with its join code
// @Summary Join a team by code
// @Description Join a team using its join code, no invite required
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body JoinByCodeRequest true "Join code"
// @Success 200 {object} models.TeamMember
// @Failure 400,401,404 {object} map[string]string
// @Router /teams/join [post]
// @Security Bearer
func JoinByCode(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req JoinByCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	member, err := services.NewTeamService(database.DB).JoinByCode(req.Code, user.ID)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}
