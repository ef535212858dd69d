package submissions

import (
	"net/http"

	"github.com/Ayush5112006/dduhack-sub002/database"
	"github.com/Ayush5112006/dduhack-sub002/middleware"
	"github.com/Ayush5112006/dduhack-sub002/services"
	"github.com/Ayush5112006/dduhack-sub002/utils/response"

	"github.com/gin-gonic/gin"
)

// CreateDraft creates a draft submission for the caller's registration
// @Summary Create a draft submission
// @Description Create the draft project artifact for an approved registration
// @Tags Submissions
// @Accept json
// @Produce json
// @Param request body CreateDraftRequest true "Draft payload"
// @Success 201 {object} models.Submission
// @Failure 400,401,403 {object} map[string]string
// @Router /submissions [post]
// @Security Bearer
func CreateDraft(c *gin.Context) {
	// Step 1: Authenticate the user
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	// Step 2: Parse the request body
	var req CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	// Step 3: Create the draft
	submission, err := services.NewSubmissionService(database.DB).
		CreateDraft(req.HackathonID, user.ID, services.DraftInput{
			Title:       req.Title,
			Description: req.Description,
			RepoLink:    req.RepoLink,
			DemoLink:    req.DemoLink,
			TechStack:   req.TechStack,
		})
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, submission)
}

// GetSubmission returns a submission visible to the caller
// @Summary Get a submission
// @Description Get a submission; owner, team members, organizer, assigned judges
// @Tags Submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} models.Submission
// @Failure 401,403,404 {object} map[string]string
// @Router /submissions/{id} [get]
// @Security Bearer
func GetSubmission(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	submission, err := services.NewSubmissionService(database.DB).GetSubmission(c.Param("id"), user)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, submission)
}

// UpdateDraft applies a partial edit to a draft
// @Summary Update a draft submission
// @Description Edit a draft; owner or team leader, before the hackathon ends
// @Tags Submissions
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param request body UpdateDraftRequest true "Fields to update"
// @Success 200 {object} models.Submission
// @Failure 400,401,403,404 {object} map[string]string
// @Router /submissions/{id} [patch]
// @Security Bearer
func UpdateDraft(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	submission, err := services.NewSubmissionService(database.DB).
		UpdateDraft(c.Param("id"), user.ID, services.DraftPatch{
			Title:       req.Title,
			Description: req.Description,
			RepoLink:    req.RepoLink,
			DemoLink:    req.DemoLink,
			TechStack:   req.TechStack,
		})
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, submission)
}

// Finalize submits the project or saves the draft as-is
// @Summary Finalize a submission
// @Description Submit the project (one-way, with a late grace window) or keep the draft
// @Tags Submissions
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param request body FinalizeRequest true "Action"
// @Success 200 {object} map[string]string
// @Failure 400,401,403,404 {object} map[string]string
// @Router /submissions/{id} [put]
// @Security Bearer
func Finalize(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	submission, err := services.NewSubmissionService(database.DB).
		Finalize(c.Param("id"), user.ID, req.Action)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": submission.Status})
}

// SetLock freezes or reopens a submission
// @Summary Lock or unlock a submission
// @Description Organizer override that freezes a submission regardless of status
// @Tags Submissions
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param request body SetLockRequest true "Lock flag"
// @Success 200 {object} models.Submission
// @Failure 400,401,403,404 {object} map[string]string
// @Router /submissions/{id}/lock [put]
// @Security Bearer
func SetLock(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req SetLockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	submission, err := services.NewSubmissionService(database.DB).
		SetLock(c.Param("id"), user, *req.Locked)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, submission)
}
