package scores

import (
	"net/http"

	"github.com/Ayush5112006/dduhack-sub002/database"
	"github.com/Ayush5112006/dduhack-sub002/middleware"
	"github.com/Ayush5112006/dduhack-sub002/services"
	"github.com/Ayush5112006/dduhack-sub002/utils/response"

	"github.com/gin-gonic/gin"
)

// SubmitScore records or revises the caller's rubric for a submission
// @Summary Submit a score
// @Description Record a judge's rubric for a submission; resubmitting revises the existing score
// @Tags Scores
// @Accept json
// @Produce json
// @Param request body SubmitScoreRequest true "Rubric"
// @Success 200 {object} models.Score
// @Failure 400,401,403,404 {object} map[string]string
// @Router /scores [post]
// @Security Bearer
func SubmitScore(c *gin.Context) {
	// Step 1: Authenticate the user
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	// Step 2: Parse the request body
	var req SubmitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	// Step 3: Record the score
	score, err := services.NewScoringService(database.DB).
		SubmitScore(req.SubmissionID, user.ID, services.Rubric{
			Innovation:   req.Innovation,
			Technical:    req.Technical,
			Design:       req.Design,
			Impact:       req.Impact,
			Presentation: req.Presentation,
		}, req.Feedback)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, score)
}

// ListScores returns all rubrics recorded for a submission
// @Summary List scores for a submission
// @Tags Scores
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {array} models.Score
// @Failure 401,403,404 {object} map[string]string
// @Router /submissions/{id}/scores [get]
// @Security Bearer
func ListScores(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	svc := services.NewSubmissionService(database.DB)
	if _, err := svc.GetSubmission(c.Param("id"), user); err != nil {
		response.DomainError(c, err)
		return
	}

	scores, err := services.NewScoringService(database.DB).ListScores(c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, scores)
}

// GetAggregate returns the mean of all rubric totals for a submission
// @Summary Get the aggregate score for a submission
// @Description Mean of all recorded rubric totals, recomputed on read
// @Tags Scores
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} AggregateResponse
// @Failure 401,403,404 {object} map[string]string
// @Router /submissions/{id}/aggregate [get]
// @Security Bearer
func GetAggregate(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	if _, err := services.NewSubmissionService(database.DB).GetSubmission(c.Param("id"), user); err != nil {
		response.DomainError(c, err)
		return
	}

	average, count, err := services.NewScoringService(database.DB).AggregateScore(c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, AggregateResponse{
		SubmissionID: c.Param("id"),
		Average:      average,
		ScoreCount:   count,
	})
}

// AssignJudge attaches a judge to a hackathon
// @Summary Assign a judge
// @Description Organizer-only; assigning the same judge twice is a no-op
// @Tags Scores
// @Accept json
// @Produce json
// @Param id path string true "Hackathon ID"
// @Param request body AssignJudgeRequest true "Judge"
// @Success 201 {object} models.JudgeAssignment
// @Failure 400,401,403,404 {object} map[string]string
// @Router /hackathons/{id}/judges [post]
// @Security Bearer
func AssignJudge(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req AssignJudgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	assignment, err := services.NewScoringService(database.DB).
		AssignJudge(c.Param("id"), user, req.JudgeID)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assignment)
}
