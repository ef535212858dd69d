package scores

// Error message constants
const (
	ErrInvalidRequest = "Invalid request"
)

// SubmitScoreRequest model for recording a judge's rubric
type SubmitScoreRequest struct {
	SubmissionID string `json:"submission_id" binding:"required"`
	Innovation   int    `json:"innovation" binding:"required,min=1,max=10"`
	Technical    int    `json:"technical" binding:"required,min=1,max=10"`
	Design       int    `json:"design" binding:"required,min=1,max=10"`
	Impact       int    `json:"impact" binding:"required,min=1,max=10"`
	Presentation int    `json:"presentation" binding:"required,min=1,max=10"`
	Feedback     string `json:"feedback"`
}

// AssignJudgeRequest model for attaching a judge to a hackathon
type AssignJudgeRequest struct {
	JudgeID string `json:"judge_id" binding:"required"`
}

// AggregateResponse is the recomputed-on-read average for a submission
type AggregateResponse struct {
	SubmissionID string  `json:"submission_id"`
	Average      float64 `json:"average"`
	ScoreCount   int     `json:"score_count"`
}
