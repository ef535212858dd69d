package winners

// Error message constants
const (
	ErrInvalidRequest = "Invalid request"
)

// AnnounceEntryRequest is one ranked placement in an announcement
type AnnounceEntryRequest struct {
	SubmissionID string `json:"submission_id" binding:"required"`
	Rank         int    `json:"rank" binding:"required,min=1"`
	Prize        string `json:"prize"`
}

// AnnounceRequest model for publishing a hackathon's winner set
type AnnounceRequest struct {
	Entries []AnnounceEntryRequest `json:"entries" binding:"required,min=1,dive"`
}
