package submissions

// Constants for error messages
const (
	ErrInvalidRequest = "Invalid request data"
)

// CreateDraftRequest model for creating a draft submission
type CreateDraftRequest struct {
	HackathonID string   `json:"hackathon_id" binding:"required"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	RepoLink    string   `json:"repo_link"`
	DemoLink    string   `json:"demo_link"`
	TechStack   []string `json:"tech_stack"`
}

// UpdateDraftRequest model for partial draft edits
type UpdateDraftRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	RepoLink    *string  `json:"repo_link"`
	DemoLink    *string  `json:"demo_link"`
	TechStack   []string `json:"tech_stack"`
}

// FinalizeRequest model for the submit/save_draft action
type FinalizeRequest struct {
	Action string `json:"action" binding:"required,oneof=submit save_draft"`
}

// SetLockRequest model for the organizer lock override
type SetLockRequest struct {
	Locked *bool `json:"locked" binding:"required"`
}
