package registrations

// Constants for error messages
const (
	ErrInvalidRequest = "Invalid request data"
)

// RegisterRequest model for admitting a user into a hackathon
type RegisterRequest struct {
	Mode         string   `json:"mode" binding:"required,oneof=individual team"`
	TeamName     string   `json:"team_name"`
	MemberEmails []string `json:"member_emails"`
	Consent      bool     `json:"consent"`
}

// SetStatusRequest model for organizer moderation of a registration
type SetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

// RegisterResponse returns the created registration identifiers
type RegisterResponse struct {
	RegistrationID string  `json:"registration_id"`
	TeamID         *string `json:"team_id,omitempty"`
	Status         string  `json:"status"`
}
