package hackathons

import "time"

// Error message constants
const (
	ErrInvalidRequest = "Invalid request"
)

// HackathonRequest model for creating or updating a hackathon
type HackathonRequest struct {
	Title                string    `json:"title" binding:"required"`
	Description          string    `json:"description"`
	StartAt              time.Time `json:"start_at" binding:"required"`
	EndAt                time.Time `json:"end_at" binding:"required"`
	RegistrationDeadline time.Time `json:"registration_deadline" binding:"required"`
	MaxTeamSize          int       `json:"max_team_size"`
	AllowTeams           bool      `json:"allow_teams"`
}
