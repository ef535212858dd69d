package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Submission statuses. draft transitions to submitted or late, both terminal
// for the owner; only an organizer lock/unlock overrides afterwards.
const (
	SubmissionDraft     = "draft"
	SubmissionSubmitted = "submitted"
	SubmissionLate      = "late"
)

// Submission represents the project artifact tied to a registration. Exactly
// one of UserID or TeamID is set depending on the registration mode; the two
// partial composite unique indexes enforce one submission per owner.
type Submission struct {
	ID          string         `gorm:"type:uuid;primaryKey" json:"id"`
	HackathonID string         `gorm:"type:uuid;not null;uniqueIndex:idx_submissions_hackathon_user;uniqueIndex:idx_submissions_hackathon_team;column:hackathon_id" json:"hackathon_id"`
	UserID      *string        `gorm:"type:uuid;uniqueIndex:idx_submissions_hackathon_user;column:user_id" json:"user_id"`
	TeamID      *string        `gorm:"type:uuid;uniqueIndex:idx_submissions_hackathon_team;column:team_id" json:"team_id"`
	Title       string         `gorm:"type:varchar(150)" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	RepoLink    string         `gorm:"type:varchar(255);column:repo_link" json:"repo_link"`
	DemoLink    string         `gorm:"type:varchar(255);column:demo_link" json:"demo_link"`
	TechStack   datatypes.JSON `gorm:"column:tech_stack" json:"tech_stack"`
	Status      string         `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	Locked      bool           `gorm:"not null;default:false" json:"locked"`
	SubmittedAt *time.Time     `gorm:"column:submitted_at" json:"submitted_at"`
	Hackathon   *Hackathon     `gorm:"foreignKey:HackathonID" json:"-"`
	Team        *Team          `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
