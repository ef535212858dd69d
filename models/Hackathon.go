package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Derived hackathon statuses
const (
	HackathonUpcoming = "upcoming"
	HackathonLive     = "live"
	HackathonPast     = "past"
)

// Hackathon represents a timed competitive event users register for
type Hackathon struct {
	ID                   string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title                string    `gorm:"type:varchar(100);not null" json:"title"`
	Description          string    `gorm:"type:varchar(255)" json:"description"`
	OrganizerID          string    `gorm:"type:uuid;not null;column:organizer_id" json:"organizer_id"`
	StartAt              time.Time `gorm:"not null;column:start_at" json:"start_at"`
	EndAt                time.Time `gorm:"not null;column:end_at" json:"end_at"`
	RegistrationDeadline time.Time `gorm:"not null;column:registration_deadline" json:"registration_deadline"`
	MaxTeamSize          int       `gorm:"not null;default:4" json:"max_team_size"`
	AllowTeams           bool      `gorm:"not null;default:true" json:"allow_teams"`
	ParticipantCount     int       `gorm:"not null;default:0" json:"participant_count"`
	Organizer            *User     `gorm:"foreignKey:OrganizerID" json:"-"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func (h *Hackathon) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}

// Status derives the lifecycle phase from the event window
func (h *Hackathon) Status(now time.Time) string {
	switch {
	case now.Before(h.StartAt):
		return HackathonUpcoming
	case now.After(h.EndAt):
		return HackathonPast
	default:
		return HackathonLive
	}
}
