package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Registration modes
const (
	ModeIndividual = "individual"
	ModeTeam       = "team"
)

// Registration statuses
const (
	RegistrationPending  = "pending"
	RegistrationApproved = "approved"
	RegistrationRejected = "rejected"
)

// Registration represents a user's admission record into a hackathon.
// At most one registration exists per (hackathon, user), enforced by the
// composite unique index.
type Registration struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	HackathonID string     `gorm:"type:uuid;not null;uniqueIndex:idx_registrations_hackathon_user;column:hackathon_id" json:"hackathon_id"`
	UserID      string     `gorm:"type:uuid;not null;uniqueIndex:idx_registrations_hackathon_user;column:user_id" json:"user_id"`
	Mode        string     `gorm:"type:varchar(20);not null" json:"mode"`
	TeamID      *string    `gorm:"type:uuid;column:team_id" json:"team_id"`
	Status      string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Consent     bool       `gorm:"not null;default:false" json:"consent"`
	Hackathon   *Hackathon `gorm:"foreignKey:HackathonID" json:"hackathon,omitempty"`
	User        *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Team        *Team      `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (r *Registration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
