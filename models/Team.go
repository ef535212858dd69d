package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Team represents a named group sharing one registration and one submission
// within a single hackathon. Join codes are stored uppercase and are unique.
type Team struct {
	ID          string        `gorm:"type:uuid;primaryKey" json:"id"`
	HackathonID string        `gorm:"type:uuid;not null;column:hackathon_id" json:"hackathon_id"`
	Name        string        `gorm:"type:varchar(100);not null" json:"name"`
	JoinCode    string        `gorm:"type:varchar(12);uniqueIndex;not null;column:join_code" json:"join_code"`
	LeaderID    string        `gorm:"type:uuid;not null;column:leader_id" json:"leader_id"`
	Locked      bool          `gorm:"not null;default:false" json:"locked"`
	Hackathon   *Hackathon    `gorm:"foreignKey:HackathonID" json:"-"`
	Members     []*TeamMember `gorm:"foreignKey:TeamID" json:"members,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
