package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JudgeAssignment grants a judge permission to score submissions of one
// hackathon. Creation is idempotent per (hackathon, judge).
type JudgeAssignment struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	HackathonID string     `gorm:"type:uuid;not null;uniqueIndex:idx_judge_assignments_hackathon_judge;column:hackathon_id" json:"hackathon_id"`
	JudgeID     string     `gorm:"type:uuid;not null;uniqueIndex:idx_judge_assignments_hackathon_judge;column:judge_id" json:"judge_id"`
	Hackathon   *Hackathon `gorm:"foreignKey:HackathonID" json:"-"`
	Judge       *User      `gorm:"foreignKey:JudgeID" json:"judge,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (a *JudgeAssignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
