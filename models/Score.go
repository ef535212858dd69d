package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Score represents a single judge's evaluation of a submission. One row per
// (submission, judge); a second submit from the same judge overwrites it.
type Score struct {
	ID           string      `gorm:"type:uuid;primaryKey" json:"id"`
	SubmissionID string      `gorm:"type:uuid;not null;uniqueIndex:idx_scores_submission_judge;column:submission_id" json:"submission_id"`
	JudgeID      string      `gorm:"type:uuid;not null;uniqueIndex:idx_scores_submission_judge;column:judge_id" json:"judge_id"`
	Innovation   int         `gorm:"not null" json:"innovation"`
	Technical    int         `gorm:"not null" json:"technical"`
	Design       int         `gorm:"not null" json:"design"`
	Impact       int         `gorm:"not null" json:"impact"`
	Presentation int         `gorm:"not null" json:"presentation"`
	Total        float64     `gorm:"type:numeric(5,2);not null" json:"total"`
	Feedback     string      `gorm:"type:text" json:"feedback"`
	Submission   *Submission `gorm:"foreignKey:SubmissionID" json:"-"`
	Judge        *User       `gorm:"foreignKey:JudgeID" json:"judge,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (s *Score) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
