package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Winner represents one ranked result of an announced hackathon. Ranks and
// submissions are unique per hackathon; announcing replaces the whole set.
type Winner struct {
	ID           string      `gorm:"type:uuid;primaryKey" json:"id"`
	HackathonID  string      `gorm:"type:uuid;not null;uniqueIndex:idx_winners_hackathon_rank;uniqueIndex:idx_winners_hackathon_submission;column:hackathon_id" json:"hackathon_id"`
	SubmissionID string      `gorm:"type:uuid;not null;uniqueIndex:idx_winners_hackathon_submission;column:submission_id" json:"submission_id"`
	Rank         int         `gorm:"not null;uniqueIndex:idx_winners_hackathon_rank" json:"rank"`
	Prize        string      `gorm:"type:varchar(100)" json:"prize"`
	Submission   *Submission `gorm:"foreignKey:SubmissionID" json:"submission,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

func (w *Winner) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
