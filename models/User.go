package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles within the platform
const (
	RoleParticipant = "participant"
	RoleOrganizer   = "organizer"
	RoleJudge       = "judge"
	RoleAdmin       = "admin"
)

// User represents an account that can register, lead a team, judge or organize
type User struct {
	ID            string     `gorm:"type:uuid;primaryKey" json:"id"`
	Email         string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Firstname     string     `gorm:"type:varchar(100);not null" json:"firstname"`
	Lastname      string     `gorm:"type:varchar(100);not null" json:"lastname"`
	Password      string     `gorm:"type:varchar(255);not null" json:"-"`
	Role          string     `gorm:"type:varchar(20);not null;default:'participant'" json:"role"`
	Provisional   bool       `gorm:"not null;default:false" json:"provisional"`
	Blocked       bool       `gorm:"not null;default:false" json:"blocked"`
	LastConnected *time.Time `json:"last_connected"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
