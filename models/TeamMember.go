package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Team member roles
const (
	MemberRoleLeader = "leader"
	MemberRoleMember = "member"
)

// Team member statuses. invited transitions to joined or declined, both
// terminal. The leader's own row is created directly as joined.
const (
	MemberInvited  = "invited"
	MemberJoined   = "joined"
	MemberDeclined = "declined"
)

// TeamMember represents a user's membership row within a team
type TeamMember struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	TeamID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_team_members_team_user;column:team_id" json:"team_id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_team_members_team_user;column:user_id" json:"user_id"`
	Role      string    `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	Status    string    `gorm:"type:varchar(20);not null;default:'invited'" json:"status"`
	Team      *Team     `gorm:"foreignKey:TeamID" json:"-"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
