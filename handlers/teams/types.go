package teams

// Constants for error messages
const (
	ErrInvalidRequest = "Invalid request data"
)

// CreateTeamRequest model for creating a team
type CreateTeamRequest struct {
	HackathonID string `json:"hackathon_id" binding:"required"`
	Name        string `json:"name" binding:"required,min=2,max=100"`
}

// InviteMemberRequest model for inviting a member by email
type InviteMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// RespondToInviteRequest model for accepting or declining an invite
type RespondToInviteRequest struct {
	Accept *bool `json:"accept" binding:"required"`
}

// ChangeMemberRoleRequest model for leadership and removal actions
type ChangeMemberRoleRequest struct {
	Action string `json:"action" binding:"required,oneof=promote demote remove"`
}

// JoinByCodeRequest model for joining a team with its join code
type JoinByCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
