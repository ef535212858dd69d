package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Ayush5112006/dduhack-sub002/config"
	"github.com/Ayush5112006/dduhack-sub002/models"
	"github.com/Ayush5112006/dduhack-sub002/realtime"
	"github.com/Ayush5112006/dduhack-sub002/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Member role actions
const (
	ActionPromote = "promote"
	ActionDemote  = "demote"
	ActionRemove  = "remove"
)

// TeamService owns team creation, invitations, membership state and
// leadership rules. Membership invariants (one leader, size cap, unique
// member rows) are backed by the team_members unique index and conditional
// writes inside transactions.
type TeamService struct {
	db       *gorm.DB
	identity *IdentityService
	notifier Notifier
	now      func() time.Time
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{
		db:       db,
		identity: NewIdentityService(db),
		notifier: DefaultNotifier(),
		now:      time.Now,
	}
}

// WithClock overrides the wall clock, used by deadline tests
func (s *TeamService) WithClock(now func() time.Time) *TeamService {
	s.now = now
	return s
}

// WithNotifier overrides the notifier
func (s *TeamService) WithNotifier(n Notifier) *TeamService {
	s.notifier = n
	return s
}

// CreateTeam creates a team and its leader member row atomically. The leader
// must not already hold a registration for the hackathon and the
// registration deadline must not have passed.
func (s *TeamService) CreateTeam(hackathonID, leaderID, name string) (*models.Team, error) {
	team, err := s.createTeam(s.db, hackathonID, leaderID, name)
	if err != nil {
		return nil, err
	}
	realtime.Publish(realtime.Event{HackathonID: hackathonID, Type: realtime.EventTeamUpdated, Payload: *team})
	return team, nil
}

// createTeam runs against the given handle so team-mode registration can
// enlist it in the same transaction as the registration insert
func (s *TeamService) createTeam(db *gorm.DB, hackathonID, leaderID, name string) (*models.Team, error) {
	hackathon, err := s.fetchHackathon(hackathonID)
	if err != nil {
		return nil, err
	}
	if !hackathon.AllowTeams {
		return nil, ErrTeamsNotAllowed
	}
	if s.now().After(hackathon.RegistrationDeadline) {
		return nil, ErrDeadlinePassed
	}

	var count int64
	if err := db.Model(&models.Registration{}).
		Where("hackathon_id = ? AND user_id = ?", hackathonID, leaderID).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing registration: %w", err)
	}
	if count > 0 {
		return nil, ErrAlreadyRegistered
	}

	team := models.Team{
		HackathonID: hackathonID,
		Name:        name,
		LeaderID:    leaderID,
	}

	// Join code collision retry: regenerate and re-insert on a duplicate hit
	for attempt := 0; ; attempt++ {
		code, err := utils.GenerateJoinCode(config.DefaultJoinCode.Length)
		if err != nil {
			return nil, fmt.Errorf("failed to generate join code: %w", err)
		}
		team.JoinCode = code

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&team).Error; err != nil {
				return err
			}
			leader := models.TeamMember{
				TeamID: team.ID,
				UserID: leaderID,
				Role:   models.MemberRoleLeader,
				Status: models.MemberJoined,
			}
			return tx.Create(&leader).Error
		})
		if err == nil {
			break
		}
		team.ID = ""
		if errors.Is(err, gorm.ErrDuplicatedKey) && attempt < config.DefaultJoinCode.MaxRetries {
			continue
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return &team, nil
}

// InviteMember invites an email address to the team. Only the leader may
// invite; the account is provisioned when the email is unknown.
func (s *TeamService) InviteMember(teamID, callerID, email string) (*models.TeamMember, error) {
	team, hackathon, err := s.fetchTeamWithHackathon(teamID)
	if err != nil {
		return nil, err
	}
	if team.LeaderID != callerID {
		return nil, ErrForbidden
	}
	if team.Locked {
		return nil, ErrTeamLocked
	}

	joined, err := s.joinedCount(s.db, teamID)
	if err != nil {
		return nil, err
	}
	if joined >= int64(hackathon.MaxTeamSize) {
		return nil, ErrTeamFull
	}

	invitee, err := s.identity.FindOrCreateByEmail(email)
	if err != nil {
		return nil, err
	}

	var existing models.TeamMember
	err = s.db.First(&existing, "team_id = ? AND user_id = ?", teamID, invitee.ID).Error
	if err == nil {
		switch existing.Status {
		case models.MemberJoined:
			return nil, ErrAlreadyMember
		case models.MemberDeclined:
			return nil, ErrInviteAnswered
		default:
			return nil, ErrAlreadyInvited
		}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing member: %w", err)
	}

	member := models.TeamMember{
		TeamID: teamID,
		UserID: invitee.ID,
		Role:   models.MemberRoleMember,
		Status: models.MemberInvited,
	}
	if err := s.db.Create(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyInvited
		}
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	notify(s.notifier, invitee.Email, "You have been invited to join "+team.Name,
		fmt.Sprintf("Team %s invited you to compete in %s. Sign in to accept the invitation.", team.Name, hackathon.Title))
	realtime.Publish(realtime.Event{HackathonID: team.HackathonID, Type: realtime.EventTeamUpdated, Payload: member})
	return &member, nil
}

// RespondToInvite accepts or declines the caller's own pending invite.
// Accepting also creates the team-mode registration when absent; this is the
// one place team state and registration state are reconciled transactionally.
func (s *TeamService) RespondToInvite(teamID, callerID, targetUserID string, accept bool) (*models.TeamMember, error) {
	if callerID != targetUserID {
		return nil, ErrForbidden
	}

	team, hackathon, err := s.fetchTeamWithHackathon(teamID)
	if err != nil {
		return nil, err
	}

	var member models.TeamMember
	if err := s.db.First(&member, "team_id = ? AND user_id = ?", teamID, targetUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to fetch member: %w", err)
	}
	if member.Status != models.MemberInvited {
		return nil, ErrInviteAnswered
	}

	newStatus := models.MemberDeclined
	if accept {
		newStatus = models.MemberJoined
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if accept {
			// Lock the team row so concurrent accepts racing on the last
			// open slot serialize before the joined count is taken
			var locked models.Team
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&locked, "id = ?", teamID).Error; err != nil {
				return err
			}
			joined, err := s.joinedCount(tx, teamID)
			if err != nil {
				return err
			}
			if joined >= int64(hackathon.MaxTeamSize) {
				return ErrTeamFull
			}
		}

		// Conditional update so racing accept/decline calls cannot both win
		res := tx.Model(&models.TeamMember{}).
			Where("id = ? AND status = ?", member.ID, models.MemberInvited).
			Update("status", newStatus)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInviteAnswered
		}
		if !accept {
			return nil
		}

		registration := models.Registration{
			HackathonID: team.HackathonID,
			UserID:      targetUserID,
			Mode:        models.ModeTeam,
			TeamID:      &team.ID,
			Status:      models.RegistrationApproved,
			Consent:     true,
		}
		if err := tx.Create(&registration).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		return nil
	})
	if err != nil {
		if de, ok := AsDomainError(err); ok {
			return nil, de
		}
		return nil, fmt.Errorf("failed to answer invite: %w", err)
	}

	member.Status = newStatus
	realtime.Publish(realtime.Event{HackathonID: team.HackathonID, Type: realtime.EventTeamUpdated, Payload: member})
	return &member, nil
}

// ChangeMemberRole lets the current leader promote, demote or remove a
// member. Promote swaps leadership atomically so the team never observably
// has zero or two leaders; removing or plainly demoting the leader is
// rejected.
func (s *TeamService) ChangeMemberRole(teamID, callerID, targetUserID, action string) error {
	team, _, err := s.fetchTeamWithHackathon(teamID)
	if err != nil {
		return err
	}
	if team.LeaderID != callerID {
		return ErrForbidden
	}

	var target models.TeamMember
	if err := s.db.First(&target, "team_id = ? AND user_id = ?", teamID, targetUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to fetch member: %w", err)
	}

	switch action {
	case ActionRemove:
		if target.Role == models.MemberRoleLeader {
			return ErrRemoveLeader
		}
		if err := s.db.Delete(&models.TeamMember{}, "id = ?", target.ID).Error; err != nil {
			return fmt.Errorf("failed to remove member: %w", err)
		}

	case ActionPromote:
		if target.Role == models.MemberRoleLeader {
			return ErrInvalidTransition
		}
		if target.Status != models.MemberJoined {
			return ErrInvalidTransition
		}
		// Atomic leadership swap: the acting leader steps down in the same
		// transaction that promotes the target
		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.TeamMember{}).
				Where("team_id = ? AND user_id = ?", teamID, callerID).
				Update("role", models.MemberRoleMember).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.TeamMember{}).
				Where("id = ?", target.ID).
				Update("role", models.MemberRoleLeader).Error; err != nil {
				return err
			}
			return tx.Model(&models.Team{}).
				Where("id = ?", teamID).
				Update("leader_id", targetUserID).Error
		})
		if err != nil {
			return fmt.Errorf("failed to promote member: %w", err)
		}

	case ActionDemote:
		// A bare demote would leave the team leaderless; leadership only
		// moves through promote's swap
		return ErrInvalidTransition

	default:
		return ValidationError("Unknown role action")
	}

	realtime.Publish(realtime.Event{HackathonID: team.HackathonID, Type: realtime.EventTeamUpdated, Payload: team})
	return nil
}

// JoinByCode joins a team directly with its join code, no invite step. A
// pending invite for the caller is accepted instead of duplicated.
func (s *TeamService) JoinByCode(code, userID string) (*models.TeamMember, error) {
	var team models.Team
	err := s.db.First(&team, "join_code = ?", utils.NormalizeJoinCode(code)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJoinCodeNotFound
		}
		return nil, fmt.Errorf("failed to fetch team: %w", err)
	}

	hackathon, err := s.fetchHackathon(team.HackathonID)
	if err != nil {
		return nil, err
	}
	if s.now().After(hackathon.RegistrationDeadline) {
		return nil, ErrDeadlinePassed
	}
	if team.Locked {
		return nil, ErrTeamLocked
	}

	var existing models.TeamMember
	err = s.db.First(&existing, "team_id = ? AND user_id = ?", team.ID, userID).Error
	if err == nil {
		if existing.Status == models.MemberInvited {
			return s.RespondToInvite(team.ID, userID, userID, true)
		}
		return nil, ErrAlreadyMember
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing member: %w", err)
	}

	member := models.TeamMember{
		TeamID: team.ID,
		UserID: userID,
		Role:   models.MemberRoleMember,
		Status: models.MemberJoined,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Lock the team row so the size check and the member insert are one
		// atomic step under concurrent joins
		var locked models.Team
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&locked, "id = ?", team.ID).Error; err != nil {
			return err
		}
		joined, err := s.joinedCount(tx, team.ID)
		if err != nil {
			return err
		}
		if joined >= int64(hackathon.MaxTeamSize) {
			return ErrTeamFull
		}
		if err := tx.Create(&member).Error; err != nil {
			return err
		}
		registration := models.Registration{
			HackathonID: team.HackathonID,
			UserID:      userID,
			Mode:        models.ModeTeam,
			TeamID:      &team.ID,
			Status:      models.RegistrationApproved,
			Consent:     true,
		}
		if err := tx.Create(&registration).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		return nil
	})
	if err != nil {
		if de, ok := AsDomainError(err); ok {
			return nil, de
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyMember
		}
		return nil, fmt.Errorf("failed to join team: %w", err)
	}

	realtime.Publish(realtime.Event{HackathonID: team.HackathonID, Type: realtime.EventTeamUpdated, Payload: member})
	return &member, nil
}

// GetTeam returns the team with its member rows and users preloaded
func (s *TeamService) GetTeam(teamID string) (*models.Team, error) {
	var team models.Team
	err := s.db.Preload("Members").Preload("Members.User").First(&team, "id = ?", teamID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to fetch team: %w", err)
	}
	return &team, nil
}

func (s *TeamService) fetchHackathon(hackathonID string) (*models.Hackathon, error) {
	var hackathon models.Hackathon
	if err := s.db.First(&hackathon, "id = ?", hackathonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHackathonNotFound
		}
		return nil, fmt.Errorf("failed to fetch hackathon: %w", err)
	}
	return &hackathon, nil
}

func (s *TeamService) fetchTeamWithHackathon(teamID string) (*models.Team, *models.Hackathon, error) {
	var team models.Team
	if err := s.db.First(&team, "id = ?", teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrTeamNotFound
		}
		return nil, nil, fmt.Errorf("failed to fetch team: %w", err)
	}
	hackathon, err := s.fetchHackathon(team.HackathonID)
	if err != nil {
		return nil, nil, err
	}
	return &team, hackathon, nil
}

func (s *TeamService) joinedCount(tx *gorm.DB, teamID string) (int64, error) {
	var count int64
	err := tx.Model(&models.TeamMember{}).
		Where("team_id = ? AND status = ?", teamID, models.MemberJoined).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}
	return count, nil
}
