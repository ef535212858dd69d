package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Ayush5112006/dduhack-sub002/metrics"
	"github.com/Ayush5112006/dduhack-sub002/models"
	"github.com/Ayush5112006/dduhack-sub002/realtime"

	"gorm.io/gorm"
)

// RegisterInput carries the boundary-validated register payload
type RegisterInput struct {
	Mode         string
	TeamName     string
	MemberEmails []string
	Consent      bool
}

// RegistrationService admits users into hackathons, solo or via a team.
// Individual registrations start pending and are approved by an organizer;
// team-path registrations start approved since invitations already establish
// identity. The (hackathon_id, user_id) unique index is the duplicate guard.
type RegistrationService struct {
	db       *gorm.DB
	teams    *TeamService
	notifier Notifier
	now      func() time.Time
}

func NewRegistrationService(db *gorm.DB) *RegistrationService {
	return &RegistrationService{
		db:       db,
		teams:    NewTeamService(db),
		notifier: DefaultNotifier(),
		now:      time.Now,
	}
}

// WithClock overrides the wall clock, used by deadline tests
func (s *RegistrationService) WithClock(now func() time.Time) *RegistrationService {
	s.now = now
	s.teams.WithClock(now)
	return s
}

// WithNotifier overrides the notifier
func (s *RegistrationService) WithNotifier(n Notifier) *RegistrationService {
	s.notifier = n
	s.teams.WithNotifier(n)
	return s
}

// Register admits a user into a hackathon. Team mode creates the team first
// and links it; invitations to the listed emails are best-effort and never
// roll back the registration.
func (s *RegistrationService) Register(hackathonID, userID string, input RegisterInput) (*models.Registration, error) {
	if !input.Consent {
		return nil, ErrConsentRequired
	}
	if input.Mode != models.ModeIndividual && input.Mode != models.ModeTeam {
		return nil, ValidationError("Mode must be individual or team")
	}

	var hackathon models.Hackathon
	if err := s.db.First(&hackathon, "id = ?", hackathonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHackathonNotFound
		}
		return nil, fmt.Errorf("failed to fetch hackathon: %w", err)
	}
	if s.now().After(hackathon.RegistrationDeadline) {
		return nil, ErrDeadlinePassed
	}

	var count int64
	if err := s.db.Model(&models.Registration{}).
		Where("hackathon_id = ? AND user_id = ?", hackathonID, userID).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing registration: %w", err)
	}
	if count > 0 {
		return nil, ErrDuplicateRegistration
	}

	registration := models.Registration{
		HackathonID: hackathonID,
		UserID:      userID,
		Mode:        input.Mode,
		Status:      models.RegistrationPending,
		Consent:     true,
	}

	var team *models.Team
	if input.Mode == models.ModeTeam {
		if input.TeamName == "" {
			return nil, ValidationError("Team name is required for team registration")
		}
		// Team and registration commit together so a losing registration
		// race cannot strand a team with no registration behind it
		err := s.db.Transaction(func(tx *gorm.DB) error {
			created, err := s.teams.createTeam(tx, hackathonID, userID, input.TeamName)
			if err != nil {
				return err
			}
			team = created
			registration.TeamID = &created.ID
			registration.Status = models.RegistrationApproved
			return tx.Create(&registration).Error
		})
		if err != nil {
			if de, ok := AsDomainError(err); ok {
				return nil, de
			}
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrDuplicateRegistration
			}
			return nil, fmt.Errorf("failed to create registration: %w", err)
		}
		realtime.Publish(realtime.Event{HackathonID: hackathonID, Type: realtime.EventTeamUpdated, Payload: *team})
	} else if err := s.db.Create(&registration).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateRegistration
		}
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	if err := s.db.Model(&models.Hackathon{}).
		Where("id = ?", hackathonID).
		Update("participant_count", gorm.Expr("participant_count + 1")).Error; err != nil {
		log.Printf("failed to bump participant count for hackathon %s: %v", hackathonID, err)
	}

	// Invitee provisioning is best-effort: one bad email must not undo
	// the registration
	if team != nil {
		for _, email := range input.MemberEmails {
			if _, err := s.teams.InviteMember(team.ID, userID, email); err != nil {
				log.Printf("failed to invite %s to team %s: %v", email, team.ID, err)
			}
		}
	}

	metrics.RegistrationsCreated.WithLabelValues(hackathonID, input.Mode).Inc()
	realtime.Publish(realtime.Event{HackathonID: hackathonID, Type: realtime.EventRegistrationCreated, Payload: registration})

	if user, err := NewIdentityService(s.db).FindByID(userID); err == nil {
		notify(s.notifier, user.Email, "Registration received for "+hackathon.Title,
			fmt.Sprintf("Your %s registration for %s has been recorded.", input.Mode, hackathon.Title))
	}

	return &registration, nil
}

// ListForUser returns the user's registrations with hackathon and team joins
func (s *RegistrationService) ListForUser(userID string) ([]models.Registration, error) {
	var registrations []models.Registration
	err := s.db.Preload("Hackathon").Preload("Team").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&registrations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch registrations: %w", err)
	}
	return registrations, nil
}

// ListForHackathon returns all registrations of a hackathon with user and
// team joins
func (s *RegistrationService) ListForHackathon(hackathonID string) ([]models.Registration, error) {
	var registrations []models.Registration
	err := s.db.Preload("User").Preload("Team").
		Where("hackathon_id = ?", hackathonID).
		Order("created_at ASC").
		Find(&registrations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch registrations: %w", err)
	}
	return registrations, nil
}

// SetStatus is the organizer moderation write: approve or reject a pending
// registration. Only the hackathon's organizer or an admin may call it.
func (s *RegistrationService) SetStatus(registrationID string, caller *models.User, status string) (*models.Registration, error) {
	if status != models.RegistrationApproved && status != models.RegistrationRejected {
		return nil, ValidationError("Status must be approved or rejected")
	}

	var registration models.Registration
	if err := s.db.Preload("Hackathon").First(&registration, "id = ?", registrationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("failed to fetch registration: %w", err)
	}

	if caller.Role != models.RoleAdmin && registration.Hackathon.OrganizerID != caller.ID {
		return nil, ErrForbidden
	}

	if err := s.db.Model(&registration).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update registration: %w", err)
	}
	registration.Status = status

	realtime.Publish(realtime.Event{HackathonID: registration.HackathonID, Type: realtime.EventRegistrationUpdated, Payload: registration})
	return &registration, nil
}
