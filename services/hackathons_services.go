package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Ayush5112006/dduhack-sub002/models"

	"gorm.io/gorm"
)

// HackathonInput carries the boundary-validated hackathon payload
type HackathonInput struct {
	Title                string
	Description          string
	StartAt              time.Time
	EndAt                time.Time
	RegistrationDeadline time.Time
	MaxTeamSize          int
	AllowTeams           bool
}

// HackathonService manages the events themselves. Edits are organizer-only
// and refused once the event is live.
type HackathonService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewHackathonService(db *gorm.DB) *HackathonService {
	return &HackathonService{db: db, now: time.Now}
}

// WithClock overrides the wall clock, used by deadline tests
func (s *HackathonService) WithClock(now func() time.Time) *HackathonService {
	s.now = now
	return s
}

// Create creates a hackathon owned by the calling organizer
func (s *HackathonService) Create(caller *models.User, input HackathonInput) (*models.Hackathon, error) {
	if caller.Role != models.RoleOrganizer && caller.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}
	if err := validateHackathonWindow(input); err != nil {
		return nil, err
	}

	hackathon := models.Hackathon{
		Title:                input.Title,
		Description:          input.Description,
		OrganizerID:          caller.ID,
		StartAt:              input.StartAt,
		EndAt:                input.EndAt,
		RegistrationDeadline: input.RegistrationDeadline,
		MaxTeamSize:          input.MaxTeamSize,
		AllowTeams:           input.AllowTeams,
	}
	if hackathon.MaxTeamSize <= 0 {
		hackathon.MaxTeamSize = 4
	}
	if err := s.db.Create(&hackathon).Error; err != nil {
		return nil, fmt.Errorf("failed to create hackathon: %w", err)
	}
	return &hackathon, nil
}

// Update edits a hackathon before it goes live
func (s *HackathonService) Update(hackathonID string, caller *models.User, input HackathonInput) (*models.Hackathon, error) {
	hackathon, err := s.Get(hackathonID)
	if err != nil {
		return nil, err
	}
	if caller.Role != models.RoleAdmin && hackathon.OrganizerID != caller.ID {
		return nil, ErrForbidden
	}
	if hackathon.Status(s.now()) != models.HackathonUpcoming {
		return nil, ErrInvalidTransition
	}
	if err := validateHackathonWindow(input); err != nil {
		return nil, err
	}
	if input.MaxTeamSize <= 0 {
		input.MaxTeamSize = hackathon.MaxTeamSize
	}

	updates := map[string]interface{}{
		"title":                 input.Title,
		"description":           input.Description,
		"start_at":              input.StartAt,
		"end_at":                input.EndAt,
		"registration_deadline": input.RegistrationDeadline,
		"max_team_size":         input.MaxTeamSize,
		"allow_teams":           input.AllowTeams,
	}
	if err := s.db.Model(hackathon).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update hackathon: %w", err)
	}
	return s.Get(hackathonID)
}

// Get returns one hackathon
func (s *HackathonService) Get(hackathonID string) (*models.Hackathon, error) {
	var hackathon models.Hackathon
	if err := s.db.First(&hackathon, "id = ?", hackathonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHackathonNotFound
		}
		return nil, fmt.Errorf("failed to fetch hackathon: %w", err)
	}
	return &hackathon, nil
}

// List returns all hackathons, newest first
func (s *HackathonService) List() ([]models.Hackathon, error) {
	var hackathons []models.Hackathon
	if err := s.db.Order("start_at DESC").Find(&hackathons).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch hackathons: %w", err)
	}
	return hackathons, nil
}

func validateHackathonWindow(input HackathonInput) error {
	if input.Title == "" {
		return ValidationError("Title is required")
	}
	if !input.EndAt.After(input.StartAt) {
		return ValidationError("End must be after start")
	}
	if input.RegistrationDeadline.After(input.EndAt) {
		return ValidationError("Registration deadline must not be after the end")
	}
	return nil
}
