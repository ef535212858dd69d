package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Ayush5112006/dduhack-sub002/config"
	"github.com/Ayush5112006/dduhack-sub002/metrics"
	"github.com/Ayush5112006/dduhack-sub002/models"
	"github.com/Ayush5112006/dduhack-sub002/realtime"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Finalize actions
const (
	ActionSubmit    = "submit"
	ActionSaveDraft = "save_draft"
)

// DraftInput carries the boundary-validated draft payload
type DraftInput struct {
	Title       string
	Description string
	RepoLink    string
	DemoLink    string
	TechStack   []string
}

// DraftPatch carries partial updates; nil fields are left untouched
type DraftPatch struct {
	Title       *string
	Description *string
	RepoLink    *string
	DemoLink    *string
	TechStack   []string
}

// SubmissionService manages the draft/finalize lifecycle of project
// artifacts. One submission exists per owning registration, enforced by the
// partial unique indexes on (hackathon_id, user_id) and (hackathon_id,
// team_id).
type SubmissionService struct {
	db       *gorm.DB
	notifier Notifier
	now      func() time.Time
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{
		db:       db,
		notifier: DefaultNotifier(),
		now:      time.Now,
	}
}

// WithClock overrides the wall clock, used by deadline tests
func (s *SubmissionService) WithClock(now func() time.Time) *SubmissionService {
	s.now = now
	return s
}

// WithNotifier overrides the notifier
func (s *SubmissionService) WithNotifier(n Notifier) *SubmissionService {
	s.notifier = n
	return s
}

// CreateDraft persists a new draft for the caller's approved registration.
// Team-mode registrations produce a team-owned submission.
func (s *SubmissionService) CreateDraft(hackathonID, userID string, input DraftInput) (*models.Submission, error) {
	var registration models.Registration
	err := s.db.Preload("Hackathon").
		First(&registration, "hackathon_id = ? AND user_id = ?", hackathonID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotRegistered
		}
		return nil, fmt.Errorf("failed to fetch registration: %w", err)
	}
	if registration.Status != models.RegistrationApproved {
		return nil, ErrNotRegistered
	}
	if s.now().After(registration.Hackathon.EndAt) {
		return nil, ErrDeadlinePassed
	}

	submission := models.Submission{
		HackathonID: hackathonID,
		Title:       input.Title,
		Description: input.Description,
		RepoLink:    input.RepoLink,
		DemoLink:    input.DemoLink,
		Status:      models.SubmissionDraft,
	}
	if stack, err := techStackJSON(input.TechStack); err == nil {
		submission.TechStack = stack
	}
	if registration.Mode == models.ModeTeam && registration.TeamID != nil {
		submission.TeamID = registration.TeamID
	} else {
		submission.UserID = &userID
	}

	if err := s.db.Create(&submission).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSubmission
		}
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}
	return &submission, nil
}

// UpdateDraft applies a partial edit. Only the owning user or the owning
// team's leader may edit, only while the submission is an unlocked draft and
// the hackathon has not ended.
func (s *SubmissionService) UpdateDraft(submissionID, callerID string, patch DraftPatch) (*models.Submission, error) {
	submission, hackathon, err := s.fetchWithHackathon(submissionID)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwnership(submission, callerID); err != nil {
		return nil, err
	}
	if submission.Locked {
		return nil, ErrSubmissionLocked
	}
	if submission.Status != models.SubmissionDraft {
		return nil, ErrNotEditable
	}
	if s.now().After(hackathon.EndAt) {
		return nil, ErrDeadlinePassed
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.RepoLink != nil {
		updates["repo_link"] = *patch.RepoLink
	}
	if patch.DemoLink != nil {
		updates["demo_link"] = *patch.DemoLink
	}
	if patch.TechStack != nil {
		if stack, err := techStackJSON(patch.TechStack); err == nil {
			updates["tech_stack"] = stack
		}
	}
	if len(updates) == 0 {
		return submission, nil
	}

	if err := s.db.Model(submission).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update submission: %w", err)
	}
	return submission, nil
}

// Finalize handles the submit/save_draft action. save_draft leaves the
// status untouched. submit is one-way: draft becomes submitted before the
// hackathon ends, late within the grace window, and is refused afterwards.
func (s *SubmissionService) Finalize(submissionID, callerID, action string) (*models.Submission, error) {
	if action != ActionSubmit && action != ActionSaveDraft {
		return nil, ValidationError("Action must be submit or save_draft")
	}

	submission, hackathon, err := s.fetchWithHackathon(submissionID)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwnership(submission, callerID); err != nil {
		return nil, err
	}

	if action == ActionSaveDraft {
		return submission, nil
	}

	if submission.Locked {
		return nil, ErrSubmissionLocked
	}
	if submission.Status != models.SubmissionDraft {
		return nil, ErrNotEditable
	}
	if submission.Title == "" || submission.RepoLink == "" {
		return nil, ValidationError("A title and a primary project link are required to submit")
	}

	now := s.now()
	status := models.SubmissionSubmitted
	if now.After(hackathon.EndAt) {
		if now.After(hackathon.EndAt.Add(config.DefaultSubmissionPolicy.LateGraceWindow)) {
			return nil, ErrLateWindowClosed
		}
		status = models.SubmissionLate
	}

	// Conditional update: racing finalize calls cannot both transition
	res := s.db.Model(&models.Submission{}).
		Where("id = ? AND status = ?", submissionID, models.SubmissionDraft).
		Updates(map[string]interface{}{"status": status, "submitted_at": now})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to finalize submission: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotEditable
	}

	submission.Status = status
	submission.SubmittedAt = &now

	metrics.SubmissionsFinalized.WithLabelValues(hackathon.ID, status).Inc()
	realtime.Publish(realtime.Event{HackathonID: hackathon.ID, Type: realtime.EventSubmissionFinalized, Payload: submission})

	if email, err := s.ownerEmail(submission); err == nil {
		notify(s.notifier, email, "Submission received for "+hackathon.Title,
			fmt.Sprintf("Your project %q was submitted with status %s.", submission.Title, status))
	}

	return submission, nil
}

// GetSubmission returns a submission visible to its owner, team members,
// the organizer, assigned judges and admins
func (s *SubmissionService) GetSubmission(submissionID string, caller *models.User) (*models.Submission, error) {
	submission, hackathon, err := s.fetchWithHackathon(submissionID)
	if err != nil {
		return nil, err
	}

	if caller.Role == models.RoleAdmin || hackathon.OrganizerID == caller.ID {
		return submission, nil
	}
	if err := s.checkMembership(submission, caller.ID); err == nil {
		return submission, nil
	}

	var assigned int64
	s.db.Model(&models.JudgeAssignment{}).
		Where("hackathon_id = ? AND judge_id = ?", hackathon.ID, caller.ID).
		Count(&assigned)
	if assigned > 0 {
		return submission, nil
	}
	return nil, ErrForbidden
}

// SetLock is the organizer override that freezes or reopens a submission
func (s *SubmissionService) SetLock(submissionID string, caller *models.User, locked bool) (*models.Submission, error) {
	submission, hackathon, err := s.fetchWithHackathon(submissionID)
	if err != nil {
		return nil, err
	}
	if caller.Role != models.RoleAdmin && hackathon.OrganizerID != caller.ID {
		return nil, ErrForbidden
	}
	if err := s.db.Model(submission).Update("locked", locked).Error; err != nil {
		return nil, fmt.Errorf("failed to update submission lock: %w", err)
	}
	submission.Locked = locked
	return submission, nil
}

func (s *SubmissionService) fetchWithHackathon(submissionID string) (*models.Submission, *models.Hackathon, error) {
	var submission models.Submission
	if err := s.db.First(&submission, "id = ?", submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrSubmissionNotFound
		}
		return nil, nil, fmt.Errorf("failed to fetch submission: %w", err)
	}
	var hackathon models.Hackathon
	if err := s.db.First(&hackathon, "id = ?", submission.HackathonID).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to fetch hackathon: %w", err)
	}
	return &submission, &hackathon, nil
}

// checkOwnership allows the owning user or the owning team's leader
func (s *SubmissionService) checkOwnership(submission *models.Submission, callerID string) error {
	if submission.UserID != nil {
		if *submission.UserID == callerID {
			return nil
		}
		return ErrForbidden
	}
	if submission.TeamID != nil {
		var team models.Team
		if err := s.db.First(&team, "id = ?", *submission.TeamID).Error; err != nil {
			return fmt.Errorf("failed to fetch team: %w", err)
		}
		if team.LeaderID == callerID {
			return nil
		}
	}
	return ErrForbidden
}

// checkMembership allows the owning user or any joined team member
func (s *SubmissionService) checkMembership(submission *models.Submission, callerID string) error {
	if submission.UserID != nil && *submission.UserID == callerID {
		return nil
	}
	if submission.TeamID != nil {
		var count int64
		s.db.Model(&models.TeamMember{}).
			Where("team_id = ? AND user_id = ? AND status = ?", *submission.TeamID, callerID, models.MemberJoined).
			Count(&count)
		if count > 0 {
			return nil
		}
	}
	return ErrForbidden
}

func (s *SubmissionService) ownerEmail(submission *models.Submission) (string, error) {
	var user models.User
	if submission.UserID != nil {
		if err := s.db.First(&user, "id = ?", *submission.UserID).Error; err != nil {
			return "", err
		}
		return user.Email, nil
	}
	var team models.Team
	if err := s.db.First(&team, "id = ?", *submission.TeamID).Error; err != nil {
		return "", err
	}
	if err := s.db.First(&user, "id = ?", team.LeaderID).Error; err != nil {
		return "", err
	}
	return user.Email, nil
}

func techStackJSON(stack []string) (datatypes.JSON, error) {
	if stack == nil {
		return nil, nil
	}
	b, err := json.Marshal(stack)
	return datatypes.JSON(b), err
}
