package services

import (
	"testing"
	"time"

	"github.com/Ayush5112006/dduhack-sub002/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDraft(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	hackathon := createHackathon(t, db, now)
	user := createUser(t, db, "solo@test.io", models.RoleParticipant)
	require.NoError(t, db.Create(&models.Registration{
		HackathonID: hackathon.ID,
		UserID:      user.ID,
		Mode:        models.ModeIndividual,
		Status:      models.RegistrationApproved,
		Consent:     true,
	}).Error)

	svc := NewSubmissionService(db).WithClock(fixedClock(now))

	submission, err := svc.CreateDraft(hackathon.ID, user.ID, DraftInput{
		Title:     "Duck Tracker",
		RepoLink:  "https://example.com/repo",
		TechStack: []string{"go", "postgres"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionDraft, submission.Status)
	require.NotNil(t, submission.UserID)
	assert.Equal(t, user.ID, *submission.UserID)
	assert.Nil(t, submission.TeamID)

	// One submission per owner
	_, err = svc.CreateDraft(hackathon.ID, user.ID, DraftInput{Title: "Second"})
	require.ErrorIs(t, err, ErrDuplicateSubmission)
}

func TestCreateDraftRequiresApprovedRegistration(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	hackathon := createHackathon(t, db, now)
	user := createUser(t, db, "solo@test.io", models.RoleParticipant)

	svc := NewSubmissionService(db).WithClock(fixedClock(now))

	_, err := svc.CreateDraft(hackathon.ID, user.ID, DraftInput{Title: "No Reg"})
	require.ErrorIs(t, err, ErrNotRegistered)

	require.NoError(t, db.Create(&models.Registration{
		HackathonID: hackathon.ID,
		UserID:      user.ID,
		Mode:        models.ModeIndividual,
		Status:      models.RegistrationPending,
		Consent:     true,
	}).Error)

	_, err = svc.CreateDraft(hackathon.ID, user.ID, DraftInput{Title: "Pending Reg"})
	require.ErrorIs(t, err, ErrNotRegistered)
}

func TestUpdateDraft(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	hackathon := createHackathon(t, db, now)
	user := createUser(t, db, "solo@test.io", models.RoleParticipant)
	other := createUser(t, db, "other@test.io", models.RoleParticipant)
	require.NoError(t, db.Create(&models.Registration{
		HackathonID: hackathon.ID,
		UserID:      user.ID,
		Mode:        models.ModeIndividual,
		Status:      models.RegistrationApproved,
		Consent:     true,
	}).Error)

	svc := NewSubmissionService(db).WithClock(fixedClock(now))
	submission, err := svc.CreateDraft(hackathon.ID, user.ID, DraftInput{Title: "Draft"})
	require.NoError(t, err)

	title := "Duck Tracker"
	repo := "https://example.com/repo"
	updated, err := svc.UpdateDraft(submission.ID, user.ID, DraftPatch{Title: &title, RepoLink: &repo})
	require.NoError(t, err)

	var stored models.Submission
	require.NoError(t, db.First(&stored, "id = ?", updated.ID).Error)
	assert.Equal(t, "Duck Tracker", stored.Title)
	assert.Equal(t, repo, stored.RepoLink)

	// Only the owner may edit
	_, err = svc.UpdateDraft(submission.ID, other.ID, DraftPatch{Title: &title})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestFinalizeSubmit(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	hackathon := createHackathon(t, db, now)
	user := createUser(t, db, "solo@test.io", models.RoleParticipant)
	require.NoError(t, db.Create(&models.Registration{
		HackathonID: hackathon.ID,
		UserID:      user.ID,
		Mode:        models.ModeIndividual,
		Status:      models.RegistrationApproved,
		Consent:     true,
	}).Error)

	svc := NewSubmissionService(db).WithClock(fixedClock(now))
	submission, err := svc.CreateDraft(hackathon.ID, user.ID, DraftInput{
		Title:    "Duck Tracker",
		RepoLink: "https://example.com/repo",
	})
	require.NoError(t, err)

	// save_draft leaves the draft editable
	kept, err := svc.Finalize(submission.ID, user.ID, ActionSaveDraft)
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionDraft, kept.Status)

	finalized, err := svc.Finalize(submission.ID, user.ID, ActionSubmit)
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionSubmitted, finalized.Status)
	require.NotNil(t, finalized.SubmittedAt)

	// Submit is one-way
	_, err = svc.Finalize(submission.ID, user.ID, ActionSubmit)
	require.ErrorIs(t, err, ErrNotEditable)

	title := "Changed"
	_, err = svc.UpdateDraft(submission.ID, user.ID, DraftPatch{Title: &title})
	require.ErrorIs(t, err, ErrNotEditable)
}

func TestFinalizeRequiresTitleAndRepo(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	hackathon := createHackathon(t, db, now)
	user := createUser(t, db, "solo@test.io", models.RoleParticipant)
	require.NoError(t, db.Create(&models.Registration{
		HackathonID: hackathon.ID,
		UserID:      user.ID,
		Mode:        models.ModeIndividual,
		Status:      models.RegistrationApproved,
		Consent:     true,
	}).Error)

	svc := NewSubmissionService(db).WithClock(fixedClock(now))
	submission, err := svc.CreateDraft(hackathon.ID, user.ID, DraftInput{Title: "No Link"})
	require.NoError(t, err)

	_, err = svc.Finalize(submission.ID, user.ID, ActionSubmit)
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 400, de.Status)
}

func TestFinalizeLateGraceWindow(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	hackathon := createHackathon(t, db, now)
	user := createUser(t, db, "solo@test.io", models.RoleParticipant)
	require.NoError(t, db.Create(&models.Registration{
		HackathonID: hackathon.ID,
		UserID:      user.ID,
		Mode:        models.ModeIndividual,
		Status:      models.RegistrationApproved,
		Consent:     true,
	}).Error)

	svc := NewSubmissionService(db).WithClock(fixedClock(now))
	submission, err := svc.CreateDraft(hackathon.ID, user.ID, DraftInput{
		Title:    "Duck Tracker",
		RepoLink: "https://example.com/repo",
	})
	require.NoError(t, err)

	// Inside the grace window the submission lands as late
	svc.WithClock(fixedClock(hackathon.EndAt.Add(23 * time.Hour)))
	finalized, err := svc.Finalize(submission.ID, user.ID, ActionSubmit)
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionLate, finalized.Status)
}

func TestFinalizePastGraceWindow(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	hackathon := createHackathon(t, db, now)
	user := createUser(t, db, "solo@test.io", models.RoleParticipant)
	require.NoError(t, db.Create(&models.Registration{
		HackathonID: hackathon.ID,
		UserID:      user.ID,
		Mode:        models.ModeIndividual,
		Status:      models.RegistrationApproved,
		Consent:     true,
	}).Error)

	svc := NewSubmissionService(db).WithClock(fixedClock(now))
	submission, err := svc.CreateDraft(hackathon.ID, user.ID, DraftInput{
		Title:    "Duck Tracker",
		RepoLink: "https://example.com/repo",
	})
	require.NoError(t, err)

	svc.WithClock(fixedClock(hackathon.EndAt.Add(25 * time.Hour)))
	_, err = svc.Finalize(submission.ID, user.ID, ActionSubmit)
	require.ErrorIs(t, err, ErrLateWindowClosed)
}

func TestSetLockBlocksEdits(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	hackathon := createHackathon(t, db, now)
	user := createUser(t, db, "solo@test.io", models.RoleParticipant)
	require.NoError(t, db.Create(&models.Registration{
		HackathonID: hackathon.ID,
		UserID:      user.ID,
		Mode:        models.ModeIndividual,
		Status:      models.RegistrationApproved,
		Consent:     true,
	}).Error)

	svc := NewSubmissionService(db).WithClock(fixedClock(now))
	submission, err := svc.CreateDraft(hackathon.ID, user.ID, DraftInput{
		Title:    "Duck Tracker",
		RepoLink: "https://example.com/repo",
	})
	require.NoError(t, err)

	// Owners cannot lock, only the organizer or an admin
	_, err = svc.SetLock(submission.ID, user, true)
	require.ErrorIs(t, err, ErrForbidden)

	var organizer models.User
	require.NoError(t, db.First(&organizer, "id = ?", hackathon.OrganizerID).Error)
	locked, err := svc.SetLock(submission.ID, &organizer, true)
	require.NoError(t, err)
	assert.True(t, locked.Locked)

	title := "Changed"
	_, err = svc.UpdateDraft(submission.ID, user.ID, DraftPatch{Title: &title})
	require.ErrorIs(t, err, ErrSubmissionLocked)

	_, err = svc.Finalize(submission.ID, user.ID, ActionSubmit)
	require.ErrorIs(t, err, ErrSubmissionLocked)
}

func TestTeamSubmissionOwnership(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	hackathon := createHackathon(t, db, now)
	leader := createUser(t, db, "leader@test.io", models.RoleParticipant)

	teams := NewTeamService(db).WithClock(fixedClock(now))
	team, err := teams.CreateTeam(hackathon.ID, leader.ID, "Rubber Ducks")
	require.NoError(t, err)
	invited, err := teams.InviteMember(team.ID, leader.ID, "mate@test.io")
	require.NoError(t, err)
	_, err = teams.RespondToInvite(team.ID, invited.UserID, invited.UserID, true)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Registration{
		HackathonID: hackathon.ID,
		UserID:      leader.ID,
		Mode:        models.ModeTeam,
		TeamID:      &team.ID,
		Status:      models.RegistrationApproved,
		Consent:     true,
	}).Error)

	svc := NewSubmissionService(db).WithClock(fixedClock(now))
	submission, err := svc.CreateDraft(hackathon.ID, leader.ID, DraftInput{
		Title:    "Duck Tracker",
		RepoLink: "https://example.com/repo",
	})
	require.NoError(t, err)
	require.NotNil(t, submission.TeamID)
	assert.Nil(t, submission.UserID)

	// A plain member can read but not edit
	var mate models.User
	require.NoError(t, db.First(&mate, "id = ?", invited.UserID).Error)
	_, err = svc.GetSubmission(submission.ID, &mate)
	require.NoError(t, err)

	title := "Changed"
	_, err = svc.UpdateDraft(submission.ID, mate.ID, DraftPatch{Title: &title})
	require.ErrorIs(t, err, ErrForbidden)

	// Outsiders cannot read
	outsider := createUser(t, db, "outsider@test.io", models.RoleParticipant)
	_, err = svc.GetSubmission(submission.ID, outsider)
	require.ErrorIs(t, err, ErrForbidden)
}
