package services

import (
	"testing"
	"time"

	"github.com/Ayush5112006/dduhack-sub002/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnounceWinners(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	hackathon := createHackathon(t, db, now)
	var organizer models.User
	require.NoError(t, db.First(&organizer, "id = ?", hackathon.OrganizerID).Error)

	subs := NewSubmissionService(db).WithClock(fixedClock(now))
	var finalized []*models.Submission
	for _, email := range []string{"one@test.io", "two@test.io"} {
		user := createUser(t, db, email, models.RoleParticipant)
		require.NoError(t, db.Create(&models.Registration{
			HackathonID: hackathon.ID,
			UserID:      user.ID,
			Mode:        models.ModeIndividual,
			Status:      models.RegistrationApproved,
			Consent:     true,
		}).Error)
		submission, err := subs.CreateDraft(hackathon.ID, user.ID, DraftInput{
			Title:    email,
			RepoLink: "https://example.com/repo",
		})
		require.NoError(t, err)
		submission, err = subs.Finalize(submission.ID, user.ID, ActionSubmit)
		require.NoError(t, err)
		finalized = append(finalized, submission)
	}

	svc := NewWinnerService(db)

	winners, err := svc.Announce(hackathon.ID, &organizer, []AnnounceEntry{
		{SubmissionID: finalized[0].ID, Rank: 1, Prize: "Gold"},
		{SubmissionID: finalized[1].ID, Rank: 2},
	})
	require.NoError(t, err)
	require.Len(t, winners, 2)

	// Re-announcing replaces the whole set
	winners, err = svc.Announce(hackathon.ID, &organizer, []AnnounceEntry{
		{SubmissionID: finalized[1].ID, Rank: 1, Prize: "Gold"},
	})
	require.NoError(t, err)
	require.Len(t, winners, 1)

	stored, err := svc.GetWinners(hackathon.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, finalized[1].ID, stored[0].SubmissionID)
	assert.Equal(t, 1, stored[0].Rank)
}

func TestAnnounceValidation(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	hackathon := createHackathon(t, db, now)
	other := createHackathon(t, db, now.Add(time.Second))
	var organizer models.User
	require.NoError(t, db.First(&organizer, "id = ?", hackathon.OrganizerID).Error)

	user := createUser(t, db, "solo@test.io", models.RoleParticipant)
	require.NoError(t, db.Create(&models.Registration{
		HackathonID: hackathon.ID,
		UserID:      user.ID,
		Mode:        models.ModeIndividual,
		Status:      models.RegistrationApproved,
		Consent:     true,
	}).Error)
	submission, err := NewSubmissionService(db).WithClock(fixedClock(now)).
		CreateDraft(hackathon.ID, user.ID, DraftInput{Title: "Duck Tracker", RepoLink: "https://example.com/repo"})
	require.NoError(t, err)

	svc := NewWinnerService(db)
	var de *DomainError

	// Empty entry list
	_, err = svc.Announce(hackathon.ID, &organizer, nil)
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 400, de.Status)

	// Non-positive rank
	_, err = svc.Announce(hackathon.ID, &organizer, []AnnounceEntry{{SubmissionID: submission.ID, Rank: 0}})
	require.ErrorAs(t, err, &de)

	// Duplicate rank
	_, err = svc.Announce(hackathon.ID, &organizer, []AnnounceEntry{
		{SubmissionID: submission.ID, Rank: 1},
		{SubmissionID: submission.ID, Rank: 1},
	})
	require.ErrorAs(t, err, &de)

	// Submission from another hackathon
	var otherOrganizer models.User
	require.NoError(t, db.First(&otherOrganizer, "id = ?", other.OrganizerID).Error)
	_, err = svc.Announce(other.ID, &otherOrganizer, []AnnounceEntry{{SubmissionID: submission.ID, Rank: 1}})
	require.ErrorAs(t, err, &de)

	// Nothing was persisted by the failed attempts
	winners, err := svc.GetWinners(hackathon.ID)
	require.NoError(t, err)
	assert.Empty(t, winners)
}

func TestAnnounceOrganizerOnly(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	hackathon := createHackathon(t, db, now)
	user := createUser(t, db, "solo@test.io", models.RoleParticipant)

	_, err := NewWinnerService(db).Announce(hackathon.ID, user, []AnnounceEntry{{SubmissionID: "x", Rank: 1}})
	require.ErrorIs(t, err, ErrForbidden)
}
