package services

import (
	"testing"
	"time"

	"github.com/Ayush5112006/dduhack-sub002/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHackathon(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	organizer := createUser(t, db, "organizer@test.io", models.RoleOrganizer)

	svc := NewHackathonService(db).WithClock(fixedClock(now))

	hackathon, err := svc.Create(organizer, HackathonInput{
		Title:                "Winter Hack",
		StartAt:              now.Add(24 * time.Hour),
		EndAt:                now.Add(72 * time.Hour),
		RegistrationDeadline: now.Add(20 * time.Hour),
		AllowTeams:           true,
	})
	require.NoError(t, err)
	assert.Equal(t, organizer.ID, hackathon.OrganizerID)
	assert.Equal(t, 4, hackathon.MaxTeamSize)
	assert.Equal(t, models.HackathonUpcoming, hackathon.Status(now))
}

func TestCreateHackathonParticipantForbidden(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	user := createUser(t, db, "user@test.io", models.RoleParticipant)

	_, err := NewHackathonService(db).WithClock(fixedClock(now)).Create(user, HackathonInput{
		Title:                "Nope",
		StartAt:              now.Add(24 * time.Hour),
		EndAt:                now.Add(72 * time.Hour),
		RegistrationDeadline: now.Add(20 * time.Hour),
	})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestCreateHackathonInvalidWindow(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	organizer := createUser(t, db, "organizer@test.io", models.RoleOrganizer)

	// End before start
	_, err := NewHackathonService(db).WithClock(fixedClock(now)).Create(organizer, HackathonInput{
		Title:                "Backwards",
		StartAt:              now.Add(72 * time.Hour),
		EndAt:                now.Add(24 * time.Hour),
		RegistrationDeadline: now.Add(20 * time.Hour),
	})
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 400, de.Status)
}

func TestUpdateHackathonOnlyUpcoming(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	hackathon := createHackathon(t, db, now) // already live
	var organizer models.User
	require.NoError(t, db.First(&organizer, "id = ?", hackathon.OrganizerID).Error)

	svc := NewHackathonService(db).WithClock(fixedClock(now))
	_, err := svc.Update(hackathon.ID, &organizer, HackathonInput{
		Title:                "Renamed",
		StartAt:              hackathon.StartAt,
		EndAt:                hackathon.EndAt,
		RegistrationDeadline: hackathon.RegistrationDeadline,
		AllowTeams:           true,
	})
	require.ErrorIs(t, err, ErrInvalidTransition)

	// Rewinding the clock before the start makes it editable again
	early := svc.WithClock(fixedClock(hackathon.StartAt.Add(-time.Hour)))
	updated, err := early.Update(hackathon.ID, &organizer, HackathonInput{
		Title:                "Renamed",
		StartAt:              hackathon.StartAt,
		EndAt:                hackathon.EndAt,
		RegistrationDeadline: hackathon.RegistrationDeadline,
		AllowTeams:           true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestHackathonStatusPhases(t *testing.T) {
	now := time.Now()
	hackathon := models.Hackathon{
		StartAt: now.Add(time.Hour),
		EndAt:   now.Add(2 * time.Hour),
	}
	assert.Equal(t, models.HackathonUpcoming, hackathon.Status(now))
	assert.Equal(t, models.HackathonLive, hackathon.Status(now.Add(90*time.Minute)))
	assert.Equal(t, models.HackathonPast, hackathon.Status(now.Add(3*time.Hour)))
}
