package services

import (
	"sync"
	"testing"
	"time"

	"github.com/Ayush5112006/dduhack-sub002/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIndividual(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	hackathon := createHackathon(t, db, now)
	user := createUser(t, db, "solo@test.io", models.RoleParticipant)

	svc := NewRegistrationService(db).WithClock(fixedClock(now))

	registration, err := svc.Register(hackathon.ID, user.ID, RegisterInput{
		Mode:    models.ModeIndividual,
		Consent: true,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationPending, registration.Status)
	assert.Nil(t, registration.TeamID)

	var updated models.Hackathon
	require.NoError(t, db.First(&updated, "id = ?", hackathon.ID).Error)
	assert.Equal(t, 1, updated.ParticipantCount)
}

func TestRegisterRequiresConsent(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	hackathon := createHackathon(t, db, now)
	user := createUser(t, db, "solo@test.io", models.RoleParticipant)

	_, err := NewRegistrationService(db).WithClock(fixedClock(now)).
		Register(hackathon.ID, user.ID, RegisterInput{Mode: models.ModeIndividual})
	require.ErrorIs(t, err, ErrConsentRequired)
}

func TestRegisterRejectsUnknownMode(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	hackathon := createHackathon(t, db, now)
	user := createUser(t, db, "solo@test.io", models.RoleParticipant)

	_, err := NewRegistrationService(db).WithClock(fixedClock(now)).
		Register(hackathon.ID, user.ID, RegisterInput{Mode: "squad", Consent: true})
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 400, de.Status)
}

func TestRegisterAfterDeadline(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	hackathon := createHackathon(t, db, now)
	user := createUser(t, db, "solo@test.io", models.RoleParticipant)

	late := fixedClock(hackathon.RegistrationDeadline.Add(time.Second))
	_, err := NewRegistrationService(db).WithClock(late).
		Register(hackathon.ID, user.ID, RegisterInput{Mode: models.ModeIndividual, Consent: true})
	require.ErrorIs(t, err, ErrDeadlinePassed)
}

func TestRegisterTwice(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	hackathon := createHackathon(t, db, now)
	user := createUser(t, db, "solo@test.io", models.RoleParticipant)

	svc := NewRegistrationService(db).WithClock(fixedClock(now))
	_, err := svc.Register(hackathon.ID, user.ID, RegisterInput{Mode: models.ModeIndividual, Consent: true})
	require.NoError(t, err)

	_, err = svc.Register(hackathon.ID, user.ID, RegisterInput{Mode: models.ModeTeam, TeamName: "Again", Consent: true})
	require.ErrorIs(t, err, ErrDuplicateRegistration)
}

func TestRegisterTeamMode(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	hackathon := createHackathon(t, db, now)
	user := createUser(t, db, "captain@test.io", models.RoleParticipant)

	notifier := &recordingNotifier{}
	svc := NewRegistrationService(db).WithClock(fixedClock(now)).WithNotifier(notifier)

	registration, err := svc.Register(hackathon.ID, user.ID, RegisterInput{
		Mode:         models.ModeTeam,
		TeamName:     "Rubber Ducks",
		MemberEmails: []string{"mate@test.io"},
		Consent:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationApproved, registration.Status)
	require.NotNil(t, registration.TeamID)

	var team models.Team
	require.NoError(t, db.First(&team, "id = ?", *registration.TeamID).Error)
	assert.Equal(t, user.ID, team.LeaderID)

	// Listed emails get pending invites
	var invite models.TeamMember
	var mate models.User
	require.NoError(t, db.First(&mate, "email = ?", "mate@test.io").Error)
	require.NoError(t, db.First(&invite, "team_id = ? AND user_id = ?", team.ID, mate.ID).Error)
	assert.Equal(t, models.MemberInvited, invite.Status)
}

func TestRegisterTeamModeRequiresName(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	hackathon := createHackathon(t, db, now)
	user := createUser(t, db, "captain@test.io", models.RoleParticipant)

	_, err := NewRegistrationService(db).WithClock(fixedClock(now)).
		Register(hackathon.ID, user.ID, RegisterInput{Mode: models.ModeTeam, Consent: true})
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 400, de.Status)
}

func TestSetStatusModeration(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	hackathon := createHackathon(t, db, now)
	user := createUser(t, db, "solo@test.io", models.RoleParticipant)

	svc := NewRegistrationService(db).WithClock(fixedClock(now))
	registration, err := svc.Register(hackathon.ID, user.ID, RegisterInput{Mode: models.ModeIndividual, Consent: true})
	require.NoError(t, err)

	var organizer models.User
	require.NoError(t, db.First(&organizer, "id = ?", hackathon.OrganizerID).Error)

	updated, err := svc.SetStatus(registration.ID, &organizer, models.RegistrationApproved)
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationApproved, updated.Status)

	// Only approved or rejected are accepted
	_, err = svc.SetStatus(registration.ID, &organizer, "waitlisted")
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 400, de.Status)

	// A random participant cannot moderate
	_, err = svc.SetStatus(registration.ID, user, models.RegistrationRejected)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestRegisterConcurrentDuplicatesCollapse(t *testing.T) {
	db := newSharedTestDB(t)
	now := time.Now()
	hackathon := createHackathon(t, db, now)
	user := createUser(t, db, "racer@test.io", models.RoleParticipant)

	svc := NewRegistrationService(db).WithClock(fixedClock(now)).WithNotifier(&recordingNotifier{})

	const attempts = 4
	start := make(chan struct{})
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = svc.Register(hackathon.ID, user.ID, RegisterInput{
				Mode:    models.ModeIndividual,
				Consent: true,
			})
		}(i)
	}
	close(start)
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrDuplicateRegistration)
		}
	}
	assert.Equal(t, 1, succeeded)

	var count int64
	require.NoError(t, db.Model(&models.Registration{}).
		Where("hackathon_id = ? AND user_id = ?", hackathon.ID, user.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegisterTeamModeConcurrentLeavesNoOrphanTeam(t *testing.T) {
	db := newSharedTestDB(t)
	now := time.Now()
	hackathon := createHackathon(t, db, now)
	user := createUser(t, db, "racer@test.io", models.RoleParticipant)

	svc := NewRegistrationService(db).WithClock(fixedClock(now)).WithNotifier(&recordingNotifier{})

	// Two team registrations race; the loser's team must roll back with
	// its registration instead of surviving unattached
	names := []string{"Alpha Ducks", "Beta Ducks"}
	start := make(chan struct{})
	errs := make([]error, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			<-start
			_, errs[i] = svc.Register(hackathon.ID, user.ID, RegisterInput{
				Mode:     models.ModeTeam,
				TeamName: name,
				Consent:  true,
			})
		}(i, name)
	}
	close(start)
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded)

	var teams []models.Team
	require.NoError(t, db.Where("hackathon_id = ?", hackathon.ID).Find(&teams).Error)
	require.Len(t, teams, 1)

	var registration models.Registration
	require.NoError(t, db.First(&registration, "hackathon_id = ? AND user_id = ?", hackathon.ID, user.ID).Error)
	require.NotNil(t, registration.TeamID)
	assert.Equal(t, teams[0].ID, *registration.TeamID)
}
