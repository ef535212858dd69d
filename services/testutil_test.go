package services

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Ayush5112006/dduhack-sub002/database"
	"github.com/Ayush5112006/dduhack-sub002/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a throwaway in-memory database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// newSharedTestDB opens a file-backed database so goroutines in the same
// test observe one shared store. In-memory databases are per-connection,
// which would hide write races.
func newSharedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=busy_timeout(10000)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	user := &models.User{
		Email:     email,
		Firstname: "Test",
		Lastname:  "User",
		Password:  "hashed",
		Role:      role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// createHackathon builds an event that is currently live with an open
// registration deadline, owned by a fresh organizer
func createHackathon(t *testing.T, db *gorm.DB, now time.Time) *models.Hackathon {
	t.Helper()
	organizer := createUser(t, db, "organizer+"+now.Format("150405.000000000")+"@test.io", models.RoleOrganizer)
	hackathon := &models.Hackathon{
		Title:                "Test Hack",
		OrganizerID:          organizer.ID,
		StartAt:              now.Add(-time.Hour),
		EndAt:                now.Add(48 * time.Hour),
		RegistrationDeadline: now.Add(24 * time.Hour),
		MaxTeamSize:          3,
		AllowTeams:           true,
	}
	require.NoError(t, db.Create(hackathon).Error)
	return hackathon
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// recordingNotifier captures sends for assertions. Deliveries happen on
// background goroutines, hence the lock.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []string
}

func (n *recordingNotifier) Send(to, subject, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, to)
	return nil
}

func (n *recordingNotifier) recipients() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.sent...)
}
