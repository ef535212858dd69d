package services

import (
	"errors"
	"fmt"

	"github.com/Ayush5112006/dduhack-sub002/models"
	"github.com/Ayush5112006/dduhack-sub002/realtime"

	"gorm.io/gorm"
)

// AnnounceEntry is one ranked result in an announce call
type AnnounceEntry struct {
	SubmissionID string
	Rank         int
	Prize        string
}

// WinnerService publishes ranked results. Announce validates every entry
// strictly and replaces the hackathon's whole winner set in one transaction,
// so a re-announcement is never accretive.
type WinnerService struct {
	db       *gorm.DB
	notifier Notifier
}

func NewWinnerService(db *gorm.DB) *WinnerService {
	return &WinnerService{db: db, notifier: DefaultNotifier()}
}

// WithNotifier overrides the notifier
func (s *WinnerService) WithNotifier(n Notifier) *WinnerService {
	s.notifier = n
	return s
}

// Announce replaces the hackathon's winner set. Only the hackathon's
// organizer or an admin may announce. Every submission must belong to the
// hackathon and ranks must be unique positive integers.
func (s *WinnerService) Announce(hackathonID string, caller *models.User, entries []AnnounceEntry) ([]models.Winner, error) {
	var hackathon models.Hackathon
	if err := s.db.First(&hackathon, "id = ?", hackathonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHackathonNotFound
		}
		return nil, fmt.Errorf("failed to fetch hackathon: %w", err)
	}
	if caller.Role != models.RoleAdmin && hackathon.OrganizerID != caller.ID {
		return nil, ErrForbidden
	}
	if len(entries) == 0 {
		return nil, ValidationError("At least one winner entry is required")
	}

	seenRanks := make(map[int]bool, len(entries))
	seenSubmissions := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if entry.Rank <= 0 {
			return nil, ValidationError("Ranks must be positive integers")
		}
		if seenRanks[entry.Rank] {
			return nil, ValidationError(fmt.Sprintf("Rank %d appears more than once", entry.Rank))
		}
		if seenSubmissions[entry.SubmissionID] {
			return nil, ValidationError("A submission appears more than once")
		}
		seenRanks[entry.Rank] = true
		seenSubmissions[entry.SubmissionID] = true

		var count int64
		if err := s.db.Model(&models.Submission{}).
			Where("id = ? AND hackathon_id = ?", entry.SubmissionID, hackathonID).
			Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to validate submission: %w", err)
		}
		if count == 0 {
			return nil, ValidationError(fmt.Sprintf("Submission %s does not belong to this hackathon", entry.SubmissionID))
		}
	}

	winners := make([]models.Winner, 0, len(entries))
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Winner{}, "hackathon_id = ?", hackathonID).Error; err != nil {
			return err
		}
		for _, entry := range entries {
			winner := models.Winner{
				HackathonID:  hackathonID,
				SubmissionID: entry.SubmissionID,
				Rank:         entry.Rank,
				Prize:        entry.Prize,
			}
			if err := tx.Create(&winner).Error; err != nil {
				return err
			}
			winners = append(winners, winner)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to announce winners: %w", err)
	}

	realtime.Publish(realtime.Event{HackathonID: hackathonID, Type: realtime.EventWinnersAnnounced, Payload: winners})

	submissions := NewSubmissionService(s.db)
	for _, winner := range winners {
		var submission models.Submission
		if err := s.db.First(&submission, "id = ?", winner.SubmissionID).Error; err != nil {
			continue
		}
		if email, err := submissions.ownerEmail(&submission); err == nil {
			notify(s.notifier, email, "Results announced for "+hackathon.Title,
				fmt.Sprintf("Your project %q placed rank %d. Congratulations!", submission.Title, winner.Rank))
		}
	}

	return winners, nil
}

// GetWinners returns the announced set joined with its submissions
func (s *WinnerService) GetWinners(hackathonID string) ([]models.Winner, error) {
	var winners []models.Winner
	err := s.db.Preload("Submission").Preload("Submission.Team").
		Where("hackathon_id = ?", hackathonID).
		Order("rank ASC").
		Find(&winners).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch winners: %w", err)
	}
	return winners, nil
}
