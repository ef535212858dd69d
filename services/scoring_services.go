package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Ayush5112006/dduhack-sub002/config"
	"github.com/Ayush5112006/dduhack-sub002/metrics"
	"github.com/Ayush5112006/dduhack-sub002/models"
	"github.com/Ayush5112006/dduhack-sub002/realtime"
	"github.com/Ayush5112006/dduhack-sub002/utils"

	"gorm.io/gorm"
)

// Rubric carries the five judge dimensions, each within the configured bounds
type Rubric struct {
	Innovation   int
	Technical    int
	Design       int
	Impact       int
	Presentation int
}

// LeaderboardEntry is one row of a hackathon's aggregate standings
type LeaderboardEntry struct {
	SubmissionID string  `json:"submission_id"`
	Title        string  `json:"title"`
	Status       string  `json:"status"`
	Average      float64 `json:"average"`
	JudgeCount   int     `json:"judge_count"`
}

// ScoringService records judge evaluations and computes aggregate scores.
// Scores are upserts keyed by (submission, judge); the displayed aggregate
// is recomputed from the rows on every read, never cached.
type ScoringService struct {
	db *gorm.DB
}

func NewScoringService(db *gorm.DB) *ScoringService {
	return &ScoringService{db: db}
}

// AssignJudge grants a judge scoring rights for a hackathon. Idempotent:
// repeat calls return the existing assignment.
func (s *ScoringService) AssignJudge(hackathonID string, caller *models.User, judgeID string) (*models.JudgeAssignment, error) {
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

	if _, err := NewIdentityService(s.db).FindByID(judgeID); err != nil {
		return nil, err
	}

	assignment := models.JudgeAssignment{HackathonID: hackathonID, JudgeID: judgeID}
	err := s.db.Where("hackathon_id = ? AND judge_id = ?", hackathonID, judgeID).
		FirstOrCreate(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Concurrent assign: the existing row is the outcome we want
			if ferr := s.db.First(&assignment, "hackathon_id = ? AND judge_id = ?", hackathonID, judgeID).Error; ferr == nil {
				return &assignment, nil
			}
		}
		return nil, fmt.Errorf("failed to create judge assignment: %w", err)
	}
	return &assignment, nil
}

// SubmitScore records or revises a judge's evaluation. The total is the mean
// of the rubric values. Revisions are allowed until winners are announced.
func (s *ScoringService) SubmitScore(submissionID, judgeID string, rubric Rubric, feedback string) (*models.Score, error) {
	if err := validateRubric(rubric); err != nil {
		return nil, err
	}

	var submission models.Submission
	if err := s.db.First(&submission, "id = ?", submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to fetch submission: %w", err)
	}

	var assigned int64
	if err := s.db.Model(&models.JudgeAssignment{}).
		Where("hackathon_id = ? AND judge_id = ?", submission.HackathonID, judgeID).
		Count(&assigned).Error; err != nil {
		return nil, fmt.Errorf("failed to check judge assignment: %w", err)
	}
	if assigned == 0 {
		return nil, ErrNotAssigned
	}

	var announced int64
	if err := s.db.Model(&models.Winner{}).
		Where("hackathon_id = ?", submission.HackathonID).
		Count(&announced).Error; err != nil {
		return nil, fmt.Errorf("failed to check winners: %w", err)
	}
	if announced > 0 {
		return nil, ErrInvalidTransition
	}

	total := utils.RubricTotal(rubric.Innovation, rubric.Technical, rubric.Design, rubric.Impact, rubric.Presentation)

	score := models.Score{
		SubmissionID: submissionID,
		JudgeID:      judgeID,
		Innovation:   rubric.Innovation,
		Technical:    rubric.Technical,
		Design:       rubric.Design,
		Impact:       rubric.Impact,
		Presentation: rubric.Presentation,
		Total:        total,
		Feedback:     feedback,
	}

	// Upsert keyed by (submission, judge): first call inserts, later calls
	// overwrite the judge's previous evaluation
	var existing models.Score
	err := s.db.First(&existing, "submission_id = ? AND judge_id = ?", submissionID, judgeID).Error
	switch {
	case err == nil:
		score.ID = existing.ID
		score.CreatedAt = existing.CreatedAt
		if uerr := s.db.Model(&existing).Updates(map[string]interface{}{
			"innovation":   score.Innovation,
			"technical":    score.Technical,
			"design":       score.Design,
			"impact":       score.Impact,
			"presentation": score.Presentation,
			"total":        score.Total,
			"feedback":     score.Feedback,
		}).Error; uerr != nil {
			return nil, fmt.Errorf("failed to revise score: %w", uerr)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if cerr := s.db.Create(&score).Error; cerr != nil {
			if errors.Is(cerr, gorm.ErrDuplicatedKey) {
				return nil, ErrConflict
			}
			return nil, fmt.Errorf("failed to record score: %w", cerr)
		}
	default:
		return nil, fmt.Errorf("failed to fetch score: %w", err)
	}

	metrics.ScoresRecorded.WithLabelValues(submission.HackathonID).Inc()
	realtime.Publish(realtime.Event{HackathonID: submission.HackathonID, Type: realtime.EventScoreRecorded, Payload: score})
	return &score, nil
}

// ListScores returns all judge evaluations for a submission
func (s *ScoringService) ListScores(submissionID string) ([]models.Score, error) {
	var scores []models.Score
	err := s.db.Preload("Judge").
		Where("submission_id = ?", submissionID).
		Order("created_at ASC").
		Find(&scores).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scores: %w", err)
	}
	return scores, nil
}

// AggregateScore computes the displayed score as the mean of judge totals,
// recomputed from the rows on each call
func (s *ScoringService) AggregateScore(submissionID string) (float64, int, error) {
	var totals []float64
	err := s.db.Model(&models.Score{}).
		Where("submission_id = ?", submissionID).
		Pluck("total", &totals).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to fetch score totals: %w", err)
	}
	return utils.Mean(totals), len(totals), nil
}

// Leaderboard ranks a hackathon's submissions by aggregate score
func (s *ScoringService) Leaderboard(hackathonID string) ([]LeaderboardEntry, error) {
	var submissions []models.Submission
	err := s.db.Where("hackathon_id = ? AND status <> ?", hackathonID, models.SubmissionDraft).
		Find(&submissions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch submissions: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(submissions))
	for _, submission := range submissions {
		average, judges, err := s.AggregateScore(submission.ID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, LeaderboardEntry{
			SubmissionID: submission.ID,
			Title:        submission.Title,
			Status:       submission.Status,
			Average:      average,
			JudgeCount:   judges,
		})
	}

	// Highest aggregate first
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Average > entries[j].Average
	})
	return entries, nil
}

func validateRubric(rubric Rubric) error {
	bounds := config.DefaultRubric
	for _, value := range []int{rubric.Innovation, rubric.Technical, rubric.Design, rubric.Impact, rubric.Presentation} {
		if value < bounds.MinValue || value > bounds.MaxValue {
			return ValidationError(fmt.Sprintf("Rubric values must be between %d and %d", bounds.MinValue, bounds.MaxValue))
		}
	}
	return nil
}
