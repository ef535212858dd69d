package services

import (
	"fmt"

	"github.com/Ayush5112006/dduhack-sub002/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportService builds the organizer's Excel report of a hackathon:
// one sheet of registrations, one of submissions with aggregate scores.
type ExportService struct {
	db *gorm.DB
}

func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{db: db}
}

// BuildWorkbook assembles the report. The caller owns closing the file.
func (s *ExportService) BuildWorkbook(hackathonID string, caller *models.User) (*excelize.File, error) {
	hackathons := NewHackathonService(s.db)
	hackathon, err := hackathons.Get(hackathonID)
	if err != nil {
		return nil, err
	}
	if caller.Role != models.RoleAdmin && hackathon.OrganizerID != caller.ID {
		return nil, ErrForbidden
	}

	file := excelize.NewFile()

	if err := s.writeRegistrationsSheet(file, hackathonID); err != nil {
		file.Close()
		return nil, err
	}
	if err := s.writeSubmissionsSheet(file, hackathonID); err != nil {
		file.Close()
		return nil, err
	}

	file.DeleteSheet("Sheet1")
	return file, nil
}

func (s *ExportService) writeRegistrationsSheet(file *excelize.File, hackathonID string) error {
	const sheet = "Registrations"
	if _, err := file.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{"Email", "Name", "Mode", "Team", "Status", "Registered At"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue(sheet, cell, header)
	}

	registrations, err := NewRegistrationService(s.db).ListForHackathon(hackathonID)
	if err != nil {
		return err
	}

	for row, registration := range registrations {
		teamName := ""
		if registration.Team != nil {
			teamName = registration.Team.Name
		}
		email, name := "", ""
		if registration.User != nil {
			email = registration.User.Email
			name = registration.User.Firstname + " " + registration.User.Lastname
		}
		values := []interface{}{
			email,
			name,
			registration.Mode,
			teamName,
			registration.Status,
			registration.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			file.SetCellValue(sheet, cell, value)
		}
	}
	return nil
}

func (s *ExportService) writeSubmissionsSheet(file *excelize.File, hackathonID string) error {
	const sheet = "Submissions"
	if _, err := file.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{"Title", "Status", "Repo", "Demo", "Average Score", "Judges"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue(sheet, cell, header)
	}

	var submissions []models.Submission
	if err := s.db.Where("hackathon_id = ?", hackathonID).Find(&submissions).Error; err != nil {
		return fmt.Errorf("failed to fetch submissions: %w", err)
	}

	scoring := NewScoringService(s.db)
	for row, submission := range submissions {
		average, judges, err := scoring.AggregateScore(submission.ID)
		if err != nil {
			return err
		}
		values := []interface{}{
			submission.Title,
			submission.Status,
			submission.RepoLink,
			submission.DemoLink,
			average,
			judges,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			file.SetCellValue(sheet, cell, value)
		}
	}
	return nil
}
