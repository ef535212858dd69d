package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Ayush5112006/dduhack-sub002/models"
	"github.com/Ayush5112006/dduhack-sub002/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IdentityService is the single identity-resolution surface the lifecycle
// services consume. Team invitations provision accounts through it so an
// invitee who has never logged in still gets a member row.
type IdentityService struct {
	db *gorm.DB
}

func NewIdentityService(db *gorm.DB) *IdentityService {
	return &IdentityService{db: db}
}

// FindByID resolves a user or returns ErrUserNotFound
func (s *IdentityService) FindByID(userID string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

// FindOrCreateByEmail resolves the account behind an invitation email,
// provisioning a placeholder account when none exists yet. The provisioned
// user claims the account later through the password reset flow.
func (s *IdentityService) FindOrCreateByEmail(email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ValidationError("Email is required")
	}

	var user models.User
	err := s.db.First(&user, "email = ?", email).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	// Random unusable password until the invitee claims the account
	hashed, err := utils.HashPassword(uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder password: %w", err)
	}

	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}

	user = models.User{
		Email:       email,
		Firstname:   name,
		Lastname:    "",
		Password:    hashed,
		Role:        models.RoleParticipant,
		Provisional: true,
	}
	if err := s.db.Create(&user).Error; err != nil {
		// Lost a provisioning race: the other request's row wins
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if ferr := s.db.First(&user, "email = ?", email).Error; ferr == nil {
				return &user, nil
			}
		}
		return nil, fmt.Errorf("failed to provision user: %w", err)
	}
	return &user, nil
}
