package services

import (
	"errors"
	"net/http"
)

// DomainError is a typed service error carrying the machine-readable code
// from the participation lifecycle taxonomy and the HTTP status it maps to.
// Handlers surface these verbatim; anything else is an internal error.
type DomainError struct {
	Code    string
	Status  int
	Message string
}

func (e *DomainError) Error() string { return e.Message }

var (
	ErrUnauthorized = &DomainError{Code: "Unauthorized", Status: http.StatusUnauthorized, Message: "Authentication required"}
	ErrForbidden    = &DomainError{Code: "Forbidden", Status: http.StatusForbidden, Message: "Insufficient permission for this action"}

	ErrHackathonNotFound    = &DomainError{Code: "NotFound", Status: http.StatusNotFound, Message: "Hackathon not found"}
	ErrTeamNotFound         = &DomainError{Code: "NotFound", Status: http.StatusNotFound, Message: "Team not found"}
	ErrMemberNotFound       = &DomainError{Code: "NotFound", Status: http.StatusNotFound, Message: "Team member not found"}
	ErrRegistrationNotFound = &DomainError{Code: "NotFound", Status: http.StatusNotFound, Message: "Registration not found"}
	ErrSubmissionNotFound   = &DomainError{Code: "NotFound", Status: http.StatusNotFound, Message: "Submission not found"}
	ErrUserNotFound         = &DomainError{Code: "NotFound", Status: http.StatusNotFound, Message: "User not found"}
	ErrJoinCodeNotFound     = &DomainError{Code: "NotFound", Status: http.StatusNotFound, Message: "No team matches this join code"}

	ErrConsentRequired       = &DomainError{Code: "ConsentRequired", Status: http.StatusBadRequest, Message: "Participation consent is required to register"}
	ErrDeadlinePassed        = &DomainError{Code: "DeadlinePassed", Status: http.StatusBadRequest, Message: "The deadline for this action has passed"}
	ErrDuplicateRegistration = &DomainError{Code: "DuplicateRegistration", Status: http.StatusBadRequest, Message: "User is already registered for this hackathon"}
	ErrAlreadyRegistered     = &DomainError{Code: "AlreadyRegistered", Status: http.StatusBadRequest, Message: "User already has a registration for this hackathon"}
	ErrDuplicateSubmission   = &DomainError{Code: "DuplicateSubmission", Status: http.StatusBadRequest, Message: "A submission already exists for this registration"}
	ErrNotRegistered         = &DomainError{Code: "NotRegistered", Status: http.StatusForbidden, Message: "No approved registration for this hackathon"}

	ErrTeamsNotAllowed = &DomainError{Code: "ValidationError", Status: http.StatusBadRequest, Message: "This hackathon does not allow teams"}
	ErrTeamLocked      = &DomainError{Code: "TeamLocked", Status: http.StatusBadRequest, Message: "Team is locked"}
	ErrTeamFull        = &DomainError{Code: "TeamFull", Status: http.StatusBadRequest, Message: "Team has reached the maximum size"}
	ErrAlreadyInvited  = &DomainError{Code: "AlreadyInvited", Status: http.StatusBadRequest, Message: "User has already been invited to this team"}
	ErrAlreadyMember   = &DomainError{Code: "AlreadyMember", Status: http.StatusBadRequest, Message: "User is already a member of this team"}

	ErrInvalidTransition = &DomainError{Code: "InvalidTransition", Status: http.StatusBadRequest, Message: "This state transition is not allowed"}
	ErrRemoveLeader      = &DomainError{Code: "InvalidTransition", Status: http.StatusBadRequest, Message: "Cannot remove the team leader, promote another member first"}
	ErrInviteAnswered    = &DomainError{Code: "InvalidTransition", Status: http.StatusBadRequest, Message: "Invite has already been answered"}

	ErrNotEditable      = &DomainError{Code: "NotEditable", Status: http.StatusBadRequest, Message: "Submission can no longer be edited"}
	ErrSubmissionLocked = &DomainError{Code: "NotEditable", Status: http.StatusBadRequest, Message: "Submission has been locked by an organizer"}
	ErrLateWindowClosed = &DomainError{Code: "LateWindowClosed", Status: http.StatusBadRequest, Message: "The late submission window has closed"}

	ErrNotAssigned = &DomainError{Code: "NotAssigned", Status: http.StatusForbidden, Message: "Judge is not assigned to this hackathon"}

	ErrConflict = &DomainError{Code: "Conflict", Status: http.StatusConflict, Message: "A conflicting write was detected, retry the request"}
)

// ValidationError builds a ValidationError with a request-specific message
func ValidationError(message string) *DomainError {
	return &DomainError{Code: "ValidationError", Status: http.StatusBadRequest, Message: message}
}

// AsDomainError unwraps err into a DomainError when it carries one
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
