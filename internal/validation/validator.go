package validation

import (
	"fmt"

	"github.com/challenge-dashboard-api/internal/models"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidateChallengeUpdate validates a challenge update request. It returns
// every failed check so the caller can reject the whole request before any
// store write happens.
func ValidateChallengeUpdate(req *models.UpdateContactRequest) []ValidationError {
	var errors []ValidationError

	// Validate status
	if req.Status == "" {
		errors = append(errors, ValidationError{Field: "status", Message: "status is required"})
	} else if !models.ValidStatuses[models.ContactStatus(req.Status)] {
		errors = append(errors, ValidationError{
			Field:   "status",
			Message: "invalid status, must be one of: lead_new, challenge_running, challenge_completed, paid_member",
			Value:   req.Status,
		})
	}

	// Validate current_day
	if req.CurrentDay == nil {
		errors = append(errors, ValidationError{Field: "current_day", Message: "current_day is required"})
	} else if *req.CurrentDay < models.MinChallengeDay || *req.CurrentDay > models.MaxChallengeDay {
		errors = append(errors, ValidationError{
			Field:   "current_day",
			Message: fmt.Sprintf("current_day must be between %d and %d", models.MinChallengeDay, models.MaxChallengeDay),
			Value:   *req.CurrentDay,
		})
	}

	return errors
}
