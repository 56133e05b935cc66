package models

import (
	"time"
)

// ContactStatus represents a contact's stage in the challenge funnel
type ContactStatus string

const (
	StatusLeadNew            ContactStatus = "lead_new"
	StatusChallengeRunning   ContactStatus = "challenge_running"
	StatusChallengeCompleted ContactStatus = "challenge_completed"
	StatusPaidMember         ContactStatus = "paid_member"
)

// ValidStatuses defines allowed contact statuses
var ValidStatuses = map[ContactStatus]bool{
	StatusLeadNew:            true,
	StatusChallengeRunning:   true,
	StatusChallengeCompleted: true,
	StatusPaidMember:         true,
}

// Challenge day bounds. Day 0 means signed up but not started.
const (
	MinChallengeDay = 0
	MaxChallengeDay = 30
)

// Contact represents a challenge participant. Rows are created by the
// external registration flow; this service reads them and mutates only
// status and current_day.
type Contact struct {
	ID              int64         `json:"id" db:"id"`
	FirstName       string        `json:"first_name" db:"first_name"`
	Email           string        `json:"email" db:"email"`
	Phone           string        `json:"phone" db:"phone"`
	Status          ContactStatus `json:"status" db:"status"`
	CurrentDay      int           `json:"current_day" db:"current_day"`
	ConsentWhatsApp *bool         `json:"consent_whatsapp,omitempty" db:"consent_whatsapp"`
	ConsentEmail    *bool         `json:"consent_email,omitempty" db:"consent_email"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
}

// UpdateContactRequest is the PATCH body for a challenge update.
// CurrentDay is a pointer so day 0 is distinguishable from absent.
type UpdateContactRequest struct {
	Status     string `json:"status"`
	CurrentDay *int   `json:"current_day"`
}

// DeleteOutcome represents the result of a delete request
type DeleteOutcome string

const (
	DeleteConfirmationRequired DeleteOutcome = "confirmation_required"
	DeleteDone                 DeleteOutcome = "deleted"
)
