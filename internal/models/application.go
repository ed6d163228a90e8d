package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus is the review state of an application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Valid reports whether s is one of the known application statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected:
		return true
	}
	return false
}

// ParseApplicationStatus converts raw input into an ApplicationStatus.
func ParseApplicationStatus(raw string) (ApplicationStatus, error) {
	s := ApplicationStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return s, nil
}

// Application is a candidate's submission to the training program.
type Application struct {
	ID                uuid.UUID         `db:"id"`
	FullName          string            `db:"full_name"`
	Email             string            `db:"email"`
	Whatsapp          string            `db:"whatsapp"`
	Age               string            `db:"age"`
	City              string            `db:"city"`
	HasCodeExperience bool              `db:"has_code_experience"`
	HasComputer       bool              `db:"has_computer"`
	HasInternet       bool              `db:"has_internet"`
	Motivation        string            `db:"motivation"`
	HoursPerWeek      int               `db:"hours_per_week"`
	HowDidYouKnow     string            `db:"how_did_you_know"`
	Status            ApplicationStatus `db:"status"`
	CreatedAt         time.Time         `db:"created_at"`
	UpdatedAt         time.Time         `db:"updated_at"`
}
