package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// QuoteStatus is the processing state of a quote request.
type QuoteStatus string

const (
	QuotePending   QuoteStatus = "pending"
	QuoteApproved  QuoteStatus = "approved"
	QuoteRejected  QuoteStatus = "rejected"
	QuoteCompleted QuoteStatus = "completed"
)

// Valid reports whether s is one of the known quote statuses.
func (s QuoteStatus) Valid() bool {
	switch s {
	case QuotePending, QuoteApproved, QuoteRejected, QuoteCompleted:
		return true
	}
	return false
}

// ParseQuoteStatus converts raw input into a QuoteStatus.
func ParseQuoteStatus(raw string) (QuoteStatus, error) {
	s := QuoteStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return s, nil
}

// Quote is a request for a paid service estimate.
type Quote struct {
	ID          uuid.UUID   `db:"id"`
	FullName    string      `db:"full_name"`
	Email       string      `db:"email"`
	CompanyName *string     `db:"company_name"`
	Phone       string      `db:"phone"`
	ServiceType string      `db:"service_type"`
	Description string      `db:"description"`
	Budget      *float64    `db:"budget"`
	Timeline    *string     `db:"timeline"`
	Status      QuoteStatus `db:"status"`
	AdminNotes  *string     `db:"admin_notes"`
	CreatedAt   time.Time   `db:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at"`
}

// QuotePatch holds the fields of a partial quote update. Nil fields are left unchanged.
type QuotePatch struct {
	FullName    *string
	Email       *string
	CompanyName *string
	Phone       *string
	ServiceType *string
	Description *string
	Budget      *float64
	Timeline    *string
	Status      *QuoteStatus
	AdminNotes  *string
}
