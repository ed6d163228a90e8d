package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// TestimonialStatus is the moderation state of a testimonial.
type TestimonialStatus string

const (
	TestimonialPending  TestimonialStatus = "pending"
	TestimonialApproved TestimonialStatus = "approved"
	TestimonialRejected TestimonialStatus = "rejected"
)

// Valid reports whether s is one of the known testimonial statuses.
func (s TestimonialStatus) Valid() bool {
	switch s {
	case TestimonialPending, TestimonialApproved, TestimonialRejected:
		return true
	}
	return false
}

// ParseTestimonialStatus converts raw input into a TestimonialStatus.
func ParseTestimonialStatus(raw string) (TestimonialStatus, error) {
	s := TestimonialStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return s, nil
}

// Rating bounds.
const (
	MinRating = 1.0
	MaxRating = 5.0
)

// ErrRatingOutOfRange is returned for ratings outside [MinRating, MaxRating].
var ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")

// NormalizeRating rejects out of range ratings and snaps the rest to the nearest half point.
// Ties go to the even multiple of one half, so 1.25 becomes 1.0 and 1.75 becomes 2.0.
func NormalizeRating(r float64) (float64, error) {
	if math.IsNaN(r) || r < MinRating || r > MaxRating {
		return 0, ErrRatingOutOfRange
	}
	return math.RoundToEven(r*2) / 2, nil
}

// MediaURLs is stored as a JSONB array.
type MediaURLs []string

// Value implements driver.Valuer.
func (m MediaURLs) Value() (driver.Value, error) {
	if m == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(m))
}

// Scan implements sql.Scanner.
func (m *MediaURLs) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*m = MediaURLs{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("media_urls: unsupported type %T", src)
	}
	var urls []string
	if err := json.Unmarshal(raw, &urls); err != nil {
		return err
	}
	if urls == nil {
		urls = []string{}
	}
	*m = urls
	return nil
}

// Testimonial is public feedback shown on the site once approved.
type Testimonial struct {
	ID        uuid.UUID         `db:"id"`
	Name      string            `db:"name"`
	Role      string            `db:"role"`
	Content   string            `db:"content"`
	Rating    float64           `db:"rating"`
	MediaURLs MediaURLs         `db:"media_urls"`
	Status    TestimonialStatus `db:"status"`
	CreatedAt time.Time         `db:"created_at"`
	UpdatedAt time.Time         `db:"updated_at"`
}

// TestimonialPatch holds the fields of a partial testimonial update.
type TestimonialPatch struct {
	Name      *string
	Role      *string
	Content   *string
	Rating    *float64
	MediaURLs *MediaURLs
	Status    *TestimonialStatus
}
