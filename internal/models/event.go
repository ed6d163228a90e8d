package models

// Submission kinds published on the event stream.
const (
	KindApplication = "application"
	KindContact     = "contact"
	KindQuote       = "quote"
	KindTestimonial = "testimonial"
)

// SubmissionEvent describes a public submission, published to Kafka after it is stored.
type SubmissionEvent struct {
	EventID    string `json:"event_id"`    // EventID is a unique identifier for the event.
	Kind       string `json:"kind"`        // Kind is the submitted resource type, e.g. "application".
	ResourceID string `json:"resource_id"` // ResourceID is the stored document identifier.
	Email      string `json:"email"`       // Email of the submitter, empty for testimonials.
	Timestamp  int64  `json:"timestamp"`   // Timestamp is the Unix time (seconds) of the submission.
}

// ListParams holds offset pagination for list queries.
type ListParams struct {
	Skip  int
	Limit int
}
