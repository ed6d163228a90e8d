package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-formation-admin/internal/logger"
	"github.com/sbilibin2017/gw-formation-admin/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Notifier delivers best-effort emails about new submissions. Calls never block on delivery.
type Notifier interface {
	SendWelcome(name, email string)
	ContactReceived(contact *models.Contact)
	QuoteReceived(quote *models.Quote)
	TestimonialReceived(testimonial *models.Testimonial)
}

// publishTimeout bounds a single publish independently of the request deadline.
var publishTimeout = 2 * time.Second

// publishSubmission publishes a submission event to Kafka. Failures are logged only.
// The write outlives request cancellation but never runs longer than publishTimeout.
func publishSubmission(ctx context.Context, w KafkaWriter, kind string, id uuid.UUID, email string) {
	event := models.SubmissionEvent{
		EventID:    uuid.NewString(),
		Kind:       kind,
		ResourceID: id.String(),
		Email:      email,
		Timestamp:  time.Now().Unix(),
	}

	if w == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "kind", kind, "resource_id", event.ResourceID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal submission event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.ResourceID),
		Value: data,
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish submission event", "event_id", event.EventID, "kind", kind, "error", err)
	} else {
		logger.Log.Infow("Submission event published", "event_id", event.EventID, "kind", kind, "resource_id", event.ResourceID)
	}
}
