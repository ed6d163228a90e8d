package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-formation-admin/internal/logger"
	"github.com/sbilibin2017/gw-formation-admin/internal/models"
)

//go:generate mockgen -source=testimonial.go -destination=testimonial_mock.go -package=services

// TestimonialStore persists testimonials.
type TestimonialStore interface {
	List(ctx context.Context, status *models.TestimonialStatus, skip int, limit *int) ([]models.Testimonial, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Testimonial, error)
	Create(ctx context.Context, t *models.Testimonial) (*models.Testimonial, error)
	Update(ctx context.Context, id uuid.UUID, patch models.TestimonialPatch) (*models.Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Testimonial, error)
}

// TestimonialService handles testimonials and their moderation.
type TestimonialService struct {
	store       TestimonialStore
	notifier    Notifier
	kafkaWriter KafkaWriter
}

// NewTestimonialService creates a new TestimonialService. notifier and kafkaWriter may be nil.
func NewTestimonialService(store TestimonialStore, notifier Notifier, kafkaWriter KafkaWriter) *TestimonialService {
	return &TestimonialService{
		store:       store,
		notifier:    notifier,
		kafkaWriter: kafkaWriter,
	}
}

// Create stores a pending testimonial with its rating snapped to the nearest half point.
func (s *TestimonialService) Create(ctx context.Context, t *models.Testimonial) (*models.Testimonial, error) {
	rating, err := models.NormalizeRating(t.Rating)
	if err != nil {
		return nil, validationError(err)
	}
	t.Rating = rating
	if t.MediaURLs == nil {
		t.MediaURLs = models.MediaURLs{}
	}

	created, err := s.store.Create(ctx, t)
	if err != nil {
		logger.Log.Errorw("failed to save testimonial", "name", t.Name, "err", err)
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.TestimonialReceived(created)
	}
	publishSubmission(ctx, s.kafkaWriter, models.KindTestimonial, created.ID, "")

	return created, nil
}

// ListApproved returns approved testimonials only, newest first. A nil limit returns all of them.
func (s *TestimonialService) ListApproved(ctx context.Context, limit *int) ([]models.Testimonial, error) {
	approved := models.TestimonialApproved
	return s.store.List(ctx, &approved, 0, limit)
}

// List returns testimonials of any status for moderation.
func (s *TestimonialService) List(ctx context.Context, status *models.TestimonialStatus, params models.ListParams) ([]models.Testimonial, error) {
	limit := params.Limit
	return s.store.List(ctx, status, params.Skip, &limit)
}

func (s *TestimonialService) Get(ctx context.Context, id uuid.UUID) (*models.Testimonial, error) {
	t, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

// Update applies a partial update. A new rating is validated and snapped like on create.
func (s *TestimonialService) Update(ctx context.Context, id uuid.UUID, patch models.TestimonialPatch) (*models.Testimonial, error) {
	if patch.Rating != nil {
		rating, err := models.NormalizeRating(*patch.Rating)
		if err != nil {
			return nil, validationError(err)
		}
		patch.Rating = &rating
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, validationError(models.ErrUnknownStatus)
	}

	t, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

func (s *TestimonialService) Delete(ctx context.Context, id uuid.UUID) (*models.Testimonial, error) {
	t, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}
