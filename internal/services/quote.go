package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-formation-admin/internal/logger"
	"github.com/sbilibin2017/gw-formation-admin/internal/models"
)

//go:generate mockgen -source=quote.go -destination=quote_mock.go -package=services

// QuoteStore persists quote requests.
type QuoteStore interface {
	List(ctx context.Context, status *models.QuoteStatus, params models.ListParams) ([]models.Quote, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Quote, error)
	Create(ctx context.Context, quote *models.Quote) (*models.Quote, error)
	Update(ctx context.Context, id uuid.UUID, patch models.QuotePatch) (*models.Quote, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.QuoteStatus, adminNotes *string) (*models.Quote, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Quote, error)
}

// QuoteService handles quote requests.
type QuoteService struct {
	store       QuoteStore
	notifier    Notifier
	kafkaWriter KafkaWriter
}

// NewQuoteService creates a new QuoteService. notifier and kafkaWriter may be nil.
func NewQuoteService(store QuoteStore, notifier Notifier, kafkaWriter KafkaWriter) *QuoteService {
	return &QuoteService{
		store:       store,
		notifier:    notifier,
		kafkaWriter: kafkaWriter,
	}
}

// Create stores a pending quote request and alerts the admin.
func (s *QuoteService) Create(ctx context.Context, quote *models.Quote) (*models.Quote, error) {
	created, err := s.store.Create(ctx, quote)
	if err != nil {
		logger.Log.Errorw("failed to save quote", "email", quote.Email, "err", err)
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.QuoteReceived(created)
	}
	publishSubmission(ctx, s.kafkaWriter, models.KindQuote, created.ID, created.Email)

	return created, nil
}

func (s *QuoteService) List(ctx context.Context, status *models.QuoteStatus, params models.ListParams) ([]models.Quote, error) {
	return s.store.List(ctx, status, params)
}

func (s *QuoteService) Get(ctx context.Context, id uuid.UUID) (*models.Quote, error) {
	quote, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return quote, nil
}

// Update applies a partial update to any mutable field.
func (s *QuoteService) Update(ctx context.Context, id uuid.UUID, patch models.QuotePatch) (*models.Quote, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, validationError(models.ErrUnknownStatus)
	}
	quote, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return nil, notFound(err)
	}
	return quote, nil
}

// UpdateStatus sets the status and, when given, the admin notes.
func (s *QuoteService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.QuoteStatus, adminNotes *string) (*models.Quote, error) {
	if !status.Valid() {
		return nil, validationError(models.ErrUnknownStatus)
	}
	quote, err := s.store.UpdateStatus(ctx, id, status, adminNotes)
	if err != nil {
		return nil, notFound(err)
	}
	logger.Log.Infow("quote status updated", "id", id, "status", status)
	return quote, nil
}

func (s *QuoteService) Delete(ctx context.Context, id uuid.UUID) (*models.Quote, error) {
	quote, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return quote, nil
}
