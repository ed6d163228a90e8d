package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-formation-admin/internal/logger"
	"github.com/sbilibin2017/gw-formation-admin/internal/models"
)

//go:generate mockgen -source=contact.go -destination=contact_mock.go -package=services

// ContactStore persists contact messages.
type ContactStore interface {
	List(ctx context.Context, isRead *bool, params models.ListParams) ([]models.Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	UpdateIsRead(ctx context.Context, id uuid.UUID, isRead bool) (*models.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Contact, error)
}

// ContactService handles contact form messages.
type ContactService struct {
	store       ContactStore
	notifier    Notifier
	kafkaWriter KafkaWriter
}

// NewContactService creates a new ContactService. notifier and kafkaWriter may be nil.
func NewContactService(store ContactStore, notifier Notifier, kafkaWriter KafkaWriter) *ContactService {
	return &ContactService{
		store:       store,
		notifier:    notifier,
		kafkaWriter: kafkaWriter,
	}
}

// Create stores an unread message and alerts the admin.
func (s *ContactService) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	created, err := s.store.Create(ctx, contact)
	if err != nil {
		logger.Log.Errorw("failed to save contact", "email", contact.Email, "err", err)
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.ContactReceived(created)
	}
	publishSubmission(ctx, s.kafkaWriter, models.KindContact, created.ID, created.Email)

	return created, nil
}

func (s *ContactService) List(ctx context.Context, isRead *bool, params models.ListParams) ([]models.Contact, error) {
	return s.store.List(ctx, isRead, params)
}

func (s *ContactService) Get(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	contact, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return contact, nil
}

// MarkRead sets the read flag of a message.
func (s *ContactService) MarkRead(ctx context.Context, id uuid.UUID, isRead bool) (*models.Contact, error) {
	contact, err := s.store.UpdateIsRead(ctx, id, isRead)
	if err != nil {
		return nil, notFound(err)
	}
	return contact, nil
}

func (s *ContactService) Delete(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	contact, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return contact, nil
}
