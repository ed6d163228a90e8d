package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-formation-admin/internal/logger"
	"github.com/sbilibin2017/gw-formation-admin/internal/models"
	"github.com/sbilibin2017/gw-formation-admin/internal/repositories"
)

//go:generate mockgen -source=application.go -destination=application_mock.go -package=services

// ApplicationStore persists applications.
type ApplicationStore interface {
	List(ctx context.Context, status *models.ApplicationStatus, params models.ListParams) ([]models.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	GetByEmail(ctx context.Context, email string) (*models.Application, error)
	Create(ctx context.Context, app *models.Application) (*models.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Application, error)
}

// ApplicationService handles program applications.
type ApplicationService struct {
	store       ApplicationStore
	notifier    Notifier
	kafkaWriter KafkaWriter
}

// NewApplicationService creates a new ApplicationService. notifier and kafkaWriter may be nil.
func NewApplicationService(store ApplicationStore, notifier Notifier, kafkaWriter KafkaWriter) *ApplicationService {
	return &ApplicationService{
		store:       store,
		notifier:    notifier,
		kafkaWriter: kafkaWriter,
	}
}

// Create stores a pending application, one per email, and sends the applicant a welcome email.
func (s *ApplicationService) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	existing, err := s.store.GetByEmail(ctx, app.Email)
	switch {
	case err == nil && existing != nil:
		logger.Log.Infow("application already exists", "email", app.Email)
		return nil, ErrApplicationExists
	case err != nil && !errors.Is(err, sql.ErrNoRows):
		logger.Log.Errorw("failed to check application exists", "email", app.Email, "err", err)
		return nil, err
	}

	app.Status = models.ApplicationPending
	created, err := s.store.Create(ctx, app)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrApplicationExists
		}
		logger.Log.Errorw("failed to save application", "email", app.Email, "err", err)
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.SendWelcome(created.FullName, created.Email)
	}
	publishSubmission(ctx, s.kafkaWriter, models.KindApplication, created.ID, created.Email)

	return created, nil
}

func (s *ApplicationService) List(ctx context.Context, status *models.ApplicationStatus, params models.ListParams) ([]models.Application, error) {
	return s.store.List(ctx, status, params)
}

func (s *ApplicationService) Get(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	app, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return app, nil
}

// UpdateStatus moves the application to status.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error) {
	if !status.Valid() {
		return nil, validationError(models.ErrUnknownStatus)
	}
	app, err := s.store.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, notFound(err)
	}
	logger.Log.Infow("application status updated", "id", id, "status", status)
	return app, nil
}

// Delete removes the application and returns it as it was.
func (s *ApplicationService) Delete(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	app, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return app, nil
}
