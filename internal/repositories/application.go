package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-formation-admin/internal/models"
)

// ApplicationRepository stores program applications.
type ApplicationRepository struct {
	db *sqlx.DB
}

func NewApplicationRepository(db *sqlx.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// List returns applications newest first, optionally filtered by status.
func (r *ApplicationRepository) List(ctx context.Context, status *models.ApplicationStatus, params models.ListParams) ([]models.Application, error) {
	const query = `
		SELECT * FROM applications
		WHERE ($1::VARCHAR IS NULL OR status = $1)
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3
	`
	args := []any{status, params.Skip, params.Limit}

	apps := []models.Application{}
	err := r.db.SelectContext(ctx, &apps, query, args...)

	logQuery(query, args, len(apps), err)

	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	const query = `SELECT * FROM applications WHERE id = $1`

	var app models.Application
	err := r.db.GetContext(ctx, &app, query, id)

	logQuery(query, []any{id}, app.ID, err)

	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByEmail(ctx context.Context, email string) (*models.Application, error) {
	const query = `SELECT * FROM applications WHERE email = $1 LIMIT 1`

	var app models.Application
	err := r.db.GetContext(ctx, &app, query, email)

	logQuery(query, []any{email}, app.ID, err)

	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Create inserts a pending application. A second application for the same email yields ErrDuplicateKey.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	const query = `
		INSERT INTO applications (
			id, full_name, email, whatsapp, age, city,
			has_code_experience, has_computer, has_internet,
			motivation, hours_per_week, how_did_you_know, status,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING *
	`
	status := app.Status
	if status == "" {
		status = models.ApplicationPending
	}
	args := []any{
		uuid.New(), app.FullName, app.Email, app.Whatsapp, app.Age, app.City,
		app.HasCodeExperience, app.HasComputer, app.HasInternet,
		app.Motivation, app.HoursPerWeek, app.HowDidYouKnow, status,
	}

	var created models.Application
	err := r.db.GetContext(ctx, &created, query, args...)

	logQuery(query, args, created.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &created, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error) {
	const query = `
		UPDATE applications SET
			status = $2,
			updated_at = GREATEST(NOW(), updated_at + INTERVAL '1 microsecond')
		WHERE id = $1
		RETURNING *
	`
	args := []any{id, status}

	var app models.Application
	err := r.db.GetContext(ctx, &app, query, args...)

	logQuery(query, args, app.ID, err)

	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	const query = `DELETE FROM applications WHERE id = $1 RETURNING *`

	var app models.Application
	err := r.db.GetContext(ctx, &app, query, id)

	logQuery(query, []any{id}, app.ID, err)

	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Count returns the number of stored applications.
func (r *ApplicationRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM applications`

	var n int
	err := r.db.GetContext(ctx, &n, query)

	logQuery(query, nil, n, err)

	return n, err
}
