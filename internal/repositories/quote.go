package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-formation-admin/internal/models"
)

// QuoteRepository stores quote requests.
type QuoteRepository struct {
	db *sqlx.DB
}

func NewQuoteRepository(db *sqlx.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

// List returns quotes newest first, optionally filtered by status.
func (r *QuoteRepository) List(ctx context.Context, status *models.QuoteStatus, params models.ListParams) ([]models.Quote, error) {
	const query = `
		SELECT * FROM quotes
		WHERE ($1::VARCHAR IS NULL OR status = $1)
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3
	`
	args := []any{status, params.Skip, params.Limit}

	quotes := []models.Quote{}
	err := r.db.SelectContext(ctx, &quotes, query, args...)

	logQuery(query, args, len(quotes), err)

	if err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *QuoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Quote, error) {
	const query = `SELECT * FROM quotes WHERE id = $1`

	var quote models.Quote
	err := r.db.GetContext(ctx, &quote, query, id)

	logQuery(query, []any{id}, quote.ID, err)

	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *QuoteRepository) Create(ctx context.Context, quote *models.Quote) (*models.Quote, error) {
	const query = `
		INSERT INTO quotes (
			id, full_name, email, company_name, phone, service_type,
			description, budget, timeline, status, admin_notes,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULL, NOW(), NOW())
		RETURNING *
	`
	args := []any{
		uuid.New(), quote.FullName, quote.Email, quote.CompanyName, quote.Phone, quote.ServiceType,
		quote.Description, quote.Budget, quote.Timeline, models.QuotePending,
	}

	var created models.Quote
	err := r.db.GetContext(ctx, &created, query, args...)

	logQuery(query, args, created.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &created, nil
}

// Update applies the non-nil fields of patch.
func (r *QuoteRepository) Update(ctx context.Context, id uuid.UUID, patch models.QuotePatch) (*models.Quote, error) {
	const query = `
		UPDATE quotes SET
			full_name = COALESCE($2, full_name),
			email = COALESCE($3, email),
			company_name = COALESCE($4, company_name),
			phone = COALESCE($5, phone),
			service_type = COALESCE($6, service_type),
			description = COALESCE($7, description),
			budget = COALESCE($8, budget),
			timeline = COALESCE($9, timeline),
			status = COALESCE($10, status),
			admin_notes = COALESCE($11, admin_notes),
			updated_at = GREATEST(NOW(), updated_at + INTERVAL '1 microsecond')
		WHERE id = $1
		RETURNING *
	`
	args := []any{
		id, patch.FullName, patch.Email, patch.CompanyName, patch.Phone, patch.ServiceType,
		patch.Description, patch.Budget, patch.Timeline, patch.Status, patch.AdminNotes,
	}

	var quote models.Quote
	err := r.db.GetContext(ctx, &quote, query, args...)

	logQuery(query, args, quote.ID, err)

	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// UpdateStatus sets the status and, when adminNotes is not nil, the admin notes.
func (r *QuoteRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.QuoteStatus, adminNotes *string) (*models.Quote, error) {
	return r.Update(ctx, id, models.QuotePatch{Status: &status, AdminNotes: adminNotes})
}

func (r *QuoteRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Quote, error) {
	const query = `DELETE FROM quotes WHERE id = $1 RETURNING *`

	var quote models.Quote
	err := r.db.GetContext(ctx, &quote, query, id)

	logQuery(query, []any{id}, quote.ID, err)

	if err != nil {
		return nil, err
	}
	return &quote, nil
}
