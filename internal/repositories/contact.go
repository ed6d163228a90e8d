package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-formation-admin/internal/models"
)

// ContactRepository stores contact form messages.
type ContactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// List returns contacts newest first, optionally filtered by the read flag.
func (r *ContactRepository) List(ctx context.Context, isRead *bool, params models.ListParams) ([]models.Contact, error) {
	const query = `
		SELECT * FROM contacts
		WHERE ($1::BOOLEAN IS NULL OR is_read = $1)
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3
	`
	args := []any{isRead, params.Skip, params.Limit}

	contacts := []models.Contact{}
	err := r.db.SelectContext(ctx, &contacts, query, args...)

	logQuery(query, args, len(contacts), err)

	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *ContactRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	const query = `SELECT * FROM contacts WHERE id = $1`

	var contact models.Contact
	err := r.db.GetContext(ctx, &contact, query, id)

	logQuery(query, []any{id}, contact.ID, err)

	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	const query = `
		INSERT INTO contacts (id, full_name, email, message, is_read, created_at, updated_at)
		VALUES ($1, $2, $3, $4, FALSE, NOW(), NOW())
		RETURNING *
	`
	args := []any{uuid.New(), contact.FullName, contact.Email, contact.Message}

	var created models.Contact
	err := r.db.GetContext(ctx, &created, query, args...)

	logQuery(query, args, created.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &created, nil
}

func (r *ContactRepository) UpdateIsRead(ctx context.Context, id uuid.UUID, isRead bool) (*models.Contact, error) {
	const query = `
		UPDATE contacts SET
			is_read = $2,
			updated_at = GREATEST(NOW(), updated_at + INTERVAL '1 microsecond')
		WHERE id = $1
		RETURNING *
	`
	args := []any{id, isRead}

	var contact models.Contact
	err := r.db.GetContext(ctx, &contact, query, args...)

	logQuery(query, args, contact.ID, err)

	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *ContactRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	const query = `DELETE FROM contacts WHERE id = $1 RETURNING *`

	var contact models.Contact
	err := r.db.GetContext(ctx, &contact, query, id)

	logQuery(query, []any{id}, contact.ID, err)

	if err != nil {
		return nil, err
	}
	return &contact, nil
}
