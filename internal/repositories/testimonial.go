package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-formation-admin/internal/models"
)

// TestimonialRepository stores testimonials.
type TestimonialRepository struct {
	db *sqlx.DB
}

func NewTestimonialRepository(db *sqlx.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

// List returns testimonials newest first, optionally filtered by status.
// A nil limit returns every matching row.
func (r *TestimonialRepository) List(ctx context.Context, status *models.TestimonialStatus, skip int, limit *int) ([]models.Testimonial, error) {
	const query = `
		SELECT * FROM testimonials
		WHERE ($1::VARCHAR IS NULL OR status = $1)
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3
	`
	args := []any{status, skip, limit}

	items := []models.Testimonial{}
	err := r.db.SelectContext(ctx, &items, query, args...)

	logQuery(query, args, len(items), err)

	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *TestimonialRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Testimonial, error) {
	const query = `SELECT * FROM testimonials WHERE id = $1`

	var item models.Testimonial
	err := r.db.GetContext(ctx, &item, query, id)

	logQuery(query, []any{id}, item.ID, err)

	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *TestimonialRepository) Create(ctx context.Context, t *models.Testimonial) (*models.Testimonial, error) {
	const query = `
		INSERT INTO testimonials (id, name, role, content, rating, media_urls, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING *
	`
	args := []any{uuid.New(), t.Name, t.Role, t.Content, t.Rating, t.MediaURLs, models.TestimonialPending}

	var created models.Testimonial
	err := r.db.GetContext(ctx, &created, query, args...)

	logQuery(query, args, created.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &created, nil
}

// Update applies the non-nil fields of patch.
func (r *TestimonialRepository) Update(ctx context.Context, id uuid.UUID, patch models.TestimonialPatch) (*models.Testimonial, error) {
	const query = `
		UPDATE testimonials SET
			name = COALESCE($2, name),
			role = COALESCE($3, role),
			content = COALESCE($4, content),
			rating = COALESCE($5, rating),
			media_urls = COALESCE($6, media_urls),
			status = COALESCE($7, status),
			updated_at = GREATEST(NOW(), updated_at + INTERVAL '1 microsecond')
		WHERE id = $1
		RETURNING *
	`
	var media any
	if patch.MediaURLs != nil {
		media = *patch.MediaURLs
	}
	args := []any{id, patch.Name, patch.Role, patch.Content, patch.Rating, media, patch.Status}

	var item models.Testimonial
	err := r.db.GetContext(ctx, &item, query, args...)

	logQuery(query, args, item.ID, err)

	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *TestimonialRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Testimonial, error) {
	const query = `DELETE FROM testimonials WHERE id = $1 RETURNING *`

	var item models.Testimonial
	err := r.db.GetContext(ctx, &item, query, id)

	logQuery(query, []any{id}, item.ID, err)

	if err != nil {
		return nil, err
	}
	return &item, nil
}
