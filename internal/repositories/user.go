package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-formation-admin/internal/models"
)

// UserRepository stores staff accounts in the users table.
type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) get(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, query, arg)

	logQuery(query, []any{arg}, user.ID, err)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `SELECT * FROM users WHERE username = $1 LIMIT 1`
	return r.get(ctx, query, username)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `SELECT * FROM users WHERE email = $1 LIMIT 1`
	return r.get(ctx, query, email)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const query = `SELECT * FROM users WHERE id = $1`
	return r.get(ctx, query, id)
}

// List returns users ordered by creation time, newest first.
func (r *UserRepository) List(ctx context.Context, params models.ListParams) ([]models.User, error) {
	const query = `
		SELECT * FROM users
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2
	`
	args := []any{params.Skip, params.Limit}

	users := []models.User{}
	err := r.db.SelectContext(ctx, &users, query, args...)

	logQuery(query, args, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// Create inserts a new user. A taken username or email yields ErrDuplicateKey.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	const query = `
		INSERT INTO users (id, username, email, full_name, password_hash, is_active, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING *
	`
	id := uuid.New()
	args := []any{id, user.Username, user.Email, user.FullName, user.PasswordHash, user.IsActive, user.IsAdmin}

	var created models.User
	err := r.db.GetContext(ctx, &created, query, args...)

	// password hash stays out of the logs
	logQuery(query, []any{id, user.Username, user.Email, user.FullName, user.IsActive, user.IsAdmin}, created.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &created, nil
}

// Update applies the non-nil fields of patch and returns the updated user.
func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, patch models.UserPatch) (*models.User, error) {
	const query = `
		UPDATE users SET
			username = COALESCE($2, username),
			email = COALESCE($3, email),
			full_name = COALESCE($4, full_name),
			password_hash = COALESCE($5, password_hash),
			is_active = COALESCE($6, is_active),
			is_admin = COALESCE($7, is_admin),
			updated_at = GREATEST(NOW(), updated_at + INTERVAL '1 microsecond')
		WHERE id = $1
		RETURNING *
	`
	args := []any{id, patch.Username, patch.Email, patch.FullName, patch.PasswordHash, patch.IsActive, patch.IsAdmin}

	var user models.User
	err := r.db.GetContext(ctx, &user, query, args...)

	logQuery(query, []any{id, patch.Username, patch.Email, patch.FullName, patch.PasswordHash != nil, patch.IsActive, patch.IsAdmin}, user.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// Delete removes the user and returns the deleted row.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const query = `DELETE FROM users WHERE id = $1 RETURNING *`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)

	logQuery(query, []any{id}, user.ID, err)

	if err != nil {
		return nil, err
	}
	return &user, nil
}
