package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-formation-admin/internal/models"
)

func TestUserRepository_GetByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	id := uuid.New()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM users WHERE username = \$1`).
			WithArgs("admin").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(id.String(), "admin", "admin@example.com", "Admin", "hash", true, true, now, now))

		user, err := repo.GetByUsername(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "admin@example.com", user.Email)
		assert.True(t, user.IsAdmin)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM users WHERE username = \$1`).
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByUsername(ctx, "ghost")
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	now := time.Now()
	in := &models.User{Username: "jane", Email: "jane@example.com", FullName: "Jane", PasswordHash: "hash", IsActive: true}

	t.Run("ok", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(sqlmock.AnyArg(), "jane", "jane@example.com", "Jane", "hash", true, false).
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(id.String(), "jane", "jane@example.com", "Jane", "hash", true, false, now, now))

		user, err := repo.Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, user.CreatedAt, user.UpdatedAt)
	})

	t.Run("duplicate", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

		user, err := repo.Create(ctx, in)
		assert.ErrorIs(t, err, ErrDuplicateKey)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	id := uuid.New()
	now := time.Now()
	name := "Renamed"

	mock.ExpectQuery(`UPDATE users SET`).
		WithArgs(id, nil, nil, name, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(id.String(), "jane", "jane@example.com", name, "hash", true, false, now, now.Add(time.Second)))

	user, err := repo.Update(ctx, id, models.UserPatch{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, name, user.FullName)
	assert.True(t, user.UpdatedAt.After(user.CreatedAt))

	mock.ExpectQuery(`DELETE FROM users WHERE id = \$1 RETURNING \*`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(id.String(), "jane", "jane@example.com", name, "hash", true, false, now, now))

	deleted, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, deleted.ID)

	mock.ExpectQuery(`DELETE FROM users`).WithArgs(id).WillReturnError(sql.ErrNoRows)
	_, err = repo.Delete(ctx, id)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM users ORDER BY created_at DESC`).
		WithArgs(5, 2).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(uuid.New().String(), "a", "a@example.com", "A", "h", true, false, now, now).
			AddRow(uuid.New().String(), "b", "b@example.com", "B", "h", false, false, now, now))

	users, err := repo.List(context.Background(), models.ListParams{Skip: 5, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, users, 2)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Postgres(t *testing.T) {
	db := setupPostgres(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.User{
		Username: "alice", Email: "alice@example.com", FullName: "Alice", PasswordHash: "hash", IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	_, err = repo.Create(ctx, &models.User{Username: "alice", Email: "other@example.com", PasswordHash: "hash"})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	byName, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	admin := true
	updated, err := repo.Update(ctx, created.ID, models.UserPatch{IsAdmin: &admin})
	require.NoError(t, err)
	assert.True(t, updated.IsAdmin)
	assert.Equal(t, "Alice", updated.FullName)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	users, err := repo.List(ctx, models.ListParams{Skip: 0, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, users, 1)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", deleted.Username)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
