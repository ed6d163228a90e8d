package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-formation-admin/internal/models"
)

func TestContactRepository_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()
	now := time.Now()
	id := uuid.New()

	mock.ExpectQuery(`INSERT INTO contacts`).
		WithArgs(sqlmock.AnyArg(), "Bola", "bola@example.com", "Hello").
		WillReturnRows(sqlmock.NewRows(contactColumns).
			AddRow(id.String(), "Bola", "bola@example.com", "Hello", false, now, now))

	created, err := repo.Create(ctx, &models.Contact{FullName: "Bola", Email: "bola@example.com", Message: "Hello"})
	require.NoError(t, err)
	assert.False(t, created.IsRead)

	unread := false
	mock.ExpectQuery(`SELECT \* FROM contacts WHERE \(\$1::BOOLEAN IS NULL OR is_read = \$1\)`).
		WithArgs(false, 0, 10).
		WillReturnRows(sqlmock.NewRows(contactColumns).
			AddRow(id.String(), "Bola", "bola@example.com", "Hello", false, now, now))

	list, err := repo.List(ctx, &unread, models.ListParams{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	mock.ExpectQuery(`UPDATE contacts SET is_read = \$2`).
		WithArgs(id, true).
		WillReturnRows(sqlmock.NewRows(contactColumns).
			AddRow(id.String(), "Bola", "bola@example.com", "Hello", true, now, now.Add(time.Second)))

	read, err := repo.UpdateIsRead(ctx, id, true)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	mock.ExpectQuery(`SELECT \* FROM contacts WHERE id = \$1`).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_Postgres(t *testing.T) {
	db := setupPostgres(t)
	repo := NewContactRepository(db)
	ctx := context.Background()

	c, err := repo.Create(ctx, &models.Contact{FullName: "Bola", Email: "bola@example.com", Message: "Hello"})
	require.NoError(t, err)
	assert.False(t, c.IsRead)

	read, err := repo.UpdateIsRead(ctx, c.ID, true)
	require.NoError(t, err)
	assert.True(t, read.IsRead)
	assert.True(t, read.UpdatedAt.After(c.UpdatedAt))

	isRead := false
	unread, err := repo.List(ctx, &isRead, models.ListParams{Limit: 100})
	require.NoError(t, err)
	assert.Empty(t, unread)

	deleted, err := repo.Delete(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, deleted.IsRead)

	_, err = repo.Delete(ctx, c.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
