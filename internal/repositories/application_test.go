package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-formation-admin/internal/models"
)

func appRow(id uuid.UUID, email string, status models.ApplicationStatus, created, updated time.Time) []driver.Value {
	return []driver.Value{
		id.String(), "Ada Obi", email, "+2348000000000", "24", "Lagos",
		true, true, false, "I want to build things", 10, "Instagram", string(status),
		created, updated,
	}
}

func newApplication(email string) *models.Application {
	return &models.Application{
		FullName: "Ada Obi", Email: email, Whatsapp: "+2348000000000", Age: "24", City: "Lagos",
		HasCodeExperience: true, HasComputer: true, Motivation: "I want to build things",
		HoursPerWeek: 10, HowDidYouKnow: "Instagram",
	}
}

func TestApplicationRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewApplicationRepository(db)
	now := time.Now()
	status := models.ApplicationApproved

	mock.ExpectQuery(`SELECT \* FROM applications WHERE \(\$1::VARCHAR IS NULL OR status = \$1\) ORDER BY created_at DESC`).
		WithArgs("approved", 0, 100).
		WillReturnRows(sqlmock.NewRows(appColumns).
			AddRow(appRow(uuid.New(), "a@example.com", status, now, now)...))

	apps, err := repo.List(context.Background(), &status, models.ListParams{Skip: 0, Limit: 100})
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, models.ApplicationApproved, apps[0].Status)
	assert.Equal(t, 10, apps[0].HoursPerWeek)

	mock.ExpectQuery(`SELECT \* FROM applications`).
		WithArgs(nil, 0, 100).
		WillReturnRows(sqlmock.NewRows(appColumns))

	apps, err = repo.List(context.Background(), nil, models.ListParams{Skip: 0, Limit: 100})
	require.NoError(t, err)
	assert.NotNil(t, apps)
	assert.Empty(t, apps)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewApplicationRepository(db)
	now := time.Now()
	id := uuid.New()

	mock.ExpectQuery(`INSERT INTO applications`).
		WithArgs(sqlmock.AnyArg(), "Ada Obi", "ada@example.com", "+2348000000000", "24", "Lagos",
			true, true, false, "I want to build things", 10, "Instagram", "pending").
		WillReturnRows(sqlmock.NewRows(appColumns).
			AddRow(appRow(id, "ada@example.com", models.ApplicationPending, now, now)...))

	app, err := repo.Create(context.Background(), newApplication("ada@example.com"))
	require.NoError(t, err)
	assert.Equal(t, id, app.ID)
	assert.Equal(t, models.ApplicationPending, app.Status)

	mock.ExpectQuery(`INSERT INTO applications`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "applications_email_key"})

	_, err = repo.Create(context.Background(), newApplication("ada@example.com"))
	assert.ErrorIs(t, err, ErrDuplicateKey)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_UpdateStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewApplicationRepository(db)
	now := time.Now()
	id := uuid.New()

	mock.ExpectQuery(`UPDATE applications SET status = \$2`).
		WithArgs(id, "rejected").
		WillReturnRows(sqlmock.NewRows(appColumns).
			AddRow(appRow(id, "a@example.com", models.ApplicationRejected, now, now.Add(time.Millisecond))...))

	app, err := repo.UpdateStatus(context.Background(), id, models.ApplicationRejected)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationRejected, app.Status)

	mock.ExpectQuery(`UPDATE applications`).
		WithArgs(id, "approved").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.UpdateStatus(context.Background(), id, models.ApplicationApproved)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_Count(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewApplicationRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM applications`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_Postgres(t *testing.T) {
	db := setupPostgres(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	first, err := repo.Create(ctx, newApplication("first@example.com"))
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, first.Status)
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)

	_, err = repo.Create(ctx, newApplication("first@example.com"))
	assert.ErrorIs(t, err, ErrDuplicateKey)

	second, err := repo.Create(ctx, newApplication("second@example.com"))
	require.NoError(t, err)

	all, err := repo.List(ctx, nil, models.ListParams{Limit: 100})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "newest first")

	updated, err := repo.UpdateStatus(ctx, first.ID, models.ApplicationApproved)
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(first.UpdatedAt))
	assert.Equal(t, first.CreatedAt, updated.CreatedAt)

	approved := models.ApplicationApproved
	filtered, err := repo.List(ctx, &approved, models.ListParams{Limit: 100})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, first.ID, filtered[0].ID)

	byEmail, err := repo.GetByEmail(ctx, "second@example.com")
	require.NoError(t, err)
	assert.Equal(t, second.ID, byEmail.ID)

	deleted, err := repo.Delete(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "second@example.com", deleted.Email)

	_, err = repo.GetByID(ctx, second.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestApplicationRepository_LongFieldsPostgres(t *testing.T) {
	db := setupPostgres(t)
	repo := NewApplicationRepository(db)

	app := newApplication(strings.Repeat("a", 300) + "@example.com")
	app.Age = strings.Repeat("2", 40)
	app.Whatsapp = strings.Repeat("7", 80)
	app.City = strings.Repeat("x", 400)
	app.HowDidYouKnow = strings.Repeat("y", 400)

	created, err := repo.Create(context.Background(), app)
	require.NoError(t, err)
	assert.Equal(t, app.Age, created.Age)
	assert.Equal(t, app.City, created.City)
}
