package services_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-formation-admin/internal/models"
	"github.com/sbilibin2017/gw-formation-admin/internal/services"
)

func TestTestimonialService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := services.NewMockTestimonialStore(ctrl)
	notifier := services.NewMockNotifier(ctrl)
	svc := services.NewTestimonialService(store, notifier, nil)
	ctx := context.Background()

	t.Run("rating is snapped", func(t *testing.T) {
		store.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tm *models.Testimonial) (*models.Testimonial, error) {
				assert.Equal(t, 4.5, tm.Rating)
				assert.NotNil(t, tm.MediaURLs)
				created := *tm
				created.ID = uuid.New()
				created.Status = models.TestimonialPending
				return &created, nil
			})
		notifier.EXPECT().TestimonialReceived(gomock.Any())

		got, err := svc.Create(ctx, &models.Testimonial{Name: "Dayo", Rating: 4.3})
		require.NoError(t, err)
		assert.Equal(t, 4.5, got.Rating)
	})

	t.Run("rating out of range", func(t *testing.T) {
		_, err := svc.Create(ctx, &models.Testimonial{Name: "Dayo", Rating: 5.1})
		assert.ErrorIs(t, err, services.ErrValidation)
	})
}

func TestTestimonialService_Lists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := services.NewMockTestimonialStore(ctrl)
	svc := services.NewTestimonialService(store, nil, nil)
	ctx := context.Background()

	approved := models.TestimonialApproved
	store.EXPECT().List(gomock.Any(), &approved, 0, nil).
		Return([]models.Testimonial{{Status: models.TestimonialApproved}}, nil)

	public, err := svc.ListApproved(ctx, nil)
	require.NoError(t, err)
	for _, item := range public {
		assert.Equal(t, models.TestimonialApproved, item.Status)
	}

	limit := 10
	store.EXPECT().List(gomock.Any(), nil, 20, &limit).Return([]models.Testimonial{}, nil)
	_, err = svc.List(ctx, nil, models.ListParams{Skip: 20, Limit: 10})
	assert.NoError(t, err)
}

func TestTestimonialService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := services.NewMockTestimonialStore(ctrl)
	svc := services.NewTestimonialService(store, nil, nil)
	ctx := context.Background()
	id := uuid.New()

	t.Run("rating snapped on update", func(t *testing.T) {
		in := 1.2
		store.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, p models.TestimonialPatch) (*models.Testimonial, error) {
				require.NotNil(t, p.Rating)
				assert.Equal(t, 1.0, *p.Rating)
				return &models.Testimonial{ID: id, Rating: *p.Rating}, nil
			})

		got, err := svc.Update(ctx, id, models.TestimonialPatch{Rating: &in})
		require.NoError(t, err)
		assert.Equal(t, 1.0, got.Rating)
	})

	t.Run("invalid rating", func(t *testing.T) {
		in := 0.0
		_, err := svc.Update(ctx, id, models.TestimonialPatch{Rating: &in})
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("invalid status", func(t *testing.T) {
		bad := models.TestimonialStatus("hidden")
		_, err := svc.Update(ctx, id, models.TestimonialPatch{Status: &bad})
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("missing", func(t *testing.T) {
		approved := models.TestimonialApproved
		store.EXPECT().Update(gomock.Any(), id, models.TestimonialPatch{Status: &approved}).Return(nil, sql.ErrNoRows)

		_, err := svc.Update(ctx, id, models.TestimonialPatch{Status: &approved})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("get and delete", func(t *testing.T) {
		store.EXPECT().GetByID(gomock.Any(), id).Return(nil, sql.ErrNoRows)
		_, err := svc.Get(ctx, id)
		assert.ErrorIs(t, err, services.ErrNotFound)

		store.EXPECT().Delete(gomock.Any(), id).Return(&models.Testimonial{ID: id}, nil)
		_, err = svc.Delete(ctx, id)
		assert.NoError(t, err)
	})
}
