package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-formation-admin/internal/models"
	"github.com/sbilibin2017/gw-formation-admin/internal/services"
)

func TestCreateTestimonialHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTestimonialManager(ctrl)

	tests := []struct {
		name         string
		body         interface{}
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "created",
			body: CreateTestimonialRequest{Name: "Awa", Role: "Alumni", Content: "Great", Rating: 4.3, MediaURLs: []string{"https://cdn.example.com/a.jpg"}},
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), &models.Testimonial{
					Name: "Awa", Role: "Alumni", Content: "Great", Rating: 4.3,
					MediaURLs: models.MediaURLs{"https://cdn.example.com/a.jpg"},
				}).Return(&models.Testimonial{ID: uuid.New(), Rating: 4.5, Status: models.TestimonialPending}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "rating above range",
			body:         CreateTestimonialRequest{Name: "Awa", Role: "Alumni", Content: "Great", Rating: 5.1},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "bad media url",
			body:         CreateTestimonialRequest{Name: "Awa", Role: "Alumni", Content: "Great", Rating: 4, MediaURLs: []string{"not a url"}},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "service rejects rating",
			body: CreateTestimonialRequest{Name: "Awa", Role: "Alumni", Content: "Great", Rating: 4},
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: %v", services.ErrValidation, models.ErrRatingOutOfRange))
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			rr := serve(t, http.MethodPost, "/testimonials", "/testimonials", jsonBody(t, tt.body), NewCreateTestimonialHandler(mockSvc))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestCreateTestimonialHandler_ResponseShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTestimonialManager(ctrl)
	mockSvc.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&models.Testimonial{ID: uuid.New(), Rating: 4.5, Status: models.TestimonialPending}, nil)

	rr := serve(t, http.MethodPost, "/testimonials", "/testimonials",
		jsonBody(t, CreateTestimonialRequest{Name: "Awa", Role: "Alumni", Content: "Great", Rating: 4.3}), NewCreateTestimonialHandler(mockSvc))

	require.Equal(t, http.StatusCreated, rr.Code)
	var resp TestimonialResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 4.5, resp.Rating)
	assert.Equal(t, "pending", resp.Status)
	assert.NotNil(t, resp.MediaURLs)
	assert.Empty(t, resp.MediaURLs)
}

func TestListApprovedTestimonialsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTestimonialManager(ctrl)
	three := 3

	tests := []struct {
		name         string
		target       string
		mockSetup    func()
		expectedCode int
	}{
		{
			name:   "no limit",
			target: "/testimonials",
			mockSetup: func() {
				mockSvc.EXPECT().ListApproved(gomock.Any(), nil).
					Return([]models.Testimonial{{ID: uuid.New(), Status: models.TestimonialApproved}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "limit",
			target: "/testimonials?limit=3",
			mockSetup: func() {
				mockSvc.EXPECT().ListApproved(gomock.Any(), &three).Return([]models.Testimonial{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "zero limit",
			target:       "/testimonials?limit=0",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			rr := serve(t, http.MethodGet, "/testimonials", tt.target, nil, NewListApprovedTestimonialsHandler(mockSvc))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestListTestimonialsHandler_AdminDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTestimonialManager(ctrl)
	pending := models.TestimonialPending

	mockSvc.EXPECT().List(gomock.Any(), &pending, models.ListParams{Skip: 0, Limit: 10}).Return([]models.Testimonial{}, nil)

	rr := serve(t, http.MethodGet, "/testimonials/admin", "/testimonials/admin?status=pending", nil, NewListTestimonialsHandler(mockSvc))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestUpdateTestimonialHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTestimonialManager(ctrl)
	id := uuid.New()
	approved := models.TestimonialApproved
	rating := 3.7
	media := models.MediaURLs{}

	mockSvc.EXPECT().Update(gomock.Any(), id, models.TestimonialPatch{Status: &approved, Rating: &rating, MediaURLs: &media}).
		Return(&models.Testimonial{ID: id, Status: approved, Rating: 3.5}, nil)

	rr := serve(t, http.MethodPatch, "/testimonials/{id}", "/testimonials/"+id.String(),
		jsonBody(t, map[string]interface{}{"status": "approved", "rating": 3.7, "media_urls": []string{}}), NewUpdateTestimonialHandler(mockSvc))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp TestimonialResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, 3.5, resp.Rating)
}

func TestUpdateTestimonialHandler_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTestimonialManager(ctrl)
	id := uuid.New()

	for _, body := range []map[string]interface{}{
		{"rating": 0.5},
		{"content": ""},
		{"media_urls": []string{""}},
	} {
		rr := serve(t, http.MethodPatch, "/testimonials/{id}", "/testimonials/"+id.String(), jsonBody(t, body), NewUpdateTestimonialHandler(mockSvc))
		assert.Equal(t, http.StatusBadRequest, rr.Code, "body %v", body)
	}
}

func TestGetAndDeleteTestimonialHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTestimonialManager(ctrl)
	id := uuid.New()

	mockSvc.EXPECT().Get(gomock.Any(), id).Return(&models.Testimonial{ID: id}, nil)
	mockSvc.EXPECT().Delete(gomock.Any(), id).Return(nil, services.ErrNotFound)

	rr := serve(t, http.MethodGet, "/testimonials/{id}", "/testimonials/"+id.String(), nil, NewGetTestimonialHandler(mockSvc))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(t, http.MethodDelete, "/testimonials/{id}", "/testimonials/"+id.String(), nil, NewDeleteTestimonialHandler(mockSvc))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "testimonial not found", decodeError(t, rr))
}
