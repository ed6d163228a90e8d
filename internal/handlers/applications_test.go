package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-formation-admin/internal/models"
	"github.com/sbilibin2017/gw-formation-admin/internal/services"
)

func validApplicationRequest() CreateApplicationRequest {
	return CreateApplicationRequest{
		FullName:      "Awa Diop",
		Email:         "awa@example.com",
		Whatsapp:      "+221770000000",
		Age:           "18-25",
		City:          "Dakar",
		HasComputer:   true,
		HasInternet:   true,
		Motivation:    "I want to build websites",
		HoursPerWeek:  10,
		HowDidYouKnow: "friend",
	}
}

func TestCreateApplicationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockApplicationManager(ctrl)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name         string
		body         func() interface{}
		mockSetup    func()
		expectedCode int
		expectedErr  string
	}{
		{
			name: "created",
			body: func() interface{} { return validApplicationRequest() },
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, app *models.Application) (*models.Application, error) {
						assert.Equal(t, "awa@example.com", app.Email)
						assert.True(t, app.HasComputer)
						assert.False(t, app.HasCodeExperience)
						out := *app
						out.ID = uuid.New()
						out.Status = models.ApplicationPending
						out.CreatedAt, out.UpdatedAt = now, now
						return &out, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "long free-form fields",
			body: func() interface{} {
				req := validApplicationRequest()
				req.Age = strings.Repeat("2", 40)
				req.Whatsapp = strings.Repeat("7", 80)
				req.City = strings.Repeat("Dakar ", 60)
				return req
			},
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, app *models.Application) (*models.Application, error) {
						assert.Len(t, app.Age, 40)
						out := *app
						out.ID = uuid.New()
						out.Status = models.ApplicationPending
						out.CreatedAt, out.UpdatedAt = now, now
						return &out, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "duplicate email",
			body: func() interface{} { return validApplicationRequest() },
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, services.ErrApplicationExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  services.ErrApplicationExists.Error(),
		},
		{
			name: "bad email",
			body: func() interface{} {
				req := validApplicationRequest()
				req.Email = "awa@localhost"
				return req
			},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "email: must be in a valid format.",
		},
		{
			name: "missing city",
			body: func() interface{} {
				req := validApplicationRequest()
				req.City = ""
				return req
			},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "city: cannot be blank.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := serve(t, http.MethodPost, "/applications", "/applications", jsonBody(t, tt.body()), NewCreateApplicationHandler(mockSvc))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, decodeError(t, rr))
				return
			}
			var resp ApplicationResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "pending", resp.Status)
			assert.Equal(t, 10, resp.HoursPerWeek)
			assert.True(t, resp.CreatedAt.Equal(now))
			_, err := uuid.Parse(resp.ID)
			assert.NoError(t, err)
		})
	}
}

func TestListApplicationsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockApplicationManager(ctrl)
	approved := models.ApplicationApproved

	tests := []struct {
		name         string
		target       string
		mockSetup    func()
		expectedCode int
	}{
		{
			name:   "no filter",
			target: "/applications",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any(), nil, models.ListParams{Skip: 0, Limit: 100}).
					Return([]models.Application{{ID: uuid.New()}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "status filter",
			target: "/applications?status=approved&limit=5",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any(), &approved, models.ListParams{Skip: 0, Limit: 5}).
					Return([]models.Application{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "unknown status",
			target:       "/applications?status=archived",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			rr := serve(t, http.MethodGet, "/applications", tt.target, nil, NewListApplicationsHandler(mockSvc))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestListApplicationsHandler_EmptyIsArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockApplicationManager(ctrl)
	mockSvc.EXPECT().List(gomock.Any(), nil, gomock.Any()).Return(nil, nil)

	rr := serve(t, http.MethodGet, "/applications", "/applications", nil, NewListApplicationsHandler(mockSvc))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestUpdateApplicationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockApplicationManager(ctrl)
	id := uuid.New()

	tests := []struct {
		name         string
		body         interface{}
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "approve",
			body: map[string]string{"status": "approved"},
			mockSetup: func() {
				mockSvc.EXPECT().UpdateStatus(gomock.Any(), id, models.ApplicationApproved).
					Return(&models.Application{ID: id, Status: models.ApplicationApproved}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "unknown status",
			body:         map[string]string{"status": "archived"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing status",
			body:         map[string]string{},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "not found",
			body: map[string]string{"status": "rejected"},
			mockSetup: func() {
				mockSvc.EXPECT().UpdateStatus(gomock.Any(), id, models.ApplicationRejected).Return(nil, services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			rr := serve(t, http.MethodPut, "/applications/{id}", "/applications/"+id.String(), jsonBody(t, tt.body), NewUpdateApplicationHandler(mockSvc))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetAndDeleteApplicationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockApplicationManager(ctrl)
	id := uuid.New()
	app := &models.Application{ID: id, Email: "awa@example.com", Status: models.ApplicationPending}

	gomock.InOrder(
		mockSvc.EXPECT().Get(gomock.Any(), id).Return(app, nil),
		mockSvc.EXPECT().Delete(gomock.Any(), id).Return(app, nil),
		mockSvc.EXPECT().Get(gomock.Any(), id).Return(nil, services.ErrNotFound),
	)

	rr := serve(t, http.MethodGet, "/applications/{id}", "/applications/"+id.String(), nil, NewGetApplicationHandler(mockSvc))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(t, http.MethodDelete, "/applications/{id}", "/applications/"+id.String(), nil, NewDeleteApplicationHandler(mockSvc))
	assert.Equal(t, http.StatusOK, rr.Code)
	var deleted ApplicationResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&deleted))
	assert.Equal(t, id.String(), deleted.ID)

	rr = serve(t, http.MethodGet, "/applications/{id}", "/applications/"+id.String(), nil, NewGetApplicationHandler(mockSvc))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application not found", decodeError(t, rr))
}
