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

func TestCreateQuoteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockQuoteManager(ctrl)
	budget := 1500.0
	negative := -1.0

	tests := []struct {
		name         string
		body         interface{}
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "created with optional fields",
			body: CreateQuoteRequest{FullName: "Awa", Email: "awa@example.com", Phone: "+221", ServiceType: "website", Description: "Landing page", Budget: &budget},
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(&models.Quote{ID: uuid.New(), Email: "awa@example.com", Budget: &budget, Status: models.QuotePending}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "negative budget",
			body:         CreateQuoteRequest{FullName: "Awa", Email: "awa@example.com", Phone: "+221", ServiceType: "website", Description: "x", Budget: &negative},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing phone",
			body:         CreateQuoteRequest{FullName: "Awa", Email: "awa@example.com", ServiceType: "website", Description: "x"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			rr := serve(t, http.MethodPost, "/quotes", "/quotes", jsonBody(t, tt.body), NewCreateQuoteHandler(mockSvc))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestCreateQuoteHandler_NullOptionals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockQuoteManager(ctrl)
	mockSvc.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&models.Quote{ID: uuid.New(), Email: "awa@example.com", Status: models.QuotePending}, nil)

	rr := serve(t, http.MethodPost, "/quotes", "/quotes",
		jsonBody(t, CreateQuoteRequest{FullName: "Awa", Email: "awa@example.com", Phone: "+221", ServiceType: "website", Description: "x"}),
		NewCreateQuoteHandler(mockSvc))

	assert.Equal(t, http.StatusCreated, rr.Code)
	var raw map[string]interface{}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&raw))
	assert.Nil(t, raw["budget"])
	assert.Nil(t, raw["admin_notes"])
	assert.Equal(t, "pending", raw["status"])
}

func TestUpdateQuoteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockQuoteManager(ctrl)
	id := uuid.New()
	notes := "call back monday"
	status := models.QuoteCompleted

	mockSvc.EXPECT().Update(gomock.Any(), id, models.QuotePatch{Status: &status, AdminNotes: &notes}).
		Return(&models.Quote{ID: id, Status: status, AdminNotes: &notes}, nil)

	rr := serve(t, http.MethodPut, "/quotes/{id}", "/quotes/"+id.String(),
		jsonBody(t, map[string]string{"status": "completed", "admin_notes": notes}), NewUpdateQuoteHandler(mockSvc))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp QuoteResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "completed", resp.Status)
	require.NotNil(t, resp.AdminNotes)
	assert.Equal(t, notes, *resp.AdminNotes)
}

func TestQuoteStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockQuoteManager(ctrl)
	id := uuid.New()

	tests := []struct {
		name         string
		body         interface{}
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "status without notes",
			body: map[string]string{"status": "approved"},
			mockSetup: func() {
				mockSvc.EXPECT().UpdateStatus(gomock.Any(), id, models.QuoteApproved, nil).
					Return(&models.Quote{ID: id, Status: models.QuoteApproved}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "unknown status from service",
			body: map[string]string{"status": "lost"},
			mockSetup: func() {
				mockSvc.EXPECT().UpdateStatus(gomock.Any(), id, models.QuoteStatus("lost"), nil).
					Return(nil, fmt.Errorf("%w: %v", services.ErrValidation, models.ErrUnknownStatus))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing status",
			body:         map[string]string{"admin_notes": "x"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			rr := serve(t, http.MethodPatch, "/quotes/{id}/status", "/quotes/"+id.String()+"/status", jsonBody(t, tt.body), NewQuoteStatusHandler(mockSvc))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestListQuotesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockQuoteManager(ctrl)
	completed := models.QuoteCompleted

	mockSvc.EXPECT().List(gomock.Any(), &completed, models.ListParams{Limit: 100}).
		Return([]models.Quote{{ID: uuid.New(), Status: completed}}, nil)

	rr := serve(t, http.MethodGet, "/quotes", "/quotes?status=completed", nil, NewListQuotesHandler(mockSvc))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(t, http.MethodGet, "/quotes", "/quotes?status=done", nil, NewListQuotesHandler(mockSvc))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetAndDeleteQuoteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockQuoteManager(ctrl)
	id := uuid.New()

	mockSvc.EXPECT().Get(gomock.Any(), id).Return(nil, services.ErrNotFound)
	mockSvc.EXPECT().Delete(gomock.Any(), id).Return(&models.Quote{ID: id}, nil)

	rr := serve(t, http.MethodGet, "/quotes/{id}", "/quotes/"+id.String(), nil, NewGetQuoteHandler(mockSvc))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "quote not found", decodeError(t, rr))

	rr = serve(t, http.MethodDelete, "/quotes/{id}", "/quotes/"+id.String(), nil, NewDeleteQuoteHandler(mockSvc))
	assert.Equal(t, http.StatusOK, rr.Code)
}
