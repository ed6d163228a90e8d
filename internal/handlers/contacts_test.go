package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-formation-admin/internal/models"
)

func TestCreateContactHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockContactManager(ctrl)

	tests := []struct {
		name         string
		body         interface{}
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "created",
			body: CreateContactRequest{FullName: "Awa", Email: "awa@example.com", Message: "Hello"},
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), &models.Contact{FullName: "Awa", Email: "awa@example.com", Message: "Hello"}).
					Return(&models.Contact{ID: uuid.New(), FullName: "Awa", Email: "awa@example.com", Message: "Hello"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "empty message",
			body:         CreateContactRequest{FullName: "Awa", Email: "awa@example.com"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			rr := serve(t, http.MethodPost, "/contacts", "/contacts", jsonBody(t, tt.body), NewCreateContactHandler(mockSvc))
			assert.Equal(t, tt.expectedCode, rr.Code)
			if rr.Code == http.StatusCreated {
				var resp ContactResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.False(t, resp.IsRead)
			}
		})
	}
}

func TestListContactsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockContactManager(ctrl)
	unread := false

	tests := []struct {
		name         string
		target       string
		mockSetup    func()
		expectedCode int
	}{
		{
			name:   "unread only",
			target: "/contacts?is_read=false",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any(), &unread, models.ListParams{Limit: 100}).Return([]models.Contact{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "all",
			target: "/contacts?skip=10",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any(), nil, models.ListParams{Skip: 10, Limit: 100}).Return([]models.Contact{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "bad flag",
			target:       "/contacts?is_read=maybe",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			rr := serve(t, http.MethodGet, "/contacts", tt.target, nil, NewListContactsHandler(mockSvc))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestUpdateContactHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockContactManager(ctrl)
	id := uuid.New()

	mockSvc.EXPECT().MarkRead(gomock.Any(), id, true).Return(&models.Contact{ID: id, IsRead: true}, nil)

	rr := serve(t, http.MethodPut, "/contacts/{id}", "/contacts/"+id.String(),
		jsonBody(t, map[string]bool{"is_read": true}), NewUpdateContactHandler(mockSvc))
	assert.Equal(t, http.StatusOK, rr.Code)
	var resp ContactResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.IsRead)

	rr = serve(t, http.MethodPut, "/contacts/{id}", "/contacts/"+id.String(),
		jsonBody(t, map[string]bool{}), NewUpdateContactHandler(mockSvc))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "is_read: is required.", decodeError(t, rr))
}

func TestGetAndDeleteContactHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockContactManager(ctrl)
	id := uuid.New()
	contact := &models.Contact{ID: id, Email: "awa@example.com"}

	mockSvc.EXPECT().Get(gomock.Any(), id).Return(contact, nil)
	mockSvc.EXPECT().Delete(gomock.Any(), id).Return(contact, nil)

	rr := serve(t, http.MethodGet, "/contacts/{id}", "/contacts/"+id.String(), nil, NewGetContactHandler(mockSvc))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(t, http.MethodDelete, "/contacts/{id}", "/contacts/"+id.String(), nil, NewDeleteContactHandler(mockSvc))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(t, http.MethodDelete, "/contacts/{id}", "/contacts/123", nil, NewDeleteContactHandler(mockSvc))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
