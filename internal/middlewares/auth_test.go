package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-formation-admin/internal/models"
	"github.com/sbilibin2017/gw-formation-admin/internal/services"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := &models.User{ID: uuid.New(), Username: "admin", IsActive: true, IsAdmin: true}

	tests := []struct {
		name             string
		mockSetup        func(tk *MockTokener, res *MockUserResolver)
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(tk *MockTokener, res *MockUserResolver) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "InvalidToken",
			mockSetup: func(tk *MockTokener, res *MockUserResolver) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("sometoken", nil)
				res.EXPECT().CurrentUser(gomock.Any(), "sometoken").Return(nil, services.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "StoreTimeout",
			mockSetup: func(tk *MockTokener, res *MockUserResolver) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				res.EXPECT().CurrentUser(gomock.Any(), "tok").Return(nil, context.DeadlineExceeded)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name: "StoreFailure",
			mockSetup: func(tk *MockTokener, res *MockUserResolver) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				res.EXPECT().CurrentUser(gomock.Any(), "tok").Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "ValidToken",
			mockSetup: func(tk *MockTokener, res *MockUserResolver) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				res.EXPECT().CurrentUser(gomock.Any(), "validtoken").Return(admin, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockResolver := NewMockUserResolver(ctrl)
			tt.mockSetup(mockTokener, mockResolver)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				user, ok := UserFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, admin, user)
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener, mockResolver)(next)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if rr.Code == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
				var body map[string]string
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, "could not validate credentials", body["error"])
			}
		})
	}
}

func TestRequireActiveAndAdmin(t *testing.T) {
	tests := []struct {
		name           string
		user           *models.User
		expectedStatus int
	}{
		{"no user in context", nil, http.StatusUnauthorized},
		{"inactive", &models.User{IsActive: false, IsAdmin: true}, http.StatusForbidden},
		{"active non-admin", &models.User{IsActive: true}, http.StatusForbidden},
		{"active admin", &models.User{IsActive: true, IsAdmin: true}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			handler := RequireActive(RequireAdmin(next))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.user != nil {
				req = req.WithContext(WithUser(req.Context(), tt.user))
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestRequireActive_AllowsNonAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req = req.WithContext(WithUser(req.Context(), &models.User{IsActive: true}))
	rr := httptest.NewRecorder()
	RequireActive(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
