package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-formation-admin/internal/services"
)

// serve routes a single request through a chi router so URL params resolve.
func serve(t *testing.T, method, pattern, target string, body io.Reader, h http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.Method(method, pattern, h)

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	if s, ok := v.(string); ok {
		return bytes.NewBufferString(s)
	}
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp.Error
}

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{"validation", fmt.Errorf("%w: bad rating", services.ErrValidation), http.StatusBadRequest, "validation failed: bad rating"},
		{"application exists", services.ErrApplicationExists, http.StatusBadRequest, services.ErrApplicationExists.Error()},
		{"user exists", services.ErrUserAlreadyExists, http.StatusBadRequest, services.ErrUserAlreadyExists.Error()},
		{"inactive", services.ErrInactiveUser, http.StatusBadRequest, "inactive user"},
		{"credentials", services.ErrInvalidCredentials, http.StatusUnauthorized, errWrongLoginPair},
		{"not found", fmt.Errorf("quote: %w", services.ErrNotFound), http.StatusNotFound, "quote not found"},
		{"deadline", context.DeadlineExceeded, http.StatusServiceUnavailable, errUnavailable},
		{"other", errors.New("boom"), http.StatusInternalServerError, errInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeServiceError(rr, tt.err, "quote")

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedBody, decodeError(t, rr))
		})
	}
}

func TestParseListParams(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantOK    bool
		wantSkip  int
		wantLimit int
	}{
		{"defaults", "", true, 0, 100},
		{"explicit", "?skip=20&limit=5", true, 20, 5},
		{"negative skip", "?skip=-1", false, 0, 0},
		{"zero limit", "?limit=0", false, 0, 0},
		{"not a number", "?limit=ten", false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/items"+tt.query, nil)

			params, ok := parseListParams(rr, req, defaultLimit)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantSkip, params.Skip)
				assert.Equal(t, tt.wantLimit, params.Limit)
			} else {
				assert.Equal(t, http.StatusBadRequest, rr.Code)
			}
		})
	}
}

func TestEmailRegexp(t *testing.T) {
	assert.True(t, emailRegexp.MatchString("jane.doe+news@example.co"))
	assert.False(t, emailRegexp.MatchString("jane@example"))
	assert.False(t, emailRegexp.MatchString("not an email"))
}
