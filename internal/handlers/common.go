package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-formation-admin/internal/logger"
	"github.com/sbilibin2017/gw-formation-admin/internal/models"
	"github.com/sbilibin2017/gw-formation-admin/internal/services"
)

const (
	defaultLimit      = 100
	maxRequestBody    = 1 << 20
	errInvalidBody    = "invalid request body"
	errInternal       = "internal server error"
	errUnavailable    = "service temporarily unavailable"
	errCredentials    = "could not validate credentials"
	errWrongLoginPair = "incorrect username or password"
)

// emailRegexp is the address format accepted on every email field.
var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ErrorResponse is the body of every error reply.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: not found
	Error string `json:"error"`
}

// MessageResponse is a plain informational reply.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps service errors to HTTP statuses. resource names the
// entity in 404 messages.
func writeServiceError(w http.ResponseWriter, err error, resource string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrApplicationExists),
		errors.Is(err, services.ErrUserAlreadyExists),
		errors.Is(err, services.ErrInactiveUser):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, errWrongLoginPair)
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, resource+" not found")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Log.Errorw("request deadline exceeded", "resource", resource, "err", err)
		writeError(w, http.StatusServiceUnavailable, errUnavailable)
	default:
		logger.Log.Errorw("internal server error", "resource", resource, "err", err)
		writeError(w, http.StatusInternalServerError, errInternal)
	}
}

// validatable is implemented by request payloads.
type validatable interface {
	Validate() error
}

// decodeJSON reads a JSON body into dst and validates it.
// It writes the 400 reply itself and reports whether the handler may continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst validatable) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidBody)
		return false
	}
	if err := dst.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// parseID reads the {id} URL parameter.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid id %q", raw))
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return v, nil
}

// parseListParams reads skip and limit. skip must be >= 0 and limit > 0.
func parseListParams(w http.ResponseWriter, r *http.Request, limitDefault int) (models.ListParams, bool) {
	skip, err := queryInt(r, "skip", 0)
	if err == nil && skip < 0 {
		err = errors.New("skip must be >= 0")
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return models.ListParams{}, false
	}

	limit, err := queryInt(r, "limit", limitDefault)
	if err == nil && limit < 1 {
		err = errors.New("limit must be >= 1")
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return models.ListParams{}, false
	}

	return models.ListParams{Skip: skip, Limit: limit}, true
}

// parseStatus reads an optional status filter with parse, rejecting unknown values.
func parseStatus[T any](w http.ResponseWriter, r *http.Request, parse func(string) (T, error)) (*T, bool) {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return nil, true
	}
	s, err := parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return &s, true
}
