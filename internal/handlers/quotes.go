package handlers

import (
	"context"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-formation-admin/internal/models"
)

//go:generate mockgen -source=quotes.go -destination=quotes_mock.go -package=handlers

// QuoteManager is the quote request service.
type QuoteManager interface {
	Create(ctx context.Context, quote *models.Quote) (*models.Quote, error)
	List(ctx context.Context, status *models.QuoteStatus, params models.ListParams) ([]models.Quote, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Quote, error)
	Update(ctx context.Context, id uuid.UUID, patch models.QuotePatch) (*models.Quote, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.QuoteStatus, adminNotes *string) (*models.Quote, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Quote, error)
}

// CreateQuoteRequest
// swagger:model CreateQuoteRequest
type CreateQuoteRequest struct {
	// required: true
	FullName string `json:"full_name"`
	// required: true
	Email       string  `json:"email"`
	CompanyName *string `json:"company_name"`
	// required: true
	Phone string `json:"phone"`
	// required: true
	// default: website
	ServiceType string `json:"service_type"`
	// required: true
	Description string   `json:"description"`
	Budget      *float64 `json:"budget"`
	Timeline    *string  `json:"timeline"`
}

func (r *CreateQuoteRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FullName, validation.Required),
		validation.Field(&r.Email, validation.Required, validation.Match(emailRegexp)),
		validation.Field(&r.Phone, validation.Required),
		validation.Field(&r.ServiceType, validation.Required),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.Budget, validation.Min(0.0)),
	)
}

// UpdateQuoteRequest is a full or partial quote edit; omitted fields are kept.
// swagger:model UpdateQuoteRequest
type UpdateQuoteRequest struct {
	FullName    *string  `json:"full_name"`
	Email       *string  `json:"email"`
	CompanyName *string  `json:"company_name"`
	Phone       *string  `json:"phone"`
	ServiceType *string  `json:"service_type"`
	Description *string  `json:"description"`
	Budget      *float64 `json:"budget"`
	Timeline    *string  `json:"timeline"`
	// enum: pending,approved,rejected,completed
	Status     *models.QuoteStatus `json:"status"`
	AdminNotes *string             `json:"admin_notes"`
}

func (r *UpdateQuoteRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FullName, validation.NilOrNotEmpty),
		validation.Field(&r.Email, validation.NilOrNotEmpty, validation.Match(emailRegexp)),
		validation.Field(&r.Phone, validation.NilOrNotEmpty),
		validation.Field(&r.ServiceType, validation.NilOrNotEmpty),
		validation.Field(&r.Description, validation.NilOrNotEmpty),
		validation.Field(&r.Budget, validation.Min(0.0)),
	)
}

// QuoteStatusRequest
// swagger:model QuoteStatusRequest
type QuoteStatusRequest struct {
	// required: true
	// enum: pending,approved,rejected,completed
	Status     models.QuoteStatus `json:"status"`
	AdminNotes *string            `json:"admin_notes"`
}

func (r *QuoteStatusRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Status, validation.Required),
	)
}

// NewCreateQuoteHandler
// @Summary Request a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body handlers.CreateQuoteRequest true "Quote request"
// @Success 201 {object} handlers.QuoteResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 429 {object} handlers.ErrorResponse
// @Router /quotes [post]
func NewCreateQuoteHandler(svc QuoteManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateQuoteRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		quote, err := svc.Create(r.Context(), &models.Quote{
			FullName:    req.FullName,
			Email:       req.Email,
			CompanyName: req.CompanyName,
			Phone:       req.Phone,
			ServiceType: req.ServiceType,
			Description: req.Description,
			Budget:      req.Budget,
			Timeline:    req.Timeline,
		})
		if err != nil {
			writeServiceError(w, err, "quote")
			return
		}

		writeJSON(w, http.StatusCreated, newQuoteResponse(quote))
	}
}

// NewListQuotesHandler
// @Summary List quote requests
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status" Enums(pending, approved, rejected, completed)
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} handlers.QuoteResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /quotes [get]
func NewListQuotesHandler(svc QuoteManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, ok := parseStatus(w, r, models.ParseQuoteStatus)
		if !ok {
			return
		}
		params, ok := parseListParams(w, r, defaultLimit)
		if !ok {
			return
		}

		quotes, err := svc.List(r.Context(), status, params)
		if err != nil {
			writeServiceError(w, err, "quote")
			return
		}

		writeJSON(w, http.StatusOK, mapSlice(quotes, newQuoteResponse))
	}
}

// NewGetQuoteHandler
// @Summary Get quote request
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} handlers.QuoteResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /quotes/{id} [get]
func NewGetQuoteHandler(svc QuoteManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		quote, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "quote")
			return
		}

		writeJSON(w, http.StatusOK, newQuoteResponse(quote))
	}
}

// NewUpdateQuoteHandler
// @Summary Update quote request
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param quote body handlers.UpdateQuoteRequest true "Changes"
// @Success 200 {object} handlers.QuoteResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /quotes/{id} [put]
func NewUpdateQuoteHandler(svc QuoteManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req UpdateQuoteRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		quote, err := svc.Update(r.Context(), id, models.QuotePatch{
			FullName:    req.FullName,
			Email:       req.Email,
			CompanyName: req.CompanyName,
			Phone:       req.Phone,
			ServiceType: req.ServiceType,
			Description: req.Description,
			Budget:      req.Budget,
			Timeline:    req.Timeline,
			Status:      req.Status,
			AdminNotes:  req.AdminNotes,
		})
		if err != nil {
			writeServiceError(w, err, "quote")
			return
		}

		writeJSON(w, http.StatusOK, newQuoteResponse(quote))
	}
}

// NewQuoteStatusHandler sets the status and optional admin notes.
// @Summary Update quote status
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param update body handlers.QuoteStatusRequest true "Status and notes"
// @Success 200 {object} handlers.QuoteResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /quotes/{id}/status [patch]
func NewQuoteStatusHandler(svc QuoteManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req QuoteStatusRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		quote, err := svc.UpdateStatus(r.Context(), id, req.Status, req.AdminNotes)
		if err != nil {
			writeServiceError(w, err, "quote")
			return
		}

		writeJSON(w, http.StatusOK, newQuoteResponse(quote))
	}
}

// NewDeleteQuoteHandler
// @Summary Delete quote request
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} handlers.QuoteResponse "Deleted quote"
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /quotes/{id} [delete]
func NewDeleteQuoteHandler(svc QuoteManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		quote, err := svc.Delete(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "quote")
			return
		}

		writeJSON(w, http.StatusOK, newQuoteResponse(quote))
	}
}
