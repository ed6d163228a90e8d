package handlers

import (
	"context"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-formation-admin/internal/models"
)

//go:generate mockgen -source=applications.go -destination=applications_mock.go -package=handlers

// ApplicationManager is the enrollment application service.
type ApplicationManager interface {
	Create(ctx context.Context, app *models.Application) (*models.Application, error)
	List(ctx context.Context, status *models.ApplicationStatus, params models.ListParams) ([]models.Application, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Application, error)
}

// CreateApplicationRequest is the public enrollment form.
// swagger:model CreateApplicationRequest
type CreateApplicationRequest struct {
	// required: true
	FullName string `json:"full_name"`
	// required: true
	// default: student@example.com
	Email string `json:"email"`
	// required: true
	Whatsapp string `json:"whatsapp"`
	// required: true
	// default: 18-25
	Age string `json:"age"`
	// required: true
	City              string `json:"city"`
	HasCodeExperience bool   `json:"has_code_experience"`
	HasComputer       bool   `json:"has_computer"`
	HasInternet       bool   `json:"has_internet"`
	// required: true
	Motivation string `json:"motivation"`
	// required: true
	// default: 10
	HoursPerWeek int `json:"hours_per_week"`
	// required: true
	HowDidYouKnow string `json:"how_did_you_know"`
}

func (r *CreateApplicationRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FullName, validation.Required),
		validation.Field(&r.Email, validation.Required, validation.Match(emailRegexp)),
		validation.Field(&r.Whatsapp, validation.Required),
		validation.Field(&r.Age, validation.Required),
		validation.Field(&r.City, validation.Required),
		validation.Field(&r.Motivation, validation.Required),
		validation.Field(&r.HoursPerWeek, validation.Min(0), validation.Max(168)),
		validation.Field(&r.HowDidYouKnow, validation.Required),
	)
}

// UpdateApplicationRequest
// swagger:model UpdateApplicationRequest
type UpdateApplicationRequest struct {
	// required: true
	// enum: pending,approved,rejected
	Status models.ApplicationStatus `json:"status"`
}

func (r *UpdateApplicationRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Status, validation.Required,
			validation.In(models.ApplicationPending, models.ApplicationApproved, models.ApplicationRejected)),
	)
}

// NewCreateApplicationHandler returns the public enrollment handler.
// @Summary Submit an application
// @Description Rejected with 400 when an application with the same email exists
// @Tags applications
// @Accept json
// @Produce json
// @Param application body handlers.CreateApplicationRequest true "Application"
// @Success 201 {object} handlers.ApplicationResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 429 {object} handlers.ErrorResponse
// @Router /applications [post]
func NewCreateApplicationHandler(svc ApplicationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateApplicationRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		app, err := svc.Create(r.Context(), &models.Application{
			FullName:          req.FullName,
			Email:             req.Email,
			Whatsapp:          req.Whatsapp,
			Age:               req.Age,
			City:              req.City,
			HasCodeExperience: req.HasCodeExperience,
			HasComputer:       req.HasComputer,
			HasInternet:       req.HasInternet,
			Motivation:        req.Motivation,
			HoursPerWeek:      req.HoursPerWeek,
			HowDidYouKnow:     req.HowDidYouKnow,
		})
		if err != nil {
			writeServiceError(w, err, "application")
			return
		}

		writeJSON(w, http.StatusCreated, newApplicationResponse(app))
	}
}

// NewListApplicationsHandler
// @Summary List applications
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status" Enums(pending, approved, rejected)
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} handlers.ApplicationResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /applications [get]
func NewListApplicationsHandler(svc ApplicationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, ok := parseStatus(w, r, models.ParseApplicationStatus)
		if !ok {
			return
		}
		params, ok := parseListParams(w, r, defaultLimit)
		if !ok {
			return
		}

		apps, err := svc.List(r.Context(), status, params)
		if err != nil {
			writeServiceError(w, err, "application")
			return
		}

		writeJSON(w, http.StatusOK, mapSlice(apps, newApplicationResponse))
	}
}

// NewGetApplicationHandler
// @Summary Get application
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} handlers.ApplicationResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /applications/{id} [get]
func NewGetApplicationHandler(svc ApplicationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		app, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "application")
			return
		}

		writeJSON(w, http.StatusOK, newApplicationResponse(app))
	}
}

// NewUpdateApplicationHandler changes the review status of an application.
// @Summary Update application status
// @Tags applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param update body handlers.UpdateApplicationRequest true "New status"
// @Success 200 {object} handlers.ApplicationResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /applications/{id} [put]
func NewUpdateApplicationHandler(svc ApplicationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req UpdateApplicationRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		app, err := svc.UpdateStatus(r.Context(), id, req.Status)
		if err != nil {
			writeServiceError(w, err, "application")
			return
		}

		writeJSON(w, http.StatusOK, newApplicationResponse(app))
	}
}

// NewDeleteApplicationHandler
// @Summary Delete application
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} handlers.ApplicationResponse "Deleted application"
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /applications/{id} [delete]
func NewDeleteApplicationHandler(svc ApplicationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		app, err := svc.Delete(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "application")
			return
		}

		writeJSON(w, http.StatusOK, newApplicationResponse(app))
	}
}
