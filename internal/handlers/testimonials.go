package handlers

import (
	"context"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-formation-admin/internal/models"
)

//go:generate mockgen -source=testimonials.go -destination=testimonials_mock.go -package=handlers

const adminTestimonialLimit = 10

// TestimonialManager is the testimonial service.
type TestimonialManager interface {
	Create(ctx context.Context, t *models.Testimonial) (*models.Testimonial, error)
	ListApproved(ctx context.Context, limit *int) ([]models.Testimonial, error)
	List(ctx context.Context, status *models.TestimonialStatus, params models.ListParams) ([]models.Testimonial, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Testimonial, error)
	Update(ctx context.Context, id uuid.UUID, patch models.TestimonialPatch) (*models.Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Testimonial, error)
}

// mediaURLs checks every entry of a []string or *[]string as an absolute URL.
var mediaURLs = validation.By(func(value interface{}) error {
	var urls []string
	switch v := value.(type) {
	case []string:
		urls = v
	case *[]string:
		if v != nil {
			urls = *v
		}
	}
	for _, u := range urls {
		if u == "" {
			return errors.New("must not contain empty urls")
		}
		if err := is.URL.Validate(u); err != nil {
			return err
		}
	}
	return nil
})

// CreateTestimonialRequest
// swagger:model CreateTestimonialRequest
type CreateTestimonialRequest struct {
	// required: true
	Name string `json:"name"`
	// required: true
	// default: Alumni 2024
	Role string `json:"role"`
	// required: true
	Content string `json:"content"`
	// Rating from 1 to 5, rounded to the nearest half point
	// required: true
	// default: 4.5
	Rating    float64  `json:"rating"`
	MediaURLs []string `json:"media_urls"`
}

func (r *CreateTestimonialRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Role, validation.Required),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Rating, validation.Required, validation.Min(models.MinRating), validation.Max(models.MaxRating)),
		validation.Field(&r.MediaURLs, mediaURLs),
	)
}

// UpdateTestimonialRequest is a partial moderation edit.
// swagger:model UpdateTestimonialRequest
type UpdateTestimonialRequest struct {
	Name      *string   `json:"name"`
	Role      *string   `json:"role"`
	Content   *string   `json:"content"`
	Rating    *float64  `json:"rating"`
	MediaURLs *[]string `json:"media_urls"`
	// enum: pending,approved,rejected
	Status *models.TestimonialStatus `json:"status"`
}

func (r *UpdateTestimonialRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.NilOrNotEmpty),
		validation.Field(&r.Role, validation.NilOrNotEmpty),
		validation.Field(&r.Content, validation.NilOrNotEmpty),
		validation.Field(&r.Rating, validation.Min(models.MinRating), validation.Max(models.MaxRating)),
		validation.Field(&r.MediaURLs, mediaURLs),
	)
}

// NewCreateTestimonialHandler
// @Summary Submit a testimonial
// @Description Stored as pending until approved by an admin
// @Tags testimonials
// @Accept json
// @Produce json
// @Param testimonial body handlers.CreateTestimonialRequest true "Testimonial"
// @Success 201 {object} handlers.TestimonialResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 429 {object} handlers.ErrorResponse
// @Router /testimonials [post]
func NewCreateTestimonialHandler(svc TestimonialManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateTestimonialRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		t, err := svc.Create(r.Context(), &models.Testimonial{
			Name:      req.Name,
			Role:      req.Role,
			Content:   req.Content,
			Rating:    req.Rating,
			MediaURLs: models.MediaURLs(req.MediaURLs),
		})
		if err != nil {
			writeServiceError(w, err, "testimonial")
			return
		}

		writeJSON(w, http.StatusCreated, newTestimonialResponse(t))
	}
}

// NewListApprovedTestimonialsHandler is the public testimonial feed.
// @Summary List approved testimonials
// @Tags testimonials
// @Produce json
// @Param limit query int false "Maximum number of items"
// @Success 200 {array} handlers.TestimonialResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /testimonials [get]
func NewListApprovedTestimonialsHandler(svc TestimonialManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var limit *int
		if r.URL.Query().Get("limit") != "" {
			v, err := queryInt(r, "limit", 0)
			if err == nil && v < 1 {
				err = errors.New("limit must be >= 1")
			}
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			limit = &v
		}

		items, err := svc.ListApproved(r.Context(), limit)
		if err != nil {
			writeServiceError(w, err, "testimonial")
			return
		}

		writeJSON(w, http.StatusOK, mapSlice(items, newTestimonialResponse))
	}
}

// NewListTestimonialsHandler lists testimonials of every status for moderation.
// @Summary List all testimonials
// @Tags testimonials
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status" Enums(pending, approved, rejected)
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} handlers.TestimonialResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /testimonials/admin [get]
func NewListTestimonialsHandler(svc TestimonialManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, ok := parseStatus(w, r, models.ParseTestimonialStatus)
		if !ok {
			return
		}
		params, ok := parseListParams(w, r, adminTestimonialLimit)
		if !ok {
			return
		}

		items, err := svc.List(r.Context(), status, params)
		if err != nil {
			writeServiceError(w, err, "testimonial")
			return
		}

		writeJSON(w, http.StatusOK, mapSlice(items, newTestimonialResponse))
	}
}

// NewGetTestimonialHandler
// @Summary Get testimonial
// @Tags testimonials
// @Security BearerAuth
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} handlers.TestimonialResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /testimonials/{id} [get]
func NewGetTestimonialHandler(svc TestimonialManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		t, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "testimonial")
			return
		}

		writeJSON(w, http.StatusOK, newTestimonialResponse(t))
	}
}

// NewUpdateTestimonialHandler
// @Summary Moderate testimonial
// @Tags testimonials
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Param update body handlers.UpdateTestimonialRequest true "Changes"
// @Success 200 {object} handlers.TestimonialResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /testimonials/{id} [patch]
func NewUpdateTestimonialHandler(svc TestimonialManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req UpdateTestimonialRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		patch := models.TestimonialPatch{
			Name:    req.Name,
			Role:    req.Role,
			Content: req.Content,
			Rating:  req.Rating,
			Status:  req.Status,
		}
		if req.MediaURLs != nil {
			media := models.MediaURLs(*req.MediaURLs)
			patch.MediaURLs = &media
		}

		t, err := svc.Update(r.Context(), id, patch)
		if err != nil {
			writeServiceError(w, err, "testimonial")
			return
		}

		writeJSON(w, http.StatusOK, newTestimonialResponse(t))
	}
}

// NewDeleteTestimonialHandler
// @Summary Delete testimonial
// @Tags testimonials
// @Security BearerAuth
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} handlers.TestimonialResponse "Deleted testimonial"
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /testimonials/{id} [delete]
func NewDeleteTestimonialHandler(svc TestimonialManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		t, err := svc.Delete(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "testimonial")
			return
		}

		writeJSON(w, http.StatusOK, newTestimonialResponse(t))
	}
}
