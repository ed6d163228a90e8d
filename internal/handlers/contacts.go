package handlers

import (
	"context"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-formation-admin/internal/models"
)

//go:generate mockgen -source=contacts.go -destination=contacts_mock.go -package=handlers

// ContactManager is the contact message service.
type ContactManager interface {
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	List(ctx context.Context, isRead *bool, params models.ListParams) ([]models.Contact, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	MarkRead(ctx context.Context, id uuid.UUID, isRead bool) (*models.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Contact, error)
}

// CreateContactRequest
// swagger:model CreateContactRequest
type CreateContactRequest struct {
	// required: true
	FullName string `json:"full_name"`
	// required: true
	Email string `json:"email"`
	// required: true
	Message string `json:"message"`
}

func (r *CreateContactRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FullName, validation.Required),
		validation.Field(&r.Email, validation.Required, validation.Match(emailRegexp)),
		validation.Field(&r.Message, validation.Required, validation.Length(1, 5000)),
	)
}

// UpdateContactRequest
// swagger:model UpdateContactRequest
type UpdateContactRequest struct {
	// required: true
	IsRead *bool `json:"is_read"`
}

func (r *UpdateContactRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.IsRead, validation.NotNil),
	)
}

// NewCreateContactHandler
// @Summary Send a contact message
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body handlers.CreateContactRequest true "Message"
// @Success 201 {object} handlers.ContactResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 429 {object} handlers.ErrorResponse
// @Router /contacts [post]
func NewCreateContactHandler(svc ContactManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateContactRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		contact, err := svc.Create(r.Context(), &models.Contact{
			FullName: req.FullName,
			Email:    req.Email,
			Message:  req.Message,
		})
		if err != nil {
			writeServiceError(w, err, "contact")
			return
		}

		writeJSON(w, http.StatusCreated, newContactResponse(contact))
	}
}

// NewListContactsHandler
// @Summary List contact messages
// @Tags contacts
// @Security BearerAuth
// @Produce json
// @Param is_read query bool false "Filter by read flag"
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} handlers.ContactResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /contacts [get]
func NewListContactsHandler(svc ContactManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var isRead *bool
		if raw := r.URL.Query().Get("is_read"); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "is_read must be a boolean")
				return
			}
			isRead = &v
		}
		params, ok := parseListParams(w, r, defaultLimit)
		if !ok {
			return
		}

		contacts, err := svc.List(r.Context(), isRead, params)
		if err != nil {
			writeServiceError(w, err, "contact")
			return
		}

		writeJSON(w, http.StatusOK, mapSlice(contacts, newContactResponse))
	}
}

// NewGetContactHandler
// @Summary Get contact message
// @Tags contacts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} handlers.ContactResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /contacts/{id} [get]
func NewGetContactHandler(svc ContactManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		contact, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "contact")
			return
		}

		writeJSON(w, http.StatusOK, newContactResponse(contact))
	}
}

// NewUpdateContactHandler toggles the read flag.
// @Summary Mark contact message read or unread
// @Tags contacts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param update body handlers.UpdateContactRequest true "Read flag"
// @Success 200 {object} handlers.ContactResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /contacts/{id} [put]
func NewUpdateContactHandler(svc ContactManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req UpdateContactRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		contact, err := svc.MarkRead(r.Context(), id, *req.IsRead)
		if err != nil {
			writeServiceError(w, err, "contact")
			return
		}

		writeJSON(w, http.StatusOK, newContactResponse(contact))
	}
}

// NewDeleteContactHandler
// @Summary Delete contact message
// @Tags contacts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} handlers.ContactResponse "Deleted message"
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /contacts/{id} [delete]
func NewDeleteContactHandler(svc ContactManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		contact, err := svc.Delete(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "contact")
			return
		}

		writeJSON(w, http.StatusOK, newContactResponse(contact))
	}
}
