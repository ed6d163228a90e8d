package handlers

import (
	"context"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-formation-admin/internal/middlewares"
	"github.com/sbilibin2017/gw-formation-admin/internal/models"
	"github.com/sbilibin2017/gw-formation-admin/internal/services"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

// UserManager is the staff account service used by the /users handlers.
type UserManager interface {
	List(ctx context.Context, params models.ListParams) ([]models.User, error)
	Create(ctx context.Context, in services.NewUser) (*models.User, error)
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, changes services.UserChanges) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// CreateUserRequest
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// required: true
	// default: jdoe
	Username string `json:"username"`
	// required: true
	// default: jdoe@example.com
	Email string `json:"email"`
	// required: true
	FullName string `json:"full_name"`
	// required: true
	Password string `json:"password"`
	// default: true
	IsActive *bool `json:"is_active"`
	// default: false
	IsAdmin bool `json:"is_admin"`
}

func (r *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&r.Email, validation.Required, validation.Match(emailRegexp)),
		validation.Field(&r.FullName, validation.Required),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 72)),
	)
}

// UpdateUserRequest carries the fields to change; omitted fields are kept.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	Password *string `json:"password"`
	IsActive *bool   `json:"is_active"`
	IsAdmin  *bool   `json:"is_admin"`
}

func (r *UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username, validation.NilOrNotEmpty, validation.Length(3, 50)),
		validation.Field(&r.Email, validation.NilOrNotEmpty, validation.Match(emailRegexp)),
		validation.Field(&r.FullName, validation.NilOrNotEmpty),
		validation.Field(&r.Password, validation.NilOrNotEmpty, validation.Length(6, 72)),
	)
}

// NewListUsersHandler returns an HTTP handler listing staff accounts.
// @Summary List users
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} handlers.UserResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /users [get]
func NewListUsersHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := parseListParams(w, r, defaultLimit)
		if !ok {
			return
		}

		users, err := svc.List(r.Context(), params)
		if err != nil {
			writeServiceError(w, err, "user")
			return
		}

		writeJSON(w, http.StatusOK, mapSlice(users, newUserResponse))
	}
}

// NewCreateUserHandler returns an HTTP handler creating a staff account.
// @Summary Create user
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param user body handlers.CreateUserRequest true "New user"
// @Success 201 {object} handlers.UserResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid body or username/email taken"
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /users [post]
func NewCreateUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		in := services.NewUser{
			Username: req.Username,
			Email:    req.Email,
			FullName: req.FullName,
			Password: req.Password,
			IsActive: true,
			IsAdmin:  req.IsAdmin,
		}
		if req.IsActive != nil {
			in.IsActive = *req.IsActive
		}

		user, err := svc.Create(r.Context(), in)
		if err != nil {
			writeServiceError(w, err, "user")
			return
		}

		writeJSON(w, http.StatusCreated, newUserResponse(user))
	}
}

// NewMeHandler returns the authenticated user.
// @Summary Current user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} handlers.UserResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse "Inactive user"
// @Router /users/me [get]
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middlewares.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, errCredentials)
			return
		}
		writeJSON(w, http.StatusOK, newUserResponse(user))
	}
}

// NewGetUserHandler
// @Summary Get user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.UserResponse
// @Failure 400 {object} handlers.ErrorResponse "Malformed id"
// @Failure 404 {object} handlers.ErrorResponse
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		user, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "user")
			return
		}

		writeJSON(w, http.StatusOK, newUserResponse(user))
	}
}

// NewUpdateUserHandler
// @Summary Update user
// @Description Partial update; a new password is re-hashed
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body handlers.UpdateUserRequest true "Changes"
// @Success 200 {object} handlers.UserResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /users/{id} [put]
func NewUpdateUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req UpdateUserRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		user, err := svc.Update(r.Context(), id, services.UserChanges{
			Username: req.Username,
			Email:    req.Email,
			FullName: req.FullName,
			Password: req.Password,
			IsActive: req.IsActive,
			IsAdmin:  req.IsAdmin,
		})
		if err != nil {
			writeServiceError(w, err, "user")
			return
		}

		writeJSON(w, http.StatusOK, newUserResponse(user))
	}
}

// NewDeleteUserHandler
// @Summary Delete user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.UserResponse "Deleted user"
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /users/{id} [delete]
func NewDeleteUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		user, err := svc.Delete(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "user")
			return
		}

		writeJSON(w, http.StatusOK, newUserResponse(user))
	}
}
