package handlers

import (
	"context"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/sbilibin2017/gw-formation-admin/internal/models"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Loginer defines the interface that the auth service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, *models.User, error)
}

// LoginRequest is the form submitted to /auth/token.
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: admin
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// Validate checks that both credentials are present.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token
	// default: JWT_TOKEN
	AccessToken string `json:"access_token"`

	// Always "bearer"
	TokenType string `json:"token_type"`

	User UserResponse `json:"user"`
}

// NewLoginHandler returns an HTTP handler for staff login.
// @Summary Staff login
// @Description Authenticate with username and password and return a bearer token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} handlers.LoginResponse "Token issued"
// @Failure 400 {object} handlers.ErrorResponse "Missing credentials or inactive user"
// @Failure 401 {object} handlers.ErrorResponse "Incorrect username or password"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/token [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, errInvalidBody)
			return
		}

		req := LoginRequest{
			Username: r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
		}
		if err := req.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		token, user, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			writeServiceError(w, err, "user")
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			AccessToken: token,
			TokenType:   "bearer",
			User:        newUserResponse(user),
		})
	}
}
