package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sbilibin2017/gw-formation-admin/internal/logger"
	"github.com/sbilibin2017/gw-formation-admin/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// UserFinder looks users up by login name.
type UserFinder interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// TokenGenerator issues tokens for a subject.
type TokenGenerator interface {
	Generate(ctx context.Context, subject string) (string, error)
}

// TokenParser returns the subject of a valid token.
type TokenParser interface {
	GetSubject(ctx context.Context, token string) (string, error)
}

// AuthService handles login and token resolution.
type AuthService struct {
	users     UserFinder
	generator TokenGenerator
	parser    TokenParser
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserFinder, generator TokenGenerator, parser TokenParser) *AuthService {
	return &AuthService{
		users:     users,
		generator: generator,
		parser:    parser,
	}
}

// Login checks the credentials and returns a token for the user.
// Unknown users and wrong passwords both yield ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Infow("login for unknown user", "username", username)
			return "", nil, ErrInvalidCredentials
		}
		logger.Log.Errorw("failed to get user", "username", username, "err", err)
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		logger.Log.Infow("login for inactive user", "username", username)
		return "", nil, ErrInactiveUser
	}

	token, err := svc.generator.Generate(ctx, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user, nil
}

// CurrentUser resolves a bearer token to its user.
func (svc *AuthService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	username, err := svc.parser.GetSubject(ctx, token)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		logger.Log.Errorw("failed to resolve token subject", "username", username, "err", err)
		return nil, err
	}
	return user, nil
}
