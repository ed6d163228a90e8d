package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-formation-admin/internal/logger"
	"github.com/sbilibin2017/gw-formation-admin/internal/models"
	"github.com/sbilibin2017/gw-formation-admin/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

// UserStore persists staff accounts.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	List(ctx context.Context, params models.ListParams) ([]models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, patch models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// NewUser holds the fields of an account to create.
type NewUser struct {
	Username string
	Email    string
	FullName string
	Password string
	IsActive bool
	IsAdmin  bool
}

// UserChanges holds a partial account update. Nil fields are left unchanged.
type UserChanges struct {
	Username *string
	Email    *string
	FullName *string
	Password *string
	IsActive *bool
	IsAdmin  *bool
}

// UserService manages staff accounts.
type UserService struct {
	store UserStore
}

// NewUserService creates a new UserService instance.
func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// conflict reports whether username or email belongs to an account other than self.
// Nil values are not checked.
func (s *UserService) conflict(ctx context.Context, username, email *string, self uuid.UUID) (bool, error) {
	lookups := []struct {
		value *string
		get   func(context.Context, string) (*models.User, error)
	}{
		{username, s.store.GetByUsername},
		{email, s.store.GetByEmail},
	}
	for _, l := range lookups {
		if l.value == nil {
			continue
		}
		user, err := l.get(ctx, *l.value)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return false, err
		}
		if user.ID != self {
			return true, nil
		}
	}
	return false, nil
}

// Create registers a new account. A username or email already in use yields ErrUserAlreadyExists.
func (s *UserService) Create(ctx context.Context, in NewUser) (*models.User, error) {
	exists, err := s.conflict(ctx, &in.Username, &in.Email, uuid.Nil)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "username", in.Username, "err", err)
		return nil, err
	}
	if exists {
		logger.Log.Infow("user already exists", "username", in.Username, "email", in.Email)
		return nil, ErrUserAlreadyExists
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := s.store.Create(ctx, &models.User{
		Username:     in.Username,
		Email:        in.Email,
		FullName:     in.FullName,
		PasswordHash: hash,
		IsActive:     in.IsActive,
		IsAdmin:      in.IsAdmin,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "username", in.Username, "err", err)
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, params models.ListParams) ([]models.User, error) {
	return s.store.List(ctx, params)
}

// Update applies changes to an account, re-hashing the password when one is given.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, changes UserChanges) (*models.User, error) {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		return nil, notFound(err)
	}

	exists, err := s.conflict(ctx, changes.Username, changes.Email, id)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "id", id, "err", err)
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	patch := models.UserPatch{
		Username: changes.Username,
		Email:    changes.Email,
		FullName: changes.FullName,
		IsActive: changes.IsActive,
		IsAdmin:  changes.IsAdmin,
	}
	if changes.Password != nil {
		hash, err := HashPassword(*changes.Password)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	user, err := s.store.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrUserAlreadyExists
		}
		return nil, notFound(err)
	}
	return user, nil
}

// Delete removes an account and returns it as it was.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return user, nil
}
