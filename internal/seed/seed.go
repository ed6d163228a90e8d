// Package seed bootstraps the admin account and sample data on start-up.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sbilibin2017/gw-formation-admin/internal/logger"
	"github.com/sbilibin2017/gw-formation-admin/internal/models"
	"github.com/sbilibin2017/gw-formation-admin/internal/services"
)

//go:generate mockgen -source=seed.go -destination=seed_mock.go -package=seed

// UserCreator creates staff accounts with hashed passwords.
type UserCreator interface {
	Create(ctx context.Context, in services.NewUser) (*models.User, error)
}

// ApplicationStore inserts sample applications without triggering notifications.
type ApplicationStore interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, app *models.Application) (*models.Application, error)
}

// Account is a staff account entry of a seed file.
type Account struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	FullName string `yaml:"full_name"`
}

// Application is a sample application entry of a seed file.
type Application struct {
	FullName          string `yaml:"full_name"`
	Email             string `yaml:"email"`
	Whatsapp          string `yaml:"whatsapp"`
	Age               string `yaml:"age"`
	City              string `yaml:"city"`
	HasCodeExperience bool   `yaml:"has_code_experience"`
	HasComputer       bool   `yaml:"has_computer"`
	HasInternet       bool   `yaml:"has_internet"`
	Motivation        string `yaml:"motivation"`
	HoursPerWeek      int    `yaml:"hours_per_week"`
	HowDidYouKnow     string `yaml:"how_did_you_know"`
	Status            string `yaml:"status"`
}

// File is the YAML seed document.
type File struct {
	Admin        Account       `yaml:"admin"`
	Applications []Application `yaml:"applications"`
}

// LoadFile reads a YAML seed file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &f, nil
}

// Seeder applies a seed document.
type Seeder struct {
	users UserCreator
	apps  ApplicationStore
}

func NewSeeder(users UserCreator, apps ApplicationStore) *Seeder {
	return &Seeder{users: users, apps: apps}
}

// Run ensures the admin account exists, then inserts the sample applications
// when the applications table is empty. An admin without a password is skipped.
func (s *Seeder) Run(ctx context.Context, f *File) error {
	if err := s.ensureAdmin(ctx, f.Admin); err != nil {
		return err
	}
	if len(f.Applications) == 0 {
		return nil
	}

	n, err := s.apps.Count(ctx)
	if err != nil {
		return fmt.Errorf("count applications: %w", err)
	}
	if n > 0 {
		logger.Log.Infow("applications present, skipping samples", "count", n)
		return nil
	}

	for _, a := range f.Applications {
		app, err := a.model()
		if err != nil {
			return err
		}
		if _, err := s.apps.Create(ctx, app); err != nil {
			return fmt.Errorf("seed application %s: %w", a.Email, err)
		}
	}
	logger.Log.Infow("sample applications seeded", "count", len(f.Applications))
	return nil
}

func (s *Seeder) ensureAdmin(ctx context.Context, a Account) error {
	if a.Password == "" {
		logger.Log.Warnw("no admin password configured, skipping admin seed", "username", a.Username)
		return nil
	}

	_, err := s.users.Create(ctx, services.NewUser{
		Username: a.Username,
		Email:    a.Email,
		FullName: a.FullName,
		Password: a.Password,
		IsActive: true,
		IsAdmin:  true,
	})
	switch {
	case err == nil:
		logger.Log.Infow("admin account created", "username", a.Username)
	case errors.Is(err, services.ErrUserAlreadyExists):
		logger.Log.Infow("admin account present", "username", a.Username)
	default:
		return fmt.Errorf("seed admin %s: %w", a.Username, err)
	}
	return nil
}

func (a Application) model() (*models.Application, error) {
	app := &models.Application{
		FullName:          a.FullName,
		Email:             a.Email,
		Whatsapp:          a.Whatsapp,
		Age:               a.Age,
		City:              a.City,
		HasCodeExperience: a.HasCodeExperience,
		HasComputer:       a.HasComputer,
		HasInternet:       a.HasInternet,
		Motivation:        a.Motivation,
		HoursPerWeek:      a.HoursPerWeek,
		HowDidYouKnow:     a.HowDidYouKnow,
	}
	if a.Status != "" {
		status, err := models.ParseApplicationStatus(a.Status)
		if err != nil {
			return nil, fmt.Errorf("seed application %s: %w", a.Email, err)
		}
		app.Status = status
	}
	return app, nil
}
