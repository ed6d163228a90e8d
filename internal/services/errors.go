package services

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInactiveUser       = errors.New("inactive user")
	ErrUserAlreadyExists  = errors.New("username or email already registered")
	ErrApplicationExists  = errors.New("an application with this email already exists")
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
)

// notFound translates a missing row into ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func validationError(err error) error {
	return fmt.Errorf("%w: %s", ErrValidation, err.Error())
}
