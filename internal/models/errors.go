package models

import "errors"

// ErrUnknownStatus is returned when a status string is not part of its enum.
var ErrUnknownStatus = errors.New("unknown status")
