// utils/errors.go
package utils

import "errors"

var (
	ErrExperienceNotFound = errors.New("experience not found")
	ErrBookingNotFound    = errors.New("booking not found")
)
