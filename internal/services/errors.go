package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrItemNotFound       = errors.New("item id not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrRecordNotFound     = errors.New("record not found")
	ErrOrderCreateFailed  = errors.New("an error occurred while creating order")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotActivated   = errors.New("the user has not been activated")
	ErrInvalidToken       = errors.New("invalid token")
	ErrEmailTaken         = errors.New("email already registered")
)

// FieldErrors carries per-field validation messages, keyed by the wire name
// of the offending field.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(parts, "; ")
}

const (
	msgRequired      = "This field is required."
	msgInvalidNumber = "A valid number is required."
	msgInvalidDate   = "Date has wrong format. Use dd/mm/yyyy."
)
