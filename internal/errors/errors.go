// Package errors defines the error taxonomy shared by every domain module.
// Domain packages derive their specific errors (unknown role, duplicate
// access, expired token) by wrapping one of the sentinels below, and the HTTP
// layer maps each sentinel to a status code in exactly one place.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the operation collides with existing data, such
	// as creating an access or user whose unique name is already taken.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input failed validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates missing or unusable authentication
	// credentials, including expired or malformed tokens.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the authenticated caller lacks the required
	// access, or the operation would lock the last administrator out.
	ErrForbidden = errors.New("forbidden")

	// ErrUpstreamUnavailable indicates an external collaborator (directory
	// service, backing store) could not be reached.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// New creates an error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap adds context to err while keeping the chain intact, so sentinel checks
// through Is keep working at any layer. Wrapping nil returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
