// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/licentio/licentio/internal/errors"
)

var (
	// accessNameRegex matches upper-snake-case capability names like CREATE_LICENSE.
	accessNameRegex = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

	// expiryDateRegex matches license expiry dates in YYYY-MM-DD form.
	expiryDateRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "cannot be blank"),
)

// AccessName validates that a string is an upper-snake-case capability name
var AccessName = validation.NewStringRuleWithError(
	func(s string) bool {
		return accessNameRegex.MatchString(s)
	},
	validation.NewError("validation_access_name", "must be an upper-snake-case name like CREATE_LICENSE"),
)

// ExpiryDate validates that a string is a calendar date in YYYY-MM-DD form
var ExpiryDate = validation.NewStringRuleWithError(
	func(s string) bool {
		return expiryDateRegex.MatchString(s)
	},
	validation.NewError("validation_expiry_date", "must be a date in YYYY-MM-DD format"),
)
