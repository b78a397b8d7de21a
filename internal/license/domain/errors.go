package domain

import (
	"github.com/licentio/licentio/internal/errors"
)

// License issuance errors.
var (
	// ErrLicenseNotFound indicates a license with the specified ID was not found.
	ErrLicenseNotFound = errors.Wrap(errors.ErrNotFound, "license not found")

	// ErrArtifactNotFound indicates a stored license or digest artifact is missing.
	ErrArtifactNotFound = errors.Wrap(errors.ErrNotFound, "license artifact not found")

	// ErrInvalidExpiry indicates an expiry value outside the YYYY-MM-DD form.
	ErrInvalidExpiry = errors.Wrap(errors.ErrInvalidInput, "invalid license date format, correct format is YYYY-MM-DD")

	// ErrInvalidDigest indicates an uploaded machine digest that is not plain text.
	ErrInvalidDigest = errors.Wrap(errors.ErrInvalidInput, "machine digest file must be text/plain")

	// ErrInvalidAdditionalInfo indicates additional license information that is
	// not a JSON object.
	ErrInvalidAdditionalInfo = errors.Wrap(errors.ErrInvalidInput, "additional license information must be a JSON object")
)
