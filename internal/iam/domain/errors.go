package domain

import (
	"github.com/licentio/licentio/internal/errors"
)

// Identity and access management errors.
var (
	// ErrAccessNotFound indicates an access with the specified ID was not found.
	ErrAccessNotFound = errors.Wrap(errors.ErrNotFound, "access not found")

	// ErrRoleNotFound indicates a role with the specified ID was not found.
	ErrRoleNotFound = errors.Wrap(errors.ErrNotFound, "role not found")

	// ErrUserNotFound indicates a user with the specified ID was not found.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrAccessExists indicates an access with the same name already exists.
	ErrAccessExists = errors.Wrap(errors.ErrConflict, "access name already exists")

	// ErrRoleExists indicates a role with the same name already exists.
	ErrRoleExists = errors.Wrap(errors.ErrConflict, "role name already exists")

	// ErrUserExists indicates a user with the same username already exists.
	ErrUserExists = errors.Wrap(errors.ErrConflict, "username already exists")

	// ErrInvalidCredentials indicates the supplied username/password pair did
	// not authenticate. Deliberately uniform across unknown-username and
	// wrong-password outcomes.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "incorrect username or password")

	// ErrTokenExpired indicates a bearer token past its expiry.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token expired")

	// ErrTokenInvalid indicates a malformed token or a bad signature.
	ErrTokenInvalid = errors.Wrap(errors.ErrUnauthorized, "invalid token")

	// ErrLastAdmin indicates a deletion that would remove the last user
	// holding user/role management access.
	ErrLastAdmin = errors.Wrap(errors.ErrForbidden, "cannot delete the last administrator")

	// ErrSelfDeletion indicates a user attempting to delete their own account.
	ErrSelfDeletion = errors.Wrap(errors.ErrForbidden, "cannot delete your own account")

	// ErrDirectoryUnavailable indicates the directory service could not be reached.
	ErrDirectoryUnavailable = errors.Wrap(errors.ErrUpstreamUnavailable, "directory service unavailable")
)
