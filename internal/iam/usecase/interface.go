// Package usecase defines business logic interfaces for identity and access
// management operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	iamDomain "github.com/licentio/licentio/internal/iam/domain"
	iamService "github.com/licentio/licentio/internal/iam/service"
)

// AccessRepository defines persistence operations for the access registry.
// Implementations must support transaction-aware operations via context propagation.
type AccessRepository interface {
	// Create stores a new access. Returns ErrAccessExists on a duplicated name.
	Create(ctx context.Context, access *iamDomain.Access) error

	// Get retrieves an access by ID. Returns ErrAccessNotFound if not found.
	Get(ctx context.Context, accessID uuid.UUID) (*iamDomain.Access, error)

	// GetByName retrieves an access by name. Returns ErrAccessNotFound if not found.
	GetByName(ctx context.Context, name string) (*iamDomain.Access, error)

	// List retrieves all accesses ordered by name.
	List(ctx context.Context) ([]*iamDomain.Access, error)

	// Delete removes an access by ID. Returns ErrAccessNotFound if not found.
	Delete(ctx context.Context, accessID uuid.UUID) error
}

// RoleRepository defines persistence operations for roles.
// Implementations must support transaction-aware operations via context propagation.
type RoleRepository interface {
	// Create stores a new role. Returns ErrRoleExists on a duplicated name.
	Create(ctx context.Context, role *iamDomain.Role) error

	// Update replaces the stored access map. Returns ErrRoleNotFound if not found.
	Update(ctx context.Context, role *iamDomain.Role) error

	// Get retrieves a role by ID. Returns ErrRoleNotFound if not found.
	Get(ctx context.Context, roleID uuid.UUID) (*iamDomain.Role, error)

	// GetByName retrieves a role by name. Returns ErrRoleNotFound if not found.
	GetByName(ctx context.Context, name string) (*iamDomain.Role, error)

	// List retrieves all roles ordered by name.
	List(ctx context.Context) ([]*iamDomain.Role, error)

	// Delete removes a role by ID. Returns ErrRoleNotFound if not found.
	Delete(ctx context.Context, roleID uuid.UUID) error
}

// UserRepository defines persistence operations for users.
// Implementations must support transaction-aware operations via context propagation.
type UserRepository interface {
	// Create stores a new user. Returns ErrUserExists on a duplicated username.
	Create(ctx context.Context, user *iamDomain.User) error

	// Update replaces the password hash and role set. Returns ErrUserNotFound
	// if not found.
	Update(ctx context.Context, user *iamDomain.User) error

	// Get retrieves a user by ID. Returns ErrUserNotFound if not found.
	Get(ctx context.Context, userID uuid.UUID) (*iamDomain.User, error)

	// GetByUsername retrieves a user by username. Returns ErrUserNotFound if
	// not found.
	GetByUsername(ctx context.Context, username string) (*iamDomain.User, error)

	// List retrieves all users ordered by username.
	List(ctx context.Context) ([]*iamDomain.User, error)

	// Delete removes a user by ID. Returns ErrUserNotFound if not found.
	Delete(ctx context.Context, userID uuid.UUID) error
}

// AccessUseCase defines business logic operations for the access registry.
// The registry is the single source of truth for which access names exist;
// role access maps are projected against it on every read.
type AccessUseCase interface {
	// Create registers a new access name. Returns ErrAccessExists when the
	// name is already registered.
	Create(ctx context.Context, input *iamDomain.CreateAccessInput) (*iamDomain.Access, error)

	// Get retrieves an access by ID.
	Get(ctx context.Context, accessID uuid.UUID) (*iamDomain.Access, error)

	// List retrieves the full registry ordered by name.
	List(ctx context.Context) ([]*iamDomain.Access, error)

	// Delete removes an access from the registry. Stored role maps are not
	// rewritten; stale keys disappear on the next projection.
	Delete(ctx context.Context, accessID uuid.UUID) error
}

// RoleUseCase defines business logic operations for roles. Every role
// returned to a caller has its access map projected against the current
// registry, so the key set always equals the registry regardless of what is
// stored.
type RoleUseCase interface {
	// Create stores a new role whose access map covers the full registry with
	// every flag false.
	Create(ctx context.Context, input *iamDomain.CreateRoleInput) (*iamDomain.Role, error)

	// Get retrieves a role by ID, projected against the registry.
	Get(ctx context.Context, roleID uuid.UUID) (*iamDomain.Role, error)

	// List retrieves all roles, each projected against the registry.
	List(ctx context.Context) ([]*iamDomain.Role, error)

	// SetAccess flips a single access flag on a role and returns the updated,
	// projected role. The access must exist in the registry. Bulk map
	// replacement is intentionally not exposed.
	SetAccess(ctx context.Context, roleID, accessID uuid.UUID, hasAccess bool) (*iamDomain.Role, error)

	// Delete removes a role. Users referencing the role name keep the stale
	// reference, which resolves to no additional access.
	Delete(ctx context.Context, roleID uuid.UUID) error
}

// UserUseCase defines business logic operations for local user accounts.
type UserUseCase interface {
	// Create stores a new user. The password and initial role are optional: a
	// user without a password can only authenticate through the directory
	// service. The built-in admin username is reserved and returns
	// ErrUserExists.
	Create(ctx context.Context, input *iamDomain.CreateUserInput) (*iamDomain.User, error)

	// Get retrieves a user by ID.
	Get(ctx context.Context, userID uuid.UUID) (*iamDomain.User, error)

	// List retrieves all users ordered by username.
	List(ctx context.Context) ([]*iamDomain.User, error)

	// SetRole adds or removes a role on a user. Both directions are
	// idempotent. Removing the last hold on user-management access returns
	// ErrLastAdmin.
	SetRole(ctx context.Context, userID, roleID uuid.UUID, added bool) (*iamDomain.User, error)

	// Delete removes a user. A user may not delete themselves
	// (ErrSelfDeletion) and the last user holding user-management access may
	// not be deleted (ErrLastAdmin).
	Delete(ctx context.Context, actorUsername string, userID uuid.UUID) error
}

// Authenticator checks credentials against the ordered strategy chain:
// built-in admin, local password, directory service.
type Authenticator interface {
	// Authenticate resolves the credentials to an access-entries outcome. A
	// failed check returns the uniform denied outcome, never an error, except
	// when the directory service is unreachable (ErrDirectoryUnavailable).
	Authenticate(ctx context.Context, username, password string) (iamDomain.AccessEntries, error)
}

// TokenUseCase defines the login and verification surface for bearer tokens.
type TokenUseCase interface {
	// Login authenticates the credentials and issues a fresh signed token
	// carrying the resolved access set. Returns ErrInvalidCredentials on any
	// failed check.
	Login(ctx context.Context, input *iamDomain.LoginInput) (*iamDomain.LoginOutput, error)

	// Verify checks the token signature and expiry and returns its claims.
	Verify(ctx context.Context, token string) (*iamService.Claims, error)
}
