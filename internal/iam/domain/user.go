package domain

import (
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"
)

// User is a local account. Locally authenticated users carry a password hash;
// directory-provisioned users have an empty hash and authenticate through the
// directory service on every login. Roles holds role names; a name whose role
// has since been deleted is tolerated and resolves to no additional access.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
}

// CreateUserInput contains the parameters for creating a new user.
// Password and Role are optional: a user created without a password can only
// authenticate through the directory service until one is set.
type CreateUserInput struct {
	Username string
	Password string
	Role     string
}

// HasLocalPassword reports whether the user can authenticate locally.
func (u *User) HasLocalPassword() bool {
	return u.PasswordHash != ""
}

// HasRole reports whether the user holds the named role.
func (u *User) HasRole(roleName string) bool {
	return slices.Contains(u.Roles, roleName)
}

// AddRole adds a role name to the user's role set. Adding a role the user
// already holds is a no-op.
func (u *User) AddRole(roleName string) {
	if !u.HasRole(roleName) {
		u.Roles = append(u.Roles, roleName)
	}
}

// RemoveRole removes a role name from the user's role set. Removing a role
// the user does not hold is a no-op.
func (u *User) RemoveRole(roleName string) {
	u.Roles = slices.DeleteFunc(u.Roles, func(name string) bool {
		return name == roleName
	})
}

// ResolveAccessSet computes the union, over the given roles, of every access
// name whose flag is true. The result is sorted and free of duplicates. This
// is a pure read-side projection: it is recomputed on every authentication
// and never persisted.
func ResolveAccessSet(roles []*Role) []string {
	granted := make(map[string]struct{})
	for _, role := range roles {
		for name, has := range role.Accesses {
			if has {
				granted[name] = struct{}{}
			}
		}
	}

	accesses := make([]string, 0, len(granted))
	for name := range granted {
		accesses = append(accesses, name)
	}
	sort.Strings(accesses)
	return accesses
}
