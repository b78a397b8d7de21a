package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is a named bundle of access grants. The Accesses map is dense: after
// projection it carries a boolean entry for every access currently in the
// registry. The stored value may lag behind the registry; readers must run
// it through ProjectAccesses before exposing it.
type Role struct {
	ID        uuid.UUID
	Name      string
	Accesses  map[string]bool
	CreatedAt time.Time
}

// CreateRoleInput contains the parameters for creating a new role.
type CreateRoleInput struct {
	Name string
}

// ProjectAccesses reconciles a stored access map against the live registry.
// The result's key set equals the registry's name set exactly: flags already
// present are preserved, accesses added since the role was written default to
// false, and entries for deleted accesses are dropped. The stored map is not
// modified.
//
// This is the single enforcement point for the dense-map invariant. Stored
// roles are never eagerly rewritten when the registry changes; every read and
// mutation path projects instead.
func ProjectAccesses(stored map[string]bool, registry []*Access) map[string]bool {
	projected := make(map[string]bool, len(registry))
	for _, access := range registry {
		projected[access.Name] = stored[access.Name]
	}
	return projected
}

// Project returns a copy of the role with its access map projected against
// the given registry.
func (r *Role) Project(registry []*Access) *Role {
	projected := *r
	projected.Accesses = ProjectAccesses(r.Accesses, registry)
	return &projected
}

// Granted reports whether the role grants the named access.
func (r *Role) Granted(accessName string) bool {
	return r.Accesses[accessName]
}
