package domain

import (
	"time"

	"github.com/google/uuid"
)

// Access is a named boolean capability, the atomic unit of authorization.
// Accesses are unique by name and immutable after creation except for deletion.
type Access struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// CreateAccessInput contains the parameters for registering a new access.
type CreateAccessInput struct {
	Name string
}
