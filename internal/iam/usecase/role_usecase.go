package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/licentio/licentio/internal/database"
	iamDomain "github.com/licentio/licentio/internal/iam/domain"
)

// roleUseCase implements RoleUseCase. Roles are stored with whatever access
// map they had at write time and healed against the registry on every read.
type roleUseCase struct {
	txManager  database.TxManager
	roleRepo   RoleRepository
	accessRepo AccessRepository
}

// Create stores a new role covering the full registry with every flag false.
func (r *roleUseCase) Create(
	ctx context.Context,
	input *iamDomain.CreateRoleInput,
) (*iamDomain.Role, error) {
	registry, err := r.accessRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	role := &iamDomain.Role{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      input.Name,
		Accesses:  iamDomain.ProjectAccesses(nil, registry),
		CreatedAt: time.Now().UTC(),
	}

	if err := r.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

// Get retrieves a role projected against the current registry.
func (r *roleUseCase) Get(ctx context.Context, roleID uuid.UUID) (*iamDomain.Role, error) {
	role, err := r.roleRepo.Get(ctx, roleID)
	if err != nil {
		return nil, err
	}

	registry, err := r.accessRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return role.Project(registry), nil
}

// List retrieves all roles, each projected against the current registry.
func (r *roleUseCase) List(ctx context.Context) ([]*iamDomain.Role, error) {
	roles, err := r.roleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	registry, err := r.accessRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	projected := make([]*iamDomain.Role, 0, len(roles))
	for _, role := range roles {
		projected = append(projected, role.Project(registry))
	}
	return projected, nil
}

// SetAccess flips a single access flag on a role and persists the projected
// result. The read-modify-write runs inside a transaction so concurrent flag
// flips on the same role cannot clobber each other.
//
// The access is looked up by ID so that a stale or fabricated access_id fails
// with ErrAccessNotFound before the role is touched. Projection before the
// write means the persisted map is healed as a side effect of the mutation.
func (r *roleUseCase) SetAccess(
	ctx context.Context,
	roleID, accessID uuid.UUID,
	hasAccess bool,
) (*iamDomain.Role, error) {
	var role *iamDomain.Role

	err := r.txManager.WithTx(ctx, func(ctx context.Context) error {
		access, err := r.accessRepo.Get(ctx, accessID)
		if err != nil {
			return err
		}

		role, err = r.roleRepo.Get(ctx, roleID)
		if err != nil {
			return err
		}

		registry, err := r.accessRepo.List(ctx)
		if err != nil {
			return err
		}

		role = role.Project(registry)
		role.Accesses[access.Name] = hasAccess

		return r.roleRepo.Update(ctx, role)
	})
	if err != nil {
		return nil, err
	}

	return role, nil
}

// Delete removes a role. Users holding the role name keep the stale
// reference, which resolves to no additional access on login.
func (r *roleUseCase) Delete(ctx context.Context, roleID uuid.UUID) error {
	return r.roleRepo.Delete(ctx, roleID)
}

// NewRoleUseCase creates a new RoleUseCase with the provided dependencies.
func NewRoleUseCase(
	txManager database.TxManager,
	roleRepo RoleRepository,
	accessRepo AccessRepository,
) RoleUseCase {
	return &roleUseCase{
		txManager:  txManager,
		roleRepo:   roleRepo,
		accessRepo: accessRepo,
	}
}
