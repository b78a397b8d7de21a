package usecase

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/licentio/licentio/internal/config"
	"github.com/licentio/licentio/internal/database"
	iamDomain "github.com/licentio/licentio/internal/iam/domain"
	iamService "github.com/licentio/licentio/internal/iam/service"
)

// userUseCase implements UserUseCase for local user accounts.
type userUseCase struct {
	config          *config.Config
	txManager       database.TxManager
	userRepo        UserRepository
	roleRepo        RoleRepository
	passwordService iamService.PasswordService
}

// Create stores a new user.
//
// The built-in admin username is reserved: it never lives in the store, so an
// attempt to create it is reported as a conflict. A missing password leaves
// the hash empty, which routes every login for that user through the
// directory service. An initial role, when given, must already exist.
func (u *userUseCase) Create(
	ctx context.Context,
	input *iamDomain.CreateUserInput,
) (*iamDomain.User, error) {
	if input.Username == u.config.AdminUsername {
		return nil, iamDomain.ErrUserExists
	}

	passwordHash := ""
	if input.Password != "" {
		hash, err := u.passwordService.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		passwordHash = hash
	}

	roles := []string{}
	if input.Role != "" {
		role, err := u.roleRepo.GetByName(ctx, input.Role)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role.Name)
	}

	user := &iamDomain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     input.Username,
		PasswordHash: passwordHash,
		Roles:        roles,
		CreatedAt:    time.Now().UTC(),
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Get retrieves a user by ID.
func (u *userUseCase) Get(ctx context.Context, userID uuid.UUID) (*iamDomain.User, error) {
	return u.userRepo.Get(ctx, userID)
}

// List retrieves all users ordered by username.
func (u *userUseCase) List(ctx context.Context) ([]*iamDomain.User, error) {
	return u.userRepo.List(ctx)
}

// SetRole adds or removes a role on a user. Both directions are idempotent
// and run inside a transaction so the last-admin guard and the write see the
// same store state.
//
// Removal is guarded: when it would strip the store's last hold on
// user-management access, ErrLastAdmin is returned and nothing is written.
func (u *userUseCase) SetRole(
	ctx context.Context,
	userID, roleID uuid.UUID,
	added bool,
) (*iamDomain.User, error) {
	var user *iamDomain.User

	err := u.txManager.WithTx(ctx, func(ctx context.Context) error {
		role, err := u.roleRepo.Get(ctx, roleID)
		if err != nil {
			return err
		}

		user, err = u.userRepo.Get(ctx, userID)
		if err != nil {
			return err
		}

		if added {
			user.AddRole(role.Name)
		} else {
			if err := u.guardManagementRemoval(ctx, user, role.Name); err != nil {
				return err
			}
			user.RemoveRole(role.Name)
		}

		return u.userRepo.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes a user.
//
// Two guards apply: a user may not delete themselves, and the last user
// holding user-management access may not be deleted. Both keep the store from
// locking out everyone who could repair it.
func (u *userUseCase) Delete(ctx context.Context, actorUsername string, userID uuid.UUID) error {
	return u.txManager.WithTx(ctx, func(ctx context.Context) error {
		user, err := u.userRepo.Get(ctx, userID)
		if err != nil {
			return err
		}

		if user.Username == actorUsername {
			return iamDomain.ErrSelfDeletion
		}

		holds, err := u.holdsManagementAccess(ctx, user, nil)
		if err != nil {
			return err
		}
		if holds {
			others, err := u.otherManagementHolders(ctx, user)
			if err != nil {
				return err
			}
			if !others {
				return iamDomain.ErrLastAdmin
			}
		}

		return u.userRepo.Delete(ctx, userID)
	})
}

// guardManagementRemoval rejects a role removal that would leave no user in
// the store with user-management access.
func (u *userUseCase) guardManagementRemoval(
	ctx context.Context,
	user *iamDomain.User,
	roleName string,
) error {
	if !user.HasRole(roleName) {
		return nil
	}

	before, err := u.holdsManagementAccess(ctx, user, nil)
	if err != nil {
		return err
	}
	after, err := u.holdsManagementAccess(ctx, user, []string{roleName})
	if err != nil {
		return err
	}
	if !before || after {
		return nil
	}

	others, err := u.otherManagementHolders(ctx, user)
	if err != nil {
		return err
	}
	if !others {
		return iamDomain.ErrLastAdmin
	}
	return nil
}

// holdsManagementAccess reports whether the user's roles, minus the excluded
// names, grant user-management access. Stale role names resolve to nothing.
func (u *userUseCase) holdsManagementAccess(
	ctx context.Context,
	user *iamDomain.User,
	excluded []string,
) (bool, error) {
	roles, err := u.resolveRoles(ctx, user, excluded)
	if err != nil {
		return false, err
	}
	return slices.Contains(
		iamDomain.ResolveAccessSet(roles),
		iamDomain.AccessUserRoleManagement,
	), nil
}

// otherManagementHolders reports whether any user other than the given one
// holds user-management access.
func (u *userUseCase) otherManagementHolders(
	ctx context.Context,
	user *iamDomain.User,
) (bool, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return false, err
	}

	for _, other := range users {
		if other.ID == user.ID {
			continue
		}
		holds, err := u.holdsManagementAccess(ctx, other, nil)
		if err != nil {
			return false, err
		}
		if holds {
			return true, nil
		}
	}
	return false, nil
}

// resolveRoles loads the user's role rows, skipping names whose role has been
// deleted and any excluded names.
func (u *userUseCase) resolveRoles(
	ctx context.Context,
	user *iamDomain.User,
	excluded []string,
) ([]*iamDomain.Role, error) {
	roles := make([]*iamDomain.Role, 0, len(user.Roles))
	for _, name := range user.Roles {
		if slices.Contains(excluded, name) {
			continue
		}
		role, err := u.roleRepo.GetByName(ctx, name)
		if err != nil {
			if errors.Is(err, iamDomain.ErrRoleNotFound) {
				continue
			}
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}

// NewUserUseCase creates a new UserUseCase with the provided dependencies.
func NewUserUseCase(
	config *config.Config,
	txManager database.TxManager,
	userRepo UserRepository,
	roleRepo RoleRepository,
	passwordService iamService.PasswordService,
) UserUseCase {
	return &userUseCase{
		config:          config,
		txManager:       txManager,
		userRepo:        userRepo,
		roleRepo:        roleRepo,
		passwordService: passwordService,
	}
}
