package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/licentio/licentio/internal/config"
	iamDomain "github.com/licentio/licentio/internal/iam/domain"
	iamService "github.com/licentio/licentio/internal/iam/service"
)

// strategyOutcome is the result of one tier of the credential check chain. A
// tier that does not recognize the username leaves matched false so the next
// tier runs; a tier that recognizes it is terminal, whatever the entries say.
type strategyOutcome struct {
	matched bool
	entries iamDomain.AccessEntries
}

// authenticator implements Authenticator as an ordered strategy chain:
// built-in admin, local password store, directory service. The first tier
// that recognizes the username decides the outcome.
type authenticator struct {
	config           *config.Config
	userRepo         UserRepository
	roleRepo         RoleRepository
	accessRepo       AccessRepository
	passwordService  iamService.PasswordService
	decryptor        iamService.CredentialDecryptor
	directoryService iamService.DirectoryService
	logger           *slog.Logger
}

// Authenticate resolves the credentials against the strategy chain.
//
// Empty username or password short-circuits to the uniform denied outcome
// with no store or network calls. A password mismatch on a recognized
// username is also the uniform denied outcome; callers cannot tell the two
// apart. The only error surfaced is an unreachable directory.
func (a *authenticator) Authenticate(
	ctx context.Context,
	username, password string,
) (iamDomain.AccessEntries, error) {
	if username == "" || password == "" {
		return iamDomain.Denied(), nil
	}

	password = a.decryptor.Decrypt(password)

	outcome, err := a.adminStrategy(ctx, username, password)
	if err != nil {
		return iamDomain.Denied(), err
	}
	if outcome.matched {
		return outcome.entries, nil
	}

	outcome, err = a.localStrategy(ctx, username, password)
	if err != nil {
		return iamDomain.Denied(), err
	}
	if outcome.matched {
		return outcome.entries, nil
	}

	outcome, err = a.directoryStrategy(ctx, username, password)
	if err != nil {
		return iamDomain.Denied(), err
	}
	if outcome.matched {
		return outcome.entries, nil
	}

	return iamDomain.Denied(), nil
}

// adminStrategy matches the built-in super-identity. The admin is granted
// every access in the registry and reports the single "Admin" role label.
func (a *authenticator) adminStrategy(
	ctx context.Context,
	username, password string,
) (strategyOutcome, error) {
	if username != a.config.AdminUsername {
		return strategyOutcome{}, nil
	}

	if password != a.config.AdminPassword {
		return strategyOutcome{matched: true, entries: iamDomain.Denied()}, nil
	}

	registry, err := a.accessRepo.List(ctx)
	if err != nil {
		return strategyOutcome{}, err
	}

	accesses := make([]string, 0, len(registry))
	for _, access := range registry {
		accesses = append(accesses, access.Name)
	}

	return strategyOutcome{
		matched: true,
		entries: iamDomain.AccessEntries{
			IsAuth:    true,
			Accesses:  accesses,
			RoleLabel: iamDomain.SingleRoleLabel(iamDomain.AdminRoleLabel),
		},
	}, nil
}

// localStrategy matches users in the local store that carry a password hash.
//
// A store user without a usable hash was provisioned by the directory tier
// and must keep authenticating there, so the tier reports no match and lets
// the chain continue. A user with a hash is terminal either way.
func (a *authenticator) localStrategy(
	ctx context.Context,
	username, password string,
) (strategyOutcome, error) {
	user, err := a.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, iamDomain.ErrUserNotFound) {
			return strategyOutcome{}, nil
		}
		return strategyOutcome{}, err
	}

	if !user.HasLocalPassword() {
		return strategyOutcome{}, nil
	}

	if !a.passwordService.ComparePassword(password, user.PasswordHash) {
		return strategyOutcome{matched: true, entries: iamDomain.Denied()}, nil
	}

	entries, err := a.resolveEntries(ctx, user)
	if err != nil {
		return strategyOutcome{}, err
	}
	return strategyOutcome{matched: true, entries: entries}, nil
}

// directoryStrategy matches identities known to the external directory.
//
// A successful bind for a username the store has never seen provisions a
// local user with no password hash and no roles, so operators can grant roles
// later without a separate import step. The freshly provisioned user carries
// no access, which is exactly what the resolved entries report.
func (a *authenticator) directoryStrategy(
	ctx context.Context,
	username, password string,
) (strategyOutcome, error) {
	if !a.config.LDAPEnabled {
		return strategyOutcome{}, nil
	}

	identity, err := a.directoryService.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, iamDomain.ErrInvalidCredentials) {
			return strategyOutcome{matched: true, entries: iamDomain.Denied()}, nil
		}
		return strategyOutcome{}, err
	}

	user, err := a.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, iamDomain.ErrUserNotFound) {
			return strategyOutcome{}, err
		}
		user = &iamDomain.User{
			ID:        uuid.Must(uuid.NewV7()),
			Username:  username,
			Roles:     []string{},
			CreatedAt: time.Now().UTC(),
		}
		if err := a.userRepo.Create(ctx, user); err != nil {
			return strategyOutcome{}, err
		}
		a.logger.InfoContext(ctx, "provisioned directory user",
			slog.String("username", username),
			slog.String("dn", identity.DN),
		)
	}

	entries, err := a.resolveEntries(ctx, user)
	if err != nil {
		return strategyOutcome{}, err
	}
	return strategyOutcome{matched: true, entries: entries}, nil
}

// resolveEntries computes the access set a store user authenticates with:
// the union of true flags across the user's projected roles, labeled with
// the full role-name list.
func (a *authenticator) resolveEntries(
	ctx context.Context,
	user *iamDomain.User,
) (iamDomain.AccessEntries, error) {
	registry, err := a.accessRepo.List(ctx)
	if err != nil {
		return iamDomain.AccessEntries{}, err
	}

	roles := make([]*iamDomain.Role, 0, len(user.Roles))
	for _, name := range user.Roles {
		role, err := a.roleRepo.GetByName(ctx, name)
		if err != nil {
			if errors.Is(err, iamDomain.ErrRoleNotFound) {
				continue
			}
			return iamDomain.AccessEntries{}, err
		}
		roles = append(roles, role.Project(registry))
	}

	return iamDomain.AccessEntries{
		IsAuth:    true,
		Accesses:  iamDomain.ResolveAccessSet(roles),
		RoleLabel: iamDomain.MultiRoleLabel(user.Roles),
	}, nil
}

// NewAuthenticator creates a new Authenticator with the provided dependencies.
func NewAuthenticator(
	config *config.Config,
	userRepo UserRepository,
	roleRepo RoleRepository,
	accessRepo AccessRepository,
	passwordService iamService.PasswordService,
	decryptor iamService.CredentialDecryptor,
	directoryService iamService.DirectoryService,
	logger *slog.Logger,
) Authenticator {
	return &authenticator{
		config:           config,
		userRepo:         userRepo,
		roleRepo:         roleRepo,
		accessRepo:       accessRepo,
		passwordService:  passwordService,
		decryptor:        decryptor,
		directoryService: directoryService,
		logger:           logger,
	}
}
