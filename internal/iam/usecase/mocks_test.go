package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	iamDomain "github.com/licentio/licentio/internal/iam/domain"
	iamService "github.com/licentio/licentio/internal/iam/service"
)

// mockTxManager runs the callback directly without opening a transaction.
type mockTxManager struct{}

func (m *mockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// mockAccessRepository is a mock implementation of AccessRepository for testing.
type mockAccessRepository struct {
	mock.Mock
}

func (m *mockAccessRepository) Create(ctx context.Context, access *iamDomain.Access) error {
	args := m.Called(ctx, access)
	return args.Error(0)
}

func (m *mockAccessRepository) Get(ctx context.Context, accessID uuid.UUID) (*iamDomain.Access, error) {
	args := m.Called(ctx, accessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iamDomain.Access), args.Error(1)
}

func (m *mockAccessRepository) GetByName(ctx context.Context, name string) (*iamDomain.Access, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iamDomain.Access), args.Error(1)
}

func (m *mockAccessRepository) List(ctx context.Context) ([]*iamDomain.Access, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*iamDomain.Access), args.Error(1)
}

func (m *mockAccessRepository) Delete(ctx context.Context, accessID uuid.UUID) error {
	args := m.Called(ctx, accessID)
	return args.Error(0)
}

// mockRoleRepository is a mock implementation of RoleRepository for testing.
type mockRoleRepository struct {
	mock.Mock
}

func (m *mockRoleRepository) Create(ctx context.Context, role *iamDomain.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *mockRoleRepository) Update(ctx context.Context, role *iamDomain.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *mockRoleRepository) Get(ctx context.Context, roleID uuid.UUID) (*iamDomain.Role, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iamDomain.Role), args.Error(1)
}

func (m *mockRoleRepository) GetByName(ctx context.Context, name string) (*iamDomain.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iamDomain.Role), args.Error(1)
}

func (m *mockRoleRepository) List(ctx context.Context) ([]*iamDomain.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*iamDomain.Role), args.Error(1)
}

func (m *mockRoleRepository) Delete(ctx context.Context, roleID uuid.UUID) error {
	args := m.Called(ctx, roleID)
	return args.Error(0)
}

// mockUserRepository is a mock implementation of UserRepository for testing.
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *iamDomain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, user *iamDomain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) Get(ctx context.Context, userID uuid.UUID) (*iamDomain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iamDomain.User), args.Error(1)
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*iamDomain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iamDomain.User), args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context) ([]*iamDomain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*iamDomain.User), args.Error(1)
}

func (m *mockUserRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// mockPasswordService is a mock implementation of the password service for testing.
type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) HashPassword(plainPassword string) (string, error) {
	args := m.Called(plainPassword)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) ComparePassword(plainPassword string, hashedPassword string) bool {
	args := m.Called(plainPassword, hashedPassword)
	return args.Bool(0)
}

// mockTokenService is a mock implementation of the token service for testing.
type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(username string, accesses []string) (string, time.Time, error) {
	args := m.Called(username, accesses)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockTokenService) Verify(token string) (*iamService.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iamService.Claims), args.Error(1)
}

// mockDirectoryService is a mock implementation of the directory service for testing.
type mockDirectoryService struct {
	mock.Mock
}

func (m *mockDirectoryService) Authenticate(
	ctx context.Context,
	username, password string,
) (*iamService.DirectoryIdentity, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iamService.DirectoryIdentity), args.Error(1)
}

// passthroughDecryptor returns submitted passwords untouched.
type passthroughDecryptor struct{}

func (passthroughDecryptor) Decrypt(value string) string {
	return value
}

// mockAuthenticator is a mock implementation of Authenticator for testing.
type mockAuthenticator struct {
	mock.Mock
}

func (m *mockAuthenticator) Authenticate(
	ctx context.Context,
	username, password string,
) (iamDomain.AccessEntries, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(iamDomain.AccessEntries), args.Error(1)
}
