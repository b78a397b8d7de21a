// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	iamDomain "github.com/licentio/licentio/internal/iam/domain"
	iamService "github.com/licentio/licentio/internal/iam/service"
)

// MockTokenUseCase is a mock implementation of TokenUseCase for testing.
type MockTokenUseCase struct {
	mock.Mock
}

// Login mocks the Login method of TokenUseCase.
func (m *MockTokenUseCase) Login(
	ctx context.Context,
	input *iamDomain.LoginInput,
) (*iamDomain.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iamDomain.LoginOutput), args.Error(1)
}

// Verify mocks the Verify method of TokenUseCase.
func (m *MockTokenUseCase) Verify(ctx context.Context, token string) (*iamService.Claims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iamService.Claims), args.Error(1)
}

// MockAccessUseCase is a mock implementation of AccessUseCase for testing.
type MockAccessUseCase struct {
	mock.Mock
}

// Create mocks the Create method of AccessUseCase.
func (m *MockAccessUseCase) Create(
	ctx context.Context,
	input *iamDomain.CreateAccessInput,
) (*iamDomain.Access, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iamDomain.Access), args.Error(1)
}

// Get mocks the Get method of AccessUseCase.
func (m *MockAccessUseCase) Get(ctx context.Context, accessID uuid.UUID) (*iamDomain.Access, error) {
	args := m.Called(ctx, accessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iamDomain.Access), args.Error(1)
}

// List mocks the List method of AccessUseCase.
func (m *MockAccessUseCase) List(ctx context.Context) ([]*iamDomain.Access, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*iamDomain.Access), args.Error(1)
}

// Delete mocks the Delete method of AccessUseCase.
func (m *MockAccessUseCase) Delete(ctx context.Context, accessID uuid.UUID) error {
	args := m.Called(ctx, accessID)
	return args.Error(0)
}

// MockRoleUseCase is a mock implementation of RoleUseCase for testing.
type MockRoleUseCase struct {
	mock.Mock
}

// Create mocks the Create method of RoleUseCase.
func (m *MockRoleUseCase) Create(
	ctx context.Context,
	input *iamDomain.CreateRoleInput,
) (*iamDomain.Role, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iamDomain.Role), args.Error(1)
}

// Get mocks the Get method of RoleUseCase.
func (m *MockRoleUseCase) Get(ctx context.Context, roleID uuid.UUID) (*iamDomain.Role, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iamDomain.Role), args.Error(1)
}

// List mocks the List method of RoleUseCase.
func (m *MockRoleUseCase) List(ctx context.Context) ([]*iamDomain.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*iamDomain.Role), args.Error(1)
}

// SetAccess mocks the SetAccess method of RoleUseCase.
func (m *MockRoleUseCase) SetAccess(
	ctx context.Context,
	roleID, accessID uuid.UUID,
	hasAccess bool,
) (*iamDomain.Role, error) {
	args := m.Called(ctx, roleID, accessID, hasAccess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iamDomain.Role), args.Error(1)
}

// Delete mocks the Delete method of RoleUseCase.
func (m *MockRoleUseCase) Delete(ctx context.Context, roleID uuid.UUID) error {
	args := m.Called(ctx, roleID)
	return args.Error(0)
}

// MockUserUseCase is a mock implementation of UserUseCase for testing.
type MockUserUseCase struct {
	mock.Mock
}

// Create mocks the Create method of UserUseCase.
func (m *MockUserUseCase) Create(
	ctx context.Context,
	input *iamDomain.CreateUserInput,
) (*iamDomain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iamDomain.User), args.Error(1)
}

// Get mocks the Get method of UserUseCase.
func (m *MockUserUseCase) Get(ctx context.Context, userID uuid.UUID) (*iamDomain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iamDomain.User), args.Error(1)
}

// List mocks the List method of UserUseCase.
func (m *MockUserUseCase) List(ctx context.Context) ([]*iamDomain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*iamDomain.User), args.Error(1)
}

// SetRole mocks the SetRole method of UserUseCase.
func (m *MockUserUseCase) SetRole(
	ctx context.Context,
	userID, roleID uuid.UUID,
	added bool,
) (*iamDomain.User, error) {
	args := m.Called(ctx, userID, roleID, added)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iamDomain.User), args.Error(1)
}

// Delete mocks the Delete method of UserUseCase.
func (m *MockUserUseCase) Delete(ctx context.Context, actorUsername string, userID uuid.UUID) error {
	args := m.Called(ctx, actorUsername, userID)
	return args.Error(0)
}
