// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	licenseDomain "github.com/licentio/licentio/internal/license/domain"
)

// MockLicenseUseCase is a mock implementation of LicenseUseCase for testing.
type MockLicenseUseCase struct {
	mock.Mock
}

// Generate mocks the Generate method of LicenseUseCase.
func (m *MockLicenseUseCase) Generate(
	ctx context.Context,
	input *licenseDomain.GenerateInput,
) (*licenseDomain.GenerateOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*licenseDomain.GenerateOutput), args.Error(1)
}

// List mocks the List method of LicenseUseCase.
func (m *MockLicenseUseCase) List(ctx context.Context, offset, limit int) ([]*licenseDomain.License, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*licenseDomain.License), args.Error(1)
}

// Get mocks the Get method of LicenseUseCase.
func (m *MockLicenseUseCase) Get(ctx context.Context, licenseID int64) (*licenseDomain.License, error) {
	args := m.Called(ctx, licenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*licenseDomain.License), args.Error(1)
}

// GetFile mocks the GetFile method of LicenseUseCase.
func (m *MockLicenseUseCase) GetFile(ctx context.Context, licenseID int64) (*licenseDomain.Artifact, error) {
	args := m.Called(ctx, licenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*licenseDomain.Artifact), args.Error(1)
}

// GetDigestFile mocks the GetDigestFile method of LicenseUseCase.
func (m *MockLicenseUseCase) GetDigestFile(ctx context.Context, licenseID int64) (*licenseDomain.Artifact, error) {
	args := m.Called(ctx, licenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*licenseDomain.Artifact), args.Error(1)
}

// Delete mocks the Delete method of LicenseUseCase.
func (m *MockLicenseUseCase) Delete(ctx context.Context, licenseID int64) error {
	args := m.Called(ctx, licenseID)
	return args.Error(0)
}
