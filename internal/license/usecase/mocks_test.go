package usecase

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	licenseDomain "github.com/licentio/licentio/internal/license/domain"
)

type mockLicenseRepository struct {
	mock.Mock
}

func (m *mockLicenseRepository) Create(ctx context.Context, license *licenseDomain.License) error {
	args := m.Called(ctx, license)
	return args.Error(0)
}

func (m *mockLicenseRepository) Get(ctx context.Context, licenseID int64) (*licenseDomain.License, error) {
	args := m.Called(ctx, licenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*licenseDomain.License), args.Error(1)
}

func (m *mockLicenseRepository) List(ctx context.Context, offset, limit int) ([]*licenseDomain.License, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*licenseDomain.License), args.Error(1)
}

func (m *mockLicenseRepository) Delete(ctx context.Context, licenseID int64) error {
	args := m.Called(ctx, licenseID)
	return args.Error(0)
}

type mockArchiveService struct {
	mock.Mock
}

func (m *mockArchiveService) SaveDigest(ctx context.Context, fileName string, content []byte) error {
	args := m.Called(ctx, fileName, content)
	return args.Error(0)
}

func (m *mockArchiveService) SaveLicense(
	ctx context.Context,
	license *licenseDomain.License,
	productKey string,
) ([]byte, error) {
	args := m.Called(ctx, license, productKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockArchiveService) OpenLicense(ctx context.Context, fileName string) (io.ReadCloser, error) {
	args := m.Called(ctx, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *mockArchiveService) OpenDigest(ctx context.Context, fileName string) (io.ReadCloser, error) {
	args := m.Called(ctx, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *mockArchiveService) DeleteLicense(ctx context.Context, fileName string) error {
	args := m.Called(ctx, fileName)
	return args.Error(0)
}

func (m *mockArchiveService) DeleteDigest(ctx context.Context, fileName string) error {
	args := m.Called(ctx, fileName)
	return args.Error(0)
}

type mockFilenameService struct {
	mock.Mock
}

func (m *mockFilenameService) LicenseFileName(
	companyName, productName string,
	usersCount int,
	expiresAt time.Time,
) string {
	args := m.Called(companyName, productName, usersCount, expiresAt)
	return args.String(0)
}

func (m *mockFilenameService) DigestFileName(companyName, productName string, usersCount int) string {
	args := m.Called(companyName, productName, usersCount)
	return args.String(0)
}

type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}
