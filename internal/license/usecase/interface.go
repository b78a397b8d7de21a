// Package usecase implements business logic orchestration for license
// issuance and retrieval.
package usecase

import (
	"context"

	licenseDomain "github.com/licentio/licentio/internal/license/domain"
)

// LicenseRepository defines the interface for license persistence.
type LicenseRepository interface {
	Create(ctx context.Context, license *licenseDomain.License) error
	Get(ctx context.Context, licenseID int64) (*licenseDomain.License, error)
	List(ctx context.Context, offset, limit int) ([]*licenseDomain.License, error)
	Delete(ctx context.Context, licenseID int64) error
}

// LicenseUseCase defines the interface for license business operations.
type LicenseUseCase interface {
	// Generate validates the request, persists the license row, stores the
	// uploaded machine digest and renders the license artifact.
	Generate(ctx context.Context, input *licenseDomain.GenerateInput) (*licenseDomain.GenerateOutput, error)

	// List retrieves licenses with pagination, newest first.
	List(ctx context.Context, offset, limit int) ([]*licenseDomain.License, error)

	// Get retrieves a license by ID.
	Get(ctx context.Context, licenseID int64) (*licenseDomain.License, error)

	// GetFile opens the rendered license artifact for download.
	GetFile(ctx context.Context, licenseID int64) (*licenseDomain.Artifact, error)

	// GetDigestFile opens the stored machine digest for download.
	GetDigestFile(ctx context.Context, licenseID int64) (*licenseDomain.Artifact, error)

	// Delete removes the license row and its stored artifacts.
	Delete(ctx context.Context, licenseID int64) error
}
