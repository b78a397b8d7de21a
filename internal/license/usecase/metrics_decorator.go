package usecase

import (
	"context"
	"time"

	licenseDomain "github.com/licentio/licentio/internal/license/domain"
	"github.com/licentio/licentio/internal/metrics"
)

// licenseUseCaseWithMetrics decorates LicenseUseCase with metrics instrumentation.
type licenseUseCaseWithMetrics struct {
	next    LicenseUseCase
	metrics metrics.BusinessMetrics
}

// NewLicenseUseCaseWithMetrics wraps a LicenseUseCase with metrics recording.
func NewLicenseUseCaseWithMetrics(useCase LicenseUseCase, m metrics.BusinessMetrics) LicenseUseCase {
	return &licenseUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (l *licenseUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	l.metrics.RecordOperation(ctx, "license", operation, status)
	l.metrics.RecordDuration(ctx, "license", operation, time.Since(start), status)
}

// Generate records metrics for license issuance.
func (l *licenseUseCaseWithMetrics) Generate(
	ctx context.Context,
	input *licenseDomain.GenerateInput,
) (*licenseDomain.GenerateOutput, error) {
	start := time.Now()
	output, err := l.next.Generate(ctx, input)
	l.record(ctx, "license_generate", start, err)
	return output, err
}

// List records metrics for license listing.
func (l *licenseUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*licenseDomain.License, error) {
	start := time.Now()
	licenses, err := l.next.List(ctx, offset, limit)
	l.record(ctx, "license_list", start, err)
	return licenses, err
}

// Get records metrics for license retrieval.
func (l *licenseUseCaseWithMetrics) Get(ctx context.Context, licenseID int64) (*licenseDomain.License, error) {
	start := time.Now()
	license, err := l.next.Get(ctx, licenseID)
	l.record(ctx, "license_get", start, err)
	return license, err
}

// GetFile records metrics for license artifact downloads.
func (l *licenseUseCaseWithMetrics) GetFile(ctx context.Context, licenseID int64) (*licenseDomain.Artifact, error) {
	start := time.Now()
	artifact, err := l.next.GetFile(ctx, licenseID)
	l.record(ctx, "license_get_file", start, err)
	return artifact, err
}

// GetDigestFile records metrics for machine digest downloads.
func (l *licenseUseCaseWithMetrics) GetDigestFile(ctx context.Context, licenseID int64) (*licenseDomain.Artifact, error) {
	start := time.Now()
	artifact, err := l.next.GetDigestFile(ctx, licenseID)
	l.record(ctx, "license_get_digest_file", start, err)
	return artifact, err
}

// Delete records metrics for license deletion.
func (l *licenseUseCaseWithMetrics) Delete(ctx context.Context, licenseID int64) error {
	start := time.Now()
	err := l.next.Delete(ctx, licenseID)
	l.record(ctx, "license_delete", start, err)
	return err
}
