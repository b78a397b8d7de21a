package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"
	"time"

	licenseDomain "github.com/licentio/licentio/internal/license/domain"
	licenseService "github.com/licentio/licentio/internal/license/service"
)

// expiryPattern matches license expiry dates in YYYY-MM-DD form.
var expiryPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`)

// licenseUseCase implements LicenseUseCase.
type licenseUseCase struct {
	licenseRepo     LicenseRepository
	archiveService  licenseService.ArchiveService
	filenameService licenseService.FilenameService
	logger          *slog.Logger
}

// Generate issues a new license.
func (l *licenseUseCase) Generate(
	ctx context.Context,
	input *licenseDomain.GenerateInput,
) (*licenseDomain.GenerateOutput, error) {
	// Validate the expiry date
	if !expiryPattern.MatchString(input.ExpiresAt) {
		return nil, licenseDomain.ErrInvalidExpiry
	}
	expiresAt, err := time.Parse("2006-01-02", input.ExpiresAt)
	if err != nil {
		return nil, licenseDomain.ErrInvalidExpiry
	}

	// The machine digest doubles as the product key, so it must be text
	if !strings.HasPrefix(strings.ToLower(input.DigestContentType), "text/plain") {
		return nil, licenseDomain.ErrInvalidDigest
	}

	// Validate additional information before touching the store
	if strings.TrimSpace(input.AdditionalInfo) != "" {
		var info map[string]any
		if err := json.Unmarshal([]byte(input.AdditionalInfo), &info); err != nil {
			return nil, licenseDomain.ErrInvalidAdditionalInfo
		}
	}

	license := &licenseDomain.License{
		CompanyName:    input.CompanyName,
		ProductName:    input.ProductName,
		UsersCount:     input.UsersCount,
		ExpiresAt:      expiresAt,
		AdditionalInfo: strings.TrimSpace(input.AdditionalInfo),
		DigestFileName: l.filenameService.DigestFileName(
			input.CompanyName, input.ProductName, input.UsersCount),
		LicenseFileName: l.filenameService.LicenseFileName(
			input.CompanyName, input.ProductName, input.UsersCount, expiresAt),
		CreatedAt: time.Now().UTC(),
	}

	if err := l.licenseRepo.Create(ctx, license); err != nil {
		return nil, err
	}

	if err := l.archiveService.SaveDigest(ctx, license.DigestFileName, input.DigestContent); err != nil {
		return nil, err
	}

	content, err := l.archiveService.SaveLicense(ctx, license, string(input.DigestContent))
	if err != nil {
		return nil, err
	}

	l.logger.InfoContext(ctx, "license generated",
		slog.Int64("license_id", license.ID),
		slog.String("license_file_name", license.LicenseFileName),
	)

	return &licenseDomain.GenerateOutput{
		License:  license,
		FileName: license.LicenseFileName,
		Content:  content,
	}, nil
}

// List retrieves licenses with pagination, newest first.
func (l *licenseUseCase) List(ctx context.Context, offset, limit int) ([]*licenseDomain.License, error) {
	return l.licenseRepo.List(ctx, offset, limit)
}

// Get retrieves a license by ID.
func (l *licenseUseCase) Get(ctx context.Context, licenseID int64) (*licenseDomain.License, error) {
	return l.licenseRepo.Get(ctx, licenseID)
}

// GetFile opens the rendered license artifact for download.
func (l *licenseUseCase) GetFile(ctx context.Context, licenseID int64) (*licenseDomain.Artifact, error) {
	license, err := l.licenseRepo.Get(ctx, licenseID)
	if err != nil {
		return nil, err
	}

	content, err := l.archiveService.OpenLicense(ctx, license.LicenseFileName)
	if err != nil {
		return nil, err
	}

	return &licenseDomain.Artifact{FileName: license.LicenseFileName, Content: content}, nil
}

// GetDigestFile opens the stored machine digest for download.
func (l *licenseUseCase) GetDigestFile(ctx context.Context, licenseID int64) (*licenseDomain.Artifact, error) {
	license, err := l.licenseRepo.Get(ctx, licenseID)
	if err != nil {
		return nil, err
	}

	content, err := l.archiveService.OpenDigest(ctx, license.DigestFileName)
	if err != nil {
		return nil, err
	}

	return &licenseDomain.Artifact{FileName: license.DigestFileName, Content: content}, nil
}

// Delete removes the license row and its stored artifacts. Artifact removal
// failures are logged but do not fail the operation: the row is already gone
// and orphan artifacts are harmless.
func (l *licenseUseCase) Delete(ctx context.Context, licenseID int64) error {
	license, err := l.licenseRepo.Get(ctx, licenseID)
	if err != nil {
		return err
	}

	if err := l.licenseRepo.Delete(ctx, licenseID); err != nil {
		return err
	}

	if err := l.archiveService.DeleteLicense(ctx, license.LicenseFileName); err != nil {
		l.logger.WarnContext(ctx, "failed to delete license artifact",
			slog.Int64("license_id", licenseID),
			slog.String("file_name", license.LicenseFileName),
			slog.String("error", err.Error()),
		)
	}
	if err := l.archiveService.DeleteDigest(ctx, license.DigestFileName); err != nil {
		l.logger.WarnContext(ctx, "failed to delete machine digest",
			slog.Int64("license_id", licenseID),
			slog.String("file_name", license.DigestFileName),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

// NewLicenseUseCase creates a new LicenseUseCase with the provided dependencies.
func NewLicenseUseCase(
	licenseRepo LicenseRepository,
	archiveService licenseService.ArchiveService,
	filenameService licenseService.FilenameService,
	logger *slog.Logger,
) LicenseUseCase {
	return &licenseUseCase{
		licenseRepo:     licenseRepo,
		archiveService:  archiveService,
		filenameService: filenameService,
		logger:          logger,
	}
}
