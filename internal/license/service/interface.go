// Package service provides license artifact storage and filename generation.
package service

import (
	"context"
	"io"
	"time"

	licenseDomain "github.com/licentio/licentio/internal/license/domain"
)

// ArchiveService stores and retrieves license artifacts in blob storage.
// Two artifacts exist per license: the machine digest uploaded by the
// customer and the rendered license file handed back as a download.
type ArchiveService interface {
	// SaveDigest stores the raw machine digest under the given file name.
	SaveDigest(ctx context.Context, fileName string, content []byte) error

	// SaveLicense renders the license artifact (license fields plus the
	// product key) and stores it under the license's file name. Returns the
	// rendered content so it can be served without a second read.
	SaveLicense(ctx context.Context, license *licenseDomain.License, productKey string) ([]byte, error)

	// OpenLicense opens a stored license artifact for reading.
	// Returns ErrArtifactNotFound when the artifact is missing.
	OpenLicense(ctx context.Context, fileName string) (io.ReadCloser, error)

	// OpenDigest opens a stored machine digest for reading.
	// Returns ErrArtifactNotFound when the artifact is missing.
	OpenDigest(ctx context.Context, fileName string) (io.ReadCloser, error)

	// DeleteLicense removes a stored license artifact.
	DeleteLicense(ctx context.Context, fileName string) error

	// DeleteDigest removes a stored machine digest.
	DeleteDigest(ctx context.Context, fileName string) error
}

// FilenameService derives artifact file names from license fields. Names are
// transliterated to ASCII so they survive any storage backend.
type FilenameService interface {
	// LicenseFileName names the rendered license artifact, suffixed with the
	// expiry date.
	LicenseFileName(companyName, productName string, usersCount int, expiresAt time.Time) string

	// DigestFileName names the stored machine digest, suffixed with the
	// current date.
	DigestFileName(companyName, productName string, usersCount int) string
}
