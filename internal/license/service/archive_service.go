package service

import (
	"context"
	"encoding/json"
	"io"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	apperrors "github.com/licentio/licentio/internal/errors"
	licenseDomain "github.com/licentio/licentio/internal/license/domain"
)

// Storage key prefixes keep the two artifact kinds apart inside one bucket.
const (
	licensePrefix = "licenses/"
	digestPrefix  = "digests/"
)

// licenseArtifact is the rendered license file content. The product key is
// the text of the uploaded machine digest.
type licenseArtifact struct {
	Company           string         `json:"company"`
	ProductName       string         `json:"product_name"`
	LicenseUsersCount int            `json:"license_users_count"`
	ExpTime           string         `json:"exp_time"`
	ProductKey        string         `json:"product_key"`
	AdditionalInfo    map[string]any `json:"additional_info,omitempty"`
}

// blobArchiveService implements ArchiveService on top of a gocloud blob bucket.
type blobArchiveService struct {
	bucket *blob.Bucket
}

// SaveDigest stores the raw machine digest.
func (b *blobArchiveService) SaveDigest(ctx context.Context, fileName string, content []byte) error {
	if err := b.bucket.WriteAll(ctx, digestPrefix+fileName, content, nil); err != nil {
		return apperrors.Wrap(err, "failed to save machine digest")
	}
	return nil
}

// SaveLicense renders and stores the license artifact, returning the rendered
// content.
func (b *blobArchiveService) SaveLicense(
	ctx context.Context,
	license *licenseDomain.License,
	productKey string,
) ([]byte, error) {
	artifact := licenseArtifact{
		Company:           license.CompanyName,
		ProductName:       license.ProductName,
		LicenseUsersCount: license.UsersCount,
		ExpTime:           license.ExpiresAt.Format("2006-01-02"),
		ProductKey:        productKey,
	}

	if license.AdditionalInfo != "" {
		if err := json.Unmarshal([]byte(license.AdditionalInfo), &artifact.AdditionalInfo); err != nil {
			return nil, licenseDomain.ErrInvalidAdditionalInfo
		}
	}

	content, err := json.MarshalIndent(artifact, "", "    ")
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to render license artifact")
	}

	opts := &blob.WriterOptions{ContentType: "text/plain; charset=utf-8"}
	if err := b.bucket.WriteAll(ctx, licensePrefix+license.LicenseFileName, content, opts); err != nil {
		return nil, apperrors.Wrap(err, "failed to save license artifact")
	}

	return content, nil
}

// OpenLicense opens a stored license artifact for reading.
func (b *blobArchiveService) OpenLicense(ctx context.Context, fileName string) (io.ReadCloser, error) {
	return b.open(ctx, licensePrefix+fileName)
}

// OpenDigest opens a stored machine digest for reading.
func (b *blobArchiveService) OpenDigest(ctx context.Context, fileName string) (io.ReadCloser, error) {
	return b.open(ctx, digestPrefix+fileName)
}

func (b *blobArchiveService) open(ctx context.Context, key string) (io.ReadCloser, error) {
	reader, err := b.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, licenseDomain.ErrArtifactNotFound
		}
		return nil, apperrors.Wrap(err, "failed to open artifact")
	}
	return reader, nil
}

// DeleteLicense removes a stored license artifact.
func (b *blobArchiveService) DeleteLicense(ctx context.Context, fileName string) error {
	return b.delete(ctx, licensePrefix+fileName)
}

// DeleteDigest removes a stored machine digest.
func (b *blobArchiveService) DeleteDigest(ctx context.Context, fileName string) error {
	return b.delete(ctx, digestPrefix+fileName)
}

func (b *blobArchiveService) delete(ctx context.Context, key string) error {
	if err := b.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return licenseDomain.ErrArtifactNotFound
		}
		return apperrors.Wrap(err, "failed to delete artifact")
	}
	return nil
}

// NewArchiveService creates an ArchiveService backed by the given bucket.
func NewArchiveService(bucket *blob.Bucket) ArchiveService {
	return &blobArchiveService{bucket: bucket}
}
