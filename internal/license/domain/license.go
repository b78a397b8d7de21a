// Package domain defines the core domain models for license issuance. A
// license couples a metadata row (auto-increment id) with two blob artifacts:
// the machine digest uploaded by the customer and the rendered license file
// returned for download.
package domain

import (
	"io"
	"time"
)

// License represents an issued license and the names of its stored artifacts.
type License struct {
	// ID is the auto-increment identifier assigned by the backing store.
	ID int64
	// CompanyName is the licensee company.
	CompanyName string
	// ProductName is the licensed product.
	ProductName string
	// UsersCount is the number of seats covered by the license.
	UsersCount int
	// ExpiresAt is the day the license stops being valid.
	ExpiresAt time.Time
	// AdditionalInfo is an optional JSON object with free-form license terms.
	AdditionalInfo string
	// DigestFileName is the stored name of the uploaded machine digest.
	DigestFileName string
	// LicenseFileName is the stored name of the rendered license artifact.
	LicenseFileName string
	// CreatedAt is the UTC timestamp when the license was issued.
	CreatedAt time.Time
}

// GenerateInput carries everything needed to issue a new license.
type GenerateInput struct {
	CompanyName string
	ProductName string
	UsersCount  int
	// ExpiresAt is the requested expiry day in YYYY-MM-DD form.
	ExpiresAt      string
	AdditionalInfo string
	// DigestContentType is the media type of the uploaded machine digest.
	DigestContentType string
	// DigestContent is the raw machine digest; its text becomes the product key.
	DigestContent []byte
}

// GenerateOutput is the result of issuing a license: the persisted row plus
// the rendered artifact, ready to be returned as a download.
type GenerateOutput struct {
	License  *License
	FileName string
	Content  []byte
}

// Artifact is a stored file opened for download. The caller owns Content and
// must close it.
type Artifact struct {
	FileName string
	Content  io.ReadCloser
}
