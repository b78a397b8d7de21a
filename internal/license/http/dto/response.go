package dto

import (
	"time"

	licenseDomain "github.com/licentio/licentio/internal/license/domain"
)

// LicenseResponse represents a license in API responses.
type LicenseResponse struct {
	ID              int64     `json:"id"`
	CompanyName     string    `json:"company_name"`
	ProductName     string    `json:"product_name"`
	UsersCount      int       `json:"users_count"`
	ExpiresAt       string    `json:"expires_at"`
	AdditionalInfo  string    `json:"additional_info,omitempty"`
	DigestFileName  string    `json:"digest_file_name"`
	LicenseFileName string    `json:"license_file_name"`
	CreatedAt       time.Time `json:"created_at"`
}

// MapLicenseToResponse converts a domain license to an API response.
func MapLicenseToResponse(license *licenseDomain.License) LicenseResponse {
	return LicenseResponse{
		ID:              license.ID,
		CompanyName:     license.CompanyName,
		ProductName:     license.ProductName,
		UsersCount:      license.UsersCount,
		ExpiresAt:       license.ExpiresAt.Format("2006-01-02"),
		AdditionalInfo:  license.AdditionalInfo,
		DigestFileName:  license.DigestFileName,
		LicenseFileName: license.LicenseFileName,
		CreatedAt:       license.CreatedAt,
	}
}

// ListLicensesResponse represents a page of licenses in API responses.
type ListLicensesResponse struct {
	Data []LicenseResponse `json:"data"`
}

// MapLicensesToListResponse converts a slice of domain licenses to a list API response.
func MapLicensesToListResponse(licenses []*licenseDomain.License) ListLicensesResponse {
	responses := make([]LicenseResponse, 0, len(licenses))
	for _, license := range licenses {
		responses = append(responses, MapLicenseToResponse(license))
	}
	return ListLicensesResponse{Data: responses}
}
