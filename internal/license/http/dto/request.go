// Package dto holds request and response payloads for the license HTTP API.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/licentio/licentio/internal/validation"
)

// GenerateLicenseRequest is the multipart form payload for issuing a license.
// The machine digest file travels as a separate multipart part and is read by
// the handler.
type GenerateLicenseRequest struct {
	CompanyName    string `form:"company_name"`
	ProductName    string `form:"product_name"`
	UsersCount     int    `form:"license_users_count"`
	ExpiresAt      string `form:"exp_time"`
	AdditionalInfo string `form:"additional_license_information"`
}

// Validate validates the GenerateLicenseRequest fields.
func (r GenerateLicenseRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CompanyName, validation.Required, customValidation.NotBlank),
		validation.Field(&r.ProductName, validation.Required, customValidation.NotBlank),
		validation.Field(&r.UsersCount, validation.Required, validation.Min(1)),
		validation.Field(&r.ExpiresAt, validation.Required, customValidation.ExpiryDate),
	)
}
