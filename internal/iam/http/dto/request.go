// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/licentio/licentio/internal/validation"
)

// LoginRequest contains the credentials submitted to the token endpoint.
// Accepted as JSON or as an OAuth2-style form body (username/password fields).
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Validate checks if the login request is valid.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(1, 1024),
		),
	)
}

// CreateAccessRequest contains the parameters for registering a new access name.
type CreateAccessRequest struct {
	Name string `json:"name"`
}

// Validate checks if the create access request is valid.
func (r *CreateAccessRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			customValidation.AccessName,
			validation.Length(1, 255),
		),
	)
}

// CreateRoleRequest contains the parameters for creating a new role.
type CreateRoleRequest struct {
	Name string `json:"name"`
}

// Validate checks if the create role request is valid.
func (r *CreateRoleRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
	)
}

// SetRoleAccessRequest flips a single access flag on a role.
type SetRoleAccessRequest struct {
	HasAccess bool `json:"has_access"`
}

// CreateUserRequest contains the parameters for creating a new user. Password
// and role are optional: a user without a password authenticates through the
// directory service.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Validate checks if the create user request is valid.
func (r *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Password,
			validation.Length(0, 1024),
		),
		validation.Field(&r.Role,
			validation.Length(0, 255),
		),
	)
}

// SetUserRoleRequest adds or removes a role on a user.
type SetUserRoleRequest struct {
	Added bool `json:"added"`
}
