package dto

import (
	"time"

	iamDomain "github.com/licentio/licentio/internal/iam/domain"
)

// LoginResponse contains the issued bearer token.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// VerifyTokenResponse reports the subject of a valid token.
type VerifyTokenResponse struct {
	Username string `json:"username"`
}

// MeResponse describes the authenticated identity as seen by the token claims.
type MeResponse struct {
	Username string   `json:"username"`
	Accesses []string `json:"accesses"`
}

// AccessResponse represents an access registry entry in API responses.
type AccessResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// MapAccessToResponse converts a domain access to an API response.
func MapAccessToResponse(access *iamDomain.Access) AccessResponse {
	return AccessResponse{
		ID:        access.ID.String(),
		Name:      access.Name,
		CreatedAt: access.CreatedAt,
	}
}

// ListAccessesResponse represents the access registry in API responses.
type ListAccessesResponse struct {
	Data []AccessResponse `json:"data"`
}

// MapAccessesToListResponse converts a slice of domain accesses to a list API response.
func MapAccessesToListResponse(accesses []*iamDomain.Access) ListAccessesResponse {
	responses := make([]AccessResponse, 0, len(accesses))
	for _, access := range accesses {
		responses = append(responses, MapAccessToResponse(access))
	}
	return ListAccessesResponse{Data: responses}
}

// RoleResponse represents a role in API responses. The access map is always
// dense: its key set equals the current access registry.
type RoleResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Accesses  map[string]bool `json:"accesses"`
	CreatedAt time.Time       `json:"created_at"`
}

// MapRoleToResponse converts a domain role to an API response.
func MapRoleToResponse(role *iamDomain.Role) RoleResponse {
	return RoleResponse{
		ID:        role.ID.String(),
		Name:      role.Name,
		Accesses:  role.Accesses,
		CreatedAt: role.CreatedAt,
	}
}

// ListRolesResponse represents a list of roles in API responses.
type ListRolesResponse struct {
	Data []RoleResponse `json:"data"`
}

// MapRolesToListResponse converts a slice of domain roles to a list API response.
func MapRolesToListResponse(roles []*iamDomain.Role) ListRolesResponse {
	responses := make([]RoleResponse, 0, len(roles))
	for _, role := range roles {
		responses = append(responses, MapRoleToResponse(role))
	}
	return ListRolesResponse{Data: responses}
}

// UserResponse represents a user in API responses. The password hash is never
// exposed; HasPassword signals whether the user authenticates locally.
type UserResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Roles       []string  `json:"roles"`
	HasPassword bool      `json:"has_password"`
	CreatedAt   time.Time `json:"created_at"`
}

// MapUserToResponse converts a domain user to an API response.
func MapUserToResponse(user *iamDomain.User) UserResponse {
	roles := user.Roles
	if roles == nil {
		roles = []string{}
	}
	return UserResponse{
		ID:          user.ID.String(),
		Username:    user.Username,
		Roles:       roles,
		HasPassword: user.HasLocalPassword(),
		CreatedAt:   user.CreatedAt,
	}
}

// ListUsersResponse represents a list of users in API responses.
type ListUsersResponse struct {
	Data []UserResponse `json:"data"`
}

// MapUsersToListResponse converts a slice of domain users to a list API response.
func MapUsersToListResponse(users []*iamDomain.User) ListUsersResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, MapUserToResponse(user))
	}
	return ListUsersResponse{Data: responses}
}
