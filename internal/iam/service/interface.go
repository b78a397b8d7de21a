// Package service provides identity-related services for password hashing,
// bearer token signing and the directory-service credential check.
package service

import (
	"context"
	"time"
)

// PasswordService handles one-way hashing of user passwords.
type PasswordService interface {
	// HashPassword hashes a plain text password for storage.
	HashPassword(plainPassword string) (string, error)

	// ComparePassword performs a constant-time comparison between a plain
	// password and its stored hash.
	ComparePassword(plainPassword string, hashedPassword string) bool
}

// TokenService signs and verifies bearer tokens. Tokens are immutable once
// issued; a fresh login always produces a fresh token.
type TokenService interface {
	// Issue signs a token for the subject with the resolved access set as claims.
	Issue(username string, accesses []string) (token string, expiresAt time.Time, err error)

	// Verify checks the token signature and expiry and returns the embedded claims.
	// Returns ErrTokenExpired for expired tokens and ErrTokenInvalid otherwise.
	Verify(token string) (*Claims, error)
}

// CredentialDecryptor recovers plaintext from passwords submitted
// encrypted-in-transit. Implementations must never fail hard: when the value
// is not decryptable it is passed through literally.
type CredentialDecryptor interface {
	Decrypt(value string) string
}

// DirectoryIdentity is the canonical identity resolved by a directory search.
type DirectoryIdentity struct {
	DN    string
	Email string
}

// DirectoryService authenticates credentials against an external
// LDAP-style directory.
type DirectoryService interface {
	// Authenticate binds with a service identity, searches for the username
	// and re-binds with the found entry's DN and the supplied password.
	// Returns ErrInvalidCredentials when the identity is unknown or the bind
	// is rejected, and ErrDirectoryUnavailable when the directory cannot be
	// reached. The connection is released on every path.
	Authenticate(ctx context.Context, username, password string) (*DirectoryIdentity, error)
}
