package domain

import "time"

// LoginInput carries the credentials submitted to the token endpoint. The
// password may arrive encrypted-in-transit; the decryptor handles both forms.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput is the result of a successful login. A fresh token is issued on
// every login; previously issued tokens stay valid until they expire.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}
