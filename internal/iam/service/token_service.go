package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/licentio/licentio/internal/errors"
	iamDomain "github.com/licentio/licentio/internal/iam/domain"
)

// Claims are the only supported claims shape for issued tokens. The subject
// carries the username and Accesses the resolved access set at issuance time.
// Authorization checks are purely claim-based: revoking a role does not
// invalidate already-issued tokens until they expire.
type Claims struct {
	jwt.RegisteredClaims

	Accesses []string `json:"accesses"`
}

// Username returns the token subject.
func (c *Claims) Username() string {
	return c.Subject
}

// HasAccess reports whether the named access was claimed at issuance time.
func (c *Claims) HasAccess(accessName string) bool {
	for _, name := range c.Accesses {
		if name == accessName {
			return true
		}
	}
	return false
}

// tokenService implements TokenService using HMAC-SHA256 signed JWTs.
type tokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Issue signs a token for the subject with the resolved access set as claims.
func (t *tokenService) Issue(username string, accesses []string) (string, time.Time, error) {
	if accesses == nil {
		accesses = []string{}
	}

	issuedAt := t.now().UTC()
	expiresAt := issuedAt.Add(t.ttl)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Accesses: accesses,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign token")
	}

	return token, expiresAt, nil
}

// Verify checks the token signature and expiry and returns the embedded claims.
// Tokens are valid while now < expiry.
func (t *tokenService) Verify(token string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(
		token,
		claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return t.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, iamDomain.ErrTokenExpired
		}
		return nil, iamDomain.ErrTokenInvalid
	}

	if !parsed.Valid {
		return nil, iamDomain.ErrTokenInvalid
	}

	return claims, nil
}

// NewTokenService creates a TokenService signing HS256 JWTs with the given
// secret and fixed TTL.
func NewTokenService(secret string, ttl time.Duration) TokenService {
	return &tokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// NewTokenServiceWithClock creates a TokenService with an injectable clock.
// Used by tests to exercise expiry behavior deterministically.
func NewTokenServiceWithClock(secret string, ttl time.Duration, now func() time.Time) TokenService {
	return &tokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}
}
