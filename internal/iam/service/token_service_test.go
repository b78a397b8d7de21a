package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	iamDomain "github.com/licentio/licentio/internal/iam/domain"
)

func TestTokenServiceIssueAndVerify(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)

	token, expiresAt, err := tokens.Issue("alice", []string{"CREATE_LICENSE", "READ_LICENSE"})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username())
	assert.Equal(t, []string{"CREATE_LICENSE", "READ_LICENSE"}, claims.Accesses)
	assert.True(t, claims.HasAccess("CREATE_LICENSE"))
	assert.False(t, claims.HasAccess("USER_ROLE_MANAGEMENT"))
}

func TestTokenServiceNilAccesses(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)

	token, _, err := tokens.Issue("bob", nil)
	require.NoError(t, err)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, []string{}, claims.Accesses)
}

func TestTokenServiceExpiredToken(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := issuedAt
	tokens := NewTokenServiceWithClock("test-secret", time.Hour, func() time.Time {
		return clock
	})

	token, expiresAt, err := tokens.Issue("alice", []string{"READ_LICENSE"})
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(time.Hour), expiresAt)

	// Still valid just before expiry
	clock = issuedAt.Add(59 * time.Minute)
	_, err = tokens.Verify(token)
	require.NoError(t, err)

	// Expired once the clock passes the deadline
	clock = issuedAt.Add(2 * time.Hour)
	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, iamDomain.ErrTokenExpired)
}

func TestTokenServiceInvalidTokens(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		_, err := tokens.Verify("not-a-jwt")
		assert.ErrorIs(t, err, iamDomain.ErrTokenInvalid)
	})

	t.Run("wrong signing secret", func(t *testing.T) {
		other := NewTokenService("different-secret", time.Hour)
		token, _, err := other.Issue("alice", nil)
		require.NoError(t, err)

		_, err = tokens.Verify(token)
		assert.ErrorIs(t, err, iamDomain.ErrTokenInvalid)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := tokens.Verify("")
		assert.ErrorIs(t, err, iamDomain.ErrTokenInvalid)
	})
}
