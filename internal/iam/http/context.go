// Package http provides HTTP middleware and utilities for identity and
// access management.
package http

import (
	"context"

	iamService "github.com/licentio/licentio/internal/iam/service"
)

// claimsKey is a context key type for storing verified token claims.
type claimsKey struct{}

// WithClaims stores verified token claims in the context. Called by the
// authentication middleware after a successful token verification.
func WithClaims(ctx context.Context, claims *iamService.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// GetClaims retrieves verified token claims from the context. Returns
// (claims, true) if present, or (nil, false) if the request was not
// authenticated.
func GetClaims(ctx context.Context) (*iamService.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*iamService.Claims)
	return claims, ok
}
