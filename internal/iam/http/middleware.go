package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/licentio/licentio/internal/errors"
	"github.com/licentio/licentio/internal/httputil"
	iamUseCase "github.com/licentio/licentio/internal/iam/usecase"
)

// AuthenticationMiddleware authenticates requests via a Bearer JWT in the
// Authorization header.
//
// The middleware extracts the token (case-insensitive "bearer" prefix),
// verifies signature and expiry through the token use case, and stores the
// claims in the request context for downstream handlers and the
// authorization middleware.
//
// Error handling:
//   - Missing or malformed Authorization header → 401 Unauthorized
//   - Invalid or expired token → 401 Unauthorized
func AuthenticationMiddleware(
	tokenUseCase iamUseCase.TokenUseCase,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		token := authHeader[len(bearerPrefix):]
		if token == "" {
			logger.Debug("authentication failed: empty bearer token")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		claims, err := tokenUseCase.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithClaims(c.Request.Context(), claims)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// AuthorizationMiddleware enforces that the verified claims carry the
// required access name. An empty required access is an identity-only check:
// any valid unexpired token passes.
//
// The check is purely claim-based. The role and user tables are not
// re-queried, so a grant revoked after issuance stays effective until the
// token expires.
//
// Must run after AuthenticationMiddleware.
func AuthorizationMiddleware(requiredAccess string, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c.Request.Context())
		if !ok {
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		if requiredAccess != "" && !claims.HasAccess(requiredAccess) {
			logger.Debug("authorization failed",
				slog.String("username", claims.Username()),
				slog.String("required_access", requiredAccess),
			)
			httputil.HandleErrorGin(c, apperrors.ErrForbidden, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
