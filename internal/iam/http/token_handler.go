package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/licentio/licentio/internal/httputil"
	iamDomain "github.com/licentio/licentio/internal/iam/domain"
	"github.com/licentio/licentio/internal/iam/http/dto"
	iamUseCase "github.com/licentio/licentio/internal/iam/usecase"
	customValidation "github.com/licentio/licentio/internal/validation"
)

// TokenHandler handles HTTP requests for login and token introspection.
type TokenHandler struct {
	tokenUseCase iamUseCase.TokenUseCase
	logger       *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(tokenUseCase iamUseCase.TokenUseCase, logger *slog.Logger) *TokenHandler {
	return &TokenHandler{
		tokenUseCase: tokenUseCase,
		logger:       logger,
	}
}

// LoginHandler authenticates credentials and issues a bearer token.
// POST /v1/token - No authentication required (this is the authentication endpoint).
// Accepts JSON or an OAuth2-style form body. Returns 200 OK with the token.
// Bad credentials return 400 with a uniform message so the response cannot be
// used to enumerate usernames; a directory outage returns 503.
func (h *TokenHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := h.bindLoginRequest(c, &req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &iamDomain.LoginInput{
		Username: req.Username,
		Password: req.Password,
	}

	output, err := h.tokenUseCase.Login(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, iamDomain.ErrInvalidCredentials) {
			h.logger.Info("failed login attempt", slog.String("username", req.Username))
			httputil.HandleBadRequestGin(c, errors.New("incorrect username or password"), h.logger)
			return
		}
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("user logged in", slog.String("username", req.Username))

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		ExpiresAt:   output.ExpiresAt,
	})
}

// VerifyTokenHandler reports whether the presented token is valid.
// GET /v1/verify_token - Requires a valid token (identity-only check).
// Returns 200 OK with the token subject.
func (h *TokenHandler) VerifyTokenHandler(c *gin.Context) {
	claims, ok := GetClaims(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, iamDomain.ErrTokenInvalid, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyTokenResponse{
		Username: claims.Username(),
	})
}

// MeHandler describes the authenticated identity from the token claims.
// GET /v1/users/me - Requires a valid token (identity-only check).
// Returns 200 OK with the subject and the access set claimed at issuance.
func (h *TokenHandler) MeHandler(c *gin.Context) {
	claims, ok := GetClaims(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, iamDomain.ErrTokenInvalid, h.logger)
		return
	}

	accesses := claims.Accesses
	if accesses == nil {
		accesses = []string{}
	}

	c.JSON(http.StatusOK, dto.MeResponse{
		Username: claims.Username(),
		Accesses: accesses,
	})
}

// bindLoginRequest accepts both JSON and form-encoded credential bodies. The
// form shape keeps compatibility with OAuth2 password-grant tooling.
func (h *TokenHandler) bindLoginRequest(c *gin.Context, req *dto.LoginRequest) error {
	contentType := c.ContentType()
	if strings.Contains(contentType, "application/json") {
		return c.ShouldBindJSON(req)
	}
	return c.ShouldBind(req)
}
