package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/licentio/licentio/internal/httputil"
	iamDomain "github.com/licentio/licentio/internal/iam/domain"
	"github.com/licentio/licentio/internal/iam/http/dto"
	iamUseCase "github.com/licentio/licentio/internal/iam/usecase"
	customValidation "github.com/licentio/licentio/internal/validation"
)

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	userUseCase iamUseCase.UserUseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler with required dependencies.
func NewUserHandler(userUseCase iamUseCase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// CreateHandler creates a new user.
// POST /v1/users - Requires USER_ROLE_MANAGEMENT.
// Returns 201 Created, 409 for a taken (or reserved) username, 404 for an
// unknown initial role.
func (h *UserHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	user, err := h.userUseCase.Create(c.Request.Context(), &iamDomain.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapUserToResponse(user))
}

// ListHandler lists all users ordered by username.
// GET /v1/users - Requires USER_ROLE_MANAGEMENT.
func (h *UserHandler) ListHandler(c *gin.Context) {
	users, err := h.userUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUsersToListResponse(users))
}

// SetRoleHandler adds or removes a role on a user. Both directions are
// idempotent.
// PUT /v1/users/:id/roles/:role_id - Requires USER_ROLE_MANAGEMENT.
// Returns 200 OK with the updated user, 403 when the removal would strip the
// last user-management hold.
func (h *UserHandler) SetRoleHandler(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid user ID format: must be a valid UUID"),
			h.logger)
		return
	}

	roleID, err := uuid.Parse(c.Param("role_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid role ID format: must be a valid UUID"),
			h.logger)
		return
	}

	var req dto.SetUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.SetRole(c.Request.Context(), userID, roleID, req.Added)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}

// DeleteHandler removes a user.
// DELETE /v1/users/:id - Requires USER_ROLE_MANAGEMENT.
// Returns 204 No Content, 403 for self-deletion or the last administrator,
// 404 for an unknown id.
func (h *UserHandler) DeleteHandler(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid user ID format: must be a valid UUID"),
			h.logger)
		return
	}

	claims, ok := GetClaims(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, iamDomain.ErrTokenInvalid, h.logger)
		return
	}

	if err := h.userUseCase.Delete(c.Request.Context(), claims.Username(), userID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
