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

// RoleHandler handles HTTP requests for role management.
type RoleHandler struct {
	roleUseCase iamUseCase.RoleUseCase
	logger      *slog.Logger
}

// NewRoleHandler creates a new role handler with required dependencies.
func NewRoleHandler(roleUseCase iamUseCase.RoleUseCase, logger *slog.Logger) *RoleHandler {
	return &RoleHandler{
		roleUseCase: roleUseCase,
		logger:      logger,
	}
}

// CreateHandler creates a new role covering the full registry with every flag
// false.
// POST /v1/roles - Requires USER_ROLE_MANAGEMENT.
// Returns 201 Created, or 409 when the name is already taken.
func (h *RoleHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateRoleRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	role, err := h.roleUseCase.Create(c.Request.Context(), &iamDomain.CreateRoleInput{
		Name: req.Name,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapRoleToResponse(role))
}

// ListHandler lists all roles, access maps projected against the registry.
// GET /v1/roles - Requires USER_ROLE_MANAGEMENT.
func (h *RoleHandler) ListHandler(c *gin.Context) {
	roles, err := h.roleUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRolesToListResponse(roles))
}

// SetAccessHandler flips a single access flag on a role. Bulk map replacement
// is deliberately not exposed: a client can never silently drop unrelated
// grants.
// PUT /v1/roles/:id/accesses/:access_id - Requires USER_ROLE_MANAGEMENT.
// Returns 200 OK with the updated role.
func (h *RoleHandler) SetAccessHandler(c *gin.Context) {
	roleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid role ID format: must be a valid UUID"),
			h.logger)
		return
	}

	accessID, err := uuid.Parse(c.Param("access_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid access ID format: must be a valid UUID"),
			h.logger)
		return
	}

	var req dto.SetRoleAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	role, err := h.roleUseCase.SetAccess(c.Request.Context(), roleID, accessID, req.HasAccess)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRoleToResponse(role))
}

// DeleteHandler removes a role.
// DELETE /v1/roles/:id - Requires USER_ROLE_MANAGEMENT.
// Returns 204 No Content, or 404 for an unknown id.
func (h *RoleHandler) DeleteHandler(c *gin.Context) {
	roleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid role ID format: must be a valid UUID"),
			h.logger)
		return
	}

	if err := h.roleUseCase.Delete(c.Request.Context(), roleID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
