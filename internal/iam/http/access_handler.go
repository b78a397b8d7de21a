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

// AccessHandler handles HTTP requests for the access registry.
type AccessHandler struct {
	accessUseCase iamUseCase.AccessUseCase
	logger        *slog.Logger
}

// NewAccessHandler creates a new access handler with required dependencies.
func NewAccessHandler(accessUseCase iamUseCase.AccessUseCase, logger *slog.Logger) *AccessHandler {
	return &AccessHandler{
		accessUseCase: accessUseCase,
		logger:        logger,
	}
}

// CreateHandler registers a new access name.
// POST /v1/accesses - Requires USER_ROLE_MANAGEMENT.
// Returns 201 Created, or 409 when the name is already registered.
func (h *AccessHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateAccessRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	access, err := h.accessUseCase.Create(c.Request.Context(), &iamDomain.CreateAccessInput{
		Name: req.Name,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapAccessToResponse(access))
}

// ListHandler lists the access registry ordered by name.
// GET /v1/accesses - Requires USER_ROLE_MANAGEMENT.
func (h *AccessHandler) ListHandler(c *gin.Context) {
	accesses, err := h.accessUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAccessesToListResponse(accesses))
}

// DeleteHandler removes an access from the registry.
// DELETE /v1/accesses/:id - Requires USER_ROLE_MANAGEMENT.
// Returns 204 No Content, or 404 for an unknown id.
func (h *AccessHandler) DeleteHandler(c *gin.Context) {
	accessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid access ID format: must be a valid UUID"),
			h.logger)
		return
	}

	if err := h.accessUseCase.Delete(c.Request.Context(), accessID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
