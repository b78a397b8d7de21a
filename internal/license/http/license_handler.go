// Package http provides HTTP handlers for the license API.
package http

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/licentio/licentio/internal/httputil"
	licenseDomain "github.com/licentio/licentio/internal/license/domain"
	"github.com/licentio/licentio/internal/license/http/dto"
	licenseUseCase "github.com/licentio/licentio/internal/license/usecase"
	customValidation "github.com/licentio/licentio/internal/validation"
)

// maxDigestSize bounds the uploaded machine digest. Digests are short
// machine fingerprints, not bulk data.
const maxDigestSize = 1 << 20

// LicenseHandler handles HTTP requests for license issuance and retrieval.
type LicenseHandler struct {
	licenseUseCase licenseUseCase.LicenseUseCase
	logger         *slog.Logger
}

// NewLicenseHandler creates a new license handler with required dependencies.
func NewLicenseHandler(useCase licenseUseCase.LicenseUseCase, logger *slog.Logger) *LicenseHandler {
	return &LicenseHandler{
		licenseUseCase: useCase,
		logger:         logger,
	}
}

// GenerateHandler issues a new license and returns the rendered license file
// as a download.
// POST /v1/licenses - Requires CREATE_LICENSE.
func (h *LicenseHandler) GenerateHandler(c *gin.Context) {
	var req dto.GenerateLicenseRequest

	if err := c.ShouldBind(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	fileHeader, err := c.FormFile("machine_digest_file")
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("machine digest file is required"), h.logger)
		return
	}
	if fileHeader.Size > maxDigestSize {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("machine digest file exceeds %d bytes", maxDigestSize),
			h.logger)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("failed to open machine digest file"), h.logger)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("failed to read machine digest file"), h.logger)
		return
	}

	output, err := h.licenseUseCase.Generate(c.Request.Context(), &licenseDomain.GenerateInput{
		CompanyName:       req.CompanyName,
		ProductName:       req.ProductName,
		UsersCount:        req.UsersCount,
		ExpiresAt:         req.ExpiresAt,
		AdditionalInfo:    req.AdditionalInfo,
		DigestContentType: fileHeader.Header.Get("Content-Type"),
		DigestContent:     content,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	c.Data(http.StatusOK, "application/octet-stream", output.Content)
}

// ListHandler lists issued licenses, newest first.
// GET /v1/licenses - Requires READ_LICENSE.
func (h *LicenseHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	licenses, err := h.licenseUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapLicensesToListResponse(licenses))
}

// GetHandler retrieves license metadata by ID.
// GET /v1/licenses/:id - Requires READ_LICENSE.
// Returns 404 for an unknown id.
func (h *LicenseHandler) GetHandler(c *gin.Context) {
	licenseID, ok := h.parseLicenseID(c)
	if !ok {
		return
	}

	license, err := h.licenseUseCase.Get(c.Request.Context(), licenseID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapLicenseToResponse(license))
}

// GetFileHandler streams the rendered license artifact as a download.
// GET /v1/licenses/:id/file - Requires RETRIEVE_FILE.
// Returns 404 for an unknown id or a missing artifact.
func (h *LicenseHandler) GetFileHandler(c *gin.Context) {
	h.serveArtifact(c, h.licenseUseCase.GetFile)
}

// GetDigestFileHandler streams the stored machine digest as a download.
// GET /v1/licenses/:id/digest - Requires RETRIEVE_FILE.
// Returns 404 for an unknown id or a missing artifact.
func (h *LicenseHandler) GetDigestFileHandler(c *gin.Context) {
	h.serveArtifact(c, h.licenseUseCase.GetDigestFile)
}

// DeleteHandler removes a license and its stored artifacts.
// DELETE /v1/licenses/:id - Requires CREATE_LICENSE.
// Returns 204 No Content, or 404 for an unknown id.
func (h *LicenseHandler) DeleteHandler(c *gin.Context) {
	licenseID, ok := h.parseLicenseID(c)
	if !ok {
		return
	}

	if err := h.licenseUseCase.Delete(c.Request.Context(), licenseID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.InfoContext(c.Request.Context(), "license deleted",
		slog.Int64("license_id", licenseID))

	c.Status(http.StatusNoContent)
}

func (h *LicenseHandler) serveArtifact(
	c *gin.Context,
	open func(ctx context.Context, licenseID int64) (*licenseDomain.Artifact, error),
) {
	licenseID, ok := h.parseLicenseID(c)
	if !ok {
		return
	}

	artifact, err := open(c.Request.Context(), licenseID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	defer artifact.Content.Close()

	headers := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", artifact.FileName),
	}
	c.DataFromReader(http.StatusOK, -1, "application/octet-stream", artifact.Content, headers)
}

func (h *LicenseHandler) parseLicenseID(c *gin.Context) (int64, bool) {
	licenseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid license ID format: must be an integer"),
			h.logger)
		return 0, false
	}
	return licenseID, true
}
