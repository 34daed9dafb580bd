package handler

import (
	"log/slog"
	"net/http"

	"stockhub/internal/delivery/http/middleware"
	"stockhub/internal/delivery/http/response"
	domainerrors "stockhub/internal/domain/errors"
	"stockhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FileHandler holds dependencies for document and image storage handlers.
type FileHandler struct {
	uc     usecase.FileUsecase
	logger *slog.Logger
}

// NewFileHandler is the constructor for FileHandler, injected by Fx.
func NewFileHandler(uc usecase.FileUsecase, logger *slog.Logger) *FileHandler {
	return &FileHandler{
		uc:     uc,
		logger: logger,
	}
}

// UploadDocument stores the PDF rendering of a document, replacing any
// previous upload for the same id.
func (h *FileHandler) UploadDocument(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	externalID := c.Param("externalId")
	if externalID == "" {
		return response.BadRequest(c, "INVALID_EXTERNAL_ID", "Document id is required")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "FILE_MISSING", "A file field is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded file")
	}
	defer func() { _ = file.Close() }()

	if err := h.uc.UploadDocument(c.Request().Context(), tenantID, externalID, file); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Document uploaded")
}

// DownloadDocument streams a stored PDF back to the caller.
func (h *FileHandler) DownloadDocument(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	externalID := c.Param("externalId")
	if externalID == "" {
		return response.BadRequest(c, "INVALID_EXTERNAL_ID", "Document id is required")
	}

	body, err := h.uc.DownloadDocument(c.Request().Context(), tenantID, externalID)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() { _ = body.Close() }()

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+externalID+`.pdf"`)

	return c.Stream(http.StatusOK, "application/pdf", body)
}

// DeleteDocument removes a stored PDF. Removing a missing document succeeds.
func (h *FileHandler) DeleteDocument(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	externalID := c.Param("externalId")
	if externalID == "" {
		return response.BadRequest(c, "INVALID_EXTERNAL_ID", "Document id is required")
	}

	if err := h.uc.DeleteDocument(c.Request().Context(), tenantID, externalID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Document deleted")
}

// UploadImage stores a hosted image and returns its public URL.
func (h *FileHandler) UploadImage(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "FILE_MISSING", "A file field is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded file")
	}
	defer func() { _ = file.Close() }()

	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.uc.UploadImage(c.Request().Context(), tenantID, fileHeader.Filename, contentType, file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Image uploaded")
}

// DeleteImage removes a hosted image. Removing a missing image succeeds.
func (h *FileHandler) DeleteImage(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	filename := c.Param("filename")
	if filename == "" {
		return response.BadRequest(c, "INVALID_FILENAME", "Image filename is required")
	}

	if err := h.uc.DeleteImage(c.Request().Context(), tenantID, filename); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Image deleted")
}
