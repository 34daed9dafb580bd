package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"stockhub/internal/delivery/http/middleware"
	"stockhub/internal/delivery/http/response"
	"stockhub/internal/domain/entity"
	domainerrors "stockhub/internal/domain/errors"
	"stockhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TransactionHandler serves both the order and the invoice routes. Each route
// group binds the handlers to its own document kind; everything else is
// shared.
type TransactionHandler struct {
	uc     usecase.TransactionUsecase
	logger *slog.Logger
}

// NewTransactionHandler is the constructor for TransactionHandler, injected by Fx.
func NewTransactionHandler(uc usecase.TransactionUsecase, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create stores a new document of the given kind.
func (h *TransactionHandler) Create(kind entity.TransactionKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		tenantID, ok := middleware.TenantID(c)
		if !ok {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		var input *usecase.TransactionInput
		if err := c.Bind(&input); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid transaction input")
		}

		transaction, err := h.uc.Create(c.Request().Context(), tenantID, kind, input)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusCreated, transaction, "Transaction created")
	}
}

// List returns one page of documents, optionally filtered by client national
// id fragment and rental status.
func (h *TransactionHandler) List(kind entity.TransactionKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		tenantID, ok := middleware.TenantID(c)
		if !ok {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		page, _ := strconv.Atoi(c.QueryParam("page"))

		filter := usecase.ListFilter{Query: c.QueryParam("q")}
		if raw := c.QueryParam("rented"); raw != "" {
			rented, err := strconv.ParseBool(raw)
			if err != nil {
				return response.BadRequest(c, "INVALID_FILTER", "rented must be true or false")
			}
			filter.Rented = &rented
		}

		result, err := h.uc.List(c.Request().Context(), tenantID, kind, page, filter)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, result, "")
	}
}

// Get returns one document by internal id, line-item products resolved.
func (h *TransactionHandler) Get(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	transactionID, err := uuid.Parse(c.Param("transactionId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_TRANSACTION_ID", "Invalid transaction id")
	}

	transaction, err := h.uc.Get(c.Request().Context(), tenantID, transactionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, transaction, "")
}

// Delete removes a document by its external id. Deleting a document that is
// already gone succeeds.
func (h *TransactionHandler) Delete(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	externalID := c.Param("externalId")
	if externalID == "" {
		return response.BadRequest(c, "INVALID_EXTERNAL_ID", "Document id is required")
	}

	if err := h.uc.Delete(c.Request().Context(), tenantID, externalID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

type signRequest struct {
	Signature string `json:"signature" validate:"required"`
}

// Sign stores the captured signature image for a short window.
func (h *TransactionHandler) Sign(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	externalID := c.Param("externalId")

	var req signRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signature input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.Sign(c.Request().Context(), tenantID, externalID, req.Signature); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Signature stored")
}

// GetSignature returns a stored signature while its window is open.
func (h *TransactionHandler) GetSignature(c echo.Context) error {
	if _, ok := middleware.TenantID(c); !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	signature, err := h.uc.GetSignature(c.Request().Context(), c.Param("externalId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"external_id": signature.ExternalID,
		"signature":   signature.Signature,
		"created_at":  signature.CreatedAt,
	}, "")
}

// SignQR renders a QR code that points a second device at the signing page.
func (h *TransactionHandler) SignQR(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	png, err := h.uc.SignQR(c.Request().Context(), tenantID, c.Param("externalId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// SendEmail mails the stored PDF to the client.
func (h *TransactionHandler) SendEmail(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	if err := h.uc.SendEmail(c.Request().Context(), tenantID, c.Param("externalId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Email sent")
}
