// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"stockhub/internal/delivery/http/middleware"
	"stockhub/internal/delivery/http/response"
	"stockhub/internal/domain/entity"
	domainerrors "stockhub/internal/domain/errors"
	"stockhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for account-related handlers.
type AuthHandler struct {
	uc     usecase.IdentityUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.IdentityUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// tenantView is the account shape returned to the front end. The password
// hash and the sealed mail secret never leave the server.
type tenantView struct {
	ID                 uuid.UUID `json:"id"`
	Username           string    `json:"username"`
	Email              string    `json:"email"`
	LogoURL            string    `json:"logo_url"`
	CompanyName        string    `json:"company_name"`
	CompanyDescription string    `json:"company_description"`
	Phone              string    `json:"phone"`
	Address            string    `json:"address"`
	NIF                string    `json:"nif"`
	Tags               []string  `json:"tags"`
	OrderTerms         string    `json:"order_terms"`
	CompanyEmail       string    `json:"company_email"`
	HasMailCredentials bool      `json:"has_mail_credentials"`
	CreatedAt          time.Time `json:"created_at"`
}

func toTenantView(tenant *entity.Tenant) *tenantView {
	return &tenantView{
		ID:                 tenant.ID,
		Username:           tenant.Username,
		Email:              tenant.Email,
		LogoURL:            tenant.LogoURL,
		CompanyName:        tenant.CompanyName,
		CompanyDescription: tenant.CompanyDescription,
		Phone:              tenant.Phone,
		Address:            tenant.Address,
		NIF:                tenant.NIF,
		Tags:               tenant.Tags,
		OrderTerms:         tenant.OrderTerms,
		CompanyEmail:       tenant.CompanyEmail,
		HasMailCredentials: tenant.HasMailCredentials(),
		CreatedAt:          tenant.CreatedAt,
	}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"token":  output.Token,
		"tenant": toTenantView(output.Tenant),
	}, "Account registered successfully")
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles the interactive login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"token":  output.Token,
		"tenant": toTenantView(output.Tenant),
	}, "Login successful")
}

// Verify resolves the presented bearer token back to its account.
func (h *AuthHandler) Verify(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" || tokenString == authHeader {
		return errors.WithStack(domainerrors.ErrTokenInvalid)
	}

	if _, err := h.uc.Verify(c.Request().Context(), tokenString); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ActionToken issues a short-lived token for delegated operations.
func (h *AuthHandler) ActionToken(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	token, err := h.uc.IssueActionToken(c.Request().Context(), tenantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"token": token}, "Action token issued")
}

// GetAccount returns the authenticated account.
func (h *AuthHandler) GetAccount(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	tenant, err := h.uc.GetAccount(c.Request().Context(), tenantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTenantView(tenant), "")
}

// UpdateAccount applies a partial profile update.
func (h *AuthHandler) UpdateAccount(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var input *usecase.UpdateAccountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account update input")
	}

	tenant, err := h.uc.UpdateAccount(c.Request().Context(), tenantID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTenantView(tenant), "Account updated")
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPassword mails a single-use password reset link.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset email sent")
}

type resetPasswordRequest struct {
	Secret   string `json:"secret" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// ResetPassword consumes the reset secret and stores the new password.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.ConfirmPasswordReset(c.Request().Context(), req.Secret, req.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated")
}
