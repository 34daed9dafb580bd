// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"stockhub/internal/domain/entity"

	"github.com/google/uuid"
)

// IdentityUsecase defines the interface for account-related business operations.
type IdentityUsecase interface {
	// Register creates a tenant account and logs it in.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Verify resolves a bearer token back to its tenant account.
	Verify(ctx context.Context, tokenString string) (*entity.Tenant, error)

	// IssueActionToken issues a short-lived token for a single delegated
	// operation such as capturing a signature on another device.
	IssueActionToken(ctx context.Context, tenantID uuid.UUID) (string, error)

	// GetAccount returns the tenant account.
	GetAccount(ctx context.Context, tenantID uuid.UUID) (*entity.Tenant, error)

	// UpdateAccount applies a partial update to the tenant profile. A new
	// company mail password is sealed by the credential cipher before it is
	// stored.
	UpdateAccount(ctx context.Context, tenantID uuid.UUID, input *UpdateAccountInput) (*entity.Tenant, error)

	// RequestPasswordReset emails a single-use reset link to the account
	// address. An unknown email is reported to the caller as not found.
	RequestPasswordReset(ctx context.Context, email string) error

	// ConfirmPasswordReset consumes a reset secret and stores the new
	// password hash.
	ConfirmPasswordReset(ctx context.Context, secret, newPassword string) error
}

// --- Input/Output DTOs ---

// RegisterInput defines the data required to create a tenant account.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput defines the credentials for an interactive login.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthOutput carries a freshly issued session token and its account.
type AuthOutput struct {
	Token  string         `json:"token"`
	Tenant *entity.Tenant `json:"tenant"`
}

// UpdateAccountInput defines the partial tenant profile update. Nil fields
// are left untouched.
type UpdateAccountInput struct {
	Email              *string   `json:"email,omitempty"`
	LogoURL            *string   `json:"logo_url,omitempty"`
	CompanyName        *string   `json:"company_name,omitempty"`
	CompanyDescription *string   `json:"company_description,omitempty"`
	Phone              *string   `json:"phone,omitempty"`
	Address            *string   `json:"address,omitempty"`
	NIF                *string   `json:"nif,omitempty"`
	Tags               *[]string `json:"tags,omitempty"`
	OrderTerms         *string   `json:"order_terms,omitempty"`
	CompanyEmail       *string   `json:"company_email,omitempty"`

	// CompanyEmailPassword is the plaintext SMTP password; it is encrypted
	// before persistence and never returned.
	CompanyEmailPassword *string `json:"company_email_password,omitempty"`
}
