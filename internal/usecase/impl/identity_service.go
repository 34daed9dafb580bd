// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"

	"stockhub/config"
	"stockhub/internal/domain/entity"
	domainerrors "stockhub/internal/domain/errors"
	"stockhub/internal/domain/repository"
	"stockhub/internal/domain/service"
	"stockhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// resetSecretBytes yields a 128-character hex secret.
const resetSecretBytes = 64

// identityService implements the IdentityUsecase interface.
type identityService struct {
	txManager   repository.TransactionManager
	resetTokens repository.ResetTokenStore
	hasher      service.PasswordHasher
	tokens      service.TokenService
	cipher      service.CredentialCipher
	mailer      service.Mailer
	cfg         *config.Config
	logger      *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(
	txManager repository.TransactionManager,
	resetTokens repository.ResetTokenStore,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	cipher service.CredentialCipher,
	mailer service.Mailer,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.IdentityUsecase {
	return &identityService{
		txManager:   txManager,
		resetTokens: resetTokens,
		hasher:      hasher,
		tokens:      tokens,
		cipher:      cipher,
		mailer:      mailer,
		cfg:         cfg,
		logger:      logger,
	}
}

// Register creates a tenant account and immediately issues a session token.
func (srv *identityService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.logger.Info("Registering tenant", "username", input.Username)

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed
	}

	tenant := &entity.Tenant{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.TenantRepo().Create(ctx, tenant)
	})
	if err != nil {
		return nil, err
	}

	return srv.issueSession(tenant)
}

// Login verifies the credentials against the stored hash.
func (srv *identityService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	var tenant *entity.Tenant

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.TenantRepo().FindByUsername(ctx, input.Username)
		if err != nil {
			if errors.Is(err, repository.ErrTenantNotFound) {
				// Same answer as a bad password; do not leak which part failed.
				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(err, "failed to find tenant")
		}
		tenant = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := srv.hasher.Compare(tenant.PasswordHash, input.Password); err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueSession(tenant)
}

// Verify resolves a bearer token to its account.
func (srv *identityService) Verify(ctx context.Context, tokenString string) (*entity.Tenant, error) {
	claims, err := srv.tokens.Validate(tokenString)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	return srv.GetAccount(ctx, claims.TenantID)
}

// IssueActionToken issues a short-lived delegation token.
func (srv *identityService) IssueActionToken(ctx context.Context, tenantID uuid.UUID) (string, error) {
	tenant, err := srv.GetAccount(ctx, tenantID)
	if err != nil {
		return "", err
	}

	return srv.tokens.GenerateActionToken(service.Claims{
		TenantID: tenant.ID,
		Username: tenant.Username,
	})
}

// GetAccount returns the tenant account.
func (srv *identityService) GetAccount(ctx context.Context, tenantID uuid.UUID) (*entity.Tenant, error) {
	var tenant *entity.Tenant

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.TenantRepo().FindByID(ctx, tenantID)
		if err != nil {
			if errors.Is(err, repository.ErrTenantNotFound) {
				return domainerrors.ErrTenantNotFound
			}

			return errors.Wrap(err, "failed to find tenant")
		}
		tenant = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return tenant, nil
}

// UpdateAccount applies the partial profile update.
func (srv *identityService) UpdateAccount(ctx context.Context, tenantID uuid.UUID, input *usecase.UpdateAccountInput) (*entity.Tenant, error) {
	srv.logger.Info("Updating tenant account", "tenantID", tenantID)

	var tenant *entity.Tenant

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tenantRepo := repoFactory.TenantRepo()

		found, err := tenantRepo.FindByID(ctx, tenantID)
		if err != nil {
			if errors.Is(err, repository.ErrTenantNotFound) {
				return domainerrors.ErrTenantNotFound
			}

			return errors.Wrap(err, "failed to find tenant")
		}

		if err := srv.applyAccountUpdate(found, input); err != nil {
			return err
		}

		if err := tenantRepo.Update(ctx, found); err != nil {
			return err
		}
		tenant = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return tenant, nil
}

func (srv *identityService) applyAccountUpdate(tenant *entity.Tenant, input *usecase.UpdateAccountInput) error {
	if input.Email != nil {
		tenant.Email = *input.Email
	}
	if input.LogoURL != nil {
		tenant.LogoURL = *input.LogoURL
	}
	if input.CompanyName != nil {
		tenant.CompanyName = *input.CompanyName
	}
	if input.CompanyDescription != nil {
		tenant.CompanyDescription = *input.CompanyDescription
	}
	if input.Phone != nil {
		tenant.Phone = *input.Phone
	}
	if input.Address != nil {
		tenant.Address = *input.Address
	}
	if input.NIF != nil {
		tenant.NIF = *input.NIF
	}
	if input.Tags != nil {
		tenant.Tags = *input.Tags
	}
	if input.OrderTerms != nil {
		tenant.OrderTerms = *input.OrderTerms
	}
	if input.CompanyEmail != nil {
		tenant.CompanyEmail = *input.CompanyEmail
	}
	if input.CompanyEmailPassword != nil {
		sealed, err := srv.cipher.Encrypt(*input.CompanyEmailPassword)
		if err != nil {
			return errors.Wrap(err, "failed to seal company mail password")
		}
		tenant.CompanyEmailSecret = sealed
	}

	return nil
}

// RequestPasswordReset stores a single-use secret and mails the reset link.
func (srv *identityService) RequestPasswordReset(ctx context.Context, email string) error {
	var tenant *entity.Tenant

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.TenantRepo().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrTenantNotFound) {
				return domainerrors.ErrTenantNotFound
			}

			return errors.Wrap(err, "failed to find tenant by email")
		}
		tenant = found

		return nil
	})
	if err != nil {
		return err
	}

	secretBytes := make([]byte, resetSecretBytes)
	if _, err := rand.Read(secretBytes); err != nil {
		return errors.Wrap(err, "failed to generate reset secret")
	}
	secret := hex.EncodeToString(secretBytes)

	if err := srv.resetTokens.Put(ctx, &entity.ResetToken{
		Email:  tenant.Email,
		Secret: secret,
	}); err != nil {
		return errors.Wrap(err, "failed to store reset secret")
	}

	body, err := renderPasswordResetMail(srv.cfg.CORS.Origin, secret)
	if err != nil {
		return errors.Wrap(err, "failed to render reset mail")
	}

	if err := srv.mailer.Send(ctx, &service.Mail{
		From:         srv.cfg.Mail.From,
		FromPassword: srv.cfg.Mail.Password,
		To:           []string{tenant.Email},
		Subject:      "Password reset",
		HTMLBody:     body,
	}); err != nil {
		return errors.Wrap(err, "failed to send reset mail")
	}

	srv.logger.Info("Password reset requested", "tenantID", tenant.ID)

	return nil
}

// ConfirmPasswordReset consumes the secret and stores the new hash.
func (srv *identityService) ConfirmPasswordReset(ctx context.Context, secret, newPassword string) error {
	token, err := srv.resetTokens.Take(ctx, secret)
	if err != nil {
		if errors.Is(err, repository.ErrResetTokenNotFound) {
			return domainerrors.ErrResetTokenInvalid
		}

		return errors.Wrap(err, "failed to take reset secret")
	}

	passwordHash, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tenantRepo := repoFactory.TenantRepo()

		tenant, err := tenantRepo.FindByEmail(ctx, token.Email)
		if err != nil {
			if errors.Is(err, repository.ErrTenantNotFound) {
				return domainerrors.ErrResetTokenInvalid
			}

			return errors.Wrap(err, "failed to find tenant by email")
		}

		tenant.PasswordHash = passwordHash

		return tenantRepo.Update(ctx, tenant)
	})
	if err != nil {
		return err
	}

	srv.sendPasswordChangedMail(ctx, token.Email)

	return nil
}

// sendPasswordChangedMail notifies the account that its password changed.
// The password is already updated at this point; a mail failure is logged
// and swallowed.
func (srv *identityService) sendPasswordChangedMail(ctx context.Context, email string) {
	body, err := renderPasswordChangedMail()
	if err != nil {
		srv.logger.Warn("Failed to render password changed mail", "error", err)

		return
	}

	err = srv.mailer.Send(ctx, &service.Mail{
		From:         srv.cfg.Mail.From,
		FromPassword: srv.cfg.Mail.Password,
		To:           []string{email},
		Subject:      "Your password was changed",
		HTMLBody:     body,
	})
	if err != nil {
		srv.logger.Warn("Failed to send password changed mail", "error", err)
	}
}

func (srv *identityService) issueSession(tenant *entity.Tenant) (*usecase.AuthOutput, error) {
	token, err := srv.tokens.GenerateSessionToken(service.Claims{
		TenantID: tenant.ID,
		Username: tenant.Username,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.AuthOutput{Token: token, Tenant: tenant}, nil
}
