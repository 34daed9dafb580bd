package impl

import (
	"context"
	"testing"

	"stockhub/internal/domain/entity"
	domainerrors "stockhub/internal/domain/errors"
	"stockhub/internal/domain/repository"
	"stockhub/internal/domain/service"
	mockRepo "stockhub/internal/mocks/repository"
	mockSvc "stockhub/internal/mocks/service"
	"stockhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// identityServiceFixtures holds all test dependencies for identity service tests.
type identityServiceFixtures struct {
	service     usecase.IdentityUsecase
	txManager   *mockRepo.MockTransactionManager
	resetTokens *mockRepo.MockResetTokenStore
	hasher      *mockSvc.MockPasswordHasher
	tokens      *mockSvc.MockTokenService
	cipher      *mockSvc.MockCredentialCipher
	mailer      *mockSvc.MockMailer
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	resetTokens := mockRepo.NewMockResetTokenStore(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	cipher := mockSvc.NewMockCredentialCipher(t)
	mailer := mockSvc.NewMockMailer(t)

	svc := NewIdentityService(
		txManager,
		resetTokens,
		hasher,
		tokens,
		cipher,
		mailer,
		newTestConfig(),
		newDiscardLogger(),
	)

	return identityServiceFixtures{
		service:     svc,
		txManager:   txManager,
		resetTokens: resetTokens,
		hasher:      hasher,
		tokens:      tokens,
		cipher:      cipher,
		mailer:      mailer,
	}
}

func TestIdentityService_Register_Success(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "acme",
		Email:    "owner@acme.example",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTenantRepo := mockRepo.NewMockTenantRepository(t)

			mockFactory.EXPECT().TenantRepo().Return(mockTenantRepo)

			mockTenantRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Tenant")).
				Run(func(ctx context.Context, tenant *entity.Tenant) {
					tenant.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.tokens.EXPECT().
		GenerateSessionToken(mock.AnythingOfType("service.Claims")).
		Return("session-token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Token)
	assert.Equal(t, input.Email, output.Tenant.Email)
	assert.Equal(t, "hashed_password", output.Tenant.PasswordHash)
}

func TestIdentityService_Login_UnknownUsername(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Username: "ghost", Password: "whatever"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTenantRepo := mockRepo.NewMockTenantRepository(t)

			mockFactory.EXPECT().TenantRepo().Return(mockTenantRepo)
			mockTenantRepo.EXPECT().
				FindByUsername(ctx, "ghost").
				Return(nil, repository.ErrTenantNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestIdentityService_Login_WrongPassword(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Username: "acme", Password: "wrong"}
	stored := &entity.Tenant{
		ID:           uuid.New(),
		Username:     "acme",
		PasswordHash: "hashed_password",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTenantRepo := mockRepo.NewMockTenantRepository(t)

			mockFactory.EXPECT().TenantRepo().Return(mockTenantRepo)
			mockTenantRepo.EXPECT().FindByUsername(ctx, "acme").Return(stored, nil)

			return fn(mockFactory)
		})

	fx.hasher.EXPECT().
		Compare("hashed_password", "wrong").
		Return(domainerrors.ErrInvalidCredentials)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestIdentityService_Verify_InvalidToken(t *testing.T) {
	fx := createTestIdentityService(t)

	fx.tokens.EXPECT().Validate("garbage").Return(nil, domainerrors.ErrTokenInvalid)

	tenant, err := fx.service.Verify(context.Background(), "garbage")

	assert.Nil(t, tenant)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestIdentityService_UpdateAccount_SealsMailPassword(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	mailPassword := "smtp-secret"
	companyEmail := "sales@acme.example"
	input := &usecase.UpdateAccountInput{
		CompanyEmail:         &companyEmail,
		CompanyEmailPassword: &mailPassword,
	}

	stored := &entity.Tenant{ID: tenantID, Username: "acme"}

	fx.cipher.EXPECT().Encrypt("smtp-secret").Return("sealed", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTenantRepo := mockRepo.NewMockTenantRepository(t)

			mockFactory.EXPECT().TenantRepo().Return(mockTenantRepo)
			mockTenantRepo.EXPECT().FindByID(ctx, tenantID).Return(stored, nil)
			mockTenantRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Tenant")).
				Return(nil)

			return fn(mockFactory)
		})

	tenant, err := fx.service.UpdateAccount(ctx, tenantID, input)

	require.NoError(t, err)
	assert.Equal(t, "sealed", tenant.CompanyEmailSecret)
	assert.Equal(t, companyEmail, tenant.CompanyEmail)
	assert.True(t, tenant.HasMailCredentials())
}

func TestIdentityService_RequestPasswordReset_SendsMail(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	stored := &entity.Tenant{
		ID:    uuid.New(),
		Email: "owner@acme.example",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTenantRepo := mockRepo.NewMockTenantRepository(t)

			mockFactory.EXPECT().TenantRepo().Return(mockTenantRepo)
			mockTenantRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)

			return fn(mockFactory)
		})

	var storedSecret string
	fx.resetTokens.EXPECT().
		Put(ctx, mock.AnythingOfType("*entity.ResetToken")).
		Run(func(ctx context.Context, token *entity.ResetToken) {
			storedSecret = token.Secret
		}).
		Return(nil)

	fx.mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.Mail")).
		Run(func(ctx context.Context, mail *service.Mail) {
			assert.Equal(t, []string{stored.Email}, mail.To)
			assert.Contains(t, mail.HTMLBody, storedSecret)
		}).
		Return(nil)

	err := fx.service.RequestPasswordReset(ctx, stored.Email)

	require.NoError(t, err)
	assert.Len(t, storedSecret, 2*resetSecretBytes)
}

func TestIdentityService_ConfirmPasswordReset_InvalidSecret(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()

	fx.resetTokens.EXPECT().
		Take(ctx, "expired-secret").
		Return(nil, repository.ErrResetTokenNotFound)

	err := fx.service.ConfirmPasswordReset(ctx, "expired-secret", "NewPassword1!")

	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}

func TestIdentityService_ConfirmPasswordReset_Success(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	stored := &entity.Tenant{
		ID:           uuid.New(),
		Email:        "owner@acme.example",
		PasswordHash: "old-hash",
	}

	fx.resetTokens.EXPECT().
		Take(ctx, "valid-secret").
		Return(&entity.ResetToken{Email: stored.Email, Secret: "valid-secret"}, nil)

	fx.hasher.EXPECT().Hash("NewPassword1!").Return("new-hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTenantRepo := mockRepo.NewMockTenantRepository(t)

			mockFactory.EXPECT().TenantRepo().Return(mockTenantRepo)
			mockTenantRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
			mockTenantRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Tenant")).
				Run(func(ctx context.Context, tenant *entity.Tenant) {
					assert.Equal(t, "new-hash", tenant.PasswordHash)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.Mail")).
		Run(func(ctx context.Context, mail *service.Mail) {
			assert.Equal(t, []string{stored.Email}, mail.To)
			assert.Contains(t, mail.HTMLBody, "password of your account was just changed")
		}).
		Return(nil)

	err := fx.service.ConfirmPasswordReset(ctx, "valid-secret", "NewPassword1!")

	require.NoError(t, err)
}

func TestIdentityService_ConfirmPasswordReset_MailFailureIgnored(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	stored := &entity.Tenant{
		ID:           uuid.New(),
		Email:        "owner@acme.example",
		PasswordHash: "old-hash",
	}

	fx.resetTokens.EXPECT().
		Take(ctx, "valid-secret").
		Return(&entity.ResetToken{Email: stored.Email, Secret: "valid-secret"}, nil)

	fx.hasher.EXPECT().Hash("NewPassword1!").Return("new-hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTenantRepo := mockRepo.NewMockTenantRepository(t)

			mockFactory.EXPECT().TenantRepo().Return(mockTenantRepo)
			mockTenantRepo.EXPECT().FindByEmail(ctx, stored.Email).Return(stored, nil)
			mockTenantRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Tenant")).
				Return(nil)

			return fn(mockFactory)
		})

	fx.mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.Mail")).
		Return(errors.New("smtp unavailable"))

	err := fx.service.ConfirmPasswordReset(ctx, "valid-secret", "NewPassword1!")

	require.NoError(t, err)
}
