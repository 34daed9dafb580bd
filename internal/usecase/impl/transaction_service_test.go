package impl

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"stockhub/internal/domain/entity"
	domainerrors "stockhub/internal/domain/errors"
	"stockhub/internal/domain/repository"
	"stockhub/internal/domain/service"
	mockRepo "stockhub/internal/mocks/repository"
	mockSvc "stockhub/internal/mocks/service"
	"stockhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// transactionServiceFixtures holds all test dependencies for transaction service tests.
type transactionServiceFixtures struct {
	service    usecase.TransactionUsecase
	txManager  *mockRepo.MockTransactionManager
	signatures *mockRepo.MockSignatureStore
	storage    *mockSvc.MockObjectStorage
	mailer     *mockSvc.MockMailer
	cipher     *mockSvc.MockCredentialCipher
	qrcodes    *mockSvc.MockQRCodeService
	tokens     *mockSvc.MockTokenService
	publisher  *mockSvc.MockEventPublisher
}

func createTestTransactionService(t *testing.T) transactionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	signatures := mockRepo.NewMockSignatureStore(t)
	storage := mockSvc.NewMockObjectStorage(t)
	mailer := mockSvc.NewMockMailer(t)
	cipher := mockSvc.NewMockCredentialCipher(t)
	qrcodes := mockSvc.NewMockQRCodeService(t)
	tokens := mockSvc.NewMockTokenService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewTransactionService(
		txManager,
		signatures,
		storage,
		mailer,
		cipher,
		qrcodes,
		tokens,
		publisher,
		newTestConfig(),
		newDiscardLogger(),
	)

	return transactionServiceFixtures{
		service:    svc,
		txManager:  txManager,
		signatures: signatures,
		storage:    storage,
		mailer:     mailer,
		cipher:     cipher,
		qrcodes:    qrcodes,
		tokens:     tokens,
		publisher:  publisher,
	}
}

func testTransactionInput() *usecase.TransactionInput {
	returnAt := time.Now().Add(72 * time.Hour)

	return &usecase.TransactionInput{
		ExternalID:    "ORD-1001",
		TotalValue:    decimal.RequireFromString("150.00"),
		TermsAccepted: true,
		ClientName:    "Maria Lopez",
		ClientAddress: "Calle Mayor 1, Madrid",
		ClientDNI:     "12345678Z",
		ClientEmail:   "maria@example.com",
		ClientPhone:   "600111222",
		Lines: []usecase.LineItemInput{
			{
				ProductID: uuid.New(),
				Name:      "Folding chair",
				Quantity:  4,
				Price:     decimal.RequireFromString("10.00"),
				DeliverAt: time.Now(),
			},
			{
				ProductID: uuid.New(),
				Name:      "Sound system",
				Quantity:  1,
				Price:     decimal.RequireFromString("110.00"),
				DeliverAt: time.Now(),
				ReturnAt:  &returnAt,
			},
		},
	}
}

func TestTransactionService_Create_NewClient(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	input := testTransactionInput()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTransactionRepo := mockRepo.NewMockTransactionRepository(t)
			mockClientRepo := mockRepo.NewMockClientRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTransactionRepo)
			mockFactory.EXPECT().ClientRepo().Return(mockClientRepo)

			mockTransactionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Transaction")).
				Run(func(ctx context.Context, transaction *entity.Transaction) {
					transaction.ID = uuid.New()
				}).
				Return(nil)

			mockClientRepo.EXPECT().
				FindByDNI(ctx, tenantID, input.ClientDNI).
				Return(nil, repository.ErrClientNotFound)

			clientID := uuid.New()
			mockClientRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Client")).
				Run(func(ctx context.Context, client *entity.Client) {
					assert.Equal(t, input.ClientName, client.Name)
					assert.Equal(t, input.ClientDNI, client.DNI)
					client.ID = clientID
				}).
				Return(nil)

			mockClientRepo.EXPECT().
				AppendHistory(ctx, clientID, mock.AnythingOfType("uuid.UUID"),
					mock.AnythingOfType("[]uuid.UUID"), mock.AnythingOfType("[]uuid.UUID"), "").
				Run(func(ctx context.Context, clientID, transactionID uuid.UUID, bought, rented []uuid.UUID, observation string) {
					assert.Len(t, bought, 1)
					assert.Len(t, rented, 1)
					assert.Equal(t, input.Lines[0].ProductID, bought[0])
					assert.Equal(t, input.Lines[1].ProductID, rented[0])
				}).
				Return(nil)

			mockTransactionRepo.EXPECT().
				FindByID(ctx, tenantID, mock.AnythingOfType("uuid.UUID")).
				RunAndReturn(func(ctx context.Context, tenantID, transactionID uuid.UUID) (*entity.Transaction, error) {
					reloaded := &entity.Transaction{
						ID:         transactionID,
						Kind:       entity.KindOrder,
						TenantID:   tenantID,
						ExternalID: input.ExternalID,
						Lines: []entity.LineItem{
							{ProductID: input.Lines[0].ProductID, Product: &entity.Product{ID: input.Lines[0].ProductID, Name: input.Lines[0].Name}},
							{ProductID: input.Lines[1].ProductID, Product: &entity.Product{ID: input.Lines[1].ProductID, Name: input.Lines[1].Name}},
						},
					}

					return reloaded, nil
				})

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishTransactionEvent(ctx, mock.AnythingOfType("*service.TransactionEvent")).
		Run(func(ctx context.Context, event *service.TransactionEvent) {
			assert.Equal(t, "created", event.Action)
			assert.Equal(t, "order", event.Kind)
		}).
		Return(nil)

	transaction, err := fx.service.Create(ctx, tenantID, entity.KindOrder, input)

	require.NoError(t, err)
	assert.Equal(t, entity.KindOrder, transaction.Kind)
	require.Len(t, transaction.Lines, 2)
	for _, line := range transaction.Lines {
		require.NotNil(t, line.Product)
		assert.Equal(t, line.ProductID, line.Product.ID)
	}
}

func TestTransactionService_Create_ExistingClientContactRefreshed(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	input := testTransactionInput()

	existing := &entity.Client{
		ID:       uuid.New(),
		TenantID: tenantID,
		DNI:      input.ClientDNI,
		Name:     "Old Name",
		Email:    "old@example.com",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTransactionRepo := mockRepo.NewMockTransactionRepository(t)
			mockClientRepo := mockRepo.NewMockClientRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTransactionRepo)
			mockFactory.EXPECT().ClientRepo().Return(mockClientRepo)

			mockTransactionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Transaction")).
				Return(nil)

			mockClientRepo.EXPECT().
				FindByDNI(ctx, tenantID, input.ClientDNI).
				Return(existing, nil)

			mockClientRepo.EXPECT().
				UpdateContact(ctx, mock.AnythingOfType("*entity.Client")).
				Run(func(ctx context.Context, client *entity.Client) {
					assert.Equal(t, input.ClientName, client.Name)
					assert.Equal(t, input.ClientEmail, client.Email)
				}).
				Return(nil)

			mockClientRepo.EXPECT().
				AppendHistory(ctx, existing.ID, mock.AnythingOfType("uuid.UUID"),
					mock.AnythingOfType("[]uuid.UUID"), mock.AnythingOfType("[]uuid.UUID"), "").
				Return(nil)

			mockTransactionRepo.EXPECT().
				FindByID(ctx, tenantID, mock.AnythingOfType("uuid.UUID")).
				RunAndReturn(func(ctx context.Context, tenantID, transactionID uuid.UUID) (*entity.Transaction, error) {
					return &entity.Transaction{ID: transactionID, Kind: entity.KindOrder, TenantID: tenantID, ExternalID: input.ExternalID}, nil
				})

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishTransactionEvent(ctx, mock.AnythingOfType("*service.TransactionEvent")).
		Return(nil)

	_, err := fx.service.Create(ctx, tenantID, entity.KindOrder, input)

	require.NoError(t, err)
}

func TestTransactionService_Create_UnknownKind(t *testing.T) {
	fx := createTestTransactionService(t)

	_, err := fx.service.Create(context.Background(), uuid.New(), entity.TransactionKind("receipt"), testTransactionInput())

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTransactionService_Create_NoLines(t *testing.T) {
	fx := createTestTransactionService(t)

	input := testTransactionInput()
	input.Lines = nil

	_, err := fx.service.Create(context.Background(), uuid.New(), entity.KindInvoice, input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTransactionService_Create_NonPositiveTotal(t *testing.T) {
	fx := createTestTransactionService(t)

	input := testTransactionInput()
	input.TotalValue = decimal.Zero

	_, err := fx.service.Create(context.Background(), uuid.New(), entity.KindOrder, input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTransactionService_Create_IncompleteClientContact(t *testing.T) {
	fx := createTestTransactionService(t)

	for _, blank := range []func(*usecase.TransactionInput){
		func(in *usecase.TransactionInput) { in.ClientName = "" },
		func(in *usecase.TransactionInput) { in.ClientAddress = "" },
		func(in *usecase.TransactionInput) { in.ClientEmail = "" },
		func(in *usecase.TransactionInput) { in.ClientPhone = "" },
	} {
		input := testTransactionInput()
		blank(input)

		_, err := fx.service.Create(context.Background(), uuid.New(), entity.KindOrder, input)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestTransactionService_Delete_MissingDocumentIsNoop(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	tenantID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTransactionRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTransactionRepo)
			mockTransactionRepo.EXPECT().
				FindByExternalID(ctx, tenantID, "GONE-1").
				Return(nil, repository.ErrTransactionNotFound)

			return fn(mockFactory)
		})

	err := fx.service.Delete(ctx, tenantID, "GONE-1")

	require.NoError(t, err)
	fx.publisher.AssertNotCalled(t, "PublishTransactionEvent", mock.Anything, mock.Anything)
}

func TestTransactionService_Delete_UnlinksClient(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	stored := &entity.Transaction{
		ID:         uuid.New(),
		Kind:       entity.KindOrder,
		TenantID:   tenantID,
		ExternalID: "ORD-1001",
		ClientDNI:  "12345678Z",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTransactionRepo := mockRepo.NewMockTransactionRepository(t)
			mockClientRepo := mockRepo.NewMockClientRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTransactionRepo)
			mockFactory.EXPECT().ClientRepo().Return(mockClientRepo)

			mockTransactionRepo.EXPECT().
				FindByExternalID(ctx, tenantID, "ORD-1001").
				Return(stored, nil)
			mockTransactionRepo.EXPECT().Delete(ctx, stored.ID).Return(nil)
			mockClientRepo.EXPECT().
				PullTransactionRef(ctx, tenantID, "12345678Z", stored.ID).
				Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishTransactionEvent(ctx, mock.AnythingOfType("*service.TransactionEvent")).
		Run(func(ctx context.Context, event *service.TransactionEvent) {
			assert.Equal(t, "deleted", event.Action)
		}).
		Return(nil)

	err := fx.service.Delete(ctx, tenantID, "ORD-1001")

	require.NoError(t, err)
}

func TestTransactionService_Sign_EmptyPayload(t *testing.T) {
	fx := createTestTransactionService(t)

	err := fx.service.Sign(context.Background(), uuid.New(), "ORD-1001", "")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTransactionService_Sign_StoresSignature(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	stored := &entity.Transaction{
		ID:         uuid.New(),
		TenantID:   tenantID,
		ExternalID: "ORD-1001",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTransactionRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTransactionRepo)
			mockTransactionRepo.EXPECT().
				FindByExternalID(ctx, tenantID, "ORD-1001").
				Return(stored, nil)

			return fn(mockFactory)
		})

	fx.signatures.EXPECT().
		Put(ctx, mock.AnythingOfType("*entity.Signature")).
		Run(func(ctx context.Context, signature *entity.Signature) {
			assert.Equal(t, "ORD-1001", signature.ExternalID)
			assert.Equal(t, "data:image/png;base64,AAA", signature.Signature)
		}).
		Return(nil)

	err := fx.service.Sign(ctx, tenantID, "ORD-1001", "data:image/png;base64,AAA")

	require.NoError(t, err)
}

func TestTransactionService_GetSignature_Expired(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	fx.signatures.EXPECT().
		Get(ctx, "ORD-1001").
		Return(nil, repository.ErrSignatureNotFound)

	signature, err := fx.service.GetSignature(ctx, "ORD-1001")

	assert.Nil(t, signature)
	assert.ErrorIs(t, err, domainerrors.ErrSignatureNotFound)
}

func TestTransactionService_SignQR_EncodesSigningLink(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	stored := &entity.Transaction{
		ID:         uuid.New(),
		TenantID:   tenantID,
		ExternalID: "ORD-1001",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTransactionRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTransactionRepo)
			mockTransactionRepo.EXPECT().
				FindByExternalID(ctx, tenantID, "ORD-1001").
				Return(stored, nil)

			return fn(mockFactory)
		})

	fx.tokens.EXPECT().
		GenerateActionToken(mock.AnythingOfType("service.Claims")).
		Return("action-token", nil)

	fx.qrcodes.EXPECT().
		GeneratePNG(mock.AnythingOfType("string"), 256).
		Run(func(content string, size int) {
			assert.True(t, strings.HasPrefix(content, "https://app.stockhub.example/sign/ORD-1001"))
			assert.Contains(t, content, "token=action-token")
		}).
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.SignQR(ctx, tenantID, "ORD-1001")

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestTransactionService_SendEmail_NoMailCredentials(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	stored := &entity.Transaction{
		ID:         uuid.New(),
		TenantID:   tenantID,
		ExternalID: "ORD-1001",
		Tenant:     &entity.Tenant{ID: tenantID, CompanyEmail: "sales@acme.example"},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTransactionRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTransactionRepo)
			mockTransactionRepo.EXPECT().
				FindByExternalID(ctx, tenantID, "ORD-1001").
				Return(stored, nil)

			return fn(mockFactory)
		})

	err := fx.service.SendEmail(ctx, tenantID, "ORD-1001")

	assert.ErrorIs(t, err, domainerrors.ErrMailNotConfigured)
}

func TestTransactionService_SendEmail_DocumentMissing(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	stored := &entity.Transaction{
		ID:          uuid.New(),
		TenantID:    tenantID,
		ExternalID:  "ORD-1001",
		ClientEmail: "maria@example.com",
		Tenant: &entity.Tenant{
			ID:                 tenantID,
			CompanyEmail:       "sales@acme.example",
			CompanyEmailSecret: "sealed",
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTransactionRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTransactionRepo)
			mockTransactionRepo.EXPECT().
				FindByExternalID(ctx, tenantID, "ORD-1001").
				Return(stored, nil)

			return fn(mockFactory)
		})

	fx.storage.EXPECT().
		Exists(ctx, tenantID.String()+"/ORD-1001.pdf").
		Return(false, nil)

	err := fx.service.SendEmail(ctx, tenantID, "ORD-1001")

	assert.ErrorIs(t, err, domainerrors.ErrDocumentNotFound)
}

func TestTransactionService_SendEmail_Success(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	stored := &entity.Transaction{
		ID:          uuid.New(),
		Kind:        entity.KindInvoice,
		TenantID:    tenantID,
		ExternalID:  "INV-2024",
		ClientName:  "Maria Lopez",
		ClientEmail: "maria@example.com",
		CreatedAt:   time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		Tenant: &entity.Tenant{
			ID:                 tenantID,
			CompanyName:        "Acme Rentals",
			CompanyEmail:       "sales@acme.example",
			CompanyEmailSecret: "sealed",
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTransactionRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTransactionRepo)
			mockTransactionRepo.EXPECT().
				FindByExternalID(ctx, tenantID, "INV-2024").
				Return(stored, nil)

			return fn(mockFactory)
		})

	key := tenantID.String() + "/INV-2024.pdf"
	fx.storage.EXPECT().Exists(ctx, key).Return(true, nil)
	fx.storage.EXPECT().
		Download(ctx, key).
		Return(io.NopCloser(strings.NewReader("%PDF-1.7")), nil)

	fx.cipher.EXPECT().Decrypt("sealed").Return("smtp-secret", nil)

	fx.mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.Mail")).
		Run(func(ctx context.Context, mail *service.Mail) {
			assert.Equal(t, "sales@acme.example", mail.From)
			assert.Equal(t, "smtp-secret", mail.FromPassword)
			assert.Equal(t, []string{"maria@example.com"}, mail.To)
			assert.Equal(t, "Factura INV-2024 - Acme Rentals", mail.Subject)
			assert.Contains(t, mail.HTMLBody, "Maria Lopez")
			assert.Contains(t, mail.HTMLBody, "factura")
			require.Len(t, mail.Attachments, 1)
			assert.Equal(t, "INV-2024.pdf", mail.Attachments[0].Filename)
			assert.Equal(t, []byte("%PDF-1.7"), mail.Attachments[0].Data)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishTransactionEvent(ctx, mock.AnythingOfType("*service.TransactionEvent")).
		Run(func(ctx context.Context, event *service.TransactionEvent) {
			assert.Equal(t, "email_sent", event.Action)
		}).
		Return(nil)

	err := fx.service.SendEmail(ctx, tenantID, "INV-2024")

	require.NoError(t, err)
}
