package impl

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"stockhub/config"
	"stockhub/internal/domain/entity"
	domainerrors "stockhub/internal/domain/errors"
	"stockhub/internal/domain/repository"
	"stockhub/internal/domain/service"
	"stockhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Event actions announced on the transaction topic.
const (
	eventActionCreated   = "created"
	eventActionDeleted   = "deleted"
	eventActionEmailSent = "email_sent"
)

// transactionService implements the TransactionUsecase interface.
type transactionService struct {
	txManager  repository.TransactionManager
	signatures repository.SignatureStore
	storage    service.ObjectStorage
	mailer     service.Mailer
	cipher     service.CredentialCipher
	qrcodes    service.QRCodeService
	tokens     service.TokenService
	publisher  service.EventPublisher
	cfg        *config.Config
	logger     *slog.Logger
}

// NewTransactionService is the constructor for transactionService.
func NewTransactionService(
	txManager repository.TransactionManager,
	signatures repository.SignatureStore,
	storage service.ObjectStorage,
	mailer service.Mailer,
	cipher service.CredentialCipher,
	qrcodes service.QRCodeService,
	tokens service.TokenService,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.TransactionUsecase {
	return &transactionService{
		txManager:  txManager,
		signatures: signatures,
		storage:    storage,
		mailer:     mailer,
		cipher:     cipher,
		qrcodes:    qrcodes,
		tokens:     tokens,
		publisher:  publisher,
		cfg:        cfg,
		logger:     logger,
	}
}

// Create stores the document and merges the client history in one database
// transaction. A failure at any step leaves no partial state behind.
func (srv *transactionService) Create(ctx context.Context, tenantID uuid.UUID, kind entity.TransactionKind, input *usecase.TransactionInput) (*entity.Transaction, error) {
	if !kind.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown document kind")
	}
	if input.ExternalID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("document id is required")
	}
	if input.ClientDNI == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("client dni is required")
	}
	if len(input.Lines) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("at least one line item is required")
	}
	if !input.TotalValue.IsPositive() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("total value must be positive")
	}
	if input.ClientName == "" || input.ClientAddress == "" || input.ClientEmail == "" || input.ClientPhone == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("complete client contact details are required")
	}

	transaction := buildTransaction(tenantID, kind, input)

	var created *entity.Transaction

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		transactionRepo := repoFactory.TransactionRepo()

		if err := transactionRepo.Create(ctx, transaction); err != nil {
			return err
		}

		if err := srv.mergeClient(ctx, repoFactory.ClientRepo(), transaction); err != nil {
			return err
		}

		// Reload so the response carries resolved line-item products.
		found, err := transactionRepo.FindByID(ctx, tenantID, transaction.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload transaction")
		}
		created = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Transaction created",
		"tenantID", tenantID,
		"kind", string(kind),
		"externalID", created.ExternalID,
	)
	srv.publish(ctx, created, eventActionCreated)

	return created, nil
}

// mergeClient upserts the client referenced by the document and appends the
// document's references to its history.
func (srv *transactionService) mergeClient(ctx context.Context, clientRepo repository.ClientRepository, transaction *entity.Transaction) error {
	client, err := clientRepo.FindByDNI(ctx, transaction.TenantID, transaction.ClientDNI)
	if err != nil {
		if !errors.Is(err, repository.ErrClientNotFound) {
			return errors.Wrap(err, "failed to find client for merge")
		}

		client = &entity.Client{
			TenantID: transaction.TenantID,
			DNI:      transaction.ClientDNI,
			Name:     transaction.ClientName,
			Address:  transaction.ClientAddress,
			Email:    transaction.ClientEmail,
			Phone:    transaction.ClientPhone,
		}
		if err := clientRepo.Create(ctx, client); err != nil {
			return err
		}
	} else {
		// Contact details follow the newest document, last write wins.
		client.Name = transaction.ClientName
		client.Address = transaction.ClientAddress
		client.Email = transaction.ClientEmail
		client.Phone = transaction.ClientPhone
		if err := clientRepo.UpdateContact(ctx, client); err != nil {
			return err
		}
	}

	bought, rented := transaction.Partition()

	return clientRepo.AppendHistory(ctx, client.ID, transaction.ID, bought, rented, transaction.ClientObservation)
}

// List serves the fixed-size document page.
func (srv *transactionService) List(ctx context.Context, tenantID uuid.UUID, kind entity.TransactionKind, page int, filter usecase.ListFilter) (*usecase.TransactionPage, error) {
	if !kind.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown document kind")
	}

	result := &usecase.TransactionPage{Page: page}
	if result.Page < 1 {
		result.Page = 1
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		transactionRepo := repoFactory.TransactionRepo()

		total, err := transactionRepo.CountByTenant(ctx, tenantID, kind)
		if err != nil {
			return err
		}

		offset, totalPages, err := pageBounds(total, result.Page, usecase.TransactionPageSize)
		if err != nil {
			return err
		}

		transactions, err := transactionRepo.ListPage(ctx, tenantID, kind, repository.TransactionFilter{
			Query:  filter.Query,
			Rented: filter.Rented,
		}, offset, usecase.TransactionPageSize)
		if err != nil {
			return err
		}

		result.Transactions = transactions
		result.Total = total
		result.TotalPages = totalPages

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Get returns one document of the tenant.
func (srv *transactionService) Get(ctx context.Context, tenantID, transactionID uuid.UUID) (*entity.Transaction, error) {
	var transaction *entity.Transaction

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.TransactionRepo().FindByID(ctx, tenantID, transactionID)
		if err != nil {
			if errors.Is(err, repository.ErrTransactionNotFound) {
				return domainerrors.ErrTransactionNotFound
			}

			return errors.Wrap(err, "failed to find transaction")
		}
		transaction = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

// GetByExternalID returns one document by its human-facing id.
func (srv *transactionService) GetByExternalID(ctx context.Context, tenantID uuid.UUID, externalID string) (*entity.Transaction, error) {
	var transaction *entity.Transaction

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.TransactionRepo().FindByExternalID(ctx, tenantID, externalID)
		if err != nil {
			if errors.Is(err, repository.ErrTransactionNotFound) {
				return domainerrors.ErrTransactionNotFound
			}

			return errors.Wrap(err, "failed to find transaction by external id")
		}
		transaction = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

// Delete removes the document and unlinks it from its client. A document
// that is already gone is not an error; the end state is the same.
func (srv *transactionService) Delete(ctx context.Context, tenantID uuid.UUID, externalID string) error {
	var deleted *entity.Transaction

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		transactionRepo := repoFactory.TransactionRepo()

		transaction, err := transactionRepo.FindByExternalID(ctx, tenantID, externalID)
		if err != nil {
			if errors.Is(err, repository.ErrTransactionNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find transaction for deletion")
		}

		if err := transactionRepo.Delete(ctx, transaction.ID); err != nil {
			return err
		}

		if err := repoFactory.ClientRepo().PullTransactionRef(ctx, tenantID, transaction.ClientDNI, transaction.ID); err != nil {
			return err
		}
		deleted = transaction

		return nil
	})
	if err != nil {
		return err
	}

	if deleted != nil {
		srv.logger.Info("Transaction deleted", "tenantID", tenantID, "externalID", externalID)
		srv.publish(ctx, deleted, eventActionDeleted)
	}

	return nil
}

// Sign stores the captured signature under the document id.
func (srv *transactionService) Sign(ctx context.Context, tenantID uuid.UUID, externalID, signature string) error {
	if signature == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("signature payload is required")
	}

	// The document must exist before a signature can attach to it.
	if _, err := srv.GetByExternalID(ctx, tenantID, externalID); err != nil {
		return err
	}

	return srv.signatures.Put(ctx, &entity.Signature{
		ExternalID: externalID,
		Signature:  signature,
		CreatedAt:  time.Now(),
	})
}

// GetSignature returns the stored signature while its TTL window is open.
func (srv *transactionService) GetSignature(ctx context.Context, externalID string) (*entity.Signature, error) {
	signature, err := srv.signatures.Get(ctx, externalID)
	if err != nil {
		if errors.Is(err, repository.ErrSignatureNotFound) {
			return nil, domainerrors.ErrSignatureNotFound
		}

		return nil, errors.Wrap(err, "failed to load signature")
	}

	return signature, nil
}

// SignQR renders a QR code that opens the signing page on another device.
func (srv *transactionService) SignQR(ctx context.Context, tenantID uuid.UUID, externalID string) ([]byte, error) {
	transaction, err := srv.GetByExternalID(ctx, tenantID, externalID)
	if err != nil {
		return nil, err
	}

	token, err := srv.tokens.GenerateActionToken(service.Claims{TenantID: tenantID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue action token")
	}

	size := 0
	baseURL := ""
	if srv.cfg.QRCode != nil {
		size = srv.cfg.QRCode.Size
		baseURL = srv.cfg.QRCode.BaseURL
	}

	signURL := strings.TrimRight(baseURL, "/") + "/sign/" + url.PathEscape(transaction.ExternalID) + "?token=" + url.QueryEscape(token)

	return srv.qrcodes.GeneratePNG(signURL, size)
}

// SendEmail mails the stored PDF to the document's client from the tenant's
// company account. Repeating the call just sends the same document again.
func (srv *transactionService) SendEmail(ctx context.Context, tenantID uuid.UUID, externalID string) error {
	transaction, err := srv.GetByExternalID(ctx, tenantID, externalID)
	if err != nil {
		return err
	}

	tenant := transaction.Tenant
	if tenant == nil || !tenant.HasMailCredentials() {
		return domainerrors.ErrMailNotConfigured
	}
	if transaction.ClientEmail == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("client has no email address")
	}

	key := documentKey(tenantID, externalID)
	exists, err := srv.storage.Exists(ctx, key)
	if err != nil {
		return errors.Wrap(err, "failed to check document")
	}
	if !exists {
		return domainerrors.ErrDocumentNotFound
	}

	reader, err := srv.storage.Download(ctx, key)
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return domainerrors.ErrDocumentNotFound
		}

		return errors.Wrap(err, "failed to download document")
	}
	defer reader.Close()

	pdf, err := io.ReadAll(reader)
	if err != nil {
		return errors.Wrap(err, "failed to read document")
	}

	password, err := srv.cipher.Decrypt(tenant.CompanyEmailSecret)
	if err != nil {
		return errors.Wrap(err, "failed to unseal company mail password")
	}

	body, err := renderTransactionMail(transaction, tenant.CompanyName)
	if err != nil {
		return errors.Wrap(err, "failed to render mail body")
	}

	if err := srv.mailer.Send(ctx, &service.Mail{
		From:         tenant.CompanyEmail,
		FromPassword: password,
		To:           []string{transaction.ClientEmail},
		Subject:      mailSubject(transaction, tenant.CompanyName),
		HTMLBody:     body,
		Attachments: []service.Attachment{{
			Filename:    externalID + ".pdf",
			ContentType: "application/pdf",
			Data:        pdf,
		}},
	}); err != nil {
		return errors.Wrap(err, "failed to send document mail")
	}

	srv.logger.Info("Transaction mail sent",
		"tenantID", tenantID,
		"externalID", externalID,
	)
	srv.publish(ctx, transaction, eventActionEmailSent)

	return nil
}

// publish announces a lifecycle event; failures are logged, never returned.
func (srv *transactionService) publish(ctx context.Context, transaction *entity.Transaction, action string) {
	err := srv.publisher.PublishTransactionEvent(ctx, &service.TransactionEvent{
		TenantID:   transaction.TenantID,
		ExternalID: transaction.ExternalID,
		Kind:       string(transaction.Kind),
		Action:     action,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		srv.logger.Warn("Failed to publish transaction event",
			"externalID", transaction.ExternalID,
			"action", action,
			"error", err,
		)
	}
}

func buildTransaction(tenantID uuid.UUID, kind entity.TransactionKind, input *usecase.TransactionInput) *entity.Transaction {
	transaction := &entity.Transaction{
		Kind:              kind,
		TenantID:          tenantID,
		ExternalID:        input.ExternalID,
		TotalValue:        input.TotalValue,
		TermsAccepted:     input.TermsAccepted,
		ClientName:        input.ClientName,
		ClientAddress:     input.ClientAddress,
		ClientDNI:         input.ClientDNI,
		ClientEmail:       input.ClientEmail,
		ClientPhone:       input.ClientPhone,
		ClientObservation: input.ClientObservation,
	}

	transaction.Lines = make([]entity.LineItem, 0, len(input.Lines))
	for i := range input.Lines {
		line := &input.Lines[i]
		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
		}
		transaction.Lines = append(transaction.Lines, entity.LineItem{
			ProductID:   line.ProductID,
			Name:        line.Name,
			Quantity:    quantity,
			Price:       line.Price,
			DeliverAt:   line.DeliverAt,
			ReturnAt:    line.ReturnAt,
			Deposit:     line.Deposit,
			ValuePerDay: line.ValuePerDay,
			Location:    line.Location,
		})
	}

	return transaction
}

// documentKey is the bucket path of a stored document PDF.
func documentKey(tenantID uuid.UUID, externalID string) string {
	return tenantID.String() + "/" + externalID + ".pdf"
}
