package impl

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"stockhub/config"
	domainerrors "stockhub/internal/domain/errors"
	"stockhub/internal/domain/service"
	"stockhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const imagePrefix = "images"

// fileService implements the FileUsecase interface on the object storage.
type fileService struct {
	storage service.ObjectStorage
	cfg     *config.Config
	logger  *slog.Logger
}

// NewFileService is the constructor for fileService.
func NewFileService(
	storage service.ObjectStorage,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.FileUsecase {
	return &fileService{
		storage: storage,
		cfg:     cfg,
		logger:  logger,
	}
}

// UploadDocument stores the PDF under the tenant's prefix, replacing any
// previous upload for the same document id.
func (srv *fileService) UploadDocument(ctx context.Context, tenantID uuid.UUID, externalID string, body io.Reader) error {
	if externalID == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("document id is required")
	}

	key := documentKey(tenantID, externalID)
	if err := srv.storage.Upload(ctx, key, "application/pdf", body); err != nil {
		return errors.Wrap(err, "failed to upload document")
	}

	srv.logger.Info("Document uploaded", "tenantID", tenantID, "externalID", externalID)

	return nil
}

// DownloadDocument streams a stored PDF back.
func (srv *fileService) DownloadDocument(ctx context.Context, tenantID uuid.UUID, externalID string) (io.ReadCloser, error) {
	reader, err := srv.storage.Download(ctx, documentKey(tenantID, externalID))
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return nil, domainerrors.ErrDocumentNotFound
		}

		return nil, errors.Wrap(err, "failed to download document")
	}

	return reader, nil
}

// DeleteDocument removes a stored PDF; removing a missing document succeeds.
func (srv *fileService) DeleteDocument(ctx context.Context, tenantID uuid.UUID, externalID string) error {
	if externalID == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("document id is required")
	}

	if err := srv.storage.Delete(ctx, documentKey(tenantID, externalID)); err != nil {
		return errors.Wrap(err, "failed to delete document")
	}

	srv.logger.Info("Document deleted", "tenantID", tenantID, "externalID", externalID)

	return nil
}

// UploadImage stores an image under the tenant's image prefix and returns
// the public URL it will be served from.
func (srv *fileService) UploadImage(ctx context.Context, tenantID uuid.UUID, filename, contentType string, body io.Reader) (string, error) {
	if filename == "" {
		return "", domainerrors.ErrValidationFailed.WrapMessage("image filename is required")
	}

	key := imageKey(tenantID, filename)
	if err := srv.storage.Upload(ctx, key, contentType, body); err != nil {
		return "", errors.Wrap(err, "failed to upload image")
	}

	publicBase := ""
	if srv.cfg.Storage != nil {
		publicBase = srv.cfg.Storage.PublicBaseURL
	}

	return strings.TrimRight(publicBase, "/") + "/" + tenantID.String() + "/" + imagePrefix + "/" + url.PathEscape(filename), nil
}

// DeleteImage removes a hosted image; removing a missing image succeeds.
func (srv *fileService) DeleteImage(ctx context.Context, tenantID uuid.UUID, filename string) error {
	if err := srv.storage.Delete(ctx, imageKey(tenantID, filename)); err != nil {
		return errors.Wrap(err, "failed to delete image")
	}

	return nil
}

// imageKey is the bucket path of a hosted image.
func imageKey(tenantID uuid.UUID, filename string) string {
	return tenantID.String() + "/" + imagePrefix + "/" + filename
}
