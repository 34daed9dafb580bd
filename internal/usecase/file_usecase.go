package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// FileUsecase manages the tenant's stored documents and hosted images.
// Objects live under the owning tenant's prefix; one tenant can never read
// or overwrite another tenant's files.
type FileUsecase interface {
	// UploadDocument stores the PDF rendering of a document under the
	// tenant's prefix, replacing any previous upload for the same id.
	UploadDocument(ctx context.Context, tenantID uuid.UUID, externalID string, body io.Reader) error

	// DownloadDocument streams a stored PDF back. The caller must close the
	// reader.
	DownloadDocument(ctx context.Context, tenantID uuid.UUID, externalID string) (io.ReadCloser, error)

	// DeleteDocument removes a stored PDF. Removing a missing document
	// succeeds.
	DeleteDocument(ctx context.Context, tenantID uuid.UUID, externalID string) error

	// UploadImage stores an image and returns its public URL.
	UploadImage(ctx context.Context, tenantID uuid.UUID, filename, contentType string, body io.Reader) (string, error)

	// DeleteImage removes a hosted image. Removing a missing image succeeds.
	DeleteImage(ctx context.Context, tenantID uuid.UUID, filename string) error
}
