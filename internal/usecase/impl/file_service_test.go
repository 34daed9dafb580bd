package impl

import (
	"context"
	"strings"
	"testing"

	domainerrors "stockhub/internal/domain/errors"
	"stockhub/internal/domain/service"
	mockSvc "stockhub/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestFileService(t *testing.T) (*mockSvc.MockObjectStorage, *fileService) {
	storage := mockSvc.NewMockObjectStorage(t)
	svc := NewFileService(storage, newTestConfig(), newDiscardLogger())

	return storage, svc.(*fileService)
}

func TestFileService_UploadDocument_KeyUnderTenantPrefix(t *testing.T) {
	storage, svc := createTestFileService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	body := strings.NewReader("%PDF-1.7")

	storage.EXPECT().
		Upload(ctx, tenantID.String()+"/ORD-1001.pdf", "application/pdf", body).
		Return(nil)

	err := svc.UploadDocument(ctx, tenantID, "ORD-1001", body)

	require.NoError(t, err)
}

func TestFileService_UploadDocument_EmptyID(t *testing.T) {
	_, svc := createTestFileService(t)

	err := svc.UploadDocument(context.Background(), uuid.New(), "", strings.NewReader(""))

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestFileService_DownloadDocument_Missing(t *testing.T) {
	storage, svc := createTestFileService(t)

	ctx := context.Background()
	tenantID := uuid.New()

	storage.EXPECT().
		Download(ctx, tenantID.String()+"/GONE-1.pdf").
		Return(nil, service.ErrObjectNotFound)

	reader, err := svc.DownloadDocument(ctx, tenantID, "GONE-1")

	assert.Nil(t, reader)
	assert.ErrorIs(t, err, domainerrors.ErrDocumentNotFound)
}

func TestFileService_DeleteDocument_Success(t *testing.T) {
	storage, svc := createTestFileService(t)

	ctx := context.Background()
	tenantID := uuid.New()

	storage.EXPECT().
		Delete(ctx, tenantID.String()+"/ORD-9.pdf").
		Return(nil)

	err := svc.DeleteDocument(ctx, tenantID, "ORD-9")

	require.NoError(t, err)
}

func TestFileService_DeleteDocument_EmptyID(t *testing.T) {
	_, svc := createTestFileService(t)

	err := svc.DeleteDocument(context.Background(), uuid.New(), "")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestFileService_UploadImage_ReturnsPublicURL(t *testing.T) {
	storage, svc := createTestFileService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	body := strings.NewReader("png-bytes")

	storage.EXPECT().
		Upload(ctx, tenantID.String()+"/images/logo.png", "image/png", body).
		Return(nil)

	url, err := svc.UploadImage(ctx, tenantID, "logo.png", "image/png", body)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.stockhub.example/"+tenantID.String()+"/images/logo.png", url)
}

func TestFileService_DeleteImage_MissingSucceeds(t *testing.T) {
	storage, svc := createTestFileService(t)

	ctx := context.Background()
	tenantID := uuid.New()

	storage.EXPECT().
		Delete(ctx, tenantID.String()+"/images/old.png").
		Return(nil)

	err := svc.DeleteImage(ctx, tenantID, "old.png")

	require.NoError(t, err)
}

func TestFileService_DocumentAndImageKeys(t *testing.T) {
	tenantID := uuid.MustParse("a7b19fd0-13f5-4b9e-9f51-22c574caa1ff")

	assert.Equal(t, "a7b19fd0-13f5-4b9e-9f51-22c574caa1ff/ORD-1.pdf", documentKey(tenantID, "ORD-1"))
	assert.Equal(t, "a7b19fd0-13f5-4b9e-9f51-22c574caa1ff/images/a.png", imageKey(tenantID, "a.png"))
}
