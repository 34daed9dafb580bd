// Package storage implements the document and image bucket on gocloud.dev
// blob, so the same code serves S3 in production and a local directory in
// development.
package storage

import (
	"context"
	"io"
	"log/slog"

	"stockhub/config"
	"stockhub/internal/domain/lifecycle"
	"stockhub/internal/domain/service"
	"stockhub/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Register the bucket drivers resolvable from the configured URL.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/s3blob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket *blob.Bucket
}

// New opens the configured bucket and returns it as a service.ObjectStorage.
func New(params Params) (service.ObjectStorage, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be provided")
	}

	openCtx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing storage bucket")

			return bucket.Close()
		},
	})

	return &blobStorage{bucket: bucket}, nil
}

func (s *blobStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, body); err != nil {
		writer.Close()

		return errors.Wrap(err, "failed to write object")
	}

	return errors.Wrap(writer.Close(), "failed to finish object write")
}

func (s *blobStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrObjectNotFound
		}

		return nil, errors.Wrap(err, "failed to open bucket reader")
	}

	return reader, nil
}

func (s *blobStorage) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return false, errors.Wrap(err, "failed to check object existence")
	}

	return exists, nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete object")
	}

	return nil
}
