package redis

import (
	"context"
	"encoding/json"
	"time"

	"stockhub/internal/domain/entity"
	"stockhub/internal/domain/repository"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

const signatureKeyPrefix = "signature:"

// signatureStore implements repository.SignatureStore on Redis. The TTL set
// at write time makes expired signatures unreadable without any sweep.
type signatureStore struct {
	client *goredis.Client
}

// NewSignatureStore is the constructor for signatureStore.
func NewSignatureStore(client *goredis.Client) repository.SignatureStore {
	return &signatureStore{
		client: client,
	}
}

func (s *signatureStore) Put(ctx context.Context, signature *entity.Signature) error {
	if signature.CreatedAt.IsZero() {
		signature.CreatedAt = time.Now()
	}

	payload, err := json.Marshal(signature)
	if err != nil {
		return errors.Wrap(err, "marshal signature")
	}

	key := signatureKeyPrefix + signature.ExternalID
	if err := s.client.Set(ctx, key, payload, entity.SignatureTTL).Err(); err != nil {
		return errors.Wrap(err, "store signature")
	}

	return nil
}

func (s *signatureStore) Get(ctx context.Context, externalID string) (*entity.Signature, error) {
	payload, err := s.client.Get(ctx, signatureKeyPrefix+externalID).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrSignatureNotFound
		}

		return nil, errors.Wrap(err, "load signature")
	}

	var signature entity.Signature
	if err := json.Unmarshal(payload, &signature); err != nil {
		return nil, errors.Wrap(err, "unmarshal signature")
	}

	return &signature, nil
}
