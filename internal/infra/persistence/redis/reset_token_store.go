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

const resetTokenKeyPrefix = "reset:"

// resetTokenStore implements repository.ResetTokenStore on Redis.
type resetTokenStore struct {
	client *goredis.Client
}

// NewResetTokenStore is the constructor for resetTokenStore.
func NewResetTokenStore(client *goredis.Client) repository.ResetTokenStore {
	return &resetTokenStore{
		client: client,
	}
}

func (s *resetTokenStore) Put(ctx context.Context, token *entity.ResetToken) error {
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}

	payload, err := json.Marshal(token)
	if err != nil {
		return errors.Wrap(err, "marshal reset token")
	}

	key := resetTokenKeyPrefix + token.Secret
	if err := s.client.Set(ctx, key, payload, entity.ResetTokenTTL).Err(); err != nil {
		return errors.Wrap(err, "store reset token")
	}

	return nil
}

func (s *resetTokenStore) Take(ctx context.Context, secret string) (*entity.ResetToken, error) {
	// GETDEL makes the read destructive; the secret is single use.
	payload, err := s.client.GetDel(ctx, resetTokenKeyPrefix+secret).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrResetTokenNotFound
		}

		return nil, errors.Wrap(err, "take reset token")
	}

	var token entity.ResetToken
	if err := json.Unmarshal(payload, &token); err != nil {
		return nil, errors.Wrap(err, "unmarshal reset token")
	}

	return &token, nil
}
