package repository

import (
	"context"
	"errors"

	"stockhub/internal/domain/entity"
)

// ErrSignatureNotFound is returned when a signature is absent or expired.
var ErrSignatureNotFound = errors.New("signature not found")

// ErrResetTokenNotFound is returned when a reset secret is absent or expired.
var ErrResetTokenNotFound = errors.New("reset token not found")

// SignatureStore keeps captured signatures for entity.SignatureTTL. Expiry is
// a property of the store itself: an expired record is unconditionally
// unreadable without any application-side sweep.
type SignatureStore interface {
	// Put stores the signature under the transaction's external id.
	Put(ctx context.Context, signature *entity.Signature) error

	// Get returns the signature for the external id, or ErrSignatureNotFound
	// once the TTL has passed.
	Get(ctx context.Context, externalID string) (*entity.Signature, error)
}

// ResetTokenStore keeps password-reset secrets for entity.ResetTokenTTL.
type ResetTokenStore interface {
	// Put stores the one-time secret.
	Put(ctx context.Context, token *entity.ResetToken) error

	// Take atomically reads and removes the secret, so a secret authorizes at
	// most one confirmation attempt.
	Take(ctx context.Context, secret string) (*entity.ResetToken, error)
}
