package service

import (
	"time"

	"github.com/google/uuid"
)

// Token lifetimes. Session tokens back interactive API use; action tokens
// authorize a single short-lived operation such as signing a document.
const (
	SessionTokenTTL = 6 * time.Hour
	ActionTokenTTL  = 10 * time.Minute
)

// Claims carries the identity embedded in an issued token.
type Claims struct {
	TenantID uuid.UUID
	Username string
}

// TokenService issues and validates the bearer tokens used by the HTTP layer.
type TokenService interface {
	// GenerateSessionToken issues a token valid for SessionTokenTTL.
	GenerateSessionToken(claims Claims) (string, error)

	// GenerateActionToken issues a token valid for ActionTokenTTL.
	GenerateActionToken(claims Claims) (string, error)

	// Validate parses a token string and returns its claims. Expired or
	// tampered tokens return an error.
	Validate(tokenString string) (*Claims, error)
}
