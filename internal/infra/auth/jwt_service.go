// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"stockhub/config"
	"stockhub/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	sessionSecret string        // Secret key for signing session tokens.
	actionSecret  string        // Secret key for signing one-shot action tokens.
	sessionTTL    time.Duration // Time-to-live for session tokens.
	actionTTL     time.Duration // Time-to-live for action tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("jwt session secret must be provided")
	}
	actionSecret := cfg.SecretKey.Action
	if actionSecret == "" {
		// A dedicated action secret is optional; fall back to the session one.
		actionSecret = cfg.SecretKey.Session
	}

	return &jwtService{
		sessionSecret: cfg.SecretKey.Session,
		actionSecret:  actionSecret,
		sessionTTL:    service.SessionTokenTTL,
		actionTTL:     service.ActionTokenTTL,
	}, nil
}

// GenerateSessionToken creates a token backing an interactive API session.
func (s *jwtService) GenerateSessionToken(claims service.Claims) (string, error) {
	return s.generateToken(claims, s.sessionTTL, s.sessionSecret, "session")
}

// GenerateActionToken creates a short-lived token authorizing a single operation.
func (s *jwtService) GenerateActionToken(claims service.Claims) (string, error) {
	return s.generateToken(claims, s.actionTTL, s.actionSecret, "action")
}

// Validate checks the token signature and expiry and extracts the claims.
// Tokens of either type are accepted; a stolen action token expires within
// minutes anyway.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return nil, jwt.ErrTokenInvalidClaims
		}
		if tokenType, _ := claims["type"].(string); tokenType == "action" {
			return []byte(s.actionSecret), nil
		}

		return []byte(s.sessionSecret), nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	sub, _ := mapClaims["sub"].(string)
	tenantID, err := uuid.Parse(sub)
	if err != nil {
		return nil, jwt.ErrTokenInvalidSubject
	}
	username, _ := mapClaims["username"].(string)

	return &service.Claims{TenantID: tenantID, Username: username}, nil
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(claims service.Claims, ttl time.Duration, secret, tokenType string) (string, error) {
	mapClaims := jwt.MapClaims{
		"sub":      claims.TenantID.String(), // Subject (who the token is for)
		"username": claims.Username,
		"iat":      time.Now().Unix(),          // Issued At
		"exp":      time.Now().Add(ttl).Unix(), // Expiration Time
		"type":     tokenType,                  // Type of token (session or action)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)

	return token.SignedString([]byte(secret))
}
