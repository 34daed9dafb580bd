// Package crypto implements credential encryption for tenant mail passwords.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"io"

	"github.com/pkg/errors"

	"stockhub/config"
	"stockhub/internal/domain/service"
)

const keyLength = 32

// aesCipher encrypts with AES-256-GCM. The nonce is generated per message
// and prepended to the ciphertext, so the stored value is self-contained and
// tampering is detected on decrypt.
type aesCipher struct {
	aead cipher.AEAD
}

// NewAESCipher builds a CredentialCipher from the hex-encoded service key.
func NewAESCipher(cfg *config.Config) (service.CredentialCipher, error) {
	if cfg.Crypto == nil || cfg.Crypto.Key == "" {
		return nil, errors.New("crypto key must be provided")
	}

	key, err := hex.DecodeString(cfg.Crypto.Key)
	if err != nil {
		return nil, errors.Wrap(err, "decode crypto key")
	}
	if len(key) != keyLength {
		return nil, errors.Errorf("crypto key must be %d bytes, got %d", keyLength, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "create cipher block")
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(err, "create gcm")
	}

	return &aesCipher{aead: aead}, nil
}

func (c *aesCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", errors.Wrap(err, "generate nonce")
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (c *aesCipher) Decrypt(ciphertext string) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Wrap(err, "decode ciphertext")
	}
	if len(sealed) < c.aead.NonceSize() {
		return "", errors.New("ciphertext too short")
	}

	nonce, body := sealed[:c.aead.NonceSize()], sealed[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, body, nil)
	if err != nil {
		return "", errors.Wrap(err, "open ciphertext")
	}

	return string(plaintext), nil
}
