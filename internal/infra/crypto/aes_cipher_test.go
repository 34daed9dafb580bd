package crypto

import (
	"encoding/base64"
	"strings"
	"testing"

	"stockhub/config"
	"stockhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "6368616e676520746869732070617373776f726420746f206120736563726574"

func newTestCipher(t *testing.T) service.CredentialCipher {
	cipher, err := NewAESCipher(&config.Config{Crypto: &config.CryptoConfig{Key: testKey}})
	require.NoError(t, err)

	return cipher
}

func TestNewAESCipher_RejectsMissingKey(t *testing.T) {
	_, err := NewAESCipher(&config.Config{})

	assert.Error(t, err)
}

func TestNewAESCipher_RejectsShortKey(t *testing.T) {
	_, err := NewAESCipher(&config.Config{Crypto: &config.CryptoConfig{Key: "abcd"}})

	assert.Error(t, err)
}

func TestNewAESCipher_RejectsNonHexKey(t *testing.T) {
	_, err := NewAESCipher(&config.Config{Crypto: &config.CryptoConfig{Key: strings.Repeat("zz", 32)}})

	assert.Error(t, err)
}

func TestAESCipher_Roundtrip(t *testing.T) {
	cipher := newTestCipher(t)

	sealed, err := cipher.Encrypt("smtp-secret")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "smtp-secret")

	plain, err := cipher.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "smtp-secret", plain)
}

func TestAESCipher_NoncePerMessage(t *testing.T) {
	cipher := newTestCipher(t)

	first, err := cipher.Encrypt("smtp-secret")
	require.NoError(t, err)
	second, err := cipher.Encrypt("smtp-secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestAESCipher_DetectsTampering(t *testing.T) {
	cipher := newTestCipher(t)

	sealed, err := cipher.Encrypt("smtp-secret")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(sealed)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0x01

	_, err = cipher.Decrypt(base64.StdEncoding.EncodeToString(raw))

	assert.Error(t, err)
}

func TestAESCipher_RejectsTruncatedCiphertext(t *testing.T) {
	cipher := newTestCipher(t)

	_, err := cipher.Decrypt(base64.StdEncoding.EncodeToString([]byte("short")))

	assert.Error(t, err)
}
