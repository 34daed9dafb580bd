package service

// CredentialCipher protects tenant mail passwords at rest. Ciphertext is
// opaque and self-contained; only the holder of the service key can recover
// the plaintext.
type CredentialCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}
