// Package service defines interfaces for domain-level services whose
// implementations live in the infrastructure layer.
package service

// PasswordHasher defines the operations for hashing and verifying passwords.
type PasswordHasher interface {
	// Hash generates a hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare checks whether a plaintext password matches a hash.
	Compare(hashedPassword, password string) error
}
