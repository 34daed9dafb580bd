// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is the company-level account and the scoping boundary for every
// owned entity (products, clients, transactions, employees). One tenant maps
// to one back-office login.
type Tenant struct {
	ID                 uuid.UUID // Store-assigned identifier.
	Username           string    // Unique login name.
	Email              string    // Account contact address, used for password resets.
	PasswordHash       string    // bcrypt hash, never the plaintext password.
	LogoURL            string
	CompanyName        string
	CompanyDescription string
	Phone              string
	Address            string
	NIF                string   // Company fiscal identifier.
	Tags               []string // Tenant-defined tags offered in the product form.
	OrderTerms         string   // Terms-and-conditions text printed on order documents.
	CompanyEmail       string   // Outbound address for transaction copies.
	CompanyEmailSecret string   // SMTP password sealed by the credential cipher; empty when mail is not configured.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// HasMailCredentials reports whether the tenant can send transactional mail.
func (t *Tenant) HasMailCredentials() bool {
	return t.CompanyEmail != "" && t.CompanyEmailSecret != ""
}
