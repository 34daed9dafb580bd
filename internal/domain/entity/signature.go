package entity

import "time"

// SignatureTTL is how long a captured signature stays readable. The store
// expires the record on its own; no application sweep exists.
const SignatureTTL = 10 * time.Minute

// Signature maps a transaction's external id to the signature blob captured
// from the end client. Write-once, read within the TTL window or never.
type Signature struct {
	ExternalID string
	Signature  string
	CreatedAt  time.Time
}
