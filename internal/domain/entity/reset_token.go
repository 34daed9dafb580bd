package entity

import "time"

// ResetTokenTTL is how long a password-reset secret stays valid.
const ResetTokenTTL = 10 * time.Minute

// ResetToken is a one-time password-reset secret mailed to the account
// address. It is consumed on the first confirmation attempt regardless of
// whether that attempt succeeds.
type ResetToken struct {
	Email     string
	Secret    string
	CreatedAt time.Time
}
