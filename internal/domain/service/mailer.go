package service

import "context"

// Attachment is a file carried inline with an outgoing message.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Mail is one outgoing message. Sender credentials are per message because
// tenants send from their own company accounts.
type Mail struct {
	From         string
	FromPassword string
	To           []string
	Subject      string
	HTMLBody     string
	Attachments  []Attachment
}

// Mailer delivers outgoing email.
type Mailer interface {
	Send(ctx context.Context, mail *Mail) error
}
