// Package mail implements outgoing email delivery over SMTP.
package mail

import (
	"bytes"
	"context"
	"log/slog"

	"stockhub/config"
	"stockhub/internal/domain/service"
	"stockhub/internal/errors"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// smtpMailer implements service.Mailer on the configured SMTP relay.
// Authentication is per message: each tenant sends from its own account.
type smtpMailer struct {
	host   string
	port   int
	logger *slog.Logger
}

// New is the constructor for smtpMailer.
func New(params Params) (service.Mailer, error) {
	if params.Config.Mail == nil || params.Config.Mail.Host == "" {
		return nil, errors.New("mail host must be provided")
	}

	port := params.Config.Mail.Port
	if port == 0 {
		port = 587
	}

	return &smtpMailer{
		host:   params.Config.Mail.Host,
		port:   port,
		logger: params.Logger,
	}, nil
}

func (m *smtpMailer) Send(ctx context.Context, mail *service.Mail) error {
	msg := gomail.NewMsg()
	if err := msg.From(mail.From); err != nil {
		return errors.Wrap(err, "set mail sender")
	}
	if err := msg.To(mail.To...); err != nil {
		return errors.Wrap(err, "set mail recipients")
	}
	msg.Subject(mail.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, mail.HTMLBody)

	for _, attachment := range mail.Attachments {
		if err := msg.AttachReader(attachment.Filename, bytes.NewReader(attachment.Data),
			gomail.WithFileContentType(gomail.ContentType(attachment.ContentType))); err != nil {
			return errors.Wrap(err, "attach mail file")
		}
	}

	client, err := gomail.NewClient(m.host,
		gomail.WithPort(m.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(mail.From),
		gomail.WithPassword(mail.FromPassword),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return errors.Wrap(err, "create smtp client")
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "send mail")
	}

	m.logger.Info("Mail sent",
		slog.String("from", mail.From),
		slog.Int("recipients", len(mail.To)),
		slog.String("subject", mail.Subject),
	)

	return nil
}
