package impl

import (
	"html/template"
	"strings"

	"stockhub/internal/domain/entity"
)

// Outgoing mail bodies. The transaction copy is written in Spanish because
// that is the language of the generated documents themselves.
var (
	passwordResetTemplate = template.Must(template.New("passwordReset").Parse(`<p>Hello,</p>
<p>A password reset was requested for your account. Follow the link below to choose a new password. The link is valid for 10 minutes and can be used once.</p>
<p><a href="{{.ResetURL}}">Reset your password</a></p>
<p>If you did not request this, you can ignore this email.</p>`))

	passwordChangedTemplate = template.Must(template.New("passwordChanged").Parse(`<p>Hello,</p>
<p>The password of your account was just changed. If this was you, no further action is needed.</p>
<p>If you did not change your password, reset it again immediately from the login page.</p>`))

	transactionMailTemplate = template.Must(template.New("transactionCopy").Parse(`<p>Estimado/a {{.ClientName}},</p>
<p>Adjunto le enviamos una copia de su {{.DocumentName}} <strong>{{.ExternalID}}</strong> con fecha {{.CreatedAt}}.</p>
<p>Gracias por confiar en {{.CompanyName}}.</p>
<p>Un saludo,<br>{{.CompanyName}}</p>`))
)

func renderPasswordResetMail(origin, secret string) (string, error) {
	var buf strings.Builder

	err := passwordResetTemplate.Execute(&buf, struct {
		ResetURL string
	}{
		ResetURL: strings.TrimRight(origin, "/") + "/reset-password/" + secret,
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

func renderPasswordChangedMail() (string, error) {
	var buf strings.Builder

	if err := passwordChangedTemplate.Execute(&buf, nil); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func renderTransactionMail(transaction *entity.Transaction, companyName string) (string, error) {
	documentName := "pedido"
	if transaction.Kind == entity.KindInvoice {
		documentName = "factura"
	}

	clientName := transaction.ClientName
	if clientName == "" {
		clientName = "cliente"
	}

	var buf strings.Builder

	err := transactionMailTemplate.Execute(&buf, struct {
		ClientName   string
		DocumentName string
		ExternalID   string
		CreatedAt    string
		CompanyName  string
	}{
		ClientName:   clientName,
		DocumentName: documentName,
		ExternalID:   transaction.ExternalID,
		CreatedAt:    transaction.CreatedAt.Format("02/01/2006"),
		CompanyName:  companyName,
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

// mailSubject builds the subject line for a transaction copy.
func mailSubject(transaction *entity.Transaction, companyName string) string {
	documentName := "Pedido"
	if transaction.Kind == entity.KindInvoice {
		documentName = "Factura"
	}

	subject := documentName + " " + transaction.ExternalID
	if companyName != "" {
		subject += " - " + companyName
	}

	return subject
}
