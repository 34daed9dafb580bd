package impl

import (
	"testing"
	"time"

	"stockhub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPasswordResetMail(t *testing.T) {
	body, err := renderPasswordResetMail("https://app.stockhub.example/", "s3cr3t")

	require.NoError(t, err)
	assert.Contains(t, body, `href="https://app.stockhub.example/reset-password/s3cr3t"`)
	assert.Contains(t, body, "valid for 10 minutes")
}

func TestRenderPasswordChangedMail(t *testing.T) {
	body, err := renderPasswordChangedMail()

	require.NoError(t, err)
	assert.Contains(t, body, "password of your account was just changed")
}

func TestRenderTransactionMail_Order(t *testing.T) {
	transaction := &entity.Transaction{
		Kind:       entity.KindOrder,
		ExternalID: "ORD-1001",
		ClientName: "Maria Lopez",
		CreatedAt:  time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
	}

	body, err := renderTransactionMail(transaction, "Acme Rentals")

	require.NoError(t, err)
	assert.Contains(t, body, "Estimado/a Maria Lopez")
	assert.Contains(t, body, "pedido")
	assert.Contains(t, body, "ORD-1001")
	assert.Contains(t, body, "15/03/2026")
	assert.Contains(t, body, "Acme Rentals")
}

func TestRenderTransactionMail_InvoiceWithoutClientName(t *testing.T) {
	transaction := &entity.Transaction{
		Kind:       entity.KindInvoice,
		ExternalID: "INV-7",
	}

	body, err := renderTransactionMail(transaction, "Acme Rentals")

	require.NoError(t, err)
	assert.Contains(t, body, "Estimado/a cliente")
	assert.Contains(t, body, "factura")
}

func TestMailSubject(t *testing.T) {
	order := &entity.Transaction{Kind: entity.KindOrder, ExternalID: "ORD-1"}
	invoice := &entity.Transaction{Kind: entity.KindInvoice, ExternalID: "INV-1"}

	assert.Equal(t, "Pedido ORD-1 - Acme", mailSubject(order, "Acme"))
	assert.Equal(t, "Factura INV-1", mailSubject(invoice, ""))
}
