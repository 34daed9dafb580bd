package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLineItem_Rented(t *testing.T) {
	returnAt := time.Now().Add(48 * time.Hour)

	assert.False(t, (&LineItem{}).Rented())
	assert.True(t, (&LineItem{ReturnAt: &returnAt}).Rented())
}

func TestTransaction_Partition(t *testing.T) {
	returnAt := time.Now().Add(48 * time.Hour)
	boughtID := uuid.New()
	rentedID := uuid.New()

	transaction := &Transaction{
		Lines: []LineItem{
			{ProductID: boughtID},
			{ProductID: rentedID, ReturnAt: &returnAt},
		},
	}

	bought, rented := transaction.Partition()

	assert.Equal(t, []uuid.UUID{boughtID}, bought)
	assert.Equal(t, []uuid.UUID{rentedID}, rented)
}

func TestTransaction_Partition_NoLines(t *testing.T) {
	bought, rented := (&Transaction{}).Partition()

	assert.Empty(t, bought)
	assert.Empty(t, rented)
}

func TestTransaction_Partition_DuplicatesKept(t *testing.T) {
	productID := uuid.New()

	transaction := &Transaction{
		Lines: []LineItem{
			{ProductID: productID},
			{ProductID: productID},
		},
	}

	bought, _ := transaction.Partition()

	assert.Len(t, bought, 2)
}

func TestTransactionKind_Valid(t *testing.T) {
	assert.True(t, KindOrder.Valid())
	assert.True(t, KindInvoice.Valid())
	assert.False(t, TransactionKind("receipt").Valid())
}
