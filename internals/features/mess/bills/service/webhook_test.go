package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"

	billModel "messmate_backend/internals/features/mess/bills/model"
)

func TestBillOrderIDRoundTrip(t *testing.T) {
	bill := &billModel.BillModel{
		BillID:    uuid.New(),
		BillMonth: 6,
		BillYear:  2025,
	}

	orderID := BillOrderID(bill)
	parsed, err := parseBillOrderID(orderID)
	require.NoError(t, err)
	assert.Equal(t, bill.BillID, parsed)
}

func TestParseBillOrderIDRejectsForeignOrders(t *testing.T) {
	_, err := parseBillOrderID("donation-xyz")
	assert.Error(t, err)
}

func TestGrossAmount(t *testing.T) {
	amount, err := grossAmount(map[string]interface{}{"gross_amount": "650.00"})
	require.NoError(t, err)
	assert.Equal(t, 650.0, amount)

	_, err = grossAmount(map[string]interface{}{})
	assert.Error(t, err)
}
