package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"messmate_backend/internals/constants"
	billModel "messmate_backend/internals/features/mess/bills/model"
)

func TestAppendPaymentRejectsNonPositiveAmount(t *testing.T) {
	_, _, err := AppendPayment(950, nil, 0, "cash", "", time.Now())
	assert.ErrorIs(t, err, ErrInvalidPaymentAmount)

	_, _, err = AppendPayment(950, nil, -10, "cash", "", time.Now())
	assert.ErrorIs(t, err, ErrInvalidPaymentAmount)
}

func TestPaymentProgressionPartialThenPaid(t *testing.T) {
	now := time.Now()

	history, state, err := AppendPayment(950, nil, 300, "cash", "", now)
	require.NoError(t, err)
	assert.Equal(t, constants.BillPaymentPartial, state.Status)
	assert.Equal(t, 650.0, state.DueAmount)
	assert.Nil(t, state.PaidAt)

	later := now.Add(time.Hour)
	history, state, err = AppendPayment(950, history, 650, "upi", "", later)
	require.NoError(t, err)
	assert.Equal(t, constants.BillPaymentPaid, state.Status)
	assert.Equal(t, 0.0, state.DueAmount)
	require.NotNil(t, state.PaidAt)
	assert.Equal(t, later, *state.PaidAt)
	assert.Len(t, history, 2)
}

func TestPaymentOverpaymentGoesNegative(t *testing.T) {
	_, state, err := AppendPayment(100, nil, 150, "cash", "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, constants.BillPaymentPaid, state.Status)
	assert.Equal(t, -50.0, state.DueAmount)
}

func TestDerivePaymentStateInvariant(t *testing.T) {
	now := time.Now()
	history := []billModel.PaymentEntry{
		{Amount: 100, Date: now, Method: "cash"},
		{Amount: 250, Date: now.Add(time.Minute), Method: "card"},
	}

	state := DerivePaymentState(950, history)
	assert.Equal(t, 950.0-350.0, state.DueAmount)
	assert.Equal(t, constants.BillPaymentPartial, state.Status)
}

func TestDerivePaymentStateEmptyHistory(t *testing.T) {
	state := DerivePaymentState(950, nil)
	assert.Equal(t, constants.BillPaymentPending, state.Status)
	assert.Equal(t, 950.0, state.DueAmount)
	assert.Nil(t, state.PaidAt)
}

// Regeneration rebases the existing history onto a new total: a bill paid
// in full stays paid if the total shrinks, and reopens as partial if the
// total grows past what was paid.
func TestDerivePaymentStateAfterRegeneration(t *testing.T) {
	now := time.Now()
	history := []billModel.PaymentEntry{{Amount: 500, Date: now, Method: "cash"}}

	paid := DerivePaymentState(450, history)
	assert.Equal(t, constants.BillPaymentPaid, paid.Status)
	assert.Equal(t, -50.0, paid.DueAmount)

	reopened := DerivePaymentState(700, history)
	assert.Equal(t, constants.BillPaymentPartial, reopened.Status)
	assert.Equal(t, 200.0, reopened.DueAmount)
	assert.Nil(t, reopened.PaidAt)
}

func TestAppendPaymentDoesNotMutateInput(t *testing.T) {
	now := time.Now()
	history := []billModel.PaymentEntry{{Amount: 100, Date: now, Method: "cash"}}

	extended, _, err := AppendPayment(500, history, 50, "cash", "", now)
	require.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Len(t, extended, 2)
}

func TestHasPaymentReference(t *testing.T) {
	now := time.Now()
	history := []billModel.PaymentEntry{
		{Amount: 300, Date: now, Method: "cash"},
		{Amount: 650, Date: now.Add(time.Hour), Method: "online", Reference: "bill-abc-202506"},
	}

	assert.True(t, HasPaymentReference(history, "bill-abc-202506"))
	assert.False(t, HasPaymentReference(history, "bill-def-202506"))
	// counter payments carry no reference and never match each other
	assert.False(t, HasPaymentReference(history, ""))
}
