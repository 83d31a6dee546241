package service

import (
	"errors"
	"time"

	"messmate_backend/internals/constants"
	billModel "messmate_backend/internals/features/mess/bills/model"
)

var ErrInvalidPaymentAmount = errors.New("payment amount must be greater than zero")

// PaymentState holds the fields derived from a bill's payment history.
type PaymentState struct {
	Status    constants.BillPaymentStatus
	DueAmount float64
	PaidAt    *time.Time
}

// DerivePaymentState recomputes status/due/paidAt from the full history
// against the given total. Recomputing from scratch keeps the ledger
// self-correcting and lets bill regeneration rebase the history onto a
// new total. Overpayment is not clamped: dueAmount may go negative.
func DerivePaymentState(total float64, history []billModel.PaymentEntry) PaymentState {
	if len(history) == 0 {
		return PaymentState{
			Status:    constants.BillPaymentPending,
			DueAmount: total,
		}
	}

	var totalPaid float64
	for _, p := range history {
		totalPaid += p.Amount
	}

	state := PaymentState{DueAmount: total - totalPaid}
	if totalPaid >= total {
		state.Status = constants.BillPaymentPaid
		paidAt := history[len(history)-1].Date
		state.PaidAt = &paidAt
	} else {
		state.Status = constants.BillPaymentPartial
	}
	return state
}

// AppendPayment validates and appends one payment, returning the extended
// history and the rederived state. No upper bound: the core accepts
// overpayment (the presentation layer may cap at the due amount).
func AppendPayment(total float64, history []billModel.PaymentEntry, amount float64, method, reference string, now time.Time) ([]billModel.PaymentEntry, PaymentState, error) {
	if amount <= 0 {
		return nil, PaymentState{}, ErrInvalidPaymentAmount
	}

	extended := append(append([]billModel.PaymentEntry{}, history...), billModel.PaymentEntry{
		Amount:    amount,
		Date:      now,
		Method:    method,
		Reference: reference,
	})
	return extended, DerivePaymentState(total, extended), nil
}

// HasPaymentReference reports whether a payment carrying the given
// gateway reference is already in the history. The gateway re-sends
// notifications until acknowledged, and cards emit both capture and
// settlement for one charge, so the webhook must drop repeats.
func HasPaymentReference(history []billModel.PaymentEntry, reference string) bool {
	if reference == "" {
		return false
	}
	for _, p := range history {
		if p.Reference == reference {
			return true
		}
	}
	return false
}
