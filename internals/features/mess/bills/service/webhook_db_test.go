package service

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"messmate_backend/internals/constants"
	billModel "messmate_backend/internals/features/mess/bills/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&billModel.BillModel{}))
	return db
}

func storedPendingBill(t *testing.T, db *gorm.DB, total float64) *billModel.BillModel {
	t.Helper()

	bill := &billModel.BillModel{
		BillID:             uuid.New(),
		BillUserID:         uuid.New(),
		BillOrganizationID: uuid.New(),
		BillMonth:          6,
		BillYear:           2025,
		BillTotal:          total,
		BillDueAmount:      total,
		BillCategory:       constants.CategoryGeneral,
		BillPaymentStatus:  constants.BillPaymentPending,
		BillPaymentHistory: datatypes.JSON([]byte("[]")),
	}
	require.NoError(t, db.Create(bill).Error)
	return bill
}

func notification(bill *billModel.BillModel, status string, amount float64) map[string]interface{} {
	return map[string]interface{}{
		"order_id":           BillOrderID(bill),
		"transaction_status": status,
		"gross_amount":       fmt.Sprintf("%.2f", amount),
	}
}

// The gateway re-sends a notification until it gets a 200; the repeat
// must not be credited as a second payment.
func TestWebhookRepeatedSettlementCreditedOnce(t *testing.T) {
	db := openTestDB(t)
	bill := storedPendingBill(t, db, 950)

	payload := notification(bill, "settlement", 950)
	require.NoError(t, HandleBillStatusWebhook(db, payload))
	require.NoError(t, HandleBillStatusWebhook(db, payload))

	var stored billModel.BillModel
	require.NoError(t, db.First(&stored, "bill_id = ?", bill.BillID).Error)

	history, err := PaymentHistory(&stored)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 950.0, history[0].Amount)
	assert.Equal(t, BillOrderID(bill), history[0].Reference)
	assert.Equal(t, constants.BillPaymentPaid, stored.BillPaymentStatus)
	assert.Equal(t, 0.0, stored.BillDueAmount)
}

// Card charges emit capture and then settlement for the same order; only
// the first may be credited.
func TestWebhookCaptureThenSettlementCreditedOnce(t *testing.T) {
	db := openTestDB(t)
	bill := storedPendingBill(t, db, 950)

	require.NoError(t, HandleBillStatusWebhook(db, notification(bill, "capture", 950)))
	require.NoError(t, HandleBillStatusWebhook(db, notification(bill, "settlement", 950)))

	var stored billModel.BillModel
	require.NoError(t, db.First(&stored, "bill_id = ?", bill.BillID).Error)

	history, err := PaymentHistory(&stored)
	require.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Equal(t, 0.0, stored.BillDueAmount)
}
