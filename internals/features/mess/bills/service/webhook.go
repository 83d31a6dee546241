package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	billModel "messmate_backend/internals/features/mess/bills/model"
)

// HandleBillStatusWebhook is called on a Midtrans payment notification.
// On settlement it records the charged amount through the same ledger
// path as a counter payment.
func HandleBillStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] Incomplete webhook payload:", body)
		return fmt.Errorf("invalid payload")
	}

	billID, err := parseBillOrderID(orderID)
	if err != nil {
		return err
	}

	var bill billModel.BillModel
	if err := db.Where("bill_id = ?", billID).First(&bill).Error; err != nil {
		log.Println("[ERROR] Bill not found for order:", orderID)
		return fmt.Errorf("bill for order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		history, err := PaymentHistory(&bill)
		if err != nil {
			return err
		}
		if HasPaymentReference(history, orderID) {
			log.Printf("[INFO] Order %s already credited, dropping repeated notification", orderID)
			return nil
		}
		amount, err := grossAmount(body)
		if err != nil {
			return err
		}
		return RecordPayment(db, &bill, amount, "online", orderID, time.Now())
	case "expire", "cancel", "deny":
		log.Printf("[INFO] Order %s ended without payment (status=%s)", orderID, status)
	default:
		log.Println("[INFO] Ignoring transaction status:", status)
	}
	return nil
}

// Order ids look like "bill-<uuid>-<yyyymm>", see BillOrderID.
func parseBillOrderID(orderID string) (uuid.UUID, error) {
	if !strings.HasPrefix(orderID, "bill-") {
		return uuid.Nil, fmt.Errorf("unrecognized order_id %s", orderID)
	}
	rest := strings.TrimPrefix(orderID, "bill-")
	if idx := strings.LastIndex(rest, "-"); idx > 0 {
		rest = rest[:idx]
	}
	return uuid.Parse(rest)
}

func grossAmount(body map[string]interface{}) (float64, error) {
	raw, ok := body["gross_amount"].(string)
	if !ok {
		return 0, fmt.Errorf("missing gross_amount")
	}
	var amount float64
	if _, err := fmt.Sscanf(raw, "%f", &amount); err != nil {
		return 0, fmt.Errorf("invalid gross_amount %q", raw)
	}
	return amount, nil
}
