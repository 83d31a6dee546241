package service

import (
	"fmt"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	billModel "messmate_backend/internals/features/mess/bills/model"
)

var SnapClient snap.Client

// Call during app bootstrap (sandbox).
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// BillOrderID ties a gateway transaction back to the bill. The webhook
// parses it to find the bill to credit.
func BillOrderID(bill *billModel.BillModel) string {
	return fmt.Sprintf("bill-%s-%d%02d", bill.BillID, bill.BillYear, bill.BillMonth)
}

// GenerateSnapToken creates a Snap transaction for the bill's due amount
// and returns the token + redirect URL for the checkout page.
func GenerateSnapToken(bill *billModel.BillModel, name, email string) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  BillOrderID(bill),
			GrossAmt: int64(bill.BillDueAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}

	return resp.Token, resp.RedirectURL, nil
}
