package service

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	billModel "messmate_backend/internals/features/mess/bills/model"
	mealModel "messmate_backend/internals/features/mess/meals/model"
	userModel "messmate_backend/internals/features/users/user/model"
	orgModel "messmate_backend/internals/features/organizations/model"
)

var ErrUserWithoutOrganization = errors.New("user has no organization")

// GenerateBill recomputes the bill for (user, month, year). Idempotent:
// it rescans the user's meals in the month, rebuilds the snapshot and the
// derived totals, and upserts. The payment history survives regeneration
// untouched, but status/due/paidAt are rederived against the new total.
func GenerateBill(db *gorm.DB, user *userModel.UserModel, month, year int) (*billModel.BillModel, error) {
	if user.OrganizationID == nil {
		return nil, ErrUserWithoutOrganization
	}

	var org orgModel.OrganizationModel
	if err := db.Where("organization_id = ?", *user.OrganizationID).First(&org).Error; err != nil {
		return nil, err
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	var meals []mealModel.MealModel
	if err := db.
		Where("meal_user_id = ? AND meal_timestamp >= ? AND meal_timestamp < ?", user.ID, start, end).
		Order("meal_timestamp ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}

	st := ComputeStatement(meals, org.Rates(), user.Category, month)

	snapshot, err := json.Marshal(st.Meals)
	if err != nil {
		return nil, err
	}

	var bill billModel.BillModel
	err = db.Where("bill_user_id = ? AND bill_month = ? AND bill_year = ?", user.ID, month, year).
		First(&bill).Error
	switch {
	case err == nil:
		// existing bill: overwrite snapshot + derived fields in place
	case errors.Is(err, gorm.ErrRecordNotFound):
		bill = billModel.BillModel{
			BillUserID:         user.ID,
			BillOrganizationID: org.OrganizationID,
			BillMonth:          month,
			BillYear:           year,
			BillPaymentHistory: datatypes.JSON([]byte("[]")),
		}
	default:
		return nil, err
	}

	bill.BillMeals = datatypes.JSON(snapshot)
	bill.BillBreakfastCount = st.BreakfastCount
	bill.BillLunchCount = st.LunchCount
	bill.BillDinnerCount = st.DinnerCount
	bill.BillSpecialCount = st.SpecialCount
	bill.BillSubtotal = st.Subtotal
	bill.BillSemesterHostelFee = st.SemesterHostelFee
	bill.BillTotal = st.Total
	bill.BillCategory = user.Category
	bill.BillIsSemesterFeeApplied = st.IsSemesterFeeApplied

	history, err := PaymentHistory(&bill)
	if err != nil {
		return nil, err
	}
	state := DerivePaymentState(bill.BillTotal, history)
	bill.BillPaymentStatus = state.Status
	bill.BillDueAmount = state.DueAmount
	bill.BillPaidAt = state.PaidAt

	if err := db.Save(&bill).Error; err != nil {
		return nil, err
	}
	return &bill, nil
}

// PaymentHistory decodes the bill's JSONB payment history.
func PaymentHistory(bill *billModel.BillModel) ([]billModel.PaymentEntry, error) {
	if len(bill.BillPaymentHistory) == 0 {
		return nil, nil
	}
	var history []billModel.PaymentEntry
	if err := json.Unmarshal(bill.BillPaymentHistory, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// RecordPayment appends a payment to the bill and persists the rederived
// payment state. reference is the gateway order id for online payments,
// empty for counter payments.
func RecordPayment(db *gorm.DB, bill *billModel.BillModel, amount float64, method, reference string, now time.Time) error {
	history, err := PaymentHistory(bill)
	if err != nil {
		return err
	}

	extended, state, err := AppendPayment(bill.BillTotal, history, amount, method, reference, now)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(extended)
	if err != nil {
		return err
	}

	bill.BillPaymentHistory = datatypes.JSON(raw)
	bill.BillPaymentStatus = state.Status
	bill.BillDueAmount = state.DueAmount
	bill.BillPaidAt = state.PaidAt

	return db.Save(bill).Error
}
