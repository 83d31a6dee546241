package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"messmate_backend/internals/constants"
	m "messmate_backend/internals/features/mess/bills/model"
)

/* =============== REQUESTS =============== */

type PayBillRequest struct {
	BillID uuid.UUID `json:"bill_id" validate:"required"`
	Amount float64   `json:"amount" validate:"required,gt=0"`
	Method string    `json:"method" validate:"required,oneof=cash card upi online"`
}

type PayBillOnlineRequest struct {
	BillID uuid.UUID `json:"bill_id" validate:"required"`
}

type ListBillsQuery struct {
	Month *int `query:"month" validate:"omitempty,min=1,max=12"`
	Year  *int `query:"year" validate:"omitempty,gte=2000,lte=2100"`
}

/* =============== RESPONSES =============== */

type MealCount struct {
	Breakfast int `json:"breakfast"`
	Lunch     int `json:"lunch"`
	Dinner    int `json:"dinner"`
}

type BillResponse struct {
	BillID             uuid.UUID `json:"bill_id"`
	BillUserID         uuid.UUID `json:"bill_user_id"`
	BillOrganizationID uuid.UUID `json:"bill_organization_id"`

	BillMonth int `json:"bill_month"`
	BillYear  int `json:"bill_year"`

	Meals     []m.BillMealItem `json:"meals"`
	MealCount MealCount        `json:"meal_count"`

	SpecialCount         int     `json:"special_count"`
	Subtotal             float64 `json:"subtotal"`
	SemesterHostelFee    float64 `json:"semester_hostel_fee"`
	Total                float64 `json:"total"`
	IsSemesterFeeApplied bool    `json:"is_semester_fee_applied"`

	Category constants.Category `json:"category"`

	PaymentStatus  constants.BillPaymentStatus `json:"payment_status"`
	PaymentHistory []m.PaymentEntry            `json:"payment_history"`
	DueAmount      float64                     `json:"due_amount"`

	GeneratedAt time.Time  `json:"generated_at"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

type SnapCheckoutResponse struct {
	OrderID     string  `json:"order_id"`
	SnapToken   string  `json:"snap_token"`
	RedirectURL string  `json:"redirect_url"`
	Amount      float64 `json:"amount"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.BillModel) BillResponse {
	resp := BillResponse{
		BillID:             x.BillID,
		BillUserID:         x.BillUserID,
		BillOrganizationID: x.BillOrganizationID,
		BillMonth:          x.BillMonth,
		BillYear:           x.BillYear,
		Meals:              []m.BillMealItem{},
		MealCount: MealCount{
			Breakfast: x.BillBreakfastCount,
			Lunch:     x.BillLunchCount,
			Dinner:    x.BillDinnerCount,
		},
		SpecialCount:         x.BillSpecialCount,
		Subtotal:             x.BillSubtotal,
		SemesterHostelFee:    x.BillSemesterHostelFee,
		Total:                x.BillTotal,
		IsSemesterFeeApplied: x.BillIsSemesterFeeApplied,
		Category:             x.BillCategory,
		PaymentStatus:        x.BillPaymentStatus,
		PaymentHistory:       []m.PaymentEntry{},
		DueAmount:            x.BillDueAmount,
		GeneratedAt:          x.BillGeneratedAt,
		PaidAt:               x.BillPaidAt,
	}

	if len(x.BillMeals) > 0 {
		_ = json.Unmarshal(x.BillMeals, &resp.Meals)
	}
	if len(x.BillPaymentHistory) > 0 {
		_ = json.Unmarshal(x.BillPaymentHistory, &resp.PaymentHistory)
	}
	return resp
}

func FromModels(list []m.BillModel) []BillResponse {
	out := make([]BillResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
