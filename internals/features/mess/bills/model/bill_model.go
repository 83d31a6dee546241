package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"messmate_backend/internals/constants"
)

// BillModel is the monthly aggregate of a user's meals plus any semester
// fee, reconciled against payments. Unique per (user, month, year).
// Regeneration overwrites the snapshot and derived totals; payment history
// is only ever appended to by the ledger.
type BillModel struct {
	BillID uuid.UUID `gorm:"column:bill_id;type:uuid;default:gen_random_uuid();primaryKey" json:"bill_id"`

	BillUserID         uuid.UUID `gorm:"column:bill_user_id;type:uuid;not null;uniqueIndex:uq_bills_user_period" json:"bill_user_id"`
	BillOrganizationID uuid.UUID `gorm:"column:bill_organization_id;type:uuid;not null" json:"bill_organization_id"`

	BillMonth int `gorm:"column:bill_month;not null;uniqueIndex:uq_bills_user_period" json:"bill_month"`
	BillYear  int `gorm:"column:bill_year;not null;uniqueIndex:uq_bills_user_period" json:"bill_year"`

	// Denormalized meal snapshot: []BillMealItem as JSONB.
	BillMeals datatypes.JSON `gorm:"column:bill_meals;type:jsonb" json:"bill_meals"`

	BillBreakfastCount int `gorm:"column:bill_breakfast_count;not null;default:0" json:"bill_breakfast_count"`
	BillLunchCount     int `gorm:"column:bill_lunch_count;not null;default:0" json:"bill_lunch_count"`
	BillDinnerCount    int `gorm:"column:bill_dinner_count;not null;default:0" json:"bill_dinner_count"`
	BillSpecialCount   int `gorm:"column:bill_special_count;not null;default:0" json:"bill_special_count"`

	BillSubtotal          float64 `gorm:"column:bill_subtotal;not null;default:0" json:"bill_subtotal"`
	BillSemesterHostelFee float64 `gorm:"column:bill_semester_hostel_fee;not null;default:0" json:"bill_semester_hostel_fee"`
	BillTotal             float64 `gorm:"column:bill_total;not null;default:0" json:"bill_total"`

	// User's category at generation time.
	BillCategory             constants.Category `gorm:"column:bill_category;type:varchar(10);not null;default:'General'" json:"bill_category"`
	BillIsSemesterFeeApplied bool               `gorm:"column:bill_is_semester_fee_applied;not null;default:false" json:"bill_is_semester_fee_applied"`

	BillPaymentStatus constants.BillPaymentStatus `gorm:"column:bill_payment_status;type:varchar(10);not null;default:'pending'" json:"bill_payment_status"`

	// Ordered []PaymentEntry as JSONB, append-only.
	BillPaymentHistory datatypes.JSON `gorm:"column:bill_payment_history;type:jsonb" json:"bill_payment_history"`

	BillDueAmount float64 `gorm:"column:bill_due_amount;not null;default:0" json:"bill_due_amount"`

	BillGeneratedAt time.Time  `gorm:"column:bill_generated_at;autoCreateTime" json:"bill_generated_at"`
	BillPaidAt      *time.Time `gorm:"column:bill_paid_at" json:"bill_paid_at,omitempty"`
}

func (BillModel) TableName() string { return "bills" }

// BillMealItem is one line of the embedded meal snapshot.
type BillMealItem struct {
	Date     time.Time          `json:"date"`
	MealType constants.MealType `json:"meal_type"`
	Specials int                `json:"specials"`
	Amount   float64            `json:"amount"`
}

// PaymentEntry is one appended payment in the bill's history. Reference
// carries the gateway order id for online payments; empty for counter
// payments. Replayed gateway notifications are matched on it.
type PaymentEntry struct {
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	Method    string    `json:"method"`
	Reference string    `json:"reference,omitempty"`
}
