package model

import (
	"time"

	"github.com/google/uuid"

	"messmate_backend/internals/constants"
)

// MealTokenModel is a time-boxed, single-use claim check for one meal.
// The rate breakdown is captured at issuance, so later rate-table edits
// never change what a redeemed token is worth.
type MealTokenModel struct {
	MealTokenID uuid.UUID `gorm:"column:meal_token_id;type:uuid;default:gen_random_uuid();primaryKey" json:"meal_token_id"`

	// Opaque scannable identifier presented as a QR code.
	MealTokenCode string `gorm:"column:meal_token_code;size:64;uniqueIndex;not null" json:"meal_token_code"`

	MealTokenUserID         uuid.UUID `gorm:"column:meal_token_user_id;type:uuid;not null;index" json:"meal_token_user_id"`
	MealTokenOrganizationID uuid.UUID `gorm:"column:meal_token_organization_id;type:uuid;not null" json:"meal_token_organization_id"`

	MealTokenMealType constants.MealType `gorm:"column:meal_token_meal_type;type:varchar(10);not null" json:"meal_token_meal_type"`
	MealTokenSpecials int                `gorm:"column:meal_token_specials;not null;default:0" json:"meal_token_specials"`

	// Issuance-time price capture: amount = rate + special_rate.
	MealTokenRate        float64 `gorm:"column:meal_token_rate;not null" json:"meal_token_rate"`
	MealTokenSpecialRate float64 `gorm:"column:meal_token_special_rate;not null;default:0" json:"meal_token_special_rate"`
	MealTokenAmount      float64 `gorm:"column:meal_token_amount;not null" json:"meal_token_amount"`

	MealTokenStatus        constants.TokenStatus        `gorm:"column:meal_token_status;type:varchar(10);not null;default:'active';index" json:"meal_token_status"`
	MealTokenPaymentStatus constants.TokenPaymentStatus `gorm:"column:meal_token_payment_status;type:varchar(10);not null;default:'pending'" json:"meal_token_payment_status"`

	MealTokenGeneratedAt time.Time  `gorm:"column:meal_token_generated_at;autoCreateTime" json:"meal_token_generated_at"`
	MealTokenExpiresAt   time.Time  `gorm:"column:meal_token_expires_at;not null" json:"meal_token_expires_at"`
	MealTokenUsedAt      *time.Time `gorm:"column:meal_token_used_at" json:"meal_token_used_at,omitempty"`
}

func (MealTokenModel) TableName() string { return "meal_tokens" }

func (t *MealTokenModel) IsExpired(now time.Time) bool {
	return now.After(t.MealTokenExpiresAt)
}
