package model

import (
	"time"

	"github.com/google/uuid"

	"messmate_backend/internals/constants"
)

// MealModel is the durable billing unit, written exactly once when a token
// is redeemed and immutable afterward. rate and special_rate are copied
// from the token's issuance-time capture, so total_amount always equals
// rate + special_rate.
type MealModel struct {
	MealID uuid.UUID `gorm:"column:meal_id;type:uuid;default:gen_random_uuid();primaryKey" json:"meal_id"`

	MealUserID         uuid.UUID `gorm:"column:meal_user_id;type:uuid;not null;index:idx_meals_user_time" json:"meal_user_id"`
	MealOrganizationID uuid.UUID `gorm:"column:meal_organization_id;type:uuid;not null" json:"meal_organization_id"`

	MealType     constants.MealType `gorm:"column:meal_type;type:varchar(10);not null" json:"meal_type"`
	MealSpecials int                `gorm:"column:meal_specials;not null;default:0" json:"meal_specials"`

	// Back-reference to the redeemed token.
	MealTokenID *uuid.UUID `gorm:"column:meal_token_id;type:uuid" json:"meal_token_id,omitempty"`

	MealRate        float64 `gorm:"column:meal_rate;not null" json:"meal_rate"`
	MealSpecialRate float64 `gorm:"column:meal_special_rate;not null;default:0" json:"meal_special_rate"`
	MealTotalAmount float64 `gorm:"column:meal_total_amount;not null" json:"meal_total_amount"`

	MealTimestamp time.Time `gorm:"column:meal_timestamp;autoCreateTime;index:idx_meals_user_time" json:"meal_timestamp"`
}

func (MealModel) TableName() string { return "meals" }
