package dto

import (
	"time"

	"github.com/google/uuid"

	"messmate_backend/internals/constants"
	m "messmate_backend/internals/features/mess/tokens/model"
)

/* =============== REQUESTS =============== */

type GenerateTokenRequest struct {
	MealType constants.MealType `json:"meal_type" validate:"required,oneof=breakfast lunch dinner"`
	Specials int                `json:"specials" validate:"gte=0,lte=10"`
	// "pay-now" marks the token paid at issuance, anything else is pending.
	PaymentType string `json:"payment_type" validate:"omitempty,oneof=pay-now pay-later"`
}

type ValidateTokenRequest struct {
	TokenCode string `json:"token_code" validate:"required,min=8"`
}

/* =============== RESPONSES =============== */

type TokenResponse struct {
	MealTokenID            uuid.UUID                    `json:"meal_token_id"`
	MealTokenCode          string                       `json:"meal_token_code"`
	MealTokenMealType      constants.MealType           `json:"meal_token_meal_type"`
	MealTokenSpecials      int                          `json:"meal_token_specials"`
	MealTokenAmount        float64                      `json:"meal_token_amount"`
	MealTokenStatus        constants.TokenStatus        `json:"meal_token_status"`
	MealTokenPaymentStatus constants.TokenPaymentStatus `json:"meal_token_payment_status"`
	MealTokenGeneratedAt   time.Time                    `json:"meal_token_generated_at"`
	MealTokenExpiresAt     time.Time                    `json:"meal_token_expires_at"`
	MealTokenUsedAt        *time.Time                   `json:"meal_token_used_at,omitempty"`
}

// RedeemedBy gives the operator enough context on an AlreadyUsed failure.
type RedeemedBy struct {
	Name      string             `json:"name"`
	StudentID *string            `json:"student_id,omitempty"`
	MealType  constants.MealType `json:"meal_type"`
	UsedAt    *time.Time         `json:"used_at,omitempty"`
}

// ValidationResponse confirms a successful redemption.
type ValidationResponse struct {
	User struct {
		ID        uuid.UUID          `json:"id"`
		Name      string             `json:"name"`
		StudentID *string            `json:"student_id,omitempty"`
		Category  constants.Category `json:"category"`
	} `json:"user"`
	MealType constants.MealType `json:"meal_type"`
	Specials int                `json:"specials"`
	Amount   float64            `json:"amount"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.MealTokenModel) TokenResponse {
	return TokenResponse{
		MealTokenID:            x.MealTokenID,
		MealTokenCode:          x.MealTokenCode,
		MealTokenMealType:      x.MealTokenMealType,
		MealTokenSpecials:      x.MealTokenSpecials,
		MealTokenAmount:        x.MealTokenAmount,
		MealTokenStatus:        x.MealTokenStatus,
		MealTokenPaymentStatus: x.MealTokenPaymentStatus,
		MealTokenGeneratedAt:   x.MealTokenGeneratedAt,
		MealTokenExpiresAt:     x.MealTokenExpiresAt,
		MealTokenUsedAt:        x.MealTokenUsedAt,
	}
}

func FromModels(list []m.MealTokenModel) []TokenResponse {
	out := make([]TokenResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
