package dto

import (
	"time"

	"github.com/google/uuid"

	"messmate_backend/internals/constants"
	m "messmate_backend/internals/features/mess/meals/model"
)

type ListMyMealsQuery struct {
	StartDate *time.Time `query:"start_date" validate:"omitempty"`
	EndDate   *time.Time `query:"end_date" validate:"omitempty,gtefield=StartDate"`
}

type MealsByDateQuery struct {
	Date string `query:"date" validate:"required,datetime=2006-01-02"`
}

type MealStatsQuery struct {
	Month int `query:"month" validate:"required,min=1,max=12"`
	Year  int `query:"year" validate:"required,gte=2000,lte=2100"`
}

type MealResponse struct {
	MealID          uuid.UUID          `json:"meal_id"`
	MealUserID      uuid.UUID          `json:"meal_user_id"`
	MealType        constants.MealType `json:"meal_type"`
	MealSpecials    int                `json:"meal_specials"`
	MealRate        float64            `json:"meal_rate"`
	MealSpecialRate float64            `json:"meal_special_rate"`
	MealTotalAmount float64            `json:"meal_total_amount"`
	MealTimestamp   time.Time          `json:"meal_timestamp"`
}

type MealStatsResponse struct {
	TotalMeals    int     `json:"total_meals"`
	Breakfast     int     `json:"breakfast"`
	Lunch         int     `json:"lunch"`
	Dinner        int     `json:"dinner"`
	TotalSpecials int     `json:"total_specials"`
	TotalAmount   float64 `json:"total_amount"`
}

func FromModel(x m.MealModel) MealResponse {
	return MealResponse{
		MealID:          x.MealID,
		MealUserID:      x.MealUserID,
		MealType:        x.MealType,
		MealSpecials:    x.MealSpecials,
		MealRate:        x.MealRate,
		MealSpecialRate: x.MealSpecialRate,
		MealTotalAmount: x.MealTotalAmount,
		MealTimestamp:   x.MealTimestamp,
	}
}

func FromModels(list []m.MealModel) []MealResponse {
	out := make([]MealResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
