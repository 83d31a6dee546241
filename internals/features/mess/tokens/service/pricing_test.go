package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"messmate_backend/internals/constants"
	orgModel "messmate_backend/internals/features/organizations/model"
)

var testRates = orgModel.MessRates{
	BreakfastRate:     50,
	LunchRate:         100,
	DinnerRate:        100,
	SpecialItemRate:   30,
	SemesterHostelFee: 500,
}

func TestPriceToken(t *testing.T) {
	tests := []struct {
		name        string
		mealType    constants.MealType
		specials    int
		wantRate    float64
		wantSpecial float64
		wantAmount  float64
	}{
		{"breakfast no specials", constants.MealBreakfast, 0, 50, 0, 50},
		{"lunch with two specials", constants.MealLunch, 2, 100, 60, 160},
		{"dinner max specials", constants.MealDinner, 10, 100, 300, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := PriceToken(testRates, tt.mealType, tt.specials)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRate, price.Rate)
			assert.Equal(t, tt.wantSpecial, price.SpecialRate)
			assert.Equal(t, tt.wantAmount, price.Amount)
			assert.Equal(t, price.Rate+price.SpecialRate, price.Amount)
		})
	}
}

func TestPriceTokenInvalidMealType(t *testing.T) {
	_, err := PriceToken(testRates, constants.MealType("brunch"), 0)
	assert.ErrorIs(t, err, ErrInvalidMealType)
}

func TestPriceTokenSpecialsOutOfRange(t *testing.T) {
	_, err := PriceToken(testRates, constants.MealLunch, 11)
	assert.ErrorIs(t, err, ErrInvalidSpecialsCount)

	_, err = PriceToken(testRates, constants.MealLunch, -1)
	assert.ErrorIs(t, err, ErrInvalidSpecialsCount)
}
