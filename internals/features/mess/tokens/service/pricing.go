package service

import (
	"errors"

	"messmate_backend/internals/constants"
	orgModel "messmate_backend/internals/features/organizations/model"
)

var (
	ErrInvalidMealType      = errors.New("invalid meal type")
	ErrInvalidSpecialsCount = errors.New("specials count must be between 0 and 10")
	ErrCardInactive         = errors.New("card is not active")
)

// TokenPrice is the issuance-time price capture stored on the token and
// later copied onto the meal record.
type TokenPrice struct {
	Rate        float64
	SpecialRate float64
	Amount      float64
}

// PriceToken computes the price of a token as a pure function of the
// organization's rate table.
func PriceToken(rates orgModel.MessRates, mealType constants.MealType, specials int) (TokenPrice, error) {
	if specials < constants.MinSpecials || specials > constants.MaxSpecials {
		return TokenPrice{}, ErrInvalidSpecialsCount
	}

	var rate float64
	switch mealType {
	case constants.MealBreakfast:
		rate = rates.BreakfastRate
	case constants.MealLunch:
		rate = rates.LunchRate
	case constants.MealDinner:
		rate = rates.DinnerRate
	default:
		return TokenPrice{}, ErrInvalidMealType
	}

	specialRate := float64(specials) * rates.SpecialItemRate
	return TokenPrice{
		Rate:        rate,
		SpecialRate: specialRate,
		Amount:      rate + specialRate,
	}, nil
}
