package service

import (
	"messmate_backend/internals/constants"
	billModel "messmate_backend/internals/features/mess/bills/model"
	mealModel "messmate_backend/internals/features/mess/meals/model"
	orgModel "messmate_backend/internals/features/organizations/model"
)

// Statement is a computed monthly aggregate, independent of any stored
// bill. ComputeStatement is a pure function of (meals, rates, category,
// month), so the billing rules are testable without a database.
type Statement struct {
	Meals          []billModel.BillMealItem
	BreakfastCount int
	LunchCount     int
	DinnerCount    int
	SpecialCount   int

	Subtotal             float64
	SemesterHostelFee    float64
	IsSemesterFeeApplied bool
	Total                float64
}

func ComputeStatement(meals []mealModel.MealModel, rates orgModel.MessRates, category constants.Category, month int) Statement {
	st := Statement{Meals: make([]billModel.BillMealItem, 0, len(meals))}

	for _, m := range meals {
		switch m.MealType {
		case constants.MealBreakfast:
			st.BreakfastCount++
		case constants.MealLunch:
			st.LunchCount++
		case constants.MealDinner:
			st.DinnerCount++
		}
		st.SpecialCount += m.MealSpecials
		st.Subtotal += m.MealTotalAmount

		st.Meals = append(st.Meals, billModel.BillMealItem{
			Date:     m.MealTimestamp,
			MealType: m.MealType,
			Specials: m.MealSpecials,
			Amount:   m.MealTotalAmount,
		})
	}

	// Semester hostel fee applies only in the half-year-end months. For
	// exempt categories the fee is waived but the flag is still set, to
	// record that the rule was evaluated.
	if constants.SemesterMonths[month] {
		st.IsSemesterFeeApplied = true
		if !category.SemesterFeeExempt() {
			st.SemesterHostelFee = rates.SemesterHostelFee
		}
	}

	st.Total = st.Subtotal + st.SemesterHostelFee
	return st
}
