package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"messmate_backend/internals/constants"
	mealModel "messmate_backend/internals/features/mess/meals/model"
	orgModel "messmate_backend/internals/features/organizations/model"
)

var testRates = orgModel.MessRates{
	BreakfastRate:     50,
	LunchRate:         100,
	DinnerRate:        100,
	SpecialItemRate:   30,
	SemesterHostelFee: 500,
}

func mealsFixture() []mealModel.MealModel {
	day := time.Date(2025, 6, 3, 8, 0, 0, 0, time.Local)
	return []mealModel.MealModel{
		{MealType: constants.MealBreakfast, MealSpecials: 0, MealRate: 50, MealTotalAmount: 50, MealTimestamp: day},
		{MealType: constants.MealLunch, MealSpecials: 2, MealRate: 100, MealSpecialRate: 60, MealTotalAmount: 160, MealTimestamp: day.Add(4 * time.Hour)},
		{MealType: constants.MealDinner, MealSpecials: 4, MealRate: 100, MealSpecialRate: 120, MealTotalAmount: 240, MealTimestamp: day.Add(11 * time.Hour)},
	}
}

func TestComputeStatementCountsAndSubtotal(t *testing.T) {
	st := ComputeStatement(mealsFixture(), testRates, constants.CategoryGeneral, 3)

	assert.Equal(t, 1, st.BreakfastCount)
	assert.Equal(t, 1, st.LunchCount)
	assert.Equal(t, 1, st.DinnerCount)
	assert.Equal(t, 6, st.SpecialCount)
	assert.Equal(t, 450.0, st.Subtotal)
	assert.Len(t, st.Meals, 3)

	// March: no semester fee, flag stays false
	assert.False(t, st.IsSemesterFeeApplied)
	assert.Equal(t, 0.0, st.SemesterHostelFee)
	assert.Equal(t, 450.0, st.Total)
}

func TestComputeStatementSemesterFee(t *testing.T) {
	tests := []struct {
		name        string
		category    constants.Category
		month       int
		wantFee     float64
		wantApplied bool
	}{
		{"General in June pays", constants.CategoryGeneral, 6, 500, true},
		{"OBC in December pays", constants.CategoryOBC, 12, 500, true},
		{"SC in June is waived but evaluated", constants.CategorySC, 6, 0, true},
		{"ST in December is waived but evaluated", constants.CategoryST, 12, 0, true},
		{"PwD in June is waived but evaluated", constants.CategoryPwD, 6, 0, true},
		{"General in May is untouched", constants.CategoryGeneral, 5, 0, false},
		{"SC in July is untouched", constants.CategorySC, 7, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := ComputeStatement(mealsFixture(), testRates, tt.category, tt.month)
			assert.Equal(t, tt.wantFee, st.SemesterHostelFee)
			assert.Equal(t, tt.wantApplied, st.IsSemesterFeeApplied)
			assert.Equal(t, st.Subtotal+st.SemesterHostelFee, st.Total)
		})
	}
}

func TestComputeStatementScenarioGeneralJune(t *testing.T) {
	// three meals totalling 450, General, June, fee 500 → total 950
	st := ComputeStatement(mealsFixture(), testRates, constants.CategoryGeneral, 6)
	assert.Equal(t, 950.0, st.Total)
	assert.True(t, st.IsSemesterFeeApplied)
}

func TestComputeStatementScenarioSCJune(t *testing.T) {
	st := ComputeStatement(mealsFixture(), testRates, constants.CategorySC, 6)
	assert.Equal(t, 450.0, st.Total)
	assert.Equal(t, 0.0, st.SemesterHostelFee)
	assert.True(t, st.IsSemesterFeeApplied)
}

func TestComputeStatementEmptyMonth(t *testing.T) {
	st := ComputeStatement(nil, testRates, constants.CategoryGeneral, 6)
	assert.Equal(t, 0.0, st.Subtotal)
	assert.Equal(t, 500.0, st.SemesterHostelFee)
	assert.Equal(t, 500.0, st.Total)
	assert.Empty(t, st.Meals)
}
