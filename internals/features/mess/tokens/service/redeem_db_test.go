package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"messmate_backend/internals/constants"
	mealModel "messmate_backend/internals/features/mess/meals/model"
	"messmate_backend/internals/features/mess/tokens/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.MealTokenModel{}, &mealModel.MealModel{}))
	return db
}

func storedActiveToken(t *testing.T, db *gorm.DB, now time.Time) *model.MealTokenModel {
	t.Helper()

	token := &model.MealTokenModel{
		MealTokenID:             uuid.New(),
		MealTokenCode:           uuid.NewString(),
		MealTokenUserID:         uuid.New(),
		MealTokenOrganizationID: uuid.New(),
		MealTokenMealType:       constants.MealLunch,
		MealTokenSpecials:       2,
		MealTokenRate:           100,
		MealTokenSpecialRate:    60,
		MealTokenAmount:         160,
		MealTokenStatus:         constants.TokenActive,
		MealTokenPaymentStatus:  constants.TokenPaymentPending,
		MealTokenExpiresAt:      now.Add(24 * time.Hour),
	}
	require.NoError(t, db.Create(token).Error)
	return token
}

func TestRedeemTokenWritesMealAndFlipsStatus(t *testing.T) {
	db := openTestDB(t)
	now := time.Now()
	token := storedActiveToken(t, db, now)

	meal, err := RedeemToken(db, token, now)
	require.NoError(t, err)
	assert.Equal(t, token.MealTokenAmount, meal.MealTotalAmount)
	assert.Equal(t, token.MealTokenRate, meal.MealRate)
	assert.Equal(t, token.MealTokenSpecialRate, meal.MealSpecialRate)
	assert.Equal(t, constants.TokenUsed, token.MealTokenStatus)
	require.NotNil(t, token.MealTokenUsedAt)

	var stored model.MealTokenModel
	require.NoError(t, db.First(&stored, "meal_token_id = ?", token.MealTokenID).Error)
	assert.Equal(t, constants.TokenUsed, stored.MealTokenStatus)
	require.NotNil(t, stored.MealTokenUsedAt)
}

// Two scanners submitting the same code: the conditional update decides
// the race, so exactly one redemption succeeds and exactly one meal row
// exists afterwards.
func TestRedeemTokenSecondRedemptionLoses(t *testing.T) {
	db := openTestDB(t)
	now := time.Now()
	token := storedActiveToken(t, db, now)

	// second scanner holds its own still-active copy of the row
	stale := *token

	_, err := RedeemToken(db, token, now)
	require.NoError(t, err)

	_, err = RedeemToken(db, &stale, now.Add(time.Second))
	assert.ErrorIs(t, err, ErrAlreadyUsed)

	var count int64
	require.NoError(t, db.Model(&mealModel.MealModel{}).
		Where("meal_token_id = ?", token.MealTokenID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
