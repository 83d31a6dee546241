package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"messmate_backend/internals/constants"
	mealModel "messmate_backend/internals/features/mess/meals/model"
	"messmate_backend/internals/features/mess/tokens/model"
)

// RedeemToken flips the token active→used and writes the meal record in
// one transaction. The flip is a conditional update guarded on the active
// status, so of two concurrent redemptions of the same token exactly one
// wins; the loser gets ErrAlreadyUsed and no meal row is written for it.
// On success the in-memory token is updated to the used state.
func RedeemToken(db *gorm.DB, token *model.MealTokenModel, now time.Time) (*mealModel.MealModel, error) {
	meal := &mealModel.MealModel{
		MealID:             uuid.New(),
		MealUserID:         token.MealTokenUserID,
		MealOrganizationID: token.MealTokenOrganizationID,
		MealType:           token.MealTokenMealType,
		MealSpecials:       token.MealTokenSpecials,
		MealTokenID:        &token.MealTokenID,
		MealRate:           token.MealTokenRate,
		MealSpecialRate:    token.MealTokenSpecialRate,
		MealTotalAmount:    token.MealTokenAmount,
		MealTimestamp:      now,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.MealTokenModel{}).
			Where("meal_token_id = ? AND meal_token_status = ?", token.MealTokenID, constants.TokenActive).
			Updates(map[string]interface{}{
				"meal_token_status":  constants.TokenUsed,
				"meal_token_used_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// lost the race: someone else flipped it first
			return ErrAlreadyUsed
		}
		return tx.Create(meal).Error
	})
	if err != nil {
		return nil, err
	}

	usedAt := now
	token.MealTokenStatus = constants.TokenUsed
	token.MealTokenUsedAt = &usedAt
	return meal, nil
}
