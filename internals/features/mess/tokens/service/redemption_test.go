package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"messmate_backend/internals/constants"
	"messmate_backend/internals/features/mess/tokens/model"
)

func activeToken(expiresAt time.Time) *model.MealTokenModel {
	return &model.MealTokenModel{
		MealTokenStatus:    constants.TokenActive,
		MealTokenExpiresAt: expiresAt,
	}
}

func TestEvaluateRedemptionAllowsActiveToken(t *testing.T) {
	now := time.Now()
	tok := activeToken(now.Add(time.Hour))

	err := EvaluateRedemption(tok, true, now)
	assert.NoError(t, err)
}

func TestEvaluateRedemptionUsedIsTerminal(t *testing.T) {
	now := time.Now()
	usedAt := now.Add(-time.Hour)
	tok := &model.MealTokenModel{
		MealTokenStatus:    constants.TokenUsed,
		MealTokenExpiresAt: now.Add(time.Hour),
		MealTokenUsedAt:    &usedAt,
	}

	// even with an active card and time to spare, used stays used
	assert.ErrorIs(t, EvaluateRedemption(tok, true, now), ErrAlreadyUsed)
}

func TestEvaluateRedemptionExpiredIsTerminal(t *testing.T) {
	now := time.Now()
	tok := &model.MealTokenModel{
		MealTokenStatus:    constants.TokenExpired,
		MealTokenExpiresAt: now.Add(time.Hour),
	}

	assert.ErrorIs(t, EvaluateRedemption(tok, true, now), ErrTokenExpired)
}

func TestEvaluateRedemptionPastDeadline(t *testing.T) {
	now := time.Now()
	tok := activeToken(now.Add(-time.Minute))

	// active but past its 24h window: caller must persist expired
	assert.ErrorIs(t, EvaluateRedemption(tok, true, now), ErrTokenExpired)
}

func TestEvaluateRedemptionInactiveCard(t *testing.T) {
	now := time.Now()
	tok := activeToken(now.Add(time.Hour))

	err := EvaluateRedemption(tok, false, now)
	assert.ErrorIs(t, err, ErrCardInactive)
	// no state change implied: the token stays active for a retry
	assert.Equal(t, constants.TokenActive, tok.MealTokenStatus)
}

func TestEvaluateRedemptionExpiryBeatsCardCheck(t *testing.T) {
	now := time.Now()
	tok := activeToken(now.Add(-time.Minute))

	assert.ErrorIs(t, EvaluateRedemption(tok, false, now), ErrTokenExpired)
}
