package service

import (
	"errors"
	"time"

	"messmate_backend/internals/constants"
	"messmate_backend/internals/features/mess/tokens/model"
)

var (
	ErrTokenNotFound = errors.New("token not found")
	ErrAlreadyUsed   = errors.New("token already used")
	ErrTokenExpired  = errors.New("token expired")
)

// EvaluateRedemption decides whether a token may transition active→used.
// It returns nil when the transition is allowed. ErrTokenExpired is also
// returned for a still-active token past its deadline; the caller must
// persist the expired status in that case (lazy expiry). A card-inactive
// failure leaves the token active so redemption can be retried once the
// card is reactivated.
func EvaluateRedemption(t *model.MealTokenModel, cardActive bool, now time.Time) error {
	switch t.MealTokenStatus {
	case constants.TokenUsed:
		return ErrAlreadyUsed
	case constants.TokenExpired:
		return ErrTokenExpired
	}

	if t.IsExpired(now) {
		return ErrTokenExpired
	}

	if !cardActive {
		return ErrCardInactive
	}

	return nil
}
