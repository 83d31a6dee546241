package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"messmate_backend/internals/constants"
	dto "messmate_backend/internals/features/mess/tokens/dto"
	model "messmate_backend/internals/features/mess/tokens/model"
	service "messmate_backend/internals/features/mess/tokens/service"
	orgModel "messmate_backend/internals/features/organizations/model"
	userModel "messmate_backend/internals/features/users/user/model"
	helper "messmate_backend/internals/helpers"
)

type TokenController struct {
	DB *gorm.DB
}

func NewTokenController(db *gorm.DB) *TokenController {
	return &TokenController{DB: db}
}

var validate = validator.New()

/* ======================= GENERATE ======================= */
// POST /api/tokens/generate
func (h *TokenController) Generate(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.GenerateTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := h.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if !user.IsCardActive {
		return fiber.NewError(fiber.StatusBadRequest, "Card is not active")
	}
	if user.OrganizationID == nil {
		return fiber.NewError(fiber.StatusBadRequest, "User has no organization")
	}

	var org orgModel.OrganizationModel
	if err := h.DB.Where("organization_id = ?", *user.OrganizationID).First(&org).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	price, err := service.PriceToken(org.Rates(), req.MealType, req.Specials)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	paymentStatus := constants.TokenPaymentPending
	if req.PaymentType == "pay-now" {
		paymentStatus = constants.TokenPaymentPaid
	}

	now := time.Now()
	token := model.MealTokenModel{
		MealTokenCode:           uuid.NewString(),
		MealTokenUserID:         user.ID,
		MealTokenOrganizationID: org.OrganizationID,
		MealTokenMealType:       req.MealType,
		MealTokenSpecials:       req.Specials,
		MealTokenRate:           price.Rate,
		MealTokenSpecialRate:    price.SpecialRate,
		MealTokenAmount:         price.Amount,
		MealTokenStatus:         constants.TokenActive,
		MealTokenPaymentStatus:  paymentStatus,
		MealTokenExpiresAt:      now.Add(24 * time.Hour),
	}

	if err := h.DB.Create(&token).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create token")
	}

	return helper.JsonCreated(c, "Token generated", dto.FromModel(token))
}

/* ======================= VALIDATE ======================= */
// POST /api/tokens/validate — operator scans a code. The active→used flip
// and the meal insert are one transaction; the flip itself is a
// conditional update so two racing scans cannot both succeed.
func (h *TokenController) Validate(c *fiber.Ctx) error {
	var req dto.ValidateTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var token model.MealTokenModel
	if err := h.DB.Where("meal_token_code = ?", req.TokenCode).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Token not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var user userModel.UserModel
	if err := h.DB.Where("id = ?", token.MealTokenUserID).First(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	now := time.Now()
	if err := service.EvaluateRedemption(&token, user.IsCardActive, now); err != nil {
		return h.redemptionFailure(c, &token, &user, err)
	}

	if _, err := service.RedeemToken(h.DB, &token, now); err != nil {
		if errors.Is(err, service.ErrAlreadyUsed) {
			// reload for accurate operator feedback; on a failed reload
			// report the conflict without the stale timestamp
			if rlErr := h.DB.Where("meal_token_id = ?", token.MealTokenID).First(&token).Error; rlErr != nil {
				token.MealTokenUsedAt = nil
			}
			return h.redemptionFailure(c, &token, &user, service.ErrAlreadyUsed)
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to redeem token")
	}

	resp := dto.ValidationResponse{
		MealType: token.MealTokenMealType,
		Specials: token.MealTokenSpecials,
		Amount:   token.MealTokenAmount,
	}
	resp.User.ID = user.ID
	resp.User.Name = user.Name
	resp.User.StudentID = user.StudentID
	resp.User.Category = user.Category

	return helper.JsonOK(c, "Token validated successfully", resp)
}

func (h *TokenController) redemptionFailure(c *fiber.Ctx, token *model.MealTokenModel, user *userModel.UserModel, err error) error {
	switch {
	case errors.Is(err, service.ErrAlreadyUsed):
		return helper.ErrorWithDetails(c, fiber.StatusConflict, "Token already used", dto.RedeemedBy{
			Name:      user.Name,
			StudentID: user.StudentID,
			MealType:  token.MealTokenMealType,
			UsedAt:    token.MealTokenUsedAt,
		})
	case errors.Is(err, service.ErrTokenExpired):
		// lazy expiry: persist the terminal state on first observation
		if token.MealTokenStatus != constants.TokenExpired {
			_ = h.DB.Model(&model.MealTokenModel{}).
				Where("meal_token_id = ? AND meal_token_status = ?", token.MealTokenID, constants.TokenActive).
				Update("meal_token_status", constants.TokenExpired).Error
		}
		return helper.Error(c, fiber.StatusBadRequest, "Token expired")
	case errors.Is(err, service.ErrCardInactive):
		return helper.Error(c, fiber.StatusBadRequest, "User card is not active")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}

/* ======================= MY TOKENS ======================= */
// GET /api/tokens/my-tokens
func (h *TokenController) MyTokens(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var tokens []model.MealTokenModel
	if err := h.DB.
		Where("meal_token_user_id = ? AND meal_token_status = ?", userID, constants.TokenActive).
		Order("meal_token_generated_at DESC").
		Find(&tokens).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModels(tokens))
}

/* ======================= LOOKUP ======================= */
// GET /api/tokens/lookup/:code — public lookup for the scan UI. Expiry is
// materialized here too, so a stale QR shows its real state.
func (h *TokenController) Lookup(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Token code is required")
	}

	var token model.MealTokenModel
	if err := h.DB.Where("meal_token_code = ?", code).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Token not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if token.MealTokenStatus == constants.TokenActive && token.IsExpired(time.Now()) {
		if err := h.DB.Model(&model.MealTokenModel{}).
			Where("meal_token_id = ? AND meal_token_status = ?", token.MealTokenID, constants.TokenActive).
			Update("meal_token_status", constants.TokenExpired).Error; err == nil {
			token.MealTokenStatus = constants.TokenExpired
		}
	}

	return helper.JsonOK(c, "OK", dto.FromModel(token))
}
