package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"messmate_backend/internals/constants"
	dto "messmate_backend/internals/features/mess/meals/dto"
	model "messmate_backend/internals/features/mess/meals/model"
	helper "messmate_backend/internals/helpers"
)

type MealController struct {
	DB *gorm.DB
}

func NewMealController(db *gorm.DB) *MealController {
	return &MealController{DB: db}
}

var validate = validator.New()

// GET /api/meals/my-meals?start_date=&end_date=
func (h *MealController) MyMeals(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var q dto.ListMyMealsQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	if err := validate.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}

	base := h.DB.Where("meal_user_id = ?", userID)
	if q.StartDate != nil && q.EndDate != nil {
		base = base.Where("meal_timestamp >= ? AND meal_timestamp <= ?", *q.StartDate, *q.EndDate)
	}

	var meals []model.MealModel
	if err := base.Order("meal_timestamp DESC").Find(&meals).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModels(meals))
}

// GET /api/meals/by-date?date=YYYY-MM-DD — the operator's daily sheet.
func (h *MealController) ByDate(c *fiber.Ctx) error {
	var q dto.MealsByDateQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	if err := validate.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}

	day, err := time.ParseInLocation("2006-01-02", q.Date, time.Local)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid date")
	}
	next := day.AddDate(0, 0, 1)

	var meals []model.MealModel
	if err := h.DB.
		Where("meal_timestamp >= ? AND meal_timestamp < ?", day, next).
		Order("meal_timestamp DESC").
		Find(&meals).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModels(meals))
}

// GET /api/meals/stats?month=&year=
func (h *MealController) Stats(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var q dto.MealStatsQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	if err := validate.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}

	start := time.Date(q.Year, time.Month(q.Month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	var meals []model.MealModel
	if err := h.DB.
		Where("meal_user_id = ? AND meal_timestamp >= ? AND meal_timestamp < ?", userID, start, end).
		Find(&meals).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	stats := dto.MealStatsResponse{TotalMeals: len(meals)}
	for _, m := range meals {
		switch m.MealType {
		case constants.MealBreakfast:
			stats.Breakfast++
		case constants.MealLunch:
			stats.Lunch++
		case constants.MealDinner:
			stats.Dinner++
		}
		stats.TotalSpecials += m.MealSpecials
		stats.TotalAmount += m.MealTotalAmount
	}

	return helper.JsonOK(c, "OK", stats)
}
