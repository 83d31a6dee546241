package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"messmate_backend/internals/constants"
	mealCtl "messmate_backend/internals/features/mess/meals/controller"
	authMw "messmate_backend/internals/middlewares/auth"
)

func MealRoutes(r fiber.Router, db *gorm.DB) {
	ctl := mealCtl.NewMealController(db)

	meals := r.Group("/meals")
	meals.Get("/my-meals", ctl.MyMeals)
	meals.Get("/by-date",
		authMw.OnlyRoles("Only staff may view the daily sheet", constants.RoleAdmin, constants.RoleOrganization),
		ctl.ByDate)
	meals.Get("/stats", ctl.Stats)
}
