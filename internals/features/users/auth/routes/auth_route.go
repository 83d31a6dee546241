package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "messmate_backend/internals/features/users/auth/controller"
	"messmate_backend/internals/middlewares"
)

func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Post("/register/student", middlewares.RegisterRateLimiter(), ctl.RegisterStudent)
	auth.Post("/register/organization", middlewares.RegisterRateLimiter(), ctl.RegisterOrganization)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}
