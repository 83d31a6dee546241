package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"messmate_backend/internals/constants"
	userCtl "messmate_backend/internals/features/users/user/controller"
	authMw "messmate_backend/internals/middlewares/auth"
)

func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userCtl.NewUserController(db)

	users := r.Group("/users")
	users.Get("/", authMw.OnlyRoles("Only admins may list users", constants.RoleAdmin), ctl.List)
	users.Get("/by-student-id/:student_id",
		authMw.OnlyRoles("Only staff may look up students", constants.RoleAdmin, constants.RoleOrganization),
		ctl.ByStudentID)
	users.Get("/profile", ctl.Profile)
	users.Put("/profile", ctl.UpdateProfile)
	users.Put("/verify/:id", authMw.OnlyRoles("Only admins may verify users", constants.RoleAdmin), ctl.Verify)
	users.Put("/card-status", ctl.CardStatus)
}
