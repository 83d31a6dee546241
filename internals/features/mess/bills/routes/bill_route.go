package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"messmate_backend/internals/constants"
	billCtl "messmate_backend/internals/features/mess/bills/controller"
	authMw "messmate_backend/internals/middlewares/auth"
)

func BillRoutes(r fiber.Router, db *gorm.DB) {
	ctl := billCtl.NewBillController(db)

	bills := r.Group("/bills")
	bills.Get("/my-bills", ctl.MyBills)
	bills.Get("/current", ctl.Current)
	bills.Post("/generate/:month/:year", ctl.Generate)
	bills.Post("/pay", ctl.Pay)
	bills.Post("/pay/online", ctl.PayOnline)
	bills.Get("/all",
		authMw.OnlyRoles("Only staff may list all bills", constants.RoleAdmin, constants.RoleOrganization),
		ctl.All)
}

// WebhookRoutes receive payment gateway notifications; auth middleware
// skips this path.
func WebhookRoutes(r fiber.Router, db *gorm.DB) {
	ctl := billCtl.NewBillController(db)
	r.Post("/bills/notification", ctl.Notification)
}
