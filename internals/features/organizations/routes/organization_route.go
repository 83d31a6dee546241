package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	orgCtl "messmate_backend/internals/features/organizations/controller"
)

// PublicOrganizationRoutes are readable without auth (registration needs
// the organization list; the scan UI needs rate context).
func PublicOrganizationRoutes(r fiber.Router, db *gorm.DB) {
	ctl := orgCtl.NewOrganizationController(db)

	orgs := r.Group("/organizations")
	orgs.Get("/", ctl.List)
	orgs.Get("/parameters/:id", ctl.GetParameters)
	orgs.Get("/:id", ctl.GetByID)
}

func OrganizationRoutes(r fiber.Router, db *gorm.DB) {
	ctl := orgCtl.NewOrganizationController(db)

	orgs := r.Group("/organizations")
	orgs.Put("/parameters", ctl.UpdateParameters)
}
