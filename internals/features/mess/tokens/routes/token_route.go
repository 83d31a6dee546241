package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"messmate_backend/internals/constants"
	tokenCtl "messmate_backend/internals/features/mess/tokens/controller"
	authMw "messmate_backend/internals/middlewares/auth"
)

func TokenRoutes(r fiber.Router, db *gorm.DB) {
	ctl := tokenCtl.NewTokenController(db)

	tokens := r.Group("/tokens")
	tokens.Post("/generate", ctl.Generate)
	tokens.Post("/validate",
		authMw.OnlyRoles("Only staff may validate tokens", constants.RoleAdmin, constants.RoleOrganization),
		ctl.Validate)
	tokens.Get("/my-tokens", ctl.MyTokens)
}

// PublicTokenRoutes serve the QR lookup without auth, matching the scan UI.
func PublicTokenRoutes(r fiber.Router, db *gorm.DB) {
	ctl := tokenCtl.NewTokenController(db)

	tokens := r.Group("/tokens")
	tokens.Get("/lookup/:code", ctl.Lookup)
}
