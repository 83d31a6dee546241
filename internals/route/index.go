package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billRoutes "messmate_backend/internals/features/mess/bills/routes"
	mealRoutes "messmate_backend/internals/features/mess/meals/routes"
	tokenRoutes "messmate_backend/internals/features/mess/tokens/routes"
	orgRoutes "messmate_backend/internals/features/organizations/routes"
	authRoutes "messmate_backend/internals/features/users/auth/routes"
	userRoutes "messmate_backend/internals/features/users/user/routes"
	authMw "messmate_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC routes...")
	public := app.Group("/api")
	authRoutes.AuthRoutes(public, db)
	orgRoutes.PublicOrganizationRoutes(public, db)
	tokenRoutes.PublicTokenRoutes(public, db)
	billRoutes.WebhookRoutes(public, db)

	// ===================== AUTHENTICATED =====================
	log.Println("[INFO] Setting up AUTHENTICATED routes...")
	api := app.Group("/api", authMw.AuthMiddleware())
	userRoutes.UserRoutes(api, db)
	orgRoutes.OrganizationRoutes(api, db)
	tokenRoutes.TokenRoutes(api, db)
	mealRoutes.MealRoutes(api, db)
	billRoutes.BillRoutes(api, db)
}
