// internals/features/instructors/route/instructor_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"raisemyhand_backend/internals/constants"
	instructorCtrl "raisemyhand_backend/internals/features/instructors/controller"
	"raisemyhand_backend/internals/middlewares"
	authMw "raisemyhand_backend/internals/middlewares/auth"
)

// AuthRoutes: login plus the JWT-protected self-service surface.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ac := instructorCtrl.NewAuthController(db)
	kc := instructorCtrl.NewAPIKeyController(db)

	app.Post("/api/auth/login", middlewares.LoginRateLimiter(), ac.Login)

	me := app.Group("/api/auth", authMw.AuthMiddleware(db))
	me.Get("/me", ac.Me)
	me.Get("/api-keys", kc.List)
	me.Post("/api-keys", kc.Create)
	me.Delete("/api-keys/:id", kc.Revoke)
}

// AdminRoutes: account management, ADMIN and above.
func AdminRoutes(app *fiber.App, db *gorm.DB) {
	uc := instructorCtrl.NewAdminUserController(db)

	admin := app.Group("/api/admin",
		authMw.AuthMiddleware(db),
		authMw.RequireRole(constants.RoleAdmin),
	)
	admin.Post("/instructors", uc.Create)
	admin.Get("/instructors", uc.List)
	admin.Post("/instructors/:id/deactivate", uc.Deactivate)
	admin.Post("/instructors/:id/reactivate", uc.Reactivate)
	admin.Get("/audit-logs", uc.ListAuditLogs)
}
