// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"raisemyhand_backend/internals/constants"
	helper "raisemyhand_backend/internals/helpers"
)

// RequireRole gates a route on the ordered role hierarchy
// (INSTRUCTOR < ADMIN < SUPER_ADMIN). Must run after AuthMiddleware.
func RequireRole(minRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetUserRole(c)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing role claim")
		}
		if !constants.RoleAtLeast(role, minRole) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(c.Path()))
		}
		return c.Next()
	}
}
