package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the auth middlewares.
const (
	LocUserID       = "user_id"
	LocUserRole     = "user_role"
	LocUsername     = "username"
	LocAPIKeyID     = "api_key_id"
	LocInstructorID = "instructor_id"
)

// GetRawAccessToken returns the access token from:
// 1) cookie "access_token"
// 2) Authorization header "Bearer <token>"
func GetRawAccessToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}

// GetUserID reads the authenticated instructor id set by the JWT middleware.
func GetUserID(c *fiber.Ctx) (uint, error) {
	v, ok := c.Locals(LocUserID).(uint)
	if !ok || v == 0 {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Missing user identity")
	}
	return v, nil
}

// GetUserRole reads the role claim set by the JWT middleware.
func GetUserRole(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserRole).(string); ok {
		return v
	}
	return ""
}

// GetInstructorID reads the instructor id bound to a verified API key.
func GetInstructorID(c *fiber.Ctx) (uint, error) {
	v, ok := c.Locals(LocInstructorID).(uint)
	if !ok || v == 0 {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Missing API key identity")
	}
	return v, nil
}
