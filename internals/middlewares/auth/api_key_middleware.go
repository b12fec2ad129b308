// internals/middlewares/auth/api_key_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	instructorModel "raisemyhand_backend/internals/features/instructors/model"
	helper "raisemyhand_backend/internals/helpers"
)

// APIKeyAuth authenticates meeting-management calls with an opaque key
// (X-API-Key header, api_key query fallback). Touches last_used and
// stores the owning instructor in Locals.
func APIKeyAuth(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := strings.TrimSpace(c.Get("X-API-Key"))
		if key == "" {
			key = strings.TrimSpace(c.Query("api_key"))
		}
		if key == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing API key")
		}

		var record instructorModel.APIKeyModel
		err := db.Where("api_key_key = ? AND api_key_is_active = ?", key, true).
			First(&record).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Invalid or inactive API key")
			}
			log.Println("[ERROR] api key lookup:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		now := time.Now().UTC()
		// best-effort; a failed touch must not fail the request
		if err := db.Model(&instructorModel.APIKeyModel{}).
			Where("api_key_id = ?", record.APIKeyID).
			Update("api_key_last_used", now).Error; err != nil {
			log.Println("[WARN] api key last_used touch:", err)
		}

		c.Locals(helper.LocAPIKeyID, record.APIKeyID)
		c.Locals(helper.LocInstructorID, record.APIKeyInstructorID)

		return c.Next()
	}
}
