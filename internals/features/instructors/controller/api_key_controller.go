// internals/features/instructors/controller/api_key_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	instructorDTO "raisemyhand_backend/internals/features/instructors/dto"
	instructorService "raisemyhand_backend/internals/features/instructors/service"
	helper "raisemyhand_backend/internals/helpers"
)

// APIKeyController lets a logged-in instructor mint and revoke keys for
// their own account. All handlers sit behind the JWT middleware.
type APIKeyController struct {
	DB   *gorm.DB
	Keys *instructorService.APIKeyService
}

func NewAPIKeyController(db *gorm.DB) *APIKeyController {
	return &APIKeyController{DB: db, Keys: instructorService.NewAPIKeyService(db)}
}

// GET /api/auth/api-keys
func (ctl *APIKeyController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	keys, err := ctl.Keys.List(userID)
	if err != nil {
		return err
	}

	out := make([]*instructorDTO.APIKeyResponse, 0, len(keys))
	for i := range keys {
		out = append(out, instructorDTO.NewAPIKeyResponse(&keys[i], false))
	}
	return helper.Success(c, "OK", out)
}

// POST /api/auth/api-keys. The only place the raw key value is returned.
func (ctl *APIKeyController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var req instructorDTO.CreateAPIKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	key, err := ctl.Keys.Create(userID, req.Name, &userID)
	if err != nil {
		return helper.FromServiceError(err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "API key created",
		instructorDTO.NewAPIKeyResponse(key, true))
}

// DELETE /api/auth/api-keys/:id
func (ctl *APIKeyController) Revoke(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	keyID, err := paramID(c)
	if err != nil {
		return err
	}
	if err := ctl.Keys.Revoke(userID, keyID, &userID); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "API key revoked", fiber.Map{"api_key_id": keyID})
}
