// internals/features/instructors/controller/admin_user_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	instructorDTO "raisemyhand_backend/internals/features/instructors/dto"
	instructorModel "raisemyhand_backend/internals/features/instructors/model"
	instructorService "raisemyhand_backend/internals/features/instructors/service"
	helper "raisemyhand_backend/internals/helpers"
)

// AdminUserController is the account-management surface. Role gating
// lives in the service; the route additionally sits behind
// RequireRole(ADMIN).
type AdminUserController struct {
	DB    *gorm.DB
	Users *instructorService.UserService
}

func NewAdminUserController(db *gorm.DB) *AdminUserController {
	return &AdminUserController{DB: db, Users: instructorService.NewUserService(db)}
}

// POST /api/admin/instructors
func (ctl *AdminUserController) Create(c *fiber.Ctx) error {
	actor, err := ctl.actor(c)
	if err != nil {
		return err
	}

	var req instructorDTO.CreateInstructorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	instructor, err := ctl.Users.Create(actor, instructorService.CreateInstructorInput{
		Username:    req.Username,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Password:    req.Password,
		Role:        req.Role,
	})
	if err != nil {
		return helper.FromServiceError(err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Instructor created",
		instructorDTO.NewInstructorResponse(instructor))
}

// GET /api/admin/instructors?page=&per_page=&order=
func (ctl *AdminUserController) List(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, "desc", helper.AdminOpts)

	var total int64
	if err := ctl.DB.Model(&instructorModel.InstructorModel{}).Count(&total).Error; err != nil {
		return err
	}

	var instructors []instructorModel.InstructorModel
	if err := ctl.DB.
		Order("instructor_created_at " + p.SortOrder).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&instructors).Error; err != nil {
		return err
	}

	out := make([]*instructorDTO.InstructorResponse, 0, len(instructors))
	for i := range instructors {
		out = append(out, instructorDTO.NewInstructorResponse(&instructors[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"instructors": out,
		"pagination":  helper.BuildPaginationMeta(p, total),
	})
}

// POST /api/admin/instructors/:id/deactivate
func (ctl *AdminUserController) Deactivate(c *fiber.Ctx) error {
	actor, err := ctl.actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := ctl.Users.Deactivate(actor, id); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Instructor deactivated", fiber.Map{"instructor_id": id})
}

// POST /api/admin/instructors/:id/reactivate
func (ctl *AdminUserController) Reactivate(c *fiber.Ctx) error {
	actor, err := ctl.actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := ctl.Users.Reactivate(actor, id); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Instructor reactivated", fiber.Map{"instructor_id": id})
}

// GET /api/admin/audit-logs?page=&per_page=
func (ctl *AdminUserController) ListAuditLogs(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, "desc", helper.AdminOpts)

	var total int64
	if err := ctl.DB.Model(&instructorModel.AuditLogModel{}).Count(&total).Error; err != nil {
		return err
	}

	var logs []instructorModel.AuditLogModel
	if err := ctl.DB.
		Order("audit_log_created_at " + p.SortOrder).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&logs).Error; err != nil {
		return err
	}

	return helper.Success(c, "OK", fiber.Map{
		"audit_logs": logs,
		"pagination": helper.BuildPaginationMeta(p, total),
	})
}

func (ctl *AdminUserController) actor(c *fiber.Ctx) (*instructorModel.InstructorModel, error) {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return nil, err
	}
	var actor instructorModel.InstructorModel
	if err := ctl.DB.First(&actor, "instructor_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Account not found")
		}
		return nil, err
	}
	return &actor, nil
}

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	return uint(id), nil
}
