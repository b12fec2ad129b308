// internals/features/classes/controller/class_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classDTO "raisemyhand_backend/internals/features/classes/dto"
	classModel "raisemyhand_backend/internals/features/classes/model"
	helper "raisemyhand_backend/internals/helpers"
)

var validate = validator.New()

// ClassController manages course containers. Every handler here runs
// behind API-key auth, so the instructor identity comes from locals.
type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

// POST /api/classes
func (ctl *ClassController) Create(c *fiber.Ctx) error {
	instructorID, err := helper.GetInstructorID(c)
	if err != nil {
		return err
	}

	var req classDTO.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	class := req.ToModel(instructorID)
	if err := ctl.DB.Create(class).Error; err != nil {
		return err
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Class created", classDTO.NewClassResponse(class))
}

// GET /api/classes?include_archived=true
func (ctl *ClassController) List(c *fiber.Ctx) error {
	instructorID, err := helper.GetInstructorID(c)
	if err != nil {
		return err
	}

	q := ctl.DB.Where("class_instructor_id = ?", instructorID)
	if c.Query("include_archived") != "true" {
		q = q.Where("class_is_archived = ?", false)
	}

	var classes []classModel.ClassModel
	if err := q.Order("class_created_at DESC").Find(&classes).Error; err != nil {
		return err
	}

	out := make([]*classDTO.ClassResponse, 0, len(classes))
	for i := range classes {
		out = append(out, classDTO.NewClassResponse(&classes[i]))
	}
	return helper.Success(c, "OK", out)
}

// GET /api/classes/:id
func (ctl *ClassController) Get(c *fiber.Ctx) error {
	class, err := ctl.ownedClass(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", classDTO.NewClassResponse(class))
}

// PATCH /api/classes/:id
func (ctl *ClassController) Update(c *fiber.Ctx) error {
	class, err := ctl.ownedClass(c)
	if err != nil {
		return err
	}

	var req classDTO.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(class)
	if err := ctl.DB.Save(class).Error; err != nil {
		return err
	}
	return helper.Success(c, "Class updated", classDTO.NewClassResponse(class))
}

// POST /api/classes/:id/archive
func (ctl *ClassController) Archive(c *fiber.Ctx) error {
	return ctl.setArchived(c, true, "Class archived")
}

// POST /api/classes/:id/unarchive
func (ctl *ClassController) Unarchive(c *fiber.Ctx) error {
	return ctl.setArchived(c, false, "Class restored")
}

func (ctl *ClassController) setArchived(c *fiber.Ctx, archived bool, msg string) error {
	class, err := ctl.ownedClass(c)
	if err != nil {
		return err
	}
	if class.ClassIsArchived == archived {
		return fiber.NewError(fiber.StatusConflict, "Class is already in that state")
	}

	class.ClassIsArchived = archived
	if err := ctl.DB.Model(class).
		Update("class_is_archived", archived).Error; err != nil {
		return err
	}
	return helper.Success(c, msg, classDTO.NewClassResponse(class))
}

// ownedClass loads the :id class and enforces ownership. Classes owned
// by other instructors read as 404, not 403, so ids don't leak.
func (ctl *ClassController) ownedClass(c *fiber.Ctx) (*classModel.ClassModel, error) {
	instructorID, err := helper.GetInstructorID(c)
	if err != nil {
		return nil, err
	}
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid class id")
	}

	var class classModel.ClassModel
	if err := ctl.DB.
		Where("class_id = ? AND class_instructor_id = ?", id, instructorID).
		First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return nil, err
	}
	return &class, nil
}
