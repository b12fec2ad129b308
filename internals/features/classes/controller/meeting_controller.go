// internals/features/classes/controller/meeting_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classDTO "raisemyhand_backend/internals/features/classes/dto"
	classModel "raisemyhand_backend/internals/features/classes/model"
	classService "raisemyhand_backend/internals/features/classes/service"
	"raisemyhand_backend/internals/features/realtime/hub"
	helper "raisemyhand_backend/internals/helpers"
)

// MeetingController exposes the session lifecycle. The student surface
// keys on meeting_code, the management surface on the private
// instructor code. The two capabilities are never mixed in one response.
type MeetingController struct {
	DB       *gorm.DB
	Hub      *hub.Hub
	Meetings *classService.MeetingService
	Classes  *ClassController
}

func NewMeetingController(db *gorm.DB, h *hub.Hub) *MeetingController {
	return &MeetingController{
		DB:       db,
		Hub:      h,
		Meetings: classService.NewMeetingService(db),
		Classes:  NewClassController(db),
	}
}

/* ===================== MANAGEMENT (API key) ===================== */

// POST /api/classes/:id/meetings
func (ctl *MeetingController) Create(c *fiber.Ctx) error {
	class, err := ctl.Classes.ownedClass(c)
	if err != nil {
		return err
	}
	if class.ClassIsArchived {
		return fiber.NewError(fiber.StatusConflict, "Class is archived")
	}

	var req classDTO.CreateMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var apiKeyID *uint
	if v, ok := c.Locals(helper.LocAPIKeyID).(uint); ok && v != 0 {
		apiKeyID = &v
	}

	meeting, err := ctl.Meetings.Create(classService.CreateMeetingInput{
		ClassID:  class.ClassID,
		APIKeyID: apiKeyID,
		Title:    req.Title,
		Password: req.Password,
	})
	if err != nil {
		return helper.FromServiceError(err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Meeting created",
		classDTO.NewInstructorMeetingResponse(meeting))
}

// GET /api/classes/:id/meetings
func (ctl *MeetingController) ListForClass(c *fiber.Ctx) error {
	class, err := ctl.Classes.ownedClass(c)
	if err != nil {
		return err
	}

	var meetings []classModel.MeetingModel
	if err := ctl.DB.
		Where("meeting_class_id = ?", class.ClassID).
		Order("meeting_created_at DESC").
		Find(&meetings).Error; err != nil {
		return err
	}

	out := make([]*classDTO.InstructorMeetingResponse, 0, len(meetings))
	for i := range meetings {
		out = append(out, classDTO.NewInstructorMeetingResponse(&meetings[i]))
	}
	return helper.Success(c, "OK", out)
}

/* ===================== INSTRUCTOR CODE SURFACE ===================== */

// GET /api/instructor/meetings/:instructor_code
func (ctl *MeetingController) GetByInstructorCode(c *fiber.Ctx) error {
	meeting, err := ctl.Meetings.GetByInstructorCode(c.Params("instructor_code"))
	if err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "OK", classDTO.NewInstructorMeetingResponse(meeting))
}

// POST /api/instructor/meetings/:instructor_code/end
func (ctl *MeetingController) End(c *fiber.Ctx) error {
	meeting, err := ctl.Meetings.End(c.Params("instructor_code"))
	if err != nil {
		return helper.FromServiceError(err)
	}

	ctl.Hub.Publish(meeting.MeetingCode, fiber.Map{
		"type":         hub.EventSessionEnded,
		"meeting_code": meeting.MeetingCode,
	})

	return helper.Success(c, "Meeting ended", classDTO.NewInstructorMeetingResponse(meeting))
}

// POST /api/instructor/meetings/:instructor_code/restart
func (ctl *MeetingController) Restart(c *fiber.Ctx) error {
	meeting, err := ctl.Meetings.Restart(c.Params("instructor_code"))
	if err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Meeting restarted", classDTO.NewInstructorMeetingResponse(meeting))
}

/* ===================== STUDENT SURFACE ===================== */

// GET /api/meetings/:meeting_code?password=...
// Password-protected meetings reject joins without the right password;
// the meeting stays discoverable so the client can prompt for it.
func (ctl *MeetingController) GetByCode(c *fiber.Ctx) error {
	meeting, err := ctl.Meetings.GetByCode(c.Params("meeting_code"))
	if err != nil {
		return helper.FromServiceError(err)
	}

	if meeting.MeetingPasswordHash != nil && c.Query("password") != "" {
		if err := ctl.Meetings.VerifyPassword(meeting, c.Query("password")); err != nil {
			return helper.FromServiceError(err)
		}
	}

	return helper.Success(c, "OK", classDTO.NewMeetingResponse(meeting))
}

// POST /api/meetings/:meeting_code/verify-password
func (ctl *MeetingController) VerifyPassword(c *fiber.Ctx) error {
	meeting, err := ctl.Meetings.GetByCode(c.Params("meeting_code"))
	if err != nil {
		return helper.FromServiceError(err)
	}

	var req struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	if err := ctl.Meetings.VerifyPassword(meeting, req.Password); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Password accepted", fiber.Map{"meeting_code": meeting.MeetingCode})
}
