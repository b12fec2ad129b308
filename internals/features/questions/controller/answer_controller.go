// internals/features/questions/controller/answer_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classModel "raisemyhand_backend/internals/features/classes/model"
	qDTO "raisemyhand_backend/internals/features/questions/dto"
	qModel "raisemyhand_backend/internals/features/questions/model"
	qService "raisemyhand_backend/internals/features/questions/service"
	"raisemyhand_backend/internals/features/realtime/hub"
	helper "raisemyhand_backend/internals/helpers"
)

type AnswerController struct {
	DB      *gorm.DB
	Hub     *hub.Hub
	Answers *qService.AnswerService
}

func NewAnswerController(db *gorm.DB, h *hub.Hub) *AnswerController {
	return &AnswerController{DB: db, Hub: h, Answers: qService.NewAnswerService(db)}
}

// PUT /api/questions/:id/answer: create or overwrite the written answer
func (h *AnswerController) Upsert(c *fiber.Ctx) error {
	questionID, err := parseID(c)
	if err != nil {
		return err
	}
	instructorID, err := helper.GetInstructorID(c)
	if err != nil {
		return err
	}

	var req qDTO.UpsertAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	answer, err := h.Answers.Upsert(questionID, instructorID, req.Text)
	if err != nil {
		return helper.FromServiceError(err)
	}

	return helper.Success(c, "Answer saved", qDTO.NewAnswerResponse(answer))
}

// POST /api/questions/:id/answer/publish: gate student visibility
func (h *AnswerController) SetPublished(c *fiber.Ctx) error {
	questionID, err := parseID(c)
	if err != nil {
		return err
	}

	var req qDTO.PublishAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	answer, err := h.Answers.SetPublished(questionID, req.Published)
	if err != nil {
		return helper.FromServiceError(err)
	}

	var question qModel.QuestionModel
	if err := h.DB.First(&question, "question_id = ?", questionID).Error; err == nil {
		h.Hub.Publish(h.meetingCode(&question), fiber.Map{
			"type":               hub.EventQuestionAnswered,
			"question_id":        questionID,
			"is_answered":        question.QuestionIsAnsweredInClass,
			"has_written_answer": question.QuestionHasWrittenAnswer,
			"answer_published":   answer.AnswerIsApproved,
		})
	}

	return helper.Success(c, "Answer visibility updated", qDTO.NewAnswerResponse(answer))
}

// DELETE /api/questions/:id/answer
func (h *AnswerController) Delete(c *fiber.Ctx) error {
	questionID, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.Answers.Delete(questionID); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Answer deleted", fiber.Map{"question_id": questionID})
}

func (h *AnswerController) meetingCode(q *qModel.QuestionModel) string {
	var meeting classModel.MeetingModel
	if err := h.DB.Select("meeting_code").
		First(&meeting, "meeting_id = ?", q.QuestionMeetingID).Error; err != nil {
		return ""
	}
	return meeting.MeetingCode
}
