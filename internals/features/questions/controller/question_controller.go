// internals/features/questions/controller/question_controller.go
package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classModel "raisemyhand_backend/internals/features/classes/model"
	qDTO "raisemyhand_backend/internals/features/questions/dto"
	qModel "raisemyhand_backend/internals/features/questions/model"
	qService "raisemyhand_backend/internals/features/questions/service"
	"raisemyhand_backend/internals/features/realtime/hub"
	helper "raisemyhand_backend/internals/helpers"
)

var validate = validator.New()

type QuestionController struct {
	DB         *gorm.DB
	Hub        *hub.Hub
	Questions  *qService.QuestionService
	Votes      *qService.VoteService
	Moderation *qService.ModerationService
}

func NewQuestionController(db *gorm.DB, h *hub.Hub) *QuestionController {
	return &QuestionController{
		DB:         db,
		Hub:        h,
		Questions:  qService.NewQuestionService(db),
		Votes:      qService.NewVoteService(db),
		Moderation: qService.NewModerationService(db),
	}
}

/* ===================== STUDENT HANDLERS ===================== */

// POST /api/meetings/:meeting_code/questions
func (h *QuestionController) Create(c *fiber.Ctx) error {
	meetingCode := c.Params("meeting_code")

	var req qDTO.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	question, err := h.Questions.Submit(meetingCode, req.Text, req.StudentID)
	if err != nil {
		return helper.FromServiceError(err)
	}

	// flagged questions stay invisible to everyone, submitter included,
	// until an instructor acts; the acknowledgement carries no text
	if question.QuestionStatus != qModel.QuestionStatusApproved {
		return helper.SuccessWithCode(c, fiber.StatusCreated, "Question held for review",
			fiber.Map{
				"question_id":     question.QuestionID,
				"question_number": question.QuestionNumber,
				"student_id":      question.QuestionStudentID,
			})
	}

	h.Hub.Publish(meetingCode, fiber.Map{
		"type":     hub.EventNewQuestion,
		"question": qDTO.NewQuestionResponse(question, nil),
	})

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Question submitted",
		qDTO.NewQuestionResponse(question, nil))
}

// POST /api/questions/:id/vote
func (h *QuestionController) ToggleVote(c *fiber.Ctx) error {
	questionID, err := parseID(c)
	if err != nil {
		return err
	}

	var req qDTO.ToggleVoteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := h.Votes.ToggleVote(questionID, req.StudentID)
	if err != nil {
		return helper.FromServiceError(err)
	}

	h.Hub.Publish(result.MeetingCode, fiber.Map{
		"type":        hub.EventVoteUpdate,
		"question_id": questionID,
		"upvotes":     result.Upvotes,
	})

	return helper.Success(c, "Vote updated", fiber.Map{
		"upvotes": result.Upvotes,
		"voted":   result.Voted,
	})
}

/* ===================== INSTRUCTOR HANDLERS (API key) ===================== */

// POST /api/questions/:id/toggle-answered: flips the answered-in-class flag
func (h *QuestionController) ToggleAnsweredInClass(c *fiber.Ctx) error {
	questionID, err := parseID(c)
	if err != nil {
		return err
	}

	question, err := h.Questions.ToggleAnsweredInClass(questionID)
	if err != nil {
		return helper.FromServiceError(err)
	}

	h.Hub.Publish(h.meetingCodeOf(question), fiber.Map{
		"type":               hub.EventQuestionAnswered,
		"question_id":        question.QuestionID,
		"is_answered":        question.QuestionIsAnsweredInClass,
		"has_written_answer": question.QuestionHasWrittenAnswer,
	})

	return helper.Success(c, "Question updated", fiber.Map{
		"is_answered_in_class": question.QuestionIsAnsweredInClass,
	})
}

// POST /api/questions/:id/approve
func (h *QuestionController) Approve(c *fiber.Ctx) error {
	return h.review(c, true)
}

// POST /api/questions/:id/reject
func (h *QuestionController) Reject(c *fiber.Ctx) error {
	return h.review(c, false)
}

// PATCH /api/questions/:id/status: generic moderation transition
func (h *QuestionController) UpdateStatus(c *fiber.Ctx) error {
	questionID, err := parseID(c)
	if err != nil {
		return err
	}

	var req qDTO.UpdateQuestionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	question, err := h.Moderation.SetStatus(questionID, qModel.QuestionStatus(req.Status))
	if err != nil {
		return helper.FromServiceError(err)
	}

	h.Hub.Publish(h.meetingCodeOf(question), fiber.Map{
		"type":        hub.EventQuestionStatusChanged,
		"question_id": question.QuestionID,
		"status":      string(question.QuestionStatus),
	})

	return helper.Success(c, "Question status updated",
		qDTO.NewInstructorQuestionResponse(question, nil))
}

func (h *QuestionController) review(c *fiber.Ctx, approve bool) error {
	questionID, err := parseID(c)
	if err != nil {
		return err
	}

	var question *qModel.QuestionModel
	if approve {
		question, err = h.Moderation.Approve(questionID)
	} else {
		question, err = h.Moderation.Reject(questionID)
	}
	if err != nil {
		return helper.FromServiceError(err)
	}

	meetingCode := h.meetingCodeOf(question)
	h.Hub.Publish(meetingCode, fiber.Map{
		"type":        hub.EventQuestionStatusChanged,
		"question_id": question.QuestionID,
		"status":      string(question.QuestionStatus),
	})
	if approve {
		// the censored rendering becomes visible now
		h.Hub.Publish(meetingCode, fiber.Map{
			"type":     hub.EventNewQuestion,
			"question": qDTO.NewQuestionResponse(question, nil),
		})
	}

	return helper.Success(c, "Question reviewed",
		qDTO.NewInstructorQuestionResponse(question, nil))
}

/* ===================== INTERNAL ===================== */

func (h *QuestionController) meetingCodeOf(q *qModel.QuestionModel) string {
	var meeting classModel.MeetingModel
	if err := h.DB.Select("meeting_code").
		First(&meeting, "meeting_id = ?", q.QuestionMeetingID).Error; err != nil {
		return ""
	}
	return meeting.MeetingCode
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid question ID")
	}
	return uint(id), nil
}
