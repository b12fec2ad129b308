// internals/features/questions/controller/question_list_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	classService "raisemyhand_backend/internals/features/classes/service"
	qDTO "raisemyhand_backend/internals/features/questions/dto"
	qModel "raisemyhand_backend/internals/features/questions/model"
	helper "raisemyhand_backend/internals/helpers"
)

// ListStudent: GET /api/meetings/:meeting_code/questions
// Approved questions only, censored text, published answers only.
func (h *QuestionController) ListStudent(c *fiber.Ctx) error {
	meetings := classService.NewMeetingService(h.DB)
	meeting, err := meetings.GetByCode(c.Params("meeting_code"))
	if err != nil {
		return helper.FromServiceError(err)
	}

	questions, err := h.Questions.StudentQuestions(meeting.MeetingID)
	if err != nil {
		return err
	}
	answers, err := h.Questions.PublishedAnswers(questionIDs(questions))
	if err != nil {
		return err
	}

	out := make([]*qDTO.QuestionResponse, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		out = append(out, qDTO.NewQuestionResponse(q, answerFor(answers, q.QuestionID)))
	}
	return helper.Success(c, "OK", out)
}

// ListInstructor: GET /api/instructor/meetings/:instructor_code/questions
// Everything, including pending/flagged/rejected, raw text and draft
// answers.
func (h *QuestionController) ListInstructor(c *fiber.Ctx) error {
	meetings := classService.NewMeetingService(h.DB)
	meeting, err := meetings.GetByInstructorCode(c.Params("instructor_code"))
	if err != nil {
		return helper.FromServiceError(err)
	}

	questions, err := h.Questions.InstructorQuestions(meeting.MeetingID)
	if err != nil {
		return err
	}
	answers, err := h.Questions.AllAnswers(questionIDs(questions))
	if err != nil {
		return err
	}

	out := make([]*qDTO.InstructorQuestionResponse, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		out = append(out, qDTO.NewInstructorQuestionResponse(q, answerFor(answers, q.QuestionID)))
	}
	return helper.Success(c, "OK", out)
}

func questionIDs(questions []qModel.QuestionModel) []uint {
	ids := make([]uint, 0, len(questions))
	for i := range questions {
		ids = append(ids, questions[i].QuestionID)
	}
	return ids
}

func answerFor(answers map[uint]qModel.AnswerModel, questionID uint) *qModel.AnswerModel {
	if a, ok := answers[questionID]; ok {
		return &a
	}
	return nil
}
