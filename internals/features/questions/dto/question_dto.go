// internals/features/questions/dto/question_dto.go
package dto

import (
	"time"

	qModel "raisemyhand_backend/internals/features/questions/model"
)

/* ===================== REQUESTS ===================== */

type CreateQuestionRequest struct {
	Text      string `json:"text" validate:"required,min=1,max=500"`
	StudentID string `json:"student_id" validate:"omitempty,uuid4"`
}

type ToggleVoteRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid4"`
}

type UpdateQuestionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved flagged rejected"`
}

/* ===================== RESPONSES ===================== */

// QuestionResponse is the student-facing shape: censored text, no
// submitter identity, answer only when published.
type QuestionResponse struct {
	QuestionID        uint            `json:"question_id"`
	QuestionNumber    int             `json:"question_number"`
	Text              string          `json:"text"`
	Upvotes           int             `json:"upvotes"`
	Status            string          `json:"status"`
	IsAnsweredInClass bool            `json:"is_answered_in_class"`
	HasWrittenAnswer  bool            `json:"has_written_answer"`
	CreatedAt         time.Time       `json:"created_at"`
	Answer            *AnswerResponse `json:"answer,omitempty"`
}

// NewQuestionResponse renders the student view. Approved questions show
// the sanitized text (identical to raw for clean submissions).
func NewQuestionResponse(m *qModel.QuestionModel, answer *qModel.AnswerModel) *QuestionResponse {
	text := m.QuestionText
	if m.QuestionSanitizedText != nil {
		text = *m.QuestionSanitizedText
	}
	resp := &QuestionResponse{
		QuestionID:        m.QuestionID,
		QuestionNumber:    m.QuestionNumber,
		Text:              text,
		Upvotes:           m.QuestionUpvotes,
		Status:            string(m.QuestionStatus),
		IsAnsweredInClass: m.QuestionIsAnsweredInClass,
		HasWrittenAnswer:  m.QuestionHasWrittenAnswer,
		CreatedAt:         m.QuestionCreatedAt,
	}
	if answer != nil {
		resp.Answer = NewAnswerResponse(answer)
	}
	return resp
}

// InstructorQuestionResponse exposes the raw text, the flag reason and
// the anonymous submitter id for moderation.
type InstructorQuestionResponse struct {
	QuestionResponse
	RawText       string     `json:"raw_text"`
	StudentID     string     `json:"student_id"`
	FlaggedReason *string    `json:"flagged_reason,omitempty"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty"`
}

func NewInstructorQuestionResponse(m *qModel.QuestionModel, answer *qModel.AnswerModel) *InstructorQuestionResponse {
	return &InstructorQuestionResponse{
		QuestionResponse: *NewQuestionResponse(m, answer),
		RawText:          m.QuestionText,
		StudentID:        m.QuestionStudentID,
		FlaggedReason:    m.QuestionFlaggedReason,
		ReviewedAt:       m.QuestionReviewedAt,
	}
}
