// internals/features/questions/dto/answer_dto.go
package dto

import (
	"time"

	qModel "raisemyhand_backend/internals/features/questions/model"
)

type UpsertAnswerRequest struct {
	Text string `json:"text" validate:"required,min=1,max=10000"`
}

type PublishAnswerRequest struct {
	Published bool `json:"published"`
}

type AnswerResponse struct {
	AnswerID    uint      `json:"answer_id"`
	QuestionID  uint      `json:"question_id"`
	Text        string    `json:"text"` // raw markdown; rendered client-side
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewAnswerResponse(m *qModel.AnswerModel) *AnswerResponse {
	return &AnswerResponse{
		AnswerID:    m.AnswerID,
		QuestionID:  m.AnswerQuestionID,
		Text:        m.AnswerText,
		IsPublished: m.AnswerIsApproved,
		CreatedAt:   m.AnswerCreatedAt,
		UpdatedAt:   m.AnswerUpdatedAt,
	}
}
