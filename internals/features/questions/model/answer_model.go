// internals/features/questions/model/answer_model.go
package model

import "time"

// AnswerModel is the at-most-one written answer per question. Text is
// stored as raw markdown; rendering happens client-side. answer_is_approved
// gates student visibility.
type AnswerModel struct {
	// PK
	AnswerID uint `gorm:"primaryKey;column:answer_id" json:"answer_id"`

	AnswerQuestionID uint           `gorm:"not null;uniqueIndex;column:answer_question_id" json:"answer_question_id"`
	Question         *QuestionModel `gorm:"foreignKey:AnswerQuestionID;references:QuestionID;constraint:OnDelete:CASCADE" json:"-"`

	AnswerInstructorID uint `gorm:"not null;index:ix_answers_instructor_approved;column:answer_instructor_id" json:"answer_instructor_id"`

	AnswerText       string `gorm:"type:text;not null;column:answer_text" json:"answer_text"`
	AnswerIsApproved bool   `gorm:"not null;default:false;index:ix_answers_instructor_approved;column:answer_is_approved" json:"answer_is_approved"`

	AnswerCreatedAt time.Time `gorm:"autoCreateTime;column:answer_created_at" json:"answer_created_at"`
	AnswerUpdatedAt time.Time `gorm:"autoUpdateTime;column:answer_updated_at" json:"answer_updated_at"`
}

func (AnswerModel) TableName() string { return "answers" }
