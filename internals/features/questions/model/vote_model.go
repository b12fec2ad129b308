// internals/features/questions/model/vote_model.go
package model

import "time"

// VoteModel is the (question, student) join row. The unique pair
// constraint is what makes the toggle race-safe; the counter on the
// question is derived from these rows.
type VoteModel struct {
	// PK
	VoteID uint `gorm:"primaryKey;column:vote_id" json:"vote_id"`

	VoteQuestionID uint           `gorm:"not null;uniqueIndex:uq_question_student_vote;column:vote_question_id" json:"vote_question_id"`
	Question       *QuestionModel `gorm:"foreignKey:VoteQuestionID;references:QuestionID;constraint:OnDelete:CASCADE" json:"-"`

	VoteStudentID string `gorm:"type:varchar(40);not null;uniqueIndex:uq_question_student_vote;index;column:vote_student_id" json:"vote_student_id"`

	VoteCreatedAt time.Time `gorm:"autoCreateTime;index;column:vote_created_at" json:"vote_created_at"`
}

func (VoteModel) TableName() string { return "question_votes" }
