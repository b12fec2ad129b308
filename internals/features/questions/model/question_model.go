// internals/features/questions/model/question_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"

	classModel "raisemyhand_backend/internals/features/classes/model"
)

/*
Moderation status (stored lower-case):
- "pending"
- "approved"
- "flagged"
- "rejected"
*/
type QuestionStatus string

const (
	QuestionStatusPending  QuestionStatus = "pending"
	QuestionStatusApproved QuestionStatus = "approved"
	QuestionStatusFlagged  QuestionStatus = "flagged"
	QuestionStatusRejected QuestionStatus = "rejected"
)

func (s *QuestionStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = QuestionStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = QuestionStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	default:
		*s = QuestionStatus(strings.ToLower(strings.TrimSpace(v.(string))))
	}
	return nil
}
func (s QuestionStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

// QuestionModel holds the raw submitted text plus a censored rendering.
// question_upvotes is denormalized: the vote service is the only writer,
// and (question_id, student_id) uniqueness on votes is the source of truth.
type QuestionModel struct {
	// PK
	QuestionID uint `gorm:"primaryKey;column:question_id" json:"question_id"`

	// Parent
	QuestionMeetingID uint                     `gorm:"not null;uniqueIndex:uq_meeting_question_number;index:ix_questions_meeting_status;column:question_meeting_id" json:"question_meeting_id"`
	Meeting           *classModel.MeetingModel `gorm:"foreignKey:QuestionMeetingID;references:MeetingID;constraint:OnDelete:CASCADE" json:"-"`

	// Anonymous submitter (client-generated UUID, not authenticated)
	QuestionStudentID string `gorm:"type:varchar(40);not null;index;column:question_student_id" json:"-"`

	// Permanent display number (Q1, Q2, ...), monotonic per meeting
	QuestionNumber int `gorm:"not null;uniqueIndex:uq_meeting_question_number;column:question_number" json:"question_number"`

	QuestionText          string  `gorm:"type:text;not null;column:question_text" json:"question_text"`
	QuestionSanitizedText *string `gorm:"type:text;column:question_sanitized_text" json:"question_sanitized_text,omitempty"`

	QuestionUpvotes int `gorm:"not null;default:0;index;column:question_upvotes" json:"question_upvotes"`

	// Moderation
	QuestionStatus        QuestionStatus `gorm:"type:varchar(12);not null;default:'approved';index:ix_questions_meeting_status;column:question_status" json:"question_status"`
	QuestionFlaggedReason *string        `gorm:"type:varchar(40);column:question_flagged_reason" json:"question_flagged_reason,omitempty"`
	QuestionReviewedAt    *time.Time     `gorm:"column:question_reviewed_at" json:"question_reviewed_at,omitempty"`

	// Two independent "addressed" signals, exposed separately
	QuestionIsAnsweredInClass bool `gorm:"not null;default:false;column:question_is_answered_in_class" json:"question_is_answered_in_class"`
	QuestionHasWrittenAnswer  bool `gorm:"not null;default:false;column:question_has_written_answer" json:"question_has_written_answer"`

	QuestionCreatedAt time.Time `gorm:"autoCreateTime;index;column:question_created_at" json:"question_created_at"`
}

func (QuestionModel) TableName() string { return "questions" }
