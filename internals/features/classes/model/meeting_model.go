// internals/features/classes/model/meeting_model.go
package model

import "time"

// MeetingModel is one live Q&A instance. meeting_code is the public
// student-facing identifier, meeting_instructor_code the private
// management identifier; both are random, unique and never reused.
//
// Lifecycle: created (active by default) → ended → optionally restarted
// with the same codes. While ended, question/vote writes are rejected.
type MeetingModel struct {
	// PK
	MeetingID uint `gorm:"primaryKey;column:meeting_id" json:"meeting_id"`

	// Parents
	MeetingClassID  uint       `gorm:"not null;index:ix_meetings_class_active;column:meeting_class_id" json:"meeting_class_id"`
	Class           *ClassModel `gorm:"foreignKey:MeetingClassID;references:ClassID;constraint:OnDelete:CASCADE" json:"-"`
	MeetingAPIKeyID *uint      `gorm:"index;column:meeting_api_key_id" json:"meeting_api_key_id,omitempty"`

	// Codes
	MeetingCode           string `gorm:"type:varchar(40);unique;not null;column:meeting_code" json:"meeting_code"`
	MeetingInstructorCode string `gorm:"type:varchar(40);unique;not null;column:meeting_instructor_code" json:"-"`

	MeetingTitle        string  `gorm:"type:varchar(200);not null;column:meeting_title" json:"meeting_title"`
	MeetingPasswordHash *string `gorm:"column:meeting_password_hash" json:"-"`

	// Lifecycle
	MeetingIsActive  bool       `gorm:"not null;default:true;index:ix_meetings_class_active;column:meeting_is_active" json:"meeting_is_active"`
	MeetingCreatedAt time.Time  `gorm:"autoCreateTime;column:meeting_created_at" json:"meeting_created_at"`
	MeetingStartedAt *time.Time `gorm:"column:meeting_started_at" json:"meeting_started_at,omitempty"`
	MeetingEndedAt   *time.Time `gorm:"column:meeting_ended_at" json:"meeting_ended_at,omitempty"`
}

func (MeetingModel) TableName() string { return "class_meetings" }
