// internals/features/classes/dto/meeting_dto.go
package dto

import (
	"time"

	classModel "raisemyhand_backend/internals/features/classes/model"
)

/* ===================== REQUESTS ===================== */

type CreateMeetingRequest struct {
	Title    string `json:"title" validate:"required,min=2,max=200"`
	Password string `json:"password" validate:"omitempty,min=4,max=128"`
}

/* ===================== RESPONSES ===================== */

// MeetingResponse is the student-facing shape: the instructor code never
// leaves the management surface.
type MeetingResponse struct {
	MeetingID   uint       `json:"meeting_id"`
	MeetingCode string     `json:"meeting_code"`
	Title       string     `json:"title"`
	IsActive    bool       `json:"is_active"`
	HasPassword bool       `json:"has_password"`
	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
}

func NewMeetingResponse(m *classModel.MeetingModel) *MeetingResponse {
	return &MeetingResponse{
		MeetingID:   m.MeetingID,
		MeetingCode: m.MeetingCode,
		Title:       m.MeetingTitle,
		IsActive:    m.MeetingIsActive,
		HasPassword: m.MeetingPasswordHash != nil,
		CreatedAt:   m.MeetingCreatedAt,
		StartedAt:   m.MeetingStartedAt,
		EndedAt:     m.MeetingEndedAt,
	}
}

// InstructorMeetingResponse adds the private management code.
type InstructorMeetingResponse struct {
	MeetingResponse
	InstructorCode string `json:"instructor_code"`
	ClassID        uint   `json:"class_id"`
}

func NewInstructorMeetingResponse(m *classModel.MeetingModel) *InstructorMeetingResponse {
	return &InstructorMeetingResponse{
		MeetingResponse: *NewMeetingResponse(m),
		InstructorCode:  m.MeetingInstructorCode,
		ClassID:         m.MeetingClassID,
	}
}
