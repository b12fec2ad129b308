// internals/features/classes/service/meeting_service.go
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	classModel "raisemyhand_backend/internals/features/classes/model"
	helper "raisemyhand_backend/internals/helpers"
)

const meetingCodeLen = 32

// MeetingService owns the session lifecycle:
// created (active) → ended → optionally restarted with the same codes.
// Questions and votes accumulate across restarts; nothing is archived on
// end.
type MeetingService struct {
	DB *gorm.DB
}

func NewMeetingService(db *gorm.DB) *MeetingService {
	return &MeetingService{DB: db}
}

type CreateMeetingInput struct {
	ClassID  uint
	APIKeyID *uint
	Title    string
	Password string // optional session password, bcrypt-hashed when set
}

func (s *MeetingService) Create(in CreateMeetingInput) (*classModel.MeetingModel, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("meeting title is required: %w", helper.ErrValidation)
	}

	var passwordHash *string
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		passwordHash = &h
	}

	now := time.Now().UTC()
	meeting := classModel.MeetingModel{
		MeetingClassID:        in.ClassID,
		MeetingAPIKeyID:       in.APIKeyID,
		MeetingCode:           helper.GenerateCode(meetingCodeLen),
		MeetingInstructorCode: helper.GenerateCode(meetingCodeLen),
		MeetingTitle:          title,
		MeetingPasswordHash:   passwordHash,
		MeetingIsActive:       true,
		MeetingStartedAt:      &now,
	}

	// code collision is astronomically unlikely but the unique columns
	// make it loud; retry once with fresh codes
	for attempt := 0; attempt < 2; attempt++ {
		err := s.DB.Create(&meeting).Error
		if err == nil {
			return &meeting, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		meeting.MeetingID = 0
		meeting.MeetingCode = helper.GenerateCode(meetingCodeLen)
		meeting.MeetingInstructorCode = helper.GenerateCode(meetingCodeLen)
	}
	return nil, fmt.Errorf("meeting code collision: %w", helper.ErrConflict)
}

// GetByCode resolves the public student-facing code.
func (s *MeetingService) GetByCode(meetingCode string) (*classModel.MeetingModel, error) {
	return s.getBy("meeting_code = ?", meetingCode)
}

// GetByInstructorCode resolves the private management code.
func (s *MeetingService) GetByInstructorCode(instructorCode string) (*classModel.MeetingModel, error) {
	return s.getBy("meeting_instructor_code = ?", instructorCode)
}

func (s *MeetingService) getBy(query string, arg string) (*classModel.MeetingModel, error) {
	var meeting classModel.MeetingModel
	if err := s.DB.Where(query, arg).First(&meeting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("meeting: %w", helper.ErrNotFound)
		}
		return nil, err
	}
	return &meeting, nil
}

// End stamps ended_at and closes the gate: all subsequent question/vote
// writes against this meeting are rejected until restarted.
func (s *MeetingService) End(instructorCode string) (*classModel.MeetingModel, error) {
	meeting, err := s.GetByInstructorCode(instructorCode)
	if err != nil {
		return nil, err
	}
	if !meeting.MeetingIsActive {
		return nil, fmt.Errorf("meeting already ended: %w", helper.ErrConflict)
	}

	now := time.Now().UTC()
	meeting.MeetingIsActive = false
	meeting.MeetingEndedAt = &now

	if err := s.DB.Model(&classModel.MeetingModel{}).
		Where("meeting_id = ?", meeting.MeetingID).
		Updates(map[string]any{
			"meeting_is_active": false,
			"meeting_ended_at":  now,
		}).Error; err != nil {
		return nil, err
	}
	return meeting, nil
}

// Restart reopens an ended meeting under the same codes. Questions,
// votes and numbering carry over untouched.
func (s *MeetingService) Restart(instructorCode string) (*classModel.MeetingModel, error) {
	meeting, err := s.GetByInstructorCode(instructorCode)
	if err != nil {
		return nil, err
	}
	if meeting.MeetingIsActive {
		return nil, fmt.Errorf("meeting is already active: %w", helper.ErrConflict)
	}

	now := time.Now().UTC()
	meeting.MeetingIsActive = true
	meeting.MeetingEndedAt = nil
	meeting.MeetingStartedAt = &now

	if err := s.DB.Model(&classModel.MeetingModel{}).
		Where("meeting_id = ?", meeting.MeetingID).
		Updates(map[string]any{
			"meeting_is_active":  true,
			"meeting_ended_at":   nil,
			"meeting_started_at": now,
		}).Error; err != nil {
		return nil, err
	}
	return meeting, nil
}

// VerifyPassword checks an optional session password. Meetings without a
// password admit everyone.
func (s *MeetingService) VerifyPassword(meeting *classModel.MeetingModel, password string) error {
	if meeting.MeetingPasswordHash == nil {
		return nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*meeting.MeetingPasswordHash), []byte(password)); err != nil {
		return fmt.Errorf("wrong session password: %w", helper.ErrUnauthorized)
	}
	return nil
}
