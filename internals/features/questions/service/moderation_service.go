// internals/features/questions/service/moderation_service.go
package service

import (
	"errors"
	"fmt"
	"time"

	goaway "github.com/TwiN/go-away"
	"gorm.io/gorm"

	qModel "raisemyhand_backend/internals/features/questions/model"
	helper "raisemyhand_backend/internals/helpers"
)

const FlagReasonProfanity = "profanity"

type Classification struct {
	Status    qModel.QuestionStatus
	Reason    *string
	Sanitized string
}

// Classify runs the profanity check on submitted text. The gate never
// blocks submission: flagged text is still stored, but carries a
// censored rendering for the student-facing surface.
func Classify(text string) Classification {
	if goaway.IsProfane(text) {
		reason := FlagReasonProfanity
		return Classification{
			Status:    qModel.QuestionStatusFlagged,
			Reason:    &reason,
			Sanitized: goaway.Censor(text),
		}
	}
	return Classification{
		Status:    qModel.QuestionStatusApproved,
		Sanitized: text,
	}
}

type ModerationService struct {
	DB *gorm.DB
}

func NewModerationService(db *gorm.DB) *ModerationService {
	return &ModerationService{DB: db}
}

// Approve publishes a flagged/pending question to students (censored
// rendering becomes visible).
func (s *ModerationService) Approve(questionID uint) (*qModel.QuestionModel, error) {
	return s.review(questionID, qModel.QuestionStatusApproved)
}

// Reject hides the question from students permanently; the row is kept
// for audit and export.
func (s *ModerationService) Reject(questionID uint) (*qModel.QuestionModel, error) {
	return s.review(questionID, qModel.QuestionStatusRejected)
}

// SetStatus moves a question to an arbitrary moderation state. Approve
// and Reject cover the common transitions; this backs the generic
// status endpoint.
func (s *ModerationService) SetStatus(questionID uint, status qModel.QuestionStatus) (*qModel.QuestionModel, error) {
	switch status {
	case qModel.QuestionStatusPending, qModel.QuestionStatusApproved,
		qModel.QuestionStatusFlagged, qModel.QuestionStatusRejected:
	default:
		return nil, fmt.Errorf("unknown status %q: %w", status, helper.ErrValidation)
	}
	return s.review(questionID, status)
}

func (s *ModerationService) review(questionID uint, status qModel.QuestionStatus) (*qModel.QuestionModel, error) {
	var question qModel.QuestionModel
	if err := s.DB.First(&question, "question_id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question %d: %w", questionID, helper.ErrNotFound)
		}
		return nil, err
	}

	now := time.Now().UTC()
	question.QuestionStatus = status
	question.QuestionReviewedAt = &now

	if err := s.DB.Model(&qModel.QuestionModel{}).
		Where("question_id = ?", questionID).
		Updates(map[string]any{
			"question_status":      status,
			"question_reviewed_at": now,
		}).Error; err != nil {
		return nil, err
	}

	return &question, nil
}
