// internals/features/questions/service/vote_service.go
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "raisemyhand_backend/internals/features/classes/model"
	qModel "raisemyhand_backend/internals/features/questions/model"
	helper "raisemyhand_backend/internals/helpers"
)

// VoteService enforces at-most-one-vote-per-student-per-question and is
// the only writer of the denormalized question_upvotes counter. The
// unique (question_id, student_id) constraint is the source of truth;
// the counter is maintained in the same transaction so the two can
// never diverge.
type VoteService struct {
	DB *gorm.DB
}

func NewVoteService(db *gorm.DB) *VoteService {
	return &VoteService{DB: db}
}

type ToggleResult struct {
	Upvotes int  `json:"upvotes"`
	Voted   bool `json:"voted"`

	// MeetingCode feeds the post-commit broadcast; not serialized
	MeetingCode string `json:"-"`
}

// ToggleVote inserts a vote row and increments the counter, or deletes
// the row and decrements, atomically. A duplicate-key race on insert is
// retried once; the toggle is commutative within a transaction.
func (s *VoteService) ToggleVote(questionID uint, studentID string) (ToggleResult, error) {
	if _, err := uuid.Parse(studentID); err != nil {
		return ToggleResult{}, fmt.Errorf("student_id must be a UUID: %w", helper.ErrValidation)
	}

	var result ToggleResult
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		result, err = s.toggleOnce(questionID, studentID)
		if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ToggleResult{}, fmt.Errorf("concurrent vote toggle: %w", helper.ErrConflict)
	}
	return result, err
}

func (s *VoteService) toggleOnce(questionID uint, studentID string) (ToggleResult, error) {
	var result ToggleResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var question qModel.QuestionModel
		if err := lockForUpdate(tx).First(&question, "question_id = ?", questionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("question %d: %w", questionID, helper.ErrNotFound)
			}
			return err
		}

		// Locked so an End committing mid-transaction cannot slip a
		// vote into an ended meeting.
		var meeting classModel.MeetingModel
		if err := lockForUpdate(tx).Select("meeting_id", "meeting_code", "meeting_is_active").
			First(&meeting, "meeting_id = ?", question.QuestionMeetingID).Error; err != nil {
			return err
		}
		if !meeting.MeetingIsActive {
			return fmt.Errorf("meeting has ended: %w", helper.ErrConflict)
		}

		res := tx.Where("vote_question_id = ? AND vote_student_id = ?", questionID, studentID).
			Delete(&qModel.VoteModel{})
		if res.Error != nil {
			return res.Error
		}

		count := question.QuestionUpvotes
		if res.RowsAffected > 0 {
			// toggle off
			count--
			if count < 0 {
				count = 0
			}
			result = ToggleResult{Upvotes: count, Voted: false, MeetingCode: meeting.MeetingCode}
		} else {
			// toggle on; the unique pair constraint catches a racing
			// duplicate and surfaces as gorm.ErrDuplicatedKey
			vote := qModel.VoteModel{
				VoteQuestionID: questionID,
				VoteStudentID:  studentID,
			}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
			count++
			result = ToggleResult{Upvotes: count, Voted: true, MeetingCode: meeting.MeetingCode}
		}

		return tx.Model(&qModel.QuestionModel{}).
			Where("question_id = ?", questionID).
			Update("question_upvotes", count).Error
	})

	return result, err
}

// RecountUpvotes resets the denormalized counter from the vote rows.
// The counter is an optimization; when in doubt, COUNT(*) wins.
func (s *VoteService) RecountUpvotes(questionID uint) (int, error) {
	var count int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&qModel.VoteModel{}).
			Where("vote_question_id = ?", questionID).
			Count(&count).Error; err != nil {
			return err
		}
		res := tx.Model(&qModel.QuestionModel{}).
			Where("question_id = ?", questionID).
			Update("question_upvotes", count)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("question %d: %w", questionID, helper.ErrNotFound)
		}
		return nil
	})
	return int(count), err
}
