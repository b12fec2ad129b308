// internals/features/questions/service/question_service.go
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	classModel "raisemyhand_backend/internals/features/classes/model"
	qModel "raisemyhand_backend/internals/features/questions/model"
	helper "raisemyhand_backend/internals/helpers"
)

const (
	MinQuestionLen = 1
	MaxQuestionLen = 500
)

type QuestionService struct {
	DB *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{DB: db}
}

// lockForUpdate row-locks on engines that support it. SQLite (used by
// the tests) has a single writer and no FOR UPDATE syntax.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// Submit stores a new question against an active meeting. The question
// number is MAX+1 under the meeting row lock; the unique
// (meeting_id, question_number) constraint backstops concurrent
// submitters, with one retry since numbering is recomputed per attempt.
func (s *QuestionService) Submit(meetingCode, text, studentID string) (*qModel.QuestionModel, error) {
	text = strings.TrimSpace(text)
	if len(text) < MinQuestionLen || len(text) > MaxQuestionLen {
		return nil, fmt.Errorf("question text must be 1-500 characters: %w", helper.ErrValidation)
	}

	if studentID == "" {
		studentID = uuid.NewString()
	} else if _, err := uuid.Parse(studentID); err != nil {
		return nil, fmt.Errorf("student_id must be a UUID: %w", helper.ErrValidation)
	}

	var meeting classModel.MeetingModel
	if err := s.DB.Where("meeting_code = ?", meetingCode).First(&meeting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("meeting %s: %w", meetingCode, helper.ErrNotFound)
		}
		return nil, err
	}
	if !meeting.MeetingIsActive {
		return nil, fmt.Errorf("meeting has ended: %w", helper.ErrConflict)
	}

	cls := Classify(text)

	var question *qModel.QuestionModel
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		question, err = s.insertNumbered(meeting.MeetingID, studentID, text, cls)
		if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, fmt.Errorf("concurrent submissions exhausted retries: %w", helper.ErrConflict)
	}
	return question, err
}

func (s *QuestionService) insertNumbered(meetingID uint, studentID, text string, cls Classification) (*qModel.QuestionModel, error) {
	var question qModel.QuestionModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var meeting classModel.MeetingModel
		if err := lockForUpdate(tx).First(&meeting, "meeting_id = ?", meetingID).Error; err != nil {
			return err
		}
		// Submit checked the flag already, but an End can commit in
		// between; the locked re-read is the authoritative one.
		if !meeting.MeetingIsActive {
			return fmt.Errorf("meeting has ended: %w", helper.ErrConflict)
		}

		var maxNumber int
		if err := tx.Model(&qModel.QuestionModel{}).
			Where("question_meeting_id = ?", meetingID).
			Select("COALESCE(MAX(question_number), 0)").
			Scan(&maxNumber).Error; err != nil {
			return err
		}

		sanitized := cls.Sanitized
		question = qModel.QuestionModel{
			QuestionMeetingID:     meetingID,
			QuestionStudentID:     studentID,
			QuestionNumber:        maxNumber + 1,
			QuestionText:          text,
			QuestionSanitizedText: &sanitized,
			QuestionStatus:        cls.Status,
			QuestionFlaggedReason: cls.Reason,
		}
		return tx.Create(&question).Error
	})
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// StudentQuestions is the student-facing list: approved questions only,
// censored text, published answers only. Ordered upvotes DESC with
// created_at ASC as tie-break.
func (s *QuestionService) StudentQuestions(meetingID uint) ([]qModel.QuestionModel, error) {
	var questions []qModel.QuestionModel
	err := s.DB.
		Where("question_meeting_id = ? AND question_status = ?", meetingID, qModel.QuestionStatusApproved).
		Order("question_upvotes DESC, question_created_at ASC").
		Find(&questions).Error
	return questions, err
}

// InstructorQuestions returns everything, raw text included, for the
// management view and exports.
func (s *QuestionService) InstructorQuestions(meetingID uint) ([]qModel.QuestionModel, error) {
	var questions []qModel.QuestionModel
	err := s.DB.
		Where("question_meeting_id = ?", meetingID).
		Order("question_upvotes DESC, question_created_at ASC").
		Find(&questions).Error
	return questions, err
}

// PublishedAnswers loads approved answers for a set of questions, keyed
// by question id.
func (s *QuestionService) PublishedAnswers(questionIDs []uint) (map[uint]qModel.AnswerModel, error) {
	out := make(map[uint]qModel.AnswerModel, len(questionIDs))
	if len(questionIDs) == 0 {
		return out, nil
	}
	var answers []qModel.AnswerModel
	if err := s.DB.
		Where("answer_question_id IN ? AND answer_is_approved = ?", questionIDs, true).
		Find(&answers).Error; err != nil {
		return nil, err
	}
	for _, a := range answers {
		out[a.AnswerQuestionID] = a
	}
	return out, nil
}

// AllAnswers loads every answer for a set of questions, published or
// not. Management view only.
func (s *QuestionService) AllAnswers(questionIDs []uint) (map[uint]qModel.AnswerModel, error) {
	out := make(map[uint]qModel.AnswerModel, len(questionIDs))
	if len(questionIDs) == 0 {
		return out, nil
	}
	var answers []qModel.AnswerModel
	if err := s.DB.
		Where("answer_question_id IN ?", questionIDs).
		Find(&answers).Error; err != nil {
		return nil, err
	}
	for _, a := range answers {
		out[a.AnswerQuestionID] = a
	}
	return out, nil
}

// ToggleAnsweredInClass flips the verbal-answer flag. Independent of the
// written answer: the two facts are exposed separately.
func (s *QuestionService) ToggleAnsweredInClass(questionID uint) (*qModel.QuestionModel, error) {
	var question qModel.QuestionModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&question, "question_id = ?", questionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("question %d: %w", questionID, helper.ErrNotFound)
			}
			return err
		}
		question.QuestionIsAnsweredInClass = !question.QuestionIsAnsweredInClass
		return tx.Model(&qModel.QuestionModel{}).
			Where("question_id = ?", questionID).
			Update("question_is_answered_in_class", question.QuestionIsAnsweredInClass).Error
	})
	if err != nil {
		return nil, err
	}
	return &question, nil
}
