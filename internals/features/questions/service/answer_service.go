// internals/features/questions/service/answer_service.go
package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	qModel "raisemyhand_backend/internals/features/questions/model"
	helper "raisemyhand_backend/internals/helpers"
)

type AnswerService struct {
	DB *gorm.DB
}

func NewAnswerService(db *gorm.DB) *AnswerService {
	return &AnswerService{DB: db}
}

// Upsert writes the question's single answer (create or overwrite text).
// has_written_answer on the question is kept in step inside the same
// transaction. Text is raw markdown; rendering is a client concern.
func (s *AnswerService) Upsert(questionID, instructorID uint, text string) (*qModel.AnswerModel, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("answer text is required: %w", helper.ErrValidation)
	}

	var answer qModel.AnswerModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var question qModel.QuestionModel
		if err := tx.Select("question_id").First(&question, "question_id = ?", questionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("question %d: %w", questionID, helper.ErrNotFound)
			}
			return err
		}

		err := tx.First(&answer, "answer_question_id = ?", questionID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			answer = qModel.AnswerModel{
				AnswerQuestionID:   questionID,
				AnswerInstructorID: instructorID,
				AnswerText:         text,
			}
			if err := tx.Create(&answer).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			answer.AnswerText = text
			answer.AnswerInstructorID = instructorID
			if err := tx.Model(&qModel.AnswerModel{}).
				Where("answer_id = ?", answer.AnswerID).
				Updates(map[string]any{
					"answer_text":          text,
					"answer_instructor_id": instructorID,
				}).Error; err != nil {
				return err
			}
		}

		return tx.Model(&qModel.QuestionModel{}).
			Where("question_id = ?", questionID).
			Update("question_has_written_answer", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

// SetPublished flips student visibility of the written answer.
func (s *AnswerService) SetPublished(questionID uint, published bool) (*qModel.AnswerModel, error) {
	var answer qModel.AnswerModel
	if err := s.DB.First(&answer, "answer_question_id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("answer for question %d: %w", questionID, helper.ErrNotFound)
		}
		return nil, err
	}

	answer.AnswerIsApproved = published
	if err := s.DB.Model(&qModel.AnswerModel{}).
		Where("answer_id = ?", answer.AnswerID).
		Update("answer_is_approved", published).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

// Delete removes the written answer and clears the question flag.
func (s *AnswerService) Delete(questionID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("answer_question_id = ?", questionID).Delete(&qModel.AnswerModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("answer for question %d: %w", questionID, helper.ErrNotFound)
		}
		return tx.Model(&qModel.QuestionModel{}).
			Where("question_id = ?", questionID).
			Update("question_has_written_answer", false).Error
	})
}
