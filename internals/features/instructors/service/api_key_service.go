// internals/features/instructors/service/api_key_service.go
package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	instructorModel "raisemyhand_backend/internals/features/instructors/model"
	helper "raisemyhand_backend/internals/helpers"
)

type APIKeyService struct {
	DB *gorm.DB
}

func NewAPIKeyService(db *gorm.DB) *APIKeyService {
	return &APIKeyService{DB: db}
}

// Create mints a new key for an instructor. The raw key value is only
// ever returned here; lookups afterwards use the stored value blindly.
func (s *APIKeyService) Create(instructorID uint, name string, actorID *uint) (*instructorModel.APIKeyModel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("key name is required: %w", helper.ErrValidation)
	}

	key := instructorModel.APIKeyModel{
		APIKeyInstructorID: instructorID,
		APIKeyKey:          helper.GenerateAPIKey(),
		APIKeyName:         name,
		APIKeyIsActive:     true,
	}
	if err := s.DB.Create(&key).Error; err != nil {
		return nil, err
	}

	LogAction(s.DB, actorID, AuditAPIKeyCreated, fmt.Sprintf("api_key:%d", key.APIKeyID), map[string]any{
		"instructor_id": instructorID,
		"name":          name,
	})
	return &key, nil
}

// AutoGenerate provisions the default key created alongside a new
// instructor account.
func (s *APIKeyService) AutoGenerate(instructor *instructorModel.InstructorModel, actorID *uint) (*instructorModel.APIKeyModel, error) {
	return s.Create(instructor.InstructorID, "Default key", actorID)
}

// List returns an instructor's keys, newest first.
func (s *APIKeyService) List(instructorID uint) ([]instructorModel.APIKeyModel, error) {
	var keys []instructorModel.APIKeyModel
	err := s.DB.Where("api_key_instructor_id = ?", instructorID).
		Order("api_key_created_at DESC").
		Find(&keys).Error
	return keys, err
}

// Revoke flips is_active off; the row stays for audit.
func (s *APIKeyService) Revoke(instructorID, keyID uint, actorID *uint) error {
	var key instructorModel.APIKeyModel
	err := s.DB.Where("api_key_id = ? AND api_key_instructor_id = ?", keyID, instructorID).
		First(&key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("api key %d: %w", keyID, helper.ErrNotFound)
		}
		return err
	}
	if !key.APIKeyIsActive {
		return fmt.Errorf("api key already revoked: %w", helper.ErrConflict)
	}

	if err := s.DB.Model(&instructorModel.APIKeyModel{}).
		Where("api_key_id = ?", keyID).
		Update("api_key_is_active", false).Error; err != nil {
		return err
	}

	LogAction(s.DB, actorID, AuditAPIKeyRevoked, fmt.Sprintf("api_key:%d", keyID), nil)
	return nil
}
