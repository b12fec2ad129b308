// internals/features/instructors/model/api_key_model.go
package model

import "time"

// APIKeyModel is the opaque bearer token used for meeting-management
// calls. Revocation is an is_active flip; keys are never deleted.
type APIKeyModel struct {
	// PK
	APIKeyID uint `gorm:"primaryKey;column:api_key_id" json:"api_key_id"`

	// Owner
	APIKeyInstructorID uint             `gorm:"not null;index;column:api_key_instructor_id" json:"api_key_instructor_id"`
	Instructor         *InstructorModel `gorm:"foreignKey:APIKeyInstructorID;references:InstructorID;constraint:OnDelete:CASCADE" json:"-"`

	// Token (rmh_ + urlsafe random); never rotated in place
	APIKeyKey  string `gorm:"type:varchar(64);unique;not null;column:api_key_key" json:"-"`
	APIKeyName string `gorm:"type:varchar(120);not null;column:api_key_name" json:"api_key_name"`

	APIKeyIsActive  bool       `gorm:"not null;default:true;index;column:api_key_is_active" json:"api_key_is_active"`
	APIKeyCreatedAt time.Time  `gorm:"autoCreateTime;column:api_key_created_at" json:"api_key_created_at"`
	APIKeyLastUsed  *time.Time `gorm:"column:api_key_last_used" json:"api_key_last_used,omitempty"`
}

func (APIKeyModel) TableName() string { return "api_keys" }
