// internals/features/classes/model/class_model.go
package model

import "time"

// ClassModel is a named course container (e.g. "CS 101 - Fall 2024").
// Classes are archived, never deleted.
type ClassModel struct {
	// PK
	ClassID uint `gorm:"primaryKey;column:class_id" json:"class_id"`

	// Owner
	ClassInstructorID uint `gorm:"not null;index:ix_classes_instructor_archived;column:class_instructor_id" json:"class_instructor_id"`

	ClassName        string  `gorm:"type:varchar(150);not null;column:class_name" json:"class_name"`
	ClassDescription *string `gorm:"type:text;column:class_description" json:"class_description,omitempty"`

	ClassIsArchived bool      `gorm:"not null;default:false;index:ix_classes_instructor_archived;column:class_is_archived" json:"class_is_archived"`
	ClassCreatedAt  time.Time `gorm:"autoCreateTime;column:class_created_at" json:"class_created_at"`
	ClassUpdatedAt  time.Time `gorm:"autoUpdateTime;column:class_updated_at" json:"class_updated_at"`
}

func (ClassModel) TableName() string { return "classes" }
