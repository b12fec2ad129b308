// internals/features/classes/dto/class_dto.go
package dto

import (
	"time"

	classModel "raisemyhand_backend/internals/features/classes/model"
)

/* ===================== REQUESTS ===================== */

type CreateClassRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=150"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

func (r *CreateClassRequest) ToModel(instructorID uint) *classModel.ClassModel {
	return &classModel.ClassModel{
		ClassInstructorID: instructorID,
		ClassName:         r.Name,
		ClassDescription:  r.Description,
	}
}

type UpdateClassRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=150"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

func (r *UpdateClassRequest) ApplyToModel(m *classModel.ClassModel) {
	if r.Name != nil {
		m.ClassName = *r.Name
	}
	if r.Description != nil {
		m.ClassDescription = r.Description
	}
}

/* ===================== RESPONSES ===================== */

type ClassResponse struct {
	ClassID     uint      `json:"class_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	IsArchived  bool      `json:"is_archived"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewClassResponse(m *classModel.ClassModel) *ClassResponse {
	return &ClassResponse{
		ClassID:     m.ClassID,
		Name:        m.ClassName,
		Description: m.ClassDescription,
		IsArchived:  m.ClassIsArchived,
		CreatedAt:   m.ClassCreatedAt,
		UpdatedAt:   m.ClassUpdatedAt,
	}
}
