// internals/features/instructors/dto/auth_dto.go
package dto

import (
	"time"

	instructorModel "raisemyhand_backend/internals/features/instructors/model"
)

/* ===================== REQUESTS ===================== */

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=2,max=64"`
	Password string `json:"password" validate:"required,min=8"`
}

type CreateInstructorRequest struct {
	Username    string  `json:"username" validate:"required,min=2,max=64"`
	Email       *string `json:"email" validate:"omitempty,email"`
	DisplayName *string `json:"display_name" validate:"omitempty,max=120"`
	Password    string  `json:"password" validate:"required,min=8,max=128"`
	Role        string  `json:"role" validate:"omitempty,oneof=INSTRUCTOR ADMIN"`
}

/* ===================== RESPONSES ===================== */

type InstructorResponse struct {
	InstructorID uint       `json:"instructor_id"`
	Username     string     `json:"username"`
	Email        *string    `json:"email,omitempty"`
	DisplayName  *string    `json:"display_name,omitempty"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

func NewInstructorResponse(m *instructorModel.InstructorModel) *InstructorResponse {
	return &InstructorResponse{
		InstructorID: m.InstructorID,
		Username:     m.InstructorUsername,
		Email:        m.InstructorEmail,
		DisplayName:  m.InstructorDisplayName,
		Role:         string(m.InstructorRole),
		IsActive:     m.InstructorIsActive,
		CreatedAt:    m.InstructorCreatedAt,
		LastLogin:    m.InstructorLastLogin,
	}
}

type LoginResponse struct {
	AccessToken string              `json:"access_token"`
	Instructor  *InstructorResponse `json:"instructor"`
}
