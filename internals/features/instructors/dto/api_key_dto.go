// internals/features/instructors/dto/api_key_dto.go
package dto

import (
	"time"

	instructorModel "raisemyhand_backend/internals/features/instructors/model"
)

type CreateAPIKeyRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

type APIKeyResponse struct {
	APIKeyID  uint       `json:"api_key_id"`
	Name      string     `json:"name"`
	Key       string     `json:"key,omitempty"` // raw value, only on create
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	LastUsed  *time.Time `json:"last_used,omitempty"`
}

// NewAPIKeyResponse omits the raw key; use withKey on creation only.
func NewAPIKeyResponse(m *instructorModel.APIKeyModel, withKey bool) *APIKeyResponse {
	resp := &APIKeyResponse{
		APIKeyID:  m.APIKeyID,
		Name:      m.APIKeyName,
		IsActive:  m.APIKeyIsActive,
		CreatedAt: m.APIKeyCreatedAt,
		LastUsed:  m.APIKeyLastUsed,
	}
	if withKey {
		resp.Key = m.APIKeyKey
	}
	return resp
}
