// internals/features/instructors/model/instructor_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"
)

/*
Roles (ordered, compared by level in constants):
- "INSTRUCTOR"
- "ADMIN"
- "SUPER_ADMIN"
*/
type InstructorRole string

const (
	InstructorRoleInstructor InstructorRole = "INSTRUCTOR"
	InstructorRoleAdmin      InstructorRole = "ADMIN"
	InstructorRoleSuperAdmin InstructorRole = "SUPER_ADMIN"
)

// Normalize to upper-case on scan/save (safe if the source is ever mixed-case)
func (r *InstructorRole) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*r = InstructorRole(strings.ToUpper(strings.TrimSpace(v)))
	case []byte:
		*r = InstructorRole(strings.ToUpper(strings.TrimSpace(string(v))))
	case nil:
		*r = ""
	default:
		*r = InstructorRole(strings.ToUpper(strings.TrimSpace(v.(string))))
	}
	return nil
}
func (r InstructorRole) Value() (driver.Value, error) {
	return strings.ToUpper(strings.TrimSpace(string(r))), nil
}

type InstructorModel struct {
	// PK
	InstructorID uint `gorm:"primaryKey;column:instructor_id" json:"instructor_id"`

	// Identity
	InstructorUsername    string  `gorm:"type:varchar(64);unique;not null;column:instructor_username" json:"instructor_username"`
	InstructorEmail       *string `gorm:"type:varchar(255);unique;column:instructor_email" json:"instructor_email,omitempty"`
	InstructorDisplayName *string `gorm:"type:varchar(120);column:instructor_display_name" json:"instructor_display_name,omitempty"`

	// Credentials (never serialized)
	InstructorPasswordHash string `gorm:"not null;column:instructor_password_hash" json:"-"`

	// Role & grants
	InstructorRole          InstructorRole `gorm:"type:varchar(20);not null;default:'INSTRUCTOR';column:instructor_role" json:"instructor_role"`
	InstructorRoleGrantedBy *uint          `gorm:"column:instructor_role_granted_by" json:"instructor_role_granted_by,omitempty"`
	InstructorRoleGrantedAt *time.Time     `gorm:"column:instructor_role_granted_at" json:"instructor_role_granted_at,omitempty"`

	// Lifecycle (soft-deactivate only, never hard-deleted)
	InstructorIsActive  bool       `gorm:"not null;default:true;index;column:instructor_is_active" json:"instructor_is_active"`
	InstructorCreatedAt time.Time  `gorm:"autoCreateTime;column:instructor_created_at" json:"instructor_created_at"`
	InstructorLastLogin *time.Time `gorm:"column:instructor_last_login" json:"instructor_last_login,omitempty"`
}

func (InstructorModel) TableName() string { return "instructors" }
