// internals/features/instructors/model/audit_log_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLogModel is append-only: rows are inserted by the services and
// never updated or deleted anywhere in the codebase.
type AuditLogModel struct {
	AuditLogID uint `gorm:"primaryKey;column:audit_log_id" json:"audit_log_id"`

	AuditLogActorID *uint  `gorm:"index;column:audit_log_actor_id" json:"audit_log_actor_id,omitempty"`
	AuditLogAction  string `gorm:"type:varchar(64);not null;index;column:audit_log_action" json:"audit_log_action"`
	AuditLogTarget  string `gorm:"type:varchar(128);not null;column:audit_log_target" json:"audit_log_target"`

	// Free-form context (who/what/old-new values)
	AuditLogDetail datatypes.JSON `gorm:"column:audit_log_detail" json:"audit_log_detail,omitempty"`

	AuditLogCreatedAt time.Time `gorm:"autoCreateTime;index;column:audit_log_created_at" json:"audit_log_created_at"`
}

func (AuditLogModel) TableName() string { return "audit_logs" }
