// internals/features/instructors/service/audit_service.go
package service

import (
	"log"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	instructorModel "raisemyhand_backend/internals/features/instructors/model"
)

// Audit actions recorded by the user-management flows.
const (
	AuditInstructorCreated     = "INSTRUCTOR_CREATED"
	AuditInstructorDeactivated = "INSTRUCTOR_DEACTIVATED"
	AuditInstructorReactivated = "INSTRUCTOR_REACTIVATED"
	AuditRoleGranted           = "ROLE_GRANTED"
	AuditAPIKeyCreated         = "API_KEY_CREATED"
	AuditAPIKeyRevoked         = "API_KEY_REVOKED"
)

// LogAction appends one audit row. Append-only and best-effort: audit
// failures are logged, never propagated, so they cannot roll back the
// action they describe.
func LogAction(db *gorm.DB, actorID *uint, action, target string, detail map[string]any) {
	var payload datatypes.JSON
	if detail != nil {
		raw, err := sonic.Marshal(detail)
		if err != nil {
			log.Printf("[WARN] audit detail marshal: %v", err)
		} else {
			payload = datatypes.JSON(raw)
		}
	}

	entry := instructorModel.AuditLogModel{
		AuditLogActorID: actorID,
		AuditLogAction:  action,
		AuditLogTarget:  target,
		AuditLogDetail:  payload,
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("[WARN] audit append failed (%s on %s): %v", action, target, err)
	}
}
