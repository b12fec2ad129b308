// internals/features/classes/route/class_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classCtrl "raisemyhand_backend/internals/features/classes/controller"
	"raisemyhand_backend/internals/features/realtime/hub"
)

// ClassManagementRoutes: class and meeting administration, API-key
// protected.
func ClassManagementRoutes(mgmt fiber.Router, db *gorm.DB, h *hub.Hub) {
	cc := classCtrl.NewClassController(db)
	mc := classCtrl.NewMeetingController(db, h)

	mgmt.Post("/classes", cc.Create)
	mgmt.Get("/classes", cc.List)
	mgmt.Get("/classes/:id", cc.Get)
	mgmt.Patch("/classes/:id", cc.Update)
	mgmt.Post("/classes/:id/archive", cc.Archive)
	mgmt.Post("/classes/:id/unarchive", cc.Unarchive)

	mgmt.Post("/classes/:id/meetings", mc.Create)
	mgmt.Get("/classes/:id/meetings", mc.ListForClass)
}

// MeetingPublicRoutes: the student join surface, keyed on meeting_code.
func MeetingPublicRoutes(api fiber.Router, db *gorm.DB, h *hub.Hub) {
	mc := classCtrl.NewMeetingController(db, h)

	api.Get("/meetings/:meeting_code", mc.GetByCode)
	api.Post("/meetings/:meeting_code/verify-password", mc.VerifyPassword)
}

// MeetingInstructorCodeRoutes: lifecycle control behind the private code.
func MeetingInstructorCodeRoutes(instr fiber.Router, db *gorm.DB, h *hub.Hub) {
	mc := classCtrl.NewMeetingController(db, h)

	instr.Get("/", mc.GetByInstructorCode)
	instr.Post("/end", mc.End)
	instr.Post("/restart", mc.Restart)
}
