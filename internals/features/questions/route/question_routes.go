// internals/features/questions/route/question_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	qCtrl "raisemyhand_backend/internals/features/questions/controller"
	"raisemyhand_backend/internals/features/realtime/hub"
	"raisemyhand_backend/internals/middlewares"
)

// QuestionPublicRoutes is the anonymous student surface: submit, list,
// vote. No account, identity is a client-generated student id.
func QuestionPublicRoutes(api fiber.Router, db *gorm.DB, h *hub.Hub) {
	ctl := qCtrl.NewQuestionController(db, h)

	api.Get("/meetings/:meeting_code/questions", ctl.ListStudent)
	api.Post("/meetings/:meeting_code/questions", middlewares.SubmitRateLimiter(), ctl.Create)
	api.Post("/questions/:id/vote", middlewares.SubmitRateLimiter(), ctl.ToggleVote)
}

// QuestionManagementRoutes: moderation and answers, API-key protected.
func QuestionManagementRoutes(mgmt fiber.Router, db *gorm.DB, h *hub.Hub) {
	qc := qCtrl.NewQuestionController(db, h)
	ac := qCtrl.NewAnswerController(db, h)

	mgmt.Post("/questions/:id/approve", qc.Approve)
	mgmt.Post("/questions/:id/reject", qc.Reject)
	mgmt.Patch("/questions/:id/status", qc.UpdateStatus)
	mgmt.Post("/questions/:id/toggle-answered", qc.ToggleAnsweredInClass)

	mgmt.Put("/questions/:id/answer", ac.Upsert)
	mgmt.Post("/questions/:id/answer/publish", ac.SetPublished)
	mgmt.Delete("/questions/:id/answer", ac.Delete)
}

// QuestionInstructorCodeRoutes hangs the full question list off the
// private meeting code.
func QuestionInstructorCodeRoutes(instr fiber.Router, db *gorm.DB, h *hub.Hub) {
	ctl := qCtrl.NewQuestionController(db, h)

	instr.Get("/questions", ctl.ListInstructor)
}
