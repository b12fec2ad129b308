// internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "raisemyhand_backend/internals/features/classes/route"
	instructorRoute "raisemyhand_backend/internals/features/instructors/route"
	questionRoute "raisemyhand_backend/internals/features/questions/route"
	realtimeRoute "raisemyhand_backend/internals/features/realtime/route"
	reportRoute "raisemyhand_backend/internals/features/reports/route"
	"raisemyhand_backend/internals/features/realtime/hub"
	authMw "raisemyhand_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, h *hub.Hub) {
	startTime = time.Now()

	BaseRoutes(app)

	// ===================== AUTH / ADMIN (JWT) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	instructorRoute.AuthRoutes(app, db)
	instructorRoute.AdminRoutes(app, db)

	// ===================== PUBLIC (anonymous students) =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")
	classRoute.MeetingPublicRoutes(public, db, h)
	questionRoute.QuestionPublicRoutes(public, db, h)

	// ===================== MANAGEMENT (API key) =====================
	log.Println("[INFO] Setting up MANAGEMENT group...")
	mgmt := app.Group("/api", authMw.APIKeyAuth(db))
	classRoute.ClassManagementRoutes(mgmt, db, h)
	questionRoute.QuestionManagementRoutes(mgmt, db, h)

	// ===================== INSTRUCTOR CODE (capability URL) =====================
	// The private code is the credential; possession grants control of
	// that one meeting and nothing else.
	log.Println("[INFO] Setting up INSTRUCTOR CODE group...")
	instr := app.Group("/api/instructor/meetings/:instructor_code")
	classRoute.MeetingInstructorCodeRoutes(instr, db, h)
	questionRoute.QuestionInstructorCodeRoutes(instr, db, h)
	reportRoute.ReportRoutes(instr, db)

	// ===================== REALTIME =====================
	log.Println("[INFO] Setting up RealtimeRoutes...")
	realtimeRoute.RealtimeRoutes(app, db, h)
}
