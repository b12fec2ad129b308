// internals/features/reports/route/report_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportCtrl "raisemyhand_backend/internals/features/reports/controller"
)

// ReportRoutes hangs the export off the private meeting code.
func ReportRoutes(instr fiber.Router, db *gorm.DB) {
	ctl := reportCtrl.NewReportController(db)

	instr.Get("/report", ctl.Export)
}
