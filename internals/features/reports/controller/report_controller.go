// internals/features/reports/controller/report_controller.go
package controller

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classService "raisemyhand_backend/internals/features/classes/service"
	reportService "raisemyhand_backend/internals/features/reports/service"
	helper "raisemyhand_backend/internals/helpers"
)

// ReportController serves the post-session export behind the private
// instructor code.
type ReportController struct {
	DB       *gorm.DB
	Meetings *classService.MeetingService
	Reports  *reportService.ReportService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{
		DB:       db,
		Meetings: classService.NewMeetingService(db),
		Reports:  reportService.NewReportService(db),
	}
}

// GET /api/instructor/meetings/:instructor_code/report?format=json|csv
func (ctl *ReportController) Export(c *fiber.Ctx) error {
	meeting, err := ctl.Meetings.GetByInstructorCode(c.Params("instructor_code"))
	if err != nil {
		return helper.FromServiceError(err)
	}

	report, err := ctl.Reports.Build(meeting)
	if err != nil {
		return err
	}

	switch c.Query("format", "json") {
	case "csv":
		var buf bytes.Buffer
		if err := ctl.Reports.WriteCSV(&buf, report); err != nil {
			return err
		}
		filename := fmt.Sprintf("meeting-%s-%s.csv",
			meeting.MeetingCode, time.Now().UTC().Format("20060102"))
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		return c.Send(buf.Bytes())
	case "json":
		return helper.Success(c, "OK", report)
	default:
		return fiber.NewError(fiber.StatusBadRequest, "format must be json or csv")
	}
}
