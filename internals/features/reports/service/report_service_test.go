// internals/features/reports/service/report_service_test.go
package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	classModel "raisemyhand_backend/internals/features/classes/model"
	instructorModel "raisemyhand_backend/internals/features/instructors/model"
	qModel "raisemyhand_backend/internals/features/questions/model"
	qService "raisemyhand_backend/internals/features/questions/service"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&instructorModel.InstructorModel{},
		&classModel.ClassModel{},
		&classModel.MeetingModel{},
		&qModel.QuestionModel{},
		&qModel.VoteModel{},
		&qModel.AnswerModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedReportMeeting(t *testing.T, db *gorm.DB) *classModel.MeetingModel {
	t.Helper()

	instructor := instructorModel.InstructorModel{
		InstructorUsername:     "prof",
		InstructorPasswordHash: "x",
		InstructorRole:         instructorModel.InstructorRoleInstructor,
		InstructorIsActive:     true,
	}
	if err := db.Create(&instructor).Error; err != nil {
		t.Fatalf("seed instructor: %v", err)
	}
	class := classModel.ClassModel{ClassInstructorID: instructor.InstructorID, ClassName: "Databases"}
	if err := db.Create(&class).Error; err != nil {
		t.Fatalf("seed class: %v", err)
	}
	meeting := classModel.MeetingModel{
		MeetingClassID:        class.ClassID,
		MeetingCode:           "pub-" + t.Name(),
		MeetingInstructorCode: "prv-" + t.Name(),
		MeetingTitle:          "Final review",
		MeetingIsActive:       true,
	}
	if err := db.Create(&meeting).Error; err != nil {
		t.Fatalf("seed meeting: %v", err)
	}
	return &meeting
}

func TestBuildReport(t *testing.T) {
	db := newTestDB(t)
	meeting := seedReportMeeting(t, db)

	questions := qService.NewQuestionService(db)
	votes := qService.NewVoteService(db)
	answers := qService.NewAnswerService(db)
	svc := NewReportService(db)

	q1, err := questions.Submit(meeting.MeetingCode, "what's on the final?", "")
	if err != nil {
		t.Fatalf("submit q1: %v", err)
	}
	q2, err := questions.Submit(meeting.MeetingCode, "will there be a curve?", "")
	if err != nil {
		t.Fatalf("submit q2: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := votes.ToggleVote(q2.QuestionID, uuid.NewString()); err != nil {
			t.Fatalf("vote: %v", err)
		}
	}
	if _, err := questions.ToggleAnsweredInClass(q1.QuestionID); err != nil {
		t.Fatalf("toggle answered: %v", err)
	}
	if _, err := answers.Upsert(q2.QuestionID, 1, "Yes, details on the portal."); err != nil {
		t.Fatalf("upsert answer: %v", err)
	}

	report, err := svc.Build(meeting)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if report.MeetingCode != meeting.MeetingCode {
		t.Fatalf("meeting code = %q", report.MeetingCode)
	}
	if report.Stats.TotalQuestions != 2 {
		t.Fatalf("total questions = %d, want 2", report.Stats.TotalQuestions)
	}
	if report.Stats.TotalUpvotes != 3 {
		t.Fatalf("total upvotes = %d, want 3", report.Stats.TotalUpvotes)
	}
	if report.Stats.AnsweredInClass != 1 {
		t.Fatalf("answered in class = %d, want 1", report.Stats.AnsweredInClass)
	}
	if report.Stats.WrittenAnswers != 1 {
		t.Fatalf("written answers = %d, want 1", report.Stats.WrittenAnswers)
	}
	if report.Stats.DistinctStudents != 2 {
		t.Fatalf("distinct students = %d, want 2", report.Stats.DistinctStudents)
	}

	// top-voted first
	if len(report.Questions) != 2 || report.Questions[0].Number != q2.QuestionNumber {
		t.Fatalf("first row = Q%d, want the top-voted Q%d",
			report.Questions[0].Number, q2.QuestionNumber)
	}
	if report.Questions[0].WrittenAnswer == nil {
		t.Fatal("written answer missing from report row")
	}
	if report.Questions[0].AnswerPublished {
		t.Fatal("unpublished answer marked as published")
	}
}

func TestWriteCSV(t *testing.T) {
	db := newTestDB(t)
	meeting := seedReportMeeting(t, db)

	questions := qService.NewQuestionService(db)
	svc := NewReportService(db)

	if _, err := questions.Submit(meeting.MeetingCode, `he said "it depends", right?`, ""); err != nil {
		t.Fatalf("submit: %v", err)
	}

	report, err := svc.Build(meeting)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	var buf bytes.Buffer
	if err := svc.WriteCSV(&buf, report); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reparse csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("csv rows = %d, want header + 1", len(rows))
	}
	if rows[0][0] != "number" {
		t.Fatalf("header[0] = %q", rows[0][0])
	}
	if rows[1][1] != `he said "it depends", right?` {
		t.Fatalf("quoted text mangled: %q", rows[1][1])
	}
}
