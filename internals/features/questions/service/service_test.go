// internals/features/questions/service/service_test.go
package service

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	classModel "raisemyhand_backend/internals/features/classes/model"
	instructorModel "raisemyhand_backend/internals/features/instructors/model"
	qModel "raisemyhand_backend/internals/features/questions/model"
)

// newTestDB opens an isolated in-memory database per test. cache=shared
// keeps the schema visible across pooled connections; a single open
// connection serializes writers the way SQLite expects.
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
		&instructorModel.APIKeyModel{},
		&instructorModel.AuditLogModel{},
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

// seedMeeting creates an instructor, a class and one active meeting.
func seedMeeting(t *testing.T, db *gorm.DB) *classModel.MeetingModel {
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

	class := classModel.ClassModel{
		ClassInstructorID: instructor.InstructorID,
		ClassName:         "CS 101",
	}
	if err := db.Create(&class).Error; err != nil {
		t.Fatalf("seed class: %v", err)
	}

	meeting := classModel.MeetingModel{
		MeetingClassID:        class.ClassID,
		MeetingCode:           "pub-" + t.Name(),
		MeetingInstructorCode: "prv-" + t.Name(),
		MeetingTitle:          "Lecture 1",
		MeetingIsActive:       true,
	}
	if err := db.Create(&meeting).Error; err != nil {
		t.Fatalf("seed meeting: %v", err)
	}
	return &meeting
}
