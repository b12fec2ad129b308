// internals/features/classes/service/meeting_service_test.go
package service

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	classModel "raisemyhand_backend/internals/features/classes/model"
	instructorModel "raisemyhand_backend/internals/features/instructors/model"
	helper "raisemyhand_backend/internals/helpers"
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
		&instructorModel.APIKeyModel{},
		&classModel.ClassModel{},
		&classModel.MeetingModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedClass(t *testing.T, db *gorm.DB) *classModel.ClassModel {
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
		ClassName:         "Algorithms",
	}
	if err := db.Create(&class).Error; err != nil {
		t.Fatalf("seed class: %v", err)
	}
	return &class
}

func TestCreateMeeting(t *testing.T) {
	db := newTestDB(t)
	class := seedClass(t, db)
	svc := NewMeetingService(db)

	meeting, err := svc.Create(CreateMeetingInput{ClassID: class.ClassID, Title: "Week 1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if !meeting.MeetingIsActive {
		t.Fatal("new meeting should be active")
	}
	if meeting.MeetingStartedAt == nil {
		t.Fatal("started_at not stamped")
	}
	if meeting.MeetingPasswordHash != nil {
		t.Fatal("password hash set without a password")
	}
	if len(meeting.MeetingCode) < 32 || len(meeting.MeetingInstructorCode) < 32 {
		t.Fatalf("codes too short: %d / %d",
			len(meeting.MeetingCode), len(meeting.MeetingInstructorCode))
	}
	if meeting.MeetingCode == meeting.MeetingInstructorCode {
		t.Fatal("public and instructor codes must differ")
	}
}

func TestCreateMeetingValidation(t *testing.T) {
	db := newTestDB(t)
	class := seedClass(t, db)
	svc := NewMeetingService(db)

	_, err := svc.Create(CreateMeetingInput{ClassID: class.ClassID, Title: "   "})
	if !errors.Is(err, helper.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestMeetingLookupByEitherCode(t *testing.T) {
	db := newTestDB(t)
	class := seedClass(t, db)
	svc := NewMeetingService(db)

	created, err := svc.Create(CreateMeetingInput{ClassID: class.ClassID, Title: "Week 2"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	byPublic, err := svc.GetByCode(created.MeetingCode)
	if err != nil || byPublic.MeetingID != created.MeetingID {
		t.Fatalf("lookup by public code: %v", err)
	}
	byPrivate, err := svc.GetByInstructorCode(created.MeetingInstructorCode)
	if err != nil || byPrivate.MeetingID != created.MeetingID {
		t.Fatalf("lookup by instructor code: %v", err)
	}

	// codes are not interchangeable
	if _, err := svc.GetByCode(created.MeetingInstructorCode); !errors.Is(err, helper.ErrNotFound) {
		t.Fatalf("instructor code resolved as public: err = %v", err)
	}
	if _, err := svc.GetByInstructorCode(created.MeetingCode); !errors.Is(err, helper.ErrNotFound) {
		t.Fatalf("public code resolved as instructor: err = %v", err)
	}
}

func TestMeetingLifecycle(t *testing.T) {
	db := newTestDB(t)
	class := seedClass(t, db)
	svc := NewMeetingService(db)

	created, err := svc.Create(CreateMeetingInput{ClassID: class.ClassID, Title: "Week 3"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// restart while active is a conflict
	if _, err := svc.Restart(created.MeetingInstructorCode); !errors.Is(err, helper.ErrConflict) {
		t.Fatalf("restart active: err = %v, want ErrConflict", err)
	}

	ended, err := svc.End(created.MeetingInstructorCode)
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if ended.MeetingIsActive || ended.MeetingEndedAt == nil {
		t.Fatal("end did not stamp ended state")
	}

	// double end is a conflict
	if _, err := svc.End(created.MeetingInstructorCode); !errors.Is(err, helper.ErrConflict) {
		t.Fatalf("double end: err = %v, want ErrConflict", err)
	}

	restarted, err := svc.Restart(created.MeetingInstructorCode)
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if !restarted.MeetingIsActive || restarted.MeetingEndedAt != nil {
		t.Fatal("restart did not reopen the meeting")
	}
	// same codes before and after
	if restarted.MeetingCode != created.MeetingCode ||
		restarted.MeetingInstructorCode != created.MeetingInstructorCode {
		t.Fatal("restart must keep the original codes")
	}
}

func TestMeetingPassword(t *testing.T) {
	db := newTestDB(t)
	class := seedClass(t, db)
	svc := NewMeetingService(db)

	open, err := svc.Create(CreateMeetingInput{ClassID: class.ClassID, Title: "Open"})
	if err != nil {
		t.Fatalf("create open: %v", err)
	}
	locked, err := svc.Create(CreateMeetingInput{
		ClassID: class.ClassID, Title: "Locked", Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("create locked: %v", err)
	}

	// no password set: everyone gets in
	if err := svc.VerifyPassword(open, ""); err != nil {
		t.Fatalf("open meeting rejected empty password: %v", err)
	}
	if err := svc.VerifyPassword(open, "anything"); err != nil {
		t.Fatalf("open meeting rejected a password: %v", err)
	}

	if err := svc.VerifyPassword(locked, "hunter22"); err != nil {
		t.Fatalf("right password rejected: %v", err)
	}
	if err := svc.VerifyPassword(locked, "wrong"); !errors.Is(err, helper.ErrUnauthorized) {
		t.Fatalf("wrong password: err = %v, want ErrUnauthorized", err)
	}
}
