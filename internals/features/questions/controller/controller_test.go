// internals/features/questions/controller/controller_test.go
package controller

import (
	"fmt"
	"sync"
	"testing"
	"time"

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
func seedMeeting(t *testing.T, db *gorm.DB) (*instructorModel.InstructorModel, *classModel.MeetingModel) {
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
	return &instructor, &meeting
}

// fakeConn records frames the hub writes to it.
type fakeConn struct {
	mu     sync.Mutex
	frames []string
}

func (f *fakeConn) WriteMessage(_ int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.frames = append(f.frames, string(data))
	return nil
}

func (f *fakeConn) Close() error { return nil }

func (f *fakeConn) frameCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.frames)
}

func (f *fakeConn) frame(i int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames[i]
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}
