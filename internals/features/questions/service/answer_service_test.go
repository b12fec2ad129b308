// internals/features/questions/service/answer_service_test.go
package service

import (
	"errors"
	"testing"

	qModel "raisemyhand_backend/internals/features/questions/model"
	helper "raisemyhand_backend/internals/helpers"
)

func TestAnswerUpsertAndPublish(t *testing.T) {
	db := newTestDB(t)
	meeting := seedMeeting(t, db)
	questions := NewQuestionService(db)
	answers := NewAnswerService(db)

	q, err := questions.Submit(meeting.MeetingCode, "what is the deadline?", "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	a, err := answers.Upsert(q.QuestionID, 1, "Friday, see the syllabus.")
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if a.AnswerIsApproved {
		t.Fatal("new answer should start unpublished")
	}

	// question flag follows
	var stored qModel.QuestionModel
	if err := db.First(&stored, "question_id = ?", q.QuestionID).Error; err != nil {
		t.Fatalf("reload question: %v", err)
	}
	if !stored.QuestionHasWrittenAnswer {
		t.Fatal("question_has_written_answer not set after upsert")
	}

	// second upsert overwrites, never duplicates
	a2, err := answers.Upsert(q.QuestionID, 1, "Actually, Monday.")
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if a2.AnswerID != a.AnswerID {
		t.Fatalf("second upsert created a new row: %d vs %d", a2.AnswerID, a.AnswerID)
	}
	if a2.AnswerText != "Actually, Monday." {
		t.Fatalf("text = %q after overwrite", a2.AnswerText)
	}

	published, err := answers.SetPublished(q.QuestionID, true)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !published.AnswerIsApproved {
		t.Fatal("answer not published")
	}

	// published answers surface in the student map
	m, err := questions.PublishedAnswers([]uint{q.QuestionID})
	if err != nil {
		t.Fatalf("published answers: %v", err)
	}
	if _, ok := m[q.QuestionID]; !ok {
		t.Fatal("published answer missing from student map")
	}

	if _, err := answers.SetPublished(q.QuestionID, false); err != nil {
		t.Fatalf("unpublish: %v", err)
	}
	m, err = questions.PublishedAnswers([]uint{q.QuestionID})
	if err != nil {
		t.Fatalf("published answers: %v", err)
	}
	if len(m) != 0 {
		t.Fatal("unpublished answer still visible to students")
	}
}

func TestAnswerDeleteClearsFlag(t *testing.T) {
	db := newTestDB(t)
	meeting := seedMeeting(t, db)
	questions := NewQuestionService(db)
	answers := NewAnswerService(db)

	q, err := questions.Submit(meeting.MeetingCode, "is attendance graded?", "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := answers.Upsert(q.QuestionID, 1, "Yes."); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if err := answers.Delete(q.QuestionID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var stored qModel.QuestionModel
	if err := db.First(&stored, "question_id = ?", q.QuestionID).Error; err != nil {
		t.Fatalf("reload question: %v", err)
	}
	if stored.QuestionHasWrittenAnswer {
		t.Fatal("question_has_written_answer still set after delete")
	}

	if err := answers.Delete(q.QuestionID); !errors.Is(err, helper.ErrNotFound) {
		t.Fatalf("double delete: err = %v, want ErrNotFound", err)
	}
}

func TestAnswerForMissingQuestion(t *testing.T) {
	db := newTestDB(t)
	seedMeeting(t, db)
	answers := NewAnswerService(db)

	if _, err := answers.Upsert(777, 1, "orphan"); !errors.Is(err, helper.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
