// internals/features/questions/service/moderation_service_test.go
package service

import (
	"errors"
	"strings"
	"testing"

	qModel "raisemyhand_backend/internals/features/questions/model"
	helper "raisemyhand_backend/internals/helpers"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantStatus qModel.QuestionStatus
	}{
		{"clean text", "how does garbage collection work?", qModel.QuestionStatusApproved},
		{"profane word", "why is this shit so hard", qModel.QuestionStatusFlagged},
		{"embedded profanity", "this is bullshit honestly", qModel.QuestionStatusFlagged},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls := Classify(tt.text)
			if cls.Status != tt.wantStatus {
				t.Fatalf("status = %q, want %q", cls.Status, tt.wantStatus)
			}
			if tt.wantStatus == qModel.QuestionStatusApproved {
				if cls.Reason != nil {
					t.Fatalf("reason = %v, want nil for clean text", *cls.Reason)
				}
				if cls.Sanitized != tt.text {
					t.Fatalf("sanitized = %q, want untouched text", cls.Sanitized)
				}
				return
			}
			if cls.Reason == nil || *cls.Reason != FlagReasonProfanity {
				t.Fatalf("reason = %v, want %q", cls.Reason, FlagReasonProfanity)
			}
			if cls.Sanitized == tt.text {
				t.Fatal("sanitized text should differ from the raw text")
			}
			if !strings.Contains(cls.Sanitized, "*") {
				t.Fatalf("sanitized = %q, expected censor characters", cls.Sanitized)
			}
		})
	}
}

func TestApproveRejectLifecycle(t *testing.T) {
	db := newTestDB(t)
	meeting := seedMeeting(t, db)
	questions := NewQuestionService(db)
	moderation := NewModerationService(db)

	flagged, err := questions.Submit(meeting.MeetingCode, "why is this fucking compiler so slow", "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if flagged.QuestionStatus != qModel.QuestionStatusFlagged {
		t.Fatalf("status = %q, want flagged", flagged.QuestionStatus)
	}

	approved, err := moderation.Approve(flagged.QuestionID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.QuestionStatus != qModel.QuestionStatusApproved {
		t.Fatalf("status after approve = %q, want approved", approved.QuestionStatus)
	}
	if approved.QuestionReviewedAt == nil {
		t.Fatal("reviewed_at not stamped on approve")
	}

	visible, err := questions.StudentQuestions(meeting.MeetingID)
	if err != nil {
		t.Fatalf("student questions: %v", err)
	}
	if len(visible) != 1 {
		t.Fatalf("visible = %d, want 1 after approval", len(visible))
	}

	rejected, err := moderation.Reject(flagged.QuestionID)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.QuestionStatus != qModel.QuestionStatusRejected {
		t.Fatalf("status after reject = %q, want rejected", rejected.QuestionStatus)
	}

	visible, err = questions.StudentQuestions(meeting.MeetingID)
	if err != nil {
		t.Fatalf("student questions: %v", err)
	}
	if len(visible) != 0 {
		t.Fatalf("visible = %d, want 0 after rejection", len(visible))
	}
}

func TestModerateMissingQuestion(t *testing.T) {
	db := newTestDB(t)
	seedMeeting(t, db)
	moderation := NewModerationService(db)

	if _, err := moderation.Approve(404); !errors.Is(err, helper.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
