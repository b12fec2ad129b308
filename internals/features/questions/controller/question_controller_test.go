// internals/features/questions/controller/question_controller_test.go
package controller

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"raisemyhand_backend/internals/features/realtime/hub"
)

// A flagged submission is invisible to everyone, the submitter
// included: the 201 acknowledges receipt but echoes no text, and
// nothing reaches the meeting audience.
func TestCreateFlaggedSubmissionHidesText(t *testing.T) {
	db := newTestDB(t)
	_, meeting := seedMeeting(t, db)

	h := hub.New()
	conn := &fakeConn{}
	client := h.Subscribe(meeting.MeetingCode, conn)
	defer h.Unsubscribe(client)

	app := fiber.New()
	qc := NewQuestionController(db, h)
	app.Post("/meetings/:meeting_code/questions", qc.Create)

	post := func(text string) string {
		t.Helper()
		req := httptest.NewRequest("POST", "/meetings/"+meeting.MeetingCode+"/questions",
			strings.NewReader(`{"text": "`+text+`"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		if resp.StatusCode != fiber.StatusCreated {
			t.Fatalf("status = %d, want 201", resp.StatusCode)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		return string(body)
	}

	flagged := post("why is this fucking compiler so slow")
	if strings.Contains(flagged, "compiler") {
		t.Fatalf("flagged response echoes the text: %s", flagged)
	}
	if !strings.Contains(flagged, "held for review") {
		t.Fatalf("flagged response missing the review note: %s", flagged)
	}
	if !strings.Contains(flagged, `"question_id"`) || !strings.Contains(flagged, `"student_id"`) {
		t.Fatalf("flagged response missing the receipt fields: %s", flagged)
	}

	// a clean follow-up is the only thing the audience ever sees;
	// per-socket delivery is FIFO, so frame 0 proves the flagged
	// submission was never broadcast
	clean := post("what does the scheduler do?")
	if !strings.Contains(clean, "scheduler") {
		t.Fatalf("clean response should echo the question: %s", clean)
	}

	waitFor(t, func() bool { return conn.frameCount() >= 1 })
	frame := conn.frame(0)
	if !strings.Contains(frame, hub.EventNewQuestion) || !strings.Contains(frame, "scheduler") {
		t.Fatalf("first broadcast frame is not the clean question: %s", frame)
	}
}
