// internals/features/reports/service/report_service.go
package service

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"gorm.io/gorm"

	classModel "raisemyhand_backend/internals/features/classes/model"
	qModel "raisemyhand_backend/internals/features/questions/model"
	qService "raisemyhand_backend/internals/features/questions/service"
)

// ReportService assembles the post-session export: every question a
// meeting accumulated (all moderation states, raw text), top-voted
// first, plus aggregate stats.
type ReportService struct {
	DB        *gorm.DB
	Questions *qService.QuestionService
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db, Questions: qService.NewQuestionService(db)}
}

type ReportQuestion struct {
	Number            int        `json:"number"`
	Text              string     `json:"text"`
	Status            string     `json:"status"`
	Upvotes           int        `json:"upvotes"`
	IsAnsweredInClass bool       `json:"is_answered_in_class"`
	WrittenAnswer     *string    `json:"written_answer,omitempty"`
	AnswerPublished   bool       `json:"answer_published"`
	CreatedAt         time.Time  `json:"created_at"`
	ReviewedAt        *time.Time `json:"reviewed_at,omitempty"`
}

type ReportStats struct {
	TotalQuestions   int `json:"total_questions"`
	ApprovedCount    int `json:"approved_count"`
	FlaggedCount     int `json:"flagged_count"`
	RejectedCount    int `json:"rejected_count"`
	AnsweredInClass  int `json:"answered_in_class"`
	WrittenAnswers   int `json:"written_answers"`
	TotalUpvotes     int `json:"total_upvotes"`
	DistinctStudents int `json:"distinct_students"`
}

type MeetingReport struct {
	MeetingCode string           `json:"meeting_code"`
	Title       string           `json:"title"`
	IsActive    bool             `json:"is_active"`
	StartedAt   *time.Time       `json:"started_at,omitempty"`
	EndedAt     *time.Time       `json:"ended_at,omitempty"`
	GeneratedAt time.Time        `json:"generated_at"`
	Stats       ReportStats      `json:"stats"`
	Questions   []ReportQuestion `json:"questions"`
}

// Build assembles the report for a meeting, top-voted questions first
// with submission order as tie-break.
func (s *ReportService) Build(meeting *classModel.MeetingModel) (*MeetingReport, error) {
	questions, err := s.Questions.InstructorQuestions(meeting.MeetingID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(questions))
	students := make(map[string]struct{}, len(questions))
	for i := range questions {
		ids = append(ids, questions[i].QuestionID)
		students[questions[i].QuestionStudentID] = struct{}{}
	}
	answers, err := s.Questions.AllAnswers(ids)
	if err != nil {
		return nil, err
	}

	report := &MeetingReport{
		MeetingCode: meeting.MeetingCode,
		Title:       meeting.MeetingTitle,
		IsActive:    meeting.MeetingIsActive,
		StartedAt:   meeting.MeetingStartedAt,
		EndedAt:     meeting.MeetingEndedAt,
		GeneratedAt: time.Now().UTC(),
		Questions:   make([]ReportQuestion, 0, len(questions)),
	}
	report.Stats.TotalQuestions = len(questions)
	report.Stats.DistinctStudents = len(students)

	for i := range questions {
		q := &questions[i]
		rq := ReportQuestion{
			Number:            q.QuestionNumber,
			Text:              q.QuestionText,
			Status:            string(q.QuestionStatus),
			Upvotes:           q.QuestionUpvotes,
			IsAnsweredInClass: q.QuestionIsAnsweredInClass,
			CreatedAt:         q.QuestionCreatedAt,
			ReviewedAt:        q.QuestionReviewedAt,
		}
		if a, ok := answers[q.QuestionID]; ok {
			text := a.AnswerText
			rq.WrittenAnswer = &text
			rq.AnswerPublished = a.AnswerIsApproved
			report.Stats.WrittenAnswers++
		}
		report.Questions = append(report.Questions, rq)

		report.Stats.TotalUpvotes += q.QuestionUpvotes
		if q.QuestionIsAnsweredInClass {
			report.Stats.AnsweredInClass++
		}
		switch q.QuestionStatus {
		case qModel.QuestionStatusApproved:
			report.Stats.ApprovedCount++
		case qModel.QuestionStatusFlagged:
			report.Stats.FlaggedCount++
		case qModel.QuestionStatusRejected:
			report.Stats.RejectedCount++
		}
	}
	return report, nil
}

// WriteCSV streams the question rows of a report as CSV.
func (s *ReportService) WriteCSV(w io.Writer, report *MeetingReport) error {
	cw := csv.NewWriter(w)

	header := []string{
		"number", "text", "status", "upvotes",
		"answered_in_class", "written_answer", "answer_published",
		"created_at", "reviewed_at",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, q := range report.Questions {
		answer := ""
		if q.WrittenAnswer != nil {
			answer = *q.WrittenAnswer
		}
		reviewed := ""
		if q.ReviewedAt != nil {
			reviewed = q.ReviewedAt.UTC().Format(time.RFC3339)
		}
		row := []string{
			strconv.Itoa(q.Number),
			q.Text,
			q.Status,
			strconv.Itoa(q.Upvotes),
			strconv.FormatBool(q.IsAnsweredInClass),
			answer,
			strconv.FormatBool(q.AnswerPublished),
			q.CreatedAt.UTC().Format(time.RFC3339),
			reviewed,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
