package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/lshigami/studyquiz/internal/model"
)

type ReportService interface {
	RenderText(questions []model.Question, summary *model.GradedSummary, completedAt time.Time) string
	ShareText(summary *model.GradedSummary) string
}

type reportService struct{}

func NewReportService() ReportService {
	return &reportService{}
}

// RenderText produces the downloadable plain-text results document.
// summary.PerQuestion is expected in the same order as questions.
func (s *reportService) RenderText(questions []model.Question, summary *model.GradedSummary, completedAt time.Time) string {
	var b strings.Builder
	b.WriteString("Personal Knowledge Quiz Results\n")
	b.WriteString("==============================\n\n")
	b.WriteString(fmt.Sprintf("Score: %d/%d (%d%%)\n", summary.Score, summary.TotalQuestions, summary.Percentage))
	b.WriteString(fmt.Sprintf("Grade: %s\n", summary.Grade))
	b.WriteString(fmt.Sprintf("Completed: %s\n\n", completedAt.Format(time.RFC1123)))
	b.WriteString(summary.Message)
	b.WriteString("\n\nQuestions and Answers:\n")

	for i, q := range questions {
		var result model.QuestionResult
		if i < len(summary.PerQuestion) {
			result = summary.PerQuestion[i]
		}
		mark := "✗"
		if result.IsCorrect {
			mark = "✓"
		}
		b.WriteString(fmt.Sprintf("\n%d. %s\n", i+1, q.Prompt))
		if len(q.Options) > 0 {
			for j, opt := range q.Options {
				b.WriteString(fmt.Sprintf("   %c) %s\n", 'A'+j, opt))
			}
		}
		b.WriteString(fmt.Sprintf("Your Answer: %s %s\n", result.UserAnswer, mark))
		b.WriteString(fmt.Sprintf("Correct Answer: %s\n", q.CorrectAnswer))
		b.WriteString(fmt.Sprintf("Explanation: %s\n", q.Explanation))
	}
	return b.String()
}

func (s *reportService) ShareText(summary *model.GradedSummary) string {
	return fmt.Sprintf("I just scored %d/%d (%d%%) on my Personal Knowledge Quiz! 🎯", summary.Score, summary.TotalQuestions, summary.Percentage)
}
