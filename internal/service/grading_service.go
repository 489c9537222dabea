package service

import (
	"fmt"
	"math"

	"github.com/lshigami/studyquiz/internal/model"
)

// NoAnswerProvided stands in for a question the user left unanswered.
const NoAnswerProvided = "No answer provided"

type GradingService interface {
	Grade(questions []model.Question, userAnswers map[string]string) (*model.GradedSummary, error)
}

type gradingServiceImpl struct{}

func NewGradingService() GradingService {
	return &gradingServiceImpl{}
}

// Grade scores every question, including unanswered ones, and derives the
// percentage, letter grade and assessment. It has no side effects.
func (s *gradingServiceImpl) Grade(questions []model.Question, userAnswers map[string]string) (*model.GradedSummary, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: at least one question is required", ErrGradingInputInvalid)
	}

	summary := &model.GradedSummary{
		TotalQuestions: len(questions),
		PerQuestion:    make([]model.QuestionResult, 0, len(questions)),
	}
	for _, q := range questions {
		submitted := userAnswers[q.ID]
		correct := submitted != "" && IsCorrectAnswer(submitted, q.CorrectAnswer)
		if submitted == "" {
			submitted = NoAnswerProvided
		}
		if correct {
			summary.Score++
		}
		summary.PerQuestion = append(summary.PerQuestion, model.QuestionResult{
			QuestionID:    q.ID,
			UserAnswer:    submitted,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     correct,
		})
	}

	summary.Percentage = Percentage(summary.Score, summary.TotalQuestions)
	summary.Grade = LetterGrade(summary.Percentage)
	summary.Assessment, summary.Message = Assess(summary.Percentage)
	return summary, nil
}

// IsCorrectAnswer compares answers case-insensitively after trimming whitespace.
func IsCorrectAnswer(submitted, correct string) bool {
	return model.AnswerMatches(submitted, correct)
}

// Percentage rounds half up. total must be positive.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(float64(score)/float64(total)*100 + 0.5))
}

func LetterGrade(percentage int) string {
	switch {
	case percentage >= 97:
		return "A+"
	case percentage >= 93:
		return "A"
	case percentage >= 90:
		return "A-"
	case percentage >= 87:
		return "B+"
	case percentage >= 83:
		return "B"
	case percentage >= 80:
		return "B-"
	case percentage >= 77:
		return "C+"
	case percentage >= 73:
		return "C"
	case percentage >= 70:
		return "C-"
	case percentage >= 67:
		return "D+"
	case percentage >= 65:
		return "D"
	default:
		return "F"
	}
}

func Assess(percentage int) (model.Assessment, string) {
	switch {
	case percentage >= 90:
		return model.AssessmentMastered, "Excellent work! You've mastered this material."
	case percentage >= 70:
		return model.AssessmentSolid, "Great job! You have a solid understanding."
	case percentage >= 50:
		return model.AssessmentGoodEffort, "Good effort! Review the explanations to improve."
	default:
		return model.AssessmentKeepStudying, "Keep studying! Focus on the areas you missed."
	}
}
