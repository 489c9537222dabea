package service

import (
	"fmt"
	"testing"

	"github.com/lshigami/studyquiz/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shortAnswerQuestions(n int, answer string) []model.Question {
	questions := make([]model.Question, n)
	for i := range questions {
		questions[i] = model.Question{
			ID:            fmt.Sprintf("q%d", i+1),
			Type:          model.ShortAnswer,
			Prompt:        "The powerhouse of the cell is the ____.",
			CorrectAnswer: answer,
			Explanation:   "Stated in the second paragraph.",
		}
	}
	return questions
}

func TestLetterGrade(t *testing.T) {
	testCases := []struct {
		percentage int
		expected   string
	}{
		{100, "A+"},
		{97, "A+"},
		{96, "A"},
		{93, "A"},
		{92, "A-"},
		{90, "A-"},
		{89, "B+"},
		{87, "B+"},
		{86, "B"},
		{83, "B"},
		{82, "B-"},
		{80, "B-"},
		{79, "C+"},
		{77, "C+"},
		{76, "C"},
		{73, "C"},
		{72, "C-"},
		{70, "C-"},
		{69, "D+"},
		{67, "D+"},
		{66, "D"},
		{65, "D"},
		{64, "F"},
		{0, "F"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d%%", tc.percentage), func(t *testing.T) {
			assert.Equal(t, tc.expected, LetterGrade(tc.percentage))
		})
	}
}

func TestAssess(t *testing.T) {
	testCases := []struct {
		percentage int
		expected   model.Assessment
	}{
		{100, model.AssessmentMastered},
		{90, model.AssessmentMastered},
		{89, model.AssessmentSolid},
		{70, model.AssessmentSolid},
		{69, model.AssessmentGoodEffort},
		{50, model.AssessmentGoodEffort},
		{49, model.AssessmentKeepStudying},
		{0, model.AssessmentKeepStudying},
	}

	for _, tc := range testCases {
		assessment, message := Assess(tc.percentage)
		assert.Equal(t, tc.expected, assessment, "percentage %d", tc.percentage)
		assert.NotEmpty(t, message)
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0, Percentage(0, 3))
	assert.Equal(t, 33, Percentage(1, 3))
	assert.Equal(t, 67, Percentage(2, 3))
	assert.Equal(t, 100, Percentage(3, 3))
	assert.Equal(t, 13, Percentage(1, 8), "12.5 rounds half up")
	assert.Equal(t, 63, Percentage(5, 8), "62.5 rounds half up")
	assert.Equal(t, 29, Percentage(29, 100))
	assert.Equal(t, 0, Percentage(0, 0))
}

func TestPercentage_MonotonicInScore(t *testing.T) {
	for total := 1; total <= 60; total++ {
		previous := -1
		for score := 0; score <= total; score++ {
			p := Percentage(score, total)
			assert.GreaterOrEqual(t, p, previous, "score %d/%d", score, total)
			assert.GreaterOrEqual(t, p, 0)
			assert.LessOrEqual(t, p, 100)
			previous = p
		}
	}
}

func TestGrade_NormalizesAnswers(t *testing.T) {
	svc := NewGradingService()
	questions := []model.Question{{ID: "q1", Type: model.ShortAnswer, CorrectAnswer: "Paris", Explanation: "x"}}

	for _, answer := range []string{" Paris ", "paris", "Paris", "PARIS\n"} {
		summary, err := svc.Grade(questions, map[string]string{"q1": answer})
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Score, "answer %q", answer)
		assert.True(t, summary.PerQuestion[0].IsCorrect)
	}

	summary, err := svc.Grade(questions, map[string]string{"q1": "Pari s"})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Score)
}

func TestGrade_MissingAnswerIsIncorrect(t *testing.T) {
	svc := NewGradingService()
	questions := []model.Question{{ID: "q1", Type: model.ShortAnswer, CorrectAnswer: "42", Explanation: "x"}}

	summary, err := svc.Grade(questions, map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Score)
	assert.Equal(t, 1, summary.TotalQuestions)
	assert.Equal(t, 0, summary.Percentage)
	assert.Equal(t, "F", summary.Grade)
	require.Len(t, summary.PerQuestion, 1)
	assert.Equal(t, NoAnswerProvided, summary.PerQuestion[0].UserAnswer)
	assert.False(t, summary.PerQuestion[0].IsCorrect)

	summary, err = svc.Grade(questions, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Score)
}

func TestGrade_ScoreMatchesSessionScore(t *testing.T) {
	svc := NewGradingService()
	session := model.QuizSession{
		Questions: []model.Question{
			{ID: "q1", Type: model.TrueFalse, CorrectAnswer: "True", Explanation: "x"},
			{ID: "q2", Type: model.ShortAnswer, CorrectAnswer: "Mitochondria", Explanation: "x"},
			{ID: "q3", Type: model.ShortAnswer, CorrectAnswer: NoAnswerProvided, Explanation: "x"},
			{ID: "q4", Type: model.ShortAnswer, CorrectAnswer: "ribosome", Explanation: "x"},
		},
		UserAnswers: map[string]string{"q1": " TRUE ", "q2": "nucleus", "q4": ""},
	}

	summary, err := svc.Grade(session.Questions, session.UserAnswers)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Score)
	assert.Equal(t, session.Score(), summary.Score)
	assert.Equal(t, session.TotalQuestions(), summary.TotalQuestions)
	assert.False(t, summary.PerQuestion[2].IsCorrect, "an unanswered question is never correct")
	assert.Equal(t, NoAnswerProvided, summary.PerQuestion[3].UserAnswer)
}

func TestGrade_EndToEndScenario(t *testing.T) {
	svc := NewGradingService()
	questions := []model.Question{
		{ID: "q1", Type: model.TrueFalse, Prompt: "Cells contain DNA.", CorrectAnswer: "True", Explanation: "Paragraph 1."},
		{ID: "q2", Type: model.ShortAnswer, Prompt: "The ____ produces ATP.", CorrectAnswer: "Mitochondria", Explanation: "Paragraph 2."},
	}

	summary, err := svc.Grade(questions, map[string]string{"q1": "true", "q2": "mitochondria"})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Score)
	assert.Equal(t, 2, summary.TotalQuestions)
	assert.Equal(t, 100, summary.Percentage)
	assert.Equal(t, "A+", summary.Grade)
	assert.Equal(t, model.AssessmentMastered, summary.Assessment)
}

func TestGrade_BandBoundaries(t *testing.T) {
	svc := NewGradingService()
	testCases := []struct {
		correct  int
		total    int
		expected string
	}{
		{90, 100, "A-"},
		{89, 100, "B+"},
		{65, 100, "D"},
		{64, 100, "F"},
	}

	for _, tc := range testCases {
		questions := shortAnswerQuestions(tc.total, "mitochondria")
		answers := make(map[string]string)
		for i := 0; i < tc.correct; i++ {
			answers[questions[i].ID] = "Mitochondria"
		}

		summary, err := svc.Grade(questions, answers)
		require.NoError(t, err)
		assert.Equal(t, tc.correct, summary.Percentage)
		assert.Equal(t, tc.expected, summary.Grade)
	}
}

func TestGrade_Idempotent(t *testing.T) {
	svc := NewGradingService()
	questions := shortAnswerQuestions(7, "ribosome")
	answers := map[string]string{"q1": "Ribosome", "q3": "ribosomes", "q4": " RIBOSOME", "q7": ""}

	first, err := svc.Grade(questions, answers)
	require.NoError(t, err)
	second, err := svc.Grade(questions, answers)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, first.Score)
	assert.Equal(t, 29, first.Percentage)
}

func TestGrade_EmptyQuestions(t *testing.T) {
	svc := NewGradingService()

	summary, err := svc.Grade(nil, map[string]string{"q1": "x"})

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, ErrGradingInputInvalid)
}
