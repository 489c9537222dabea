package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lshigami/studyquiz/config"
	"github.com/lshigami/studyquiz/internal/logger"
	"github.com/lshigami/studyquiz/internal/model"
	"github.com/lshigami/studyquiz/internal/service"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlSession = `
questions:
  - id: q1
    type: true-false
    question: Cells contain DNA.
    correctAnswer: "True"
    explanation: Sentence 1.
  - id: q2
    type: multiple-choice
    question: What produces ATP?
    options: [Nucleus, Mitochondria, Ribosome, Golgi]
    correctAnswer: Mitochondria
    explanation: Sentence 2.
userAnswers:
  q1: "true"
  q2: nucleus
`

func TestParseSession(t *testing.T) {
	session, err := ParseSession([]byte(yamlSession), ".yaml")
	require.NoError(t, err)
	require.Len(t, session.Questions, 2)
	assert.Equal(t, model.MultipleChoice, session.Questions[1].Type)
	assert.Equal(t, "What produces ATP?", session.Questions[1].Prompt)
	assert.Len(t, session.Questions[1].Options, 4)
	assert.Equal(t, "nucleus", session.UserAnswers["q2"])

	jsonSession := `{"questions":[{"id":"q1","type":"short-answer","question":"Q","correctAnswer":"A","explanation":"E"}],"userAnswers":{"q1":"a"}}`
	session, err = ParseSession([]byte(jsonSession), ".JSON")
	require.NoError(t, err)
	assert.Equal(t, "Q", session.Questions[0].Prompt)
	assert.Equal(t, 1, session.TotalQuestions())

	_, err = ParseSession([]byte(jsonSession), ".toml")
	assert.Error(t, err)

	_, err = ParseSession([]byte("{not json"), ".json")
	assert.Error(t, err)
}

func TestGradeCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlSession), 0o600))

	var out bytes.Buffer
	cmd := GradeCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())

	var summary model.GradedSummary
	require.NoError(t, json.Unmarshal(out.Bytes(), &summary))
	assert.Equal(t, 1, summary.Score)
	assert.Equal(t, 50, summary.Percentage)
	assert.Equal(t, "F", summary.Grade)

	out.Reset()
	cmd = GradeCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--report", path})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Score: 1/2 (50%)")
	assert.Contains(t, out.String(), "Your Answer: nucleus ✗")
}

type scriptedGenerationService struct {
	results []error
	calls   int
}

func (s *scriptedGenerationService) Generate(_ context.Context, _ string, _ *model.QuizConfig) ([]model.Question, error) {
	err := s.results[s.calls]
	s.calls++
	if err != nil {
		return nil, err
	}
	return []model.Question{{ID: "q1", Type: model.ShortAnswer, Prompt: "Q", CorrectAnswer: "A", Explanation: "E"}}, nil
}

func TestGenerateWithRetries(t *testing.T) {
	failed := fmt.Errorf("%w: timed out", service.ErrGenerationFailed)

	svc := &scriptedGenerationService{results: []error{failed, failed, nil}}
	questions, err := generateWithRetries(context.Background(), svc, "material", &model.QuizConfig{}, 2)
	require.NoError(t, err)
	assert.Len(t, questions, 1)
	assert.Equal(t, 3, svc.calls)

	svc = &scriptedGenerationService{results: []error{failed, failed}}
	_, err = generateWithRetries(context.Background(), svc, "material", &model.QuizConfig{}, 1)
	assert.ErrorIs(t, err, service.ErrGenerationFailed)
	assert.Equal(t, 2, svc.calls)

	svc = &scriptedGenerationService{results: []error{fmt.Errorf("%w: length", service.ErrInvalidInput)}}
	_, err = generateWithRetries(context.Background(), svc, "material", &model.QuizConfig{}, 3)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	assert.Equal(t, 1, svc.calls)

	svc = &scriptedGenerationService{results: []error{fmt.Errorf("%w: %w", service.ErrGenerationFailed, service.ErrGeneratorUnavailable)}}
	_, err = generateWithRetries(context.Background(), svc, "material", &model.QuizConfig{}, 3)
	assert.ErrorIs(t, err, service.ErrGeneratorUnavailable)
	assert.Equal(t, 1, svc.calls)

	svc = &scriptedGenerationService{results: []error{failed}}
	questions, err = generateWithRetries(context.Background(), svc, "material", &model.QuizConfig{}, -1)
	assert.Nil(t, questions)
	assert.ErrorIs(t, err, service.ErrGenerationFailed)
	assert.Equal(t, 1, svc.calls)
}

func TestGenerateCommand_RejectsNegativeRetries(t *testing.T) {
	cmd := GenerateCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--material", filepath.Join(t.TempDir(), "missing.txt"), "--retries", "-1"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--retries")
}

type staticQuizGenerator struct{}

func (staticQuizGenerator) GenerateQuestions(_ context.Context, _ string) ([]model.Question, error) {
	return []model.Question{
		{Type: model.TrueFalse, Prompt: "Cells contain DNA.", CorrectAnswer: "true", Explanation: "Sentence 1."},
		{Type: model.ShortAnswer, Prompt: "ATP is made in the ____.", CorrectAnswer: "mitochondria", Explanation: "Sentence 2."},
	}, nil
}

func TestRunGenerate_OutputIsGradableSession(t *testing.T) {
	previous := log.Logger
	defer func() { log.Logger = previous }()
	var stderr bytes.Buffer
	logger.Init(&stderr)

	cfg := &config.Config{Generation: config.Generation{Timeout: 5 * time.Second, MaxQuestions: 50}}
	svc := service.NewQuizGenerationService(staticQuizGenerator{}, cfg)
	quizCfg := &model.QuizConfig{
		Length:        2,
		Difficulty:    model.Easy,
		QuestionTypes: []model.QuestionType{model.TrueFalse, model.ShortAnswer},
	}

	var stdout bytes.Buffer
	require.NoError(t, runGenerate(context.Background(), &stdout, svc, "Cells contain DNA. ATP is made in the mitochondria.", quizCfg, 0))

	assert.Contains(t, stderr.String(), "Generating quiz")
	assert.NotContains(t, stdout.String(), "Generating quiz")

	session, err := ParseSession(stdout.Bytes(), ".json")
	require.NoError(t, err)
	require.Len(t, session.Questions, 2)
	assert.Equal(t, "q1", session.Questions[0].ID)
	assert.Equal(t, model.AnswerTrue, session.Questions[0].CorrectAnswer)
	assert.Empty(t, session.UserAnswers)

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, stdout.Bytes(), 0o600))
	var graded bytes.Buffer
	cmd := GradeCommand()
	cmd.SetOut(&graded)
	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, graded.String(), `"totalQuestions": 2`)
}

func TestRootCommand_LeavesErrorPrintingToCaller(t *testing.T) {
	var stdout, stderr bytes.Buffer
	root := RootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"grade", filepath.Join(t.TempDir(), "missing.json")})

	err := root.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read session file")
	assert.Empty(t, stderr.String())
	assert.Empty(t, stdout.String())
}
