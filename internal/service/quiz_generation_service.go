package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/lshigami/studyquiz/config"
	"github.com/lshigami/studyquiz/internal/model"
	"github.com/rs/zerolog/log"
)

// QuizGenerator is the external text-generation capability. Implementations
// constrain output to the fixed question-list schema and either return
// conformant questions or an error.
type QuizGenerator interface {
	GenerateQuestions(ctx context.Context, prompt string) ([]model.Question, error)
}

type QuizGenerationService interface {
	Generate(ctx context.Context, studyMaterial string, cfg *model.QuizConfig) ([]model.Question, error)
}

type quizGenerationService struct {
	generator QuizGenerator
	cfg       config.Generation
}

func NewQuizGenerationService(generator QuizGenerator, cfg *config.Config) QuizGenerationService {
	return &quizGenerationService{
		generator: generator,
		cfg:       cfg.Generation,
	}
}

// Generate builds the generation instruction, invokes the generator once and
// returns a canonical question list. The result has exactly cfg.Length items
// with ids q1..qN.
func (s *quizGenerationService) Generate(ctx context.Context, studyMaterial string, cfg *model.QuizConfig) ([]model.Question, error) {
	quizCfg, err := s.validateInput(studyMaterial, cfg)
	if err != nil {
		return nil, err
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	prompt := BuildQuizPrompt(studyMaterial, quizCfg)
	log.Info().
		Int("length", quizCfg.Length).
		Str("difficulty", string(quizCfg.Difficulty)).
		Interface("questionTypes", quizCfg.QuestionTypes).
		Int("materialChars", utf8.RuneCountInString(studyMaterial)).
		Msg("Generating quiz")

	generated, err := s.generator.GenerateQuestions(ctx, prompt)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			log.Error().Err(err).Dur("timeout", s.cfg.Timeout).Msg("Quiz generation timed out")
			return nil, fmt.Errorf("%w: timed out after %s: %w", ErrGenerationFailed, s.cfg.Timeout, err)
		}
		log.Error().Err(err).Msg("Quiz generator returned an error")
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	questions := normalizeQuestions(generated)
	if err := s.checkQuestions(questions, quizCfg); err != nil {
		log.Warn().Err(err).Int("received", len(questions)).Msg("Generated quiz rejected")
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	log.Info().Int("questions", len(questions)).Msg("Quiz generated")
	return questions, nil
}

// validateInput returns a copy of cfg with duplicate question types removed.
func (s *quizGenerationService) validateInput(studyMaterial string, cfg *model.QuizConfig) (model.QuizConfig, error) {
	if strings.TrimSpace(studyMaterial) == "" {
		return model.QuizConfig{}, fmt.Errorf("%w: study material is required", ErrInvalidInput)
	}
	if cfg == nil {
		return model.QuizConfig{}, fmt.Errorf("%w: quiz configuration is required", ErrInvalidInput)
	}
	if cfg.Length < 1 {
		return model.QuizConfig{}, fmt.Errorf("%w: length must be at least 1, got %d", ErrInvalidInput, cfg.Length)
	}
	if s.cfg.MaxQuestions > 0 && cfg.Length > s.cfg.MaxQuestions {
		return model.QuizConfig{}, fmt.Errorf("%w: length must be at most %d, got %d", ErrInvalidInput, s.cfg.MaxQuestions, cfg.Length)
	}
	if !cfg.Difficulty.Valid() {
		return model.QuizConfig{}, fmt.Errorf("%w: unsupported difficulty %q", ErrInvalidInput, cfg.Difficulty)
	}
	if len(cfg.QuestionTypes) == 0 {
		return model.QuizConfig{}, fmt.Errorf("%w: at least one question type is required", ErrInvalidInput)
	}

	types := make([]model.QuestionType, 0, len(cfg.QuestionTypes))
	for _, t := range cfg.QuestionTypes {
		if !t.Valid() {
			return model.QuizConfig{}, fmt.Errorf("%w: unsupported question type %q", ErrInvalidInput, t)
		}
		if !slices.Contains(types, t) {
			types = append(types, t)
		}
	}

	return model.QuizConfig{
		Length:        cfg.Length,
		Difficulty:    cfg.Difficulty,
		QuestionTypes: types,
	}, nil
}

// normalizeQuestions assigns ids in generation order, overwriting whatever the
// generator produced, and canonicalizes the item shapes.
func normalizeQuestions(generated []model.Question) []model.Question {
	questions := make([]model.Question, len(generated))
	for i, g := range generated {
		q := model.Question{
			ID:            fmt.Sprintf("q%d", i+1),
			Type:          g.Type,
			Prompt:        strings.TrimSpace(g.Prompt),
			CorrectAnswer: strings.TrimSpace(g.CorrectAnswer),
			Explanation:   strings.TrimSpace(g.Explanation),
		}
		switch g.Type {
		case model.MultipleChoice:
			q.Options = make([]string, len(g.Options))
			for j, opt := range g.Options {
				q.Options[j] = strings.TrimSpace(opt)
			}
		case model.TrueFalse:
			q.CorrectAnswer, _ = model.CanonicalTrueFalse(q.CorrectAnswer)
		}
		questions[i] = q
	}
	return questions
}

func (s *quizGenerationService) checkQuestions(questions []model.Question, cfg model.QuizConfig) error {
	if len(questions) != cfg.Length {
		return fmt.Errorf("expected %d questions, got %d", cfg.Length, len(questions))
	}
	for _, q := range questions {
		if !q.Type.Valid() {
			return fmt.Errorf("question %s has unsupported type %q", q.ID, q.Type)
		}
		if q.Type == model.MultipleChoice && len(q.Options) != model.MultipleChoiceOptionCount {
			return fmt.Errorf("question %s has %d options, want %d", q.ID, len(q.Options), model.MultipleChoiceOptionCount)
		}
		if !s.cfg.StrictAnswerCheck {
			continue
		}
		switch q.Type {
		case model.MultipleChoice:
			if !slices.Contains(q.Options, q.CorrectAnswer) {
				return fmt.Errorf("question %s: correct answer %q is not one of its options", q.ID, q.CorrectAnswer)
			}
		case model.TrueFalse:
			if q.CorrectAnswer != model.AnswerTrue && q.CorrectAnswer != model.AnswerFalse {
				return fmt.Errorf("question %s: true-false answer %q is not True or False", q.ID, q.CorrectAnswer)
			}
		}
		if q.Explanation == "" {
			return fmt.Errorf("question %s has no explanation", q.ID)
		}
	}
	return nil
}

var difficultyFraming = map[model.Difficulty]string{
	model.Easy:   "Basic recall and understanding",
	model.Medium: "Application and analysis",
	model.Hard:   "Synthesis and evaluation",
}

// BuildQuizPrompt renders the generation instruction with the study material embedded verbatim.
func BuildQuizPrompt(studyMaterial string, cfg model.QuizConfig) string {
	typeNames := make([]string, len(cfg.QuestionTypes))
	for i, t := range cfg.QuestionTypes {
		typeNames[i] = string(t)
	}
	types := strings.Join(typeNames, ", ")

	var b strings.Builder
	b.WriteString("You are an expert quiz generator. Create a comprehensive quiz based on the provided study material.\n\n")
	b.WriteString("Study Material:\n---\n")
	b.WriteString(studyMaterial)
	b.WriteString("\n---\n\n")

	b.WriteString("Quiz Requirements:\n")
	b.WriteString(fmt.Sprintf("- Number of questions: %d\n", cfg.Length))
	b.WriteString(fmt.Sprintf("- Difficulty level: %s\n", cfg.Difficulty))
	b.WriteString(fmt.Sprintf("- Question types: %s\n\n", types))

	b.WriteString("Instructions:\n")
	b.WriteString(fmt.Sprintf("1. Generate exactly %d questions from the study material.\n", cfg.Length))
	b.WriteString(fmt.Sprintf("2. Use only these question types and distribute them as evenly as possible: %s.\n", types))
	b.WriteString("3. For multiple-choice questions: provide exactly 4 options with only 1 correct answer. The correct answer must match one option verbatim. Distractors must be plausible but clearly incorrect.\n")
	b.WriteString("4. For true-false questions: make statements that are unambiguously true or false. The correct answer must be \"True\" or \"False\".\n")
	b.WriteString("5. For short-answer questions: create fill-in-the-blank style questions whose answer is a single short phrase.\n")
	b.WriteString(fmt.Sprintf("6. Difficulty level %q: %s.\n", cfg.Difficulty, difficultyFraming[cfg.Difficulty]))
	b.WriteString("7. Each question must include a detailed explanation referencing the original material.\n")
	b.WriteString("8. Cover different parts of the study material. Do not ask about the same fact twice.\n")
	b.WriteString("9. Make questions specific and avoid ambiguity.\n")
	return b.String()
}
