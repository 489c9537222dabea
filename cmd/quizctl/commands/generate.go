package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lshigami/studyquiz/config"
	"github.com/lshigami/studyquiz/internal/model"
	"github.com/lshigami/studyquiz/internal/service"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// GenerateCommand returns the generate command
func GenerateCommand() *cobra.Command {
	var (
		materialPath string
		length       int
		difficulty   string
		types        []string
		retries      int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a quiz from study material",
		Long: `Generate a quiz from a study material file using Gemini.

Requires GEMINI_API_KEY. Failed generations are retried from scratch up to --retries times.
The output is a session document that "quizctl grade" accepts once userAnswers are filled in.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if retries < 0 {
				return fmt.Errorf("--retries must not be negative, got %d", retries)
			}
			material, err := os.ReadFile(materialPath)
			if err != nil {
				return fmt.Errorf("failed to read study material: %w", err)
			}

			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			generator, err := service.NewGeminiQuizGenerator(cfg)
			if err != nil {
				return err
			}
			defer generator.Close()

			quizCfg := &model.QuizConfig{Length: length, Difficulty: model.Difficulty(difficulty)}
			for _, t := range types {
				quizCfg.QuestionTypes = append(quizCfg.QuestionTypes, model.QuestionType(t))
			}

			svc := service.NewQuizGenerationService(generator, cfg)
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), svc, string(material), quizCfg, retries)
		},
	}

	cmd.Flags().StringVarP(&materialPath, "material", "m", "", "Path to a plain-text study material file")
	cmd.Flags().IntVarP(&length, "length", "n", 10, "Number of questions")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", string(model.Medium), "Difficulty: easy, medium or hard")
	cmd.Flags().StringSliceVarP(&types, "types", "t", []string{string(model.MultipleChoice)}, "Question types: multiple-choice, true-false, short-answer")
	cmd.Flags().IntVar(&retries, "retries", 2, "Additional attempts after a failed generation")
	_ = cmd.MarkFlagRequired("material")

	return cmd
}

// runGenerate writes the generated session document to out. Nothing else is
// written to out, so the output can be fed back to "quizctl grade".
func runGenerate(ctx context.Context, out io.Writer, svc service.QuizGenerationService, material string, cfg *model.QuizConfig, retries int) error {
	questions, err := generateWithRetries(ctx, svc, material, cfg, retries)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(model.QuizSession{Questions: questions, UserAnswers: map[string]string{}})
}

// generateWithRetries re-issues the full request after a GenerationFailed
// error. Invalid input is returned immediately. At least one attempt is made.
func generateWithRetries(ctx context.Context, svc service.QuizGenerationService, material string, cfg *model.QuizConfig, retries int) ([]model.Question, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	retries = max(retries, 0)
	var err error
	for attempt := 0; attempt <= retries; attempt++ {
		var questions []model.Question
		questions, err = svc.Generate(ctx, material, cfg)
		if err == nil {
			return questions, nil
		}
		if !errors.Is(err, service.ErrGenerationFailed) || errors.Is(err, service.ErrGeneratorUnavailable) || ctx.Err() != nil {
			return nil, err
		}
		log.Warn().Err(err).Int("attempt", attempt+1).Msg("Quiz generation failed, retrying")
	}
	return nil, err
}
