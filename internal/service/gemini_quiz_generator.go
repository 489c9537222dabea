package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/studyquiz/config"
	"github.com/lshigami/studyquiz/internal/model"
	"github.com/rs/zerolog/log"
	"github.com/xeipuuv/gojsonschema"
	"google.golang.org/api/option"
)

// quizResponseSchema is the structure Gemini is constrained to in JSON mode.
var quizResponseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"questions": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"type": {
						Type: genai.TypeString,
						Enum: []string{string(model.MultipleChoice), string(model.TrueFalse), string(model.ShortAnswer)},
					},
					"question": {Type: genai.TypeString, Description: "The question text shown to the learner"},
					"options": {
						Type:        genai.TypeArray,
						Items:       &genai.Schema{Type: genai.TypeString},
						Description: "Exactly 4 options for multiple-choice. Omit for other types.",
					},
					"correctAnswer": {Type: genai.TypeString, Description: "For multiple-choice the text of the correct option, for true-false True or False"},
					"explanation":   {Type: genai.TypeString, Description: "Why the answer is correct, referencing the study material"},
				},
				Required: []string{"type", "question", "correctAnswer", "explanation"},
			},
		},
	},
	Required: []string{"questions"},
}

// quizResponseJSONSchema mirrors quizResponseSchema and adds the
// multiple-choice option count, which the Gemini schema cannot express.
const quizResponseJSONSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["questions"],
	"properties": {
		"questions": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["type", "question", "correctAnswer", "explanation"],
				"properties": {
					"id": {"type": "string"},
					"type": {"enum": ["multiple-choice", "true-false", "short-answer"]},
					"question": {"type": "string", "minLength": 1},
					"options": {"type": "array", "items": {"type": "string"}},
					"correctAnswer": {"type": "string", "minLength": 1},
					"explanation": {"type": "string", "minLength": 1}
				},
				"if": {"properties": {"type": {"const": "multiple-choice"}}},
				"then": {
					"required": ["options"],
					"properties": {"options": {"minItems": 4, "maxItems": 4}}
				}
			}
		}
	}
}`

type quizResponse struct {
	Questions []model.Question `json:"questions"`
}

type GeminiQuizGenerator struct {
	client      *genai.Client
	modelName   string
	temperature float32
	validator   *gojsonschema.Schema
}

func newQuizResponseValidator() (*gojsonschema.Schema, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(quizResponseJSONSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile quiz response schema: %w", err)
	}
	return schema, nil
}

// NewGeminiQuizGenerator returns a generator backed by Gemini. Without an API
// key the generator is still returned but every call fails with ErrGeneratorUnavailable.
func NewGeminiQuizGenerator(cfg *config.Config) (*GeminiQuizGenerator, error) {
	validator, err := newQuizResponseValidator()
	if err != nil {
		return nil, err
	}
	g := &GeminiQuizGenerator{
		modelName:   cfg.Gemini.Model,
		temperature: cfg.Gemini.Temperature,
		validator:   validator,
	}

	if cfg.Gemini.ApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Quiz generation will be non-functional.")
		return g, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	g.client = client
	return g, nil
}

func (g *GeminiQuizGenerator) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

func (g *GeminiQuizGenerator) GenerateQuestions(ctx context.Context, prompt string) ([]model.Question, error) {
	if g.client == nil {
		return nil, ErrGeneratorUnavailable
	}

	// GenerativeModel carries mutable config, so each call gets its own.
	m := g.client.GenerativeModel(g.modelName)
	m.SetTemperature(g.temperature)
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = quizResponseSchema

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no content")
	}

	var raw strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			raw.WriteString(string(txt))
		}
	}
	if raw.Len() == 0 {
		return nil, fmt.Errorf("gemini returned no text content")
	}

	return g.decode(raw.String())
}

// decode validates the raw JSON once against the response schema and
// unmarshals it. Nothing downstream re-validates structure.
func (g *GeminiQuizGenerator) decode(raw string) ([]model.Question, error) {
	result, err := g.validator.Validate(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("gemini response is not valid JSON: %w", err)
	}
	if !result.Valid() {
		var msgs []string
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		log.Warn().Strs("violations", msgs).Msg("Gemini response failed schema validation")
		return nil, fmt.Errorf("gemini response failed schema validation: %s", strings.Join(msgs, "; "))
	}

	var parsed quizResponse
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode gemini response: %w", err)
	}
	return parsed.Questions, nil
}
