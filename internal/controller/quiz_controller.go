package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/lshigami/studyquiz/internal/dto"
	"github.com/lshigami/studyquiz/internal/model"
	"github.com/lshigami/studyquiz/internal/service"
	"github.com/rs/zerolog/log"
)

const (
	msgMissingParameters = "Missing required parameters"
	msgGenerationFailed  = "Failed to generate quiz. Please try again."
	msgInvalidConfig     = "Invalid quiz configuration"
	msgInvalidBody       = "Invalid request body"
	msgInvalidQuestions  = "Invalid questions"
)

type QuizController struct {
	generationService service.QuizGenerationService
	gradingService    service.GradingService
	reportService     service.ReportService
	now               func() time.Time
}

func NewQuizController(gs service.QuizGenerationService, grs service.GradingService, rs service.ReportService) *QuizController {
	return &QuizController{
		generationService: gs,
		gradingService:    grs,
		reportService:     rs,
		now:               time.Now,
	}
}

func (ctrl *QuizController) RegisterRoutes(router *gin.Engine) {
	router.GET("/healthz", ctrl.Health)

	apiV1 := router.Group("/api/v1")
	{
		quizzes := apiV1.Group("/quizzes")
		quizzes.POST("/generate", ctrl.GenerateQuiz)
		quizzes.POST("/grade", ctrl.GradeQuiz)
	}
}

func (ctrl *QuizController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GenerateQuiz godoc
// @Summary Generate a quiz from study material
// @Description Builds a quiz of the requested length, difficulty and question types from free-form study text using the text-generation service.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Study material and quiz configuration"
// @Success 200 {object} dto.GenerateQuizResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required parameters or invalid configuration"
// @Failure 500 {object} dto.ErrorResponse "Generation failed, retry"
// @Router /quizzes/generate [post]
func (ctrl *QuizController) GenerateQuiz(c *gin.Context) {
	var req dto.GenerateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgMissingParameters})
			return
		}
		log.Warn().Err(err).Msg("Failed to bind GenerateQuizRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgInvalidBody})
		return
	}
	if strings.TrimSpace(req.StudyMaterial) == "" || req.Config == nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgMissingParameters})
		return
	}

	cfg := toQuizConfig(req.Config)
	questions, err := ctrl.generationService.Generate(c.Request.Context(), req.StudyMaterial, cfg)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			log.Warn().Err(err).Msg("Rejected quiz configuration")
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgInvalidConfig, Details: []string{err.Error()}})
			return
		}
		// The cause stays in the log; provider error text is never returned.
		log.Error().Err(err).Msg("Failed to generate quiz")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgGenerationFailed})
		return
	}

	resp := dto.GenerateQuizResponse{
		Metadata: dto.QuizMetadataDTO{
			TotalQuestions: len(questions),
			Difficulty:     string(cfg.Difficulty),
			QuestionTypes:  req.Config.QuestionTypes,
			GeneratedAt:    ctrl.now().UTC(),
		},
	}
	if err := copier.Copy(&resp.Questions, &questions); err != nil {
		log.Error().Err(err).Msg("Failed to copy questions to DTO")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgGenerationFailed})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GradeQuiz godoc
// @Summary Grade a completed quiz
// @Description Compares submitted answers with the canonical answers (case-insensitive, whitespace-trimmed) and returns score, percentage, letter grade and assessment. Use format=text to download a plain-text report.
// @Tags quizzes
// @Accept json
// @Produce json
// @Produce plain
// @Param request body dto.GradeQuizRequest true "Questions and submitted answers"
// @Param format query string false "Response format" Enums(json, text)
// @Success 200 {object} dto.GradedSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Malformed input or empty question list"
// @Router /quizzes/grade [post]
func (ctrl *QuizController) GradeQuiz(c *gin.Context) {
	var req dto.GradeQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind GradeQuizRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgInvalidBody})
		return
	}

	var questions []model.Question
	if err := copier.Copy(&questions, &req.Questions); err != nil {
		log.Warn().Err(err).Msg("Failed to copy question DTOs")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgInvalidBody})
		return
	}
	if details := validateGradingQuestions(questions); len(details) > 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgInvalidQuestions, Details: details})
		return
	}

	summary, err := ctrl.gradingService.Grade(questions, req.UserAnswers)
	if err != nil {
		log.Warn().Err(err).Msg("Grading rejected input")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgInvalidQuestions, Details: []string{err.Error()}})
		return
	}

	if c.Query("format") == "text" {
		completedAt := ctrl.now()
		report := ctrl.reportService.RenderText(questions, summary, completedAt)
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="quiz-results-%s.txt"`, completedAt.Format("2006-01-02")))
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(report))
		return
	}

	var resp dto.GradedSummaryDTO
	if err := copier.Copy(&resp, summary); err != nil {
		log.Error().Err(err).Msg("Failed to copy graded summary to DTO")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to grade quiz"})
		return
	}
	resp.ShareText = ctrl.reportService.ShareText(summary)
	c.JSON(http.StatusOK, resp)
}

func toQuizConfig(in *dto.QuizConfigDTO) *model.QuizConfig {
	cfg := &model.QuizConfig{
		Length:     in.Length,
		Difficulty: model.Difficulty(in.Difficulty),
	}
	for _, t := range in.QuestionTypes {
		cfg.QuestionTypes = append(cfg.QuestionTypes, model.QuestionType(t))
	}
	return cfg
}

// validateGradingQuestions reports questions that cannot be matched to answers.
// An empty list is left to the grading service.
func validateGradingQuestions(questions []model.Question) []string {
	var details []string
	seen := make(map[string]bool, len(questions))
	for i, q := range questions {
		if q.ID == "" {
			details = append(details, fmt.Sprintf("question %d has no id", i+1))
			continue
		}
		if seen[q.ID] {
			details = append(details, fmt.Sprintf("duplicate question id %q", q.ID))
		}
		seen[q.ID] = true
	}
	return details
}
