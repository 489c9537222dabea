package dto

import "time"

type QuestionDTO struct {
	ID            string   `json:"id" example:"q1"`
	Type          string   `json:"type" example:"multiple-choice" enums:"multiple-choice,true-false,short-answer"`
	Prompt        string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

type QuizMetadataDTO struct {
	TotalQuestions int       `json:"totalQuestions"`
	Difficulty     string    `json:"difficulty"`
	QuestionTypes  []string  `json:"questionTypes"`
	GeneratedAt    time.Time `json:"generatedAt"`
}

type GenerateQuizResponse struct {
	Questions []QuestionDTO   `json:"questions"`
	Metadata  QuizMetadataDTO `json:"metadata"`
}

type QuestionResultDTO struct {
	QuestionID    string `json:"questionId"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
}

type GradedSummaryDTO struct {
	Score          int                 `json:"score"`
	TotalQuestions int                 `json:"totalQuestions"`
	Percentage     int                 `json:"percentage"`
	Grade          string              `json:"grade"`
	Assessment     string              `json:"assessment"`
	Message        string              `json:"message"`
	ShareText      string              `json:"shareText"`
	PerQuestion    []QuestionResultDTO `json:"perQuestion"`
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}
