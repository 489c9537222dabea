package model

type Assessment string

const (
	AssessmentMastered     Assessment = "mastered"
	AssessmentSolid        Assessment = "solid_understanding"
	AssessmentGoodEffort   Assessment = "good_effort"
	AssessmentKeepStudying Assessment = "keep_studying"
)

type QuestionResult struct {
	QuestionID    string `json:"questionId"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
}

type GradedSummary struct {
	Score          int              `json:"score"`
	TotalQuestions int              `json:"totalQuestions"`
	Percentage     int              `json:"percentage"`
	Grade          string           `json:"grade"`
	Assessment     Assessment       `json:"assessment"`
	Message        string           `json:"message"`
	PerQuestion    []QuestionResult `json:"perQuestion"`
}
