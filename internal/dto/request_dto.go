package dto

// QuizConfigDTO is the wire form of a quiz configuration. Field validation
// happens in the generation service so that every caller gets the same rules.
type QuizConfigDTO struct {
	Length        int      `json:"length" example:"10"`
	Difficulty    string   `json:"difficulty" example:"medium" enums:"easy,medium,hard"`
	QuestionTypes []string `json:"questionTypes" example:"multiple-choice,true-false"`
}

type GenerateQuizRequest struct {
	StudyMaterial string         `json:"studyMaterial"`
	Config        *QuizConfigDTO `json:"config"`
}

type GradeQuizRequest struct {
	Questions   []QuestionDTO     `json:"questions"`
	UserAnswers map[string]string `json:"userAnswers"`
}
