package model

import "strings"

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple-choice"
	TrueFalse      QuestionType = "true-false"
	ShortAnswer    QuestionType = "short-answer"
)

// MultipleChoiceOptionCount is the exact number of options a multiple-choice question carries.
const MultipleChoiceOptionCount = 4

// Canonical true-false answers.
const (
	AnswerTrue  = "True"
	AnswerFalse = "False"
)

func (t QuestionType) Valid() bool {
	switch t {
	case MultipleChoice, TrueFalse, ShortAnswer:
		return true
	}
	return false
}

// Question is a single generated quiz item. Options is set only for multiple-choice.
type Question struct {
	ID            string       `json:"id" yaml:"id"`
	Type          QuestionType `json:"type" yaml:"type"`
	Prompt        string       `json:"question" yaml:"question"`
	Options       []string     `json:"options,omitempty" yaml:"options,omitempty"`
	CorrectAnswer string       `json:"correctAnswer" yaml:"correctAnswer"`
	Explanation   string       `json:"explanation" yaml:"explanation"`
}

// AnswerMatches compares answers case-insensitively after trimming whitespace.
// The same rule applies to every question type.
func AnswerMatches(submitted, correct string) bool {
	return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(correct))
}

// CanonicalTrueFalse maps a case-insensitive "true"/"false" to its canonical token.
func CanonicalTrueFalse(answer string) (string, bool) {
	switch {
	case strings.EqualFold(answer, AnswerTrue):
		return AnswerTrue, true
	case strings.EqualFold(answer, AnswerFalse):
		return AnswerFalse, true
	}
	return answer, false
}
