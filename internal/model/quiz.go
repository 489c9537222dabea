package model

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

type QuizConfig struct {
	Length        int            `json:"length" yaml:"length"`
	Difficulty    Difficulty     `json:"difficulty" yaml:"difficulty"`
	QuestionTypes []QuestionType `json:"questionTypes" yaml:"questionTypes"`
}

// QuizSession is the client-held state of one quiz run.
type QuizSession struct {
	Questions   []Question        `json:"questions" yaml:"questions"`
	UserAnswers map[string]string `json:"userAnswers" yaml:"userAnswers"`
}

func (s QuizSession) TotalQuestions() int {
	return len(s.Questions)
}

// Score counts questions whose answer matches. Absent or empty answers never match.
func (s QuizSession) Score() int {
	score := 0
	for _, q := range s.Questions {
		if answer := s.UserAnswers[q.ID]; answer != "" && AnswerMatches(answer, q.CorrectAnswer) {
			score++
		}
	}
	return score
}
