package scoring

import "github.com/wichai/compass/internal/catalog"

// Progress tracks how much of the questionnaire has been answered. This is
// deliberately separate from scoring: an unanswered question scores zero,
// which says nothing about completion.
type Progress struct {
	Answered int
	Total    int
}

// ProgressOf counts answered catalog questions. Answers for unknown ids do
// not count toward progress.
func ProgressOf(answers AnswerSet) Progress {
	p := Progress{Total: catalog.TotalQuestions}
	for _, q := range catalog.Questions() {
		if _, ok := answers[q.ID]; ok {
			p.Answered++
		}
	}
	return p
}

// Fraction returns completion as a value in [0, 1].
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Answered) / float64(p.Total)
}

// Complete reports whether every catalog question has an answer.
func (p Progress) Complete() bool {
	return p.Answered == p.Total
}
