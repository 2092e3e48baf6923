package catalog

import "fmt"

// Dimension is one of the four assessment categories.
type Dimension string

const (
	DimensionGovernance    Dimension = "governance"
	DimensionLegacy        Dimension = "legacy"
	DimensionRelationships Dimension = "relationships"
	DimensionStrategy      Dimension = "strategy"
)

// AllDimensions returns the dimensions in catalog order.
func AllDimensions() []Dimension {
	return []Dimension{
		DimensionGovernance,
		DimensionLegacy,
		DimensionRelationships,
		DimensionStrategy,
	}
}

// DisplayName returns a human-readable label for the dimension.
func (d Dimension) DisplayName() string {
	switch d {
	case DimensionGovernance:
		return "Governance"
	case DimensionLegacy:
		return "Legacy"
	case DimensionRelationships:
		return "Relationships"
	case DimensionStrategy:
		return "Strategy"
	default:
		return string(d)
	}
}

// Language selects which localization of the catalog text to show.
type Language string

const (
	LangEN Language = "en"
	LangTH Language = "th"
)

// Text is a bilingual string.
type Text struct {
	EN string
	TH string
}

// In returns the text in the given language, falling back to English.
func (t Text) In(lang Language) string {
	if lang == LangTH && t.TH != "" {
		return t.TH
	}
	return t.EN
}

// OptionKey identifies one of the four answer options.
type OptionKey string

const (
	OptionA OptionKey = "A"
	OptionB OptionKey = "B"
	OptionC OptionKey = "C"
	OptionD OptionKey = "D"
)

// OptionKeys returns the option keys in display order.
func OptionKeys() []OptionKey {
	return []OptionKey{OptionA, OptionB, OptionC, OptionD}
}

// Option is one selectable answer with its point value.
type Option struct {
	Text   Text
	Points int
}

// Question is a single catalog entry. The catalog is fixed at build time
// and treated as immutable for the process lifetime.
type Question struct {
	ID        string
	Dimension Dimension
	Prompt    Text
	Options   map[OptionKey]Option
}

// Structural constants of the fixed 4x3 catalog.
const (
	QuestionsPerDimension = 3
	TotalQuestions        = 12
	MinOptionPoints       = 1
	MaxOptionPoints       = 4
	MaxDimensionScore     = QuestionsPerDimension * MaxOptionPoints
	MaxOverallScore       = 4 * MaxDimensionScore
)

// byID indexes questions by their stable id.
var byID map[string]*Question

// byDimension indexes questions by dimension, preserving catalog order.
var byDimension map[Dimension][]*Question

func init() {
	byID = make(map[string]*Question, len(questions))
	byDimension = make(map[Dimension][]*Question)
	for i := range questions {
		q := &questions[i]
		byID[q.ID] = q
		byDimension[q.Dimension] = append(byDimension[q.Dimension], q)
	}
}

// Questions returns every question in catalog order. Callers must not
// mutate the returned slice or the questions it points to.
func Questions() []Question {
	return questions
}

// QuestionByID returns a question by id, or nil if the id is unknown.
func QuestionByID(id string) *Question {
	return byID[id]
}

// QuestionsByDimension returns the questions of a dimension in catalog order.
func QuestionsByDimension(d Dimension) []*Question {
	return byDimension[d]
}

// Validate checks the structural invariants of the catalog: 12 questions,
// 3 per dimension, 4 options each with point values inside 1-4.
func Validate() error {
	if len(questions) != TotalQuestions {
		return fmt.Errorf("catalog has %d questions, want %d", len(questions), TotalQuestions)
	}
	for _, d := range AllDimensions() {
		if n := len(byDimension[d]); n != QuestionsPerDimension {
			return fmt.Errorf("dimension %s has %d questions, want %d", d, n, QuestionsPerDimension)
		}
	}
	for i := range questions {
		q := &questions[i]
		if len(q.Options) != len(OptionKeys()) {
			return fmt.Errorf("question %s has %d options, want %d", q.ID, len(q.Options), len(OptionKeys()))
		}
		for _, key := range OptionKeys() {
			opt, ok := q.Options[key]
			if !ok {
				return fmt.Errorf("question %s is missing option %s", q.ID, key)
			}
			if opt.Points < MinOptionPoints || opt.Points > MaxOptionPoints {
				return fmt.Errorf("question %s option %s has %d points, want %d-%d",
					q.ID, key, opt.Points, MinOptionPoints, MaxOptionPoints)
			}
		}
	}
	return nil
}
