package scoring

import "github.com/wichai/compass/internal/catalog"

// AnswerSet maps question ids to the chosen option. It is partial until
// every catalog question has an entry.
type AnswerSet map[string]catalog.OptionKey

// DimensionScore is the derived score of one dimension (or of the whole
// assessment when MaxScore is the overall maximum). Field names are part of
// the API payload and must not change.
type DimensionScore struct {
	Score      int     `json:"score"`
	MaxScore   int     `json:"maxScore"`
	Percentage float64 `json:"percentage"`
	Level      Level   `json:"level"`
}

// Result aggregates the four dimension scores plus the overall score.
type Result struct {
	Governance    DimensionScore `json:"governance"`
	Legacy        DimensionScore `json:"legacy"`
	Relationships DimensionScore `json:"relationships"`
	Strategy      DimensionScore `json:"strategy"`
	Overall       DimensionScore `json:"overall"`
}

// Dimension returns the score for the given dimension.
func (r Result) Dimension(d catalog.Dimension) DimensionScore {
	switch d {
	case catalog.DimensionGovernance:
		return r.Governance
	case catalog.DimensionLegacy:
		return r.Legacy
	case catalog.DimensionRelationships:
		return r.Relationships
	default:
		return r.Strategy
	}
}

// ScoreDimension computes the score of one dimension. Unanswered questions
// contribute zero to the raw score; the denominator stays the full dimension
// maximum, so partial answer sets under-score rather than pro-rate. Answers
// for ids outside the catalog are ignored.
func ScoreDimension(d catalog.Dimension, answers AnswerSet) DimensionScore {
	raw := 0
	for _, q := range catalog.QuestionsByDimension(d) {
		if key, ok := answers[q.ID]; ok {
			if opt, ok := q.Options[key]; ok {
				raw += opt.Points
			}
		}
	}
	return dimensionScore(raw)
}

// ScoreOverall computes the overall score: the integer sum of the four
// dimension raw scores against the overall maximum of 48. The raw-score path
// is integer-only; percentages are derived at the end.
func ScoreOverall(answers AnswerSet) DimensionScore {
	raw := 0
	for _, d := range catalog.AllDimensions() {
		raw += ScoreDimension(d, answers).Score
	}
	return DimensionScore{
		Score:      raw,
		MaxScore:   catalog.MaxOverallScore,
		Percentage: percentage(raw, catalog.MaxOverallScore),
		Level:      ClassifyOverall(percentage(raw, catalog.MaxOverallScore)),
	}
}

// ScoreAll scores every dimension and the overall result in one pass.
func ScoreAll(answers AnswerSet) Result {
	return Result{
		Governance:    ScoreDimension(catalog.DimensionGovernance, answers),
		Legacy:        ScoreDimension(catalog.DimensionLegacy, answers),
		Relationships: ScoreDimension(catalog.DimensionRelationships, answers),
		Strategy:      ScoreDimension(catalog.DimensionStrategy, answers),
		Overall:       ScoreOverall(answers),
	}
}

// QuestionPoints returns the chosen option's points for every catalog
// question in catalog order, zero where unanswered. This is the per-question
// breakdown persisted with a submission.
func QuestionPoints(answers AnswerSet) []int {
	points := make([]int, 0, catalog.TotalQuestions)
	for _, q := range catalog.Questions() {
		p := 0
		if key, ok := answers[q.ID]; ok {
			if opt, ok := q.Options[key]; ok {
				p = opt.Points
			}
		}
		points = append(points, p)
	}
	return points
}

func dimensionScore(raw int) DimensionScore {
	return DimensionScore{
		Score:      raw,
		MaxScore:   catalog.MaxDimensionScore,
		Percentage: percentage(raw, catalog.MaxDimensionScore),
		Level:      ClassifyDimension(percentage(raw, catalog.MaxDimensionScore)),
	}
}

func percentage(raw, max int) float64 {
	return float64(raw) / float64(max) * 100
}
