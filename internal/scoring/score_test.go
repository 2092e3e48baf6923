package scoring

import (
	"math"
	"testing"

	"github.com/wichai/compass/internal/catalog"
)

// uniformAnswers answers every catalog question with the same option.
func uniformAnswers(key catalog.OptionKey) AnswerSet {
	answers := AnswerSet{}
	for _, q := range catalog.Questions() {
		answers[q.ID] = key
	}
	return answers
}

func TestScoreAllStrongest(t *testing.T) {
	result := ScoreAll(uniformAnswers(catalog.OptionA))

	for _, d := range catalog.AllDimensions() {
		ds := result.Dimension(d)
		if ds.Score != catalog.MaxDimensionScore {
			t.Errorf("%s score = %d, want %d", d, ds.Score, catalog.MaxDimensionScore)
		}
		if ds.Percentage != 100 {
			t.Errorf("%s percentage = %v, want 100", d, ds.Percentage)
		}
		if ds.Level != LevelExcellent {
			t.Errorf("%s level = %q, want excellent", d, ds.Level)
		}
	}
	if result.Overall.Score != catalog.MaxOverallScore {
		t.Errorf("overall score = %d, want %d", result.Overall.Score, catalog.MaxOverallScore)
	}
	if result.Overall.Level != LevelExcellent {
		t.Errorf("overall level = %q, want excellent", result.Overall.Level)
	}
}

func TestScoreAllWeakest(t *testing.T) {
	result := ScoreAll(uniformAnswers(catalog.OptionD))

	for _, d := range catalog.AllDimensions() {
		ds := result.Dimension(d)
		if ds.Score != 3 {
			t.Errorf("%s score = %d, want 3", d, ds.Score)
		}
		if ds.Percentage != 25 {
			t.Errorf("%s percentage = %v, want 25", d, ds.Percentage)
		}
		if ds.Level != LevelCritical {
			t.Errorf("%s level = %q, want critical", d, ds.Level)
		}
	}
	if result.Overall.Score != 12 {
		t.Errorf("overall score = %d, want 12", result.Overall.Score)
	}
	if result.Overall.Percentage != 25 {
		t.Errorf("overall percentage = %v, want 25", result.Overall.Percentage)
	}
	if result.Overall.Level != LevelCritical {
		t.Errorf("overall level = %q, want critical", result.Overall.Level)
	}
}

func TestOverallEqualsSumOfDimensions(t *testing.T) {
	sets := []AnswerSet{
		{},
		uniformAnswers(catalog.OptionA),
		uniformAnswers(catalog.OptionC),
		{"1.1": catalog.OptionA, "2.2": catalog.OptionB, "4.3": catalog.OptionD},
	}

	for _, answers := range sets {
		sum := 0
		for _, d := range catalog.AllDimensions() {
			ds := ScoreDimension(d, answers)
			if ds.Score < 0 || ds.Score > catalog.MaxDimensionScore {
				t.Fatalf("dimension score %d out of range [0,%d]", ds.Score, catalog.MaxDimensionScore)
			}
			sum += ds.Score
		}
		overall := ScoreOverall(answers)
		if overall.Score != sum {
			t.Errorf("overall score = %d, want sum of dimensions %d", overall.Score, sum)
		}
		if overall.Score < 0 || overall.Score > catalog.MaxOverallScore {
			t.Errorf("overall score %d out of range [0,%d]", overall.Score, catalog.MaxOverallScore)
		}
	}
}

// With all dimension maxima equal, the overall percentage must coincide with
// the mean of the dimension percentages. This equivalence is an invariant of
// the fixed 4x3 catalog, not something callers may assume in general.
func TestOverallPercentageEqualsMeanOfDimensionPercentages(t *testing.T) {
	answers := AnswerSet{
		"1.1": catalog.OptionA, "1.2": catalog.OptionB, "1.3": catalog.OptionD,
		"2.1": catalog.OptionC, "2.2": catalog.OptionC, "2.3": catalog.OptionA,
		"3.1": catalog.OptionB, "3.2": catalog.OptionB, "3.3": catalog.OptionB,
		"4.1": catalog.OptionD, "4.2": catalog.OptionD, "4.3": catalog.OptionA,
	}

	result := ScoreAll(answers)
	mean := 0.0
	for _, d := range catalog.AllDimensions() {
		mean += result.Dimension(d).Percentage
	}
	mean /= float64(len(catalog.AllDimensions()))

	if math.Abs(result.Overall.Percentage-mean) > 1e-9 {
		t.Errorf("overall percentage %v != mean of dimension percentages %v",
			result.Overall.Percentage, mean)
	}
}

func TestUnansweredQuestionsScoreZero(t *testing.T) {
	// One governance question answered with the strongest option.
	answers := AnswerSet{"1.1": catalog.OptionA}

	ds := ScoreDimension(catalog.DimensionGovernance, answers)
	if ds.Score != 4 {
		t.Errorf("governance score = %d, want 4", ds.Score)
	}
	if ds.MaxScore != catalog.MaxDimensionScore {
		t.Errorf("maxScore = %d, want %d (denominator never shrinks)", ds.MaxScore, catalog.MaxDimensionScore)
	}

	for _, d := range catalog.AllDimensions()[1:] {
		if got := ScoreDimension(d, answers).Score; got != 0 {
			t.Errorf("%s score = %d, want 0", d, got)
		}
	}
}

func TestUnknownQuestionIDsIgnored(t *testing.T) {
	answers := AnswerSet{
		"1.1":  catalog.OptionA,
		"99.9": catalog.OptionA, // not in the catalog
	}
	if got := ScoreOverall(answers).Score; got != 4 {
		t.Errorf("overall score = %d, want 4 (unknown id must not contribute)", got)
	}
}

func TestQuestionPoints(t *testing.T) {
	answers := AnswerSet{"1.1": catalog.OptionA, "4.3": catalog.OptionD}
	points := QuestionPoints(answers)

	if len(points) != catalog.TotalQuestions {
		t.Fatalf("len(points) = %d, want %d", len(points), catalog.TotalQuestions)
	}
	if points[0] != 4 {
		t.Errorf("points[0] = %d, want 4", points[0])
	}
	if points[11] != 1 {
		t.Errorf("points[11] = %d, want 1", points[11])
	}
	for i := 1; i < 11; i++ {
		if points[i] != 0 {
			t.Errorf("points[%d] = %d, want 0", i, points[i])
		}
	}
}

func TestProgress(t *testing.T) {
	answers := AnswerSet{"1.1": catalog.OptionB, "2.1": catalog.OptionB, "bogus": catalog.OptionA}
	p := ProgressOf(answers)
	if p.Answered != 2 {
		t.Errorf("answered = %d, want 2 (unknown ids don't count)", p.Answered)
	}
	if p.Complete() {
		t.Error("partial answer set reported complete")
	}

	full := ProgressOf(uniformAnswers(catalog.OptionC))
	if !full.Complete() {
		t.Error("full answer set not reported complete")
	}
	if full.Fraction() != 1 {
		t.Errorf("fraction = %v, want 1", full.Fraction())
	}
}
