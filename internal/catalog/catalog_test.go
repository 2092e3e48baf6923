package catalog

import "testing"

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("catalog invalid: %v", err)
	}
}

func TestDimensionCoverage(t *testing.T) {
	if got := len(Questions()); got != TotalQuestions {
		t.Fatalf("len(Questions()) = %d, want %d", got, TotalQuestions)
	}
	for _, d := range AllDimensions() {
		qs := QuestionsByDimension(d)
		if len(qs) != QuestionsPerDimension {
			t.Errorf("dimension %s has %d questions, want %d", d, len(qs), QuestionsPerDimension)
		}
		for _, q := range qs {
			if q.Dimension != d {
				t.Errorf("question %s indexed under %s but belongs to %s", q.ID, d, q.Dimension)
			}
		}
	}
}

func TestEachQuestionCoversFullPointRange(t *testing.T) {
	for _, q := range Questions() {
		seen := map[int]bool{}
		for _, key := range OptionKeys() {
			seen[q.Options[key].Points] = true
		}
		for p := MinOptionPoints; p <= MaxOptionPoints; p++ {
			if !seen[p] {
				t.Errorf("question %s has no option worth %d points", q.ID, p)
			}
		}
	}
}

func TestQuestionByID(t *testing.T) {
	q := QuestionByID("1.1")
	if q == nil {
		t.Fatal("QuestionByID(1.1) = nil")
	}
	if q.Dimension != DimensionGovernance {
		t.Errorf("question 1.1 dimension = %s, want governance", q.Dimension)
	}
	if QuestionByID("9.9") != nil {
		t.Error("QuestionByID(9.9) should be nil")
	}
}

func TestTextFallsBackToEnglish(t *testing.T) {
	txt := Text{EN: "hello"}
	if got := txt.In(LangTH); got != "hello" {
		t.Errorf("In(th) with empty Thai = %q, want English fallback", got)
	}
	both := Text{EN: "hello", TH: "สวัสดี"}
	if got := both.In(LangTH); got != "สวัสดี" {
		t.Errorf("In(th) = %q, want Thai", got)
	}
}
