package submission

import (
	"testing"

	"github.com/wichai/compass/internal/catalog"
	"github.com/wichai/compass/internal/scoring"
)

func TestParseRole(t *testing.T) {
	for _, r := range AllRoles() {
		got, err := ParseRole(string(r))
		if err != nil {
			t.Errorf("ParseRole(%q): %v", r, err)
		}
		if got != r {
			t.Errorf("ParseRole(%q) = %q", r, got)
		}
	}
	if _, err := ParseRole("shareholder"); err == nil {
		t.Error("ParseRole accepted an unknown role")
	}
}

func TestNormalizeUserName(t *testing.T) {
	tests := []struct {
		in   string
		want string // "" means absent
	}{
		{"", ""},
		{"   ", ""},
		{"\t\n", ""},
		{"Ann", "Ann"},
		{"  Ann Lee  ", "Ann Lee"},
	}

	for _, tt := range tests {
		got := NormalizeUserName(tt.in)
		if tt.want == "" {
			if got != nil {
				t.Errorf("NormalizeUserName(%q) = %q, want nil", tt.in, *got)
			}
			continue
		}
		if got == nil || *got != tt.want {
			t.Errorf("NormalizeUserName(%q) = %v, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFromAnswers(t *testing.T) {
	answers := scoring.AnswerSet{}
	for _, q := range catalog.Questions() {
		answers[q.ID] = catalog.OptionB // 3 points each
	}

	rec := FromAnswers(RoleFounder, "  ", "cli", answers)

	if rec.UserName != nil {
		t.Error("whitespace name should normalize to absent")
	}
	if rec.OverallScore != 36 {
		t.Errorf("overall = %d, want 36", rec.OverallScore)
	}
	for _, d := range catalog.AllDimensions() {
		if got := rec.DimensionScore(d); got != 9 {
			t.Errorf("%s = %d, want 9", d, got)
		}
	}
	if len(rec.QuestionScores) != catalog.TotalQuestions {
		t.Fatalf("question scores = %d entries, want %d", len(rec.QuestionScores), catalog.TotalQuestions)
	}
	sum := 0
	for _, p := range rec.QuestionScores {
		sum += p
	}
	if sum != rec.OverallScore {
		t.Errorf("sum of question scores %d != overall %d", sum, rec.OverallScore)
	}
}
