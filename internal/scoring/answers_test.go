package scoring

import (
	"errors"
	"testing"

	"github.com/wichai/compass/internal/catalog"
)

func TestParseAnswerSet(t *testing.T) {
	answers, err := ParseAnswerSet(map[string]string{"1.1": "A", "1.2": "D"})
	if err != nil {
		t.Fatalf("ParseAnswerSet: %v", err)
	}
	if answers["1.1"] != catalog.OptionA || answers["1.2"] != catalog.OptionD {
		t.Errorf("parsed answers = %v", answers)
	}
}

func TestParseAnswerSetRejectsBadLetters(t *testing.T) {
	_, err := ParseAnswerSet(map[string]string{
		"1.1": "E",
		"1.2": "a",
		"1.3": "B",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("field errors = %d, want 2: %v", len(verr.Fields), verr.Fields)
	}
	if verr.Fields[0].Field != "answers.1.1" || verr.Fields[1].Field != "answers.1.2" {
		t.Errorf("offending fields = %v", verr.Fields)
	}
}

func TestParseAnswerSetKeepsUnknownIDs(t *testing.T) {
	answers, err := ParseAnswerSet(map[string]string{"99.9": "A"})
	if err != nil {
		t.Fatalf("ParseAnswerSet: %v", err)
	}
	// Unknown ids survive parsing; the scoring functions ignore them.
	if answers["99.9"] != catalog.OptionA {
		t.Errorf("unknown id dropped at parse stage")
	}
}
