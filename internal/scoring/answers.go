package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wichai/compass/internal/catalog"
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every offending field of a rejected input. It is
// produced at the boundary so the pure scoring functions only ever see
// well-typed answer sets.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, ", ")
}

// ParseAnswerSet validates a raw id-to-letter mapping and converts it into
// an AnswerSet. Option letters outside A-D are rejected per field; ids that
// are not in the catalog pass through untouched, since the scoring functions
// ignore them (the catalog is the single source of truth for valid ids).
func ParseAnswerSet(raw map[string]string) (AnswerSet, error) {
	valid := map[string]bool{}
	for _, key := range catalog.OptionKeys() {
		valid[string(key)] = true
	}

	var fields []FieldError
	answers := make(AnswerSet, len(raw))
	for id, letter := range raw {
		if !valid[letter] {
			fields = append(fields, FieldError{
				Field:   "answers." + id,
				Message: fmt.Sprintf("option %q is not one of A-D", letter),
			})
			continue
		}
		answers[id] = catalog.OptionKey(letter)
	}

	if len(fields) > 0 {
		sort.Slice(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })
		return nil, &ValidationError{Fields: fields}
	}
	return answers, nil
}
