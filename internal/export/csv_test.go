package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/wichai/compass/internal/submission"
)

func testRecord(name string) submission.Submission {
	return submission.Submission{
		ID:                 7,
		Role:               submission.RoleFounder,
		UserName:           submission.NormalizeUserName(name),
		QuestionScores:     []int{4, 3, 2, 1, 4, 3, 2, 1, 4, 3, 2, 1},
		GovernanceScore:    9,
		LegacyScore:        8,
		RelationshipsScore: 9,
		StrategyScore:      4,
		OverallScore:       30,
		CreatedAt:          time.Date(2025, time.June, 3, 14, 30, 5, 0, time.UTC),
	}
}

func TestWriteCSVAnonymous(t *testing.T) {
	var sb strings.Builder
	if err := WriteCSV(&sb, []submission.Submission{testRecord("Ann")}, false); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(sb.String())).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(rows))
	}

	header := rows[0]
	want := 4 + 12 + 5 // ID,Date,Time,Role + Q1..Q12 + 4 dims + overall
	if len(header) != want {
		t.Errorf("header has %d columns, want %d", len(header), want)
	}
	for _, col := range header {
		if col == "User Name" {
			t.Error("anonymous export must not include User Name column")
		}
	}

	row := rows[1]
	if row[0] != "7" || row[1] != "2025-06-03" || row[2] != "14:30:05" || row[3] != "founder" {
		t.Errorf("row prefix = %v", row[:4])
	}
	if row[len(row)-1] != "30" {
		t.Errorf("overall column = %q, want 30", row[len(row)-1])
	}
}

// A display name containing commas and quotes must survive a round-trip:
// the original comma-join implementation corrupted such rows.
func TestWriteCSVQuotesNames(t *testing.T) {
	var sb strings.Builder
	tricky := `Somchai, "Jim" Jr.`
	if err := WriteCSV(&sb, []submission.Submission{testRecord(tricky)}, true); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(sb.String())).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if rows[0][4] != "User Name" {
		t.Fatalf("column 4 = %q, want User Name", rows[0][4])
	}
	if got := rows[1][4]; got != tricky {
		t.Errorf("name round-trip = %q, want %q", got, tricky)
	}
	if len(rows[1]) != len(rows[0]) {
		t.Errorf("row width %d != header width %d", len(rows[1]), len(rows[0]))
	}
}

func TestWriteCSVZeroFillsShortScoreArrays(t *testing.T) {
	rec := testRecord("")
	rec.QuestionScores = []int{4, 3} // record written by an older schema

	var sb strings.Builder
	if err := WriteCSV(&sb, []submission.Submission{rec}, false); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	rows, err := csv.NewReader(strings.NewReader(sb.String())).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	// Q3..Q12 columns fall back to zero.
	for i := 6; i < 16; i++ {
		if rows[1][i] != "0" {
			t.Errorf("column %d = %q, want 0", i, rows[1][i])
		}
	}
}

func TestFileName(t *testing.T) {
	if FileName(true) == FileName(false) {
		t.Error("file names should distinguish anonymous exports")
	}
}
