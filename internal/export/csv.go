// Package export renders submission records as CSV for the admin report.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/wichai/compass/internal/catalog"
	"github.com/wichai/compass/internal/submission"
)

// WriteCSV writes one row per record. Column order: ID, Date, Time, Role,
// optionally User Name, Q1..Q12 Score, the four dimension scores, Overall
// Score. encoding/csv quotes fields as needed, so names containing commas
// or quotes cannot corrupt rows. Dates and times are UTC.
func WriteCSV(w io.Writer, records []submission.Submission, includeUserName bool) error {
	cw := csv.NewWriter(w)

	header := []string{"ID", "Date", "Time", "Role"}
	if includeUserName {
		header = append(header, "User Name")
	}
	for i := 1; i <= catalog.TotalQuestions; i++ {
		header = append(header, fmt.Sprintf("Q%d Score", i))
	}
	header = append(header,
		"Governance Score", "Legacy Score", "Relationships Score", "Strategy Score",
		"Overall Score",
	)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for i := range records {
		r := &records[i]
		created := r.CreatedAt.UTC()
		row := []string{
			strconv.Itoa(r.ID),
			created.Format("2006-01-02"),
			created.Format("15:04:05"),
			string(r.Role),
		}
		if includeUserName {
			name := ""
			if r.UserName != nil {
				name = *r.UserName
			}
			row = append(row, name)
		}
		for q := 0; q < catalog.TotalQuestions; q++ {
			p := 0
			if q < len(r.QuestionScores) {
				p = r.QuestionScores[q]
			}
			row = append(row, strconv.Itoa(p))
		}
		row = append(row,
			strconv.Itoa(r.GovernanceScore),
			strconv.Itoa(r.LegacyScore),
			strconv.Itoa(r.RelationshipsScore),
			strconv.Itoa(r.StrategyScore),
			strconv.Itoa(r.OverallScore),
		)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// FileName returns the download name used by the HTTP export endpoint.
func FileName(includeUserName bool) string {
	if includeUserName {
		return "family-wealth-assessment-data-with-users.csv"
	}
	return "family-wealth-assessment-data-anonymous.csv"
}
