package stats

import (
	"math"
	"testing"
	"time"

	"github.com/wichai/compass/internal/submission"
)

func record(overall int, created time.Time) submission.Submission {
	// Dimension scores that sum to overall, spread evenly where possible.
	per := overall / 4
	rem := overall - per*3
	return submission.Submission{
		Role:               submission.RoleFounder,
		GovernanceScore:    per,
		LegacyScore:        per,
		RelationshipsScore: per,
		StrategyScore:      rem,
		OverallScore:       overall,
		CreatedAt:          created,
	}
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil, time.Now())

	if got.TotalResponses != 0 || got.MonthlyResponses != 0 {
		t.Errorf("counts = %d/%d, want 0/0", got.TotalResponses, got.MonthlyResponses)
	}
	if got.AverageScore != 0 {
		t.Errorf("averageScore = %v, want 0", got.AverageScore)
	}
	avg := got.AverageScores
	for name, v := range map[string]float64{
		"governance":    avg.Governance,
		"legacy":        avg.Legacy,
		"relationships": avg.Relationships,
		"strategy":      avg.Strategy,
		"overall":       avg.Overall,
	} {
		if v != 0 {
			t.Errorf("averageScores.%s = %v, want 0", name, v)
		}
	}
	if len(got.RoleDistribution) != 0 {
		t.Errorf("roleDistribution = %v, want empty", got.RoleDistribution)
	}
}

func TestAggregateIdenticalRecords(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	created := now.Add(-time.Hour)
	records := []submission.Submission{
		record(24, created),
		record(24, created),
		record(24, created),
	}

	got := Aggregate(records, now)

	if got.TotalResponses != 3 {
		t.Errorf("totalResponses = %d, want 3", got.TotalResponses)
	}
	if got.AverageScore != 50 {
		t.Errorf("averageScore = %v, want exactly 50", got.AverageScore)
	}
	if got.AverageScores.Overall != 50 {
		t.Errorf("averageScores.overall = %v, want 50", got.AverageScores.Overall)
	}
}

func TestAggregateMonthlyWindow(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	records := []submission.Submission{
		record(24, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)),   // exactly at month start
		record(24, time.Date(2025, time.March, 14, 23, 0, 0, 0, time.UTC)), // inside
		record(24, time.Date(2025, time.February, 28, 23, 59, 0, 0, time.UTC)),
		record(24, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)),
	}

	got := Aggregate(records, now)
	if got.MonthlyResponses != 2 {
		t.Errorf("monthlyResponses = %d, want 2", got.MonthlyResponses)
	}
	if got.TotalResponses != 4 {
		t.Errorf("totalResponses = %d, want 4", got.TotalResponses)
	}
}

func TestAggregateRoleDistributionForwardsUnknownRoles(t *testing.T) {
	now := time.Now()
	records := []submission.Submission{
		{Role: submission.RoleFounder, CreatedAt: now},
		{Role: submission.RoleFounder, CreatedAt: now},
		{Role: submission.RoleExternalAdvisor, CreatedAt: now},
		{Role: submission.Role("board-member"), CreatedAt: now}, // schema drift
	}

	got := Aggregate(records, now.Add(time.Minute))
	if got.RoleDistribution["founder"] != 2 {
		t.Errorf("founder count = %d, want 2", got.RoleDistribution["founder"])
	}
	if got.RoleDistribution["board-member"] != 1 {
		t.Error("unrecognized role was dropped instead of forwarded")
	}
}

// Because every record shares the same fixed maxima, the percentage of the
// average raw score equals the average of per-record percentages.
func TestAverageOfPercentagesMatchesPercentageOfAverage(t *testing.T) {
	now := time.Now()
	overalls := []int{12, 24, 36, 48, 17}
	var records []submission.Submission
	meanOfPercentages := 0.0
	for _, o := range overalls {
		records = append(records, record(o, now.Add(-time.Hour)))
		meanOfPercentages += float64(o) / 48 * 100
	}
	meanOfPercentages /= float64(len(overalls))

	got := Aggregate(records, now)
	if math.Abs(got.AverageScore-meanOfPercentages) > 1e-9 {
		t.Errorf("averageScore = %v, want %v", got.AverageScore, meanOfPercentages)
	}
}

func TestMonthStartIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	// Local time is already March 1st, but UTC is still February 28th.
	local := time.Date(2025, time.March, 1, 3, 0, 0, 0, loc)

	got := MonthStart(local)
	want := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("MonthStart = %v, want %v", got, want)
	}
}
