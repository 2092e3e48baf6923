// Package stats rolls persisted submissions up into the aggregate view
// served to administrators. Everything here is a pure function of the
// record collection passed in; safe to call concurrently.
package stats

import (
	"time"

	"github.com/wichai/compass/internal/catalog"
	"github.com/wichai/compass/internal/submission"
)

// AverageScores holds the mean percentage per dimension and overall. Each
// field is averaged independently over all records.
type AverageScores struct {
	Governance    float64 `json:"governance"`
	Legacy        float64 `json:"legacy"`
	Relationships float64 `json:"relationships"`
	Strategy      float64 `json:"strategy"`
	Overall       float64 `json:"overall"`
}

// Statistics is the transient, recomputed-on-demand aggregate view.
// CompletionRate and LanguageDistribution exist for wire compatibility with
// the original admin client; only complete submissions are ever persisted,
// so the rate is constant.
type Statistics struct {
	TotalResponses       int            `json:"totalResponses"`
	MonthlyResponses     int            `json:"monthlyResponses"`
	AverageScore         float64        `json:"averageScore"`
	CompletionRate       float64        `json:"completionRate"`
	RoleDistribution     map[string]int `json:"roleDistribution"`
	LanguageDistribution map[string]int `json:"languageDistribution"`
	AverageScores        AverageScores  `json:"averageScores"`
}

// MonthStart returns the UTC start of the calendar month containing t.
// The monthly window is always evaluated in UTC; submissions are stored
// with UTC timestamps.
func MonthStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Aggregate computes the statistics over the given records, with the
// monthly window [UTC month start of now, now). With zero records every
// average is 0 rather than NaN: the divisor is clamped to 1 by convention.
// Unknown role values are forwarded into the distribution, not dropped.
func Aggregate(records []submission.Submission, now time.Time) Statistics {
	start := MonthStart(now)

	monthly := 0
	roles := map[string]int{}
	var totalGovernance, totalLegacy, totalRelationships, totalStrategy, totalOverall int

	for i := range records {
		r := &records[i]
		created := r.CreatedAt.UTC()
		if !created.Before(start) && created.Before(now.UTC()) {
			monthly++
		}
		roles[string(r.Role)]++

		totalGovernance += r.GovernanceScore
		totalLegacy += r.LegacyScore
		totalRelationships += r.RelationshipsScore
		totalStrategy += r.StrategyScore
		totalOverall += r.OverallScore
	}

	count := len(records)
	divisor := count
	if divisor == 0 {
		divisor = 1
	}

	return Statistics{
		TotalResponses:       count,
		MonthlyResponses:     monthly,
		AverageScore:         averagePercentage(totalOverall, divisor, catalog.MaxOverallScore),
		CompletionRate:       100,
		RoleDistribution:     roles,
		LanguageDistribution: map[string]int{},
		AverageScores: AverageScores{
			Governance:    averagePercentage(totalGovernance, divisor, catalog.MaxDimensionScore),
			Legacy:        averagePercentage(totalLegacy, divisor, catalog.MaxDimensionScore),
			Relationships: averagePercentage(totalRelationships, divisor, catalog.MaxDimensionScore),
			Strategy:      averagePercentage(totalStrategy, divisor, catalog.MaxDimensionScore),
			Overall:       averagePercentage(totalOverall, divisor, catalog.MaxOverallScore),
		},
	}
}

func averagePercentage(total, count, max int) float64 {
	return float64(total) / float64(count) / float64(max) * 100
}
