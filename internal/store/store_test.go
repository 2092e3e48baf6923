package store

import (
	"context"
	"testing"
	"time"

	"github.com/wichai/compass/internal/catalog"
	"github.com/wichai/compass/internal/scoring"
	"github.com/wichai/compass/internal/stats"
	"github.com/wichai/compass/internal/submission"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRecord() submission.Submission {
	answers := scoring.AnswerSet{}
	for _, q := range catalog.Questions() {
		answers[q.ID] = catalog.OptionB
	}
	return submission.FromAnswers(submission.RoleFounder, "Ann", "test-agent", answers)
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestSubmissionCreateAssignsIdentity(t *testing.T) {
	s := openTestStore(t)
	repo := s.Submissions()
	ctx := context.Background()

	saved, err := repo.Create(ctx, sampleRecord())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if saved.ID == 0 {
		t.Error("expected assigned id")
	}
	if saved.CreatedAt.IsZero() {
		t.Error("expected assigned creation timestamp")
	}
	if saved.UserName == nil || *saved.UserName != "Ann" {
		t.Errorf("userName = %v, want Ann", saved.UserName)
	}
	if saved.OverallScore != 36 {
		t.Errorf("overall = %d, want 36", saved.OverallScore)
	}
}

func TestSubmissionAllNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.Submissions()
	ctx := context.Background()

	first, err := repo.Create(ctx, sampleRecord())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	second, err := repo.Create(ctx, sampleRecord())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
	if all[0].ID != second.ID || all[1].ID != first.ID {
		t.Errorf("order = [%d %d], want newest first [%d %d]", all[0].ID, all[1].ID, second.ID, first.ID)
	}
}

func TestSubmissionDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.Submissions()
	ctx := context.Background()

	saved, err := repo.Create(ctx, sampleRecord())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	ok, err := repo.Delete(ctx, saved.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !ok {
		t.Error("delete of existing record returned false")
	}

	// Deleting again signals absence, not an error.
	ok, err = repo.Delete(ctx, saved.ID)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if ok {
		t.Error("delete of missing record returned true")
	}
}

func TestSubmissionClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.Submissions()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := repo.Create(ctx, sampleRecord()); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	n, err := repo.Clear(ctx)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if n != 3 {
		t.Errorf("cleared %d, want 3", n)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("len after clear = %d, want 0", len(all))
	}
}

func TestSubmissionByDateRange(t *testing.T) {
	s := openTestStore(t)
	repo := s.Submissions()
	ctx := context.Background()

	saved, err := repo.Create(ctx, sampleRecord())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	in, err := repo.ByDateRange(ctx, saved.CreatedAt.Add(-time.Minute), saved.CreatedAt.Add(time.Minute))
	if err != nil {
		t.Fatalf("by date range: %v", err)
	}
	if len(in) != 1 {
		t.Errorf("in-range results = %d, want 1", len(in))
	}

	out, err := repo.ByDateRange(ctx, saved.CreatedAt.Add(-2*time.Hour), saved.CreatedAt.Add(-time.Hour))
	if err != nil {
		t.Fatalf("by date range: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("out-of-range results = %d, want 0", len(out))
	}
}

// Scoring, persisting, re-fetching and aggregating a single record must
// reproduce the percentages of the original direct scoring call.
func TestScoreRoundTripThroughStore(t *testing.T) {
	s := openTestStore(t)
	repo := s.Submissions()
	ctx := context.Background()

	answers := scoring.AnswerSet{
		"1.1": catalog.OptionA, "1.2": catalog.OptionC, "1.3": catalog.OptionB,
		"2.1": catalog.OptionD, "2.2": catalog.OptionD, "2.3": catalog.OptionB,
		"3.1": catalog.OptionA, "3.2": catalog.OptionA, "3.3": catalog.OptionC,
		"4.1": catalog.OptionB, "4.2": catalog.OptionB, "4.3": catalog.OptionB,
	}
	direct := scoring.ScoreAll(answers)

	if _, err := repo.Create(ctx, submission.FromAnswers(submission.RoleExternalAdvisor, "", "", answers)); err != nil {
		t.Fatalf("create: %v", err)
	}
	fetched, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}

	agg := stats.Aggregate(fetched, time.Now())
	if agg.AverageScore != direct.Overall.Percentage {
		t.Errorf("aggregated overall %% = %v, want %v", agg.AverageScore, direct.Overall.Percentage)
	}
	avg := agg.AverageScores
	for _, tt := range []struct {
		name string
		got  float64
		want float64
	}{
		{"governance", avg.Governance, direct.Governance.Percentage},
		{"legacy", avg.Legacy, direct.Legacy.Percentage},
		{"relationships", avg.Relationships, direct.Relationships.Percentage},
		{"strategy", avg.Strategy, direct.Strategy.Percentage},
	} {
		if tt.got != tt.want {
			t.Errorf("%s average = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestAdminAccounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.Admins()
	ctx := context.Background()

	missing, err := repo.ByUsername(ctx, "nobody")
	if err != nil {
		t.Fatalf("by username: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown username")
	}

	created, err := repo.Create(ctx, "admin", "$2a$10$fakehashfortest")
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected assigned id")
	}

	found, err := repo.ByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("by username: %v", err)
	}
	if found == nil || found.PasswordHash != created.PasswordHash {
		t.Errorf("found = %+v, want stored account", found)
	}
}
