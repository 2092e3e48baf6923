package store

import (
	"context"
	"fmt"
	"time"

	"github.com/wichai/compass/ent"
	entsubmission "github.com/wichai/compass/ent/submission"
	"github.com/wichai/compass/internal/submission"
)

// SubmissionRepo persists completed assessments. Records are immutable once
// written; the only mutations are delete-by-id and the administrative reset.
type SubmissionRepo interface {
	// Create stores a fully-scored record, assigning identity and
	// timestamps, and returns the stored form.
	Create(ctx context.Context, rec submission.Submission) (submission.Submission, error)

	// All returns every record, newest first.
	All(ctx context.Context) ([]submission.Submission, error)

	// ByDateRange returns records created within [from, to].
	ByDateRange(ctx context.Context, from, to time.Time) ([]submission.Submission, error)

	// Delete removes one record; false when no such id exists.
	Delete(ctx context.Context, id int) (bool, error)

	// Clear removes all records and reports how many were deleted.
	Clear(ctx context.Context) (int, error)
}

type submissionRepo struct {
	client *ent.Client
}

func (r *submissionRepo) Create(ctx context.Context, rec submission.Submission) (submission.Submission, error) {
	now := time.Now().UTC()
	row, err := r.client.Submission.Create().
		SetRole(string(rec.Role)).
		SetNillableUserName(rec.UserName).
		SetQuestionScores(rec.QuestionScores).
		SetGovernanceScore(rec.GovernanceScore).
		SetLegacyScore(rec.LegacyScore).
		SetRelationshipsScore(rec.RelationshipsScore).
		SetStrategyScore(rec.StrategyScore).
		SetOverallScore(rec.OverallScore).
		SetCreatedAt(now).
		SetUpdatedAt(now).
		SetNillableUserAgent(rec.UserAgent).
		Save(ctx)
	if err != nil {
		return submission.Submission{}, fmt.Errorf("save submission: %w", err)
	}
	return toDomain(row), nil
}

func (r *submissionRepo) All(ctx context.Context) ([]submission.Submission, error) {
	rows, err := r.client.Submission.Query().
		Order(ent.Desc(entsubmission.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	return toDomainAll(rows), nil
}

func (r *submissionRepo) ByDateRange(ctx context.Context, from, to time.Time) ([]submission.Submission, error) {
	rows, err := r.client.Submission.Query().
		Where(
			entsubmission.CreatedAtGTE(from),
			entsubmission.CreatedAtLTE(to),
		).
		Order(ent.Desc(entsubmission.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query submissions by range: %w", err)
	}
	return toDomainAll(rows), nil
}

func (r *submissionRepo) Delete(ctx context.Context, id int) (bool, error) {
	err := r.client.Submission.DeleteOneID(id).Exec(ctx)
	if ent.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("delete submission %d: %w", id, err)
	}
	return true, nil
}

func (r *submissionRepo) Clear(ctx context.Context) (int, error) {
	n, err := r.client.Submission.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear submissions: %w", err)
	}
	return n, nil
}

func toDomain(row *ent.Submission) submission.Submission {
	return submission.Submission{
		ID:                 row.ID,
		Role:               submission.Role(row.Role),
		UserName:           row.UserName,
		QuestionScores:     row.QuestionScores,
		GovernanceScore:    row.GovernanceScore,
		LegacyScore:        row.LegacyScore,
		RelationshipsScore: row.RelationshipsScore,
		StrategyScore:      row.StrategyScore,
		OverallScore:       row.OverallScore,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
		UserAgent:          row.UserAgent,
	}
}

func toDomainAll(rows []*ent.Submission) []submission.Submission {
	out := make([]submission.Submission, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}
	return out
}
