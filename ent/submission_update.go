// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/wichai/compass/ent/predicate"
	"github.com/wichai/compass/ent/submission"
)

// SubmissionUpdate is the builder for updating Submission entities.
type SubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionMutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdate) Where(ps ...predicate.Submission) *SubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserName sets the "user_name" field.
func (_u *SubmissionUpdate) SetUserName(v string) *SubmissionUpdate {
	_u.mutation.SetUserName(v)
	return _u
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableUserName(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetUserName(*v)
	}
	return _u
}

// ClearUserName clears the value of the "user_name" field.
func (_u *SubmissionUpdate) ClearUserName() *SubmissionUpdate {
	_u.mutation.ClearUserName()
	return _u
}

// SetQuestionScores sets the "question_scores" field.
func (_u *SubmissionUpdate) SetQuestionScores(v []int) *SubmissionUpdate {
	_u.mutation.SetQuestionScores(v)
	return _u
}

// AppendQuestionScores appends value to the "question_scores" field.
func (_u *SubmissionUpdate) AppendQuestionScores(v []int) *SubmissionUpdate {
	_u.mutation.AppendQuestionScores(v)
	return _u
}

// SetGovernanceScore sets the "governance_score" field.
func (_u *SubmissionUpdate) SetGovernanceScore(v int) *SubmissionUpdate {
	_u.mutation.ResetGovernanceScore()
	_u.mutation.SetGovernanceScore(v)
	return _u
}

// SetNillableGovernanceScore sets the "governance_score" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableGovernanceScore(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetGovernanceScore(*v)
	}
	return _u
}

// AddGovernanceScore adds value to the "governance_score" field.
func (_u *SubmissionUpdate) AddGovernanceScore(v int) *SubmissionUpdate {
	_u.mutation.AddGovernanceScore(v)
	return _u
}

// SetLegacyScore sets the "legacy_score" field.
func (_u *SubmissionUpdate) SetLegacyScore(v int) *SubmissionUpdate {
	_u.mutation.ResetLegacyScore()
	_u.mutation.SetLegacyScore(v)
	return _u
}

// SetNillableLegacyScore sets the "legacy_score" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableLegacyScore(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetLegacyScore(*v)
	}
	return _u
}

// AddLegacyScore adds value to the "legacy_score" field.
func (_u *SubmissionUpdate) AddLegacyScore(v int) *SubmissionUpdate {
	_u.mutation.AddLegacyScore(v)
	return _u
}

// SetRelationshipsScore sets the "relationships_score" field.
func (_u *SubmissionUpdate) SetRelationshipsScore(v int) *SubmissionUpdate {
	_u.mutation.ResetRelationshipsScore()
	_u.mutation.SetRelationshipsScore(v)
	return _u
}

// SetNillableRelationshipsScore sets the "relationships_score" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableRelationshipsScore(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetRelationshipsScore(*v)
	}
	return _u
}

// AddRelationshipsScore adds value to the "relationships_score" field.
func (_u *SubmissionUpdate) AddRelationshipsScore(v int) *SubmissionUpdate {
	_u.mutation.AddRelationshipsScore(v)
	return _u
}

// SetStrategyScore sets the "strategy_score" field.
func (_u *SubmissionUpdate) SetStrategyScore(v int) *SubmissionUpdate {
	_u.mutation.ResetStrategyScore()
	_u.mutation.SetStrategyScore(v)
	return _u
}

// SetNillableStrategyScore sets the "strategy_score" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableStrategyScore(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetStrategyScore(*v)
	}
	return _u
}

// AddStrategyScore adds value to the "strategy_score" field.
func (_u *SubmissionUpdate) AddStrategyScore(v int) *SubmissionUpdate {
	_u.mutation.AddStrategyScore(v)
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *SubmissionUpdate) SetOverallScore(v int) *SubmissionUpdate {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableOverallScore(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *SubmissionUpdate) AddOverallScore(v int) *SubmissionUpdate {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubmissionUpdate) SetUpdatedAt(v time.Time) *SubmissionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableUpdatedAt(v *time.Time) *SubmissionUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetUserAgent sets the "user_agent" field.
func (_u *SubmissionUpdate) SetUserAgent(v string) *SubmissionUpdate {
	_u.mutation.SetUserAgent(v)
	return _u
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableUserAgent(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetUserAgent(*v)
	}
	return _u
}

// ClearUserAgent clears the value of the "user_agent" field.
func (_u *SubmissionUpdate) ClearUserAgent() *SubmissionUpdate {
	_u.mutation.ClearUserAgent()
	return _u
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdate) Mutation() *SubmissionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserName(); ok {
		_spec.SetField(submission.FieldUserName, field.TypeString, value)
	}
	if _u.mutation.UserNameCleared() {
		_spec.ClearField(submission.FieldUserName, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionScores(); ok {
		_spec.SetField(submission.FieldQuestionScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestionScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submission.FieldQuestionScores, value)
		})
	}
	if value, ok := _u.mutation.GovernanceScore(); ok {
		_spec.SetField(submission.FieldGovernanceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGovernanceScore(); ok {
		_spec.AddField(submission.FieldGovernanceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LegacyScore(); ok {
		_spec.SetField(submission.FieldLegacyScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLegacyScore(); ok {
		_spec.AddField(submission.FieldLegacyScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RelationshipsScore(); ok {
		_spec.SetField(submission.FieldRelationshipsScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRelationshipsScore(); ok {
		_spec.AddField(submission.FieldRelationshipsScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StrategyScore(); ok {
		_spec.SetField(submission.FieldStrategyScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStrategyScore(); ok {
		_spec.AddField(submission.FieldStrategyScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(submission.FieldOverallScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(submission.FieldOverallScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserAgent(); ok {
		_spec.SetField(submission.FieldUserAgent, field.TypeString, value)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(submission.FieldUserAgent, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionUpdateOne is the builder for updating a single Submission entity.
type SubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionMutation
}

// SetUserName sets the "user_name" field.
func (_u *SubmissionUpdateOne) SetUserName(v string) *SubmissionUpdateOne {
	_u.mutation.SetUserName(v)
	return _u
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableUserName(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetUserName(*v)
	}
	return _u
}

// ClearUserName clears the value of the "user_name" field.
func (_u *SubmissionUpdateOne) ClearUserName() *SubmissionUpdateOne {
	_u.mutation.ClearUserName()
	return _u
}

// SetQuestionScores sets the "question_scores" field.
func (_u *SubmissionUpdateOne) SetQuestionScores(v []int) *SubmissionUpdateOne {
	_u.mutation.SetQuestionScores(v)
	return _u
}

// AppendQuestionScores appends value to the "question_scores" field.
func (_u *SubmissionUpdateOne) AppendQuestionScores(v []int) *SubmissionUpdateOne {
	_u.mutation.AppendQuestionScores(v)
	return _u
}

// SetGovernanceScore sets the "governance_score" field.
func (_u *SubmissionUpdateOne) SetGovernanceScore(v int) *SubmissionUpdateOne {
	_u.mutation.ResetGovernanceScore()
	_u.mutation.SetGovernanceScore(v)
	return _u
}

// SetNillableGovernanceScore sets the "governance_score" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableGovernanceScore(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetGovernanceScore(*v)
	}
	return _u
}

// AddGovernanceScore adds value to the "governance_score" field.
func (_u *SubmissionUpdateOne) AddGovernanceScore(v int) *SubmissionUpdateOne {
	_u.mutation.AddGovernanceScore(v)
	return _u
}

// SetLegacyScore sets the "legacy_score" field.
func (_u *SubmissionUpdateOne) SetLegacyScore(v int) *SubmissionUpdateOne {
	_u.mutation.ResetLegacyScore()
	_u.mutation.SetLegacyScore(v)
	return _u
}

// SetNillableLegacyScore sets the "legacy_score" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableLegacyScore(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetLegacyScore(*v)
	}
	return _u
}

// AddLegacyScore adds value to the "legacy_score" field.
func (_u *SubmissionUpdateOne) AddLegacyScore(v int) *SubmissionUpdateOne {
	_u.mutation.AddLegacyScore(v)
	return _u
}

// SetRelationshipsScore sets the "relationships_score" field.
func (_u *SubmissionUpdateOne) SetRelationshipsScore(v int) *SubmissionUpdateOne {
	_u.mutation.ResetRelationshipsScore()
	_u.mutation.SetRelationshipsScore(v)
	return _u
}

// SetNillableRelationshipsScore sets the "relationships_score" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableRelationshipsScore(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetRelationshipsScore(*v)
	}
	return _u
}

// AddRelationshipsScore adds value to the "relationships_score" field.
func (_u *SubmissionUpdateOne) AddRelationshipsScore(v int) *SubmissionUpdateOne {
	_u.mutation.AddRelationshipsScore(v)
	return _u
}

// SetStrategyScore sets the "strategy_score" field.
func (_u *SubmissionUpdateOne) SetStrategyScore(v int) *SubmissionUpdateOne {
	_u.mutation.ResetStrategyScore()
	_u.mutation.SetStrategyScore(v)
	return _u
}

// SetNillableStrategyScore sets the "strategy_score" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableStrategyScore(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetStrategyScore(*v)
	}
	return _u
}

// AddStrategyScore adds value to the "strategy_score" field.
func (_u *SubmissionUpdateOne) AddStrategyScore(v int) *SubmissionUpdateOne {
	_u.mutation.AddStrategyScore(v)
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *SubmissionUpdateOne) SetOverallScore(v int) *SubmissionUpdateOne {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableOverallScore(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *SubmissionUpdateOne) AddOverallScore(v int) *SubmissionUpdateOne {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubmissionUpdateOne) SetUpdatedAt(v time.Time) *SubmissionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableUpdatedAt(v *time.Time) *SubmissionUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetUserAgent sets the "user_agent" field.
func (_u *SubmissionUpdateOne) SetUserAgent(v string) *SubmissionUpdateOne {
	_u.mutation.SetUserAgent(v)
	return _u
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableUserAgent(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetUserAgent(*v)
	}
	return _u
}

// ClearUserAgent clears the value of the "user_agent" field.
func (_u *SubmissionUpdateOne) ClearUserAgent() *SubmissionUpdateOne {
	_u.mutation.ClearUserAgent()
	return _u
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdateOne) Mutation() *SubmissionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdateOne) Where(ps ...predicate.Submission) *SubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionUpdateOne) Select(field string, fields ...string) *SubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Submission entity.
func (_u *SubmissionUpdateOne) Save(ctx context.Context) (*Submission, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdateOne) SaveX(ctx context.Context) *Submission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SubmissionUpdateOne) sqlSave(ctx context.Context) (_node *Submission, err error) {
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Submission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submission.FieldID)
		for _, f := range fields {
			if !submission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submission.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserName(); ok {
		_spec.SetField(submission.FieldUserName, field.TypeString, value)
	}
	if _u.mutation.UserNameCleared() {
		_spec.ClearField(submission.FieldUserName, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionScores(); ok {
		_spec.SetField(submission.FieldQuestionScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestionScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submission.FieldQuestionScores, value)
		})
	}
	if value, ok := _u.mutation.GovernanceScore(); ok {
		_spec.SetField(submission.FieldGovernanceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGovernanceScore(); ok {
		_spec.AddField(submission.FieldGovernanceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LegacyScore(); ok {
		_spec.SetField(submission.FieldLegacyScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLegacyScore(); ok {
		_spec.AddField(submission.FieldLegacyScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RelationshipsScore(); ok {
		_spec.SetField(submission.FieldRelationshipsScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRelationshipsScore(); ok {
		_spec.AddField(submission.FieldRelationshipsScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StrategyScore(); ok {
		_spec.SetField(submission.FieldStrategyScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStrategyScore(); ok {
		_spec.AddField(submission.FieldStrategyScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(submission.FieldOverallScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(submission.FieldOverallScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserAgent(); ok {
		_spec.SetField(submission.FieldUserAgent, field.TypeString, value)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(submission.FieldUserAgent, field.TypeString)
	}
	_node = &Submission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
