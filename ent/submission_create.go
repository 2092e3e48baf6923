// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wichai/compass/ent/submission"
)

// SubmissionCreate is the builder for creating a Submission entity.
type SubmissionCreate struct {
	config
	mutation *SubmissionMutation
	hooks    []Hook
}

// SetRole sets the "role" field.
func (_c *SubmissionCreate) SetRole(v string) *SubmissionCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetUserName sets the "user_name" field.
func (_c *SubmissionCreate) SetUserName(v string) *SubmissionCreate {
	_c.mutation.SetUserName(v)
	return _c
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableUserName(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetUserName(*v)
	}
	return _c
}

// SetQuestionScores sets the "question_scores" field.
func (_c *SubmissionCreate) SetQuestionScores(v []int) *SubmissionCreate {
	_c.mutation.SetQuestionScores(v)
	return _c
}

// SetGovernanceScore sets the "governance_score" field.
func (_c *SubmissionCreate) SetGovernanceScore(v int) *SubmissionCreate {
	_c.mutation.SetGovernanceScore(v)
	return _c
}

// SetNillableGovernanceScore sets the "governance_score" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableGovernanceScore(v *int) *SubmissionCreate {
	if v != nil {
		_c.SetGovernanceScore(*v)
	}
	return _c
}

// SetLegacyScore sets the "legacy_score" field.
func (_c *SubmissionCreate) SetLegacyScore(v int) *SubmissionCreate {
	_c.mutation.SetLegacyScore(v)
	return _c
}

// SetNillableLegacyScore sets the "legacy_score" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableLegacyScore(v *int) *SubmissionCreate {
	if v != nil {
		_c.SetLegacyScore(*v)
	}
	return _c
}

// SetRelationshipsScore sets the "relationships_score" field.
func (_c *SubmissionCreate) SetRelationshipsScore(v int) *SubmissionCreate {
	_c.mutation.SetRelationshipsScore(v)
	return _c
}

// SetNillableRelationshipsScore sets the "relationships_score" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableRelationshipsScore(v *int) *SubmissionCreate {
	if v != nil {
		_c.SetRelationshipsScore(*v)
	}
	return _c
}

// SetStrategyScore sets the "strategy_score" field.
func (_c *SubmissionCreate) SetStrategyScore(v int) *SubmissionCreate {
	_c.mutation.SetStrategyScore(v)
	return _c
}

// SetNillableStrategyScore sets the "strategy_score" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableStrategyScore(v *int) *SubmissionCreate {
	if v != nil {
		_c.SetStrategyScore(*v)
	}
	return _c
}

// SetOverallScore sets the "overall_score" field.
func (_c *SubmissionCreate) SetOverallScore(v int) *SubmissionCreate {
	_c.mutation.SetOverallScore(v)
	return _c
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableOverallScore(v *int) *SubmissionCreate {
	if v != nil {
		_c.SetOverallScore(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubmissionCreate) SetCreatedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableCreatedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SubmissionCreate) SetUpdatedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableUpdatedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserAgent sets the "user_agent" field.
func (_c *SubmissionCreate) SetUserAgent(v string) *SubmissionCreate {
	_c.mutation.SetUserAgent(v)
	return _c
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableUserAgent(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetUserAgent(*v)
	}
	return _c
}

// Mutation returns the SubmissionMutation object of the builder.
func (_c *SubmissionCreate) Mutation() *SubmissionMutation {
	return _c.mutation
}

// Save creates the Submission in the database.
func (_c *SubmissionCreate) Save(ctx context.Context) (*Submission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubmissionCreate) SaveX(ctx context.Context) *Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubmissionCreate) defaults() {
	if _, ok := _c.mutation.GovernanceScore(); !ok {
		v := submission.DefaultGovernanceScore
		_c.mutation.SetGovernanceScore(v)
	}
	if _, ok := _c.mutation.LegacyScore(); !ok {
		v := submission.DefaultLegacyScore
		_c.mutation.SetLegacyScore(v)
	}
	if _, ok := _c.mutation.RelationshipsScore(); !ok {
		v := submission.DefaultRelationshipsScore
		_c.mutation.SetRelationshipsScore(v)
	}
	if _, ok := _c.mutation.StrategyScore(); !ok {
		v := submission.DefaultStrategyScore
		_c.mutation.SetStrategyScore(v)
	}
	if _, ok := _c.mutation.OverallScore(); !ok {
		v := submission.DefaultOverallScore
		_c.mutation.SetOverallScore(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := submission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := submission.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubmissionCreate) check() error {
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "Submission.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := submission.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Submission.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionScores(); !ok {
		return &ValidationError{Name: "question_scores", err: errors.New(`ent: missing required field "Submission.question_scores"`)}
	}
	if _, ok := _c.mutation.GovernanceScore(); !ok {
		return &ValidationError{Name: "governance_score", err: errors.New(`ent: missing required field "Submission.governance_score"`)}
	}
	if _, ok := _c.mutation.LegacyScore(); !ok {
		return &ValidationError{Name: "legacy_score", err: errors.New(`ent: missing required field "Submission.legacy_score"`)}
	}
	if _, ok := _c.mutation.RelationshipsScore(); !ok {
		return &ValidationError{Name: "relationships_score", err: errors.New(`ent: missing required field "Submission.relationships_score"`)}
	}
	if _, ok := _c.mutation.StrategyScore(); !ok {
		return &ValidationError{Name: "strategy_score", err: errors.New(`ent: missing required field "Submission.strategy_score"`)}
	}
	if _, ok := _c.mutation.OverallScore(); !ok {
		return &ValidationError{Name: "overall_score", err: errors.New(`ent: missing required field "Submission.overall_score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Submission.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Submission.updated_at"`)}
	}
	return nil
}

func (_c *SubmissionCreate) sqlSave(ctx context.Context) (*Submission, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubmissionCreate) createSpec() (*Submission, *sqlgraph.CreateSpec) {
	var (
		_node = &Submission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(submission.Table, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(submission.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.UserName(); ok {
		_spec.SetField(submission.FieldUserName, field.TypeString, value)
		_node.UserName = &value
	}
	if value, ok := _c.mutation.QuestionScores(); ok {
		_spec.SetField(submission.FieldQuestionScores, field.TypeJSON, value)
		_node.QuestionScores = value
	}
	if value, ok := _c.mutation.GovernanceScore(); ok {
		_spec.SetField(submission.FieldGovernanceScore, field.TypeInt, value)
		_node.GovernanceScore = value
	}
	if value, ok := _c.mutation.LegacyScore(); ok {
		_spec.SetField(submission.FieldLegacyScore, field.TypeInt, value)
		_node.LegacyScore = value
	}
	if value, ok := _c.mutation.RelationshipsScore(); ok {
		_spec.SetField(submission.FieldRelationshipsScore, field.TypeInt, value)
		_node.RelationshipsScore = value
	}
	if value, ok := _c.mutation.StrategyScore(); ok {
		_spec.SetField(submission.FieldStrategyScore, field.TypeInt, value)
		_node.StrategyScore = value
	}
	if value, ok := _c.mutation.OverallScore(); ok {
		_spec.SetField(submission.FieldOverallScore, field.TypeInt, value)
		_node.OverallScore = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(submission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserAgent(); ok {
		_spec.SetField(submission.FieldUserAgent, field.TypeString, value)
		_node.UserAgent = &value
	}
	return _node, _spec
}

// SubmissionCreateBulk is the builder for creating many Submission entities in bulk.
type SubmissionCreateBulk struct {
	config
	err      error
	builders []*SubmissionCreate
}

// Save creates the Submission entities in the database.
func (_c *SubmissionCreateBulk) Save(ctx context.Context) ([]*Submission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Submission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubmissionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SubmissionCreateBulk) SaveX(ctx context.Context) []*Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
