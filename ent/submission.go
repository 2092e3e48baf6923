// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/wichai/compass/ent/submission"
)

// Submission is the model entity for the Submission schema.
type Submission struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Respondent role: founder, family-employee, family-non-employee, external-advisor
	Role string `json:"role,omitempty"`
	// Optional display name; absent rather than empty
	UserName *string `json:"user_name,omitempty"`
	// Points for questions 1.1-4.3 in catalog order, 12 entries of 0-4
	QuestionScores []int `json:"question_scores,omitempty"`
	// Raw governance score, 0-12
	GovernanceScore int `json:"governance_score,omitempty"`
	// Raw legacy score, 0-12
	LegacyScore int `json:"legacy_score,omitempty"`
	// Raw relationships score, 0-12
	RelationshipsScore int `json:"relationships_score,omitempty"`
	// Raw strategy score, 0-12
	StrategyScore int `json:"strategy_score,omitempty"`
	// Raw overall score, 0-48
	OverallScore int `json:"overall_score,omitempty"`
	// UTC creation time
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Client user agent, when submitted over HTTP
	UserAgent    *string `json:"user_agent,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Submission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case submission.FieldQuestionScores:
			values[i] = new([]byte)
		case submission.FieldID, submission.FieldGovernanceScore, submission.FieldLegacyScore, submission.FieldRelationshipsScore, submission.FieldStrategyScore, submission.FieldOverallScore:
			values[i] = new(sql.NullInt64)
		case submission.FieldRole, submission.FieldUserName, submission.FieldUserAgent:
			values[i] = new(sql.NullString)
		case submission.FieldCreatedAt, submission.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Submission fields.
func (_m *Submission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case submission.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case submission.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case submission.FieldUserName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_name", values[i])
			} else if value.Valid {
				_m.UserName = new(string)
				*_m.UserName = value.String
			}
		case submission.FieldQuestionScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field question_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QuestionScores); err != nil {
					return fmt.Errorf("unmarshal field question_scores: %w", err)
				}
			}
		case submission.FieldGovernanceScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field governance_score", values[i])
			} else if value.Valid {
				_m.GovernanceScore = int(value.Int64)
			}
		case submission.FieldLegacyScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field legacy_score", values[i])
			} else if value.Valid {
				_m.LegacyScore = int(value.Int64)
			}
		case submission.FieldRelationshipsScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field relationships_score", values[i])
			} else if value.Valid {
				_m.RelationshipsScore = int(value.Int64)
			}
		case submission.FieldStrategyScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field strategy_score", values[i])
			} else if value.Valid {
				_m.StrategyScore = int(value.Int64)
			}
		case submission.FieldOverallScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_score", values[i])
			} else if value.Valid {
				_m.OverallScore = int(value.Int64)
			}
		case submission.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case submission.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case submission.FieldUserAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_agent", values[i])
			} else if value.Valid {
				_m.UserAgent = new(string)
				*_m.UserAgent = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Submission.
// This includes values selected through modifiers, order, etc.
func (_m *Submission) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Submission.
// Note that you need to call Submission.Unwrap() before calling this method if this Submission
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Submission) Update() *SubmissionUpdateOne {
	return NewSubmissionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Submission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Submission) Unwrap() *Submission {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Submission is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Submission) String() string {
	var builder strings.Builder
	builder.WriteString("Submission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	if v := _m.UserName; v != nil {
		builder.WriteString("user_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("question_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionScores))
	builder.WriteString(", ")
	builder.WriteString("governance_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.GovernanceScore))
	builder.WriteString(", ")
	builder.WriteString("legacy_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.LegacyScore))
	builder.WriteString(", ")
	builder.WriteString("relationships_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelationshipsScore))
	builder.WriteString(", ")
	builder.WriteString("strategy_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.StrategyScore))
	builder.WriteString(", ")
	builder.WriteString("overall_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallScore))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.UserAgent; v != nil {
		builder.WriteString("user_agent=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Submissions is a parsable slice of Submission.
type Submissions []*Submission
