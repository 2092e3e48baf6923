package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Submission is one completed assessment: the raw per-question points plus
// the derived dimension and overall scores, immutable once written.
type Submission struct {
	ent.Schema
}

func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.String("role").
			NotEmpty().
			Immutable().
			Comment("Respondent role: founder, family-employee, family-non-employee, external-advisor"),
		field.String("user_name").
			Optional().
			Nillable().
			Comment("Optional display name; absent rather than empty"),
		field.JSON("question_scores", []int{}).
			Comment("Points for questions 1.1-4.3 in catalog order, 12 entries of 0-4"),
		field.Int("governance_score").
			Default(0).
			Comment("Raw governance score, 0-12"),
		field.Int("legacy_score").
			Default(0).
			Comment("Raw legacy score, 0-12"),
		field.Int("relationships_score").
			Default(0).
			Comment("Raw relationships score, 0-12"),
		field.Int("strategy_score").
			Default(0).
			Comment("Raw strategy score, 0-12"),
		field.Int("overall_score").
			Default(0).
			Comment("Raw overall score, 0-48"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("UTC creation time"),
		field.Time("updated_at").
			Default(time.Now),
		field.String("user_agent").
			Optional().
			Nillable().
			Comment("Client user agent, when submitted over HTTP"),
	}
}

func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("role"),
	}
}
