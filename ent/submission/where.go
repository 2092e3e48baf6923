// Code generated by ent, DO NOT EDIT.

package submission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/wichai/compass/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldID, id))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldRole, v))
}

// UserName applies equality check predicate on the "user_name" field. It's identical to UserNameEQ.
func UserName(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUserName, v))
}

// GovernanceScore applies equality check predicate on the "governance_score" field. It's identical to GovernanceScoreEQ.
func GovernanceScore(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldGovernanceScore, v))
}

// LegacyScore applies equality check predicate on the "legacy_score" field. It's identical to LegacyScoreEQ.
func LegacyScore(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldLegacyScore, v))
}

// RelationshipsScore applies equality check predicate on the "relationships_score" field. It's identical to RelationshipsScoreEQ.
func RelationshipsScore(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldRelationshipsScore, v))
}

// StrategyScore applies equality check predicate on the "strategy_score" field. It's identical to StrategyScoreEQ.
func StrategyScore(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStrategyScore, v))
}

// OverallScore applies equality check predicate on the "overall_score" field. It's identical to OverallScoreEQ.
func OverallScore(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldOverallScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserAgent applies equality check predicate on the "user_agent" field. It's identical to UserAgentEQ.
func UserAgent(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUserAgent, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldRole, v))
}

// UserNameEQ applies the EQ predicate on the "user_name" field.
func UserNameEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUserName, v))
}

// UserNameNEQ applies the NEQ predicate on the "user_name" field.
func UserNameNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldUserName, v))
}

// UserNameIn applies the In predicate on the "user_name" field.
func UserNameIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldUserName, vs...))
}

// UserNameNotIn applies the NotIn predicate on the "user_name" field.
func UserNameNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldUserName, vs...))
}

// UserNameGT applies the GT predicate on the "user_name" field.
func UserNameGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldUserName, v))
}

// UserNameGTE applies the GTE predicate on the "user_name" field.
func UserNameGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldUserName, v))
}

// UserNameLT applies the LT predicate on the "user_name" field.
func UserNameLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldUserName, v))
}

// UserNameLTE applies the LTE predicate on the "user_name" field.
func UserNameLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldUserName, v))
}

// UserNameContains applies the Contains predicate on the "user_name" field.
func UserNameContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldUserName, v))
}

// UserNameHasPrefix applies the HasPrefix predicate on the "user_name" field.
func UserNameHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldUserName, v))
}

// UserNameHasSuffix applies the HasSuffix predicate on the "user_name" field.
func UserNameHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldUserName, v))
}

// UserNameIsNil applies the IsNil predicate on the "user_name" field.
func UserNameIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldUserName))
}

// UserNameNotNil applies the NotNil predicate on the "user_name" field.
func UserNameNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldUserName))
}

// UserNameEqualFold applies the EqualFold predicate on the "user_name" field.
func UserNameEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldUserName, v))
}

// UserNameContainsFold applies the ContainsFold predicate on the "user_name" field.
func UserNameContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldUserName, v))
}

// GovernanceScoreEQ applies the EQ predicate on the "governance_score" field.
func GovernanceScoreEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldGovernanceScore, v))
}

// GovernanceScoreNEQ applies the NEQ predicate on the "governance_score" field.
func GovernanceScoreNEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldGovernanceScore, v))
}

// GovernanceScoreIn applies the In predicate on the "governance_score" field.
func GovernanceScoreIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldGovernanceScore, vs...))
}

// GovernanceScoreNotIn applies the NotIn predicate on the "governance_score" field.
func GovernanceScoreNotIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldGovernanceScore, vs...))
}

// GovernanceScoreGT applies the GT predicate on the "governance_score" field.
func GovernanceScoreGT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldGovernanceScore, v))
}

// GovernanceScoreGTE applies the GTE predicate on the "governance_score" field.
func GovernanceScoreGTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldGovernanceScore, v))
}

// GovernanceScoreLT applies the LT predicate on the "governance_score" field.
func GovernanceScoreLT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldGovernanceScore, v))
}

// GovernanceScoreLTE applies the LTE predicate on the "governance_score" field.
func GovernanceScoreLTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldGovernanceScore, v))
}

// LegacyScoreEQ applies the EQ predicate on the "legacy_score" field.
func LegacyScoreEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldLegacyScore, v))
}

// LegacyScoreNEQ applies the NEQ predicate on the "legacy_score" field.
func LegacyScoreNEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldLegacyScore, v))
}

// LegacyScoreIn applies the In predicate on the "legacy_score" field.
func LegacyScoreIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldLegacyScore, vs...))
}

// LegacyScoreNotIn applies the NotIn predicate on the "legacy_score" field.
func LegacyScoreNotIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldLegacyScore, vs...))
}

// LegacyScoreGT applies the GT predicate on the "legacy_score" field.
func LegacyScoreGT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldLegacyScore, v))
}

// LegacyScoreGTE applies the GTE predicate on the "legacy_score" field.
func LegacyScoreGTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldLegacyScore, v))
}

// LegacyScoreLT applies the LT predicate on the "legacy_score" field.
func LegacyScoreLT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldLegacyScore, v))
}

// LegacyScoreLTE applies the LTE predicate on the "legacy_score" field.
func LegacyScoreLTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldLegacyScore, v))
}

// RelationshipsScoreEQ applies the EQ predicate on the "relationships_score" field.
func RelationshipsScoreEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldRelationshipsScore, v))
}

// RelationshipsScoreNEQ applies the NEQ predicate on the "relationships_score" field.
func RelationshipsScoreNEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldRelationshipsScore, v))
}

// RelationshipsScoreIn applies the In predicate on the "relationships_score" field.
func RelationshipsScoreIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldRelationshipsScore, vs...))
}

// RelationshipsScoreNotIn applies the NotIn predicate on the "relationships_score" field.
func RelationshipsScoreNotIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldRelationshipsScore, vs...))
}

// RelationshipsScoreGT applies the GT predicate on the "relationships_score" field.
func RelationshipsScoreGT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldRelationshipsScore, v))
}

// RelationshipsScoreGTE applies the GTE predicate on the "relationships_score" field.
func RelationshipsScoreGTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldRelationshipsScore, v))
}

// RelationshipsScoreLT applies the LT predicate on the "relationships_score" field.
func RelationshipsScoreLT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldRelationshipsScore, v))
}

// RelationshipsScoreLTE applies the LTE predicate on the "relationships_score" field.
func RelationshipsScoreLTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldRelationshipsScore, v))
}

// StrategyScoreEQ applies the EQ predicate on the "strategy_score" field.
func StrategyScoreEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStrategyScore, v))
}

// StrategyScoreNEQ applies the NEQ predicate on the "strategy_score" field.
func StrategyScoreNEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldStrategyScore, v))
}

// StrategyScoreIn applies the In predicate on the "strategy_score" field.
func StrategyScoreIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldStrategyScore, vs...))
}

// StrategyScoreNotIn applies the NotIn predicate on the "strategy_score" field.
func StrategyScoreNotIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldStrategyScore, vs...))
}

// StrategyScoreGT applies the GT predicate on the "strategy_score" field.
func StrategyScoreGT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldStrategyScore, v))
}

// StrategyScoreGTE applies the GTE predicate on the "strategy_score" field.
func StrategyScoreGTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldStrategyScore, v))
}

// StrategyScoreLT applies the LT predicate on the "strategy_score" field.
func StrategyScoreLT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldStrategyScore, v))
}

// StrategyScoreLTE applies the LTE predicate on the "strategy_score" field.
func StrategyScoreLTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldStrategyScore, v))
}

// OverallScoreEQ applies the EQ predicate on the "overall_score" field.
func OverallScoreEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldOverallScore, v))
}

// OverallScoreNEQ applies the NEQ predicate on the "overall_score" field.
func OverallScoreNEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldOverallScore, v))
}

// OverallScoreIn applies the In predicate on the "overall_score" field.
func OverallScoreIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldOverallScore, vs...))
}

// OverallScoreNotIn applies the NotIn predicate on the "overall_score" field.
func OverallScoreNotIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldOverallScore, vs...))
}

// OverallScoreGT applies the GT predicate on the "overall_score" field.
func OverallScoreGT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldOverallScore, v))
}

// OverallScoreGTE applies the GTE predicate on the "overall_score" field.
func OverallScoreGTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldOverallScore, v))
}

// OverallScoreLT applies the LT predicate on the "overall_score" field.
func OverallScoreLT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldOverallScore, v))
}

// OverallScoreLTE applies the LTE predicate on the "overall_score" field.
func OverallScoreLTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldOverallScore, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserAgentEQ applies the EQ predicate on the "user_agent" field.
func UserAgentEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUserAgent, v))
}

// UserAgentNEQ applies the NEQ predicate on the "user_agent" field.
func UserAgentNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldUserAgent, v))
}

// UserAgentIn applies the In predicate on the "user_agent" field.
func UserAgentIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldUserAgent, vs...))
}

// UserAgentNotIn applies the NotIn predicate on the "user_agent" field.
func UserAgentNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldUserAgent, vs...))
}

// UserAgentGT applies the GT predicate on the "user_agent" field.
func UserAgentGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldUserAgent, v))
}

// UserAgentGTE applies the GTE predicate on the "user_agent" field.
func UserAgentGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldUserAgent, v))
}

// UserAgentLT applies the LT predicate on the "user_agent" field.
func UserAgentLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldUserAgent, v))
}

// UserAgentLTE applies the LTE predicate on the "user_agent" field.
func UserAgentLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldUserAgent, v))
}

// UserAgentContains applies the Contains predicate on the "user_agent" field.
func UserAgentContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldUserAgent, v))
}

// UserAgentHasPrefix applies the HasPrefix predicate on the "user_agent" field.
func UserAgentHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldUserAgent, v))
}

// UserAgentHasSuffix applies the HasSuffix predicate on the "user_agent" field.
func UserAgentHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldUserAgent, v))
}

// UserAgentIsNil applies the IsNil predicate on the "user_agent" field.
func UserAgentIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldUserAgent))
}

// UserAgentNotNil applies the NotNil predicate on the "user_agent" field.
func UserAgentNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldUserAgent))
}

// UserAgentEqualFold applies the EqualFold predicate on the "user_agent" field.
func UserAgentEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldUserAgent, v))
}

// UserAgentContainsFold applies the ContainsFold predicate on the "user_agent" field.
func UserAgentContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldUserAgent, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.NotPredicates(p))
}
