// Code generated by ent, DO NOT EDIT.

package submission

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the submission type in the database.
	Label = "submission"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldUserName holds the string denoting the user_name field in the database.
	FieldUserName = "user_name"
	// FieldQuestionScores holds the string denoting the question_scores field in the database.
	FieldQuestionScores = "question_scores"
	// FieldGovernanceScore holds the string denoting the governance_score field in the database.
	FieldGovernanceScore = "governance_score"
	// FieldLegacyScore holds the string denoting the legacy_score field in the database.
	FieldLegacyScore = "legacy_score"
	// FieldRelationshipsScore holds the string denoting the relationships_score field in the database.
	FieldRelationshipsScore = "relationships_score"
	// FieldStrategyScore holds the string denoting the strategy_score field in the database.
	FieldStrategyScore = "strategy_score"
	// FieldOverallScore holds the string denoting the overall_score field in the database.
	FieldOverallScore = "overall_score"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserAgent holds the string denoting the user_agent field in the database.
	FieldUserAgent = "user_agent"
	// Table holds the table name of the submission in the database.
	Table = "submissions"
)

// Columns holds all SQL columns for submission fields.
var Columns = []string{
	FieldID,
	FieldRole,
	FieldUserName,
	FieldQuestionScores,
	FieldGovernanceScore,
	FieldLegacyScore,
	FieldRelationshipsScore,
	FieldStrategyScore,
	FieldOverallScore,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserAgent,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// RoleValidator is a validator for the "role" field. It is called by the builders before save.
	RoleValidator func(string) error
	// DefaultGovernanceScore holds the default value on creation for the "governance_score" field.
	DefaultGovernanceScore int
	// DefaultLegacyScore holds the default value on creation for the "legacy_score" field.
	DefaultLegacyScore int
	// DefaultRelationshipsScore holds the default value on creation for the "relationships_score" field.
	DefaultRelationshipsScore int
	// DefaultStrategyScore holds the default value on creation for the "strategy_score" field.
	DefaultStrategyScore int
	// DefaultOverallScore holds the default value on creation for the "overall_score" field.
	DefaultOverallScore int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Submission queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByUserName orders the results by the user_name field.
func ByUserName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserName, opts...).ToFunc()
}

// ByGovernanceScore orders the results by the governance_score field.
func ByGovernanceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGovernanceScore, opts...).ToFunc()
}

// ByLegacyScore orders the results by the legacy_score field.
func ByLegacyScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLegacyScore, opts...).ToFunc()
}

// ByRelationshipsScore orders the results by the relationships_score field.
func ByRelationshipsScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelationshipsScore, opts...).ToFunc()
}

// ByStrategyScore orders the results by the strategy_score field.
func ByStrategyScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrategyScore, opts...).ToFunc()
}

// ByOverallScore orders the results by the overall_score field.
func ByOverallScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallScore, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserAgent orders the results by the user_agent field.
func ByUserAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserAgent, opts...).ToFunc()
}
