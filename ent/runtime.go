// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/wichai/compass/ent/adminuser"
	"github.com/wichai/compass/ent/schema"
	"github.com/wichai/compass/ent/submission"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	adminuserFields := schema.AdminUser{}.Fields()
	_ = adminuserFields
	// adminuserDescUsername is the schema descriptor for username field.
	adminuserDescUsername := adminuserFields[0].Descriptor()
	// adminuser.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	adminuser.UsernameValidator = adminuserDescUsername.Validators[0].(func(string) error)
	// adminuserDescPasswordHash is the schema descriptor for password_hash field.
	adminuserDescPasswordHash := adminuserFields[1].Descriptor()
	// adminuser.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	adminuser.PasswordHashValidator = adminuserDescPasswordHash.Validators[0].(func(string) error)
	// adminuserDescCreatedAt is the schema descriptor for created_at field.
	adminuserDescCreatedAt := adminuserFields[2].Descriptor()
	// adminuser.DefaultCreatedAt holds the default value on creation for the created_at field.
	adminuser.DefaultCreatedAt = adminuserDescCreatedAt.Default.(func() time.Time)
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescRole is the schema descriptor for role field.
	submissionDescRole := submissionFields[0].Descriptor()
	// submission.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	submission.RoleValidator = submissionDescRole.Validators[0].(func(string) error)
	// submissionDescGovernanceScore is the schema descriptor for governance_score field.
	submissionDescGovernanceScore := submissionFields[3].Descriptor()
	// submission.DefaultGovernanceScore holds the default value on creation for the governance_score field.
	submission.DefaultGovernanceScore = submissionDescGovernanceScore.Default.(int)
	// submissionDescLegacyScore is the schema descriptor for legacy_score field.
	submissionDescLegacyScore := submissionFields[4].Descriptor()
	// submission.DefaultLegacyScore holds the default value on creation for the legacy_score field.
	submission.DefaultLegacyScore = submissionDescLegacyScore.Default.(int)
	// submissionDescRelationshipsScore is the schema descriptor for relationships_score field.
	submissionDescRelationshipsScore := submissionFields[5].Descriptor()
	// submission.DefaultRelationshipsScore holds the default value on creation for the relationships_score field.
	submission.DefaultRelationshipsScore = submissionDescRelationshipsScore.Default.(int)
	// submissionDescStrategyScore is the schema descriptor for strategy_score field.
	submissionDescStrategyScore := submissionFields[6].Descriptor()
	// submission.DefaultStrategyScore holds the default value on creation for the strategy_score field.
	submission.DefaultStrategyScore = submissionDescStrategyScore.Default.(int)
	// submissionDescOverallScore is the schema descriptor for overall_score field.
	submissionDescOverallScore := submissionFields[7].Descriptor()
	// submission.DefaultOverallScore holds the default value on creation for the overall_score field.
	submission.DefaultOverallScore = submissionDescOverallScore.Default.(int)
	// submissionDescCreatedAt is the schema descriptor for created_at field.
	submissionDescCreatedAt := submissionFields[8].Descriptor()
	// submission.DefaultCreatedAt holds the default value on creation for the created_at field.
	submission.DefaultCreatedAt = submissionDescCreatedAt.Default.(func() time.Time)
	// submissionDescUpdatedAt is the schema descriptor for updated_at field.
	submissionDescUpdatedAt := submissionFields[9].Descriptor()
	// submission.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	submission.DefaultUpdatedAt = submissionDescUpdatedAt.Default.(func() time.Time)
}
