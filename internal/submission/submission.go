// Package submission defines the persisted assessment record and its
// construction from a scored answer set.
package submission

import (
	"fmt"
	"strings"
	"time"

	"github.com/wichai/compass/internal/catalog"
	"github.com/wichai/compass/internal/scoring"
)

// Role is the respondent's relationship to the family enterprise.
type Role string

const (
	RoleFounder           Role = "founder"
	RoleFamilyEmployee    Role = "family-employee"
	RoleFamilyNonEmployee Role = "family-non-employee"
	RoleExternalAdvisor   Role = "external-advisor"
)

// AllRoles returns the known roles in display order.
func AllRoles() []Role {
	return []Role{
		RoleFounder,
		RoleFamilyEmployee,
		RoleFamilyNonEmployee,
		RoleExternalAdvisor,
	}
}

// DisplayName returns a human-readable label for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleFounder:
		return "Founder / Wealth Creator"
	case RoleFamilyEmployee:
		return "Family Member (working in the business)"
	case RoleFamilyNonEmployee:
		return "Family Member (not working in the business)"
	case RoleExternalAdvisor:
		return "External Advisor"
	default:
		return string(r)
	}
}

// ParseRole validates a role string against the known set.
func ParseRole(s string) (Role, error) {
	for _, r := range AllRoles() {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Submission is one persisted, completed assessment. Immutable once written;
// deleted individually by id or wholesale by an administrative reset.
type Submission struct {
	ID                 int       `json:"id"`
	Role               Role      `json:"role"`
	UserName           *string   `json:"userName"`
	QuestionScores     []int     `json:"questionScores"`
	GovernanceScore    int       `json:"governanceScore"`
	LegacyScore        int       `json:"legacyScore"`
	RelationshipsScore int       `json:"relationshipsScore"`
	StrategyScore      int       `json:"strategyScore"`
	OverallScore       int       `json:"overallScore"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
	UserAgent          *string   `json:"userAgent,omitempty"`
}

// DimensionScore returns the stored raw score for a dimension.
func (s *Submission) DimensionScore(d catalog.Dimension) int {
	switch d {
	case catalog.DimensionGovernance:
		return s.GovernanceScore
	case catalog.DimensionLegacy:
		return s.LegacyScore
	case catalog.DimensionRelationships:
		return s.RelationshipsScore
	default:
		return s.StrategyScore
	}
}

// NormalizeUserName trims the input and maps empty or whitespace-only names
// to absent (nil), never to an empty string.
func NormalizeUserName(name string) *string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// NormalizeUserAgent maps an empty user agent to absent.
func NormalizeUserAgent(ua string) *string {
	if ua == "" {
		return nil
	}
	return &ua
}

// FromAnswers builds a fully-scored record from an answer set. Identity and
// timestamps are assigned by the store on write.
func FromAnswers(role Role, userName, userAgent string, answers scoring.AnswerSet) Submission {
	result := scoring.ScoreAll(answers)
	return Submission{
		Role:               role,
		UserName:           NormalizeUserName(userName),
		QuestionScores:     scoring.QuestionPoints(answers),
		GovernanceScore:    result.Governance.Score,
		LegacyScore:        result.Legacy.Score,
		RelationshipsScore: result.Relationships.Score,
		StrategyScore:      result.Strategy.Score,
		OverallScore:       result.Overall.Score,
		UserAgent:          NormalizeUserAgent(userAgent),
	}
}
