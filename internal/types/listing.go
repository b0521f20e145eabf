// Package types provides type definitions for structured data used throughout the listing-copilot system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Statuses for a compliance check result.
const (
	StatusSuccess = "Success"
	StatusError   = "Error"
)

// Rule names used as keys in a FieldAnalysis.
const (
	RuleCharLim           = "charLim"
	RuleRestrictedWords   = "restrictedWords"
	RuleSpecialCharacters = "specialCharacters"
	RuleDuplicateWords    = "duplicateWords"
)

// CheckResult is the outcome of one compliance rule applied to one listing field.
// PointNumber is set only for multi-paragraph fields (description) and identifies
// the 1-based paragraph the result refers to.
type CheckResult struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	HowToSolve  string `json:"howToSolve"`
	PointNumber *int   `json:"pointNumber,omitempty"`
}

// FieldAnalysis holds the per-rule results for a single listing field.
// NumberOfErrors is zero exactly when every populated rule has StatusSuccess.
type FieldAnalysis struct {
	CharLim           *CheckResult `json:"charLim,omitempty"`
	RestrictedWords   *CheckResult `json:"restrictedWords,omitempty"`
	SpecialCharacters *CheckResult `json:"specialCharacters,omitempty"`
	DuplicateWords    *CheckResult `json:"duplicateWords,omitempty"`
	NumberOfErrors    int          `json:"numberOfErrors"`
}

// Results returns the populated rule results keyed by rule name, in a fixed order.
// Used by callers that need to enumerate failures without caring which rule fired.
func (fa *FieldAnalysis) Results() []NamedResult {
	var out []NamedResult
	if fa.CharLim != nil {
		out = append(out, NamedResult{Rule: RuleCharLim, Result: fa.CharLim})
	}
	if fa.RestrictedWords != nil {
		out = append(out, NamedResult{Rule: RuleRestrictedWords, Result: fa.RestrictedWords})
	}
	if fa.SpecialCharacters != nil {
		out = append(out, NamedResult{Rule: RuleSpecialCharacters, Result: fa.SpecialCharacters})
	}
	if fa.DuplicateWords != nil {
		out = append(out, NamedResult{Rule: RuleDuplicateWords, Result: fa.DuplicateWords})
	}
	return out
}

// NamedResult pairs a rule name with its result for enumeration.
type NamedResult struct {
	Rule   string
	Result *CheckResult
}

// ListingAnalysis aggregates the per-field analyses for one listing.
// BackendKeywords is populated only when keywords were supplied; it is
// computed independently on demand. Created fresh per request and never
// mutated after construction.
type ListingAnalysis struct {
	Title           *FieldAnalysis `json:"title,omitempty"`
	BulletPoints    *FieldAnalysis `json:"bulletPoints,omitempty"`
	Description     *FieldAnalysis `json:"description,omitempty"`
	BackendKeywords *FieldAnalysis `json:"backendKeywords,omitempty"`
	TotalErrors     int            `json:"totalErrors"`
}

// ListingFields holds the raw listing text supplied by a caller.
// BackendKeywords is a pointer so a missing value can be distinguished
// from an empty string; the rule engine fails fast on nil.
type ListingFields struct {
	Title           string   `json:"title"`
	BulletPoints    []string `json:"bulletPoints"`
	Description     []string `json:"description"`
	BackendKeywords *string  `json:"backendKeywords,omitempty"`
}
