// Package validation gates AI-suggested listing content through the same
// deterministic compliance rules used for standalone pre-submission checks.
// Both call sites import the identical functions from internal/compliance, so
// the rule list and thresholds can never fork between them.
package validation

import (
	"fmt"
	"strings"

	"github.com/sellerdesk/listing-copilot/internal/compliance"
	"github.com/sellerdesk/listing-copilot/internal/types"
)

// ValidateSuggestions re-runs every suggestion field present in the response
// through the compliance rule engine and appends a pass/fail note per field
// to the answer, in field order: title, bullet points, backend keywords.
// Notes are always appended; the model's original answer is never replaced.
// A failing suggestion is expected, reportable information, not an error.
func ValidateSuggestions(resp *types.AssistantResponse) {
	if resp == nil {
		return
	}

	if strings.TrimSpace(resp.SuggestedTitle) != "" {
		fa := compliance.CheckTitle(resp.SuggestedTitle)
		appendNote(resp, "suggested title", fa)
	}

	if bullets := stringEntries(resp.SuggestedBulletPoints); len(bullets) > 0 {
		fa := compliance.CheckBulletPoints(bullets)
		appendNote(resp, "suggested bullet points", fa)
	}

	if strings.TrimSpace(resp.SuggestedBackendKeywords) != "" {
		keywords := resp.SuggestedBackendKeywords
		fa := compliance.CheckBackendKeywords(&keywords)
		appendNote(resp, "suggested backend keywords", fa)
	}
}

// appendNote adds a validation sentence for one suggestion field to the
// answer markdown.
func appendNote(resp *types.AssistantResponse, label string, fa *types.FieldAnalysis) {
	var note string
	if fa.NumberOfErrors == 0 {
		note = fmt.Sprintf("✅ The %s passes all compliance checks and is safe to use.", label)
	} else {
		note = fmt.Sprintf("⚠️ The %s does not pass compliance checks: %s Please revise before using it.",
			label, strings.Join(failureMessages(fa), " "))
	}

	if resp.AnswerMarkdown == "" {
		resp.AnswerMarkdown = note
		return
	}
	resp.AnswerMarkdown += "\n\n" + note
}

// failureMessages collects the messages of every failing rule, in the rule
// engine's fixed rule order.
func failureMessages(fa *types.FieldAnalysis) []string {
	var out []string
	for _, nr := range fa.Results() {
		if nr.Result.Status == types.StatusError {
			out = append(out, nr.Result.Message)
		}
	}
	return out
}

// stringEntries filters a suggestion list to non-empty string entries. The
// parser already dropped non-string values; this drops blanks.
func stringEntries(values []string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
