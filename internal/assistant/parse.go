package assistant

import (
	"encoding/json"
	"log"

	"github.com/sellerdesk/listing-copilot/internal/llm"
	"github.com/sellerdesk/listing-copilot/internal/schemas"
	"github.com/sellerdesk/listing-copilot/internal/types"
)

// fallbackAnswer is returned when the model's output cannot be parsed or
// sanitizes down to nothing.
const fallbackAnswer = "I'm sorry, I wasn't able to put together a proper answer this time. Please try asking again or rephrase your question."

// rawResponse decodes each field independently so one malformed field cannot
// take down the rest of the document.
type rawResponse struct {
	AnswerMarkdown           json.RawMessage `json:"answer_markdown"`
	ChartSuggestions         json.RawMessage `json:"chart_suggestions"`
	FollowUpQuestions        json.RawMessage `json:"follow_up_questions"`
	SuggestedTitle           json.RawMessage `json:"suggested_title"`
	SuggestedBulletPoints    json.RawMessage `json:"suggested_bullet_points"`
	SuggestedBackendKeywords json.RawMessage `json:"suggested_backend_keywords"`
}

// ParseResponse turns raw model output into a trusted AssistantResponse. It
// never fails: non-JSON input yields the fallback response, fields of the
// wrong type are defaulted, and unknown fields are ignored. Schema violations
// are logged for diagnostics but do not reject the document.
func ParseResponse(raw string) *types.AssistantResponse {
	cleaned := llm.CleanJSONBlock(raw)
	if cleaned == "" {
		return FallbackResponse()
	}

	if err := schemas.ValidateAssistantResponse(cleaned); err != nil {
		log.Printf("[ASSISTANT] response shape: %v", err)
	}

	var parsed rawResponse
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		log.Printf("[ASSISTANT] unparseable model output (%d bytes): %v", len(raw), err)
		return FallbackResponse()
	}

	bullets := coerceStringSlice(parsed.SuggestedBulletPoints)
	if len(bullets) == 0 {
		bullets = nil
	}

	return &types.AssistantResponse{
		AnswerMarkdown:           coerceString(parsed.AnswerMarkdown),
		ChartSuggestions:         coerceCharts(parsed.ChartSuggestions),
		FollowUpQuestions:        coerceStringSlice(parsed.FollowUpQuestions),
		SuggestedTitle:           coerceString(parsed.SuggestedTitle),
		SuggestedBulletPoints:    bullets,
		SuggestedBackendKeywords: coerceString(parsed.SuggestedBackendKeywords),
	}
}

// FallbackResponse is the safe substitute for unusable model output: an
// apologetic answer with empty (never nil) collections.
func FallbackResponse() *types.AssistantResponse {
	return &types.AssistantResponse{
		AnswerMarkdown:    fallbackAnswer,
		ChartSuggestions:  []types.ChartSuggestion{},
		FollowUpQuestions: []string{},
	}
}

func coerceString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// coerceStringSlice accepts an array and keeps only its string entries.
// Anything that is not an array yields an empty slice.
func coerceStringSlice(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func coerceCharts(raw json.RawMessage) []types.ChartSuggestion {
	if len(raw) == 0 {
		return []types.ChartSuggestion{}
	}
	var charts []types.ChartSuggestion
	if err := json.Unmarshal(raw, &charts); err != nil {
		return []types.ChartSuggestion{}
	}
	if charts == nil {
		return []types.ChartSuggestion{}
	}
	return charts
}
