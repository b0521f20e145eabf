//nolint:revive // types is a standard Go package name pattern
package types

// Chat roles accepted from the history collaborator. Anything else is
// coerced to RoleUser before the request is built.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of prior conversation history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Allowed chart data sources. Any other value passes through unbound.
const (
	DataSourcePPCDatewise   = "ppc_datewise"
	DataSourceSalesDatewise = "sales_datewise"
)

// YField names one plotted series of a chart suggestion.
type YField struct {
	Field string `json:"field"`
	Label string `json:"label"`
}

// ChartSuggestion is one chart proposed by the assistant. Data is attached by
// the chart binder for recognized data sources; its absence suppresses the
// chart client-side.
type ChartSuggestion struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Type        string           `json:"type"`
	DataSource  string           `json:"dataSource"`
	XField      string           `json:"xField"`
	YFields     []YField         `json:"yFields"`
	Description string           `json:"description,omitempty"`
	Data        []map[string]any `json:"data,omitempty"`
}

// AssistantResponse is the trusted shape parsed from the model's raw output.
// Unknown fields are ignored; missing required fields are defaulted.
type AssistantResponse struct {
	AnswerMarkdown           string            `json:"answer_markdown"`
	ChartSuggestions         []ChartSuggestion `json:"chart_suggestions"`
	FollowUpQuestions        []string          `json:"follow_up_questions"`
	SuggestedTitle           string            `json:"suggested_title,omitempty"`
	SuggestedBulletPoints    []string          `json:"suggested_bullet_points,omitempty"`
	SuggestedBackendKeywords string            `json:"suggested_backend_keywords,omitempty"`
}
