package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	t.Run("complete document", func(t *testing.T) {
		raw := `{
			"answer_markdown": "Here is my analysis.",
			"chart_suggestions": [{"id": "c1", "title": "Spend", "type": "line", "dataSource": "ppc_datewise", "xField": "date", "yFields": [{"field": "spend", "label": "Spend"}]}],
			"follow_up_questions": ["What about last week?"],
			"suggested_title": "New title",
			"suggested_bullet_points": ["bullet one", "bullet two"],
			"suggested_backend_keywords": "kw1 kw2"
		}`
		resp := ParseResponse(raw)
		assert.Equal(t, "Here is my analysis.", resp.AnswerMarkdown)
		require.Len(t, resp.ChartSuggestions, 1)
		assert.Equal(t, "ppc_datewise", resp.ChartSuggestions[0].DataSource)
		assert.Equal(t, []string{"What about last week?"}, resp.FollowUpQuestions)
		assert.Equal(t, "New title", resp.SuggestedTitle)
		assert.Equal(t, []string{"bullet one", "bullet two"}, resp.SuggestedBulletPoints)
		assert.Equal(t, "kw1 kw2", resp.SuggestedBackendKeywords)
	})

	t.Run("markdown-fenced json still parses", func(t *testing.T) {
		raw := "```json\n{\"answer_markdown\": \"fenced\"}\n```"
		resp := ParseResponse(raw)
		assert.Equal(t, "fenced", resp.AnswerMarkdown)
	})

	t.Run("non-json falls back", func(t *testing.T) {
		resp := ParseResponse("Sorry, something went wrong on my end.")
		assert.Equal(t, fallbackAnswer, resp.AnswerMarkdown)
		assert.Empty(t, resp.ChartSuggestions)
		assert.Empty(t, resp.FollowUpQuestions)
	})

	t.Run("empty input falls back", func(t *testing.T) {
		resp := ParseResponse("")
		assert.Equal(t, fallbackAnswer, resp.AnswerMarkdown)
	})

	t.Run("unknown fields ignored", func(t *testing.T) {
		raw := `{"answer_markdown": "ok", "confidence": 0.9, "reasoning": "because"}`
		resp := ParseResponse(raw)
		assert.Equal(t, "ok", resp.AnswerMarkdown)
	})

	t.Run("wrong-typed collections coerced to empty arrays", func(t *testing.T) {
		raw := `{"answer_markdown": "ok", "chart_suggestions": "none", "follow_up_questions": {"a": 1}}`
		resp := ParseResponse(raw)
		assert.NotNil(t, resp.ChartSuggestions)
		assert.Empty(t, resp.ChartSuggestions)
		assert.NotNil(t, resp.FollowUpQuestions)
		assert.Empty(t, resp.FollowUpQuestions)
	})

	t.Run("non-string bullet entries dropped", func(t *testing.T) {
		raw := `{"answer_markdown": "ok", "suggested_bullet_points": ["keep", 42, null, "also keep", {"x": 1}]}`
		resp := ParseResponse(raw)
		assert.Equal(t, []string{"keep", "also keep"}, resp.SuggestedBulletPoints)
	})

	t.Run("wrong-typed answer defaults then sanitizer substitutes", func(t *testing.T) {
		raw := `{"answer_markdown": 12345}`
		resp := ParseResponse(raw)
		assert.Equal(t, "", resp.AnswerMarkdown)
		assert.Equal(t, fallbackAnswer, SanitizeAnswer(resp.AnswerMarkdown))
	})

	t.Run("never panics on adversarial input", func(t *testing.T) {
		inputs := []string{"null", "true", `"just a string"`, "[]", "{", "}{", "\x00"}
		for _, input := range inputs {
			assert.NotPanics(t, func() {
				resp := ParseResponse(input)
				require.NotNil(t, resp)
			})
		}
	})
}

func TestParseResponseIsDeterministic(t *testing.T) {
	raw := `{"answer_markdown": "same", "follow_up_questions": ["a", "b"]}`
	assert.Equal(t, ParseResponse(raw), ParseResponse(raw))
}
