package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sellerdesk/listing-copilot/internal/compliance"
	"github.com/sellerdesk/listing-copilot/internal/prompts"
	"github.com/sellerdesk/listing-copilot/internal/types"
)

// buildSystemPrompt renders the fixed system instruction. The compliance
// thresholds are filled from the rule engine's constants so the prose the
// model sees can never drift from what the validator enforces.
func buildSystemPrompt() string {
	template := prompts.MustGet("assistant.json", "system")
	return prompts.Format(template, map[string]string{
		"TitleMin":       fmt.Sprintf("%d", compliance.TitleMinLength),
		"BulletMin":      fmt.Sprintf("%d", compliance.BulletMinLength),
		"DescriptionMin": fmt.Sprintf("%d", compliance.DescriptionMinLength),
		"KeywordsMin":    fmt.Sprintf("%d", compliance.BackendKeywordsMinLength),
		"DataSources": strings.Join([]string{
			types.DataSourcePPCDatewise,
			types.DataSourceSalesDatewise,
		}, ", "),
	})
}

// buildUserTurn serializes the question together with the metrics context so
// the model answers from the same numbers the dashboard displays.
func buildUserTurn(question string, metricsCtx *types.MetricsContext) (string, error) {
	payload := struct {
		Question  string               `json:"question"`
		Dashboard *types.MetricsContext `json:"dashboard"`
	}{
		Question:  question,
		Dashboard: metricsCtx,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to serialize user turn: %w", err)
	}
	return string(data), nil
}
