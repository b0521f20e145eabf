package assistant

import (
	"context"

	"github.com/sellerdesk/listing-copilot/internal/charts"
	"github.com/sellerdesk/listing-copilot/internal/dashboard"
	"github.com/sellerdesk/listing-copilot/internal/llm"
	"github.com/sellerdesk/listing-copilot/internal/types"
	"github.com/sellerdesk/listing-copilot/internal/validation"
)

// Service runs the full assistant pipeline: build the metrics context, invoke
// the model once, gate any suggested listing content through the compliance
// rules, and bind chart data. Stateless; safe for concurrent use. Two calls
// for the same user are fully independent, with no cache or de-duplication.
type Service struct {
	orch *Orchestrator
}

// NewService creates the assistant pipeline on top of an LLM client.
func NewService(client llm.Client) *Service {
	return &Service{orch: NewOrchestrator(client)}
}

// WithTier returns a service targeting a different model tier.
func (s *Service) WithTier(tier llm.ModelTier) *Service {
	return &Service{orch: s.orch.WithTier(tier)}
}

// Ask answers a seller question from the raw dashboard aggregate. cogs maps
// ASIN to per-unit cost of goods; absent entries default to 0. The only error
// ever returned is *ServiceUnavailableError; everything else degrades to a
// usable response.
func (s *Service) Ask(ctx context.Context, question string, data *types.DashboardData, cogs map[string]float64, history []types.ChatMessage) (*types.AssistantResponse, error) {
	metricsCtx := dashboard.BuildContext(data, cogs)

	resp, err := s.orch.GenerateResponse(ctx, question, metricsCtx, history)
	if err != nil {
		return nil, err
	}

	validation.ValidateSuggestions(resp)
	charts.BindChartData(question, resp, data)
	return resp, nil
}
