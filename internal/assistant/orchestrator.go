// Package assistant orchestrates the single LLM round trip that answers a
// seller's question: it composes the system prompt, trims conversation
// history, serializes the metrics context, and defensively parses whatever
// the model returns. The contract with callers is "always return something
// sensible": only a transport failure surfaces as an error.
package assistant

import (
	"context"
	"log"

	"github.com/sellerdesk/listing-copilot/internal/llm"
	"github.com/sellerdesk/listing-copilot/internal/types"
)

// History bounds keep the request size predictable regardless of how long
// the conversation has been running.
const (
	maxHistoryEntries      = 6
	maxHistoryContentChars = 2000
)

// Orchestrator builds and executes assistant requests against an LLM client.
type Orchestrator struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewOrchestrator creates an orchestrator using the standard model tier.
func NewOrchestrator(client llm.Client) *Orchestrator {
	return &Orchestrator{client: client, tier: llm.TierStandard}
}

// WithTier returns an orchestrator targeting a different model tier.
func (o *Orchestrator) WithTier(tier llm.ModelTier) *Orchestrator {
	return &Orchestrator{client: o.client, tier: tier}
}

// GenerateResponse performs exactly one round trip to the model and returns a
// parsed, sanitized response. A transport failure returns a
// *ServiceUnavailableError; malformed model output never does, it degrades to
// the fallback response instead.
func (o *Orchestrator) GenerateResponse(ctx context.Context, question string, metricsCtx *types.MetricsContext, history []types.ChatMessage) (*types.AssistantResponse, error) {
	userTurn, err := buildUserTurn(question, metricsCtx)
	if err != nil {
		// Marshal failure on our own structs means a programming error,
		// but the caller still gets the fixed unavailable contract.
		return nil, &ServiceUnavailableError{Cause: err}
	}

	messages := append(trimHistory(history), llm.Message{
		Role:    types.RoleUser,
		Content: userTurn,
	})

	raw, err := o.client.GenerateJSON(ctx, buildSystemPrompt(), messages, o.tier)
	if err != nil {
		log.Printf("[ASSISTANT] llm call failed: %v", err)
		return nil, &ServiceUnavailableError{Cause: err}
	}

	resp := ParseResponse(raw)
	resp.AnswerMarkdown = SanitizeAnswer(resp.AnswerMarkdown)
	return resp, nil
}

// trimHistory keeps the most recent entries, truncates oversized content, and
// coerces unknown roles to user so a corrupted history row cannot break the
// provider request.
func trimHistory(history []types.ChatMessage) []llm.Message {
	if len(history) > maxHistoryEntries {
		history = history[len(history)-maxHistoryEntries:]
	}

	out := make([]llm.Message, 0, len(history))
	for _, msg := range history {
		role := msg.Role
		if role != types.RoleUser && role != types.RoleAssistant {
			role = types.RoleUser
		}
		content := msg.Content
		if len(content) > maxHistoryContentChars {
			content = content[:maxHistoryContentChars]
		}
		out = append(out, llm.Message{Role: role, Content: content})
	}
	return out
}
