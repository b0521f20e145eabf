package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sellerdesk/listing-copilot/internal/assistant"
	"github.com/sellerdesk/listing-copilot/internal/dashboard"
	"github.com/sellerdesk/listing-copilot/internal/llm"
	"github.com/sellerdesk/listing-copilot/internal/observability"
	"github.com/sellerdesk/listing-copilot/internal/types"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Ask the assistant a question about dashboard metrics",
	Long:  "Ask the LLM assistant a question about a seller dashboard. The dashboard aggregate is read from a JSON file, condensed into a bounded metrics context, and sent to the model along with optional conversation history.",
	RunE:  runAsk,
}

var (
	askQuestion      string
	askDashboardFile string
	askHistoryFile   string
	askCogsFile      string
	askTier          string
	askAPIKey        string
	askVerbose       bool
	askOutputFile    string
)

func init() {
	askCmd.Flags().StringVarP(&askQuestion, "question", "q", "", "Question to ask (required)")
	askCmd.Flags().StringVar(&askDashboardFile, "dashboard", "", "Path to a dashboard aggregate JSON file (required)")
	askCmd.Flags().StringVar(&askHistoryFile, "history", "", "Path to a JSON file with prior chat messages")
	askCmd.Flags().StringVar(&askCogsFile, "cogs", "", "Path to a JSON file mapping ASIN to per-unit cost of goods")
	askCmd.Flags().StringVar(&askTier, "tier", "standard", "Model tier: lite, standard, or advanced")
	askCmd.Flags().StringVar(&askAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	askCmd.Flags().BoolVarP(&askVerbose, "verbose", "v", false, "Print the metrics context and chart details")
	askCmd.Flags().StringVarP(&askOutputFile, "out", "o", "", "Write the response JSON to a file instead of stdout")

	_ = askCmd.MarkFlagRequired("question")
	_ = askCmd.MarkFlagRequired("dashboard")

	rootCmd.AddCommand(askCmd)
}

func runAsk(_ *cobra.Command, _ []string) error {
	apiKey := askAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	tier := llm.ModelTier(askTier)
	switch tier {
	case llm.TierLite, llm.TierStandard, llm.TierAdvanced:
	default:
		return fmt.Errorf("invalid tier %q: must be lite, standard, or advanced", askTier)
	}

	var data types.DashboardData
	if err := readJSONFile(askDashboardFile, &data); err != nil {
		return fmt.Errorf("failed to load dashboard: %w", err)
	}

	var history []types.ChatMessage
	if askHistoryFile != "" {
		if err := readJSONFile(askHistoryFile, &history); err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
	}

	var cogs map[string]float64
	if askCogsFile != "" {
		if err := readJSONFile(askCogsFile, &cogs); err != nil {
			return fmt.Errorf("failed to load cogs: %w", err)
		}
	}

	ctx := context.Background()

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	printer := observability.NewPrinter(os.Stderr)
	if askVerbose {
		printer.PrintMetricsContext(dashboard.BuildContext(&data, cogs))
	}

	service := assistant.NewService(client).WithTier(tier)
	resp, err := service.Ask(ctx, askQuestion, &data, cogs, history)
	if err != nil {
		return err
	}

	if askVerbose {
		printer.PrintChartSuggestions(resp.ChartSuggestions)
	}

	jsonBytes, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if askOutputFile != "" {
		if err := os.WriteFile(askOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", askOutputFile)
		return nil
	}

	_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}

// readJSONFile reads and unmarshals a JSON file into out.
func readJSONFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
