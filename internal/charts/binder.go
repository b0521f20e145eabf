// Package charts binds assistant chart suggestions to bounded slices of the
// dashboard's time-series data. Only allow-listed data sources receive data;
// anything else passes through untouched and is suppressed client-side by the
// absence of data.
package charts

import (
	"regexp"

	"github.com/google/uuid"

	"github.com/sellerdesk/listing-copilot/internal/types"
)

// Window lengths in data points. The short window applies when the question
// reads like a weekly one.
const (
	shortWindow = 7
	longWindow  = 30
)

var (
	weeklyPattern = regexp.MustCompile(`(?i)\b(last\s+7\s+days?|past\s+7\s+days?|past\s+week|last\s+week|this\s+week|weekly)\b`)
	profitPattern = regexp.MustCompile(`(?i)\b(profit|profits|profitability|margin|margins)\b`)
)

// BindChartData attaches data to every recognized chart suggestion in the
// response. The model is instructed to propose at most 2 charts, but every
// suggestion present is processed independently so an overlong list cannot
// fail the request.
func BindChartData(question string, resp *types.AssistantResponse, data *types.DashboardData) {
	if resp == nil || len(resp.ChartSuggestions) == 0 {
		return
	}
	if data == nil {
		data = &types.DashboardData{}
	}

	window := longWindow
	if weeklyPattern.MatchString(question) {
		window = shortWindow
	}

	for i := range resp.ChartSuggestions {
		suggestion := &resp.ChartSuggestions[i]
		if suggestion.ID == "" {
			suggestion.ID = uuid.NewString()
		}

		switch suggestion.DataSource {
		case types.DataSourcePPCDatewise:
			bindPPCDatewise(suggestion, data.AdsDatewise, window)
		case types.DataSourceSalesDatewise:
			bindSalesDatewise(suggestion, data.SalesDatewise, window, profitPattern.MatchString(question))
		default:
			// Unrecognized source: leave the suggestion unbound.
		}
	}
}

func bindPPCDatewise(suggestion *types.ChartSuggestion, series []types.AdPoint, window int) {
	if suggestion.XField == "" {
		suggestion.XField = "date"
	}
	if len(suggestion.YFields) == 0 {
		suggestion.YFields = []types.YField{
			{Field: "spend", Label: "Ad Spend"},
			{Field: "sales", Label: "Ad Sales"},
		}
	}

	points := lastN(series, window)
	rows := make([]map[string]any, 0, len(points))
	for _, p := range points {
		rows = append(rows, map[string]any{
			"date":        p.Date,
			"spend":       p.Spend,
			"sales":       p.Sales,
			"clicks":      p.Clicks,
			"impressions": p.Impressions,
			"orders":      p.Orders,
		})
	}
	suggestion.Data = rows
}

func bindSalesDatewise(suggestion *types.ChartSuggestion, series []types.SalesPoint, window int, aboutProfit bool) {
	if suggestion.XField == "" {
		suggestion.XField = "date"
	}
	if len(suggestion.YFields) == 0 {
		suggestion.YFields = []types.YField{{Field: "sales", Label: "Sales"}}
		if aboutProfit {
			suggestion.YFields = append(suggestion.YFields, types.YField{Field: "profit", Label: "Profit"})
		}
	}

	points := lastN(series, window)
	rows := make([]map[string]any, 0, len(points))
	for _, p := range points {
		rows = append(rows, map[string]any{
			"date":   p.Date,
			"sales":  p.Sales,
			"profit": p.Profit,
			"orders": p.Orders,
		})
	}
	suggestion.Data = rows
}

// lastN returns the trailing n entries of the series.
func lastN[T any](series []T, n int) []T {
	if len(series) > n {
		return series[len(series)-n:]
	}
	return series
}
