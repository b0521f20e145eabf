// Package dashboard builds the compact metrics context handed to the
// assistant. The derived-metric formulas here are the same ones the dashboard
// UI uses, so the assistant's numbers never disagree with what the user
// already sees on screen.
package dashboard

import (
	"fmt"
	"sort"

	"github.com/sellerdesk/listing-copilot/internal/types"
)

// List caps bound the context size sent to the model. Truncation always keeps
// the first N entries after sorting, never a random sample.
const (
	maxTopAsins        = 25
	maxLowMarginAsins  = 15
	maxLossMakingAsins = 15
	maxErrorAsins      = 30
	maxCampaigns       = 50
	maxWastedKeywords  = 10
	maxDatewisePoints  = 30
)

// lowMarginThreshold is the net-profit-margin percentage below which an ASIN
// with non-negative profit counts as low margin.
const lowMarginThreshold = 10.0

// BuildContext reduces the raw dashboard aggregate into a MetricsContext.
// cogs maps ASIN to per-unit cost of goods; absent entries default to 0.
// Missing sub-objects of data default to null/0/empty rather than failing.
func BuildContext(data *types.DashboardData, cogs map[string]float64) *types.MetricsContext {
	if data == nil {
		data = &types.DashboardData{}
	}

	ppcSpend := resolvePPCSpend(data)
	totalSales := 0.0
	backendGrossProfit := 0.0
	if data.Sales != nil {
		totalSales = data.Sales.TotalSales
		backendGrossProfit = data.Sales.GrossProfit
	}

	// Ad spend is subtracted at the presentation layer; the backend gross
	// profit figure does not include it.
	grossProfit := backendGrossProfit
	if ppcSpend != nil {
		grossProfit -= *ppcSpend
	}

	ctx := &types.MetricsContext{
		Summary: types.ContextSummary{
			Brand:         data.Brand,
			Country:       data.Country,
			DateRange:     formatDateRange(data.StartDate, data.EndDate),
			TotalSales:    totalSales,
			GrossProfit:   grossProfit,
			PPCSpend:      ppcSpend,
			AccountHealth: data.AccountHealth,
		},
		Profitability: buildProfitability(data, cogs, grossProfit, totalSales),
		Ads:           buildAds(data, ppcSpend, totalSales),
		Issues:        buildIssues(data),
	}
	return ctx
}

// resolvePPCSpend prefers the PPC-summary total spend, falls back to the
// legacy ads-spend field, and returns nil when neither is present.
func resolvePPCSpend(data *types.DashboardData) *float64 {
	if data.PPCSummary != nil && data.PPCSummary.Spend != nil {
		v := *data.PPCSummary.Spend
		return &v
	}
	if data.Ads != nil && data.Ads.Spend != nil {
		v := *data.Ads.Spend
		return &v
	}
	return nil
}

func buildProfitability(data *types.DashboardData, cogs map[string]float64, grossProfit, totalSales float64) types.ContextProfitability {
	out := types.ContextProfitability{
		ProfitMargin:    safeMarginPercent(grossProfit, totalSales),
		TopAsins:        []types.AsinProfit{},
		LowMarginAsins:  []types.AsinProfit{},
		LossMakingAsins: []types.AsinProfit{},
	}

	rows := make([]types.AsinMetrics, len(data.Profitability))
	copy(rows, data.Profitability)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Sales > rows[j].Sales })
	if len(rows) > maxTopAsins {
		rows = rows[:maxTopAsins]
	}

	for _, row := range rows {
		netProfit := row.GrossProfit - cogs[row.Asin]*float64(row.Quantity)
		entry := types.AsinProfit{
			Asin:            row.Asin,
			Sales:           row.Sales,
			NetProfit:       netProfit,
			NetProfitMargin: safeMarginPercent(netProfit, row.Sales),
		}
		out.TopAsins = append(out.TopAsins, entry)

		switch {
		case entry.NetProfit < 0:
			if len(out.LossMakingAsins) < maxLossMakingAsins {
				out.LossMakingAsins = append(out.LossMakingAsins, entry)
			}
		case entry.NetProfitMargin < lowMarginThreshold:
			if len(out.LowMarginAsins) < maxLowMarginAsins {
				out.LowMarginAsins = append(out.LowMarginAsins, entry)
			}
		}
	}

	return out
}

func buildAds(data *types.DashboardData, ppcSpend *float64, totalSales float64) types.ContextAds {
	out := types.ContextAds{
		Spend:             ppcSpend,
		TopWastedKeywords: []types.WastedKeyword{},
		Datewise:          []types.AdPoint{},
		Campaigns:         []types.Campaign{},
	}

	ppcSales := 0.0
	if data.PPCSummary != nil {
		ppcSales = data.PPCSummary.Sales
	} else if data.Ads != nil {
		ppcSales = data.Ads.Sales
	}
	out.Sales = ppcSales

	out.ACOS = resolveACOS(data, ppcSpend, ppcSales)
	out.TACOS = resolveTACOS(data, ppcSpend, totalSales)

	wasted := wastedRows(data.KeywordPerformance)
	for _, row := range wasted {
		out.WastedSpend += row.Cost
	}
	out.WastedKeywordsCount = len(wasted)
	sort.SliceStable(wasted, func(i, j int) bool { return wasted[i].Cost > wasted[j].Cost })
	if len(wasted) > maxWastedKeywords {
		wasted = wasted[:maxWastedKeywords]
	}
	for _, row := range wasted {
		out.TopWastedKeywords = append(out.TopWastedKeywords, types.WastedKeyword{
			Keyword:  row.Keyword,
			Campaign: row.CampaignName,
			Cost:     row.Cost,
			Clicks:   row.Clicks,
		})
	}

	out.Datewise = append(out.Datewise, truncateAdPoints(data.AdsDatewise, maxDatewisePoints)...)
	campaigns := data.Campaigns
	if len(campaigns) > maxCampaigns {
		campaigns = campaigns[:maxCampaigns]
	}
	out.Campaigns = append(out.Campaigns, campaigns...)

	return out
}

// resolveACOS uses the PPC-summary ACOS when present, otherwise computes
// spend/sales when both are strictly positive, otherwise stays null. Never
// computed as 0/0.
func resolveACOS(data *types.DashboardData, ppcSpend *float64, ppcSales float64) *float64 {
	if data.PPCSummary != nil && data.PPCSummary.ACOS != nil {
		v := *data.PPCSummary.ACOS
		return &v
	}
	if ppcSpend != nil && *ppcSpend > 0 && ppcSales > 0 {
		v := (*ppcSpend / ppcSales) * 100
		return &v
	}
	return nil
}

// resolveTACOS uses the legacy TACOS field when present, otherwise computes
// spend/totalSales when both are strictly positive, otherwise stays null.
func resolveTACOS(data *types.DashboardData, ppcSpend *float64, totalSales float64) *float64 {
	if data.Ads != nil && data.Ads.TACOS != nil {
		v := *data.Ads.TACOS
		return &v
	}
	if ppcSpend != nil && *ppcSpend > 0 && totalSales > 0 {
		v := (*ppcSpend / totalSales) * 100
		return &v
	}
	return nil
}

func buildIssues(data *types.DashboardData) types.ContextIssues {
	out := types.ContextIssues{
		ByCategory:    map[string]int{},
		TopErrorAsins: []types.AsinIssue{},
	}
	if data.Issues == nil {
		return out
	}

	c := data.Issues
	out.ByCategory = map[string]int{
		"profitability": c.Profitability,
		"ads":           c.Ads,
		"inventory":     c.Inventory,
		"ranking":       c.Ranking,
		"conversion":    c.Conversion,
		"accountHealth": c.AccountHealth,
	}
	// Total is the sum of the six tracked counters, never recomputed from
	// the per-ASIN rows.
	out.Total = c.Profitability + c.Ads + c.Inventory + c.Ranking + c.Conversion + c.AccountHealth

	rows := make([]types.AsinIssue, len(c.ErrorAsins))
	copy(rows, c.ErrorAsins)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Errors > rows[j].Errors })
	if len(rows) > maxErrorAsins {
		rows = rows[:maxErrorAsins]
	}
	out.TopErrorAsins = append(out.TopErrorAsins, rows...)

	return out
}

// wastedRows filters keyword-performance rows to those with spend but
// negligible attributed sales.
func wastedRows(rows []types.KeywordMetrics) []types.KeywordMetrics {
	var out []types.KeywordMetrics
	for _, row := range rows {
		if row.Cost > 0 && row.AttributedSales30d < 0.01 {
			out = append(out, row)
		}
	}
	return out
}

// safeMarginPercent returns (profit/sales)*100 when sales is positive, else 0.
func safeMarginPercent(profit, sales float64) float64 {
	if sales > 0 {
		return (profit / sales) * 100
	}
	return 0
}

func truncateAdPoints(points []types.AdPoint, max int) []types.AdPoint {
	if len(points) > max {
		return points[:max]
	}
	return points
}

func formatDateRange(start, end string) string {
	if start == "" && end == "" {
		return ""
	}
	return fmt.Sprintf("%s to %s", start, end)
}
