package dashboard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerdesk/listing-copilot/internal/types"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestBuildContextSummaryFormulas(t *testing.T) {
	data := &types.DashboardData{
		Brand:     "Acme",
		Country:   "US",
		StartDate: "2026-07-01",
		EndDate:   "2026-07-31",
		Sales:     &types.SalesSummary{TotalSales: 1000, GrossProfit: 300},
		PPCSummary: &types.PPCSummary{
			Spend: floatPtr(50),
			Sales: 200,
		},
	}

	ctx := BuildContext(data, nil)

	require.NotNil(t, ctx.Summary.PPCSpend)
	assert.Equal(t, 50.0, *ctx.Summary.PPCSpend)
	assert.Equal(t, 250.0, ctx.Summary.GrossProfit, "displayed gross profit subtracts ad spend")
	assert.Equal(t, 25.0, ctx.Profitability.ProfitMargin)
	assert.Equal(t, "2026-07-01 to 2026-07-31", ctx.Summary.DateRange)
}

func TestBuildContextPPCSpendFallbackChain(t *testing.T) {
	tests := []struct {
		name     string
		data     *types.DashboardData
		expected *float64
	}{
		{
			name: "ppc summary preferred",
			data: &types.DashboardData{
				PPCSummary: &types.PPCSummary{Spend: floatPtr(10)},
				Ads:        &types.AdsSummary{Spend: floatPtr(99)},
			},
			expected: floatPtr(10),
		},
		{
			name: "legacy ads spend fallback",
			data: &types.DashboardData{
				Ads: &types.AdsSummary{Spend: floatPtr(99)},
			},
			expected: floatPtr(99),
		},
		{
			name:     "neither present yields null",
			data:     &types.DashboardData{},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := BuildContext(tt.data, nil)
			if tt.expected == nil {
				assert.Nil(t, ctx.Summary.PPCSpend)
			} else {
				require.NotNil(t, ctx.Summary.PPCSpend)
				assert.Equal(t, *tt.expected, *ctx.Summary.PPCSpend)
			}
		})
	}
}

func TestBuildContextACOSAndTACOS(t *testing.T) {
	t.Run("summary acos wins over computed", func(t *testing.T) {
		data := &types.DashboardData{
			PPCSummary: &types.PPCSummary{Spend: floatPtr(50), Sales: 200, ACOS: floatPtr(33.3)},
		}
		ctx := BuildContext(data, nil)
		require.NotNil(t, ctx.Ads.ACOS)
		assert.Equal(t, 33.3, *ctx.Ads.ACOS)
	})

	t.Run("acos computed when both positive", func(t *testing.T) {
		data := &types.DashboardData{
			PPCSummary: &types.PPCSummary{Spend: floatPtr(50), Sales: 200},
		}
		ctx := BuildContext(data, nil)
		require.NotNil(t, ctx.Ads.ACOS)
		assert.Equal(t, 25.0, *ctx.Ads.ACOS)
	})

	t.Run("acos stays null for zero spend", func(t *testing.T) {
		data := &types.DashboardData{
			PPCSummary: &types.PPCSummary{Spend: floatPtr(0), Sales: 0},
		}
		ctx := BuildContext(data, nil)
		assert.Nil(t, ctx.Ads.ACOS, "never computed as 0/0")
	})

	t.Run("legacy tacos wins over computed", func(t *testing.T) {
		data := &types.DashboardData{
			Sales: &types.SalesSummary{TotalSales: 1000},
			Ads:   &types.AdsSummary{Spend: floatPtr(50), TACOS: floatPtr(7.5)},
		}
		ctx := BuildContext(data, nil)
		require.NotNil(t, ctx.Ads.TACOS)
		assert.Equal(t, 7.5, *ctx.Ads.TACOS)
	})

	t.Run("tacos computed when both positive", func(t *testing.T) {
		data := &types.DashboardData{
			Sales: &types.SalesSummary{TotalSales: 1000},
			Ads:   &types.AdsSummary{Spend: floatPtr(50)},
		}
		ctx := BuildContext(data, nil)
		require.NotNil(t, ctx.Ads.TACOS)
		assert.Equal(t, 5.0, *ctx.Ads.TACOS)
	})
}

func TestBuildContextZeroSalesMargin(t *testing.T) {
	data := &types.DashboardData{
		Sales: &types.SalesSummary{TotalSales: 0, GrossProfit: 100},
	}
	ctx := BuildContext(data, nil)
	assert.Equal(t, 0.0, ctx.Profitability.ProfitMargin, "no division by zero")
}

func TestBuildContextProfitabilityLists(t *testing.T) {
	var rows []types.AsinMetrics
	for i := 0; i < 40; i++ {
		rows = append(rows, types.AsinMetrics{
			Asin:        fmt.Sprintf("B000%02d", i),
			Sales:       float64(1000 - i*10),
			GrossProfit: 100,
			Quantity:    10,
		})
	}
	// One clear loss maker and one low-margin ASIN at the top of the pool.
	rows[0].GrossProfit = -50
	rows[1].GrossProfit = 20 // margin 2% on 990 sales

	cogs := map[string]float64{}

	ctx := BuildContext(&types.DashboardData{Profitability: rows}, cogs)

	assert.Len(t, ctx.Profitability.TopAsins, 25, "pool capped at 25 sorted by sales")
	assert.Equal(t, "B00000", ctx.Profitability.TopAsins[0].Asin)

	require.NotEmpty(t, ctx.Profitability.LossMakingAsins)
	assert.Equal(t, "B00000", ctx.Profitability.LossMakingAsins[0].Asin)

	require.NotEmpty(t, ctx.Profitability.LowMarginAsins)
	assert.Equal(t, "B00001", ctx.Profitability.LowMarginAsins[0].Asin)
}

func TestBuildContextCogsOverrides(t *testing.T) {
	rows := []types.AsinMetrics{
		{Asin: "B001", Sales: 500, GrossProfit: 100, Quantity: 20},
	}
	cogs := map[string]float64{"B001": 3} // 3 * 20 = 60 cost of goods

	ctx := BuildContext(&types.DashboardData{Profitability: rows}, cogs)

	require.Len(t, ctx.Profitability.TopAsins, 1)
	entry := ctx.Profitability.TopAsins[0]
	assert.Equal(t, 40.0, entry.NetProfit)
	assert.Equal(t, 8.0, entry.NetProfitMargin)
	assert.Len(t, ctx.Profitability.LowMarginAsins, 1, "margin of 8 is below the low-margin threshold")
}

func TestBuildContextWastedSpend(t *testing.T) {
	var rows []types.KeywordMetrics
	for i := 0; i < 15; i++ {
		rows = append(rows, types.KeywordMetrics{
			Keyword:            fmt.Sprintf("kw%d", i),
			Cost:               float64(i + 1),
			AttributedSales30d: 0,
		})
	}
	// Rows with sales or zero cost must not count as wasted.
	rows = append(rows,
		types.KeywordMetrics{Keyword: "converting", Cost: 100, AttributedSales30d: 50},
		types.KeywordMetrics{Keyword: "free", Cost: 0, AttributedSales30d: 0},
	)

	ctx := BuildContext(&types.DashboardData{KeywordPerformance: rows}, nil)

	assert.Equal(t, 15, ctx.Ads.WastedKeywordsCount)
	assert.Equal(t, 120.0, ctx.Ads.WastedSpend) // 1+2+...+15
	require.Len(t, ctx.Ads.TopWastedKeywords, 10)
	assert.Equal(t, "kw14", ctx.Ads.TopWastedKeywords[0].Keyword, "top by cost descending")
}

func TestBuildContextIssues(t *testing.T) {
	data := &types.DashboardData{
		Issues: &types.IssueCounters{
			Profitability: 1,
			Ads:           2,
			Inventory:     3,
			Ranking:       4,
			Conversion:    5,
			AccountHealth: 6,
			ErrorAsins: []types.AsinIssue{
				{Asin: "B001", Category: "ads", Errors: 2},
				{Asin: "B002", Category: "inventory", Errors: 9},
			},
		},
	}

	ctx := BuildContext(data, nil)

	assert.Equal(t, 21, ctx.Issues.Total, "sum of the six tracked counters")
	assert.Equal(t, 2, ctx.Issues.ByCategory["ads"])
	require.Len(t, ctx.Issues.TopErrorAsins, 2)
	assert.Equal(t, "B002", ctx.Issues.TopErrorAsins[0].Asin, "sorted by error count")
}

func TestBuildContextTolerateNil(t *testing.T) {
	assert.NotPanics(t, func() {
		ctx := BuildContext(nil, nil)
		assert.Nil(t, ctx.Summary.PPCSpend)
		assert.Equal(t, 0, ctx.Issues.Total)
		assert.Empty(t, ctx.Profitability.TopAsins)
	})
}

func TestBuildContextDatewiseCaps(t *testing.T) {
	var ads []types.AdPoint
	for i := 0; i < 45; i++ {
		ads = append(ads, types.AdPoint{Date: fmt.Sprintf("2026-07-%02d", i+1)})
	}
	var campaigns []types.Campaign
	for i := 0; i < 60; i++ {
		campaigns = append(campaigns, types.Campaign{Name: fmt.Sprintf("c%d", i)})
	}

	ctx := BuildContext(&types.DashboardData{AdsDatewise: ads, Campaigns: campaigns}, nil)

	assert.Len(t, ctx.Ads.Datewise, 30)
	assert.Equal(t, "2026-07-01", ctx.Ads.Datewise[0].Date, "keeps the first N")
	assert.Len(t, ctx.Ads.Campaigns, 50)
}
