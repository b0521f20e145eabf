package charts

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerdesk/listing-copilot/internal/types"
)

func testDashboardData(days int) *types.DashboardData {
	data := &types.DashboardData{}
	for i := 0; i < days; i++ {
		date := fmt.Sprintf("2026-06-%02d", i+1)
		data.AdsDatewise = append(data.AdsDatewise, types.AdPoint{Date: date, Spend: float64(i), Sales: float64(i * 2)})
		data.SalesDatewise = append(data.SalesDatewise, types.SalesPoint{Date: date, Sales: float64(i * 10), Profit: float64(i)})
	}
	return data
}

func suggestion(source string) types.ChartSuggestion {
	return types.ChartSuggestion{
		ID:         "c1",
		Title:      "Chart",
		Type:       "line",
		DataSource: source,
		XField:     "date",
	}
}

func TestBindChartDataWindows(t *testing.T) {
	tests := []struct {
		name       string
		question   string
		wantPoints int
	}{
		{name: "default thirty-day window", question: "How is my ad spend trending?", wantPoints: 30},
		{name: "last 7 days", question: "Show spend for the last 7 days", wantPoints: 7},
		{name: "past week", question: "What happened in the past week?", wantPoints: 7},
		{name: "weekly", question: "Give me a weekly spend view", wantPoints: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &types.AssistantResponse{
				ChartSuggestions: []types.ChartSuggestion{suggestion(types.DataSourcePPCDatewise)},
			}
			BindChartData(tt.question, resp, testDashboardData(45))

			require.Len(t, resp.ChartSuggestions, 1)
			data := resp.ChartSuggestions[0].Data
			require.Len(t, data, tt.wantPoints)
			// The slice is the trailing window of the series.
			assert.Equal(t, fmt.Sprintf("2026-06-%02d", 45), data[len(data)-1]["date"])
		})
	}
}

func TestBindChartDataDefaultYFields(t *testing.T) {
	t.Run("ppc defaults to spend and sales", func(t *testing.T) {
		resp := &types.AssistantResponse{
			ChartSuggestions: []types.ChartSuggestion{suggestion(types.DataSourcePPCDatewise)},
		}
		BindChartData("ad performance", resp, testDashboardData(10))

		fields := resp.ChartSuggestions[0].YFields
		require.Len(t, fields, 2)
		assert.Equal(t, "spend", fields[0].Field)
		assert.Equal(t, "sales", fields[1].Field)
	})

	t.Run("sales defaults to sales only", func(t *testing.T) {
		resp := &types.AssistantResponse{
			ChartSuggestions: []types.ChartSuggestion{suggestion(types.DataSourceSalesDatewise)},
		}
		BindChartData("how are sales", resp, testDashboardData(10))

		fields := resp.ChartSuggestions[0].YFields
		require.Len(t, fields, 1)
		assert.Equal(t, "sales", fields[0].Field)
	})

	t.Run("profit question adds profit series", func(t *testing.T) {
		resp := &types.AssistantResponse{
			ChartSuggestions: []types.ChartSuggestion{suggestion(types.DataSourceSalesDatewise)},
		}
		BindChartData("how is my profit margin", resp, testDashboardData(10))

		fields := resp.ChartSuggestions[0].YFields
		require.Len(t, fields, 2)
		assert.Equal(t, "profit", fields[1].Field)
	})

	t.Run("model-specified yFields kept", func(t *testing.T) {
		s := suggestion(types.DataSourcePPCDatewise)
		s.YFields = []types.YField{{Field: "clicks", Label: "Clicks"}}
		resp := &types.AssistantResponse{ChartSuggestions: []types.ChartSuggestion{s}}
		BindChartData("clicks", resp, testDashboardData(10))

		require.Len(t, resp.ChartSuggestions[0].YFields, 1)
		assert.Equal(t, "clicks", resp.ChartSuggestions[0].YFields[0].Field)
	})
}

func TestBindChartDataUnknownSourcePassesThrough(t *testing.T) {
	resp := &types.AssistantResponse{
		ChartSuggestions: []types.ChartSuggestion{suggestion("inventory_datewise")},
	}
	BindChartData("anything", resp, testDashboardData(10))

	require.Len(t, resp.ChartSuggestions, 1)
	assert.Nil(t, resp.ChartSuggestions[0].Data, "unbound chart carries no data")
}

func TestBindChartDataMoreThanTwoSuggestions(t *testing.T) {
	resp := &types.AssistantResponse{
		ChartSuggestions: []types.ChartSuggestion{
			suggestion(types.DataSourcePPCDatewise),
			suggestion(types.DataSourceSalesDatewise),
			suggestion(types.DataSourcePPCDatewise),
			suggestion("bogus"),
		},
	}
	assert.NotPanics(t, func() {
		BindChartData("everything", resp, testDashboardData(10))
	})
	assert.NotEmpty(t, resp.ChartSuggestions[0].Data)
	assert.NotEmpty(t, resp.ChartSuggestions[1].Data)
	assert.NotEmpty(t, resp.ChartSuggestions[2].Data)
	assert.Nil(t, resp.ChartSuggestions[3].Data)
}

func TestBindChartDataFillsMissingIDs(t *testing.T) {
	s := suggestion(types.DataSourcePPCDatewise)
	s.ID = ""
	resp := &types.AssistantResponse{ChartSuggestions: []types.ChartSuggestion{s}}
	BindChartData("q", resp, testDashboardData(5))
	assert.NotEmpty(t, resp.ChartSuggestions[0].ID)
}

func TestBindChartDataShortSeries(t *testing.T) {
	resp := &types.AssistantResponse{
		ChartSuggestions: []types.ChartSuggestion{suggestion(types.DataSourceSalesDatewise)},
	}
	BindChartData("sales", resp, testDashboardData(3))
	assert.Len(t, resp.ChartSuggestions[0].Data, 3, "series shorter than the window binds whole")
}

func TestBindChartDataNilInputs(t *testing.T) {
	assert.NotPanics(t, func() {
		BindChartData("q", nil, nil)
		BindChartData("q", &types.AssistantResponse{}, nil)
		resp := &types.AssistantResponse{ChartSuggestions: []types.ChartSuggestion{suggestion(types.DataSourcePPCDatewise)}}
		BindChartData("q", resp, nil)
		assert.Empty(t, resp.ChartSuggestions[0].Data)
	})
}
