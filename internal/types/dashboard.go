//nolint:revive // types is a standard Go package name pattern
package types

// DashboardData is the raw aggregated dashboard object supplied by the
// dashboard collaborator. Every sub-object is optional; the context builder
// defaults missing pieces to null/0/empty rather than failing.
type DashboardData struct {
	Brand     string `json:"brand"`
	Country   string `json:"country"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	Sales         *SalesSummary `json:"sales,omitempty"`
	SalesDatewise []SalesPoint  `json:"salesDatewise,omitempty"`

	Ads         *AdsSummary `json:"ads,omitempty"`
	PPCSummary  *PPCSummary `json:"ppcSummary,omitempty"`
	AdsDatewise []AdPoint   `json:"adsDatewise,omitempty"`
	Campaigns   []Campaign  `json:"campaigns,omitempty"`

	Profitability      []AsinMetrics    `json:"profitability,omitempty"`
	KeywordPerformance []KeywordMetrics `json:"keywordPerformance,omitempty"`

	Issues        *IssueCounters `json:"issues,omitempty"`
	AccountHealth string         `json:"accountHealth,omitempty"`
}

// SalesSummary holds account-level sales totals for the selected date range.
// GrossProfit is the backend figure before ad spend is subtracted.
type SalesSummary struct {
	TotalSales  float64 `json:"totalSales"`
	GrossProfit float64 `json:"grossProfit"`
	Orders      int     `json:"orders"`
	Units       int     `json:"units"`
}

// SalesPoint is one entry of the total-sales date-wise series.
type SalesPoint struct {
	Date   string  `json:"date"`
	Sales  float64 `json:"sales"`
	Profit float64 `json:"profit"`
	Orders int     `json:"orders"`
}

// AdsSummary is the legacy advertising summary. Spend and TACOS are pointers
// because older dashboard payloads omit them entirely.
type AdsSummary struct {
	Spend *float64 `json:"spend,omitempty"`
	Sales float64  `json:"sales"`
	TACOS *float64 `json:"tacos,omitempty"`
}

// PPCSummary is the newer PPC reporting summary; preferred over AdsSummary
// wherever both are present.
type PPCSummary struct {
	Spend *float64 `json:"spend,omitempty"`
	Sales float64  `json:"sales"`
	ACOS  *float64 `json:"acos,omitempty"`
}

// AdPoint is one entry of the advertising date-wise series.
type AdPoint struct {
	Date        string  `json:"date"`
	Spend       float64 `json:"spend"`
	Sales       float64 `json:"sales"`
	Clicks      int     `json:"clicks"`
	Impressions int     `json:"impressions"`
	Orders      int     `json:"orders"`
}

// Campaign is one advertising campaign row.
type Campaign struct {
	Name        string  `json:"name"`
	Spend       float64 `json:"spend"`
	Sales       float64 `json:"sales"`
	Clicks      int     `json:"clicks"`
	Impressions int     `json:"impressions"`
}

// AsinMetrics is one per-ASIN profitability row from the dashboard.
type AsinMetrics struct {
	Asin        string  `json:"asin"`
	Title       string  `json:"title,omitempty"`
	Sales       float64 `json:"sales"`
	GrossProfit float64 `json:"grossProfit"`
	Quantity    int     `json:"quantity"`
}

// KeywordMetrics is one keyword-performance row from advertising reports.
type KeywordMetrics struct {
	Keyword            string  `json:"keyword"`
	CampaignName       string  `json:"campaignName,omitempty"`
	Cost               float64 `json:"cost"`
	Clicks             int     `json:"clicks"`
	AttributedSales30d float64 `json:"attributedSales30d"`
}

// IssueCounters holds the six independently tracked error counters plus the
// per-ASIN issue rows they were derived from.
type IssueCounters struct {
	Profitability int         `json:"profitability"`
	Ads           int         `json:"ads"`
	Inventory     int         `json:"inventory"`
	Ranking       int         `json:"ranking"`
	Conversion    int         `json:"conversion"`
	AccountHealth int         `json:"accountHealth"`
	ErrorAsins    []AsinIssue `json:"errorAsins,omitempty"`
}

// AsinIssue is one per-ASIN issue row.
type AsinIssue struct {
	Asin     string `json:"asin"`
	Category string `json:"category"`
	Errors   int    `json:"errors"`
}

// MetricsContext is the compact, size-bounded projection of DashboardData
// sent to the assistant. Built fresh per request; never cached.
type MetricsContext struct {
	Summary       ContextSummary       `json:"summary"`
	Profitability ContextProfitability `json:"profitability"`
	Ads           ContextAds           `json:"ads"`
	Issues        ContextIssues        `json:"issues"`
}

// ContextSummary is the account-level headline block of the context.
// GrossProfit is the displayed figure, i.e. backend gross profit minus PPC spend.
type ContextSummary struct {
	Brand         string   `json:"brand"`
	Country       string   `json:"country"`
	DateRange     string   `json:"dateRange"`
	TotalSales    float64  `json:"totalSales"`
	GrossProfit   float64  `json:"grossProfit"`
	PPCSpend      *float64 `json:"ppcSpend"`
	AccountHealth string   `json:"accountHealth"`
}

// AsinProfit is a per-ASIN profitability entry in the context.
type AsinProfit struct {
	Asin            string  `json:"asin"`
	Sales           float64 `json:"sales"`
	NetProfit       float64 `json:"netProfit"`
	NetProfitMargin float64 `json:"netProfitMargin"`
}

// ContextProfitability holds the bounded profitability lists.
type ContextProfitability struct {
	ProfitMargin    float64      `json:"profitMargin"`
	TopAsins        []AsinProfit `json:"topAsins"`
	LowMarginAsins  []AsinProfit `json:"lowMarginAsins"`
	LossMakingAsins []AsinProfit `json:"lossMakingAsins"`
}

// WastedKeyword is one keyword with spend but negligible attributed sales.
type WastedKeyword struct {
	Keyword  string  `json:"keyword"`
	Campaign string  `json:"campaign,omitempty"`
	Cost     float64 `json:"cost"`
	Clicks   int     `json:"clicks"`
}

// ContextAds holds the bounded advertising block of the context.
type ContextAds struct {
	Spend               *float64        `json:"spend"`
	Sales               float64         `json:"sales"`
	ACOS                *float64        `json:"acos"`
	TACOS               *float64        `json:"tacos"`
	WastedSpend         float64         `json:"wastedSpend"`
	WastedKeywordsCount int             `json:"wastedKeywordsCount"`
	TopWastedKeywords   []WastedKeyword `json:"topWastedKeywords"`
	Datewise            []AdPoint       `json:"datewise"`
	Campaigns           []Campaign      `json:"campaigns"`
}

// ContextIssues holds the bounded issue block of the context. Total is always
// the sum of the six tracked counters, never recomputed from the rows.
type ContextIssues struct {
	Total         int            `json:"total"`
	ByCategory    map[string]int `json:"byCategory"`
	TopErrorAsins []AsinIssue    `json:"topErrorAsins"`
}
