// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/sellerdesk/listing-copilot/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintListingFields outputs a summary of the listing being analyzed.
func (p *Printer) PrintListingFields(fields *types.ListingFields) {
	if fields == nil {
		return
	}

	var sb strings.Builder

	title := fields.Title
	if len(title) > 45 {
		title = title[:42] + "..."
	}
	sb.WriteString(fmt.Sprintf("Title:   %s\n", title))
	sb.WriteString(fmt.Sprintf("Bullets: %d\n", len(fields.BulletPoints)))
	sb.WriteString(fmt.Sprintf("Paras:   %d\n", len(fields.Description)))
	if fields.BackendKeywords != nil {
		sb.WriteString(fmt.Sprintf("Backend: %d chars", len(*fields.BackendKeywords)))
	} else {
		sb.WriteString("Backend: (not provided)")
	}

	p.printBox("LISTING FIELDS", sb.String())
}

// PrintListingAnalysis outputs the rule engine results per field.
func (p *Printer) PrintListingAnalysis(analysis *types.ListingAnalysis) {
	if analysis == nil {
		return
	}

	if analysis.TotalErrors == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ LISTING PASSES ALL CHECKS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total errors: %d\n\n", analysis.TotalErrors))

	sections := []struct {
		name string
		fa   *types.FieldAnalysis
	}{
		{"Title", analysis.Title},
		{"Bullet Points", analysis.BulletPoints},
		{"Description", analysis.Description},
		{"Backend Keywords", analysis.BackendKeywords},
	}

	for _, section := range sections {
		if section.fa == nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s (%d):\n", section.name, section.fa.NumberOfErrors))
		shown := 0
		for _, named := range section.fa.Results() {
			if named.Result == nil || named.Result.Status != types.StatusError {
				continue
			}
			if shown >= maxItemsToShow {
				break
			}
			msg := named.Result.Message
			if len(msg) > 48 {
				msg = msg[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", msg))
			shown++
		}
		sb.WriteString("\n")
	}

	p.printBox("COMPLIANCE ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMetricsContext outputs the condensed dashboard context sent to the model.
func (p *Printer) PrintMetricsContext(mc *types.MetricsContext) {
	if mc == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Brand:    %s (%s)\n", mc.Summary.Brand, mc.Summary.Country))
	sb.WriteString(fmt.Sprintf("Sales:    %.2f\n", mc.Summary.TotalSales))
	sb.WriteString(fmt.Sprintf("Profit:   %.2f (%.1f%% margin)\n", mc.Summary.GrossProfit, mc.Profitability.ProfitMargin))
	if mc.Ads.ACOS != nil {
		sb.WriteString(fmt.Sprintf("ACOS:     %.2f\n", *mc.Ads.ACOS))
	} else {
		sb.WriteString("ACOS:     n/a\n")
	}
	sb.WriteString("\n")

	if len(mc.Profitability.TopAsins) > 0 {
		sb.WriteString("Top ASINs:\n")
		count := min(len(mc.Profitability.TopAsins), maxItemsToShow)
		for i := 0; i < count; i++ {
			asin := mc.Profitability.TopAsins[i]
			sb.WriteString(fmt.Sprintf("  • %s  sales %.0f  net %.0f\n", asin.Asin, asin.Sales, asin.NetProfit))
		}
		if len(mc.Profitability.TopAsins) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(mc.Profitability.TopAsins)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(mc.Ads.TopWastedKeywords) > 0 {
		sb.WriteString("Wasted spend keywords:\n")
		count := min(len(mc.Ads.TopWastedKeywords), 3)
		for i := 0; i < count; i++ {
			kw := mc.Ads.TopWastedKeywords[i]
			name := kw.Keyword
			if len(name) > 30 {
				name = name[:27] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s  cost %.2f\n", name, kw.Cost))
		}
		if len(mc.Ads.TopWastedKeywords) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(mc.Ads.TopWastedKeywords)-3))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Issues:   %d total", mc.Issues.Total))

	p.printBox("DASHBOARD CONTEXT", sb.String())
}

// PrintChartSuggestions outputs chart suggestions returned by the assistant.
func (p *Printer) PrintChartSuggestions(charts []types.ChartSuggestion) {
	if len(charts) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Suggested %d charts:\n\n", len(charts)))

	for i, chart := range charts {
		title := chart.Title
		if len(title) > 42 {
			title = title[:39] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", title))
		sb.WriteString(fmt.Sprintf("  [%s from %s, %d points]\n", chart.Type, chart.DataSource, len(chart.Data)))
		if i < len(charts)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CHART SUGGESTIONS", sb.String())
}
