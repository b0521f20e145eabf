package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sellerdesk/listing-copilot/internal/compliance"
	"github.com/sellerdesk/listing-copilot/internal/fetch"
	"github.com/sellerdesk/listing-copilot/internal/ingestion"
	"github.com/sellerdesk/listing-copilot/internal/observability"
	"github.com/sellerdesk/listing-copilot/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Check listing content against compliance rules",
	Long:  "Check a listing's title, bullet points, description and backend keywords against length, restricted-term, special-character and duplicate-word rules. Content can be given via flags, an HTML file, or fetched from live product-page URLs.",
	RunE:  runAnalyze,
}

var (
	analyzeTitle      string
	analyzeBullets    []string
	analyzeDescFile   string
	analyzeKeywords   string
	analyzeURLs       []string
	analyzeHTMLFile   string
	analyzeUseBrowser bool
	analyzeVerbose    bool
	analyzeOutputFile string
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "Listing title")
	analyzeCmd.Flags().StringArrayVar(&analyzeBullets, "bullet", nil, "Bullet point (repeatable)")
	analyzeCmd.Flags().StringVar(&analyzeDescFile, "description-file", "", "Path to a text file with description paragraphs separated by blank lines")
	analyzeCmd.Flags().StringVar(&analyzeKeywords, "keywords", "", "Backend search keywords")
	analyzeCmd.Flags().StringArrayVar(&analyzeURLs, "url", nil, "Product page URL to fetch and analyze (repeatable)")
	analyzeCmd.Flags().StringVar(&analyzeHTMLFile, "html", "", "Path to a saved product-page HTML file")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Render URLs in a headless browser when plain fetch returns too little content")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print formatted analysis details")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Write the analysis JSON to a file instead of stdout")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	useFlags := analyzeTitle != "" || len(analyzeBullets) > 0 || analyzeDescFile != "" || analyzeKeywords != ""
	useURLs := len(analyzeURLs) > 0
	useHTML := analyzeHTMLFile != ""

	modes := 0
	for _, on := range []bool{useFlags, useURLs, useHTML} {
		if on {
			modes++
		}
	}
	if modes == 0 {
		return fmt.Errorf("must provide listing content via --title/--bullet/--description-file, --url, or --html")
	}
	if modes > 1 {
		return fmt.Errorf("--title/--bullet/--description-file, --url and --html are mutually exclusive")
	}

	ctx := context.Background()
	printer := observability.NewPrinter(os.Stderr)

	var listings []*types.ListingFields

	switch {
	case useURLs:
		fetched, err := fetchListings(ctx, analyzeURLs)
		if err != nil {
			return err
		}
		listings = fetched
	case useHTML:
		html, err := os.ReadFile(analyzeHTMLFile)
		if err != nil {
			return fmt.Errorf("failed to read HTML file: %w", err)
		}
		fields, err := ingestion.ExtractListing(string(html))
		if err != nil {
			return fmt.Errorf("failed to extract listing: %w", err)
		}
		listings = []*types.ListingFields{fields}
	default:
		fields := &types.ListingFields{
			Title:        analyzeTitle,
			BulletPoints: analyzeBullets,
		}
		if analyzeDescFile != "" {
			paragraphs, err := readParagraphs(analyzeDescFile)
			if err != nil {
				return err
			}
			fields.Description = paragraphs
		}
		if analyzeKeywords != "" {
			fields.BackendKeywords = &analyzeKeywords
		}
		listings = []*types.ListingFields{fields}
	}

	analyses := make([]*types.ListingAnalysis, 0, len(listings))
	for _, fields := range listings {
		if analyzeVerbose {
			printer.PrintListingFields(fields)
		}
		analysis := compliance.CheckListing(*fields)
		if analyzeVerbose {
			printer.PrintListingAnalysis(analysis)
		}
		analyses = append(analyses, analysis)
	}

	var out any = analyses[0]
	if len(analyses) > 1 {
		out = analyses
	}

	jsonBytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if analyzeOutputFile != "" {
		if err := os.WriteFile(analyzeOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", analyzeOutputFile)
		return nil
	}

	_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}

// fetchListings retrieves and extracts every URL, falling back to browser
// rendering per page when enabled and the plain fetch looks too thin.
func fetchListings(ctx context.Context, urls []string) ([]*types.ListingFields, error) {
	results, err := fetch.All(ctx, urls, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product pages: %w", err)
	}

	listings := make([]*types.ListingFields, 0, len(results))
	for _, result := range results {
		html := result.HTML
		if analyzeUseBrowser && fetch.ShouldUseBrowser(html) {
			rendered, berr := fetch.BrowserSimple(ctx, result.URL, analyzeVerbose)
			if berr != nil {
				return nil, fmt.Errorf("browser fallback failed for %s: %w", result.URL, berr)
			}
			html = rendered
		}

		fields, err := ingestion.ExtractListing(html)
		if err != nil {
			return nil, fmt.Errorf("failed to extract listing from %s: %w", result.URL, err)
		}
		listings = append(listings, fields)
	}
	return listings, nil
}

// readParagraphs splits a description file into paragraphs on blank lines.
func readParagraphs(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read description file: %w", err)
	}

	var paragraphs []string
	for _, block := range strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			paragraphs = append(paragraphs, block)
		}
	}
	return paragraphs, nil
}
