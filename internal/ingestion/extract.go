// Package ingestion extracts listing fields from Amazon product-page HTML so
// that live listings can be analyzed without manual copy-paste.
package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/sellerdesk/listing-copilot/internal/types"
)

// Error represents an error during listing extraction.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ingestion error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("ingestion error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Selectors for the standard Amazon product-page layout. Amazon A/B tests
// templates, so each field has fallbacks tried in order.
var (
	titleSelectors = []string{
		"#productTitle",
		"#title span",
		"h1.product-title-word-break",
	}
	bulletSelectors = []string{
		"#feature-bullets ul li span.a-list-item",
		"#feature-bullets ul li",
		"#featurebullets_feature_div ul li",
	}
	descriptionSelectors = []string{
		"#productDescription p",
		"#productDescription",
		"#aplus_feature_div p",
	}
)

// ExtractListing parses product-page HTML into the fields the rule engine
// checks. Backend keywords are never present in public pages, so the returned
// fields always have nil BackendKeywords.
func ExtractListing(html string) (*types.ListingFields, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &Error{Message: "failed to parse HTML", Cause: err}
	}

	fields := &types.ListingFields{
		Title:        extractTitle(doc),
		BulletPoints: extractBullets(doc),
		Description:  extractDescription(doc),
	}

	if fields.Title == "" && len(fields.BulletPoints) == 0 && len(fields.Description) == 0 {
		return nil, &Error{Message: "no listing content found in page"}
	}

	return fields, nil
}

func extractTitle(doc *goquery.Document) string {
	for _, selector := range titleSelectors {
		title := strings.TrimSpace(doc.Find(selector).First().Text())
		if title != "" {
			return title
		}
	}
	return ""
}

func extractBullets(doc *goquery.Document) []string {
	for _, selector := range bulletSelectors {
		var bullets []string
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			text := strings.TrimSpace(sel.Text())
			if text == "" || isBulletNoise(text) {
				return
			}
			bullets = append(bullets, text)
		})
		if len(bullets) > 0 {
			return bullets
		}
	}
	return nil
}

func extractDescription(doc *goquery.Document) []string {
	for _, selector := range descriptionSelectors {
		var paragraphs []string
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			text := strings.TrimSpace(sel.Text())
			if text != "" {
				paragraphs = append(paragraphs, text)
			}
		})
		if len(paragraphs) > 0 {
			return paragraphs
		}
	}
	return nil
}

// isBulletNoise filters list items Amazon injects into the feature list that
// are not seller-written copy.
func isBulletNoise(text string) bool {
	lower := strings.ToLower(text)
	noise := []string{
		"see more product details",
		"make sure this fits",
		"report an issue with this product",
	}
	for _, phrase := range noise {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
