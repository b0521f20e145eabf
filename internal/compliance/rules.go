package compliance

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/sellerdesk/listing-copilot/internal/types"
)

// Character thresholds per field. A title under 80 characters loses search
// visibility; bullets under 150 characters waste indexed space; description
// paragraphs under 1700 characters underuse the section; backend keywords
// under 450 characters leave search-term capacity on the table.
const (
	TitleMinLength           = 80
	BulletMinLength          = 150
	DescriptionMinLength     = 1700
	BackendKeywordsMinLength = 450
)

var tokenPattern = regexp.MustCompile(`[A-Za-z0-9]+`)

func success(message string) *types.CheckResult {
	return &types.CheckResult{Status: types.StatusSuccess, Message: message}
}

func failure(message, howToSolve string) *types.CheckResult {
	return &types.CheckResult{Status: types.StatusError, Message: message, HowToSolve: howToSolve}
}

// CheckTitle applies the three title rules: minimum length, restricted terms
// and prohibited special characters.
func CheckTitle(title string) *types.FieldAnalysis {
	fa := &types.FieldAnalysis{}

	if len(title) < TitleMinLength {
		fa.CharLim = failure(
			fmt.Sprintf("Your title is under %d characters, which reduces its visibility in search results.", TitleMinLength),
			fmt.Sprintf("Expand the title to at least %d characters with relevant product attributes and keywords.", TitleMinLength),
		)
	} else {
		fa.CharLim = success("Title length meets the recommended minimum.")
	}

	if matched := FindRestrictedTerms(title, RestrictedTerms); len(matched) > 0 {
		fa.RestrictedWords = failure(
			fmt.Sprintf("Your title contains restricted terms: %s.", strings.Join(matched, ", ")),
			"Remove or replace the restricted terms; listings using them can be suppressed.",
		)
	} else {
		fa.RestrictedWords = success("No restricted terms found in the title.")
	}

	if matched := FindSpecialCharacters(title, SpecialCharacters); len(matched) > 0 {
		fa.SpecialCharacters = failure(
			fmt.Sprintf("Your title contains prohibited special characters: %s.", strings.Join(matched, ", ")),
			"Remove the prohibited characters; titles may only use plain text and standard punctuation.",
		)
	} else {
		fa.SpecialCharacters = success("No prohibited special characters found in the title.")
	}

	fa.NumberOfErrors = countErrors(fa)
	return fa
}

// CheckBulletPoints applies the title's rule categories per bullet. Each rule
// surfaces one aggregated result across all bullets; the messages carry the
// first matched term or character per offending bullet, de-duplicated. The
// error count is the number of rule categories with at least one violating
// bullet (0-3), not a per-bullet sum.
func CheckBulletPoints(bullets []string) *types.FieldAnalysis {
	fa := &types.FieldAnalysis{}

	var shortCount int
	var firstTerms, firstChars []string
	seenTerms := make(map[string]bool)
	seenChars := make(map[string]bool)

	for _, bullet := range bullets {
		if len(bullet) < BulletMinLength {
			shortCount++
		}
		if matched := FindRestrictedTerms(bullet, RestrictedTerms); len(matched) > 0 {
			if !seenTerms[matched[0]] {
				firstTerms = append(firstTerms, matched[0])
				seenTerms[matched[0]] = true
			}
		}
		if matched := FindSpecialCharacters(bullet, SpecialCharacters); len(matched) > 0 {
			if !seenChars[matched[0]] {
				firstChars = append(firstChars, matched[0])
				seenChars[matched[0]] = true
			}
		}
	}

	if shortCount > 0 {
		fa.CharLim = failure(
			fmt.Sprintf("%d of your bullet points are under %d characters, which wastes indexed content space.", shortCount, BulletMinLength),
			fmt.Sprintf("Expand each bullet point to at least %d characters with benefits and use cases.", BulletMinLength),
		)
	} else {
		fa.CharLim = success("All bullet points meet the recommended minimum length.")
	}

	if len(firstTerms) > 0 {
		fa.RestrictedWords = failure(
			fmt.Sprintf("Your bullet points contain restricted terms: %s.", strings.Join(firstTerms, ", ")),
			"Remove or replace the restricted terms in the affected bullet points.",
		)
	} else {
		fa.RestrictedWords = success("No restricted terms found in the bullet points.")
	}

	if len(firstChars) > 0 {
		fa.SpecialCharacters = failure(
			fmt.Sprintf("Your bullet points contain prohibited special characters: %s.", strings.Join(firstChars, ", ")),
			"Remove the prohibited characters from the affected bullet points.",
		)
	} else {
		fa.SpecialCharacters = success("No prohibited special characters found in the bullet points.")
	}

	fa.NumberOfErrors = countErrors(fa)
	return fa
}

// CheckDescription applies the title's rule categories per paragraph with a
// larger length threshold. Each paragraph's result overwrites the previous
// one per rule category, so only the last paragraph's status and message
// survive, while NumberOfErrors accumulates across every paragraph and rule
// hit. The dashboard consumes the count, not the per-rule slots.
func CheckDescription(paragraphs []string) *types.FieldAnalysis {
	fa := &types.FieldAnalysis{}

	for i, paragraph := range paragraphs {
		point := i + 1

		var charLim *types.CheckResult
		if len(paragraph) < DescriptionMinLength {
			charLim = failure(
				fmt.Sprintf("Description point %d is under %d characters.", point, DescriptionMinLength),
				fmt.Sprintf("Expand the description point to at least %d characters.", DescriptionMinLength),
			)
		} else {
			charLim = success(fmt.Sprintf("Description point %d meets the recommended minimum length.", point))
		}
		charLim.PointNumber = intPtr(point)
		fa.CharLim = charLim

		var restricted *types.CheckResult
		if matched := FindRestrictedTerms(paragraph, RestrictedTerms); len(matched) > 0 {
			restricted = failure(
				fmt.Sprintf("Description point %d contains restricted terms: %s.", point, strings.Join(matched, ", ")),
				"Remove or replace the restricted terms in this description point.",
			)
		} else {
			restricted = success(fmt.Sprintf("No restricted terms found in description point %d.", point))
		}
		restricted.PointNumber = intPtr(point)
		fa.RestrictedWords = restricted

		var special *types.CheckResult
		if matched := FindSpecialCharacters(paragraph, SpecialCharacters); len(matched) > 0 {
			special = failure(
				fmt.Sprintf("Description point %d contains prohibited special characters: %s.", point, strings.Join(matched, ", ")),
				"Remove the prohibited characters from this description point.",
			)
		} else {
			special = success(fmt.Sprintf("No prohibited special characters found in description point %d.", point))
		}
		special.PointNumber = intPtr(point)
		fa.SpecialCharacters = special

		// Count accumulates across all paragraphs even though results overwrite.
		for _, r := range []*types.CheckResult{charLim, restricted, special} {
			if r.Status == types.StatusError {
				fa.NumberOfErrors++
			}
		}
	}

	return fa
}

// CheckBackendKeywords applies the length and duplicate-token rules to the
// hidden search terms. A nil input fails fast with a single error and skips
// the duplicate check entirely.
func CheckBackendKeywords(keywords *string) *types.FieldAnalysis {
	if keywords == nil {
		return &types.FieldAnalysis{
			CharLim: failure(
				"Backend keywords are missing or not valid text.",
				"Provide your backend search keywords as plain text.",
			),
			NumberOfErrors: 1,
		}
	}

	fa := &types.FieldAnalysis{}

	if len(*keywords) < BackendKeywordsMinLength {
		fa.CharLim = failure(
			fmt.Sprintf("Your backend keywords are under %d characters, leaving search-term capacity unused.", BackendKeywordsMinLength),
			fmt.Sprintf("Add more relevant search terms to reach at least %d characters.", BackendKeywordsMinLength),
		)
	} else {
		fa.CharLim = success("Backend keywords meet the recommended minimum length.")
	}

	if dupes := findDuplicateTokens(*keywords); len(dupes) > 0 {
		fa.DuplicateWords = failure(
			fmt.Sprintf("Your backend keywords contain duplicate words: %s.", strings.Join(dupes, ", ")),
			"Remove repeated words; each keyword is indexed once, so duplicates waste space.",
		)
	} else {
		fa.DuplicateWords = success("No duplicate words found in the backend keywords.")
	}

	fa.NumberOfErrors = countErrors(fa)
	return fa
}

// CheckListing runs the title, bullet-point and description checks together
// and totals their error counts. Backend keywords are checked separately via
// CheckBackendKeywords because the dashboard requests them on demand.
func CheckListing(fields types.ListingFields) *types.ListingAnalysis {
	analysis := &types.ListingAnalysis{
		Title:        CheckTitle(fields.Title),
		BulletPoints: CheckBulletPoints(fields.BulletPoints),
		Description:  CheckDescription(fields.Description),
	}
	analysis.TotalErrors = analysis.Title.NumberOfErrors +
		analysis.BulletPoints.NumberOfErrors +
		analysis.Description.NumberOfErrors

	if fields.BackendKeywords != nil {
		analysis.BackendKeywords = CheckBackendKeywords(fields.BackendKeywords)
		analysis.TotalErrors += analysis.BackendKeywords.NumberOfErrors
	}

	return analysis
}

// findDuplicateTokens tokenizes on word boundaries, lowercases, and returns
// tokens that appear more than once, sorted for stable messages.
func findDuplicateTokens(text string) []string {
	counts := make(map[string]int)
	for _, token := range tokenPattern.FindAllString(text, -1) {
		counts[strings.ToLower(token)]++
	}

	var dupes []string
	for token, n := range counts {
		if n > 1 {
			dupes = append(dupes, token)
		}
	}
	sort.Strings(dupes)
	return dupes
}

func countErrors(fa *types.FieldAnalysis) int {
	n := 0
	for _, nr := range fa.Results() {
		if nr.Result.Status == types.StatusError {
			n++
		}
	}
	return n
}

func intPtr(v int) *int {
	return &v
}
