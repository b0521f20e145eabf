// Package compliance implements the deterministic marketplace-compliance rule
// engine for listing text. All checks are pure functions: same input, same
// output, no I/O. The same functions back both the standalone pre-submission
// check and the validation of AI-suggested edits, so the rule vocabulary must
// never fork between call sites.
package compliance

import (
	"regexp"
	"strings"
	"sync"
)

// RestrictedTerms is the fixed vocabulary of terms that may not appear in
// listing text: health/medical claims, superlative and compliance claims, and
// controlled-substance names. Matching is whole-word and case-insensitive.
// Treat as immutable; matchers receive it as a parameter so tests can supply
// their own vocabulary.
var RestrictedTerms = []string{
	// Health and medical claims
	"cure", "cures", "curable", "cured", "heal", "heals", "healing",
	"remedy", "remedies", "treat", "treats", "treatment", "treatable",
	"therapy", "therapeutic", "diagnose", "diagnosis", "prevention",
	"prevents disease", "disease", "diseases", "illness", "ailment",
	"antibacterial", "anti-bacterial", "antimicrobial", "anti-microbial",
	"antifungal", "anti-fungal", "antiviral", "anti-viral", "antiseptic",
	"anti-inflammatory", "antiinflammatory", "bacteria", "bacterial",
	"virus", "viruses", "viral", "germ", "germs", "fungus", "fungal",
	"parasite", "parasites", "infection", "infections",
	"cancer", "tumor", "tumour", "carcinogen", "diabetes", "diabetic",
	"arthritis", "alzheimer", "alzheimers", "dementia", "parkinson",
	"asthma", "stroke", "seizure", "epilepsy", "depression", "anxiety",
	"adhd", "autism", "insomnia", "migraine", "concussion",
	"cardiovascular", "cholesterol", "blood pressure", "hypertension",
	"glaucoma", "cataract", "eczema", "psoriasis", "dermatitis", "acne cure",
	"flu", "influenza", "coronavirus", "covid", "covid-19", "pandemic",
	"epidemic", "sanitize", "sanitizes", "sanitizer", "disinfect",
	"disinfectant", "sterilize", "sterilizes", "sterilizer",
	"detox", "detoxify", "detoxification", "cleanse toxins",
	"weight loss", "lose weight", "fat burner", "fat burning",
	"appetite suppressant", "metabolism booster", "anti-aging", "antiaging",
	"wrinkle removal", "hair regrowth", "hair loss cure", "cellulite",
	"immunity boost", "immune booster", "boosts immunity",
	"pain relief", "painkiller", "pain killer", "analgesic", "sedative",
	"vaccine", "vaccinated", "fda approved", "fda cleared", "fda registered",
	"clinically proven", "doctor recommended", "physician recommended",
	"scientifically proven", "medical grade", "pharmaceutical grade",
	"prescription", "prescription strength", "hospital grade",

	// Controlled and regulated substances
	"cbd", "cannabidiol", "cannabis", "marijuana", "thc", "hemp oil",
	"kratom", "peyote", "psilocybin", "ayahuasca", "ephedra", "ephedrine",
	"melatonin", "hgh", "human growth hormone", "hcg", "steroids",
	"anabolic", "testosterone booster", "dmaa", "dmha", "nicotine",
	"tobacco", "cigarette", "cigarettes", "vape", "vaping", "e-liquid",
	"opioid", "opiate", "codeine", "morphine", "valium", "xanax",
	"poison", "poisonous", "toxic", "pesticide", "pesticides",
	"insecticide", "insecticides", "herbicide", "fungicide", "rodenticide",
	"mosquito repellent", "insect repellent",

	// Superlative, promotional and compliance claims
	"best seller", "bestseller", "best selling", "top rated", "top seller",
	"number one", "number 1", "world's best", "worlds best", "best ever",
	"highest quality", "highest rated", "award winning", "most advanced",
	"guarantee", "guaranteed", "money back guarantee", "100% guaranteed",
	"risk free", "lifetime warranty", "unconditional warranty",
	"free shipping", "free gift", "free bonus", "buy now", "shop now",
	"limited time offer", "hot item", "hot sale", "on sale now",
	"lowest price", "cheapest", "discounted", "closeout", "clearance",
	"satisfaction guaranteed", "proven results", "certified organic",
	"eco-friendly", "ecofriendly", "environmentally friendly", "green product",
	"biodegradable", "compostable", "recyclable", "non-toxic", "nontoxic",
	"chemical free", "bpa free approved", "made in usa certified",
	"platinum seller", "verified seller", "authentic guaranteed",
}

// SpecialCharacters is the fixed set of characters prohibited in listing
// text. Order here defines nothing; matches are reported in order of first
// appearance in the scanned text.
var SpecialCharacters = []rune{'!', '$', '?', '_', '{', '}', '^', '¬', '¦', '~', '#', '<', '>', '*'}

// wordBoundary wraps a quoted term so "cure" does not match "secure" or
// "curette". \b treats hyphens as boundaries, which is what the term list
// expects for entries like "anti-inflammatory".
var (
	termPatternCache   = make(map[string]*regexp.Regexp)
	termPatternCacheMu sync.RWMutex
)

func termPattern(term string) *regexp.Regexp {
	termPatternCacheMu.RLock()
	re, ok := termPatternCache[term]
	termPatternCacheMu.RUnlock()
	if ok {
		return re
	}

	re = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)

	termPatternCacheMu.Lock()
	termPatternCache[term] = re
	termPatternCacheMu.Unlock()
	return re
}

// FindRestrictedTerms returns the terms from the given vocabulary that occur
// in text as whole words, case-insensitively. Matched terms are returned
// verbatim from the vocabulary, in vocabulary order, without duplicates.
// Returns nil when nothing matches.
func FindRestrictedTerms(text string, terms []string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var found []string
	seen := make(map[string]bool)
	for _, term := range terms {
		trimmed := strings.TrimSpace(term)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		if termPattern(trimmed).MatchString(text) {
			found = append(found, trimmed)
			seen[key] = true
		}
	}
	return found
}

// FindSpecialCharacters returns the prohibited characters that occur in text,
// in order of first appearance, without duplicates. Returns nil when nothing
// matches.
func FindSpecialCharacters(text string, chars []rune) []string {
	if text == "" {
		return nil
	}

	prohibited := make(map[rune]bool, len(chars))
	for _, c := range chars {
		prohibited[c] = true
	}

	var found []string
	seen := make(map[rune]bool)
	for _, r := range text {
		if prohibited[r] && !seen[r] {
			found = append(found, string(r))
			seen[r] = true
		}
	}
	return found
}
