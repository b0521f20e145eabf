package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRestrictedTerms(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		terms    []string
		expected []string
	}{
		{
			name:     "no matches",
			text:     "Stainless steel water bottle with straw lid",
			terms:    []string{"cure", "guaranteed"},
			expected: nil,
		},
		{
			name:     "single whole-word match",
			text:     "This product will cure your ailments",
			terms:    []string{"cure", "heal"},
			expected: []string{"cure"},
		},
		{
			name:     "case insensitive",
			text:     "GUARANTEED to work",
			terms:    []string{"guaranteed"},
			expected: []string{"guaranteed"},
		},
		{
			name:     "substring does not match",
			text:     "secure closure with procurement options",
			terms:    []string{"cure"},
			expected: nil,
		},
		{
			name:     "multi-word term",
			text:     "supports weight loss goals",
			terms:    []string{"weight loss"},
			expected: []string{"weight loss"},
		},
		{
			name:     "multiple matches in vocabulary order",
			text:     "guaranteed to cure everything",
			terms:    []string{"cure", "guaranteed"},
			expected: []string{"cure", "guaranteed"},
		},
		{
			name:     "duplicate vocabulary entries reported once",
			text:     "cure all",
			terms:    []string{"cure", "Cure"},
			expected: []string{"cure"},
		},
		{
			name:     "empty text",
			text:     "",
			terms:    []string{"cure"},
			expected: nil,
		},
		{
			name:     "hyphenated term",
			text:     "natural anti-inflammatory formula",
			terms:    []string{"anti-inflammatory"},
			expected: []string{"anti-inflammatory"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := FindRestrictedTerms(tt.text, tt.terms)
			assert.Equal(t, tt.expected, found)
		})
	}
}

func TestFindRestrictedTermsIsPure(t *testing.T) {
	text := "guaranteed to cure covid"
	first := FindRestrictedTerms(text, RestrictedTerms)
	second := FindRestrictedTerms(text, RestrictedTerms)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestFindSpecialCharacters(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "no prohibited characters",
			text:     "Premium Cotton T-Shirt, Pack of 3 (Blue)",
			expected: nil,
		},
		{
			name:     "single character",
			text:     "Amazing Deal!",
			expected: []string{"!"},
		},
		{
			name:     "order of first appearance",
			text:     "Save $$ now! Best $ deal!",
			expected: []string{"$", "!"},
		},
		{
			name:     "duplicates reported once",
			text:     "!!!",
			expected: []string{"!"},
		},
		{
			name:     "full prohibited set",
			text:     "!$?_{}^¬¦~#<>*",
			expected: []string{"!", "$", "?", "_", "{", "}", "^", "¬", "¦", "~", "#", "<", ">", "*"},
		},
		{
			name:     "empty text",
			text:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := FindSpecialCharacters(tt.text, SpecialCharacters)
			assert.Equal(t, tt.expected, found)
		})
	}
}

func TestFindSpecialCharactersCustomSet(t *testing.T) {
	found := FindSpecialCharacters("a@b!c", []rune{'@'})
	require.Equal(t, []string{"@"}, found)
}
