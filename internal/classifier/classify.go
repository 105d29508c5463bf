// Package classifier assigns a grammatical category to the leading word of a
// process label using fixed lexicons and suffix rules.
package classifier

import (
	"strings"

	"github.com/heartmarshall/bpe-analyzer/internal/domain"
)

// Classify returns the category of word. Matching is case-insensitive and
// the first rule that applies wins:
//  1. verb lexicon
//  2. noun lexicon
//  3. verb suffix (-ing, -ate, -ify, -ize)
//  4. noun suffix (-tion, -ment, -ness, -ity)
//
// Anything else is CategoryOther.
func Classify(word string) domain.Category {
	w := domain.NormalizeWord(word)
	if w == "" {
		return domain.CategoryOther
	}

	switch {
	case verbs.has(w):
		return domain.CategoryVerb
	case nouns.has(w):
		return domain.CategoryNoun
	case hasAnySuffix(w, verbSuffixes[:]):
		return domain.CategoryVerb
	case hasAnySuffix(w, nounSuffixes[:]):
		return domain.CategoryNoun
	}
	return domain.CategoryOther
}

// Confidence returns the fixed confidence reported for a category.
func Confidence(c domain.Category) float64 {
	if c == domain.CategoryOther {
		return domain.ConfidenceUnclassified
	}
	return domain.ConfidenceClassified
}

func hasAnySuffix(w string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(w, s) {
			return true
		}
	}
	return false
}
