// Package categorizer implements the deterministic keyword rule engine and
// the coarse-to-refined taxonomy mapper for complaint texts.
package categorizer

import (
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/complaintiq/classifier/internal/domain"
	"github.com/complaintiq/classifier/internal/textnorm"
)

// confidenceDivisor normalizes a keyword hit count into [0, 1]: three or
// more distinct keyword hits saturate confidence at 1.0.
const confidenceDivisor = 3.0

// KeywordCategorizer assigns one of the refined taxonomy categories to a
// text from keyword hits. Matching is pure and deterministic: identical
// input always yields identical output, and score ties resolve to the
// first-declared category.
//
// The automaton is built once at construction; Categorize is safe for
// concurrent use.
type KeywordCategorizer struct {
	definitions []domain.CategoryDefinition
	matcher     *ahocorasick.Matcher
	keywords    []string
	// keyword pattern index -> categories it belongs to, with the keyword's
	// position inside each category's keyword set. A keyword shared by two
	// categories ("kalite") scores both.
	patternCats [][]patternRef
}

type patternRef struct {
	category int
	keyword  int
}

// NewKeywordCategorizer builds the Aho-Corasick automaton over the given
// ordered category definitions.
func NewKeywordCategorizer(definitions []domain.CategoryDefinition) *KeywordCategorizer {
	c := &KeywordCategorizer{definitions: definitions}

	seen := make(map[string]int)
	for catIdx, def := range definitions {
		for kwIdx, kw := range def.Keywords {
			normalized := strings.TrimSpace(textnorm.Lower(kw))
			if normalized == "" {
				continue
			}
			ref := patternRef{category: catIdx, keyword: kwIdx}
			if patIdx, ok := seen[normalized]; ok {
				c.patternCats[patIdx] = append(c.patternCats[patIdx], ref)
				continue
			}
			seen[normalized] = len(c.keywords)
			c.keywords = append(c.keywords, normalized)
			c.patternCats = append(c.patternCats, []patternRef{ref})
		}
	}

	if len(c.keywords) > 0 {
		c.matcher = ahocorasick.NewStringMatcher(c.keywords)
	}

	return c
}

// NewDefaultCategorizer builds a categorizer over the fixed 12-category
// taxonomy.
func NewDefaultCategorizer() *KeywordCategorizer {
	return NewKeywordCategorizer(Definitions)
}

// Categorize scores every category by the number of its keywords occurring
// as substrings of the lower-cased text and returns the winner with a
// confidence of min(score/3, 1). Ties break to the first-declared category.
// A text matching no keyword at all returns (CategoryUnknown, 0).
func (c *KeywordCategorizer) Categorize(text string) (string, float64) {
	scores := c.Scores(text)

	bestIdx := -1
	bestScore := 0
	for i, score := range scores {
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx < 0 {
		return domain.CategoryUnknown, 0.0
	}

	confidence := float64(bestScore) / confidenceDivisor
	if confidence > 1.0 {
		confidence = 1.0
	}
	return c.definitions[bestIdx].Name, confidence
}

// Scores returns the distinct-keyword hit count per category, indexed by
// declaration order.
func (c *KeywordCategorizer) Scores(text string) []int {
	scores := make([]int, len(c.definitions))
	if c.matcher == nil || text == "" {
		return scores
	}

	lowered := textnorm.Lower(text)
	// Match carries mutable matcher state; MatchThreadSafe keeps Scores
	// usable from concurrent request handlers.
	hits := c.matcher.MatchThreadSafe([]byte(lowered))

	// Each keyword contributes at most once per category.
	matched := make(map[patternRef]bool)
	for _, patIdx := range hits {
		if patIdx < 0 || patIdx >= len(c.patternCats) {
			continue
		}
		for _, ref := range c.patternCats[patIdx] {
			if matched[ref] {
				continue
			}
			matched[ref] = true
			scores[ref.category]++
		}
	}

	return scores
}

// KeywordCount returns the number of distinct keyword patterns in the
// automaton.
func (c *KeywordCategorizer) KeywordCount() int {
	return len(c.keywords)
}

// Definitions returns the ordered category definitions backing this
// categorizer.
func (c *KeywordCategorizer) Definitions() []domain.CategoryDefinition {
	return c.definitions
}
