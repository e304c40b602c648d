// Package features builds the fused feature representation for complaint
// texts: a TF-IDF block over normalized text concatenated with two
// standardized numeric columns (text length, word count).
package features

import (
	"errors"
	"math"
	"sort"
	"strings"
)

// Vectorizer computes TF-IDF features over unigrams and bigrams of
// normalized text. The vocabulary is fixed at fit time; Transform never
// grows it. All exported fields participate in artifact serialization.
type Vectorizer struct {
	MaxFeatures int     `json:"max_features"`
	MinDocFreq  int     `json:"min_doc_freq"`
	MaxDocFreq  float64 `json:"max_doc_freq"`

	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
}

// NewVectorizer creates an unfitted vectorizer.
func NewVectorizer(maxFeatures, minDocFreq int, maxDocFreq float64) *Vectorizer {
	return &Vectorizer{
		MaxFeatures: maxFeatures,
		MinDocFreq:  minDocFreq,
		MaxDocFreq:  maxDocFreq,
	}
}

// ErrEmptyCorpus is returned when Fit receives no usable documents.
var ErrEmptyCorpus = errors.New("empty corpus for tf-idf fit")

// ngrams produces unigrams and bigrams of a whitespace-tokenized document.
func ngrams(doc string) []string {
	tokens := strings.Fields(doc)
	if len(tokens) == 0 {
		return nil
	}
	out := make([]string, 0, len(tokens)*2-1)
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}

// Fit builds the vocabulary and IDF weights from the corpus of normalized
// documents. Terms must appear in at least MinDocFreq documents and at most
// MaxDocFreq fraction of documents; when more terms survive than
// MaxFeatures, the most frequent terms (by total occurrence count) win, with
// alphabetical order breaking ties so the vocabulary is reproducible.
func (v *Vectorizer) Fit(docs []string) error {
	if len(docs) == 0 {
		return ErrEmptyCorpus
	}

	df := make(map[string]int)
	totalCount := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, term := range ngrams(doc) {
			totalCount[term]++
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}

	n := len(docs)
	maxDF := int(math.Floor(v.MaxDocFreq * float64(n)))
	if maxDF < 1 {
		maxDF = 1
	}

	candidates := make([]string, 0, len(df))
	for term, freq := range df {
		if freq < v.MinDocFreq || freq > maxDF {
			continue
		}
		candidates = append(candidates, term)
	}
	if len(candidates) == 0 {
		return errors.New("no terms survived document frequency filtering")
	}

	if v.MaxFeatures > 0 && len(candidates) > v.MaxFeatures {
		sort.Slice(candidates, func(i, j int) bool {
			if totalCount[candidates[i]] != totalCount[candidates[j]] {
				return totalCount[candidates[i]] > totalCount[candidates[j]]
			}
			return candidates[i] < candidates[j]
		})
		candidates = candidates[:v.MaxFeatures]
	}

	// Stable alphabetical vocabulary ordering.
	sort.Strings(candidates)

	v.Vocabulary = make(map[string]int, len(candidates))
	v.IDF = make([]float64, len(candidates))
	for i, term := range candidates {
		v.Vocabulary[term] = i
		// Smoothed IDF.
		v.IDF[i] = math.Log((1+float64(n))/(1+float64(df[term]))) + 1.0
	}

	return nil
}

// FitTransform fits the vocabulary and returns the TF-IDF vectors of the
// corpus in row order.
func (v *Vectorizer) FitTransform(docs []string) ([]Vector, error) {
	if err := v.Fit(docs); err != nil {
		return nil, err
	}
	vectors := make([]Vector, len(docs))
	for i, doc := range docs {
		vectors[i] = v.Transform(doc)
	}
	return vectors, nil
}

// Transform computes the TF-IDF vector of one normalized document using the
// fitted vocabulary. Sub-linear term frequency scaling (1+log tf) and L2 row
// normalization are applied.
func (v *Vectorizer) Transform(doc string) Vector {
	tf := make(map[int]int)
	for _, term := range ngrams(doc) {
		if idx, ok := v.Vocabulary[term]; ok {
			tf[idx]++
		}
	}

	indices := make([]int, 0, len(tf))
	for idx := range tf {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	var vec Vector
	var norm float64
	for _, idx := range indices {
		w := (1 + math.Log(float64(tf[idx]))) * v.IDF[idx]
		vec.Set(idx, w)
		norm += w * w
	}

	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec.Values {
			vec.Values[i] /= norm
		}
	}

	return vec
}

// VocabularySize returns the number of terms in the fitted vocabulary.
func (v *Vectorizer) VocabularySize() int {
	return len(v.Vocabulary)
}
