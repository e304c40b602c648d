package features

import (
	"fmt"

	"github.com/complaintiq/classifier/internal/textnorm"
)

// numericColumns is the number of numeric features appended after the
// TF-IDF block: raw text length and raw word count.
const numericColumns = 2

// Extractor fuses the TF-IDF block with the standardized numeric block.
// The output width is VocabularySize()+2 and is fixed for the lifetime of
// the fitted state.
type Extractor struct {
	Vectorizer *Vectorizer `json:"-"`
	Scaler     *Scaler     `json:"-"`
}

// NewExtractor creates an extractor around an unfitted vectorizer and scaler.
func NewExtractor(maxFeatures, minDocFreq int, maxDocFreq float64) *Extractor {
	return &Extractor{
		Vectorizer: NewVectorizer(maxFeatures, minDocFreq, maxDocFreq),
		Scaler:     NewScaler(),
	}
}

// numericRow computes the raw numeric features of an unnormalized text.
func numericRow(text string) []float64 {
	return []float64{
		float64(len([]rune(text))),
		float64(textnorm.WordCount(text)),
	}
}

// FitTransform fits the vectorizer on the normalized texts and the scaler on
// the raw numeric features, returning the fused vectors in row order.
func (e *Extractor) FitTransform(texts []string) ([]Vector, error) {
	normalized := make([]string, len(texts))
	numeric := make([][]float64, len(texts))
	for i, text := range texts {
		normalized[i] = textnorm.Normalize(text)
		numeric[i] = numericRow(text)
	}

	tfidf, err := e.Vectorizer.FitTransform(normalized)
	if err != nil {
		return nil, fmt.Errorf("fit tf-idf: %w", err)
	}

	scaled, err := e.Scaler.FitTransform(numeric)
	if err != nil {
		return nil, fmt.Errorf("fit scaler: %w", err)
	}

	vectors := make([]Vector, len(texts))
	for i := range texts {
		vectors[i] = e.fuse(tfidf[i], scaled[i])
	}
	return vectors, nil
}

// Transform builds the fused feature vector of one raw text using the
// fitted state.
func (e *Extractor) Transform(text string) Vector {
	tfidf := e.Vectorizer.Transform(textnorm.Normalize(text))
	scaled := e.Scaler.Transform(numericRow(text))
	return e.fuse(tfidf, scaled)
}

// fuse appends the scaled numeric columns after the TF-IDF block.
func (e *Extractor) fuse(tfidf Vector, scaled []float64) Vector {
	offset := e.Vectorizer.VocabularySize()
	for j, val := range scaled {
		tfidf.Set(offset+j, val)
	}
	return tfidf
}

// Width returns the fused feature width: vocabulary size plus the numeric
// columns.
func (e *Extractor) Width() int {
	return e.Vectorizer.VocabularySize() + numericColumns
}
