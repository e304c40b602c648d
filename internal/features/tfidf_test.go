package features

import (
	"math"
	"testing"
)

func TestFitBuildsVocabulary(t *testing.T) {
	t.Parallel()

	docs := []string{
		"kargo gecikti",
		"kargo kayboldu",
		"ürün bozuk",
	}
	v := NewVectorizer(0, 2, 1.0)
	if err := v.Fit(docs); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	// Only "kargo" appears in at least 2 documents.
	if v.VocabularySize() != 1 {
		t.Fatalf("vocabulary size = %d, want 1", v.VocabularySize())
	}
	if _, ok := v.Vocabulary["kargo"]; !ok {
		t.Errorf("vocabulary missing %q: %v", "kargo", v.Vocabulary)
	}
}

func TestFitMaxDocFreqFiltersCommonTerms(t *testing.T) {
	t.Parallel()

	// "kargo" appears in every document and must be dropped at max_df 0.5.
	docs := []string{
		"kargo gecikti gecikti",
		"kargo kayboldu kayboldu",
		"kargo bozuk bozuk",
		"kargo eksik eksik",
	}
	v := NewVectorizer(0, 1, 0.5)
	if err := v.Fit(docs); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if _, ok := v.Vocabulary["kargo"]; ok {
		t.Error("term above max_df survived filtering")
	}
	if _, ok := v.Vocabulary["gecikti"]; !ok {
		t.Error("term within bounds was dropped")
	}
}

func TestFitMaxFeaturesKeepsMostFrequent(t *testing.T) {
	t.Parallel()

	docs := []string{
		"aaa aaa aaa bbb",
		"aaa bbb ccc",
		"aaa bbb ccc",
	}
	v := NewVectorizer(2, 1, 1.0)
	if err := v.Fit(docs); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if v.VocabularySize() != 2 {
		t.Fatalf("vocabulary size = %d, want 2", v.VocabularySize())
	}
	// "aaa" is the most frequent term overall; the runner-up is the tie
	// between "bbb" and the bigram "aaa bbb" (3 occurrences each), which
	// breaks alphabetically to "aaa bbb".
	for _, term := range []string{"aaa", "aaa bbb"} {
		if _, ok := v.Vocabulary[term]; !ok {
			t.Errorf("vocabulary missing expected term %q: %v", term, v.Vocabulary)
		}
	}
}

func TestFitEmptyCorpus(t *testing.T) {
	t.Parallel()

	v := NewVectorizer(0, 1, 1.0)
	if err := v.Fit(nil); err != ErrEmptyCorpus {
		t.Errorf("Fit(nil) error = %v, want ErrEmptyCorpus", err)
	}
}

func TestTransformRowsAreL2Normalized(t *testing.T) {
	t.Parallel()

	docs := []string{
		"kargo gecikti teslimat yapılmadı",
		"kargo firması aramadı",
		"teslimat gecikti kargo kayboldu",
	}
	v := NewVectorizer(0, 1, 1.0)
	vectors, err := v.FitTransform(docs)
	if err != nil {
		t.Fatalf("FitTransform: %v", err)
	}

	for i, vec := range vectors {
		var norm float64
		for _, val := range vec.Values {
			norm += val * val
		}
		norm = math.Sqrt(norm)
		if math.Abs(norm-1) > 1e-9 {
			t.Errorf("row %d norm = %v, want 1", i, norm)
		}
	}
}

func TestTransformIgnoresUnknownTerms(t *testing.T) {
	t.Parallel()

	v := NewVectorizer(0, 1, 1.0)
	if err := v.Fit([]string{"kargo gecikti", "kargo kayboldu"}); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	vec := v.Transform("tamamen alakasız kelimeler")
	if len(vec.Indices) != 0 {
		t.Errorf("out-of-vocabulary text produced %d features, want 0", len(vec.Indices))
	}
}

func TestTransformIncludesBigrams(t *testing.T) {
	t.Parallel()

	v := NewVectorizer(0, 2, 1.0)
	docs := []string{"kargo gecikti yine", "kargo gecikti tekrar"}
	if err := v.Fit(docs); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if _, ok := v.Vocabulary["kargo gecikti"]; !ok {
		t.Errorf("bigram missing from vocabulary: %v", v.Vocabulary)
	}
}

func TestFitDeterministicVocabulary(t *testing.T) {
	t.Parallel()

	docs := []string{
		"kargo gecikti teslimat",
		"ürün bozuk kargo",
		"iade talebi gecikti",
	}
	first := NewVectorizer(5, 1, 1.0)
	if err := first.Fit(docs); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	for i := 0; i < 10; i++ {
		again := NewVectorizer(5, 1, 1.0)
		if err := again.Fit(docs); err != nil {
			t.Fatalf("Fit: %v", err)
		}
		if len(again.Vocabulary) != len(first.Vocabulary) {
			t.Fatalf("vocabulary size changed between fits")
		}
		for term, idx := range first.Vocabulary {
			if again.Vocabulary[term] != idx {
				t.Fatalf("term %q index changed: %d vs %d", term, idx, again.Vocabulary[term])
			}
		}
	}
}
