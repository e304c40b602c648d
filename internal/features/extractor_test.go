package features

import (
	"math"
	"testing"
)

func TestScalerFitTransform(t *testing.T) {
	t.Parallel()

	rows := [][]float64{
		{10, 2},
		{20, 4},
		{30, 6},
	}
	s := NewScaler()
	scaled, err := s.FitTransform(rows)
	if err != nil {
		t.Fatalf("FitTransform: %v", err)
	}

	// Each column must have zero mean and unit variance afterwards.
	for j := 0; j < 2; j++ {
		var mean float64
		for i := range scaled {
			mean += scaled[i][j]
		}
		mean /= float64(len(scaled))
		if math.Abs(mean) > 1e-9 {
			t.Errorf("column %d mean = %v, want 0", j, mean)
		}

		var variance float64
		for i := range scaled {
			variance += scaled[i][j] * scaled[i][j]
		}
		variance /= float64(len(scaled))
		if math.Abs(variance-1) > 1e-9 {
			t.Errorf("column %d variance = %v, want 1", j, variance)
		}
	}
}

func TestScalerZeroVarianceColumn(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{5, 1}, {5, 2}, {5, 3}}
	s := NewScaler()
	scaled, err := s.FitTransform(rows)
	if err != nil {
		t.Fatalf("FitTransform: %v", err)
	}
	// Constant column passes through centered, not NaN.
	for i := range scaled {
		if math.IsNaN(scaled[i][0]) || scaled[i][0] != 0 {
			t.Errorf("row %d constant column = %v, want 0", i, scaled[i][0])
		}
	}
}

func TestScalerTransformReusesFittedStats(t *testing.T) {
	t.Parallel()

	s := NewScaler()
	if err := s.Fit([][]float64{{0, 0}, {10, 10}}); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	out := s.Transform([]float64{5, 5})
	if out[0] != 0 || out[1] != 0 {
		t.Errorf("Transform at mean = %v, want zeros", out)
	}
}

func TestExtractorWidth(t *testing.T) {
	t.Parallel()

	texts := []string{
		"kargo çok geç geldi teslimat gecikti",
		"kargo firması aramadı teslimat yapılmadı",
		"ürün bozuk geldi iade istiyorum",
	}
	e := NewExtractor(0, 1, 1.0)
	vectors, err := e.FitTransform(texts)
	if err != nil {
		t.Fatalf("FitTransform: %v", err)
	}

	want := e.Vectorizer.VocabularySize() + 2
	if got := e.Width(); got != want {
		t.Fatalf("Width() = %d, want %d", got, want)
	}
	for i, vec := range vectors {
		if max := vec.MaxIndex(); max >= want {
			t.Errorf("row %d max index %d exceeds width %d", i, max, want)
		}
	}
}

func TestExtractorTransformMatchesFittedWidth(t *testing.T) {
	t.Parallel()

	texts := []string{
		"kargo gecikti teslimat yapılmadı",
		"ürün bozuk çıktı değişim istiyorum",
		"fatura kesilmedi ödeme alındı",
	}
	e := NewExtractor(0, 1, 1.0)
	if _, err := e.FitTransform(texts); err != nil {
		t.Fatalf("FitTransform: %v", err)
	}

	vec := e.Transform("kargo yine gecikti, üstelik fatura da yanlış")
	if max := vec.MaxIndex(); max >= e.Width() {
		t.Errorf("max index %d exceeds width %d", max, e.Width())
	}
}

func TestVectorDot(t *testing.T) {
	t.Parallel()

	var v Vector
	v.Set(0, 2)
	v.Set(3, 0.5)
	weights := []float64{1, 10, 10, 4}
	if got := v.Dot(weights); got != 4 {
		t.Errorf("Dot = %v, want 4", got)
	}
}

func TestVectorSetSkipsZero(t *testing.T) {
	t.Parallel()

	var v Vector
	v.Set(1, 0)
	v.Set(2, 1)
	if len(v.Indices) != 1 || v.Indices[0] != 2 {
		t.Errorf("indices = %v, want [2]", v.Indices)
	}
}
