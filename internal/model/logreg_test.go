package model

import (
	"math"
	"testing"

	"github.com/complaintiq/classifier/internal/features"
)

func denseVector(values ...float64) features.Vector {
	var v features.Vector
	for i, val := range values {
		v.Set(i, val)
	}
	return v
}

func separableData() ([]features.Vector, []string) {
	vectors := []features.Vector{
		denseVector(1, 0), denseVector(0.9, 0.1), denseVector(0.8, 0),
		denseVector(0, 1), denseVector(0.1, 0.9), denseVector(0, 0.8),
	}
	labels := []string{"kargo", "kargo", "kargo", "iade", "iade", "iade"}
	return vectors, labels
}

func testTrainConfig() TrainConfig {
	return TrainConfig{
		MaxIterations: 500,
		LearningRate:  0.5,
		L2Penalty:     1.0,
	}
}

func TestFitSeparableData(t *testing.T) {
	t.Parallel()

	vectors, labels := separableData()
	clf := Fit(vectors, labels, 2, testTrainConfig())

	for i, vec := range vectors {
		if got := clf.Predict(vec); got != labels[i] {
			t.Errorf("sample %d predicted %q, want %q", i, got, labels[i])
		}
	}
}

func TestFitClassesSorted(t *testing.T) {
	t.Parallel()

	vectors, labels := separableData()
	clf := Fit(vectors, labels, 2, testTrainConfig())

	if len(clf.Classes) != 2 || clf.Classes[0] != "iade" || clf.Classes[1] != "kargo" {
		t.Errorf("classes = %v, want sorted [iade kargo]", clf.Classes)
	}
	if clf.FeatureCount != 2 {
		t.Errorf("feature count = %d, want 2", clf.FeatureCount)
	}
}

func TestPredictProbaSumsToOne(t *testing.T) {
	t.Parallel()

	vectors, labels := separableData()
	clf := Fit(vectors, labels, 2, testTrainConfig())

	probs := clf.PredictProba(denseVector(0.5, 0.5))
	var sum float64
	for _, p := range probs {
		if p < 0 || p > 1 {
			t.Errorf("probability %v outside [0,1]", p)
		}
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("probabilities sum to %v, want 1", sum)
	}
}

func TestFitDeterministic(t *testing.T) {
	t.Parallel()

	vectors, labels := separableData()
	first := Fit(vectors, labels, 2, testTrainConfig())
	second := Fit(vectors, labels, 2, testTrainConfig())

	for c := range first.Weights {
		for j := range first.Weights[c] {
			if first.Weights[c][j] != second.Weights[c][j] {
				t.Fatalf("weights differ at [%d][%d]", c, j)
			}
		}
	}
}

func TestFitBalancedClassWeights(t *testing.T) {
	t.Parallel()

	// 8:2 imbalance; balanced weighting must still let the minority class
	// win its own region.
	var vectors []features.Vector
	var labels []string
	for i := 0; i < 8; i++ {
		vectors = append(vectors, denseVector(1, 0))
		labels = append(labels, "major")
	}
	for i := 0; i < 2; i++ {
		vectors = append(vectors, denseVector(0, 1))
		labels = append(labels, "minor")
	}

	clf := Fit(vectors, labels, 2, testTrainConfig())
	if got := clf.Predict(denseVector(0, 1)); got != "minor" {
		t.Errorf("minority region predicted %q, want %q", got, "minor")
	}
}
