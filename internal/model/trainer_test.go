package model

import (
	"testing"

	"github.com/complaintiq/classifier/internal/config"
	"github.com/complaintiq/classifier/internal/domain"
	"github.com/complaintiq/classifier/internal/features"
	"github.com/complaintiq/classifier/internal/logger"
)

func trainerData() ([]features.Vector, []string) {
	var vectors []features.Vector
	var labels []string
	for i := 0; i < 10; i++ {
		vectors = append(vectors, denseVector(1, 0))
		labels = append(labels, "kargo")
	}
	for i := 0; i < 10; i++ {
		vectors = append(vectors, denseVector(0, 1))
		labels = append(labels, "iade")
	}
	return vectors, labels
}

func TestTrainerProducesResult(t *testing.T) {
	t.Parallel()

	cfg := config.Default().Model
	trainer := NewTrainer(cfg, logger.NewNop())
	vectors, labels := trainerData()

	clf, result, err := trainer.Train(vectors, labels, 2)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if clf == nil {
		t.Fatal("nil classifier")
	}

	if result.TrainSize+result.TestSize != len(vectors) {
		t.Errorf("split sizes %d+%d != %d", result.TrainSize, result.TestSize, len(vectors))
	}
	// Trivially separable data must evaluate cleanly.
	if result.TestAccuracy != 1 {
		t.Errorf("test accuracy = %v, want 1", result.TestAccuracy)
	}
	if result.CVMean != 1 {
		t.Errorf("cv mean = %v, want 1", result.CVMean)
	}
	if result.CVFolds != cfg.CVFolds {
		t.Errorf("cv folds = %d, want %d", result.CVFolds, cfg.CVFolds)
	}
	if result.TrainedAt.IsZero() {
		t.Error("TrainedAt not set")
	}
	if len(result.Labels) != 2 {
		t.Errorf("labels = %v, want 2 entries", result.Labels)
	}
}

func TestTrainerReportsReducedFoldCount(t *testing.T) {
	t.Parallel()

	cfg := config.Default().Model
	trainer := NewTrainer(cfg, logger.NewNop())

	// 5 samples per class: the 80/20 split leaves 4 per class in the training
	// portion, so 5-fold CV shrinks to 4 folds.
	var vectors []features.Vector
	var labels []string
	for i := 0; i < 5; i++ {
		vectors = append(vectors, denseVector(1, 0))
		labels = append(labels, "kargo")
	}
	for i := 0; i < 5; i++ {
		vectors = append(vectors, denseVector(0, 1))
		labels = append(labels, "iade")
	}

	_, result, err := trainer.Train(vectors, labels, 2)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if result.CVFolds != 4 {
		t.Errorf("cv folds = %d, want 4", result.CVFolds)
	}
}

func TestTrainerRejectsSingleClass(t *testing.T) {
	t.Parallel()

	cfg := config.Default().Model
	trainer := NewTrainer(cfg, logger.NewNop())

	vectors := []features.Vector{denseVector(1), denseVector(1), denseVector(1)}
	labels := []string{"kargo", "kargo", "kargo"}
	_, _, err := trainer.Train(vectors, labels, 1)
	if !domain.IsTrainingDataInsufficient(err) {
		t.Errorf("error = %v, want TrainingDataInsufficientError", err)
	}
}
