package model

import (
	"math"
	"time"

	"github.com/complaintiq/classifier/internal/config"
	"github.com/complaintiq/classifier/internal/domain"
	"github.com/complaintiq/classifier/internal/features"
	"github.com/complaintiq/classifier/internal/logger"
)

// Trainer runs the full train/evaluate cycle: stratified hold-out split,
// model fitting, held-out evaluation, and cross-validation on the training
// portion.
type Trainer struct {
	cfg config.ModelConfig
	log logger.Logger
}

// NewTrainer builds a Trainer from the model configuration.
func NewTrainer(cfg config.ModelConfig, log logger.Logger) *Trainer {
	return &Trainer{cfg: cfg, log: log}
}

// Train fits a classifier on the given feature vectors and labels and
// returns it with its evaluation report. The input must contain at least two
// distinct labels with two samples each.
func (t *Trainer) Train(vectors []features.Vector, labels []string, width int) (*Classifier, *domain.TrainingResult, error) {
	trainIdx, testIdx, err := StratifiedSplit(labels, t.cfg.TestFraction, t.cfg.TrainSeed)
	if err != nil {
		return nil, nil, err
	}
	t.log.Info("training split prepared",
		logger.Int("train_size", len(trainIdx)),
		logger.Int("test_size", len(testIdx)),
	)

	trainVecs, trainLabels := subset(vectors, labels, trainIdx)
	testVecs, testLabels := subset(vectors, labels, testIdx)

	trainCfg := TrainConfig{
		MaxIterations: t.cfg.MaxIterations,
		LearningRate:  t.cfg.LearningRate,
		L2Penalty:     t.cfg.L2Penalty,
	}
	clf := Fit(trainVecs, trainLabels, width, trainCfg)

	predicted := make([]string, len(testVecs))
	for i := range testVecs {
		predicted[i] = clf.Predict(testVecs[i])
	}
	ev := Evaluate(testLabels, predicted)

	cvMean, cvStd, cvFolds, err := t.crossValidate(trainVecs, trainLabels, width, trainCfg)
	if err != nil {
		return nil, nil, err
	}

	result := &domain.TrainingResult{
		TestAccuracy:      ev.Accuracy,
		CVMean:            cvMean,
		CVStd:             cvStd,
		CVFolds:           cvFolds,
		PrecisionWeighted: ev.PrecisionWeighted,
		RecallWeighted:    ev.RecallWeighted,
		F1Weighted:        ev.F1Weighted,
		ConfusionMatrix:   ev.ConfusionMatrix,
		Labels:            ev.Labels,
		TrainSize:         len(trainIdx),
		TestSize:          len(testIdx),
		TrainedAt:         time.Now().UTC(),
	}
	t.log.Info("model trained",
		logger.Float64("test_accuracy", result.TestAccuracy),
		logger.Float64("cv_mean", result.CVMean),
		logger.Float64("f1_weighted", result.F1Weighted),
	)
	return clf, result, nil
}

// crossValidate runs stratified k-fold cross-validation and returns the mean
// and standard deviation of the per-fold accuracies, plus the fold count
// actually used — StratifiedKFold shrinks it when a class is too small.
func (t *Trainer) crossValidate(vectors []features.Vector, labels []string, width int, trainCfg TrainConfig) (mean, std float64, folds int, err error) {
	foldSets, err := StratifiedKFold(labels, t.cfg.CVFolds, t.cfg.TrainSeed)
	if err != nil {
		return 0, 0, 0, err
	}
	folds = len(foldSets)
	if folds < t.cfg.CVFolds {
		t.log.Warn("cross-validation folds reduced",
			logger.Int("requested", t.cfg.CVFolds),
			logger.Int("used", folds),
		)
	}

	scores := make([]float64, 0, len(foldSets))
	inFold := make([]bool, len(labels))
	for _, fold := range foldSets {
		for i := range inFold {
			inFold[i] = false
		}
		for _, idx := range fold {
			inFold[idx] = true
		}
		var trainIdx []int
		for i := range labels {
			if !inFold[i] {
				trainIdx = append(trainIdx, i)
			}
		}

		foldVecs, foldLabels := subset(vectors, labels, trainIdx)
		clf := Fit(foldVecs, foldLabels, width, trainCfg)

		correct := 0
		for _, idx := range fold {
			if clf.Predict(vectors[idx]) == labels[idx] {
				correct++
			}
		}
		scores = append(scores, float64(correct)/float64(len(fold)))
	}

	for _, s := range scores {
		mean += s
	}
	mean /= float64(len(scores))
	for _, s := range scores {
		std += (s - mean) * (s - mean)
	}
	std = math.Sqrt(std / float64(len(scores)))
	return mean, std, folds, nil
}

func subset(vectors []features.Vector, labels []string, idx []int) ([]features.Vector, []string) {
	vecs := make([]features.Vector, len(idx))
	lbls := make([]string, len(idx))
	for i, j := range idx {
		vecs[i] = vectors[j]
		lbls[i] = labels[j]
	}
	return vecs, lbls
}
