package domain

import "time"

// TrainingResult summarizes one training run. It is produced once per run
// and read-only thereafter.
type TrainingResult struct {
	TestAccuracy      float64   `json:"test_accuracy"`
	CVMean            float64   `json:"cv_mean"`
	CVStd             float64   `json:"cv_std"`
	CVFolds           int       `json:"cv_folds"`
	PrecisionWeighted float64   `json:"precision_weighted"`
	RecallWeighted    float64   `json:"recall_weighted"`
	F1Weighted        float64   `json:"f1_weighted"`
	ConfusionMatrix   [][]int   `json:"confusion_matrix"`
	Labels            []string  `json:"labels"`
	TrainSize         int       `json:"train_size"`
	TestSize          int       `json:"test_size"`
	TrainedAt         time.Time `json:"trained_at"`
}
