// Package model implements the multinomial logistic regression classifier
// and its training and evaluation machinery.
package model

import (
	"math"
	"sort"

	"github.com/complaintiq/classifier/internal/features"
)

// TrainConfig holds the optimizer settings for one training run. Fitting is
// fully deterministic: weights start at zero and full-batch descent has no
// random component.
type TrainConfig struct {
	MaxIterations int
	LearningRate  float64
	L2Penalty     float64
}

// convergenceTolerance stops gradient descent early once the largest
// per-epoch weight update falls below it.
const convergenceTolerance = 1e-6

// Classifier is a fitted multinomial logistic regression model. Weights are
// laid out one dense row per class over the fused feature space. The struct
// is immutable after training and safe for concurrent prediction.
type Classifier struct {
	Classes      []string    `json:"classes"`
	Weights      [][]float64 `json:"weights"`
	Bias         []float64   `json:"bias"`
	FeatureCount int         `json:"feature_count"`
}

// Fit trains a multinomial logistic regression with softmax output, L2
// penalty, and balanced class weighting using full-batch gradient descent.
// The label order of the returned classifier is the sorted distinct label
// set, matching the order of PredictProba outputs.
func Fit(vectors []features.Vector, labels []string, width int, cfg TrainConfig) *Classifier {
	classes := distinctSorted(labels)
	k := len(classes)
	n := len(vectors)

	classIndex := make(map[string]int, k)
	for i, c := range classes {
		classIndex[c] = i
	}
	y := make([]int, n)
	counts := make([]float64, k)
	for i, label := range labels {
		y[i] = classIndex[label]
		counts[y[i]]++
	}

	// Balanced class weights: n / (k * n_c).
	sampleWeight := make([]float64, n)
	var weightSum float64
	for i := range vectors {
		sampleWeight[i] = float64(n) / (float64(k) * counts[y[i]])
		weightSum += sampleWeight[i]
	}

	clf := &Classifier{
		Classes:      classes,
		Weights:      make([][]float64, k),
		Bias:         make([]float64, k),
		FeatureCount: width,
	}
	for c := range clf.Weights {
		clf.Weights[c] = make([]float64, width)
	}

	lambda := 0.0
	if cfg.L2Penalty > 0 {
		lambda = 1.0 / cfg.L2Penalty
	}

	gradW := make([][]float64, k)
	for c := range gradW {
		gradW[c] = make([]float64, width)
	}
	gradB := make([]float64, k)
	probs := make([]float64, k)

	lr := cfg.LearningRate
	for iter := 0; iter < cfg.MaxIterations; iter++ {
		for c := range gradW {
			for j := range gradW[c] {
				gradW[c][j] = 0
			}
			gradB[c] = 0
		}

		for i := range vectors {
			clf.softmax(&vectors[i], probs)
			for c := 0; c < k; c++ {
				diff := probs[c]
				if c == y[i] {
					diff -= 1
				}
				diff *= sampleWeight[i]
				row := gradW[c]
				for p, idx := range vectors[i].Indices {
					row[idx] += diff * vectors[i].Values[p]
				}
				gradB[c] += diff
			}
		}

		// Average over effective sample weight, add L2 term, step.
		var maxStep float64
		scale := lr / weightSum
		for c := 0; c < k; c++ {
			row := clf.Weights[c]
			grad := gradW[c]
			for j := 0; j < width; j++ {
				step := scale * (grad[j] + lambda*row[j]/float64(n))
				row[j] -= step
				if s := math.Abs(step); s > maxStep {
					maxStep = s
				}
			}
			clf.Bias[c] -= scale * gradB[c]
		}

		if maxStep < convergenceTolerance {
			break
		}
	}

	return clf
}

// softmax fills out with the class probability distribution for v.
func (c *Classifier) softmax(v *features.Vector, out []float64) {
	maxLogit := math.Inf(-1)
	for i := range c.Classes {
		out[i] = v.Dot(c.Weights[i]) + c.Bias[i]
		if out[i] > maxLogit {
			maxLogit = out[i]
		}
	}
	var sum float64
	for i := range out {
		out[i] = math.Exp(out[i] - maxLogit)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
}

// PredictProba returns the probability distribution over Classes, in class
// order. The returned values sum to 1 up to floating point error.
func (c *Classifier) PredictProba(v features.Vector) []float64 {
	probs := make([]float64, len(c.Classes))
	c.softmax(&v, probs)
	return probs
}

// Predict returns the arg-max class label for v.
func (c *Classifier) Predict(v features.Vector) string {
	probs := c.PredictProba(v)
	best := 0
	for i := 1; i < len(probs); i++ {
		if probs[i] > probs[best] {
			best = i
		}
	}
	return c.Classes[best]
}

func distinctSorted(labels []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	sort.Strings(out)
	return out
}
