// Package predictor serves category predictions for complaint texts, backed
// by either a trained model bundle or the keyword-based stub fallback.
package predictor

import (
	"github.com/complaintiq/classifier/internal/artifact"
	"github.com/complaintiq/classifier/internal/categorizer"
	"github.com/complaintiq/classifier/internal/domain"
	"github.com/complaintiq/classifier/internal/textnorm"
)

// Predictor produces a category distribution for one complaint text. The
// text has already passed boundary validation.
type Predictor interface {
	// Predict classifies text and returns the full result.
	Predict(text string) domain.PredictionResult
	// Trained reports whether predictions come from a fitted model.
	Trained() bool
	// Categories returns the label set in prediction output order.
	Categories() []string
}

// TrainedPredictor wraps a loaded model bundle. It is immutable and safe for
// concurrent use.
type TrainedPredictor struct {
	bundle *artifact.Bundle
}

// NewTrainedPredictor creates a predictor over a loaded bundle.
func NewTrainedPredictor(bundle *artifact.Bundle) *TrainedPredictor {
	return &TrainedPredictor{bundle: bundle}
}

// Predict runs the feature pipeline and classifier over text.
func (p *TrainedPredictor) Predict(text string) domain.PredictionResult {
	vec := p.bundle.Extractor.Transform(text)
	probs := p.bundle.Classifier.PredictProba(vec)

	classes := p.bundle.Classifier.Classes
	all := make(map[string]float64, len(classes))
	best := 0
	for i, class := range classes {
		all[class] = probs[i]
		if probs[i] > probs[best] {
			best = i
		}
	}
	return domain.PredictionResult{
		Prediction:       classes[best],
		Confidence:       probs[best],
		AllProbabilities: all,
		TextLength:       len([]rune(text)),
		WordCount:        textnorm.WordCount(text),
	}
}

// Trained always reports true.
func (p *TrainedPredictor) Trained() bool { return true }

// Categories returns the classifier's label set.
func (p *TrainedPredictor) Categories() []string {
	return p.bundle.Classifier.Classes
}

// Bundle exposes the underlying bundle for metadata reporting.
func (p *TrainedPredictor) Bundle() *artifact.Bundle { return p.bundle }

// stubConfidence is the fixed probability the stub assigns to its fallback
// category; the remainder is spread uniformly over the other categories.
const stubConfidence = 0.8

// StubPredictor answers with a fixed distribution when no trained model is
// available. It keeps the service responding in degraded mode rather than
// failing requests.
type StubPredictor struct {
	categories []string
	fallback   string
}

// NewStubPredictor creates the default stub over the full category taxonomy,
// centered on the shipping-delay category.
func NewStubPredictor() *StubPredictor {
	return &StubPredictor{
		categories: categorizer.CategoryNames(),
		fallback:   categorizer.CategoryShippingDelay,
	}
}

// Predict returns the fixed stub distribution regardless of text content.
func (p *StubPredictor) Predict(text string) domain.PredictionResult {
	rest := (1 - stubConfidence) / float64(len(p.categories)-1)
	all := make(map[string]float64, len(p.categories))
	for _, c := range p.categories {
		if c == p.fallback {
			all[c] = stubConfidence
		} else {
			all[c] = rest
		}
	}
	return domain.PredictionResult{
		Prediction:       p.fallback,
		Confidence:       stubConfidence,
		AllProbabilities: all,
		TextLength:       len([]rune(text)),
		WordCount:        textnorm.WordCount(text),
	}
}

// Trained always reports false.
func (p *StubPredictor) Trained() bool { return false }

// Categories returns the taxonomy label set.
func (p *StubPredictor) Categories() []string { return p.categories }
