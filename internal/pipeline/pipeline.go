// Package pipeline wires collection, training, persistence, and serving
// into the collect-and-train workflow.
package pipeline

import (
	"fmt"
	"sync"

	"github.com/complaintiq/classifier/internal/artifact"
	"github.com/complaintiq/classifier/internal/categorizer"
	"github.com/complaintiq/classifier/internal/config"
	"github.com/complaintiq/classifier/internal/dataset"
	"github.com/complaintiq/classifier/internal/domain"
	"github.com/complaintiq/classifier/internal/features"
	"github.com/complaintiq/classifier/internal/logger"
	"github.com/complaintiq/classifier/internal/model"
	"github.com/complaintiq/classifier/internal/predictor"
)

// modelType names the classifier family recorded in artifact metadata.
const modelType = "multinomial_logistic_regression"

// Pipeline owns the dataset, the keyword labeler, and the trained-model
// lifecycle. Collect labels and stores complaints; Train fits a model over
// the dataset snapshot and, on success, persists it and swaps it into the
// prediction service.
type Pipeline struct {
	cfg      *config.Config
	log      logger.Logger
	dataset  *dataset.Log
	keywords *categorizer.KeywordCategorizer
	taxonomy *categorizer.TaxonomyMapper
	store    *artifact.Store
	service  *predictor.Service

	trainMu sync.Mutex
}

// New builds a Pipeline over its collaborators.
func New(
	cfg *config.Config,
	log logger.Logger,
	data *dataset.Log,
	keywords *categorizer.KeywordCategorizer,
	taxonomy *categorizer.TaxonomyMapper,
	store *artifact.Store,
	service *predictor.Service,
) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		log:      log,
		dataset:  data,
		keywords: keywords,
		taxonomy: taxonomy,
		store:    store,
		service:  service,
	}
}

// Dataset returns the underlying record log.
func (p *Pipeline) Dataset() *dataset.Log { return p.dataset }

// Collect validates and stores one complaint. When category is empty the
// keyword categorizer assigns one; a coarse external category is refined
// through the taxonomy mapper. The stored record is returned.
func (p *Pipeline) Collect(text, category, source string) (domain.ComplaintRecord, error) {
	if err := predictor.ValidateText(text, p.cfg.Model.MinTextLength, p.cfg.Model.MaxTextLength); err != nil {
		return domain.ComplaintRecord{}, err
	}

	confidence := 1.0
	if category == "" {
		category, confidence = p.keywords.Categorize(text)
	} else {
		category = p.taxonomy.Expand(text, category)
	}
	return p.dataset.Append(text, category, source, confidence), nil
}

// Label runs the keyword categorizer and taxonomy refinement over a text
// without storing anything.
func (p *Pipeline) Label(text string) (string, float64) {
	return p.keywords.Categorize(text)
}

// Train fits a model over the deduplicated dataset snapshot, evaluates it,
// persists the artifact, and swaps it into the prediction service. The
// active predictor is untouched when any step fails. Concurrent calls are
// serialized.
func (p *Pipeline) Train() (*domain.TrainingResult, error) {
	p.trainMu.Lock()
	defer p.trainMu.Unlock()

	texts, labels := p.trainingData()
	if len(texts) == 0 {
		return nil, domain.NewTrainingDataInsufficientError("dataset is empty")
	}
	p.log.Info("training started", logger.Int("samples", len(texts)))

	extractor := features.NewExtractor(
		p.cfg.Model.MaxFeatures,
		p.cfg.Model.MinDocFreq,
		p.cfg.Model.MaxDocFreq,
	)
	vectors, err := extractor.FitTransform(texts)
	if err != nil {
		return nil, fmt.Errorf("fitting feature extractor: %w", err)
	}

	trainer := model.NewTrainer(p.cfg.Model, p.log)
	clf, result, err := trainer.Train(vectors, labels, extractor.Width())
	if err != nil {
		return nil, err
	}

	bundle := &artifact.Bundle{
		Extractor:  extractor,
		Classifier: clf,
		Metadata: artifact.Metadata{
			ModelType:    modelType,
			Categories:   clf.Classes,
			FeatureCount: clf.FeatureCount,
			TrainingInfo: artifact.TrainingInfo{
				IsTrained:     true,
				HasVectorizer: true,
				HasScaler:     true,
			},
			Result: result,
		},
	}
	if err := p.store.Save(bundle); err != nil {
		return nil, fmt.Errorf("saving model artifact: %w", err)
	}

	p.service.Swap(predictor.NewTrainedPredictor(bundle))
	return result, nil
}

// LoadSaved restores the persisted bundle and swaps it into the prediction
// service. Returns the loaded bundle's metadata, or the load error when no
// usable artifact exists.
func (p *Pipeline) LoadSaved() (*artifact.Bundle, error) {
	bundle, err := p.store.Load()
	if err != nil {
		return nil, err
	}
	p.service.Swap(predictor.NewTrainedPredictor(bundle))
	return bundle, nil
}

// trainingData extracts the usable (text, label) pairs from the dataset
// snapshot. Records whose category is empty or unknown are excluded; coarse
// external categories are refined through the taxonomy mapper.
func (p *Pipeline) trainingData() (texts, labels []string) {
	skipped := 0
	for _, record := range p.dataset.Snapshot() {
		category := record.Category
		if category != "" {
			category = p.taxonomy.Expand(record.Text, category)
		}
		if category == "" || category == domain.CategoryUnknown {
			skipped++
			continue
		}
		texts = append(texts, record.Text)
		labels = append(labels, category)
	}
	if skipped > 0 {
		p.log.Warn("records excluded from training", logger.Int("skipped", skipped))
	}
	return texts, labels
}
