// Package artifact persists and restores trained model state as a set of
// co-located JSON files: vectorizer, scaler, classifier, and metadata.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/complaintiq/classifier/internal/domain"
	"github.com/complaintiq/classifier/internal/features"
	"github.com/complaintiq/classifier/internal/logger"
	"github.com/complaintiq/classifier/internal/model"
)

// Artifact file names within the store directory. All four files are written
// and read together; a partial set is treated as missing.
const (
	vectorizerFile = "tfidf_vectorizer.json"
	scalerFile     = "feature_scaler.json"
	classifierFile = "classifier.json"
	metadataFile   = "metadata.json"
)

// TrainingInfo records which components a saved model carries.
type TrainingInfo struct {
	IsTrained     bool `json:"is_trained"`
	HasVectorizer bool `json:"has_vectorizer"`
	HasScaler     bool `json:"has_scaler"`
}

// Metadata describes a saved model: its type, label set, feature width, and
// the evaluation report from the run that produced it.
type Metadata struct {
	ModelType    string                 `json:"model_type"`
	Categories   []string               `json:"categories"`
	FeatureCount int                    `json:"feature_count"`
	TrainingInfo TrainingInfo           `json:"training_info"`
	Result       *domain.TrainingResult `json:"training_result,omitempty"`
}

// Bundle is a complete loaded model: feature pipeline, classifier, and
// metadata, all consistent with each other.
type Bundle struct {
	Extractor  *features.Extractor
	Classifier *model.Classifier
	Metadata   Metadata
}

// Store reads and writes model bundles under a base directory. Saves are
// atomic: files are written to a temporary sibling directory and moved into
// place with a rename, so a reader never observes a partial bundle.
type Store struct {
	dir string
	log logger.Logger
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string, log logger.Logger) *Store {
	return &Store{dir: dir, log: log}
}

// Dir returns the store's base directory.
func (s *Store) Dir() string { return s.dir }

// Save persists the bundle. The previous bundle, if any, is replaced only
// after every file of the new one has been written successfully.
func (s *Store) Save(bundle *Bundle) error {
	parent := filepath.Dir(s.dir)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("creating artifact parent directory: %w", err)
	}
	tmp, err := os.MkdirTemp(parent, ".artifact-*")
	if err != nil {
		return fmt.Errorf("creating temporary artifact directory: %w", err)
	}
	defer os.RemoveAll(tmp)

	parts := []struct {
		name string
		data any
	}{
		{vectorizerFile, bundle.Extractor.Vectorizer},
		{scalerFile, bundle.Extractor.Scaler},
		{classifierFile, bundle.Classifier},
		{metadataFile, bundle.Metadata},
	}
	for _, part := range parts {
		if err := writeJSON(filepath.Join(tmp, part.name), part.data); err != nil {
			return fmt.Errorf("writing %s: %w", part.name, err)
		}
	}

	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("removing previous artifact: %w", err)
	}
	if err := os.Rename(tmp, s.dir); err != nil {
		return fmt.Errorf("installing artifact: %w", err)
	}
	s.log.Info("model artifact saved",
		logger.String("dir", s.dir),
		logger.Int("feature_count", bundle.Metadata.FeatureCount),
		logger.Int("categories", len(bundle.Metadata.Categories)),
	)
	return nil
}

// Load reads a complete bundle from the store directory. A missing or
// unreadable file yields a MissingArtifactError; a classifier whose expected
// width disagrees with the feature pipeline yields a
// FeatureDimensionMismatchError.
func (s *Store) Load() (*Bundle, error) {
	var (
		vectorizer features.Vectorizer
		scaler     features.Scaler
		classifier model.Classifier
		metadata   Metadata
	)
	parts := []struct {
		name string
		into any
	}{
		{vectorizerFile, &vectorizer},
		{scalerFile, &scaler},
		{classifierFile, &classifier},
		{metadataFile, &metadata},
	}
	for _, part := range parts {
		path := filepath.Join(s.dir, part.name)
		if err := readJSON(path, part.into); err != nil {
			return nil, &domain.MissingArtifactError{Path: path, Err: err}
		}
	}

	extractor := &features.Extractor{Vectorizer: &vectorizer, Scaler: &scaler}
	if got := extractor.Width(); got != classifier.FeatureCount {
		return nil, &domain.FeatureDimensionMismatchError{
			Expected: classifier.FeatureCount,
			Actual:   got,
		}
	}
	if metadata.FeatureCount != classifier.FeatureCount {
		return nil, &domain.FeatureDimensionMismatchError{
			Expected: classifier.FeatureCount,
			Actual:   metadata.FeatureCount,
		}
	}

	s.log.Info("model artifact loaded",
		logger.String("dir", s.dir),
		logger.Int("feature_count", classifier.FeatureCount),
	)
	return &Bundle{
		Extractor:  extractor,
		Classifier: &classifier,
		Metadata:   metadata,
	}, nil
}

func writeJSON(path string, data any) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

func readJSON(path string, into any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, into)
}
