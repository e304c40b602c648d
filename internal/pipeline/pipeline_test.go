package pipeline

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/complaintiq/classifier/internal/artifact"
	"github.com/complaintiq/classifier/internal/categorizer"
	"github.com/complaintiq/classifier/internal/config"
	"github.com/complaintiq/classifier/internal/dataset"
	"github.com/complaintiq/classifier/internal/domain"
	"github.com/complaintiq/classifier/internal/logger"
	"github.com/complaintiq/classifier/internal/predictor"
)

func newTestPipeline(t *testing.T) (*Pipeline, *predictor.Service, *config.Config) {
	t.Helper()

	cfg := config.Default()
	cfg.Model.ArtifactDir = filepath.Join(t.TempDir(), "models")
	cfg.Model.MinDocFreq = 1

	log := logger.NewNop()
	service := predictor.NewService(predictor.NewStubPredictor(), cfg, log)
	pipe := New(
		cfg,
		log,
		dataset.NewLog(),
		categorizer.NewDefaultCategorizer(),
		categorizer.NewTaxonomyMapper(),
		artifact.NewStore(cfg.Model.ArtifactDir, log),
		service,
	)
	return pipe, service, cfg
}

func seedTrainingData(t *testing.T, pipe *Pipeline) {
	t.Helper()

	shipping := []string{
		"kargo gecikti teslimat yapılmadı bekliyorum",
		"kargo günlerdir gecikti teslimat edilmedi",
		"kargo paketim gecikti teslimat çok yavaş",
		"kargo siparişim gecikti teslimat gelmedi",
	}
	returns := []string{
		"iade talebim reddedildi param gelmedi",
		"iade süreci uzadı param iade edilmedi",
		"iade başvurum sonuçsuz param yatmadı",
		"iade işlemi yapılmadı param bekliyor",
	}
	for _, text := range shipping {
		if _, err := pipe.Collect(text, categorizer.CategoryShippingDelay, "test"); err != nil {
			t.Fatalf("Collect: %v", err)
		}
	}
	for _, text := range returns {
		if _, err := pipe.Collect(text, categorizer.CategoryReturnExchange, "test"); err != nil {
			t.Fatalf("Collect: %v", err)
		}
	}
}

func TestCollectValidatesBounds(t *testing.T) {
	t.Parallel()

	pipe, _, _ := newTestPipeline(t)
	if _, err := pipe.Collect("kısa", "", "test"); !domain.IsValidationError(err) {
		t.Errorf("short text error = %v, want ValidationError", err)
	}
	long := strings.Repeat("a", 2001)
	if _, err := pipe.Collect(long, "", "test"); !domain.IsValidationError(err) {
		t.Errorf("long text error = %v, want ValidationError", err)
	}
	if _, err := pipe.Collect(strings.Repeat(" ", 15), "", "test"); !domain.IsValidationError(err) {
		t.Errorf("whitespace-only text error = %v, want ValidationError", err)
	}
	if _, err := pipe.Collect(strings.Repeat("?!.,", 5), "", "test"); !domain.IsValidationError(err) {
		t.Errorf("punctuation-only text error = %v, want ValidationError", err)
	}
}

func TestCollectAutoCategorizes(t *testing.T) {
	t.Parallel()

	pipe, _, _ := newTestPipeline(t)
	record, err := pipe.Collect("kargo çok geç geldi, teslimat gecikti", "", "api")
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if record.Category != categorizer.CategoryShippingDelay {
		t.Errorf("category = %q, want %q", record.Category, categorizer.CategoryShippingDelay)
	}
	if record.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0", record.Confidence)
	}
}

func TestCollectExpandsCoarseCategory(t *testing.T) {
	t.Parallel()

	pipe, _, _ := newTestPipeline(t)
	record, err := pipe.Collect("ürün kutusu ezik geldi, paket hasarlı", categorizer.CoarseProductQuality, "feed")
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if record.Category != categorizer.CategoryPackaging {
		t.Errorf("category = %q, want %q", record.Category, categorizer.CategoryPackaging)
	}
	// Supplied categories are trusted fully.
	if record.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0", record.Confidence)
	}
}

func TestTrainEmptyDataset(t *testing.T) {
	t.Parallel()

	pipe, _, _ := newTestPipeline(t)
	if _, err := pipe.Train(); !domain.IsTrainingDataInsufficient(err) {
		t.Errorf("error = %v, want TrainingDataInsufficientError", err)
	}
}

func TestTrainSingleClassKeepsStub(t *testing.T) {
	t.Parallel()

	pipe, service, _ := newTestPipeline(t)
	for _, text := range []string{
		"kargo gecikti teslimat yapılmadı",
		"kargo yine gecikti teslimat yok",
	} {
		if _, err := pipe.Collect(text, categorizer.CategoryShippingDelay, "test"); err != nil {
			t.Fatalf("Collect: %v", err)
		}
	}

	_, err := pipe.Train()
	if !domain.IsTrainingDataInsufficient(err) {
		t.Fatalf("error = %v, want TrainingDataInsufficientError", err)
	}
	// Failed training must not replace the active predictor.
	if service.Trained() {
		t.Error("failed training swapped in a trained predictor")
	}
}

func TestTrainSwapsAndPersists(t *testing.T) {
	t.Parallel()

	pipe, service, cfg := newTestPipeline(t)
	seedTrainingData(t, pipe)

	result, err := pipe.Train()
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if result.TrainSize == 0 || result.TestSize == 0 {
		t.Errorf("split sizes = %d/%d", result.TrainSize, result.TestSize)
	}
	if !service.Trained() {
		t.Fatal("service not trained after successful run")
	}

	// The artifact is loadable by a fresh pipeline into a fresh service.
	pipe2, service2, _ := newTestPipeline(t)
	pipe2.store = artifact.NewStore(cfg.Model.ArtifactDir, logger.NewNop())
	if _, err := pipe2.LoadSaved(); err != nil {
		t.Fatalf("LoadSaved: %v", err)
	}
	if !service2.Trained() {
		t.Error("restored service not trained")
	}

	prediction, err := service2.Predict("kargo yine gecikti teslimat bekliyorum")
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if prediction.Prediction != categorizer.CategoryShippingDelay {
		t.Errorf("prediction = %q, want %q", prediction.Prediction, categorizer.CategoryShippingDelay)
	}
}

func TestTrainExcludesUnknownRecords(t *testing.T) {
	t.Parallel()

	pipe, _, _ := newTestPipeline(t)
	seedTrainingData(t, pipe)
	// A record the keyword categorizer could not label.
	if _, err := pipe.Collect("bugün hava çok güzeldi diyebilirim", "", "test"); err != nil {
		t.Fatalf("Collect: %v", err)
	}

	texts, labels := pipe.trainingData()
	if len(texts) != 8 || len(labels) != 8 {
		t.Errorf("training data size = %d/%d, want 8 (unknown excluded)", len(texts), len(labels))
	}
	for _, label := range labels {
		if label == domain.CategoryUnknown {
			t.Errorf("unknown label leaked into training data")
		}
	}
}
