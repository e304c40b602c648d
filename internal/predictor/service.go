package predictor

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/complaintiq/classifier/internal/config"
	"github.com/complaintiq/classifier/internal/domain"
	"github.com/complaintiq/classifier/internal/logger"
	"github.com/complaintiq/classifier/internal/textnorm"
)

// Service answers prediction requests against the currently active
// predictor. The active predictor is swapped atomically after a successful
// training run; in-flight requests keep the predictor they started with.
type Service struct {
	active        atomic.Pointer[predictorSlot]
	minTextLength int
	maxTextLength int
	concurrency   int
	log           logger.Logger
}

// predictorSlot wraps the interface so it fits behind one atomic pointer.
type predictorSlot struct {
	p Predictor
}

// NewService creates a Service with the given initial predictor, typically a
// StubPredictor until a trained model is loaded.
func NewService(initial Predictor, cfg *config.Config, log logger.Logger) *Service {
	s := &Service{
		minTextLength: cfg.Model.MinTextLength,
		maxTextLength: cfg.Model.MaxTextLength,
		concurrency:   cfg.Service.Concurrency,
		log:           log,
	}
	s.active.Store(&predictorSlot{p: initial})
	return s
}

// Swap installs p as the active predictor. Requests already running continue
// on the previous one.
func (s *Service) Swap(p Predictor) {
	s.active.Store(&predictorSlot{p: p})
	s.log.Info("active predictor swapped", logger.Bool("trained", p.Trained()))
}

// Active returns the currently active predictor.
func (s *Service) Active() Predictor {
	return s.active.Load().p
}

// Trained reports whether the active predictor is a fitted model.
func (s *Service) Trained() bool {
	return s.Active().Trained()
}

// Predict validates text and classifies it with the active predictor. Texts
// outside the configured length bounds are rejected with a ValidationError
// before any feature work runs.
func (s *Service) Predict(text string) (domain.PredictionResult, error) {
	if err := s.validate(text); err != nil {
		return domain.PredictionResult{}, err
	}
	return s.Active().Predict(text), nil
}

// PredictBatch classifies texts concurrently with a worker pool and returns
// one item per input in request order. Invalid texts yield per-item errors
// without failing the batch. The whole batch runs against the predictor that
// was active when the call started.
func (s *Service) PredictBatch(ctx context.Context, texts []string) []domain.BatchPredictionItem {
	items := make([]domain.BatchPredictionItem, len(texts))
	if len(texts) == 0 {
		return items
	}

	p := s.Active()
	start := time.Now()

	workers := s.concurrency
	if workers > len(texts) {
		workers = len(texts)
	}
	jobs := make(chan int, len(texts))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				items[idx] = s.predictOne(ctx, p, idx, texts[idx])
			}
		}()
	}
	for i := range texts {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	s.log.Debug("batch prediction complete",
		logger.Int("batch_size", len(texts)),
		logger.Int("workers", workers),
		logger.Duration("elapsed", time.Since(start)),
	)
	return items
}

func (s *Service) predictOne(ctx context.Context, p Predictor, idx int, text string) domain.BatchPredictionItem {
	item := domain.BatchPredictionItem{Index: idx}
	if err := ctx.Err(); err != nil {
		item.Error = err.Error()
		return item
	}
	if err := s.validate(text); err != nil {
		item.Error = err.Error()
		return item
	}
	result := p.Predict(text)
	item.Result = &result
	return item
}

func (s *Service) validate(text string) error {
	return ValidateText(text, s.minTextLength, s.maxTextLength)
}

// ValidateText enforces the length bounds on the whitespace-trimmed text and
// rejects input that normalizes to nothing, so whitespace- or
// punctuation-only texts never reach feature extraction.
func ValidateText(text string, minLength, maxLength int) error {
	n := len([]rune(strings.TrimSpace(text)))
	if n < minLength {
		return domain.NewValidationError("text too short: %d characters, minimum %d", n, minLength)
	}
	if n > maxLength {
		return domain.NewValidationError("text too long: %d characters, maximum %d", n, maxLength)
	}
	if textnorm.Normalize(text) == "" {
		return domain.NewValidationError("text contains no usable characters")
	}
	return nil
}
