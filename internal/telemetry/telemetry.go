// Package telemetry provides OpenTelemetry instrumentation for the
// complaint classifier service. It exports Prometheus metrics and provides
// tracing capabilities.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "complaint-classifier"

// Metrics holds all classifier Prometheus metrics
type Metrics struct {
	// Prediction metrics
	PredictionsTotal   *prometheus.CounterVec
	PredictionsFailed  *prometheus.CounterVec
	PredictionDuration *prometheus.HistogramVec
	BatchSize          prometheus.Histogram
	PredictedCategory  *prometheus.CounterVec

	// Keyword categorizer metrics
	KeywordMatchDuration prometheus.Histogram
	KeywordsMatched      prometheus.Counter
	UnknownCategoryTotal prometheus.Counter

	// Dataset metrics
	RecordsCollected *prometheus.CounterVec
	DatasetSize      prometheus.Gauge

	// Training metrics
	TrainingRuns     *prometheus.CounterVec
	TrainingDuration prometheus.Histogram
	ModelAccuracy    prometheus.Gauge
	ModelTrained     prometheus.Gauge
}

// Provider wraps telemetry providers
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	m := &Metrics{}
	initPredictionMetrics(m)
	initKeywordMetrics(m)
	initDatasetMetrics(m)
	initTrainingMetrics(m)
	return m
}

func initPredictionMetrics(m *Metrics) {
	m.PredictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "classifier_predictions_total",
		Help: "Total complaint texts successfully classified",
	}, []string{"mode"})

	m.PredictionsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "classifier_predictions_failed_total",
		Help: "Total prediction requests rejected or failed",
	}, []string{"reason"})

	m.PredictionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "classifier_prediction_duration_seconds",
		Help:    "Time to classify a single complaint text",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"mode"})

	m.BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "classifier_batch_size",
		Help:    "Number of texts per batch prediction request",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 200, 500},
	})

	m.PredictedCategory = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "classifier_predicted_category_total",
		Help: "Predictions by resulting category",
	}, []string{"category"})
}

func initKeywordMetrics(m *Metrics) {
	m.KeywordMatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "classifier_keyword_match_duration_seconds",
		Help:    "Time spent in keyword matching (Aho-Corasick)",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
	})

	m.KeywordsMatched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "classifier_keywords_matched_total",
		Help: "Total keyword hits across categorizations",
	})

	m.UnknownCategoryTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "classifier_unknown_category_total",
		Help: "Categorizations that matched no keyword",
	})
}

func initDatasetMetrics(m *Metrics) {
	m.RecordsCollected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "classifier_records_collected_total",
		Help: "Complaint records appended to the dataset",
	}, []string{"source"})

	m.DatasetSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "classifier_dataset_size",
		Help: "Deduplicated records available for training",
	})
}

func initTrainingMetrics(m *Metrics) {
	m.TrainingRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "classifier_training_runs_total",
		Help: "Training runs by outcome",
	}, []string{"outcome"})

	m.TrainingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "classifier_training_duration_seconds",
		Help:    "Wall-clock duration of a full training run",
		Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300},
	})

	m.ModelAccuracy = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "classifier_model_test_accuracy",
		Help: "Held-out accuracy of the active trained model",
	})

	m.ModelTrained = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "classifier_model_trained",
		Help: "1 when the active predictor is a trained model, 0 in stub mode",
	})
}

// RecordPrediction records metrics for a single classification
func (p *Provider) RecordPrediction(ctx context.Context, mode, category string, duration time.Duration) {
	p.Metrics.PredictionsTotal.WithLabelValues(mode).Inc()
	p.Metrics.PredictionDuration.WithLabelValues(mode).Observe(duration.Seconds())
	p.Metrics.PredictedCategory.WithLabelValues(category).Inc()
}

// RecordPredictionFailure records a rejected or failed prediction
func (p *Provider) RecordPredictionFailure(ctx context.Context, reason string) {
	p.Metrics.PredictionsFailed.WithLabelValues(reason).Inc()
}

// RecordKeywordMatch records keyword categorizer metrics
func (p *Provider) RecordKeywordMatch(ctx context.Context, duration time.Duration, hits int) {
	p.Metrics.KeywordMatchDuration.Observe(duration.Seconds())
	p.Metrics.KeywordsMatched.Add(float64(hits))
	if hits == 0 {
		p.Metrics.UnknownCategoryTotal.Inc()
	}
}

// RecordCollection records a dataset append
func (p *Provider) RecordCollection(ctx context.Context, source string, datasetSize int) {
	p.Metrics.RecordsCollected.WithLabelValues(source).Inc()
	p.Metrics.DatasetSize.Set(float64(datasetSize))
}

// RecordTraining records the outcome of a training run
func (p *Provider) RecordTraining(ctx context.Context, outcome string, duration time.Duration, accuracy float64) {
	p.Metrics.TrainingRuns.WithLabelValues(outcome).Inc()
	p.Metrics.TrainingDuration.Observe(duration.Seconds())
	if outcome == "success" {
		p.Metrics.ModelAccuracy.Set(accuracy)
	}
}

// RecordBatchSize records the size of a batch prediction request
func (p *Provider) RecordBatchSize(size int) {
	p.Metrics.BatchSize.Observe(float64(size))
}

// SetModelTrained flags whether the active predictor is a trained model
func (p *Provider) SetModelTrained(trained bool) {
	if trained {
		p.Metrics.ModelTrained.Set(1)
	} else {
		p.Metrics.ModelTrained.Set(0)
	}
}

// StartSpan starts a new trace span.
// The caller is responsible for ending the span with span.End().
func (p *Provider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return p.Tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}
