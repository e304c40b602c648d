// Package domain contains the core types shared across the complaint
// classifier service.
package domain

import "time"

// ComplaintRecord is a single collected complaint. Records are immutable
// once appended to a dataset; Category may be filled in by the keyword
// categorizer when the source supplied none.
type ComplaintRecord struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	Category   string    `json:"category"`
	Confidence float64   `json:"confidence"`
	Source     string    `json:"source"`
	Timestamp  time.Time `json:"timestamp"`
}

// PredictionResult is the outcome of classifying one complaint text.
type PredictionResult struct {
	Prediction       string             `json:"prediction"`
	Confidence       float64            `json:"confidence"`
	AllProbabilities map[string]float64 `json:"all_probabilities"`
	TextLength       int                `json:"text_length"`
	WordCount        int                `json:"word_count"`
}

// BatchPredictionItem is one entry in a batch prediction response.
// Exactly one of Result or Error is set; Index preserves request order.
type BatchPredictionItem struct {
	Index  int               `json:"text_index"`
	Result *PredictionResult `json:"result,omitempty"`
	Error  string            `json:"error,omitempty"`
}
