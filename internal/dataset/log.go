// Package dataset collects labeled complaint records for training. Records
// accumulate in an append-only log; training reads a deduplicated snapshot.
package dataset

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/complaintiq/classifier/internal/domain"
)

// Log is an in-memory append-only record log. Appends never mutate or remove
// existing entries; duplicate texts are resolved at snapshot time with the
// earliest record winning.
type Log struct {
	mu      sync.RWMutex
	records []domain.ComplaintRecord
}

// NewLog creates an empty record log.
func NewLog() *Log {
	return &Log{}
}

// Append adds a record to the log and returns it with its assigned ID and
// timestamp. The caller's Category and Source are kept as given.
func (l *Log) Append(text, category, source string, confidence float64) domain.ComplaintRecord {
	record := domain.ComplaintRecord{
		ID:         uuid.NewString(),
		Text:       text,
		Category:   category,
		Confidence: confidence,
		Source:     source,
		Timestamp:  time.Now().UTC(),
	}
	l.mu.Lock()
	l.records = append(l.records, record)
	l.mu.Unlock()
	return record
}

// AppendRecord adds an already-formed record, assigning an ID and timestamp
// when absent. Used by the CSV importer.
func (l *Log) AppendRecord(record domain.ComplaintRecord) domain.ComplaintRecord {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}
	l.mu.Lock()
	l.records = append(l.records, record)
	l.mu.Unlock()
	return record
}

// Len returns the number of appended records, duplicates included.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Snapshot returns the deduplicated training view of the log in append
// order. When the same text was appended more than once, the first record
// wins and later ones are dropped.
func (l *Log) Snapshot() []domain.ComplaintRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	seen := make(map[string]bool, len(l.records))
	out := make([]domain.ComplaintRecord, 0, len(l.records))
	for _, record := range l.records {
		if seen[record.Text] {
			continue
		}
		seen[record.Text] = true
		out = append(out, record)
	}
	return out
}

// CategoryCounts returns per-category record counts over the deduplicated
// snapshot.
func (l *Log) CategoryCounts() map[string]int {
	counts := make(map[string]int)
	for _, record := range l.Snapshot() {
		counts[record.Category]++
	}
	return counts
}
