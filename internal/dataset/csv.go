package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/complaintiq/classifier/internal/domain"
)

// CSV column names. Only "text" is required on import; "category" and
// "confidence" are used when present.
const (
	columnText       = "text"
	columnCategory   = "category"
	columnConfidence = "confidence"
	columnSource     = "source"
)

// ImportCSV reads complaint records from r and appends them to the log.
// The header must contain a "text" column; rows with an empty text cell are
// skipped. Returns the number of records appended.
func ImportCSV(r io.Reader, log *Log, defaultSource string) (int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return 0, domain.NewValidationError("reading CSV header: %v", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	textCol, ok := cols[columnText]
	if !ok {
		return 0, domain.NewValidationError("CSV is missing required column %q", columnText)
	}

	appended := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return appended, fmt.Errorf("reading CSV row: %w", err)
		}

		text := strings.TrimSpace(cell(row, textCol))
		if text == "" {
			continue
		}
		record := domain.ComplaintRecord{
			Text:   text,
			Source: defaultSource,
		}
		if i, ok := cols[columnCategory]; ok {
			record.Category = strings.TrimSpace(cell(row, i))
		}
		if i, ok := cols[columnConfidence]; ok {
			if v, err := strconv.ParseFloat(strings.TrimSpace(cell(row, i)), 64); err == nil {
				record.Confidence = v
			}
		}
		if i, ok := cols[columnSource]; ok {
			if s := strings.TrimSpace(cell(row, i)); s != "" {
				record.Source = s
			}
		}
		log.AppendRecord(record)
		appended++
	}
	return appended, nil
}

// ExportCSV writes the deduplicated snapshot of the log to w with a header
// row.
func ExportCSV(w io.Writer, log *Log) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{columnText, columnCategory, columnConfidence, columnSource}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, record := range log.Snapshot() {
		row := []string{
			record.Text,
			record.Category,
			strconv.FormatFloat(record.Confidence, 'f', -1, 64),
			record.Source,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
