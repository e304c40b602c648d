package features

import (
	"errors"
	"math"
)

// Scaler standardizes numeric columns to zero mean and unit variance using
// statistics computed at fit time. Transform reuses the fitted mean and
// standard deviation verbatim; it never refits.
type Scaler struct {
	Mean []float64 `json:"mean"`
	Std  []float64 `json:"std"`
}

// NewScaler creates an unfitted scaler.
func NewScaler() *Scaler {
	return &Scaler{}
}

// Fit computes per-column mean and population standard deviation. Columns
// with zero variance scale by 1 so constant features pass through centered.
func (s *Scaler) Fit(rows [][]float64) error {
	if len(rows) == 0 {
		return errors.New("no rows to fit scaler")
	}

	cols := len(rows[0])
	s.Mean = make([]float64, cols)
	s.Std = make([]float64, cols)

	for _, row := range rows {
		for j := range row {
			s.Mean[j] += row[j]
		}
	}
	n := float64(len(rows))
	for j := range s.Mean {
		s.Mean[j] /= n
	}

	for _, row := range rows {
		for j := range row {
			d := row[j] - s.Mean[j]
			s.Std[j] += d * d
		}
	}
	for j := range s.Std {
		s.Std[j] = math.Sqrt(s.Std[j] / n)
		if s.Std[j] == 0 {
			s.Std[j] = 1
		}
	}

	return nil
}

// Transform standardizes one row with the fitted statistics.
func (s *Scaler) Transform(row []float64) []float64 {
	out := make([]float64, len(row))
	for j := range row {
		out[j] = (row[j] - s.Mean[j]) / s.Std[j]
	}
	return out
}

// FitTransform fits the scaler and standardizes all rows.
func (s *Scaler) FitTransform(rows [][]float64) ([][]float64, error) {
	if err := s.Fit(rows); err != nil {
		return nil, err
	}
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = s.Transform(row)
	}
	return out, nil
}

// Columns returns the number of fitted columns.
func (s *Scaler) Columns() int {
	return len(s.Mean)
}
