package features

// Vector is a sparse feature vector: parallel slices of column indices
// (strictly increasing) and their values. Absent columns are zero.
type Vector struct {
	Indices []int     `json:"indices"`
	Values  []float64 `json:"values"`
}

// Set appends a column value. Callers must append in increasing index order.
func (v *Vector) Set(index int, value float64) {
	if value == 0 {
		return
	}
	v.Indices = append(v.Indices, index)
	v.Values = append(v.Values, value)
}

// Dot computes the dot product with a dense weight row.
func (v *Vector) Dot(weights []float64) float64 {
	var sum float64
	for i, idx := range v.Indices {
		if idx < len(weights) {
			sum += v.Values[i] * weights[idx]
		}
	}
	return sum
}

// MaxIndex returns the largest column index in the vector, or -1 when empty.
func (v *Vector) MaxIndex() int {
	if len(v.Indices) == 0 {
		return -1
	}
	return v.Indices[len(v.Indices)-1]
}
