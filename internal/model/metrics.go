package model

// Evaluation aggregates held-out classification quality measures.
type Evaluation struct {
	Accuracy          float64
	PrecisionWeighted float64
	RecallWeighted    float64
	F1Weighted        float64
	ConfusionMatrix   [][]int
	Labels            []string
}

// Evaluate computes accuracy, support-weighted precision/recall/F1, and the
// confusion matrix over the union of true and predicted labels, sorted.
func Evaluate(trueLabels, predLabels []string) Evaluation {
	labels := distinctSorted(append(append([]string{}, trueLabels...), predLabels...))
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}

	matrix := make([][]int, len(labels))
	for i := range matrix {
		matrix[i] = make([]int, len(labels))
	}
	correct := 0
	for i := range trueLabels {
		matrix[index[trueLabels[i]]][index[predLabels[i]]]++
		if trueLabels[i] == predLabels[i] {
			correct++
		}
	}

	ev := Evaluation{
		ConfusionMatrix: matrix,
		Labels:          labels,
	}
	if len(trueLabels) > 0 {
		ev.Accuracy = float64(correct) / float64(len(trueLabels))
	}

	// Weighted averages: each class contributes its metric scaled by its
	// true-label support; classes with zero denominator contribute zero.
	total := float64(len(trueLabels))
	for i := range labels {
		tp := float64(matrix[i][i])
		var support, predicted float64
		for j := range labels {
			support += float64(matrix[i][j])
			predicted += float64(matrix[j][i])
		}
		if support == 0 {
			continue
		}
		var precision, recall float64
		if predicted > 0 {
			precision = tp / predicted
		}
		recall = tp / support

		var f1 float64
		if precision+recall > 0 {
			f1 = 2 * precision * recall / (precision + recall)
		}
		weight := support / total
		ev.PrecisionWeighted += weight * precision
		ev.RecallWeighted += weight * recall
		ev.F1Weighted += weight * f1
	}
	return ev
}
