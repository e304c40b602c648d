package model

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/complaintiq/classifier/internal/domain"
)

// StratifiedSplit partitions sample indices into train and test sets while
// preserving per-class proportions. Every class must have at least two
// samples so that both sides receive at least one; otherwise a
// TrainingDataInsufficientError is returned.
func StratifiedSplit(labels []string, testFraction float64, seed int64) (train, test []int, err error) {
	byClass := groupByClass(labels)
	if len(byClass) < 2 {
		return nil, nil, domain.NewTrainingDataInsufficientError(
			fmt.Sprintf("need at least 2 distinct categories, got %d", len(byClass)))
	}

	rng := rand.New(rand.NewSource(seed))
	for _, class := range sortedClasses(byClass) {
		idx := byClass[class]
		if len(idx) < 2 {
			return nil, nil, domain.NewTrainingDataInsufficientError(
				fmt.Sprintf("category %q has only %d sample(s), need at least 2", class, len(idx)))
		}
		rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

		nTest := int(float64(len(idx)) * testFraction)
		if nTest < 1 {
			nTest = 1
		}
		if nTest >= len(idx) {
			nTest = len(idx) - 1
		}
		test = append(test, idx[:nTest]...)
		train = append(train, idx[nTest:]...)
	}
	sort.Ints(train)
	sort.Ints(test)
	return train, test, nil
}

// StratifiedKFold splits sample indices into k folds with per-class
// distribution preserved as evenly as the counts allow. When the smallest
// class has fewer than k samples the fold count is reduced to that size,
// never below 2.
func StratifiedKFold(labels []string, k int, seed int64) ([][]int, error) {
	byClass := groupByClass(labels)
	if len(byClass) < 2 {
		return nil, domain.NewTrainingDataInsufficientError(
			fmt.Sprintf("need at least 2 distinct categories, got %d", len(byClass)))
	}

	minCount := len(labels)
	for _, idx := range byClass {
		if len(idx) < minCount {
			minCount = len(idx)
		}
	}
	if minCount < 2 {
		return nil, domain.NewTrainingDataInsufficientError(
			"smallest category has fewer than 2 samples")
	}
	if k > minCount {
		k = minCount
	}

	folds := make([][]int, k)
	rng := rand.New(rand.NewSource(seed))
	for _, class := range sortedClasses(byClass) {
		idx := byClass[class]
		rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
		for i, sample := range idx {
			folds[i%k] = append(folds[i%k], sample)
		}
	}
	for _, fold := range folds {
		sort.Ints(fold)
	}
	return folds, nil
}

func groupByClass(labels []string) map[string][]int {
	byClass := make(map[string][]int)
	for i, label := range labels {
		byClass[label] = append(byClass[label], i)
	}
	return byClass
}

func sortedClasses(byClass map[string][]int) []string {
	classes := make([]string, 0, len(byClass))
	for c := range byClass {
		classes = append(classes, c)
	}
	sort.Strings(classes)
	return classes
}
