// Package dataset provides paired-observation data structures and cleaning operations.
package dataset

import (
	"errors"
	"math"
)

// Pair represents a single (predictor, target) observation.
type Pair struct {
	Predictor float64
	Target    float64
}

// Dataset represents parallel predictor and target sequences.
// Missing entries are marked with NaN.
type Dataset struct {
	Predictors []float64
	Targets    []float64
}

// New creates a dataset from parallel predictor and target slices.
// The inputs are copied so the dataset never aliases caller memory.
func New(predictors, targets []float64) (*Dataset, error) {
	if len(predictors) != len(targets) {
		return nil, errors.New("predictors and targets must have the same length")
	}

	p := make([]float64, len(predictors))
	copy(p, predictors)
	t := make([]float64, len(targets))
	copy(t, targets)

	return &Dataset{
		Predictors: p,
		Targets:    t,
	}, nil
}

// FromPairs creates a dataset by unzipping (predictor, target) pairs.
func FromPairs(pairs []Pair) *Dataset {
	predictors := make([]float64, len(pairs))
	targets := make([]float64, len(pairs))
	for i, pair := range pairs {
		predictors[i] = pair.Predictor
		targets[i] = pair.Target
	}
	return &Dataset{
		Predictors: predictors,
		Targets:    targets,
	}
}

// Len returns the number of observations.
func (d *Dataset) Len() int {
	return len(d.Predictors)
}

// Pairs materializes the parallel slices into (predictor, target) pairs.
func (d *Dataset) Pairs() []Pair {
	pairs := make([]Pair, len(d.Predictors))
	for i := range d.Predictors {
		pairs[i] = Pair{Predictor: d.Predictors[i], Target: d.Targets[i]}
	}
	return pairs
}

// Copy creates a deep copy of the dataset.
func (d *Dataset) Copy() *Dataset {
	predictors := make([]float64, len(d.Predictors))
	copy(predictors, d.Predictors)
	targets := make([]float64, len(d.Targets))
	copy(targets, d.Targets)
	return &Dataset{
		Predictors: predictors,
		Targets:    targets,
	}
}

// HasMissing reports whether either column contains a NaN entry.
func (d *Dataset) HasMissing() bool {
	for _, v := range d.Predictors {
		if math.IsNaN(v) {
			return true
		}
	}
	for _, v := range d.Targets {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// ReplaceMissing replaces every NaN entry with the mean of the non-NaN
// entries of the same column, in place. Length and order are preserved.
// Predictors are resolved before targets. A column with no non-NaN entries
// has no mean to substitute and is left unchanged.
func (d *Dataset) ReplaceMissing() {
	replaceColumn(d.Predictors)
	replaceColumn(d.Targets)
}

func replaceColumn(values []float64) {
	sum := 0.0
	count := 0
	for _, v := range values {
		if !math.IsNaN(v) {
			sum += v
			count++
		}
	}
	if count == 0 {
		return
	}

	mean := sum / float64(count)
	for i, v := range values {
		if math.IsNaN(v) {
			values[i] = mean
		}
	}
}

// DropMissing removes every observation whose predictor or target is NaN,
// keeping the two columns aligned. The retained-index set is built first and
// both columns are rebuilt in one pass, so no index shifting occurs while
// filtering. Predictors are inspected before targets; dropping a row for a
// missing predictor removes its target as well, and the target pass then
// runs over the already-shortened columns.
func (d *Dataset) DropMissing() {
	d.dropWhere(d.Predictors)
	d.dropWhere(d.Targets)
}

// dropWhere removes the rows whose entry in the inspected column is NaN
// from both columns.
func (d *Dataset) dropWhere(inspected []float64) {
	keep := make([]int, 0, len(inspected))
	for i, v := range inspected {
		if !math.IsNaN(v) {
			keep = append(keep, i)
		}
	}
	if len(keep) == len(inspected) {
		return
	}

	predictors := make([]float64, len(keep))
	targets := make([]float64, len(keep))
	for j, i := range keep {
		predictors[j] = d.Predictors[i]
		targets[j] = d.Targets[i]
	}
	d.Predictors = predictors
	d.Targets = targets
}

// Clean resolves missing values. When replace is true, NaN entries are
// replaced with the column mean; otherwise the affected observations are
// removed from both columns.
func (d *Dataset) Clean(replace bool) {
	if replace {
		d.ReplaceMissing()
	} else {
		d.DropMissing()
	}
}
