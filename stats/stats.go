// Package stats provides scalar statistics for paired observations.
package stats

import (
	"errors"
	"math"
)

// ErrZeroVariance is returned when a statistic is undefined because one of
// the variables has zero variance.
var ErrZeroVariance = errors.New("zero variance")

// ErrLengthMismatch is returned when paired slices have different lengths.
var ErrLengthMismatch = errors.New("slices must have the same length")

// Mean calculates the arithmetic mean of the values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Variance calculates the sample variance of the values (n-1 denominator).
func Variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	sumSq := 0.0
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(values)-1)
}

// Std calculates the sample standard deviation of the values.
func Std(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// Covariance calculates the sample covariance of two equal-length slices
// (n-1 denominator).
func Covariance(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, ErrLengthMismatch
	}
	if len(x) < 2 {
		return 0, errors.New("covariance requires at least 2 observations")
	}

	xMean := Mean(x)
	yMean := Mean(y)
	sum := 0.0
	for i := range x {
		sum += (x[i] - xMean) * (y[i] - yMean)
	}
	return sum / float64(len(x)-1), nil
}

// Pearson calculates Pearson's correlation coefficient between two
// equal-length slices. Returns ErrZeroVariance when either variable has
// zero sum of squared deviations.
func Pearson(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, ErrLengthMismatch
	}
	if len(x) == 0 {
		return 0, errors.New("correlation requires at least 1 observation")
	}

	xMean := Mean(x)
	yMean := Mean(y)

	sumXY := 0.0
	sumXX := 0.0
	sumYY := 0.0
	for i := range x {
		xDiff := x[i] - xMean
		yDiff := y[i] - yMean
		sumXY += xDiff * yDiff
		sumXX += xDiff * xDiff
		sumYY += yDiff * yDiff
	}

	if sumXX == 0 || sumYY == 0 {
		return 0, ErrZeroVariance
	}

	return sumXY / (math.Sqrt(sumXX) * math.Sqrt(sumYY)), nil
}

// RSquared calculates the coefficient of determination between observed
// values and model predictions.
func RSquared(observed, predicted []float64) (float64, error) {
	if len(observed) != len(predicted) {
		return 0, ErrLengthMismatch
	}
	if len(observed) == 0 {
		return 0, errors.New("r-squared requires at least 1 observation")
	}

	mean := Mean(observed)
	ssTot := 0.0
	ssRes := 0.0
	for i := range observed {
		diff := observed[i] - mean
		ssTot += diff * diff
		res := observed[i] - predicted[i]
		ssRes += res * res
	}

	if ssTot == 0 {
		return 0, ErrZeroVariance
	}

	return 1 - ssRes/ssTot, nil
}

// RMSE calculates the root mean square error between observed values and
// model predictions.
func RMSE(observed, predicted []float64) (float64, error) {
	if len(observed) != len(predicted) {
		return 0, ErrLengthMismatch
	}
	if len(observed) == 0 {
		return 0, errors.New("rmse requires at least 1 observation")
	}

	sumSq := 0.0
	for i := range observed {
		res := observed[i] - predicted[i]
		sumSq += res * res
	}
	return math.Sqrt(sumSq / float64(len(observed))), nil
}
