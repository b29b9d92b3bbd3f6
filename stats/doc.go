// Package stats provides scalar statistics used by the regression model.
//
// # Basic Statistics
//
// Calculate summary statistics over a slice:
//
//	mean := stats.Mean(values)
//	variance := stats.Variance(values)
//	std := stats.Std(values)
//
// # Paired Statistics
//
// Measure association between two equal-length slices:
//
//	cov, err := stats.Covariance(x, y)
//	r, err := stats.Pearson(x, y)
//
// Pearson returns ErrZeroVariance when either variable is constant, since
// the correlation coefficient is undefined in that case.
//
// # Goodness of Fit
//
// Evaluate model predictions against observed values:
//
//	r2, err := stats.RSquared(observed, predicted)
//	rmse, err := stats.RMSE(observed, predicted)
package stats
