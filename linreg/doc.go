// Package linreg implements simple linear regression using the ordinary
// least squares (OLS) method.
//
// The Model fits a line y = slope*x + intercept minimizing the squared
// vertical deviation between one predictor variable and one target
// variable, computes Pearson's correlation coefficient, and predicts new
// target values from new predictor inputs.
//
// # Fitting a Model
//
// Create a fitted model from parallel slices:
//
//	predictors := []float64{1.47, 1.50, 1.52}
//	targets := []float64{52.21, 53.12, 54.48}
//	model, err := linreg.New(predictors, targets, true)
//
// Or from explicit pairs:
//
//	model, err := linreg.FromPairs([]dataset.Pair{
//	    {Predictor: 1.47, Target: 52.21},
//	    {Predictor: 1.50, Target: 53.12},
//	})
//
// # Missing Values
//
// NaN entries are resolved before fitting. With replaceMissing=true each
// NaN is replaced with the mean of its column; with replaceMissing=false
// the affected observations are removed from both sequences to preserve
// pairing.
//
// # Prediction
//
//	y, err := model.Predict(1.92)
//
// Predict returns ErrNotFitted on a reset model with no subsequent
// recalculation.
//
// # Mutation
//
// Replace the data and refit:
//
//	model.AddPredictors(newPredictors, false)
//	model.AddTargets(newTargets, false)
//	err := model.Recalculate(true)
//
// AddPredictors and AddTargets replace the corresponding sequence
// wholesale. The pair log accumulates across Add and Recalculate calls;
// call Reset first for a fresh log.
//
// # Degenerate Input
//
// Fitting fails with ErrZeroVariance when all predictors are identical, or
// when either variable is constant so that the correlation coefficient is
// undefined.
package linreg
