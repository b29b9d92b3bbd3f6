// Package golinreg provides simple linear regression over paired scalar observations.
//
// GoLinReg fits a line (slope, intercept) with the ordinary least squares
// (OLS) method, minimizing the squared vertical deviation between one
// predictor variable and one target variable. It computes Pearson's
// correlation coefficient alongside the fit and predicts new target values
// from new predictor inputs.
//
// # Features
//
//   - OLS fitting of slope and intercept from parallel sequences or pairs
//   - Pearson's correlation coefficient
//   - Missing-value resolution (mean replacement or paired removal)
//   - Incremental mutation: add data, reset, recalculate
//   - Goodness-of-fit statistics (R², RMSE)
//   - CSV loading of paired observations
//
// # Quick Start
//
// Fit a model and make a prediction:
//
//	model, err := linreg.New(predictors, targets, true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y, err := model.Predict(1.92)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - linreg: The regression model, fitting, mutation, and prediction
//   - dataset: Paired-observation container, cleaning, and CSV loading
//   - stats: Scalar statistics (mean, variance, Pearson r, R², RMSE)
//
// # References
//
//   - Kenney, J. F., & Keeping, E. S. (1962). Linear Regression and Correlation
package golinreg
