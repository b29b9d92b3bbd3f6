package linreg

import "errors"

// Errors returned by the regression model.
var (
	// ErrLengthMismatch indicates that the predictor and target sequences
	// have different lengths at a point requiring pairing.
	ErrLengthMismatch = errors.New("length of predictors must be equal with the length of targets")

	// ErrZeroVariance indicates degenerate input: all predictors are
	// identical, or one of the variables is constant when computing the
	// correlation coefficient.
	ErrZeroVariance = errors.New("zero variance makes the regression undefined")

	// ErrNotFitted indicates a prediction was requested on a model with no
	// valid slope and intercept, such as after a reset with no subsequent
	// recalculation.
	ErrNotFitted = errors.New("model is not fitted")

	// ErrNoObservations indicates a fit was attempted over empty sequences.
	ErrNoObservations = errors.New("no observations to fit")
)
