// Package linreg implements simple linear regression using ordinary least squares.
package linreg

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/sartorproj/golinreg/dataset"
	"github.com/sartorproj/golinreg/stats"
)

// Model represents a fitted simple linear regression model over paired
// scalar observations. Missing entries in the input sequences are marked
// with NaN and resolved before fitting, either by replacement with the
// column mean or by removal of the affected observation.
//
// The model is mutable shared state within a single owner. It is not safe
// for concurrent mutation; callers needing concurrent access must guard the
// whole model with their own lock, since Add/Recalculate/Predict are not
// atomic with respect to one another.
type Model struct {
	predictors []float64
	targets    []float64
	pairs      []dataset.Pair

	xMean     float64
	yMean     float64
	slope     float64
	intercept float64
	r         float64
	fitted    bool

	progress io.Writer
}

// New creates a fitted regression model from parallel predictor and target
// slices. The inputs are copied so the model never aliases caller memory.
// NaN entries are resolved before fitting: replaced with the column mean
// when replaceMissing is true, otherwise the affected observations are
// removed from both sequences.
func New(predictors, targets []float64, replaceMissing bool) (*Model, error) {
	if len(predictors) != len(targets) {
		return nil, ErrLengthMismatch
	}

	m := &Model{
		predictors: append([]float64(nil), predictors...),
		targets:    append([]float64(nil), targets...),
		pairs:      []dataset.Pair{},
		progress:   os.Stdout,
	}
	m.unsetScalars()

	if err := m.refit(replaceMissing); err != nil {
		return nil, err
	}
	return m, nil
}

// FromPairs creates a fitted regression model from explicit (predictor,
// target) pairs. The pairs are unzipped into parallel sequences and fitting
// proceeds as in New, with missing-value replacement enabled.
func FromPairs(pairs []dataset.Pair) (*Model, error) {
	ds := dataset.FromPairs(pairs)
	return New(ds.Predictors, ds.Targets, true)
}

// unsetScalars puts all derived scalars into the explicit unset state.
func (m *Model) unsetScalars() {
	m.xMean = math.NaN()
	m.yMean = math.NaN()
	m.slope = math.NaN()
	m.intercept = math.NaN()
	m.r = math.NaN()
	m.fitted = false
}

// refit resolves missing values in the current sequences and runs the OLS
// fitting algorithm.
func (m *Model) refit(replaceMissing bool) error {
	if m.predictors == nil || m.targets == nil {
		return ErrNoObservations
	}
	if len(m.predictors) != len(m.targets) {
		return ErrLengthMismatch
	}

	ds := &dataset.Dataset{Predictors: m.predictors, Targets: m.targets}
	if ds.HasMissing() {
		ds.Clean(replaceMissing)
	}
	m.predictors = ds.Predictors
	m.targets = ds.Targets

	return m.fit()
}

// fit runs the ordinary least squares calculation over the current cleaned
// sequences. On success it appends the fitted pairs to the accumulated pair
// log and sets all derived scalars; on failure the model state is left
// untouched.
func (m *Model) fit() error {
	n := len(m.predictors)
	if n == 0 {
		return ErrNoObservations
	}

	xMean := stats.Mean(m.predictors)
	yMean := stats.Mean(m.targets)

	// A column whose entries were all missing survives replacement
	// untouched and poisons the means with NaN; the zero-sum guards below
	// would not catch that.
	if math.IsNaN(xMean) || math.IsNaN(yMean) {
		return fmt.Errorf("no usable observations after missing-value resolution: %w", ErrNoObservations)
	}

	sumXY := 0.0
	sumXX := 0.0
	sumYY := 0.0
	for i := 0; i < n; i++ {
		xDiff := m.predictors[i] - xMean
		yDiff := m.targets[i] - yMean
		sumXY += xDiff * yDiff
		sumXX += xDiff * xDiff
		sumYY += yDiff * yDiff
	}

	if sumXX == 0 {
		return fmt.Errorf("predictors are constant: %w", ErrZeroVariance)
	}
	if sumYY == 0 {
		return fmt.Errorf("targets are constant: %w", ErrZeroVariance)
	}

	// Pairs accumulate across fits; callers wanting a fresh pair log must
	// call Reset before recalculating.
	for i := 0; i < n; i++ {
		m.pairs = append(m.pairs, dataset.Pair{
			Predictor: m.predictors[i],
			Target:    m.targets[i],
		})
	}

	m.xMean = xMean
	m.yMean = yMean
	m.slope = sumXY / sumXX
	m.intercept = yMean - m.slope*xMean
	m.r = sumXY / (math.Sqrt(sumXX) * math.Sqrt(sumYY))
	m.fitted = true

	return nil
}

// AddPredictors replaces the model's predictor sequence wholesale with a
// copy of values. When both sequences are present and of equal length the
// observations are zipped and appended to the accumulated pair log; the
// model is not refitted until Recalculate is called. Returns
// ErrLengthMismatch when both sequences are present with different lengths.
// When verbose is true, a timestamped progress message is emitted.
func (m *Model) AddPredictors(values []float64, verbose bool) error {
	m.predictors = append([]float64(nil), values...)
	if verbose {
		m.printout(fmt.Sprintf("%d value(s) added as predictors.", len(values)))
	}
	return m.zipPairs(m.targets != nil, verbose)
}

// AddTargets replaces the model's target sequence wholesale with a copy of
// values. Behavior mirrors AddPredictors.
func (m *Model) AddTargets(values []float64, verbose bool) error {
	m.targets = append([]float64(nil), values...)
	if verbose {
		m.printout(fmt.Sprintf("%d value(s) added as targets.", len(values)))
	}
	return m.zipPairs(m.predictors != nil, verbose)
}

// zipPairs appends zipped observations to the pair log when both sequences
// are present and aligned.
func (m *Model) zipPairs(otherPresent, verbose bool) error {
	if !otherPresent {
		return nil
	}
	if len(m.predictors) != len(m.targets) {
		return ErrLengthMismatch
	}
	for i := range m.predictors {
		m.pairs = append(m.pairs, dataset.Pair{
			Predictor: m.predictors[i],
			Target:    m.targets[i],
		})
	}
	if verbose {
		m.printout(fmt.Sprintf("%d pair(s) created.", len(m.pairs)))
	}
	return nil
}

// Recalculate re-runs missing-value resolution and the OLS fitting
// algorithm against the current predictor and target sequences. The pair
// log accumulates across recalculations; the computed scalars are
// idempotent for identical input sequences.
func (m *Model) Recalculate(replaceMissing bool) error {
	return m.refit(replaceMissing)
}

// Predict returns the target value predicted for the given predictor,
// slope*predictor + intercept. Returns ErrNotFitted when the model has no
// valid coefficients, such as after Reset with no subsequent Recalculate.
// A legitimately fitted zero slope predicts normally.
func (m *Model) Predict(predictor float64) (float64, error) {
	if !m.fitted {
		return 0, ErrNotFitted
	}
	return m.slope*predictor + m.intercept, nil
}

// Reset clears the model to the explicit unset state: sequences and derived
// scalars become unset and the pair log becomes empty. When verbose is
// true, a timestamped confirmation message is emitted.
func (m *Model) Reset(verbose bool) {
	m.predictors = nil
	m.targets = nil
	m.pairs = []dataset.Pair{}
	m.unsetScalars()
	if verbose {
		m.printout("Variables are set to unset or default.")
	}
}

// Fitted reports whether the model currently holds valid coefficients.
func (m *Model) Fitted() bool {
	return m.fitted
}

// Predictors returns a copy of the current predictor sequence.
func (m *Model) Predictors() []float64 {
	return append([]float64(nil), m.predictors...)
}

// Targets returns a copy of the current target sequence.
func (m *Model) Targets() []float64 {
	return append([]float64(nil), m.targets...)
}

// Pairs returns a copy of the accumulated pair log.
func (m *Model) Pairs() []dataset.Pair {
	return append([]dataset.Pair(nil), m.pairs...)
}

// XMean returns the mean of the predictors, or NaN when unfitted.
func (m *Model) XMean() float64 {
	return m.xMean
}

// YMean returns the mean of the targets, or NaN when unfitted.
func (m *Model) YMean() float64 {
	return m.yMean
}

// Slope returns the fitted slope coefficient, or NaN when unfitted.
func (m *Model) Slope() float64 {
	return m.slope
}

// Intercept returns the fitted intercept coefficient, or NaN when unfitted.
func (m *Model) Intercept() float64 {
	return m.intercept
}

// R returns Pearson's correlation coefficient, or NaN when unfitted.
func (m *Model) R() float64 {
	return m.r
}

// SetProgressOutput redirects the verbose progress messages to w. The
// default destination is standard output.
func (m *Model) SetProgressOutput(w io.Writer) {
	m.progress = w
}

// printout writes a progress message prefixed with a formatted timestamp.
func (m *Model) printout(message string) {
	if m.progress == nil {
		return
	}
	now := time.Now().Format("2006.01.02 15:04:05.000000")
	fmt.Fprintf(m.progress, "[%s] %s\n", now, message)
}
