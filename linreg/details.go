package linreg

import (
	"fmt"
	"strings"

	"github.com/sartorproj/golinreg/dataset"
)

const (
	maxDetailValues = 10
	maxDetailPairs  = 5
)

// Details returns a formatted report of the model's current state: the
// predictor and target sequences, the first few pairs, the means, the
// correlation coefficient, and the fitted coefficients. In the fitted
// branch long sequences are truncated and scalars are printed with fixed
// precision; the unfitted branch prints the sequences in full and the
// scalars verbatim.
func (m *Model) Details() string {
	var b strings.Builder

	pairs := m.pairs
	if len(pairs) > maxDetailPairs {
		pairs = pairs[:maxDetailPairs]
	}

	if m.fitted {
		predictors := m.predictors
		targets := m.targets
		if len(predictors) > maxDetailValues {
			predictors = predictors[:maxDetailValues]
		}
		if len(targets) > maxDetailValues {
			targets = targets[:maxDetailValues]
		}

		fmt.Fprintf(&b, "%10s: (x) %v\n", "predictors", predictors)
		fmt.Fprintf(&b, "%10s: (y) %v\n", "targets", targets)
		fmt.Fprintf(&b, "%10s: %v\n", "pairs", formatPairs(pairs))
		fmt.Fprintf(&b, "%10s: %8.4f\n", "x mean", m.xMean)
		fmt.Fprintf(&b, "%10s: %8.4f\n", "y mean", m.yMean)
		fmt.Fprintf(&b, "%10s: %8.4f\n", "r-Pearson", m.r)
		fmt.Fprintf(&b, "%10s: %8.4f\n", "slope", m.slope)
		fmt.Fprintf(&b, "%10s: %8.4f\n", "intercept", m.intercept)
	} else {
		fmt.Fprintf(&b, "%10s: (x) %v\n", "predictors", m.predictors)
		fmt.Fprintf(&b, "%10s: (y) %v\n", "targets", m.targets)
		fmt.Fprintf(&b, "%10s: %v\n", "pairs", formatPairs(pairs))
		fmt.Fprintf(&b, "%10s: %v\n", "x mean", m.xMean)
		fmt.Fprintf(&b, "%10s: %v\n", "y mean", m.yMean)
		fmt.Fprintf(&b, "%10s: %v\n", "r-Pearson", m.r)
		fmt.Fprintf(&b, "%10s: %v\n", "slope", m.slope)
		fmt.Fprintf(&b, "%10s: %v\n", "intercept", m.intercept)
	}

	return b.String()
}

// formatPairs renders pairs as [[x y] [x y] ...].
func formatPairs(pairs []dataset.Pair) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf("[%v %v]", p.Predictor, p.Target)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
