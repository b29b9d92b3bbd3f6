package stats

import (
	"errors"
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{name: "simple", values: []float64{1, 2, 3, 4}, expected: 2.5},
		{name: "single", values: []float64{7}, expected: 7},
		{name: "negative", values: []float64{-2, 2}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mean(tt.values)
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Mean(%v) = %f, expected %f", tt.values, got, tt.expected)
			}
		})
	}
}

func TestMeanEmpty(t *testing.T) {
	if !math.IsNaN(Mean(nil)) {
		t.Error("Mean of empty slice should be NaN")
	}
}

func TestVariance(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	// Sample variance with n-1 denominator.
	expected := 32.0 / 7.0
	got := Variance(values)
	if math.Abs(got-expected) > 1e-12 {
		t.Errorf("Variance = %f, expected %f", got, expected)
	}
}

func TestStd(t *testing.T) {
	values := []float64{1, 3}
	// Variance = 2, std = sqrt(2).
	got := Std(values)
	if math.Abs(got-math.Sqrt2) > 1e-12 {
		t.Errorf("Std = %f, expected %f", got, math.Sqrt2)
	}
}

func TestCovariance(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{2, 4, 6, 8}

	got, err := Covariance(x, y)
	if err != nil {
		t.Fatalf("Covariance failed: %v", err)
	}
	// Cov(x, 2x) = 2 * Var(x) = 2 * 5/3.
	expected := 10.0 / 3.0
	if math.Abs(got-expected) > 1e-12 {
		t.Errorf("Covariance = %f, expected %f", got, expected)
	}
}

func TestCovarianceLengthMismatch(t *testing.T) {
	_, err := Covariance([]float64{1, 2}, []float64{1})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Expected ErrLengthMismatch, got %v", err)
	}
}

func TestPearson(t *testing.T) {
	tests := []struct {
		name     string
		x        []float64
		y        []float64
		expected float64
	}{
		{
			name:     "perfect positive",
			x:        []float64{1, 2, 3, 4},
			y:        []float64{2, 4, 6, 8},
			expected: 1,
		},
		{
			name:     "perfect negative",
			x:        []float64{1, 2, 3, 4},
			y:        []float64{8, 6, 4, 2},
			expected: -1,
		},
		{
			name:     "uncorrelated",
			x:        []float64{1, 2, 3, 4},
			y:        []float64{1, 2, 2, 1},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pearson(tt.x, tt.y)
			if err != nil {
				t.Fatalf("Pearson failed: %v", err)
			}
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Pearson = %f, expected %f", got, tt.expected)
			}
		})
	}
}

func TestPearsonZeroVariance(t *testing.T) {
	_, err := Pearson([]float64{1, 1, 1}, []float64{1, 2, 3})
	if !errors.Is(err, ErrZeroVariance) {
		t.Errorf("Expected ErrZeroVariance, got %v", err)
	}

	_, err = Pearson([]float64{1, 2, 3}, []float64{5, 5, 5})
	if !errors.Is(err, ErrZeroVariance) {
		t.Errorf("Expected ErrZeroVariance, got %v", err)
	}
}

func TestRSquared(t *testing.T) {
	observed := []float64{1, 2, 3, 4}

	perfect, err := RSquared(observed, observed)
	if err != nil {
		t.Fatalf("RSquared failed: %v", err)
	}
	if math.Abs(perfect-1) > 1e-12 {
		t.Errorf("Perfect fit should give R²=1, got %f", perfect)
	}

	// Predicting the mean gives R²=0.
	meanOnly := []float64{2.5, 2.5, 2.5, 2.5}
	zero, err := RSquared(observed, meanOnly)
	if err != nil {
		t.Fatalf("RSquared failed: %v", err)
	}
	if math.Abs(zero) > 1e-12 {
		t.Errorf("Mean-only fit should give R²=0, got %f", zero)
	}
}

func TestRSquaredZeroVariance(t *testing.T) {
	_, err := RSquared([]float64{3, 3, 3}, []float64{1, 2, 3})
	if !errors.Is(err, ErrZeroVariance) {
		t.Errorf("Expected ErrZeroVariance, got %v", err)
	}
}

func TestRMSE(t *testing.T) {
	observed := []float64{1, 2, 3}
	predicted := []float64{2, 2, 2}
	// Residuals -1, 0, 1 => RMSE = sqrt(2/3).
	got, err := RMSE(observed, predicted)
	if err != nil {
		t.Fatalf("RMSE failed: %v", err)
	}
	expected := math.Sqrt(2.0 / 3.0)
	if math.Abs(got-expected) > 1e-12 {
		t.Errorf("RMSE = %f, expected %f", got, expected)
	}
}

func TestRMSELengthMismatch(t *testing.T) {
	_, err := RMSE([]float64{1}, []float64{1, 2})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Expected ErrLengthMismatch, got %v", err)
	}
}
