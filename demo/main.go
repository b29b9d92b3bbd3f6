// Package main demonstrates simple linear regression with the canonical
// height/mass dataset.
package main

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/sartorproj/golinreg/dataset"
	"github.com/sartorproj/golinreg/linreg"
	"github.com/sartorproj/golinreg/stats"
)

// Canonical example: predict mass (kg) from height (m).
var (
	heights = []float64{
		1.47, 1.50, 1.52, 1.55, 1.57, 1.60, 1.63, 1.65,
		1.68, 1.70, 1.73, 1.75, 1.78, 1.80, 1.83,
	}
	masses = []float64{
		52.21, 53.12, 54.48, 55.84, 57.20, 58.57, 59.93, 61.29,
		63.11, 64.47, 66.28, 68.10, 69.92, 72.19, 74.46,
	}
)

func main() {
	example1()
	example2()
	example3()
	example4()
}

// example1 fits a model from parallel slices and makes a prediction.
func example1() {
	fmt.Println("Example 1: fit and predict")
	fmt.Println("==========================")

	model, err := linreg.New(heights, masses, true)
	if err != nil {
		log.Fatalf("fit failed: %v", err)
	}

	fmt.Printf("%10s: %8.4f\n", "slope", model.Slope())
	fmt.Printf("%10s: %8.4f\n", "intercept", model.Intercept())

	prediction, err := model.Predict(1.92)
	if err != nil {
		log.Fatalf("prediction failed: %v", err)
	}
	fmt.Printf("\n%10s: %8.4f (for height 1.92)\n\n", "prediction", prediction)
}

// example2 fits the same model from explicit pairs and prints the report.
func example2() {
	fmt.Println("Example 2: fit from pairs")
	fmt.Println("=========================")

	pairs := make([]dataset.Pair, len(heights))
	for i := range heights {
		pairs[i] = dataset.Pair{Predictor: heights[i], Target: masses[i]}
	}

	model, err := linreg.FromPairs(pairs)
	if err != nil {
		log.Fatalf("fit failed: %v", err)
	}

	fmt.Print(model.Details())
	fmt.Println()
}

// example3 walks the reset/add/recalculate lifecycle with verbose progress.
func example3() {
	fmt.Println("Example 3: reset, add, recalculate")
	fmt.Println("==================================")

	model, err := linreg.New(heights, masses, true)
	if err != nil {
		log.Fatalf("fit failed: %v", err)
	}
	model.SetProgressOutput(os.Stdout)

	model.Reset(true)

	if err := model.AddPredictors(heights, true); err != nil {
		log.Fatalf("add predictors failed: %v", err)
	}
	if err := model.AddTargets(masses, true); err != nil {
		log.Fatalf("add targets failed: %v", err)
	}
	if err := model.Recalculate(true); err != nil {
		log.Fatalf("recalculate failed: %v", err)
	}

	fmt.Printf("%10s: %8.4f\n", "slope", model.Slope())
	fmt.Printf("%10s: %8.4f\n\n", "r-Pearson", model.R())
}

// example4 handles missing values and reports goodness of fit.
func example4() {
	fmt.Println("Example 4: missing values and fit quality")
	fmt.Println("=========================================")

	withMissing := append([]float64(nil), heights...)
	withMissing[3] = math.NaN()

	model, err := linreg.New(withMissing, masses, true)
	if err != nil {
		log.Fatalf("fit failed: %v", err)
	}

	predicted := make([]float64, len(masses))
	for i, h := range model.Predictors() {
		predicted[i], _ = model.Predict(h)
	}

	r, err := stats.Pearson(model.Predictors(), model.Targets())
	if err != nil {
		log.Fatalf("correlation failed: %v", err)
	}
	r2, err := stats.RSquared(model.Targets(), predicted)
	if err != nil {
		log.Fatalf("r-squared failed: %v", err)
	}
	rmse, err := stats.RMSE(model.Targets(), predicted)
	if err != nil {
		log.Fatalf("rmse failed: %v", err)
	}

	fmt.Printf("%10s: %8.4f\n", "slope", model.Slope())
	fmt.Printf("%10s: %8.4f\n", "r-Pearson", r)
	fmt.Printf("%10s: %8.4f\n", "r-squared", r2)
	fmt.Printf("%10s: %8.4f\n", "rmse", rmse)
}
