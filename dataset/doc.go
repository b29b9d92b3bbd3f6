// Package dataset provides data structures for paired observations.
//
// This package includes the Dataset type for holding parallel predictor and
// target sequences, missing-value resolution, and CSV loading.
//
// # Creating a Dataset
//
// Create a dataset from parallel slices:
//
//	predictors := []float64{1.47, 1.50, 1.52}
//	targets := []float64{52.21, 53.12, 54.48}
//	ds, err := dataset.New(predictors, targets)
//
// Or from explicit pairs:
//
//	ds := dataset.FromPairs([]dataset.Pair{
//	    {Predictor: 1.47, Target: 52.21},
//	    {Predictor: 1.50, Target: 53.12},
//	})
//
// # Missing Values
//
// Missing entries are marked with NaN. Resolve them before fitting:
//
//	// Replace each NaN with the mean of its column
//	ds.ReplaceMissing()
//
//	// Or remove the affected observations from both columns
//	ds.DropMissing()
//
// # Loading from CSV
//
// Load paired observations from CSV files:
//
//	opts := dataset.DefaultCSVOptions()
//	opts.PredictorColumn = "mass"
//	opts.TargetColumn = "height"
//	ds, err := dataset.LoadCSV("data.csv", opts)
//
// Empty or unparseable cells load as NaN, ready for missing-value resolution.
package dataset
