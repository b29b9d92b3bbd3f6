package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	PredictorColumn string // Column name for predictor values (default: "x")
	TargetColumn    string // Column name for target values (default: "y")
	HasHeader       bool   // Whether CSV has header row (default: true)
	Delimiter       rune   // Field delimiter (default: ',')
	SkipRows        int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		PredictorColumn: "x",
		TargetColumn:    "y",
		HasHeader:       true,
		Delimiter:       ',',
	}
}

// LoadCSV loads paired observations from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads paired observations from an io.Reader.
// Empty or unparseable numeric cells load as NaN so that missing-value
// resolution can handle them downstream.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Dataset, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	// Skip rows if needed
	for i := 0; i < opts.SkipRows; i++ {
		_, err := reader.Read()
		if err != nil {
			return nil, err
		}
	}

	predictorIdx, targetIdx := 0, 1

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}

		predictorIdx, targetIdx = -1, -1
		for i, col := range header {
			name := strings.TrimSpace(col)
			if name == opts.PredictorColumn {
				predictorIdx = i
			}
			if name == opts.TargetColumn {
				targetIdx = i
			}
		}
		if predictorIdx == -1 {
			return nil, fmt.Errorf("predictor column %q not found", opts.PredictorColumn)
		}
		if targetIdx == -1 {
			return nil, fmt.Errorf("target column %q not found", opts.TargetColumn)
		}
	}

	var predictors, targets []float64

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if predictorIdx >= len(record) || targetIdx >= len(record) {
			return nil, fmt.Errorf("record has %d fields, need columns %d and %d",
				len(record), predictorIdx, targetIdx)
		}

		predictors = append(predictors, parseCell(record[predictorIdx]))
		targets = append(targets, parseCell(record[targetIdx]))
	}

	if len(predictors) == 0 {
		return nil, errors.New("no observations found in CSV")
	}

	return &Dataset{
		Predictors: predictors,
		Targets:    targets,
	}, nil
}

// parseCell converts a CSV cell to a float64, mapping empty or invalid
// cells to NaN.
func parseCell(cell string) float64 {
	s := strings.TrimSpace(cell)
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
