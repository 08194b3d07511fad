// SPDX-License-Identifier: EPL-2.0

package features

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// SeriesResult summarizes a scalar per-frame feature over time.
type SeriesResult struct {
	Mean float64
	Std  float64
	Raw  []float64
}

func summarize(raw []float64) (SeriesResult, error) {
	mean, err := stats.Mean(raw)
	if err != nil {
		return SeriesResult{}, fmt.Errorf("mean: %w", err)
	}
	std, err := stats.StandardDeviation(raw)
	if err != nil {
		return SeriesResult{}, fmt.Errorf("std: %w", err)
	}
	return SeriesResult{Mean: mean, Std: std, Raw: raw}, nil
}

// summarizeColumns computes mean/std of each column of a frames × dims
// matrix, used for multi-coefficient features (MFCC, contrast, chroma).
func summarizeColumns(raw [][]float64, dims int) (mean, std []float64, err error) {
	mean = make([]float64, dims)
	std = make([]float64, dims)

	column := make([]float64, len(raw))
	for d := 0; d < dims; d++ {
		for f := range raw {
			column[f] = raw[f][d]
		}
		mean[d], err = stats.Mean(column)
		if err != nil {
			return nil, nil, fmt.Errorf("mean of column %d: %w", d, err)
		}
		std[d], err = stats.StandardDeviation(column)
		if err != nil {
			return nil, nil, fmt.Errorf("std of column %d: %w", d, err)
		}
	}

	return mean, std, nil
}
