// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"errors"
	"math"
)

// ErrInvalidFilterbank indicates invalid mel filterbank parameters.
var ErrInvalidFilterbank = errors.New("invalid mel filterbank parameters")

// HzToMel converts frequency in Hz to the HTK mel scale.
func HzToMel(hz float64) float64 {
	return 2595.0 * math.Log10(1.0+hz/700.0)
}

// MelToHz converts HTK mel-scale values back to Hz.
func MelToHz(mel float64) float64 {
	return 700.0 * (math.Pow(10, mel/2595.0) - 1.0)
}

// MelFilterbank builds numFilters triangular filters spanning [fMin, fMax],
// spaced evenly on the mel scale. Each filter is a weight row over the
// fftSize/2+1 spectrum bins produced by Spectrogram.
func MelFilterbank(numFilters, fftSize, rate int, fMin, fMax float64) ([][]float64, error) {
	if numFilters <= 0 || fftSize <= 0 || rate <= 0 {
		return nil, ErrInvalidFilterbank
	}
	if fMax <= fMin || fMax > float64(rate)/2 {
		return nil, ErrInvalidFilterbank
	}

	numBins := fftSize/2 + 1

	// numFilters+2 points: each filter spans three consecutive points.
	melLo := HzToMel(fMin)
	melHi := HzToMel(fMax)
	points := make([]float64, numFilters+2)
	for i := range points {
		mel := melLo + (melHi-melLo)*float64(i)/float64(numFilters+1)
		points[i] = MelToHz(mel)
	}

	binFreqs := BinFrequencies(fftSize, rate)

	bank := make([][]float64, numFilters)
	for f := 0; f < numFilters; f++ {
		left, center, right := points[f], points[f+1], points[f+2]
		row := make([]float64, numBins)

		for b, freq := range binFreqs {
			switch {
			case freq <= left || freq >= right:
				// outside the triangle
			case freq <= center:
				row[b] = (freq - left) / (center - left)
			default:
				row[b] = (right - freq) / (right - center)
			}
		}
		bank[f] = row
	}

	return bank, nil
}
