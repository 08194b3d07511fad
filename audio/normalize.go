// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// NormMethod selects the normalization strategy applied by Normalize.
type NormMethod int

const (
	// NormPeak scales the signal so that the largest absolute sample is 1.
	NormPeak NormMethod = iota
	// NormRMS scales the signal to a target RMS level of 0.1, matching
	// average loudness across clips instead of peak level.
	NormRMS
)

// rmsTarget is the RMS level NormRMS scales to.
const rmsTarget = 0.1

// Normalize returns a normalized copy of samples. An all-zero signal is
// returned unchanged (copied) since there is nothing to scale against.
func Normalize(samples []float64, method NormMethod) ([]float64, error) {
	out := make([]float64, len(samples))

	switch method {
	case NormPeak:
		peak := 0.0
		for _, s := range samples {
			if a := math.Abs(s); a > peak {
				peak = a
			}
		}
		if peak == 0 {
			copy(out, samples)
			return out, nil
		}
		for i, s := range samples {
			out[i] = s / peak
		}
		return out, nil

	case NormRMS:
		rms := RMS(samples)
		if rms == 0 {
			copy(out, samples)
			return out, nil
		}
		scale := rmsTarget / rms
		for i, s := range samples {
			out[i] = s * scale
		}
		return out, nil

	default:
		return nil, ErrUnknownNormMethod
	}
}

// RMS returns the root-mean-square level of samples, 0 for an empty signal.
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range samples {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(samples)))
}
