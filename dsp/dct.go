// SPDX-License-Identifier: EPL-2.0

package dsp

import "math"

// DCT2 computes the first numCoeffs coefficients of the orthonormal DCT-II
// of in. This is the transform MFCC uses over log mel energies (gonum's
// fourier.DCT implements DCT-I, which is not the variant needed here).
func DCT2(in []float64, numCoeffs int) []float64 {
	n := len(in)
	if n == 0 || numCoeffs <= 0 {
		return nil
	}
	if numCoeffs > n {
		numCoeffs = n
	}

	out := make([]float64, numCoeffs)
	scale := math.Sqrt(2.0 / float64(n))
	for k := 0; k < numCoeffs; k++ {
		sum := 0.0
		for i, x := range in {
			sum += x * math.Cos(math.Pi*float64(k)*(float64(i)+0.5)/float64(n))
		}
		out[k] = scale * sum
	}

	// Orthonormal scaling for the DC coefficient
	out[0] /= math.Sqrt2

	return out
}
