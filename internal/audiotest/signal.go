// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"
	"math/rand"
)

// SineWave returns n samples of a pure tone at frequency Hz, sampled at rate.
func SineWave(rate, n int, frequency float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(rate)
		out[i] = math.Sin(2 * math.Pi * frequency * t)
	}
	return out
}

// WhiteNoise returns n samples of uniform noise in [-1, 1) from a seeded
// generator so tests stay deterministic.
func WhiteNoise(seed int64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}
	return out
}

// NoisySine returns a tone with additive noise scaled by noiseLevel,
// resembling the synthetic test signals used for feature extraction checks.
func NoisySine(seed int64, rate, n int, frequency, noiseLevel float64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(rate)
		out[i] = math.Sin(2*math.Pi*frequency*t) + noiseLevel*(rng.Float64()*2-1)
	}
	return out
}
