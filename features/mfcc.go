// SPDX-License-Identifier: EPL-2.0

package features

import (
	"fmt"
	"math"

	"github.com/sunjik/aimdkit/dsp"
)

// logFloor keeps log energies finite for silent mel bands.
const logFloor = 1e-10

// MFCCResult holds mel-frequency cepstral coefficients: per-frame raw
// values plus per-coefficient mean and standard deviation over time.
type MFCCResult struct {
	Mean []float64   // len NumMFCC
	Std  []float64   // len NumMFCC
	Raw  [][]float64 // frames × NumMFCC
}

// MFCC computes cfg.NumMFCC cepstral coefficients per frame: power
// spectrogram, projection onto a cfg.NumMels triangular mel filterbank,
// log compression, then an orthonormal DCT-II.
func MFCC(samples []float64, rate int, cfg Config) (MFCCResult, error) {
	if err := cfg.validate(samples, rate); err != nil {
		return MFCCResult{}, err
	}

	spec, err := dsp.PowerSpectrogram(samples, cfg.FFTSize, cfg.HopLength)
	if err != nil {
		return MFCCResult{}, fmt.Errorf("mfcc spectrogram: %w", err)
	}

	bank, err := dsp.MelFilterbank(cfg.NumMels, cfg.FFTSize, rate, 0, float64(rate)/2)
	if err != nil {
		return MFCCResult{}, fmt.Errorf("mfcc filterbank: %w", err)
	}

	raw := make([][]float64, len(spec))
	melEnergies := make([]float64, cfg.NumMels)
	for f, frame := range spec {
		for m, filter := range bank {
			sum := 0.0
			for b, w := range filter {
				if w != 0 {
					sum += w * frame[b]
				}
			}
			melEnergies[m] = math.Log(math.Max(sum, logFloor))
		}
		raw[f] = dsp.DCT2(melEnergies, cfg.NumMFCC)
	}

	mean, std, err := summarizeColumns(raw, cfg.NumMFCC)
	if err != nil {
		return MFCCResult{}, err
	}

	return MFCCResult{Mean: mean, Std: std, Raw: raw}, nil
}
