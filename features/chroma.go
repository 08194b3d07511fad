// SPDX-License-Identifier: EPL-2.0

package features

import (
	"fmt"
	"math"

	"github.com/sunjik/aimdkit/dsp"
)

// ChromaResult holds the 12 pitch-class energy profiles.
type ChromaResult struct {
	Mean []float64   // len 12
	Std  []float64   // len 12
	Raw  [][]float64 // frames × 12, each frame max-normalized
}

// Chroma folds spectral energy onto the 12 pitch classes (A440 reference),
// capturing harmonic structure independent of octave. Each frame is
// normalized by its maximum bin so the profile describes relative harmony
// rather than loudness.
func Chroma(samples []float64, rate int, cfg Config) (ChromaResult, error) {
	if err := cfg.validate(samples, rate); err != nil {
		return ChromaResult{}, err
	}

	spec, err := dsp.PowerSpectrogram(samples, cfg.FFTSize, cfg.HopLength)
	if err != nil {
		return ChromaResult{}, fmt.Errorf("chroma spectrogram: %w", err)
	}
	freqs := dsp.BinFrequencies(cfg.FFTSize, rate)

	raw := make([][]float64, len(spec))
	for f, frame := range spec {
		row := make([]float64, NumChromaBins)
		for b, p := range frame {
			if freqs[b] <= 0 || p == 0 {
				continue
			}
			// MIDI note number of the bin center, folded to a pitch class
			midi := 69.0 + 12.0*math.Log2(freqs[b]/440.0)
			pc := int(math.Round(midi)) % NumChromaBins
			if pc < 0 {
				pc += NumChromaBins
			}
			row[pc] += p
		}

		peak := 0.0
		for _, v := range row {
			if v > peak {
				peak = v
			}
		}
		if peak > 0 {
			for i := range row {
				row[i] /= peak
			}
		}
		raw[f] = row
	}

	mean, std, err := summarizeColumns(raw, NumChromaBins)
	if err != nil {
		return ChromaResult{}, err
	}

	return ChromaResult{Mean: mean, Std: std, Raw: raw}, nil
}
