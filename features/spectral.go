// SPDX-License-Identifier: EPL-2.0

package features

import (
	"fmt"
	"math"
	"sort"

	"github.com/sunjik/aimdkit/dsp"
)

// SpectralCentroid computes the per-frame center of spectral mass in Hz,
// a brightness measure.
func SpectralCentroid(samples []float64, rate int, cfg Config) (SeriesResult, error) {
	if err := cfg.validate(samples, rate); err != nil {
		return SeriesResult{}, err
	}

	spec, err := dsp.Spectrogram(samples, cfg.FFTSize, cfg.HopLength)
	if err != nil {
		return SeriesResult{}, fmt.Errorf("centroid spectrogram: %w", err)
	}
	freqs := dsp.BinFrequencies(cfg.FFTSize, rate)

	raw := make([]float64, len(spec))
	for f, frame := range spec {
		var weighted, total float64
		for b, m := range frame {
			weighted += freqs[b] * m
			total += m
		}
		if total > 0 {
			raw[f] = weighted / total
		}
	}

	return summarize(raw)
}

// SpectralRolloff computes the per-frame frequency in Hz below which
// cfg.RolloffPercent of the spectral energy lies.
func SpectralRolloff(samples []float64, rate int, cfg Config) (SeriesResult, error) {
	if err := cfg.validate(samples, rate); err != nil {
		return SeriesResult{}, err
	}

	spec, err := dsp.Spectrogram(samples, cfg.FFTSize, cfg.HopLength)
	if err != nil {
		return SeriesResult{}, fmt.Errorf("rolloff spectrogram: %w", err)
	}
	freqs := dsp.BinFrequencies(cfg.FFTSize, rate)

	raw := make([]float64, len(spec))
	for f, frame := range spec {
		total := 0.0
		for _, m := range frame {
			total += m
		}
		if total == 0 {
			continue
		}

		target := cfg.RolloffPercent * total
		cum := 0.0
		for b, m := range frame {
			cum += m
			if cum >= target {
				raw[f] = freqs[b]
				break
			}
		}
	}

	return summarize(raw)
}

// SpectralBandwidth computes the per-frame magnitude-weighted standard
// deviation around the spectral centroid, in Hz.
func SpectralBandwidth(samples []float64, rate int, cfg Config) (SeriesResult, error) {
	if err := cfg.validate(samples, rate); err != nil {
		return SeriesResult{}, err
	}

	spec, err := dsp.Spectrogram(samples, cfg.FFTSize, cfg.HopLength)
	if err != nil {
		return SeriesResult{}, fmt.Errorf("bandwidth spectrogram: %w", err)
	}
	freqs := dsp.BinFrequencies(cfg.FFTSize, rate)

	raw := make([]float64, len(spec))
	for f, frame := range spec {
		var weighted, total float64
		for b, m := range frame {
			weighted += freqs[b] * m
			total += m
		}
		if total == 0 {
			continue
		}
		centroid := weighted / total

		var spread float64
		for b, m := range frame {
			d := freqs[b] - centroid
			spread += m * d * d
		}
		raw[f] = math.Sqrt(spread / total)
	}

	return summarize(raw)
}

// SpectralFlatness computes the per-frame ratio of geometric to arithmetic
// mean of the power spectrum: near 1 for noise, near 0 for tonal content.
func SpectralFlatness(samples []float64, rate int, cfg Config) (SeriesResult, error) {
	if err := cfg.validate(samples, rate); err != nil {
		return SeriesResult{}, err
	}

	spec, err := dsp.PowerSpectrogram(samples, cfg.FFTSize, cfg.HopLength)
	if err != nil {
		return SeriesResult{}, fmt.Errorf("flatness spectrogram: %w", err)
	}

	raw := make([]float64, len(spec))
	for f, frame := range spec {
		var logSum, sum float64
		for _, p := range frame {
			p = math.Max(p, logFloor)
			logSum += math.Log(p)
			sum += p
		}
		n := float64(len(frame))
		geo := math.Exp(logSum / n)
		arith := sum / n
		if arith > 0 {
			raw[f] = geo / arith
		}
	}

	return summarize(raw)
}

// ContrastResult holds per-band spectral contrast summaries.
type ContrastResult struct {
	Mean []float64   // len NumContrastBands+1
	Std  []float64   // len NumContrastBands+1
	Raw  [][]float64 // frames × (NumContrastBands+1)
}

// contrastQuantile is the fraction of band bins treated as peak/valley.
const contrastQuantile = 0.02

// contrastFMin is the lower edge of the first octave band in Hz.
const contrastFMin = 200.0

// SpectralContrast computes per-frame peak-to-valley contrast in dB for a
// sub-band plus cfg.NumContrastBands octave bands starting at 200 Hz.
// Large contrast indicates clear harmonic peaks over a quiet noise floor.
func SpectralContrast(samples []float64, rate int, cfg Config) (ContrastResult, error) {
	if err := cfg.validate(samples, rate); err != nil {
		return ContrastResult{}, err
	}

	spec, err := dsp.PowerSpectrogram(samples, cfg.FFTSize, cfg.HopLength)
	if err != nil {
		return ContrastResult{}, fmt.Errorf("contrast spectrogram: %w", err)
	}
	freqs := dsp.BinFrequencies(cfg.FFTSize, rate)

	// Band edges: [0, 200), [200, 400), [400, 800), ...
	numBands := cfg.NumContrastBands + 1
	edges := make([]float64, numBands+1)
	edges[0] = 0
	for i := 1; i <= numBands; i++ {
		edges[i] = contrastFMin * math.Pow(2, float64(i-1))
	}
	nyquist := float64(rate) / 2
	if edges[numBands] > nyquist {
		edges[numBands] = nyquist
	}

	raw := make([][]float64, len(spec))
	for f, frame := range spec {
		row := make([]float64, numBands)
		for band := 0; band < numBands; band++ {
			var bins []float64
			for b, p := range frame {
				if freqs[b] >= edges[band] && freqs[b] < edges[band+1] {
					bins = append(bins, p)
				}
			}
			if len(bins) == 0 {
				continue
			}

			sort.Float64s(bins)
			count := int(contrastQuantile * float64(len(bins)))
			if count < 1 {
				count = 1
			}

			var valley, peak float64
			for i := 0; i < count; i++ {
				valley += bins[i]
				peak += bins[len(bins)-1-i]
			}
			valley /= float64(count)
			peak /= float64(count)

			row[band] = 10 * math.Log10((peak+logFloor)/(valley+logFloor))
		}
		raw[f] = row
	}

	mean, std, err := summarizeColumns(raw, numBands)
	if err != nil {
		return ContrastResult{}, err
	}

	return ContrastResult{Mean: mean, Std: std, Raw: raw}, nil
}
