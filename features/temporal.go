// SPDX-License-Identifier: EPL-2.0

package features

import (
	"fmt"
	"math"

	"github.com/sunjik/aimdkit/audio"
	"github.com/sunjik/aimdkit/dsp"
)

// ZeroCrossingRate computes the per-frame fraction of adjacent sample
// pairs whose signs differ. Noisy and percussive content crosses zero
// more often than tonal content.
func ZeroCrossingRate(samples []float64, cfg Config) (SeriesResult, error) {
	if len(samples) == 0 {
		return SeriesResult{}, ErrEmptySignal
	}
	if cfg.FFTSize <= 0 || cfg.HopLength <= 0 {
		return SeriesResult{}, ErrInvalidConfig
	}

	frames, err := dsp.Frame(samples, cfg.FFTSize, cfg.HopLength)
	if err != nil {
		return SeriesResult{}, fmt.Errorf("zcr framing: %w", err)
	}

	raw := make([]float64, len(frames))
	for f, frame := range frames {
		crossings := 0
		for i := 1; i < len(frame); i++ {
			if math.Signbit(frame[i]) != math.Signbit(frame[i-1]) {
				crossings++
			}
		}
		raw[f] = float64(crossings) / float64(len(frame))
	}

	return summarize(raw)
}

// RMSEnergy computes per-frame root-mean-square level.
func RMSEnergy(samples []float64, cfg Config) (SeriesResult, error) {
	if len(samples) == 0 {
		return SeriesResult{}, ErrEmptySignal
	}
	if cfg.FFTSize <= 0 || cfg.HopLength <= 0 {
		return SeriesResult{}, ErrInvalidConfig
	}

	frames, err := dsp.Frame(samples, cfg.FFTSize, cfg.HopLength)
	if err != nil {
		return SeriesResult{}, fmt.Errorf("rms framing: %w", err)
	}

	raw := make([]float64, len(frames))
	for f, frame := range frames {
		raw[f] = audio.RMS(frame)
	}

	return summarize(raw)
}
